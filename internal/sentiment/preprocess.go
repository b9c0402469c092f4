package sentiment

import (
	"regexp"
	"strings"

	"github.com/russross/blackfriday/v2"
)

var (
	markdownLinkPattern = regexp.MustCompile(`\[(.*?)\]\((https?://[^\s)]+)\)`)
	urlPattern          = regexp.MustCompile(`https?://\S+|www\.\S+`)
	htmlTagPattern      = regexp.MustCompile(`<[^>]+>`)
)

// RemoveLinks drops markdown links (keeping their text) and bare URLs.
func RemoveLinks(input string) string {
	input = markdownLinkPattern.ReplaceAllString(input, "$1")
	return urlPattern.ReplaceAllString(input, "")
}

// flattenMarkdown renders markdown and strips the resulting tags so review
// feeds that arrive as markdown score the same as plain text.
func flattenMarkdown(input string) string {
	rendered := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	return htmlTagPattern.ReplaceAllString(string(rendered), " ")
}

// Preprocess normalizes review text for lexicon scoring: markdown
// flattened, lowercased, URLs removed, whitespace collapsed.
func Preprocess(text string) string {
	plain := flattenMarkdown(text)
	plain = strings.ToLower(plain)
	plain = RemoveLinks(plain)
	return strings.Join(strings.Fields(plain), " ")
}

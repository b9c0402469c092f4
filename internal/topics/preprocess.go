package topics

import (
	"regexp"
	"strings"
)

var (
	topicURLPattern   = regexp.MustCompile(`https?://\S+|www\.\S+`)
	punctuationRun    = regexp.MustCompile(`[^\w\s-]+`)
	standaloneNumbers = regexp.MustCompile(`\b\d+\b`)
)

// tokenize normalizes a document for topic extraction: lowercase, URLs
// stripped, punctuation replaced (hyphens kept), standalone numbers
// dropped, stop words and tokens of two characters or fewer removed.
// Returns nil for empty or non-textual input.
func tokenize(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ToLower(text)
	text = topicURLPattern.ReplaceAllString(text, "")
	text = punctuationRun.ReplaceAllString(text, " ")
	text = standaloneNumbers.ReplaceAllString(text, "")

	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, w := range fields {
		if len(w) <= 2 || isStopword(w) {
			continue
		}
		tokens = append(tokens, w)
	}
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// tokenizeAll preprocesses a corpus, dropping documents that end up empty.
func tokenizeAll(texts []string) [][]string {
	docs := make([][]string, 0, len(texts))
	for _, t := range texts {
		if tokens := tokenize(t); tokens != nil {
			docs = append(docs, tokens)
		}
	}
	return docs
}

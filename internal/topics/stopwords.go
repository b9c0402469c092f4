package topics

// englishStopwords is the generic function-word list applied by both
// vectorizer passes.
var englishStopwords = map[string]struct{}{}

// ecommerceStopwords are domain terms that dominate review text without
// carrying topical signal. Applied during preprocessing together with the
// generic list.
var ecommerceStopwords = map[string]struct{}{}

func init() {
	english := []string{
		"a", "about", "above", "after", "again", "against", "all", "am",
		"an", "and", "any", "are", "aren't", "as", "at", "be", "because",
		"been", "before", "being", "below", "between", "both", "but", "by",
		"can", "cannot", "could", "couldn't", "did", "didn't", "do", "does",
		"doesn't", "doing", "don't", "down", "during", "each", "few", "for",
		"from", "further", "had", "hadn't", "has", "hasn't", "have",
		"haven't", "having", "he", "her", "here", "hers", "herself", "him",
		"himself", "his", "how", "i", "if", "in", "into", "is", "isn't",
		"it", "its", "itself", "me", "more", "most", "my", "myself", "no",
		"nor", "not", "of", "off", "on", "once", "only", "or", "other",
		"ought", "our", "ours", "ourselves", "out", "over", "own", "same",
		"she", "should", "shouldn't", "so", "some", "such", "than", "that",
		"the", "their", "theirs", "them", "themselves", "then", "there",
		"these", "they", "this", "those", "through", "to", "too", "under",
		"until", "up", "very", "was", "wasn't", "we", "were", "weren't",
		"what", "when", "where", "which", "while", "who", "whom", "why",
		"with", "won't", "would", "you", "your", "yours", "yourself",
		"yourselves",
	}
	for _, w := range english {
		englishStopwords[w] = struct{}{}
	}

	ecommerce := []string{
		"product", "item", "order", "ordered", "buy", "bought", "purchase",
		"purchased", "get", "got", "use", "used", "using", "would", "could",
		"one", "also", "really", "just", "like", "even", "still", "much",
		"well", "good", "great", "nice", "love", "loved", "best", "better",
		"amazon", "seller", "review", "star", "stars", "rating", "recommend",
	}
	for _, w := range ecommerce {
		ecommerceStopwords[w] = struct{}{}
	}
}

func isStopword(w string) bool {
	if _, ok := ecommerceStopwords[w]; ok {
		return true
	}
	_, ok := englishStopwords[w]
	return ok
}

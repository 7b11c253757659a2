package index

import (
	"strings"
	"unicode"
)

// Tokenize lowercases text and splits it into runs of letters and digits.
// Single-character tokens are discarded; they carry no lexical signal and
// would bloat the vocabulary with noise.
func Tokenize(text string) []string {
	var tokens []string
	var current []rune

	flush := func() {
		if len(current) >= 2 {
			tokens = append(tokens, string(current))
		}
		current = current[:0]
	}

	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			current = append(current, unicode.ToLower(r))
			continue
		}
		flush()
	}
	flush()

	return tokens
}

// Ngrams returns the unigrams plus adjacent-pair bigrams for the given
// tokens. Bigrams capture two-word clinical phrases such as "chest pain"
// that unigrams alone would split apart.
func Ngrams(tokens []string) []string {
	if len(tokens) == 0 {
		return nil
	}

	terms := make([]string, 0, 2*len(tokens)-1)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}

// Terms tokenizes text and expands it into the unigram+bigram term list
// used by the vectorizer.
func Terms(text string) []string {
	return Ngrams(Tokenize(strings.TrimSpace(text)))
}

package services

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/bbalet/stopwords"
	"github.com/kljensen/snowball/english"
)

// DefaultTopKeywords is how many stems Extract returns when topN is not set.
const DefaultTopKeywords = 15

type KeywordExtractorService interface {
	Extract(text string, topN int) []string
}

type keywordExtractorService struct{}

func NewKeywordExtractorService() KeywordExtractorService {
	return &keywordExtractorService{}
}

// wordPattern splits lowercased text into letter/digit runs. Tokens that
// contain a digit are discarded afterwards, but they must still be matched
// here so "node2js" does not leak a clean-looking fragment.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// boilerplate tokens that show up in almost every résumé's contact block
// and carry no signal.
var boilerplate = map[string]struct{}{
	"http":  {},
	"https": {},
	"com":   {},
}

// Extract returns the topN most frequent word stems in text, most frequent
// first. Ties are broken lexicographically so repeated calls on the same
// input always return the identical sequence. Empty or fully filtered input
// yields an empty slice.
func (s *keywordExtractorService) Extract(text string, topN int) []string {
	if topN <= 0 {
		topN = DefaultTopKeywords
	}

	tokens := wordPattern.FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]int)
	for _, token := range tokens {
		if len(token) <= 3 {
			continue
		}
		if containsDigit(token) {
			continue
		}
		if _, skip := boilerplate[token]; skip {
			continue
		}
		if isStopWord(token) {
			continue
		}

		stem := english.Stem(token, false)
		counts[stem]++
	}

	type stemCount struct {
		stem  string
		count int
	}

	ranked := make([]stemCount, 0, len(counts))
	for stem, count := range counts {
		ranked = append(ranked, stemCount{stem: stem, count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].stem < ranked[j].stem
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	keywords := make([]string, 0, len(ranked))
	for _, entry := range ranked {
		keywords = append(keywords, entry.stem)
	}

	return keywords
}

func containsDigit(token string) bool {
	for _, r := range token {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// isStopWord asks the stop-word list whether the token survives cleaning.
// CleanString returns an empty string exactly when the token is a stop word.
func isStopWord(token string) bool {
	return strings.TrimSpace(stopwords.CleanString(token, "en", false)) == ""
}

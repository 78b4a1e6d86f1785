package checker

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Suhas010/Framelytics/internal/model"
)

// lower returns the Unicode-lowercased form of s. strings.ToLower is
// wrong for some scripts (Turkish dotless i, for one), and page copy is
// not guaranteed to be English. The caser is created per call because
// Casers are stateful and must not be shared between goroutines.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// tokenizeWords splits text into lowercased words, dropping punctuation.
func tokenizeWords(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
	})
	words := make([]string, 0, len(fields))
	for _, f := range fields {
		words = append(words, lower(f))
	}
	return words
}

// deriveKeywords derives the page's target keywords. An explicit
// keywords meta tag wins (comma-split, lowercased); otherwise the first
// three words longer than three characters are taken from the title and
// from the first H1, lowercased and de-duplicated.
func deriveKeywords(nodes []*model.Node) []string {
	if meta := metaByName(nodes, "keywords"); meta != nil && meta.MetaContent != "" {
		var keywords []string
		for _, part := range strings.Split(meta.MetaContent, ",") {
			if kw := strings.TrimSpace(lower(part)); kw != "" {
				keywords = append(keywords, kw)
			}
		}
		if len(keywords) > 0 {
			return keywords
		}
	}

	seen := make(map[string]bool)
	var keywords []string
	collect := func(text string) {
		count := 0
		for _, word := range tokenizeWords(text) {
			if len(word) <= 3 {
				continue
			}
			if !seen[word] {
				seen[word] = true
				keywords = append(keywords, word)
			}
			count++
			if count == 3 {
				return
			}
		}
	}

	title, _ := findTitle(nodes)
	collect(title)
	if h1s := findHeadings(nodes, 1); len(h1s) > 0 {
		collect(h1s[0].Text)
	}
	return keywords
}

// containsAnyKeyword reports whether the text contains at least one of
// the derived keywords as a case-insensitive substring. With zero
// derived keywords the check is vacuously satisfied: there is nothing
// the text could be missing.
func containsAnyKeyword(text string, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	haystack := lower(text)
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

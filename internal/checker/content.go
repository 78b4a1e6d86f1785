package checker

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/Suhas010/Framelytics/internal/model"
)

// Content rule thresholds.
const (
	minContentLength  = 300   // characters
	maxContentLength  = 10000 // characters
	minFrequentLength = 4     // shortest word counted for frequency
	stuffingRatio     = 0.05  // frequency/total-words ratio flagged as stuffing
	maxParagraphChars = 300
	maxSentenceWords  = 25
	minUniqueRatio    = 0.5
	thinContentWords  = 100
	thinContentNodes  = 50
)

// ContentChecker validates text volume, keyword balance, and
// readability of the page copy.
type ContentChecker struct{}

// NewContentChecker creates a ContentChecker.
func NewContentChecker() *ContentChecker {
	return &ContentChecker{}
}

// Name returns the checker name.
func (c *ContentChecker) Name() string { return "content" }

// Category returns the checker's home category.
func (c *ContentChecker) Category() model.Category { return model.CategoryContent }

// Analyze runs the content rules.
func (c *ContentChecker) Analyze(_ context.Context, nodes []*model.Node) ([]model.Issue, error) {
	issues := make([]model.Issue, 0)

	var textNodes []*model.Node
	var parts []string
	for _, n := range nodes {
		if isTextNode(n) && n.Text != "" {
			textNodes = append(textNodes, n)
			parts = append(parts, n.Text)
		}
	}

	// An empty node list is legal input; the answer is still a finding,
	// not an engine error.
	if len(textNodes) == 0 {
		issues = append(issues, model.NewIssue(model.SeverityError, model.PriorityCritical,
			model.CategoryContent, "No text content found on the page").
			WithRecommendation("Search engines cannot rank a page without indexable text."))
		return issues, nil
	}

	text := strings.Join(parts, " ")
	words := tokenizeWords(text)

	issues = append(issues, c.checkLength(text)...)
	issues = append(issues, c.checkWordFrequency(words, nodes)...)
	issues = append(issues, c.checkReadability(textNodes)...)
	issues = append(issues, c.checkRepetition(words)...)

	if len(words) < thinContentWords && len(nodes) > thinContentNodes {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryContent,
			fmt.Sprintf("Low content-to-code ratio: %d words across %d elements", len(words), len(nodes))).
			WithRecommendation("Pages dominated by markup over copy rank poorly."))
	}

	return issues, nil
}

// checkLength flags pages with too little or very much text.
func (c *ContentChecker) checkLength(text string) []model.Issue {
	var issues []model.Issue
	length := len(text)
	if length < minContentLength {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryContent,
			fmt.Sprintf("Page text is short (%d characters, minimum %d)", length, minContentLength)).
			WithRecommendation("Thin pages struggle to rank; aim for at least 300 characters of copy."))
	} else if length > maxContentLength {
		issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
			model.CategoryContent,
			fmt.Sprintf("Page text is very long (%d characters)", length)).
			WithRecommendation("Consider splitting very long pages into focused sub-pages."))
	}
	return issues
}

// wordCount pairs a word with its occurrence count for sorting.
type wordCount struct {
	word  string
	count int
}

// topWords returns the most frequent words of at least
// minFrequentLength characters, most frequent first. Ties break by
// first occurrence so results are deterministic.
func topWords(words []string) []wordCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	for i, w := range words {
		if len(w) < minFrequentLength {
			continue
		}
		if _, ok := counts[w]; !ok {
			firstSeen[w] = i
		}
		counts[w]++
	}

	out := make([]wordCount, 0, len(counts))
	for w, n := range counts {
		out = append(out, wordCount{word: w, count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].count != out[j].count {
			return out[i].count > out[j].count
		}
		return firstSeen[out[i].word] < firstSeen[out[j].word]
	})
	return out
}

// checkWordFrequency flags keyword stuffing and frequent words missing
// from every heading.
func (c *ContentChecker) checkWordFrequency(words []string, nodes []*model.Node) []model.Issue {
	var issues []model.Issue
	if len(words) == 0 {
		return issues
	}

	frequent := topWords(words)
	if len(frequent) == 0 {
		return issues
	}

	top := frequent[0]
	if float64(top.count)/float64(len(words)) > stuffingRatio {
		issues = append(issues, model.NewIssue(model.SeverityWarning, model.PriorityImportant,
			model.CategoryContent,
			fmt.Sprintf("Possible keyword stuffing: %q makes up over 5%% of all words (%d occurrences)",
				top.word, top.count)).
			WithRecommendation("Vary the wording; repetitive copy reads as spam to ranking algorithms."))
	}

	headings := headingTexts(nodes)
	limit := 3
	if len(frequent) < limit {
		limit = len(frequent)
	}
	for _, wc := range frequent[:limit] {
		inHeading := false
		for _, h := range headings {
			if strings.Contains(lower(h), wc.word) {
				inHeading = true
				break
			}
		}
		if !inHeading {
			// First offender only; one nudge is enough.
			issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
				model.CategoryContent,
				fmt.Sprintf("Frequent word %q does not appear in any heading", wc.word)).
				WithRecommendation("Headings that echo the page's main terms help scanning and ranking."))
			break
		}
	}

	return issues
}

// checkReadability flags over-long paragraphs and run-on sentences,
// one callout each for the first offender.
func (c *ContentChecker) checkReadability(textNodes []*model.Node) []model.Issue {
	var issues []model.Issue

	for _, n := range textNodes {
		if len(n.Text) > maxParagraphChars {
			issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
				model.CategoryContent,
				fmt.Sprintf("Paragraph in %q is over %d characters", n.Name, maxParagraphChars)).
				WithNode(n).
				WithRecommendation("Short paragraphs read better, especially on mobile."))
			break
		}
	}

	for _, n := range textNodes {
		if longSentence(n.Text) {
			issues = append(issues, model.NewIssue(model.SeverityInfo, model.PriorityNiceToHave,
				model.CategoryContent,
				fmt.Sprintf("Sentence in %q runs over %d words", n.Name, maxSentenceWords)).
				WithNode(n).
				WithRecommendation("Split run-on sentences; they hurt comprehension."))
			break
		}
	}

	return issues
}

// longSentence reports whether any sentence in the text exceeds
// maxSentenceWords. Sentences split on '.', '!', and '?'.
func longSentence(text string) bool {
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
	for _, s := range sentences {
		if len(strings.Fields(s)) > maxSentenceWords {
			return true
		}
	}
	return false
}

// checkRepetition flags copy where fewer than half the words are unique.
func (c *ContentChecker) checkRepetition(words []string) []model.Issue {
	if len(words) == 0 {
		return nil
	}
	unique := make(map[string]bool, len(words))
	for _, w := range words {
		unique[w] = true
	}
	ratio := float64(len(unique)) / float64(len(words))
	if ratio < minUniqueRatio {
		return []model.Issue{
			model.NewIssue(model.SeverityWarning, model.PriorityImportant,
				model.CategoryContent,
				fmt.Sprintf("Repetitive copy: only %.0f%% of words are unique", ratio*100)).
				WithRecommendation("Rewrite repeated passages; duplication dilutes the page's focus."),
		}
	}
	return nil
}

package checker

import (
	"math"

	"github.com/Suhas010/Framelytics/internal/model"
)

// scoreCategory computes one category's score from its issues: start at
// 100, subtract each issue's priority deduction, clamp to [0,100].
func scoreCategory(issues []model.Issue) int {
	score := 100
	for _, issue := range issues {
		score -= issue.Priority.Deduction()
	}
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// overallScore computes the weighted mean of all categories that have at
// least one issue, rounded to the nearest integer. Categories with zero
// issues do not enter the mean: a clean category says nothing about the
// page, it just did not find problems. If no category has any issues the
// overall score is 100.
func overallScore(categories map[model.Category]*model.CategoryResult) int {
	var weightedSum, totalWeight float64

	for _, c := range model.AllCategories() {
		cr, ok := categories[c]
		if !ok || len(cr.Issues) == 0 {
			continue
		}
		weight := c.Weight()
		weightedSum += float64(cr.Score) * weight
		totalWeight += weight
	}

	if totalWeight == 0 {
		return 100
	}

	score := int(math.Round(weightedSum / totalWeight))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

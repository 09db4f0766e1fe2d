// Package matcher scores free-text questions against the answer catalog.
//
// Scoring is a bag-of-substrings heuristic: phrases are weighted by length,
// keywords count once each, and matching several distinct keywords earns a
// breadth bonus. Containment is plain substring containment with no word
// boundaries, so "return" also matches "underreturn".
package matcher

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"advisorqa/internal/models"
)

// Tier thresholds
const (
	HighThreshold   = 8
	MediumThreshold = 4
	LowThreshold    = 2

	phraseWeight = 3
)

// Result is the best catalog entry for a question.
type Result struct {
	Answer *models.Answer
	Score  int
	Tier   string
}

// Match returns the best-scoring answer for question, or nil when no answer
// scores at least LowThreshold. Ties keep the earliest answer in catalog order.
func Match(question string, catalog []models.Answer, placeholders models.Placeholders) *Result {
	if len(catalog) == 0 {
		return nil
	}

	text := Normalize(question, placeholders)

	best := -1
	bestScore := 0
	for i := range catalog {
		score := Score(text, &catalog[i])
		if best == -1 || score > bestScore {
			best = i
			bestScore = score
		}
	}

	tier, ok := TierFor(bestScore)
	if !ok {
		return nil
	}

	return &Result{
		Answer: &catalog[best],
		Score:  bestScore,
		Tier:   tier,
	}
}

// Normalize lower-cases the question and applies placeholder substitutions in
// order. Each {key} is replaced case-insensitively with the lower-cased value.
func Normalize(question string, placeholders models.Placeholders) string {
	text := lower(question)
	for _, p := range placeholders {
		token := "{" + lower(p.Key) + "}"
		text = strings.ReplaceAll(text, token, lower(p.Value))
	}
	return text
}

// Score computes the additive score of one answer against normalized text.
func Score(text string, answer *models.Answer) int {
	score := 0

	for _, phrase := range answer.Phrases {
		p := lower(phrase)
		if p != "" && strings.Contains(text, p) {
			score += utf8.RuneCountInString(p) * phraseWeight
		}
	}

	distinct := make(map[string]struct{})
	for _, keyword := range answer.Keywords {
		k := lower(keyword)
		if k != "" && strings.Contains(text, k) {
			score++
			distinct[k] = struct{}{}
		}
	}
	if len(distinct) > 1 {
		score += len(distinct)
	}

	return score
}

// TierFor maps a score to a confidence tier. The second return is false when
// the score is below LowThreshold.
func TierFor(score int) (string, bool) {
	switch {
	case score >= HighThreshold:
		return models.ConfidenceHigh, true
	case score >= MediumThreshold:
		return models.ConfidenceMedium, true
	case score >= LowThreshold:
		return models.ConfidenceLow, true
	}
	return "", false
}

// lower folds s with a fresh Caser; cases.Caser is not safe for concurrent use.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

package internal

import (
	"regexp"
	"strings"
)

// CategoryRankDefault is returned for labels matching no pattern, so
// unknown categories sort after every configured one.
const CategoryRankDefault = 99

// categoryPattern pairs a label phrase with its display rank. Lower ranks
// appear first in the allocation table. The ordering mirrors the
// spreadsheet tool the menu data is produced from.
type categoryPattern struct {
	phrase string
	rank   int
	re     *regexp.Regexp
}

var categoryPatterns = compileCategoryPatterns([]categoryPattern{
	{phrase: "GLOBAL EQUITY", rank: 10},
	{phrase: "ALL CAP", rank: 20},
	{phrase: "LARGE CAP", rank: 30},
	{phrase: "MID CAP", rank: 40},
	{phrase: "SMALL CAP", rank: 50},
	{phrase: "INT'L DEVELOPED", rank: 60},
	{phrase: "EMERGING MARKETS", rank: 70},
	{phrase: "REAL ESTATE", rank: 80},
	{phrase: "ALTERNATIVES", rank: 85},
	{phrase: "FIXED INCOME", rank: 90},
	{phrase: "CASH", rank: 95},
})

func compileCategoryPatterns(patterns []categoryPattern) []categoryPattern {
	out := make([]categoryPattern, len(patterns))
	for i, p := range patterns {
		p.phrase = normalizeCategoryLabel(p.phrase)
		p.re = regexp.MustCompile(`\b` + regexp.QuoteMeta(p.phrase) + `\b`)
		out[i] = p
	}
	return out
}

// normalizeCategoryLabel uppercases and drops apostrophes so that variants
// like "Int'l Developed" and "Intl Developed" compare equal.
func normalizeCategoryLabel(label string) string {
	upper := strings.ToUpper(label)
	return strings.ReplaceAll(upper, "'", "")
}

// ClassifyCategory assigns a sort rank to a model-aggregate label. Patterns
// match as whole words or phrases inside the label; among all matches the
// longest phrase wins, with remaining ties broken by the lowest rank.
// Word-boundary matching alone is not enough because multi-word phrases
// share tokens ("ALL CAP" sits inside "SMALL CAP" sans the boundary), hence
// the explicit length tie-break. Empty labels take the default rank.
func ClassifyCategory(label string) int {
	if label == "" {
		return CategoryRankDefault
	}
	normalized := normalizeCategoryLabel(label)

	bestRank := CategoryRankDefault
	bestLen := 0
	for _, p := range categoryPatterns {
		if !p.re.MatchString(normalized) {
			continue
		}
		if len(p.phrase) > bestLen {
			bestRank = p.rank
			bestLen = len(p.phrase)
		} else if len(p.phrase) == bestLen && p.rank < bestRank {
			bestRank = p.rank
		}
	}
	return bestRank
}

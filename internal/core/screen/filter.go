package screen

import (
	"sort"
	"strings"
	"unicode/utf8"
)

const (
	// MaxRanked bounds the ranked list handed to the summarizer.
	MaxRanked = 20

	depthWeight     = 2
	clickableBonus  = 10
	widgetBonus     = 5
	textLengthCap   = 20
	minFragmentRune = 2
)

// Ranked is a fragment that survived filtering, with its priority score.
type Ranked struct {
	Fragment
	Score int `json:"score"`
}

// FilterAndRank drops duplicate and placeholder fragments, scores the rest and
// returns at most MaxRanked of them, highest score first. Ties keep the order in
// which the fragments were discovered.
func FilterAndRank(fragments []Fragment) []Ranked {
	if len(fragments) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(fragments))
	ranked := make([]Ranked, 0, len(fragments))
	for _, f := range fragments {
		if _, dup := seen[f.Text]; dup || meaningless(f.Text) {
			continue
		}
		seen[f.Text] = struct{}{}
		ranked = append(ranked, Ranked{Fragment: f, Score: Score(f)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > MaxRanked {
		ranked = ranked[:MaxRanked]
	}
	return ranked
}

// Score favours deep, interactive, substantial text.
func Score(f Fragment) int {
	score := f.Depth * depthWeight
	if f.Clickable {
		score += clickableBonus
	}
	if strings.Contains(f.ClassName, "TextView") || strings.Contains(f.ClassName, "Button") {
		score += widgetBonus
	}
	return score + min(utf8.RuneCountInString(f.Text), textLengthCap)
}

func meaningless(text string) bool {
	if utf8.RuneCountInString(text) < minFragmentRune || strings.TrimSpace(text) == "" {
		return true
	}
	switch text {
	case `""`, "null", "undefined":
		return true
	}
	return false
}

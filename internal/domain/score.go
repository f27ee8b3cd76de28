package domain

import (
	"fmt"
	"math"
)

// CategoryWeights distribute the overall score across the five quality
// categories. The default set sums to 1.0.
type CategoryWeights struct {
	Position float64 `json:"position"`
	Size     float64 `json:"size"`
	Spacing  float64 `json:"spacing"`
	OMR      float64 `json:"omr"`
	Print    float64 `json:"print"`
}

// ScoreThresholds carry the category weights plus the tier cut points.
type ScoreThresholds struct {
	Weights    CategoryWeights `json:"weights"`
	Excellent  int             `json:"excellent"`
	Good       int             `json:"good"`
	Acceptable int             `json:"acceptable"`
}

// DefaultThresholds returns the standard weighting and tier cuts.
func DefaultThresholds() ScoreThresholds {
	return ScoreThresholds{
		Weights: CategoryWeights{
			Position: 0.25,
			Size:     0.20,
			Spacing:  0.20,
			OMR:      0.25,
			Print:    0.10,
		},
		Excellent:  90,
		Good:       70,
		Acceptable: 50,
	}
}

// CategoryScores are the five per-category results, each in [0,100].
type CategoryScores struct {
	Position int `json:"position"`
	Size     int `json:"size"`
	Spacing  int `json:"spacing"`
	OMR      int `json:"omr"`
	Print    int `json:"print"`
}

// QualityReport is the aggregate evaluation of a whole template.
type QualityReport struct {
	OverallScore   int            `json:"overallScore"`
	CategoryScores CategoryScores `json:"categoryScores"`
	Issues         []string       `json:"issues"`
	Suggestions    []string       `json:"suggestions"`
}

// QualityTier buckets an overall score for display.
type QualityTier string

const (
	TierExcellent  QualityTier = "excellent"
	TierGood       QualityTier = "good"
	TierAcceptable QualityTier = "acceptable"
	TierPoor       QualityTier = "poor"
)

// Tier maps an overall score to its display bucket.
func Tier(score int, t ScoreThresholds) QualityTier {
	switch {
	case score >= t.Excellent:
		return TierExcellent
	case score >= t.Good:
		return TierGood
	case score >= t.Acceptable:
		return TierAcceptable
	default:
		return TierPoor
	}
}

const (
	penaltyMissingMarker = 20
	penaltySpacingPair   = 10
)

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// ScoreTemplate evaluates a full template layout against a profile.
// Every element runs through the constraint validator; the weakest
// element caps the OMR category because one unreadable bubble breaks
// the whole scan. Issue and suggestion lists are deduplicated and each
// entry is prefixed with the element it refers to.
func ScoreTemplate(elements []Element, profile OMRStandardsProfile, t ScoreThresholds) *QualityReport {
	position, spacing := 100, 100
	// size and print have no wired checks yet; they hold at 100 so the
	// category set stays stable for consumers.
	size, print := 100, 100
	omr := 100

	var issues, suggestions []string
	markerCount, regionCount := 0, 0
	for _, el := range elements {
		var label string
		if el.Kind == ElementMarker {
			markerCount++
			label = fmt.Sprintf("marker %d", markerCount)
		} else {
			regionCount++
			label = fmt.Sprintf("region %d", regionCount)
		}
		res := ValidateElement(el, profile)
		if res.Score < omr {
			omr = res.Score
		}
		for _, msg := range res.Issues {
			issues = append(issues, label+": "+msg)
		}
		for _, msg := range res.Suggestions {
			suggestions = append(suggestions, label+": "+msg)
		}
	}

	if missing := profile.Positioning.MinCount - markerCount; missing > 0 {
		position -= missing * penaltyMissingMarker
		issues = append(issues, fmt.Sprintf("only %d of %d required positioning markers placed", markerCount, profile.Positioning.MinCount))
		suggestions = append(suggestions, fmt.Sprintf("place %d positioning markers near the page corners", profile.Positioning.OptimalCount))
	}

	// Markers sit outside the answer area, so the pairwise spacing
	// check covers answer regions only.
	regions := make([]Element, 0, len(elements))
	for _, el := range elements {
		if el.Kind != ElementMarker {
			regions = append(regions, el)
		}
	}
	for i := 0; i < len(regions); i++ {
		for j := i + 1; j < len(regions); j++ {
			d := Distance(regions[i].Center(), regions[j].Center())
			if d < profile.Bubble.MinSpacing {
				spacing -= penaltySpacingPair
				issues = append(issues, fmt.Sprintf("regions %d and %d are too close (%.1fmm < %.1fmm)", i+1, j+1, d, profile.Bubble.MinSpacing))
				suggestions = append(suggestions, fmt.Sprintf("keep region centers at least %.1fmm apart", profile.Bubble.MinSpacing))
			}
		}
	}

	scores := CategoryScores{
		Position: clampScore(position),
		Size:     clampScore(size),
		Spacing:  clampScore(spacing),
		OMR:      clampScore(omr),
		Print:    clampScore(print),
	}
	w := t.Weights
	overall := float64(scores.Position)*w.Position +
		float64(scores.Size)*w.Size +
		float64(scores.Spacing)*w.Spacing +
		float64(scores.OMR)*w.OMR +
		float64(scores.Print)*w.Print

	return &QualityReport{
		OverallScore:   clampScore(int(math.Round(overall))),
		CategoryScores: scores,
		Issues:         dedupe(issues),
		Suggestions:    dedupe(suggestions),
	}
}

package domain

import (
	"fmt"
	"math"
)

// ElementKind classifies a template element for validation purposes.
type ElementKind string

const (
	ElementBubble  ElementKind = "bubble"
	ElementMarker  ElementKind = "marker"
	ElementContent ElementKind = "content"
	ElementBarcode ElementKind = "barcode"
)

// Element is one axis-aligned template element under validation.
type Element struct {
	Kind ElementKind `json:"kind"`
	Rect
}

// BubbleElement wraps a rectangle as an answer bubble.
func BubbleElement(r Rect) Element {
	return Element{Kind: ElementBubble, Rect: r}
}

// MarkerElement wraps a rectangle as a positioning marker.
func MarkerElement(r Rect) Element {
	return Element{Kind: ElementMarker, Rect: r}
}

// ElementFromRegion maps a hand-drawn region to its validation kind:
// choice regions are checked as bubbles, everything else as free
// content areas.
func ElementFromRegion(r Region) Element {
	kind := ElementContent
	if r.QuestionType == QuestionChoice {
		kind = ElementBubble
	}
	return Element{Kind: kind, Rect: r.Rect()}
}

// RegionValidation is the outcome of checking one element against a
// standards profile. IsValid is true exactly when Issues is empty.
type RegionValidation struct {
	IsValid     bool     `json:"isValid"`
	Score       int      `json:"score"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

func (v *RegionValidation) penalize(points int, issue, suggestion string) {
	v.Score -= points
	v.Issues = append(v.Issues, issue)
	v.Suggestions = append(v.Suggestions, suggestion)
}

// Penalty weights. Undersized bubbles cost more than oversized ones:
// a bubble below the scanner's detection floor fails silently, while an
// oversized one merely risks crosstalk with neighbours.
const (
	penaltyBubbleUndersize = 30
	penaltyBubbleOversize  = 15
	penaltyMarkerSize      = 20
	maxMarginPenalty       = 20
)

// marginPenalty grades how far pos falls short of the required margin,
// proportional to the deficit and capped at maxMarginPenalty.
func marginPenalty(pos, required float64) int {
	if required <= 0 || pos >= required {
		return 0
	}
	ratio := (required - pos) / required
	if ratio > 1 {
		ratio = 1
	}
	return int(math.Ceil(ratio * maxMarginPenalty))
}

// ValidateElement checks one element against the profile. Violations
// never block anything; they are reported as data with the score
// floored at zero.
func ValidateElement(el Element, profile OMRStandardsProfile) RegionValidation {
	v := RegionValidation{Score: 100}
	dim := el.MinDimension()

	switch el.Kind {
	case ElementBubble:
		if dim < profile.Bubble.MinSize {
			v.penalize(penaltyBubbleUndersize,
				fmt.Sprintf("bubble size too small (%.1fmm < %.1fmm)", dim, profile.Bubble.MinSize),
				fmt.Sprintf("adjust bubble size to %.1fmm", profile.Bubble.OptimalSize))
		} else if dim > profile.Bubble.MaxSize {
			v.penalize(penaltyBubbleOversize,
				fmt.Sprintf("bubble size too large (%.1fmm > %.1fmm)", dim, profile.Bubble.MaxSize),
				fmt.Sprintf("adjust bubble size to %.1fmm", profile.Bubble.OptimalSize))
		}
	case ElementMarker:
		if dim < profile.Positioning.MinSize {
			v.penalize(penaltyMarkerSize,
				fmt.Sprintf("positioning marker too small (%.1fmm < %.1fmm)", dim, profile.Positioning.MinSize),
				fmt.Sprintf("adjust marker size to %.1fmm", profile.Positioning.OptimalSize))
		} else if dim > profile.Positioning.MaxSize {
			v.penalize(penaltyMarkerSize,
				fmt.Sprintf("positioning marker too large (%.1fmm > %.1fmm)", dim, profile.Positioning.MaxSize),
				fmt.Sprintf("adjust marker size to %.1fmm", profile.Positioning.OptimalSize))
		}
	}

	if p := marginPenalty(el.X, profile.Margins.Left); p > 0 {
		v.penalize(p,
			fmt.Sprintf("too close to the left edge (%.1fmm < %.1fmm margin)", el.X, profile.Margins.Left),
			fmt.Sprintf("move right to at least %.1fmm", profile.Margins.Left))
	}
	if p := marginPenalty(el.Y, profile.Margins.Top); p > 0 {
		v.penalize(p,
			fmt.Sprintf("too close to the top edge (%.1fmm < %.1fmm margin)", el.Y, profile.Margins.Top),
			fmt.Sprintf("move down to at least %.1fmm", profile.Margins.Top))
	}

	if v.Score < 0 {
		v.Score = 0
	}
	v.IsValid = len(v.Issues) == 0
	return v
}

package domain

// QuestionType classifies what a hand-drawn region captures.
type QuestionType string

const (
	QuestionChoice      QuestionType = "choice"
	QuestionFill        QuestionType = "fill"
	QuestionCalculation QuestionType = "calculation"
	QuestionEssay       QuestionType = "essay"
	QuestionAnalysis    QuestionType = "analysis"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionChoice, QuestionFill, QuestionCalculation, QuestionEssay, QuestionAnalysis:
		return true
	}
	return false
}

// OptionLayout is the direction choice options run inside a region.
type OptionLayout string

const (
	OptionsHorizontal OptionLayout = "horizontal"
	OptionsVertical   OptionLayout = "vertical"
)

// Region is one editable question area on the template. Geometry is in
// image-pixel space. OptionCount and OptionLayout are meaningful only
// when QuestionType is choice.
type Region struct {
	ID             string       `json:"id"`
	QuestionNumber int          `json:"questionNumber"`
	X              float64      `json:"x"`
	Y              float64      `json:"y"`
	Width          float64      `json:"width"`
	Height         float64      `json:"height"`
	QuestionType   QuestionType `json:"questionType"`
	OptionCount    int          `json:"optionCount,omitempty"`
	OptionLayout   OptionLayout `json:"optionLayout,omitempty"`
}

// Rect returns the region's bounding rectangle.
func (r Region) Rect() Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// RegionDefaults are the settings applied to newly drawn regions.
type RegionDefaults struct {
	QuestionType QuestionType `json:"questionType"`
	OptionCount  int          `json:"optionCount,omitempty"`
	OptionLayout OptionLayout `json:"optionLayout,omitempty"`
}

// Normalized fills unset fields with the standard defaults: choice
// questions with four horizontally laid-out options.
func (d RegionDefaults) Normalized() RegionDefaults {
	if !d.QuestionType.Valid() {
		d.QuestionType = QuestionChoice
	}
	if d.QuestionType == QuestionChoice {
		if d.OptionCount < MinOptionCount || d.OptionCount > MaxOptionCount {
			d.OptionCount = 4
		}
		if d.OptionLayout != OptionsVertical {
			d.OptionLayout = OptionsHorizontal
		}
	} else {
		d.OptionCount = 0
		d.OptionLayout = ""
	}
	return d
}

// CloneRegions deep-copies a region list. Regions hold no reference
// fields today but snapshots must stay isolated from later edits.
func CloneRegions(regions []Region) []Region {
	out := make([]Region, len(regions))
	copy(out, regions)
	return out
}

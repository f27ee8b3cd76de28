package dto

import "omr-studio/internal/domain"

// GenerateLayoutRequest carries the bubble grid parameters for layout generation
// @Description Request body for generating a bubble layout
type GenerateLayoutRequest struct {
	QuestionCount       int     `json:"questionCount"`
	OptionCount         int     `json:"optionCount"`
	Layout              string  `json:"layout"`
	StartQuestionNumber int     `json:"startQuestionNumber,omitempty"`
	BubbleSize          float64 `json:"bubbleSize"`
	Spacing             float64 `json:"spacing"`
	RowCount            int     `json:"rowCount,omitempty"`
	ColumnCount         int     `json:"columnCount,omitempty"`
}

// ToMatrixConfig converts the request into a layout config, numbering
// from question 1 when no start is given.
func (r GenerateLayoutRequest) ToMatrixConfig() domain.MatrixConfig {
	start := r.StartQuestionNumber
	if start == 0 {
		start = 1
	}
	return domain.MatrixConfig{
		QuestionCount:       r.QuestionCount,
		OptionCount:         r.OptionCount,
		Layout:              domain.LayoutMode(r.Layout),
		StartQuestionNumber: start,
		BubbleSize:          r.BubbleSize,
		Spacing:             r.Spacing,
		RowCount:            r.RowCount,
		ColumnCount:         r.ColumnCount,
	}
}

// GenerateLayoutResponse returns the generated grid together with the
// mark-reading config derived from it
type GenerateLayoutResponse struct {
	Layout    domain.GeneratedLayout `json:"layout"`
	OMRConfig domain.OMRConfig       `json:"omrConfig"`
	Warnings  []string               `json:"warnings,omitempty"`
}

// ValidateLayoutResponse reports whether a layout config is usable
type ValidateLayoutResponse struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// TemplateElementsRequest carries the drawn template contents for
// validation and scoring. Markers are the positioning squares; regions
// are the drawn question areas. A non-zero DPI scales the standards
// profile to pixel space so pixel-space geometry can be checked
// directly.
// @Description Request body for template validation and scoring
type TemplateElementsRequest struct {
	Regions    []domain.Region         `json:"regions"`
	Markers    []domain.Rect           `json:"markers,omitempty"`
	ExamType   string                  `json:"examType,omitempty"`
	DPI        int                     `json:"dpi,omitempty"`
	Thresholds *domain.ScoreThresholds `json:"thresholds,omitempty"`
}

// ElementValidation is the per-element outcome of a validation run
type ElementValidation struct {
	Label string `json:"label"`
	domain.RegionValidation
}

// ValidateTemplateResponse lists the per-element validation outcomes
type ValidateTemplateResponse struct {
	ExamType string              `json:"examType"`
	Results  []ElementValidation `json:"results"`
}

// ScoreTemplateResponse is the aggregate quality evaluation
type ScoreTemplateResponse struct {
	ExamType string               `json:"examType"`
	Report   domain.QualityReport `json:"report"`
	Tier     domain.QualityTier   `json:"tier"`
}

// StandardsResponse returns one resolved standards profile. Unit is
// "mm" for print scale or "px" when a dpi conversion was requested.
type StandardsResponse struct {
	ExamType string                     `json:"examType"`
	Unit     string                     `json:"unit"`
	DPI      int                        `json:"dpi,omitempty"`
	Profile  domain.OMRStandardsProfile `json:"profile"`
}

// StandardsNamesResponse lists the registered exam types
type StandardsNamesResponse struct {
	ExamTypes []string `json:"examTypes"`
}

package domain

import (
	"fmt"
	"strings"
)

// LayoutMode selects how generated bubbles are arranged on the page.
type LayoutMode string

const (
	LayoutHorizontal LayoutMode = "horizontal"
	LayoutVertical   LayoutMode = "vertical"
	LayoutMatrix     LayoutMode = "matrix"
)

const (
	// MinOptionCount and MaxOptionCount bound the options of one question.
	MinOptionCount = 2
	MaxOptionCount = 8

	// RecommendedMinBubbleSize and RecommendedMaxBubbleSize are the soft
	// bubble-size bounds. Configs outside them stay legal but are flagged
	// with a warning because they scan unreliably on common hardware.
	RecommendedMinBubbleSize = 8.0
	RecommendedMaxBubbleSize = 15.0
)

// MatrixConfig describes one bubble grid to generate. RowCount and
// ColumnCount apply to the matrix layout only; zero means derive from
// the question count.
type MatrixConfig struct {
	QuestionCount       int        `json:"questionCount"`
	OptionCount         int        `json:"optionCount"`
	Layout              LayoutMode `json:"layout"`
	StartQuestionNumber int        `json:"startQuestionNumber"`
	BubbleSize          float64    `json:"bubbleSize"`
	Spacing             float64    `json:"spacing"`
	RowCount            int        `json:"rowCount,omitempty"`
	ColumnCount         int        `json:"columnCount,omitempty"`
}

// ConfigValidation is the outcome of validating a configuration record.
// Errors block generation, warnings never do.
type ConfigValidation struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Summary joins the blocking errors into one line.
func (v ConfigValidation) Summary() string {
	return strings.Join(v.Errors, "; ")
}

// Validate checks every field bound of the config. It never rejects a
// config for quality reasons alone: sizes outside the recommended range
// produce warnings, not errors.
func (c MatrixConfig) Validate() ConfigValidation {
	var errs, warns []string

	if c.QuestionCount < 1 {
		errs = append(errs, fmt.Sprintf("questionCount must be at least 1, got %d", c.QuestionCount))
	}
	if c.OptionCount < MinOptionCount || c.OptionCount > MaxOptionCount {
		errs = append(errs, fmt.Sprintf("optionCount must be between %d and %d, got %d", MinOptionCount, MaxOptionCount, c.OptionCount))
	}
	switch c.Layout {
	case LayoutHorizontal, LayoutVertical, LayoutMatrix:
	default:
		errs = append(errs, fmt.Sprintf("unknown layout %q", c.Layout))
	}
	if c.StartQuestionNumber < 1 {
		errs = append(errs, fmt.Sprintf("startQuestionNumber must be at least 1, got %d", c.StartQuestionNumber))
	}
	if c.BubbleSize <= 0 {
		errs = append(errs, "bubbleSize must be positive")
	}
	if c.Spacing < 0 {
		errs = append(errs, "spacing must not be negative")
	}
	if c.RowCount < 0 {
		errs = append(errs, "rowCount must not be negative")
	}
	if c.ColumnCount < 0 {
		errs = append(errs, "columnCount must not be negative")
	}
	if c.Layout == LayoutMatrix && c.RowCount > 0 && c.ColumnCount > 0 && c.RowCount*c.ColumnCount < c.QuestionCount {
		errs = append(errs, fmt.Sprintf("matrix grid %dx%d cannot hold %d questions", c.RowCount, c.ColumnCount, c.QuestionCount))
	}

	if c.BubbleSize > 0 && c.BubbleSize < RecommendedMinBubbleSize {
		warns = append(warns, fmt.Sprintf("bubbleSize %.1f is below the recommended minimum of %.1f", c.BubbleSize, RecommendedMinBubbleSize))
	}
	if c.BubbleSize > RecommendedMaxBubbleSize {
		warns = append(warns, fmt.Sprintf("bubbleSize %.1f is above the recommended maximum of %.1f", c.BubbleSize, RecommendedMaxBubbleSize))
	}

	return ConfigValidation{Valid: len(errs) == 0, Errors: errs, Warnings: warns}
}

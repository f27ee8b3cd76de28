package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLayoutVertical(t *testing.T) {
	layout, err := GenerateLayout(MatrixConfig{
		QuestionCount:       5,
		OptionCount:         4,
		Layout:              LayoutVertical,
		StartQuestionNumber: 1,
		BubbleSize:          12,
		Spacing:             8,
	})
	require.NoError(t, err)

	assert.Len(t, layout.Bubbles, 20)
	assert.Equal(t, 92.0, layout.TotalWidth, "5 bubbles wide with 4 gaps")
	assert.Equal(t, 72.0, layout.TotalHeight, "4 bubbles tall with 3 gaps")

	// options of question 1 stack downward
	first := layout.Bubbles[0]
	assert.Equal(t, 1, first.QuestionNumber)
	assert.Equal(t, "A", first.Option)
	assert.Equal(t, 0.0, first.X)
	assert.Equal(t, 0.0, first.Y)
	assert.Equal(t, 20.0, layout.Bubbles[1].Y, "center step is bubbleSize+spacing")

	// question 2 starts one column to the right
	second := layout.Bubbles[4]
	assert.Equal(t, 2, second.QuestionNumber)
	assert.Equal(t, "A", second.Option)
	assert.Equal(t, 20.0, second.X)
	assert.Equal(t, 0.0, second.Y)

	for _, b := range layout.Bubbles {
		assert.Equal(t, 12.0, b.Width)
		assert.Equal(t, 12.0, b.Height)
	}
}

func TestGenerateLayoutHorizontal(t *testing.T) {
	layout, err := GenerateLayout(MatrixConfig{
		QuestionCount:       3,
		OptionCount:         5,
		Layout:              LayoutHorizontal,
		StartQuestionNumber: 10,
		BubbleSize:          10,
		Spacing:             5,
	})
	require.NoError(t, err)

	assert.Len(t, layout.Bubbles, 15)
	assert.Equal(t, 5*10.0+4*5.0, layout.TotalWidth)
	assert.Equal(t, 3*10.0+2*5.0, layout.TotalHeight)

	// options run rightward, questions stack downward
	assert.Equal(t, 15.0, layout.Bubbles[1].X)
	assert.Equal(t, 0.0, layout.Bubbles[1].Y)
	assert.Equal(t, 0.0, layout.Bubbles[5].X)
	assert.Equal(t, 15.0, layout.Bubbles[5].Y)

	// numbering starts at the configured offset
	assert.Equal(t, 10, layout.Bubbles[0].QuestionNumber)
	assert.Equal(t, 12, layout.Bubbles[14].QuestionNumber)
	assert.Equal(t, "E", layout.Bubbles[4].Option)
}

func TestGenerateLayoutMatrix(t *testing.T) {
	layout, err := GenerateLayout(MatrixConfig{
		QuestionCount:       4,
		OptionCount:         4,
		Layout:              LayoutMatrix,
		StartQuestionNumber: 1,
		BubbleSize:          10,
		Spacing:             5,
	})
	require.NoError(t, err)

	// 4 questions derive a 2x2 cell grid; each cell is one option row
	cellWidth := 4*10.0 + 3*5.0
	assert.Equal(t, 2*cellWidth+2*5.0, layout.TotalWidth)
	assert.Equal(t, 2*10.0+2*5.0, layout.TotalHeight)

	q3 := layout.Bubbles[8]
	assert.Equal(t, 3, q3.QuestionNumber)
	assert.Equal(t, 0.0, q3.X, "question 3 wraps to the second cell row")
	assert.Equal(t, 20.0, q3.Y)

	q2 := layout.Bubbles[4]
	assert.Equal(t, cellWidth+2*5.0, q2.X, "question 2 sits one cell to the right")
	assert.Equal(t, 0.0, q2.Y)
}

func TestGenerateLayoutMatrixExplicitGrid(t *testing.T) {
	layout, err := GenerateLayout(MatrixConfig{
		QuestionCount:       4,
		OptionCount:         2,
		Layout:              LayoutMatrix,
		StartQuestionNumber: 1,
		BubbleSize:          10,
		Spacing:             5,
		RowCount:            1,
		ColumnCount:         4,
	})
	require.NoError(t, err)

	for _, b := range layout.Bubbles {
		assert.Equal(t, 0.0, b.Y, "a single row keeps every bubble at the top")
	}
	cellWidth := 2*10.0 + 5.0
	assert.Equal(t, 4*cellWidth+3*2*5.0, layout.TotalWidth)
	assert.Equal(t, 10.0, layout.TotalHeight)
}

func TestGenerateLayoutDeterministic(t *testing.T) {
	cfg := MatrixConfig{
		QuestionCount:       7,
		OptionCount:         3,
		Layout:              LayoutMatrix,
		StartQuestionNumber: 2,
		BubbleSize:          9,
		Spacing:             4,
	}
	a, err := GenerateLayout(cfg)
	require.NoError(t, err)
	b, err := GenerateLayout(cfg)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateLayoutRejectsInvalidConfig(t *testing.T) {
	_, err := GenerateLayout(MatrixConfig{
		QuestionCount:       5,
		OptionCount:         9,
		Layout:              LayoutVertical,
		StartQuestionNumber: 1,
		BubbleSize:          12,
	})
	require.Error(t, err)

	var domainErr *DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, ErrInvalidLayoutConfig, domainErr.Code)
	assert.Contains(t, domainErr.Message, "optionCount")
}

func TestOMRConfigFromLayout(t *testing.T) {
	layout, err := GenerateLayout(MatrixConfig{
		QuestionCount:       2,
		OptionCount:         2,
		Layout:              LayoutHorizontal,
		StartQuestionNumber: 1,
		BubbleSize:          10,
		Spacing:             5,
	})
	require.NoError(t, err)

	cfg := OMRConfigFromLayout(layout)
	require.Len(t, cfg.Questions, 2)
	assert.Equal(t, 1, cfg.Questions[0].QuestionNumber)
	assert.Equal(t, 2, cfg.Questions[1].QuestionNumber)

	q1 := cfg.Questions[0].Options
	require.Len(t, q1, 2)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 10, Height: 10}, q1["A"])
	assert.Equal(t, Rect{X: 15, Y: 0, Width: 10, Height: 10}, q1["B"])
}

func TestOMRConfigFromRegions(t *testing.T) {
	regions := []Region{
		{
			ID: "r1", QuestionNumber: 1,
			X: 0, Y: 0, Width: 100, Height: 20,
			QuestionType: QuestionChoice, OptionCount: 4, OptionLayout: OptionsHorizontal,
		},
		{
			ID: "r2", QuestionNumber: 2,
			X: 0, Y: 40, Width: 200, Height: 120,
			QuestionType: QuestionEssay,
		},
		{
			ID: "r3", QuestionNumber: 3,
			X: 120, Y: 0, Width: 20, Height: 80,
			QuestionType: QuestionChoice, OptionCount: 2, OptionLayout: OptionsVertical,
		},
	}

	cfg := OMRConfigFromRegions(regions)
	require.Len(t, cfg.Questions, 2, "the essay region carries no bubbles")

	horizontal := cfg.Questions[0].Options
	require.Len(t, horizontal, 4)
	assert.Equal(t, Rect{X: 0, Y: 0, Width: 25, Height: 20}, horizontal["A"])
	assert.Equal(t, Rect{X: 75, Y: 0, Width: 25, Height: 20}, horizontal["D"])

	vertical := cfg.Questions[1].Options
	require.Len(t, vertical, 2)
	assert.Equal(t, Rect{X: 120, Y: 0, Width: 20, Height: 40}, vertical["A"])
	assert.Equal(t, Rect{X: 120, Y: 40, Width: 20, Height: 40}, vertical["B"])
}

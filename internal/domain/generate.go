package domain

import "math"

// BubbleRegion is one generated answer bubble. Width and height always
// equal the configured bubble size.
type BubbleRegion struct {
	QuestionNumber int     `json:"questionNumber"`
	Option         string  `json:"option"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
}

// GeneratedLayout is the full output of the layout generator: every
// bubble plus the bounding size of the grid.
type GeneratedLayout struct {
	Bubbles     []BubbleRegion `json:"bubbles"`
	TotalWidth  float64        `json:"totalWidth"`
	TotalHeight float64        `json:"totalHeight"`
}

// OptionLabel returns the letter for a 0-indexed option (A for 0).
func OptionLabel(i int) string {
	return string(rune('A' + i))
}

// GenerateLayout produces the bubble grid described by cfg. The config
// is validated first; an invalid config yields a structured error and
// no layout. Identical configs produce identical layouts.
func GenerateLayout(cfg MatrixConfig) (*GeneratedLayout, error) {
	if v := cfg.Validate(); !v.Valid {
		return nil, NewLayoutConfigError(v)
	}
	switch cfg.Layout {
	case LayoutHorizontal:
		return generateHorizontal(cfg), nil
	case LayoutVertical:
		return generateVertical(cfg), nil
	default:
		return generateMatrix(cfg), nil
	}
}

// span is the extent of n bubbles of the given size separated by gap.
func span(n int, size, gap float64) float64 {
	if n < 1 {
		return 0
	}
	return float64(n)*size + float64(n-1)*gap
}

// generateHorizontal lays the options of each question left to right
// and stacks questions top to bottom.
func generateHorizontal(cfg MatrixConfig) *GeneratedLayout {
	step := cfg.BubbleSize + cfg.Spacing
	bubbles := make([]BubbleRegion, 0, cfg.QuestionCount*cfg.OptionCount)
	for q := 0; q < cfg.QuestionCount; q++ {
		for o := 0; o < cfg.OptionCount; o++ {
			bubbles = append(bubbles, BubbleRegion{
				QuestionNumber: cfg.StartQuestionNumber + q,
				Option:         OptionLabel(o),
				X:              float64(o) * step,
				Y:              float64(q) * step,
				Width:          cfg.BubbleSize,
				Height:         cfg.BubbleSize,
			})
		}
	}
	return &GeneratedLayout{
		Bubbles:     bubbles,
		TotalWidth:  span(cfg.OptionCount, cfg.BubbleSize, cfg.Spacing),
		TotalHeight: span(cfg.QuestionCount, cfg.BubbleSize, cfg.Spacing),
	}
}

// generateVertical is the transpose of the horizontal layout: options
// stack top to bottom, questions run left to right.
func generateVertical(cfg MatrixConfig) *GeneratedLayout {
	step := cfg.BubbleSize + cfg.Spacing
	bubbles := make([]BubbleRegion, 0, cfg.QuestionCount*cfg.OptionCount)
	for q := 0; q < cfg.QuestionCount; q++ {
		for o := 0; o < cfg.OptionCount; o++ {
			bubbles = append(bubbles, BubbleRegion{
				QuestionNumber: cfg.StartQuestionNumber + q,
				Option:         OptionLabel(o),
				X:              float64(q) * step,
				Y:              float64(o) * step,
				Width:          cfg.BubbleSize,
				Height:         cfg.BubbleSize,
			})
		}
	}
	return &GeneratedLayout{
		Bubbles:     bubbles,
		TotalWidth:  span(cfg.QuestionCount, cfg.BubbleSize, cfg.Spacing),
		TotalHeight: span(cfg.OptionCount, cfg.BubbleSize, cfg.Spacing),
	}
}

// generateMatrix places questions row-major into a grid of cells, each
// cell holding one question's full option row. Cells are separated by
// twice the bubble spacing on both axes so the grid reads as blocks.
func generateMatrix(cfg MatrixConfig) *GeneratedLayout {
	n := cfg.QuestionCount
	rows, cols := cfg.RowCount, cfg.ColumnCount
	switch {
	case rows <= 0 && cols <= 0:
		rows = int(math.Ceil(math.Sqrt(float64(n))))
		cols = int(math.Ceil(float64(n) / float64(rows)))
	case rows <= 0:
		rows = int(math.Ceil(float64(n) / float64(cols)))
	case cols <= 0:
		cols = int(math.Ceil(float64(n) / float64(rows)))
	}

	step := cfg.BubbleSize + cfg.Spacing
	cellWidth := span(cfg.OptionCount, cfg.BubbleSize, cfg.Spacing)
	cellHeight := cfg.BubbleSize
	cellGap := 2 * cfg.Spacing

	bubbles := make([]BubbleRegion, 0, n*cfg.OptionCount)
	for q := 0; q < n; q++ {
		baseX := float64(q%cols) * (cellWidth + cellGap)
		baseY := float64(q/cols) * (cellHeight + cellGap)
		for o := 0; o < cfg.OptionCount; o++ {
			bubbles = append(bubbles, BubbleRegion{
				QuestionNumber: cfg.StartQuestionNumber + q,
				Option:         OptionLabel(o),
				X:              baseX + float64(o)*step,
				Y:              baseY,
				Width:          cfg.BubbleSize,
				Height:         cfg.BubbleSize,
			})
		}
	}
	return &GeneratedLayout{
		Bubbles:     bubbles,
		TotalWidth:  float64(cols)*cellWidth + float64(cols-1)*cellGap,
		TotalHeight: float64(rows)*cellHeight + float64(rows-1)*cellGap,
	}
}

// OMRQuestion groups the option rectangles of one question in the
// shape the downstream mark-reading pipeline parses.
type OMRQuestion struct {
	QuestionNumber int             `json:"questionNumber"`
	Options        map[string]Rect `json:"options"`
}

// OMRConfig is the serializable layout record handed to the OCR side.
type OMRConfig struct {
	Questions []OMRQuestion `json:"questions"`
}

// OMRConfigFromLayout regroups generated bubbles by question number,
// preserving generation order.
func OMRConfigFromLayout(layout *GeneratedLayout) OMRConfig {
	index := make(map[int]int)
	questions := make([]OMRQuestion, 0)
	for _, b := range layout.Bubbles {
		i, ok := index[b.QuestionNumber]
		if !ok {
			i = len(questions)
			index[b.QuestionNumber] = i
			questions = append(questions, OMRQuestion{
				QuestionNumber: b.QuestionNumber,
				Options:        make(map[string]Rect),
			})
		}
		questions[i].Options[b.Option] = Rect{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
	}
	return OMRConfig{Questions: questions}
}

// OMRConfigFromRegions derives option rectangles for hand-drawn choice
// regions by splitting each region evenly along its option layout axis.
// Regions of other question types carry no bubbles and are skipped.
func OMRConfigFromRegions(regions []Region) OMRConfig {
	questions := make([]OMRQuestion, 0, len(regions))
	for _, r := range regions {
		if r.QuestionType != QuestionChoice || r.OptionCount < MinOptionCount {
			continue
		}
		options := make(map[string]Rect, r.OptionCount)
		for o := 0; o < r.OptionCount; o++ {
			cell := Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
			if r.OptionLayout == OptionsVertical {
				cell.Height = r.Height / float64(r.OptionCount)
				cell.Y = r.Y + float64(o)*cell.Height
			} else {
				cell.Width = r.Width / float64(r.OptionCount)
				cell.X = r.X + float64(o)*cell.Width
			}
			options[OptionLabel(o)] = cell
		}
		questions = append(questions, OMRQuestion{QuestionNumber: r.QuestionNumber, Options: options})
	}
	return OMRConfig{Questions: questions}
}

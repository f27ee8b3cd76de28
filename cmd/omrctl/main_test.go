package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"omr-studio/internal/config"
	"omr-studio/internal/domain"
	"omr-studio/internal/dto"
	"omr-studio/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(config.LoggerConfig{Level: "error", Env: "production"}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func writeTemplateFile(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "template.json")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func choiceRegion(n int, x, y, size float64) domain.Region {
	return domain.Region{
		ID:             "r" + string(rune('0'+n)),
		QuestionNumber: n,
		X:              x,
		Y:              y,
		Width:          size,
		Height:         size,
		QuestionType:   domain.QuestionChoice,
		OptionCount:    4,
		OptionLayout:   domain.OptionsHorizontal,
	}
}

func TestRootCommandWiring(t *testing.T) {
	root := rootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, strings.Fields(c.Use)[0])
	}
	assert.Contains(t, names, "generate")
	assert.Contains(t, names, "validate")
	assert.Contains(t, names, "standards")
}

func TestRunGenerateWritesLayoutFile(t *testing.T) {
	out := filepath.Join(t.TempDir(), "layout.json")
	req := dto.GenerateLayoutRequest{
		QuestionCount: 4,
		OptionCount:   4,
		Layout:        string(domain.LayoutVertical),
		BubbleSize:    12,
		Spacing:       20,
	}

	require.NoError(t, runGenerate(req, false, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var layout domain.GeneratedLayout
	require.NoError(t, json.Unmarshal(data, &layout))
	assert.Len(t, layout.Bubbles, 16)
	assert.Greater(t, layout.TotalWidth, 0.0)
	assert.Greater(t, layout.TotalHeight, 0.0)
}

func TestRunGenerateOMRConfig(t *testing.T) {
	out := filepath.Join(t.TempDir(), "omr.json")
	req := dto.GenerateLayoutRequest{
		QuestionCount: 3,
		OptionCount:   5,
		Layout:        string(domain.LayoutHorizontal),
		BubbleSize:    12,
		Spacing:       20,
	}

	require.NoError(t, runGenerate(req, true, out))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var cfg domain.OMRConfig
	require.NoError(t, json.Unmarshal(data, &cfg))
	require.Len(t, cfg.Questions, 3)
	assert.Equal(t, 1, cfg.Questions[0].QuestionNumber)
	assert.Len(t, cfg.Questions[0].Options, 5)
	assert.Contains(t, cfg.Questions[0].Options, "E")
}

func TestRunGenerateInvalidConfig(t *testing.T) {
	out := filepath.Join(t.TempDir(), "layout.json")
	req := dto.GenerateLayoutRequest{
		QuestionCount: 4,
		OptionCount:   1,
		Layout:        string(domain.LayoutVertical),
		BubbleSize:    12,
		Spacing:       20,
	}

	err := runGenerate(req, false, out)
	require.Error(t, err)
	assert.NoFileExists(t, out)
}

func TestRunValidateCleanTemplate(t *testing.T) {
	path := writeTemplateFile(t, dto.TemplateElementsRequest{
		Regions: []domain.Region{
			choiceRegion(1, 20, 40, 12),
			choiceRegion(2, 60, 40, 12),
		},
		Markers: []domain.Rect{
			{X: 20, Y: 20, Width: 8, Height: 8},
			{X: 180, Y: 20, Width: 8, Height: 8},
			{X: 20, Y: 260, Width: 8, Height: 8},
		},
	})

	assert.NoError(t, runValidate(path, "", 0))
}

func TestRunValidateBareRegionArray(t *testing.T) {
	path := writeTemplateFile(t, []domain.Region{
		choiceRegion(1, 20, 40, 12),
		choiceRegion(2, 60, 40, 12),
	})

	assert.NoError(t, runValidate(path, "", 0))
}

func TestRunValidatePoorTemplate(t *testing.T) {
	// Clustered undersized bubbles with no positioning markers drag the
	// score below the acceptable cut.
	path := writeTemplateFile(t, dto.TemplateElementsRequest{
		Regions: []domain.Region{
			choiceRegion(1, 0, 0, 3),
			choiceRegion(2, 4, 0, 3),
			choiceRegion(3, 8, 0, 3),
			choiceRegion(4, 0, 4, 3),
			choiceRegion(5, 4, 4, 3),
		},
	})

	err := runValidate(path, "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poor")
}

func TestRunValidateEmptyTemplate(t *testing.T) {
	path := writeTemplateFile(t, dto.TemplateElementsRequest{})

	err := runValidate(path, "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no regions or markers")
}

func TestRunValidateMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	err := runValidate(path, "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}

func TestRunValidateMissingFile(t *testing.T) {
	err := runValidate(filepath.Join(t.TempDir(), "absent.json"), "", 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read")
}

func TestRunValidateNegativeDPI(t *testing.T) {
	err := runValidate("unused.json", "", -300)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dpi")
}

func TestRunStandards(t *testing.T) {
	assert.NoError(t, runStandards("", 0, true))
	assert.NoError(t, runStandards("gaokao", 300, false))

	err := runStandards("gaokao", -1, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dpi")
}

func TestWriteJSONCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeJSON(map[string]int{"a": 1}, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "\n"), "output ends with a newline")

	var got map[string]int
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 1, got["a"])
}

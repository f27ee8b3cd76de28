package service_test

import (
	"errors"
	"testing"

	"omr-studio/internal/domain"
	"omr-studio/internal/dto"
	"omr-studio/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTemplateService() service.TemplateService {
	return service.NewTemplateService(domain.NewRegistry())
}

func TestGenerateLayout(t *testing.T) {
	svc := newTemplateService()

	resp, err := svc.GenerateLayout(dto.GenerateLayoutRequest{
		QuestionCount: 5,
		OptionCount:   4,
		Layout:        "vertical",
		BubbleSize:    12,
		Spacing:       8,
	})
	require.NoError(t, err)

	assert.Len(t, resp.Layout.Bubbles, 20)
	assert.Equal(t, 92.0, resp.Layout.TotalWidth)
	assert.Equal(t, 72.0, resp.Layout.TotalHeight)
	assert.Len(t, resp.OMRConfig.Questions, 5)
	assert.Len(t, resp.OMRConfig.Questions[0].Options, 4)
	assert.Empty(t, resp.Warnings)

	// start number defaults to 1 when omitted
	assert.Equal(t, 1, resp.Layout.Bubbles[0].QuestionNumber)
}

func TestGenerateLayout_StartNumber(t *testing.T) {
	svc := newTemplateService()

	resp, err := svc.GenerateLayout(dto.GenerateLayoutRequest{
		QuestionCount:       3,
		OptionCount:         4,
		Layout:              "horizontal",
		StartQuestionNumber: 11,
		BubbleSize:          12,
		Spacing:             8,
	})
	require.NoError(t, err)

	assert.Equal(t, 11, resp.OMRConfig.Questions[0].QuestionNumber)
	assert.Equal(t, 13, resp.OMRConfig.Questions[2].QuestionNumber)
}

func TestGenerateLayout_InvalidConfig(t *testing.T) {
	svc := newTemplateService()

	resp, err := svc.GenerateLayout(dto.GenerateLayoutRequest{
		QuestionCount: 5,
		OptionCount:   1,
		Layout:        "vertical",
		BubbleSize:    12,
		Spacing:       8,
	})
	assert.Nil(t, resp)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.ErrInvalidLayoutConfig, domainErr.Code)
	assert.Contains(t, domainErr.Message, "optionCount")
}

func TestGenerateLayout_Warnings(t *testing.T) {
	svc := newTemplateService()

	resp, err := svc.GenerateLayout(dto.GenerateLayoutRequest{
		QuestionCount: 2,
		OptionCount:   4,
		Layout:        "horizontal",
		BubbleSize:    6,
		Spacing:       8,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Warnings, 1, "undersized bubbles warn but still generate")
}

func TestValidateLayoutConfig(t *testing.T) {
	svc := newTemplateService()

	valid := svc.ValidateLayoutConfig(dto.GenerateLayoutRequest{
		QuestionCount: 5,
		OptionCount:   4,
		Layout:        "horizontal",
		BubbleSize:    12,
		Spacing:       8,
	})
	assert.True(t, valid.Valid)
	assert.Empty(t, valid.Errors)

	invalid := svc.ValidateLayoutConfig(dto.GenerateLayoutRequest{
		QuestionCount: 5,
		OptionCount:   9,
		Layout:        "diagonal",
		BubbleSize:    12,
		Spacing:       8,
	})
	assert.False(t, invalid.Valid)
	assert.Len(t, invalid.Errors, 2)
}

func TestValidateTemplate(t *testing.T) {
	svc := newTemplateService()

	req := dto.TemplateElementsRequest{
		Regions: []domain.Region{
			{ID: "r1", QuestionNumber: 1, X: 20, Y: 20, Width: 7, Height: 7, QuestionType: domain.QuestionChoice},
		},
		Markers: []domain.Rect{
			{X: 20, Y: 260, Width: 8, Height: 8},
		},
	}

	resp := svc.ValidateTemplate(req)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "default", resp.ExamType)

	assert.Equal(t, "region 1", resp.Results[0].Label)
	assert.False(t, resp.Results[0].IsValid, "7mm bubble is below the default 8mm floor")
	assert.Equal(t, 70, resp.Results[0].Score)

	assert.Equal(t, "marker 1", resp.Results[1].Label)
	assert.True(t, resp.Results[1].IsValid)

	// The practice profile relaxes the bubble floor to 6mm.
	req.ExamType = "practice"
	resp = svc.ValidateTemplate(req)
	assert.Equal(t, "practice", resp.ExamType)
	assert.True(t, resp.Results[0].IsValid)
}

func TestValidateTemplate_DPIScaling(t *testing.T) {
	svc := newTemplateService()

	req := dto.TemplateElementsRequest{
		Regions: []domain.Region{
			{ID: "r1", QuestionNumber: 1, X: 200, Y: 200, Width: 100, Height: 100, QuestionType: domain.QuestionChoice},
		},
	}

	// In millimetre space a 100-unit bubble is absurdly oversized.
	resp := svc.ValidateTemplate(req)
	assert.False(t, resp.Results[0].IsValid)

	// At 300 dpi the same geometry is pixel-scale and lands inside the
	// scaled bounds (8mm floor becomes ~94px, 15mm ceiling ~177px).
	req.DPI = 300
	resp = svc.ValidateTemplate(req)
	assert.True(t, resp.Results[0].IsValid)
}

func cornerMarkers() []domain.Rect {
	return []domain.Rect{
		{X: 20, Y: 20, Width: 8, Height: 8},
		{X: 170, Y: 20, Width: 8, Height: 8},
		{X: 20, Y: 260, Width: 8, Height: 8},
	}
}

func TestScoreTemplate(t *testing.T) {
	svc := newTemplateService()

	resp := svc.ScoreTemplate(dto.TemplateElementsRequest{
		Regions: []domain.Region{
			{ID: "r1", QuestionNumber: 1, X: 50, Y: 50, Width: 12, Height: 12, QuestionType: domain.QuestionChoice},
		},
		Markers: cornerMarkers(),
	})

	assert.Equal(t, 100, resp.Report.OverallScore)
	assert.Equal(t, domain.TierExcellent, resp.Tier)
	assert.Empty(t, resp.Report.Issues)
}

func TestScoreTemplate_MissingMarkers(t *testing.T) {
	svc := newTemplateService()

	req := dto.TemplateElementsRequest{
		Regions: []domain.Region{
			{ID: "r1", QuestionNumber: 1, X: 50, Y: 50, Width: 12, Height: 12, QuestionType: domain.QuestionChoice},
		},
	}

	resp := svc.ScoreTemplate(req)
	assert.Equal(t, 40, resp.Report.CategoryScores.Position)
	assert.Equal(t, 85, resp.Report.OverallScore)
	assert.Equal(t, domain.TierGood, resp.Tier)
	assert.Contains(t, resp.Report.Issues, "only 0 of 3 required positioning markers placed")

	// Custom thresholds shift the tier without changing the score.
	req.Thresholds = &domain.ScoreThresholds{
		Weights: domain.CategoryWeights{
			Position: 0.25,
			Size:     0.20,
			Spacing:  0.20,
			OMR:      0.25,
			Print:    0.10,
		},
		Excellent:  80,
		Good:       60,
		Acceptable: 40,
	}
	resp = svc.ScoreTemplate(req)
	assert.Equal(t, 85, resp.Report.OverallScore)
	assert.Equal(t, domain.TierExcellent, resp.Tier)
}

func TestGetStandards(t *testing.T) {
	svc := newTemplateService()

	def := svc.GetStandards("", 0)
	assert.Equal(t, "default", def.ExamType)
	assert.Equal(t, "mm", def.Unit)
	assert.Equal(t, 12.0, def.Profile.Bubble.OptimalSize)
	assert.Equal(t, 300, def.Profile.Print.OptimalDPI)

	gaokao := svc.GetStandards("gaokao", 0)
	assert.Equal(t, 10.0, gaokao.Profile.Bubble.MinSize)
	assert.Equal(t, 15.0, gaokao.Profile.Margins.Top)
	assert.Equal(t, 4, gaokao.Profile.Positioning.MinCount)
	assert.Equal(t, 15.0, gaokao.Profile.Bubble.MaxSize, "untouched leaves inherit the default")

	unknown := svc.GetStandards("martian", 0)
	assert.Equal(t, "martian", unknown.ExamType)
	assert.Equal(t, def.Profile, unknown.Profile, "unknown exam types fall back to the default profile")
}

func TestGetStandards_DPI(t *testing.T) {
	svc := newTemplateService()

	resp := svc.GetStandards("", 300)
	assert.Equal(t, "px", resp.Unit)
	assert.Equal(t, 300, resp.DPI)
	assert.InDelta(t, 141.73, resp.Profile.Bubble.OptimalSize, 0.01)
	assert.Equal(t, 3, resp.Profile.Positioning.MinCount, "counts are not lengths")
	assert.Equal(t, 300, resp.Profile.Print.OptimalDPI)
}

func TestListStandards(t *testing.T) {
	svc := newTemplateService()

	resp := svc.ListStandards()
	assert.Equal(t, []string{"final", "gaokao", "practice", "zhongkao"}, resp.ExamTypes)
}

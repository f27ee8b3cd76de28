package service

import (
	"fmt"

	"omr-studio/internal/domain"
	"omr-studio/internal/dto"
	"omr-studio/internal/logger"

	"go.uber.org/zap"
)

// TemplateService defines the stateless template operations: layout
// generation, standards lookup, and template quality evaluation.
type TemplateService interface {
	ValidateLayoutConfig(req dto.GenerateLayoutRequest) *dto.ValidateLayoutResponse
	GenerateLayout(req dto.GenerateLayoutRequest) (*dto.GenerateLayoutResponse, error)
	ValidateTemplate(req dto.TemplateElementsRequest) *dto.ValidateTemplateResponse
	ScoreTemplate(req dto.TemplateElementsRequest) *dto.ScoreTemplateResponse
	GetStandards(examType string, dpi int) *dto.StandardsResponse
	ListStandards() *dto.StandardsNamesResponse
}

// templateService implements TemplateService
type templateService struct {
	registry *domain.Registry
}

// NewTemplateService creates a new instance of templateService
func NewTemplateService(registry *domain.Registry) TemplateService {
	return &templateService{registry: registry}
}

// ValidateLayoutConfig implements TemplateService
func (s *templateService) ValidateLayoutConfig(req dto.GenerateLayoutRequest) *dto.ValidateLayoutResponse {
	v := req.ToMatrixConfig().Validate()
	return &dto.ValidateLayoutResponse{
		Valid:    v.Valid,
		Errors:   v.Errors,
		Warnings: v.Warnings,
	}
}

// GenerateLayout implements TemplateService
func (s *templateService) GenerateLayout(req dto.GenerateLayoutRequest) (*dto.GenerateLayoutResponse, error) {
	cfg := req.ToMatrixConfig()
	v := cfg.Validate()

	layout, err := domain.GenerateLayout(cfg)
	if err != nil {
		logger.Get().Warn("Layout generation rejected",
			zap.String("layout", string(cfg.Layout)),
			zap.Strings("errors", v.Errors))
		return nil, err
	}

	logger.Get().Info("Layout generated",
		zap.String("layout", string(cfg.Layout)),
		zap.Int("questions", cfg.QuestionCount),
		zap.Int("bubbles", len(layout.Bubbles)))

	return &dto.GenerateLayoutResponse{
		Layout:    *layout,
		OMRConfig: domain.OMRConfigFromLayout(layout),
		Warnings:  v.Warnings,
	}, nil
}

// resolveProfile picks the profile for an exam type, converted to pixel
// space when a dpi is given.
func (s *templateService) resolveProfile(examType string, dpi int) domain.OMRStandardsProfile {
	return s.registry.Resolve(examType).ScaleForDPI(dpi)
}

func examTypeLabel(examType string) string {
	if examType == "" {
		return "default"
	}
	return examType
}

// elementsFromRequest maps the request contents onto validation
// elements, regions first and markers after.
func elementsFromRequest(req dto.TemplateElementsRequest) []domain.Element {
	elements := make([]domain.Element, 0, len(req.Regions)+len(req.Markers))
	for _, r := range req.Regions {
		elements = append(elements, domain.ElementFromRegion(r))
	}
	for _, m := range req.Markers {
		elements = append(elements, domain.MarkerElement(m))
	}
	return elements
}

// ValidateTemplate implements TemplateService
func (s *templateService) ValidateTemplate(req dto.TemplateElementsRequest) *dto.ValidateTemplateResponse {
	profile := s.resolveProfile(req.ExamType, req.DPI)

	results := make([]dto.ElementValidation, 0, len(req.Regions)+len(req.Markers))
	for i, r := range req.Regions {
		results = append(results, dto.ElementValidation{
			Label:            fmt.Sprintf("region %d", i+1),
			RegionValidation: domain.ValidateElement(domain.ElementFromRegion(r), profile),
		})
	}
	for i, m := range req.Markers {
		results = append(results, dto.ElementValidation{
			Label:            fmt.Sprintf("marker %d", i+1),
			RegionValidation: domain.ValidateElement(domain.MarkerElement(m), profile),
		})
	}

	return &dto.ValidateTemplateResponse{
		ExamType: examTypeLabel(req.ExamType),
		Results:  results,
	}
}

// ScoreTemplate implements TemplateService
func (s *templateService) ScoreTemplate(req dto.TemplateElementsRequest) *dto.ScoreTemplateResponse {
	profile := s.resolveProfile(req.ExamType, req.DPI)
	thresholds := domain.DefaultThresholds()
	if req.Thresholds != nil {
		thresholds = *req.Thresholds
	}

	report := domain.ScoreTemplate(elementsFromRequest(req), profile, thresholds)

	logger.Get().Info("Template scored",
		zap.String("examType", examTypeLabel(req.ExamType)),
		zap.Int("regions", len(req.Regions)),
		zap.Int("markers", len(req.Markers)),
		zap.Int("overall", report.OverallScore))

	return &dto.ScoreTemplateResponse{
		ExamType: examTypeLabel(req.ExamType),
		Report:   *report,
		Tier:     domain.Tier(report.OverallScore, thresholds),
	}
}

// GetStandards implements TemplateService
func (s *templateService) GetStandards(examType string, dpi int) *dto.StandardsResponse {
	resp := &dto.StandardsResponse{
		ExamType: examTypeLabel(examType),
		Unit:     "mm",
		Profile:  s.registry.Resolve(examType),
	}
	if dpi > 0 {
		resp.Unit = "px"
		resp.DPI = dpi
		resp.Profile = resp.Profile.ScaleForDPI(dpi)
	}
	return resp
}

// ListStandards implements TemplateService
func (s *templateService) ListStandards() *dto.StandardsNamesResponse {
	return &dto.StandardsNamesResponse{ExamTypes: s.registry.Names()}
}

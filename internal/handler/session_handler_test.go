package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"omr-studio/internal/domain"
	"omr-studio/internal/dto"
	"omr-studio/internal/handler"
	"omr-studio/internal/middleware"
	"omr-studio/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionID = "01HZXW5JGVRRMCANV3E7Q2M6KP"

// MockSessionService
type MockSessionService struct {
	CreateFunc         func(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionStateResponse, error)
	GetFunc            func(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error)
	BeginDrawFunc      func(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.SessionStateResponse, error)
	UpdateDrawFunc     func(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.SessionStateResponse, error)
	EndDrawFunc        func(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.EndDrawResponse, error)
	SelectFunc         func(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.SelectResponse, error)
	DeleteSelectedFunc func(ctx context.Context, sessionID string) (*dto.DeleteSelectedResponse, error)
	BatchGenerateFunc  func(ctx context.Context, sessionID string, req dto.BatchGenerateRequest) (*dto.SessionStateResponse, error)
	UndoFunc           func(ctx context.Context, sessionID string) (*dto.HistoryOpResponse, error)
	RedoFunc           func(ctx context.Context, sessionID string) (*dto.HistoryOpResponse, error)
	UpdateScaleFunc    func(ctx context.Context, sessionID string, req dto.UpdateScaleRequest) (*dto.SessionStateResponse, error)
	UpdateDefaultsFunc func(ctx context.Context, sessionID string, req dto.UpdateDefaultsRequest) (*dto.SessionStateResponse, error)
	ExportFunc         func(ctx context.Context, sessionID string) (*dto.ExportResponse, error)
	CloseFunc          func(ctx context.Context, sessionID string) error
}

func (m *MockSessionService) Create(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionStateResponse, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, req)
	}
	panic("MockSessionService.CreateFunc not implemented")
}
func (m *MockSessionService) Get(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, sessionID)
	}
	panic("MockSessionService.GetFunc not implemented")
}
func (m *MockSessionService) BeginDraw(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.SessionStateResponse, error) {
	if m.BeginDrawFunc != nil {
		return m.BeginDrawFunc(ctx, sessionID, p)
	}
	panic("MockSessionService.BeginDrawFunc not implemented")
}
func (m *MockSessionService) UpdateDraw(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.SessionStateResponse, error) {
	if m.UpdateDrawFunc != nil {
		return m.UpdateDrawFunc(ctx, sessionID, p)
	}
	panic("MockSessionService.UpdateDrawFunc not implemented")
}
func (m *MockSessionService) EndDraw(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.EndDrawResponse, error) {
	if m.EndDrawFunc != nil {
		return m.EndDrawFunc(ctx, sessionID, p)
	}
	panic("MockSessionService.EndDrawFunc not implemented")
}
func (m *MockSessionService) Select(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.SelectResponse, error) {
	if m.SelectFunc != nil {
		return m.SelectFunc(ctx, sessionID, p)
	}
	panic("MockSessionService.SelectFunc not implemented")
}
func (m *MockSessionService) DeleteSelected(ctx context.Context, sessionID string) (*dto.DeleteSelectedResponse, error) {
	if m.DeleteSelectedFunc != nil {
		return m.DeleteSelectedFunc(ctx, sessionID)
	}
	panic("MockSessionService.DeleteSelectedFunc not implemented")
}
func (m *MockSessionService) BatchGenerate(ctx context.Context, sessionID string, req dto.BatchGenerateRequest) (*dto.SessionStateResponse, error) {
	if m.BatchGenerateFunc != nil {
		return m.BatchGenerateFunc(ctx, sessionID, req)
	}
	panic("MockSessionService.BatchGenerateFunc not implemented")
}
func (m *MockSessionService) Undo(ctx context.Context, sessionID string) (*dto.HistoryOpResponse, error) {
	if m.UndoFunc != nil {
		return m.UndoFunc(ctx, sessionID)
	}
	panic("MockSessionService.UndoFunc not implemented")
}
func (m *MockSessionService) Redo(ctx context.Context, sessionID string) (*dto.HistoryOpResponse, error) {
	if m.RedoFunc != nil {
		return m.RedoFunc(ctx, sessionID)
	}
	panic("MockSessionService.RedoFunc not implemented")
}
func (m *MockSessionService) UpdateScale(ctx context.Context, sessionID string, req dto.UpdateScaleRequest) (*dto.SessionStateResponse, error) {
	if m.UpdateScaleFunc != nil {
		return m.UpdateScaleFunc(ctx, sessionID, req)
	}
	panic("MockSessionService.UpdateScaleFunc not implemented")
}
func (m *MockSessionService) UpdateDefaults(ctx context.Context, sessionID string, req dto.UpdateDefaultsRequest) (*dto.SessionStateResponse, error) {
	if m.UpdateDefaultsFunc != nil {
		return m.UpdateDefaultsFunc(ctx, sessionID, req)
	}
	panic("MockSessionService.UpdateDefaultsFunc not implemented")
}
func (m *MockSessionService) Export(ctx context.Context, sessionID string) (*dto.ExportResponse, error) {
	if m.ExportFunc != nil {
		return m.ExportFunc(ctx, sessionID)
	}
	panic("MockSessionService.ExportFunc not implemented")
}
func (m *MockSessionService) Close(ctx context.Context, sessionID string) error {
	if m.CloseFunc != nil {
		return m.CloseFunc(ctx, sessionID)
	}
	panic("MockSessionService.CloseFunc not implemented")
}

// newSessionApp wires the handler the way cmd/api does, validation
// middleware included.
func newSessionApp(svc service.SessionService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	vm := middleware.NewValidationMiddleware()
	h := handler.NewSessionHandler(svc)

	sessions := app.Group("/sessions")
	sessions.Post("/", h.Create)
	sessions.Get("/:id", vm.ValidateSessionID(), h.Get)
	sessions.Delete("/:id", vm.ValidateSessionID(), h.Close)
	sessions.Post("/:id/draw/end", vm.ValidateSessionID(), h.EndDraw)
	sessions.Post("/:id/batch", vm.ValidateSessionID(), h.BatchGenerate)
	sessions.Put("/:id/scale", vm.ValidateSessionID(), h.UpdateScale)
	sessions.Get("/:id/export", vm.ValidateSessionID(), h.Export)
	return app
}

func idleState(sessionID string) *dto.SessionStateResponse {
	return &dto.SessionStateResponse{
		SessionID:    sessionID,
		State:        domain.StateIdle,
		ImageWidth:   800,
		ImageHeight:  600,
		DisplayScale: 1.0,
		Defaults:     domain.RegionDefaults{QuestionType: domain.QuestionChoice, OptionCount: 4, OptionLayout: domain.OptionsHorizontal},
	}
}

func TestSessionHandler_Create(t *testing.T) {
	var gotReq dto.CreateSessionRequest
	mockSvc := &MockSessionService{
		CreateFunc: func(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionStateResponse, error) {
			gotReq = req
			return idleState(testSessionID), nil
		},
	}
	app := newSessionApp(mockSvc)

	resp := postJSON(t, app, "/sessions/", dto.CreateSessionRequest{ImageWidth: 800, ImageHeight: 600, DisplayScale: 1.5})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	assert.InDelta(t, 800.0, gotReq.ImageWidth, 0.001)
	assert.InDelta(t, 1.5, gotReq.DisplayScale, 0.001)

	var body dto.SessionStateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testSessionID, body.SessionID)
	assert.Equal(t, domain.StateIdle, body.State)
}

func TestSessionHandler_Create_BadResumeID(t *testing.T) {
	mockSvc := &MockSessionService{
		CreateFunc: func(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionStateResponse, error) {
			assert.Fail(t, "service should not be reached with an invalid resume id")
			return idleState(testSessionID), nil
		},
	}
	app := newSessionApp(mockSvc)

	resp := postJSON(t, app, "/sessions/", dto.CreateSessionRequest{
		SessionID:  "not-a-ulid",
		ImageWidth: 800, ImageHeight: 600,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body middleware.ValidationErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION_ERROR", body.Code)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "session_id", body.Errors[0].Field)
}

func TestSessionHandler_Get(t *testing.T) {
	var gotID string
	mockSvc := &MockSessionService{
		GetFunc: func(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
			gotID = sessionID
			return idleState(sessionID), nil
		},
	}
	app := newSessionApp(mockSvc)

	resp, err := app.Test(httptest.NewRequest("GET", "/sessions/"+testSessionID, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, testSessionID, gotID)
}

func TestSessionHandler_Get_InvalidID(t *testing.T) {
	mockSvc := &MockSessionService{
		GetFunc: func(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
			assert.Fail(t, "service should not be reached with an invalid session id")
			return idleState(sessionID), nil
		},
	}
	app := newSessionApp(mockSvc)

	resp, err := app.Test(httptest.NewRequest("GET", "/sessions/not-a-ulid", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSessionHandler_Get_NotFound(t *testing.T) {
	mockSvc := &MockSessionService{
		GetFunc: func(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
			return nil, domain.NewSessionNotFoundError(sessionID)
		},
	}
	app := newSessionApp(mockSvc)

	resp, err := app.Test(httptest.NewRequest("GET", "/sessions/"+testSessionID, nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var body middleware.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "SESSION_NOT_FOUND", body.Code)
}

func TestSessionHandler_EndDraw(t *testing.T) {
	var gotPoint dto.PointRequest
	created := &domain.Region{ID: "r1", QuestionNumber: 1}
	mockSvc := &MockSessionService{
		EndDrawFunc: func(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.EndDrawResponse, error) {
			gotPoint = p
			state := idleState(sessionID)
			state.Regions = []domain.Region{*created}
			state.CanUndo = true
			return &dto.EndDrawResponse{Created: created, SessionStateResponse: *state}, nil
		},
	}
	app := newSessionApp(mockSvc)

	resp := postJSON(t, app, "/sessions/"+testSessionID+"/draw/end", dto.PointRequest{X: 110, Y: 120})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.InDelta(t, 110.0, gotPoint.X, 0.001)
	assert.InDelta(t, 120.0, gotPoint.Y, 0.001)

	var body dto.EndDrawResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Created)
	assert.Equal(t, "r1", body.Created.ID)
	assert.True(t, body.CanUndo)
}

func TestSessionHandler_BatchGenerate_MalformedBody(t *testing.T) {
	mockSvc := &MockSessionService{
		BatchGenerateFunc: func(ctx context.Context, sessionID string, req dto.BatchGenerateRequest) (*dto.SessionStateResponse, error) {
			assert.Fail(t, "service should not be reached with a malformed body")
			return idleState(sessionID), nil
		},
	}
	app := newSessionApp(mockSvc)

	req := httptest.NewRequest("POST", "/sessions/"+testSessionID+"/batch", nil)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSessionHandler_UpdateScale(t *testing.T) {
	var gotScale float64
	mockSvc := &MockSessionService{
		UpdateScaleFunc: func(ctx context.Context, sessionID string, req dto.UpdateScaleRequest) (*dto.SessionStateResponse, error) {
			gotScale = req.DisplayScale
			state := idleState(sessionID)
			state.DisplayScale = req.DisplayScale
			return state, nil
		},
	}
	app := newSessionApp(mockSvc)

	req := httptest.NewRequest("PUT", "/sessions/"+testSessionID+"/scale", jsonBody(t, dto.UpdateScaleRequest{DisplayScale: 2.0}))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.InDelta(t, 2.0, gotScale, 0.001)
}

func TestSessionHandler_Export(t *testing.T) {
	mockSvc := &MockSessionService{
		ExportFunc: func(ctx context.Context, sessionID string) (*dto.ExportResponse, error) {
			return &dto.ExportResponse{
				SessionID:  sessionID,
				ImageWidth: 800, ImageHeight: 600,
				Regions: []domain.Region{{ID: "r1", QuestionNumber: 1}},
			}, nil
		},
	}
	app := newSessionApp(mockSvc)

	resp, err := app.Test(httptest.NewRequest("GET", "/sessions/"+testSessionID+"/export", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body dto.ExportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testSessionID, body.SessionID)
	require.Len(t, body.Regions, 1)
}

func TestSessionHandler_Close(t *testing.T) {
	var closedID string
	mockSvc := &MockSessionService{
		CloseFunc: func(ctx context.Context, sessionID string) error {
			closedID = sessionID
			return nil
		},
	}
	app := newSessionApp(mockSvc)

	req := httptest.NewRequest("DELETE", "/sessions/"+testSessionID, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, testSessionID, closedID)

	var body dto.MessageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "session closed", body.Message)
}

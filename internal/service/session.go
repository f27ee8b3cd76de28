package service

import (
	"context"
	"errors"

	"omr-studio/internal/config"
	"omr-studio/internal/domain"
	"omr-studio/internal/dto"
	"omr-studio/internal/logger"
	"omr-studio/internal/util"

	"go.uber.org/zap"
)

// SessionService defines the stateful editing operations of one
// template draft: drawing, selection, batch generation, history, and
// export.
type SessionService interface {
	Create(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionStateResponse, error)
	Get(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error)
	BeginDraw(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.SessionStateResponse, error)
	UpdateDraw(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.SessionStateResponse, error)
	EndDraw(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.EndDrawResponse, error)
	Select(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.SelectResponse, error)
	DeleteSelected(ctx context.Context, sessionID string) (*dto.DeleteSelectedResponse, error)
	BatchGenerate(ctx context.Context, sessionID string, req dto.BatchGenerateRequest) (*dto.SessionStateResponse, error)
	Undo(ctx context.Context, sessionID string) (*dto.HistoryOpResponse, error)
	Redo(ctx context.Context, sessionID string) (*dto.HistoryOpResponse, error)
	UpdateScale(ctx context.Context, sessionID string, req dto.UpdateScaleRequest) (*dto.SessionStateResponse, error)
	UpdateDefaults(ctx context.Context, sessionID string, req dto.UpdateDefaultsRequest) (*dto.SessionStateResponse, error)
	Export(ctx context.Context, sessionID string) (*dto.ExportResponse, error)
	Close(ctx context.Context, sessionID string) error
}

// sessionService implements SessionService
type sessionService struct {
	repo      domain.SessionRepository
	snapshots SessionSnapshotService
	cfg       *config.Config
}

// NewSessionService creates a new instance of sessionService
func NewSessionService(repo domain.SessionRepository, snapshots SessionSnapshotService, cfg *config.Config) SessionService {
	return &sessionService{
		repo:      repo,
		snapshots: snapshots,
		cfg:       cfg,
	}
}

// stateResponse renders the full editor state in display space.
func stateResponse(sess *domain.Session) *dto.SessionStateResponse {
	w, h := sess.ImageSize()
	resp := &dto.SessionStateResponse{
		SessionID:    sess.ID(),
		State:        sess.State(),
		ImageWidth:   w,
		ImageHeight:  h,
		DisplayScale: sess.DisplayScale(),
		Regions:      sess.DisplayRegions(),
		SelectedID:   sess.SelectedID(),
		Defaults:     sess.Defaults(),
		CanUndo:      sess.CanUndo(),
		CanRedo:      sess.CanRedo(),
	}
	if preview, ok := sess.Preview(); ok {
		resp.Preview = &preview
	}
	return resp
}

// snapshotOf captures the persistable part of a session in image space.
func snapshotOf(sess *domain.Session) *SessionSnapshot {
	w, h := sess.ImageSize()
	return &SessionSnapshot{
		Regions:      sess.Regions(),
		ImageWidth:   w,
		ImageHeight:  h,
		DisplayScale: sess.DisplayScale(),
		Defaults:     sess.Defaults(),
	}
}

// putSnapshot persists a snapshot. Snapshot trouble never fails the
// edit that produced it; the session stays usable and the draft is
// simply not resumable.
func (s *sessionService) putSnapshot(ctx context.Context, sessionID string, snap *SessionSnapshot) {
	if snap == nil {
		return
	}
	if err := s.snapshots.Put(ctx, sessionID, snap); err != nil {
		logger.Get().Warn("Failed to persist session snapshot",
			zap.Error(err),
			zap.String("sessionID", sessionID))
	}
}

// resume rebuilds a session from its cached snapshot, reporting false
// when no usable snapshot exists.
func (s *sessionService) resume(ctx context.Context, sessionID string) (*domain.Session, bool) {
	snap, err := s.snapshots.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, ErrSnapshotNotFound) {
			logger.Get().Warn("Session snapshot lookup failed",
				zap.Error(err),
				zap.String("sessionID", sessionID))
		}
		return nil, false
	}
	sess, err := domain.NewSession(domain.SessionConfig{
		ID:           sessionID,
		ImageWidth:   snap.ImageWidth,
		ImageHeight:  snap.ImageHeight,
		DisplayScale: snap.DisplayScale,
		HistoryLimit: s.cfg.Session.HistoryLimit,
		Defaults:     snap.Defaults,
		NewRegionID:  util.NewULID,
	})
	if err != nil {
		logger.Get().Warn("Cached session snapshot is unusable",
			zap.Error(err),
			zap.String("sessionID", sessionID))
		return nil, false
	}
	sess.Restore(snap.Regions)
	return sess, true
}

// Create implements SessionService. A request naming a previous session
// id resumes its cached snapshot when one is still available and opens
// a fresh session otherwise.
func (s *sessionService) Create(ctx context.Context, req dto.CreateSessionRequest) (*dto.SessionStateResponse, error) {
	var (
		sess    *domain.Session
		resumed bool
	)
	if req.SessionID != "" {
		sess, resumed = s.resume(ctx, req.SessionID)
	}
	if sess == nil {
		id := req.SessionID
		if id == "" {
			id = util.NewULID()
		}
		var defaults domain.RegionDefaults
		if req.Defaults != nil {
			defaults = *req.Defaults
		}
		var err error
		sess, err = domain.NewSession(domain.SessionConfig{
			ID:           id,
			ImageWidth:   req.ImageWidth,
			ImageHeight:  req.ImageHeight,
			DisplayScale: req.DisplayScale,
			HistoryLimit: s.cfg.Session.HistoryLimit,
			Defaults:     defaults,
			NewRegionID:  util.NewULID,
		})
		if err != nil {
			return nil, err
		}
	}

	if err := s.repo.Save(ctx, sess); err != nil {
		return nil, err
	}
	s.putSnapshot(ctx, sess.ID(), snapshotOf(sess))

	logger.Get().Info("Editing session opened",
		zap.String("sessionID", sess.ID()),
		zap.Bool("resumed", resumed))

	resp := stateResponse(sess)
	resp.Resumed = resumed
	return resp, nil
}

// Get implements SessionService. Reading state counts as activity and
// keeps the session from being swept.
func (s *sessionService) Get(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
	var resp *dto.SessionStateResponse
	err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		resp = stateResponse(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// BeginDraw implements SessionService
func (s *sessionService) BeginDraw(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.SessionStateResponse, error) {
	var resp *dto.SessionStateResponse
	err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		sess.BeginDraw(p.Point())
		resp = stateResponse(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateDraw implements SessionService
func (s *sessionService) UpdateDraw(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.SessionStateResponse, error) {
	var resp *dto.SessionStateResponse
	err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		sess.UpdateDraw(p.Point())
		resp = stateResponse(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// EndDraw implements SessionService
func (s *sessionService) EndDraw(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.EndDrawResponse, error) {
	var (
		resp *dto.EndDrawResponse
		snap *SessionSnapshot
	)
	err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		created := sess.EndDraw(p.Point())
		resp = &dto.EndDrawResponse{
			Created:              created,
			SessionStateResponse: *stateResponse(sess),
		}
		if created != nil {
			snap = snapshotOf(sess)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.putSnapshot(ctx, sessionID, snap)
	return resp, nil
}

// Select implements SessionService
func (s *sessionService) Select(ctx context.Context, sessionID string, p dto.PointRequest) (*dto.SelectResponse, error) {
	var resp *dto.SelectResponse
	err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		selected := sess.Select(p.Point())
		resp = &dto.SelectResponse{
			Selected:             selected,
			SessionStateResponse: *stateResponse(sess),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteSelected implements SessionService
func (s *sessionService) DeleteSelected(ctx context.Context, sessionID string) (*dto.DeleteSelectedResponse, error) {
	var (
		resp *dto.DeleteSelectedResponse
		snap *SessionSnapshot
	)
	err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		deleted := sess.DeleteSelected()
		resp = &dto.DeleteSelectedResponse{
			Deleted:              deleted,
			SessionStateResponse: *stateResponse(sess),
		}
		if deleted {
			snap = snapshotOf(sess)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.putSnapshot(ctx, sessionID, snap)
	return resp, nil
}

// BatchGenerate implements SessionService
func (s *sessionService) BatchGenerate(ctx context.Context, sessionID string, req dto.BatchGenerateRequest) (*dto.SessionStateResponse, error) {
	var (
		resp *dto.SessionStateResponse
		snap *SessionSnapshot
	)
	err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		if err := sess.BatchGenerate(req.ToBatchConfig()); err != nil {
			return err
		}
		resp = stateResponse(sess)
		snap = snapshotOf(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.putSnapshot(ctx, sessionID, snap)

	logger.Get().Info("Batch regions generated",
		zap.String("sessionID", sessionID),
		zap.Int("rows", req.Rows),
		zap.Int("cols", req.Cols))
	return resp, nil
}

// Undo implements SessionService
func (s *sessionService) Undo(ctx context.Context, sessionID string) (*dto.HistoryOpResponse, error) {
	var (
		resp *dto.HistoryOpResponse
		snap *SessionSnapshot
	)
	err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		applied := sess.Undo()
		resp = &dto.HistoryOpResponse{
			Applied:              applied,
			SessionStateResponse: *stateResponse(sess),
		}
		if applied {
			snap = snapshotOf(sess)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.putSnapshot(ctx, sessionID, snap)
	return resp, nil
}

// Redo implements SessionService
func (s *sessionService) Redo(ctx context.Context, sessionID string) (*dto.HistoryOpResponse, error) {
	var (
		resp *dto.HistoryOpResponse
		snap *SessionSnapshot
	)
	err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		applied := sess.Redo()
		resp = &dto.HistoryOpResponse{
			Applied:              applied,
			SessionStateResponse: *stateResponse(sess),
		}
		if applied {
			snap = snapshotOf(sess)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.putSnapshot(ctx, sessionID, snap)
	return resp, nil
}

// UpdateScale implements SessionService
func (s *sessionService) UpdateScale(ctx context.Context, sessionID string, req dto.UpdateScaleRequest) (*dto.SessionStateResponse, error) {
	var (
		resp *dto.SessionStateResponse
		snap *SessionSnapshot
	)
	err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		if err := sess.SetDisplayScale(req.DisplayScale); err != nil {
			return err
		}
		resp = stateResponse(sess)
		snap = snapshotOf(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.putSnapshot(ctx, sessionID, snap)
	return resp, nil
}

// UpdateDefaults implements SessionService
func (s *sessionService) UpdateDefaults(ctx context.Context, sessionID string, req dto.UpdateDefaultsRequest) (*dto.SessionStateResponse, error) {
	var (
		resp *dto.SessionStateResponse
		snap *SessionSnapshot
	)
	err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		sess.SetDefaults(req.ToDefaults())
		resp = stateResponse(sess)
		snap = snapshotOf(sess)
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.putSnapshot(ctx, sessionID, snap)
	return resp, nil
}

// Export implements SessionService. The exported template is in image
// space regardless of the current display scale.
func (s *sessionService) Export(ctx context.Context, sessionID string) (*dto.ExportResponse, error) {
	var resp *dto.ExportResponse
	err := s.repo.Update(ctx, sessionID, func(sess *domain.Session) error {
		regions := sess.Regions()
		w, h := sess.ImageSize()
		resp = &dto.ExportResponse{
			SessionID:   sess.ID(),
			ImageWidth:  w,
			ImageHeight: h,
			Regions:     regions,
			OMRConfig:   domain.OMRConfigFromRegions(regions),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Get().Info("Session exported",
		zap.String("sessionID", sessionID),
		zap.Int("regions", len(resp.Regions)),
		zap.Int("questions", len(resp.OMRConfig.Questions)))
	return resp, nil
}

// Close implements SessionService. Closing discards the draft: the
// session leaves memory and its snapshot leaves the cache.
func (s *sessionService) Close(ctx context.Context, sessionID string) error {
	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return err
	}
	if err := s.snapshots.Delete(ctx, sessionID); err != nil {
		logger.Get().Warn("Failed to delete session snapshot",
			zap.Error(err),
			zap.String("sessionID", sessionID))
	}
	logger.Get().Info("Editing session closed", zap.String("sessionID", sessionID))
	return nil
}

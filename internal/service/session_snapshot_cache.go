package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"omr-studio/internal/cache"
	"omr-studio/internal/domain"
	"omr-studio/internal/logger"

	"go.uber.org/zap"
)

// ErrSnapshotNotFound is returned when no snapshot is cached for a session.
var ErrSnapshotNotFound = errors.New("session snapshot not found in cache")

// SessionSnapshot carries everything needed to rebuild an editing
// session in a fresh process. The undo history is deliberately not part
// of it; a resumed session starts with a clean stack.
type SessionSnapshot struct {
	Regions      []domain.Region
	ImageWidth   float64
	ImageHeight  float64
	DisplayScale float64
	Defaults     domain.RegionDefaults
}

// SessionSnapshotService persists session drafts so crashed or
// restarted editors can pick up where they left off.
type SessionSnapshotService interface {
	Put(ctx context.Context, sessionID string, snap *SessionSnapshot) error
	Get(ctx context.Context, sessionID string) (*SessionSnapshot, error)
	Delete(ctx context.Context, sessionID string) error
}

// sessionSnapshotServiceImpl stores the region list as one JSON value
// and the session geometry as a hash, both under the snapshot TTL.
type sessionSnapshotServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewSessionSnapshotService creates a snapshot service over the given
// cache. A nil cache yields a no-op implementation so the session
// service never has to care whether Redis is configured.
func NewSessionSnapshotService(c domain.Cache, ttl time.Duration) SessionSnapshotService {
	if c == nil {
		logger.Get().Warn("SessionSnapshotService initialized with nil cache. Snapshots will not be persisted.")
		return &noopSessionSnapshotService{}
	}
	return &sessionSnapshotServiceImpl{cache: c, ttl: ttl}
}

const (
	metaImageWidth   = "imageWidth"
	metaImageHeight  = "imageHeight"
	metaDisplayScale = "displayScale"
	metaQuestionType = "questionType"
	metaOptionCount  = "optionCount"
	metaOptionLayout = "optionLayout"
)

// Put stores the snapshot under the session id.
func (s *sessionSnapshotServiceImpl) Put(ctx context.Context, sessionID string, snap *SessionSnapshot) error {
	if snap == nil {
		return domain.NewInvalidInputError("cannot cache nil snapshot")
	}

	key := cache.SessionSnapshotKey(sessionID)
	data, err := json.Marshal(snap.Regions)
	if err != nil {
		logger.Get().Error("Failed to marshal session regions for caching", zap.Error(err), zap.String("sessionID", sessionID))
		return domain.NewInternalError("failed to marshal session snapshot", err)
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		logger.Get().Error("Failed to cache session snapshot", zap.Error(err), zap.String("key", key))
		return domain.NewInternalError(fmt.Sprintf("failed to set session snapshot for key %s", key), err)
	}

	metaKey := cache.SessionMetaKey(sessionID)
	fields := map[string]string{
		metaImageWidth:   strconv.FormatFloat(snap.ImageWidth, 'f', -1, 64),
		metaImageHeight:  strconv.FormatFloat(snap.ImageHeight, 'f', -1, 64),
		metaDisplayScale: strconv.FormatFloat(snap.DisplayScale, 'f', -1, 64),
		metaQuestionType: string(snap.Defaults.QuestionType),
		metaOptionCount:  strconv.Itoa(snap.Defaults.OptionCount),
		metaOptionLayout: string(snap.Defaults.OptionLayout),
	}
	for field, value := range fields {
		if err := s.cache.HSet(ctx, metaKey, field, value); err != nil {
			logger.Get().Error("Failed to cache session metadata", zap.Error(err), zap.String("key", metaKey), zap.String("field", field))
			return domain.NewInternalError(fmt.Sprintf("failed to set session metadata for key %s", metaKey), err)
		}
	}
	if err := s.cache.Expire(ctx, metaKey, s.ttl); err != nil {
		logger.Get().Error("Failed to set session metadata expiry", zap.Error(err), zap.String("key", metaKey))
		return domain.NewInternalError(fmt.Sprintf("failed to expire session metadata for key %s", metaKey), err)
	}

	logger.Get().Debug("Cached session snapshot", zap.String("key", key), zap.Int("regions", len(snap.Regions)), zap.Duration("ttl", s.ttl))
	return nil
}

// Get retrieves the snapshot stored under the session id.
func (s *sessionSnapshotServiceImpl) Get(ctx context.Context, sessionID string) (*SessionSnapshot, error) {
	key := cache.SessionSnapshotKey(sessionID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Session snapshot cache miss", zap.String("key", key))
			return nil, ErrSnapshotNotFound
		}
		logger.Get().Error("Failed to get session snapshot from cache", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get session snapshot for key %s", key), err)
	}

	var regions []domain.Region
	if err := json.Unmarshal([]byte(data), &regions); err != nil {
		logger.Get().Error("Failed to unmarshal session snapshot", zap.Error(err), zap.String("key", key))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to unmarshal session snapshot for key %s", key), err)
	}

	metaKey := cache.SessionMetaKey(sessionID)
	meta, err := s.cache.HGetAll(ctx, metaKey)
	if err != nil {
		logger.Get().Error("Failed to get session metadata from cache", zap.Error(err), zap.String("key", metaKey))
		return nil, domain.NewInternalError(fmt.Sprintf("failed to get session metadata for key %s", metaKey), err)
	}
	// A snapshot without its geometry cannot rebuild a session.
	if len(meta) == 0 {
		logger.Get().Debug("Session metadata missing, treating snapshot as expired", zap.String("key", metaKey))
		return nil, ErrSnapshotNotFound
	}

	snap := &SessionSnapshot{Regions: regions}
	snap.ImageWidth, _ = strconv.ParseFloat(meta[metaImageWidth], 64)
	snap.ImageHeight, _ = strconv.ParseFloat(meta[metaImageHeight], 64)
	snap.DisplayScale, _ = strconv.ParseFloat(meta[metaDisplayScale], 64)
	snap.Defaults.QuestionType = domain.QuestionType(meta[metaQuestionType])
	snap.Defaults.OptionCount, _ = strconv.Atoi(meta[metaOptionCount])
	snap.Defaults.OptionLayout = domain.OptionLayout(meta[metaOptionLayout])

	logger.Get().Debug("Retrieved session snapshot", zap.String("key", key), zap.Int("regions", len(regions)))
	return snap, nil
}

// Delete removes the snapshot and its metadata.
func (s *sessionSnapshotServiceImpl) Delete(ctx context.Context, sessionID string) error {
	if err := s.cache.Delete(ctx, cache.SessionSnapshotKey(sessionID)); err != nil {
		return domain.NewInternalError("failed to delete session snapshot", err)
	}
	if err := s.cache.Delete(ctx, cache.SessionMetaKey(sessionID)); err != nil {
		return domain.NewInternalError("failed to delete session metadata", err)
	}
	return nil
}

// noopSessionSnapshotService is used when no cache is configured.
type noopSessionSnapshotService struct{}

func (s *noopSessionSnapshotService) Put(ctx context.Context, sessionID string, snap *SessionSnapshot) error {
	return nil
}

func (s *noopSessionSnapshotService) Get(ctx context.Context, sessionID string) (*SessionSnapshot, error) {
	return nil, ErrSnapshotNotFound
}

func (s *noopSessionSnapshotService) Delete(ctx context.Context, sessionID string) error {
	return nil
}

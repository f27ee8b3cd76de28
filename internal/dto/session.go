package dto

import "omr-studio/internal/domain"

// CreateSessionRequest opens an editing session over a sheet image.
// Supplying a previous session id restores its last cached snapshot.
// @Description Request body for opening an editing session
type CreateSessionRequest struct {
	SessionID    string                 `json:"sessionId,omitempty"`
	ImageWidth   float64                `json:"imageWidth"`
	ImageHeight  float64                `json:"imageHeight"`
	DisplayScale float64                `json:"displayScale,omitempty"`
	Defaults     *domain.RegionDefaults `json:"defaults,omitempty"`
}

// SessionStateResponse is the full editor state returned by every
// session operation. Regions and the preview rectangle are in display
// space.
type SessionStateResponse struct {
	SessionID    string                `json:"sessionId"`
	State        domain.SessionState   `json:"state"`
	ImageWidth   float64               `json:"imageWidth"`
	ImageHeight  float64               `json:"imageHeight"`
	DisplayScale float64               `json:"displayScale"`
	Regions      []domain.Region       `json:"regions"`
	SelectedID   string                `json:"selectedId,omitempty"`
	Preview      *domain.Rect          `json:"preview,omitempty"`
	Defaults     domain.RegionDefaults `json:"defaults"`
	CanUndo      bool                  `json:"canUndo"`
	CanRedo      bool                  `json:"canRedo"`
	Resumed      bool                  `json:"resumed,omitempty"`
}

// PointRequest is a pointer position in display space
type PointRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point converts the request to a domain point.
func (r PointRequest) Point() domain.Point {
	return domain.Point{X: r.X, Y: r.Y}
}

// EndDrawResponse reports the completed gesture. Created is nil when
// the draw was discarded as an accidental click.
type EndDrawResponse struct {
	Created *domain.Region `json:"created,omitempty"`
	SessionStateResponse
}

// SelectResponse reports the hit region, nil when the point missed
type SelectResponse struct {
	Selected *domain.Region `json:"selected,omitempty"`
	SessionStateResponse
}

// DeleteSelectedResponse reports whether a region was removed
type DeleteSelectedResponse struct {
	Deleted bool `json:"deleted"`
	SessionStateResponse
}

// HistoryOpResponse reports whether an undo or redo changed state
type HistoryOpResponse struct {
	Applied bool `json:"applied"`
	SessionStateResponse
}

// BatchGenerateRequest describes an evenly spaced grid of regions
// @Description Request body for batch region generation
type BatchGenerateRequest struct {
	Rows              int     `json:"rows"`
	Cols              int     `json:"cols"`
	StartX            float64 `json:"startX"`
	StartY            float64 `json:"startY"`
	RegionWidth       float64 `json:"regionWidth"`
	RegionHeight      float64 `json:"regionHeight"`
	HorizontalSpacing float64 `json:"horizontalSpacing"`
	VerticalSpacing   float64 `json:"verticalSpacing"`
}

// ToBatchConfig converts the request to a domain batch config.
func (r BatchGenerateRequest) ToBatchConfig() domain.BatchConfig {
	return domain.BatchConfig{
		Rows:              r.Rows,
		Cols:              r.Cols,
		StartX:            r.StartX,
		StartY:            r.StartY,
		RegionWidth:       r.RegionWidth,
		RegionHeight:      r.RegionHeight,
		HorizontalSpacing: r.HorizontalSpacing,
		VerticalSpacing:   r.VerticalSpacing,
	}
}

// UpdateScaleRequest changes the display-to-image factor
type UpdateScaleRequest struct {
	DisplayScale float64 `json:"displayScale"`
}

// UpdateDefaultsRequest changes the settings stamped onto new regions
type UpdateDefaultsRequest struct {
	QuestionType string `json:"questionType"`
	OptionCount  int    `json:"optionCount,omitempty"`
	OptionLayout string `json:"optionLayout,omitempty"`
}

// ToDefaults converts the request to domain region defaults.
func (r UpdateDefaultsRequest) ToDefaults() domain.RegionDefaults {
	return domain.RegionDefaults{
		QuestionType: domain.QuestionType(r.QuestionType),
		OptionCount:  r.OptionCount,
		OptionLayout: domain.OptionLayout(r.OptionLayout),
	}
}

// ExportResponse is the finished template in image space, ready for
// the mark-reading pipeline
type ExportResponse struct {
	SessionID   string           `json:"sessionId"`
	ImageWidth  float64          `json:"imageWidth"`
	ImageHeight float64          `json:"imageHeight"`
	Regions     []domain.Region  `json:"regions"`
	OMRConfig   domain.OMRConfig `json:"omrConfig"`
}

// MessageResponse represents a generic message response
// @Description Generic message response
type MessageResponse struct {
	Message string `json:"message"`
}

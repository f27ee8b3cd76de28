package domain

import "fmt"

// SessionState is the draw state of an editing session.
type SessionState string

const (
	StateIdle    SessionState = "idle"
	StateDrawing SessionState = "drawing"
)

// MinRegionSize is the smallest usable draw size in image pixels.
// Draws below it on either axis are discarded as accidental clicks.
const MinRegionSize = 10.0

// SessionConfig carries everything needed to open an editing session.
// DisplayScale zero means 1 (caller works in image pixels directly);
// HistoryLimit zero means DefaultHistoryLimit. NewRegionID normally
// mints ULIDs; when nil a session-local sequence is used.
type SessionConfig struct {
	ID           string
	ImageWidth   float64
	ImageHeight  float64
	DisplayScale float64
	HistoryLimit int
	Defaults     RegionDefaults
	NewRegionID  func() string
}

// Session owns the mutable editing state of one template: the region
// list, the selection, an in-flight draw gesture, and bounded undo/redo
// history. Geometry is stored exclusively in image-pixel space; the
// display scale converts pointer input on the way in and rectangles on
// the way out. A session is not safe for concurrent use; the caller
// serializes access.
type Session struct {
	id           string
	imageWidth   float64
	imageHeight  float64
	scale        float64
	state        SessionState
	anchor       Point
	preview      Rect
	regions      []Region
	selected     string
	defaults     RegionDefaults
	history      *History
	historyLimit int
	newID        func() string
}

// NewSession opens a session over an image of the given size. The
// history is seeded with the empty region list so the first edit can
// be undone back to it.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.ImageWidth <= 0 || cfg.ImageHeight <= 0 {
		return nil, NewInvalidInputError(fmt.Sprintf("image size must be positive, got %gx%g", cfg.ImageWidth, cfg.ImageHeight))
	}
	if cfg.DisplayScale < 0 {
		return nil, NewInvalidScaleError(cfg.DisplayScale)
	}
	scale := cfg.DisplayScale
	if scale == 0 {
		scale = 1
	}
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	newID := cfg.NewRegionID
	if newID == nil {
		var seq int
		newID = func() string {
			seq++
			return fmt.Sprintf("region-%06d", seq)
		}
	}
	return &Session{
		id:           cfg.ID,
		imageWidth:   cfg.ImageWidth,
		imageHeight:  cfg.ImageHeight,
		scale:        scale,
		state:        StateIdle,
		regions:      []Region{},
		defaults:     cfg.Defaults.Normalized(),
		history:      NewHistory(nil, limit),
		historyLimit: limit,
		newID:        newID,
	}, nil
}

func (s *Session) toImage(p Point) Point {
	return Point{X: p.X / s.scale, Y: p.Y / s.scale}
}

// BeginDraw anchors a new draw gesture at the given display point and
// clears any selection. Beginning again while a gesture is open
// re-anchors it; no region exists until EndDraw.
func (s *Session) BeginDraw(p Point) {
	ip := s.toImage(p)
	s.state = StateDrawing
	s.anchor = ip
	s.preview = Rect{X: ip.X, Y: ip.Y}
	s.selected = ""
}

// UpdateDraw refreshes the live preview rectangle while drawing. It
// creates no region and touches no history.
func (s *Session) UpdateDraw(p Point) {
	if s.state != StateDrawing {
		return
	}
	s.preview = RectFromCorners(s.anchor, s.toImage(p))
}

// EndDraw completes the gesture. A rectangle meeting the minimum
// usable size on both axes becomes a new region numbered after the
// last one and stamped with the session defaults; anything smaller is
// treated as an accidental click and leaves state and history alone.
// The created region is returned in image space, nil for a no-op draw.
func (s *Session) EndDraw(p Point) *Region {
	if s.state != StateDrawing {
		return nil
	}
	r := RectFromCorners(s.anchor, s.toImage(p))
	s.state = StateIdle
	s.preview = Rect{}
	if r.Width < MinRegionSize || r.Height < MinRegionSize {
		return nil
	}
	region := Region{
		ID:             s.newID(),
		QuestionNumber: len(s.regions) + 1,
		X:              r.X,
		Y:              r.Y,
		Width:          r.Width,
		Height:         r.Height,
		QuestionType:   s.defaults.QuestionType,
		OptionCount:    s.defaults.OptionCount,
		OptionLayout:   s.defaults.OptionLayout,
	}
	s.regions = append(s.regions, region)
	s.history.Push(s.regions)
	return &region
}

// Select picks the topmost region containing the display point, or
// clears the selection when the point hits none. Selection never
// touches history.
func (s *Session) Select(p Point) *Region {
	if s.state != StateIdle {
		return nil
	}
	ip := s.toImage(p)
	for i := len(s.regions) - 1; i >= 0; i-- {
		if s.regions[i].Rect().Contains(ip) {
			s.selected = s.regions[i].ID
			r := s.regions[i]
			return &r
		}
	}
	s.selected = ""
	return nil
}

// DeleteSelected removes the selected region, renumbers the remaining
// regions densely in their current order, and pushes one snapshot.
// Without a selection it reports false and changes nothing.
func (s *Session) DeleteSelected() bool {
	if s.selected == "" {
		return false
	}
	kept := make([]Region, 0, len(s.regions))
	for _, r := range s.regions {
		if r.ID == s.selected {
			continue
		}
		r.QuestionNumber = len(kept) + 1
		kept = append(kept, r)
	}
	s.selected = ""
	if len(kept) == len(s.regions) {
		return false
	}
	s.regions = kept
	s.history.Push(s.regions)
	return true
}

// BatchConfig describes an evenly spaced grid of identical regions.
// Coordinates and sizes are image-pixel values entered numerically,
// not pointer input, so no display-scale conversion applies.
type BatchConfig struct {
	Rows              int     `json:"rows"`
	Cols              int     `json:"cols"`
	StartX            float64 `json:"startX"`
	StartY            float64 `json:"startY"`
	RegionWidth       float64 `json:"regionWidth"`
	RegionHeight      float64 `json:"regionHeight"`
	HorizontalSpacing float64 `json:"horizontalSpacing"`
	VerticalSpacing   float64 `json:"verticalSpacing"`
}

// Validate checks the grid parameters.
func (c BatchConfig) Validate() ConfigValidation {
	var errs []string
	if c.Rows < 1 {
		errs = append(errs, fmt.Sprintf("rows must be at least 1, got %d", c.Rows))
	}
	if c.Cols < 1 {
		errs = append(errs, fmt.Sprintf("cols must be at least 1, got %d", c.Cols))
	}
	if c.RegionWidth <= 0 {
		errs = append(errs, "regionWidth must be positive")
	}
	if c.RegionHeight <= 0 {
		errs = append(errs, "regionHeight must be positive")
	}
	if c.HorizontalSpacing < 0 {
		errs = append(errs, "horizontalSpacing must not be negative")
	}
	if c.VerticalSpacing < 0 {
		errs = append(errs, "verticalSpacing must not be negative")
	}
	if c.StartX < 0 || c.StartY < 0 {
		errs = append(errs, "start position must not be negative")
	}
	return ConfigValidation{Valid: len(errs) == 0, Errors: errs}
}

// BatchGenerate replaces the whole region list with a rows by cols
// grid numbered row-major, pushing a single snapshot for the batch.
// An invalid config is rejected before any state changes.
func (s *Session) BatchGenerate(cfg BatchConfig) error {
	if v := cfg.Validate(); !v.Valid {
		return NewBatchConfigError(v.Summary())
	}
	regions := make([]Region, 0, cfg.Rows*cfg.Cols)
	for row := 0; row < cfg.Rows; row++ {
		for col := 0; col < cfg.Cols; col++ {
			regions = append(regions, Region{
				ID:             s.newID(),
				QuestionNumber: row*cfg.Cols + col + 1,
				X:              cfg.StartX + float64(col)*(cfg.RegionWidth+cfg.HorizontalSpacing),
				Y:              cfg.StartY + float64(row)*(cfg.RegionHeight+cfg.VerticalSpacing),
				Width:          cfg.RegionWidth,
				Height:         cfg.RegionHeight,
				QuestionType:   s.defaults.QuestionType,
				OptionCount:    s.defaults.OptionCount,
				OptionLayout:   s.defaults.OptionLayout,
			})
		}
	}
	s.regions = regions
	s.selected = ""
	s.history.Push(s.regions)
	return nil
}

// Undo steps back one snapshot, reporting false at the end of the
// stack. Selection does not survive an undo.
func (s *Session) Undo() bool {
	state, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.regions = state
	s.selected = ""
	return true
}

// Redo steps forward one snapshot, reporting false at the end of the
// stack. Selection does not survive a redo.
func (s *Session) Redo() bool {
	state, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.regions = state
	s.selected = ""
	return true
}

// Restore replaces the region list with a previously exported snapshot
// and restarts history from it. Used to resume a session whose server
// went away; the undo stack of the old process is gone.
func (s *Session) Restore(regions []Region) {
	s.regions = CloneRegions(regions)
	s.selected = ""
	s.state = StateIdle
	s.preview = Rect{}
	s.history = NewHistory(s.regions, s.historyLimit)
}

// SetDisplayScale changes the display-to-image conversion factor.
func (s *Session) SetDisplayScale(f float64) error {
	if f <= 0 {
		return NewInvalidScaleError(f)
	}
	s.scale = f
	return nil
}

// SetDefaults changes the settings stamped onto newly drawn regions.
func (s *Session) SetDefaults(d RegionDefaults) {
	s.defaults = d.Normalized()
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// State returns the current draw state.
func (s *Session) State() SessionState {
	return s.state
}

// Regions returns a copy of the region list in image space.
func (s *Session) Regions() []Region {
	return CloneRegions(s.regions)
}

// DisplayRegions returns a copy of the region list scaled to display
// space.
func (s *Session) DisplayRegions() []Region {
	out := CloneRegions(s.regions)
	if s.scale == 1 {
		return out
	}
	for i := range out {
		out[i].X *= s.scale
		out[i].Y *= s.scale
		out[i].Width *= s.scale
		out[i].Height *= s.scale
	}
	return out
}

// Preview returns the live draw rectangle in display space. ok is
// false when no gesture is open.
func (s *Session) Preview() (Rect, bool) {
	if s.state != StateDrawing {
		return Rect{}, false
	}
	return s.preview.Scaled(s.scale), true
}

// SelectedID returns the selected region's id, empty when none.
func (s *Session) SelectedID() string {
	return s.selected
}

// Defaults returns the settings applied to newly drawn regions.
func (s *Session) Defaults() RegionDefaults {
	return s.defaults
}

// DisplayScale returns the current display-to-image factor.
func (s *Session) DisplayScale() float64 {
	return s.scale
}

// ImageSize returns the image dimensions the session was opened with.
func (s *Session) ImageSize() (width, height float64) {
	return s.imageWidth, s.imageHeight
}

// CanUndo reports whether an undo would change state.
func (s *Session) CanUndo() bool {
	return s.history.CanUndo()
}

// CanRedo reports whether a redo would change state.
func (s *Session) CanRedo() bool {
	return s.history.CanRedo()
}

package domain

import "sort"

// OMRStandardsProfile holds the physical-print tolerances a template is
// validated against. All lengths share the template unit; the shipped
// profiles are authored in millimetres at print scale.
type OMRStandardsProfile struct {
	Bubble      BubbleStandards      `json:"bubble"`
	Margins     MarginStandards      `json:"margins"`
	Positioning PositioningStandards `json:"positioning"`
	Barcode     BarcodeStandards     `json:"barcode"`
	Text        TextStandards        `json:"text"`
	Print       PrintStandards       `json:"print"`
}

// BubbleStandards bound answer-bubble geometry. MinSpacing is the
// smallest allowed center-to-center distance between two regions.
type BubbleStandards struct {
	MinSize        float64 `json:"minSize"`
	MaxSize        float64 `json:"maxSize"`
	OptimalSize    float64 `json:"optimalSize"`
	MinSpacing     float64 `json:"minSpacing"`
	OptimalSpacing float64 `json:"optimalSpacing"`
}

// MarginStandards are the minimum distances from each page edge.
type MarginStandards struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// PositioningStandards bound the fiducial markers the scanner uses to
// align the page.
type PositioningStandards struct {
	MinSize           float64 `json:"minSize"`
	MaxSize           float64 `json:"maxSize"`
	OptimalSize       float64 `json:"optimalSize"`
	MinCount          int     `json:"minCount"`
	OptimalCount      int     `json:"optimalCount"`
	MinCornerDistance float64 `json:"minCornerDistance"`
	MaxCornerDistance float64 `json:"maxCornerDistance"`
}

// BarcodeStandards size the student-ID barcode zone.
type BarcodeStandards struct {
	ZoneWidth  float64 `json:"zoneWidth"`
	ZoneHeight float64 `json:"zoneHeight"`
	QuietZone  float64 `json:"quietZone"`
}

// TextStandards bound printed question text.
type TextStandards struct {
	MinFontSize     float64 `json:"minFontSize"`
	OptimalFontSize float64 `json:"optimalFontSize"`
	MinLineHeight   float64 `json:"minLineHeight"`
}

// PrintStandards bound the print/scan process itself.
type PrintStandards struct {
	MinDPI      int     `json:"minDpi"`
	MaxDPI      int     `json:"maxDpi"`
	OptimalDPI  int     `json:"optimalDpi"`
	MinContrast float64 `json:"minContrast"`
}

// mmPerInch converts between the profile unit and scanner DPI.
const mmPerInch = 25.4

// ScaleForDPI returns a copy of the profile with every length converted
// from millimetres to pixels at the given scan resolution. Counts and
// the print group are unchanged. Non-positive dpi returns the profile
// as is.
func (p OMRStandardsProfile) ScaleForDPI(dpi int) OMRStandardsProfile {
	if dpi <= 0 {
		return p
	}
	f := float64(dpi) / mmPerInch
	p.Bubble.MinSize *= f
	p.Bubble.MaxSize *= f
	p.Bubble.OptimalSize *= f
	p.Bubble.MinSpacing *= f
	p.Bubble.OptimalSpacing *= f
	p.Margins.Top *= f
	p.Margins.Bottom *= f
	p.Margins.Left *= f
	p.Margins.Right *= f
	p.Positioning.MinSize *= f
	p.Positioning.MaxSize *= f
	p.Positioning.OptimalSize *= f
	p.Positioning.MinCornerDistance *= f
	p.Positioning.MaxCornerDistance *= f
	p.Barcode.ZoneWidth *= f
	p.Barcode.ZoneHeight *= f
	p.Barcode.QuietZone *= f
	p.Text.MinFontSize *= f
	p.Text.OptimalFontSize *= f
	p.Text.MinLineHeight *= f
	return p
}

// ProfileOverride is a partial profile. Nil groups and nil leaves
// inherit the default; merging follows the fixed schema above rather
// than a generic object walk so malformed shapes cannot slip through.
type ProfileOverride struct {
	Bubble      *BubbleOverride
	Margins     *MarginsOverride
	Positioning *PositioningOverride
	Barcode     *BarcodeOverride
	Text        *TextOverride
	Print       *PrintOverride
}

type BubbleOverride struct {
	MinSize        *float64
	MaxSize        *float64
	OptimalSize    *float64
	MinSpacing     *float64
	OptimalSpacing *float64
}

type MarginsOverride struct {
	Top    *float64
	Bottom *float64
	Left   *float64
	Right  *float64
}

type PositioningOverride struct {
	MinSize           *float64
	MaxSize           *float64
	OptimalSize       *float64
	MinCount          *int
	OptimalCount      *int
	MinCornerDistance *float64
	MaxCornerDistance *float64
}

type BarcodeOverride struct {
	ZoneWidth  *float64
	ZoneHeight *float64
	QuietZone  *float64
}

type TextOverride struct {
	MinFontSize     *float64
	OptimalFontSize *float64
	MinLineHeight   *float64
}

type PrintOverride struct {
	MinDPI      *int
	MaxDPI      *int
	OptimalDPI  *int
	MinContrast *float64
}

func setF(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

func setI(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}

// Merge applies the override onto base and returns the merged profile.
// Neither input is mutated.
func Merge(base OMRStandardsProfile, o ProfileOverride) OMRStandardsProfile {
	p := base
	if o.Bubble != nil {
		setF(&p.Bubble.MinSize, o.Bubble.MinSize)
		setF(&p.Bubble.MaxSize, o.Bubble.MaxSize)
		setF(&p.Bubble.OptimalSize, o.Bubble.OptimalSize)
		setF(&p.Bubble.MinSpacing, o.Bubble.MinSpacing)
		setF(&p.Bubble.OptimalSpacing, o.Bubble.OptimalSpacing)
	}
	if o.Margins != nil {
		setF(&p.Margins.Top, o.Margins.Top)
		setF(&p.Margins.Bottom, o.Margins.Bottom)
		setF(&p.Margins.Left, o.Margins.Left)
		setF(&p.Margins.Right, o.Margins.Right)
	}
	if o.Positioning != nil {
		setF(&p.Positioning.MinSize, o.Positioning.MinSize)
		setF(&p.Positioning.MaxSize, o.Positioning.MaxSize)
		setF(&p.Positioning.OptimalSize, o.Positioning.OptimalSize)
		setI(&p.Positioning.MinCount, o.Positioning.MinCount)
		setI(&p.Positioning.OptimalCount, o.Positioning.OptimalCount)
		setF(&p.Positioning.MinCornerDistance, o.Positioning.MinCornerDistance)
		setF(&p.Positioning.MaxCornerDistance, o.Positioning.MaxCornerDistance)
	}
	if o.Barcode != nil {
		setF(&p.Barcode.ZoneWidth, o.Barcode.ZoneWidth)
		setF(&p.Barcode.ZoneHeight, o.Barcode.ZoneHeight)
		setF(&p.Barcode.QuietZone, o.Barcode.QuietZone)
	}
	if o.Text != nil {
		setF(&p.Text.MinFontSize, o.Text.MinFontSize)
		setF(&p.Text.OptimalFontSize, o.Text.OptimalFontSize)
		setF(&p.Text.MinLineHeight, o.Text.MinLineHeight)
	}
	if o.Print != nil {
		setI(&p.Print.MinDPI, o.Print.MinDPI)
		setI(&p.Print.MaxDPI, o.Print.MaxDPI)
		setI(&p.Print.OptimalDPI, o.Print.OptimalDPI)
		setF(&p.Print.MinContrast, o.Print.MinContrast)
	}
	return p
}

// Registry resolves named exam-type profiles against the default.
// Named profiles are data; adding an exam type means adding a table
// entry, not code.
type Registry struct {
	defaults  OMRStandardsProfile
	overrides map[string]ProfileOverride
}

// NewRegistry builds the registry with the shipped default profile and
// the standard exam-type overrides.
func NewRegistry() *Registry {
	return &Registry{
		defaults:  defaultProfile,
		overrides: builtinOverrides(),
	}
}

// Default returns the default profile.
func (r *Registry) Default() OMRStandardsProfile {
	return r.defaults
}

// Resolve returns the profile for the given exam type. An empty or
// unknown exam type resolves to the default profile.
func (r *Registry) Resolve(examType string) OMRStandardsProfile {
	o, ok := r.overrides[examType]
	if !ok {
		return r.defaults
	}
	return Merge(r.defaults, o)
}

// Names lists the registered exam types in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.overrides))
	for name := range r.overrides {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func fp(v float64) *float64 { return &v }
func ip(v int) *int         { return &v }

// defaultProfile is the baseline tolerance set for A4 answer sheets
// printed at office quality. All lengths in millimetres.
var defaultProfile = OMRStandardsProfile{
	Bubble: BubbleStandards{
		MinSize:        8,
		MaxSize:        15,
		OptimalSize:    12,
		MinSpacing:     15,
		OptimalSpacing: 20,
	},
	Margins: MarginStandards{
		Top:    10,
		Bottom: 10,
		Left:   10,
		Right:  10,
	},
	Positioning: PositioningStandards{
		MinSize:           5,
		MaxSize:           12,
		OptimalSize:       8,
		MinCount:          3,
		OptimalCount:      4,
		MinCornerDistance: 5,
		MaxCornerDistance: 15,
	},
	Barcode: BarcodeStandards{
		ZoneWidth:  50,
		ZoneHeight: 15,
		QuietZone:  3,
	},
	Text: TextStandards{
		MinFontSize:     8,
		OptimalFontSize: 10,
		MinLineHeight:   4,
	},
	Print: PrintStandards{
		MinDPI:      150,
		MaxDPI:      1200,
		OptimalDPI:  300,
		MinContrast: 0.3,
	},
}

// builtinOverrides returns the shipped exam-type table. High-stakes
// exams tighten bubble, margin, and print tolerances; practice sheets
// relax them.
func builtinOverrides() map[string]ProfileOverride {
	return map[string]ProfileOverride{
		"gaokao": {
			Bubble: &BubbleOverride{
				MinSize:        fp(10),
				MinSpacing:     fp(18),
				OptimalSpacing: fp(22),
			},
			Margins: &MarginsOverride{
				Top:    fp(15),
				Bottom: fp(15),
				Left:   fp(15),
				Right:  fp(15),
			},
			Positioning: &PositioningOverride{
				MinCount: ip(4),
			},
			Print: &PrintOverride{
				MinDPI:      ip(300),
				OptimalDPI:  ip(600),
				MinContrast: fp(0.5),
			},
		},
		"zhongkao": {
			Bubble: &BubbleOverride{
				MinSize:    fp(9),
				MinSpacing: fp(16),
			},
			Margins: &MarginsOverride{
				Top:    fp(12),
				Bottom: fp(12),
				Left:   fp(12),
				Right:  fp(12),
			},
			Positioning: &PositioningOverride{
				MinCount: ip(4),
			},
			Print: &PrintOverride{
				MinDPI:      ip(200),
				MinContrast: fp(0.4),
			},
		},
		"final": {
			Bubble: &BubbleOverride{
				MinSpacing: fp(16),
			},
			Print: &PrintOverride{
				MinDPI: ip(200),
			},
		},
		"practice": {
			Bubble: &BubbleOverride{
				MinSize:    fp(6),
				MinSpacing: fp(12),
			},
			Margins: &MarginsOverride{
				Top:    fp(8),
				Bottom: fp(8),
				Left:   fp(8),
				Right:  fp(8),
			},
			Positioning: &PositioningOverride{
				MinCount: ip(2),
			},
			Print: &PrintOverride{
				MinDPI:      ip(100),
				MinContrast: fp(0.25),
			},
		},
	}
}

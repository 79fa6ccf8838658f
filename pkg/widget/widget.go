// Package widget maps native application values onto the fixed JSON
// envelope shapes the dashboard product expects. Building an envelope is a
// pure function of (kind, value); nothing here touches the transport.
package widget

import "fmt"

// Kind identifies one widget type supported by the dashboard product.
type Kind string

const (
	KindNumber     Kind = "number"
	KindRAG        Kind = "rag"
	KindText       Kind = "text"
	KindPieChart   Kind = "pie_chart"
	KindLineChart  Kind = "line_chart"
	KindGeckOMeter Kind = "geck_o_meter"
	KindFunnel     Kind = "funnel"
	KindBullet     Kind = "bullet"
	KindList       Kind = "list"
)

var allKinds = map[Kind]bool{
	KindNumber:     true,
	KindRAG:        true,
	KindText:       true,
	KindPieChart:   true,
	KindLineChart:  true,
	KindGeckOMeter: true,
	KindFunnel:     true,
	KindBullet:     true,
	KindList:       true,
}

// ParseKind converts a configuration string into a Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !allKinds[k] {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
	return k, nil
}

func (k Kind) String() string { return string(k) }

// NumberItem is one reading on a number widget. The first item is the
// current value, an optional second item the previous one.
type NumberItem struct {
	Value  float64
	Prefix string // display prefix such as "$", omitted when empty
}

// RAGItem is one of the three red/amber/green readings. A nil Value is
// rendered as an empty string, matching the product's "no reading" slot.
type RAGItem struct {
	Value *float64
	Text  string
}

// TextType annotates a text widget message.
type TextType int

const (
	TextNone TextType = 0
	TextWarn TextType = 1
	TextInfo TextType = 2
)

// TextItem is one message on a text widget.
type TextItem struct {
	Text string
	Type TextType
}

// PieSlice is one labelled slice of a pie chart. Colour is an RRGGBB[TT]
// string and omitted from output when empty.
type PieSlice struct {
	Value  float64
	Label  string
	Colour string
}

// LineChart holds a series of data points plus optional axis labels.
// Multiple axis labels are spread evenly along the axis by the product.
type LineChart struct {
	Values []float64
	XAxis  []string
	YAxis  []string
	Colour string
}

// MeterBound is the min or max of a geck-o-meter, with optional caption.
type MeterBound struct {
	Value float64
	Text  string
}

// Meter is the native value for a geck-o-meter widget.
type Meter struct {
	Value float64
	Min   MeterBound
	Max   MeterBound
}

// FunnelStage is one ordered stage of a funnel. A nil Value serializes as
// JSON null so stages stay positionally aligned with their labels.
type FunnelStage struct {
	Value *float64
	Label string
}

// Funnel is the native value for a funnel widget.
type Funnel struct {
	Stages         []FunnelStage
	Reverse        bool // reverses the colour order
	HidePercentage bool // hides the computed percentage readout
	Sort           bool // sort stages by value, largest first
}

// BulletRange is a start/end span on a bullet graph axis.
type BulletRange struct {
	Start float64
	End   float64
}

// Span returns the range from zero up to end, the common case for the
// current and projected measures.
func Span(end float64) BulletRange { return BulletRange{Start: 0, End: end} }

// Bullet is the native value for a bullet graph.
//
// Label and AxisPoints are required. When Red, Amber and Green are not all
// supplied, defaults are derived by splitting the axis span into thirds.
// Values are scaled down to fit the product's UI (thousands, millions,
// billions) unless DisableAutoScale is set; scaling annotates the sublabel.
type Bullet struct {
	Label            string
	Sublabel         string
	Orientation      string // "horizontal" (default) or "vertical"
	AxisPoints       []float64
	Current          BulletRange
	Comparative      float64
	Projected        *BulletRange
	Red              *BulletRange
	Amber            *BulletRange
	Green            *BulletRange
	DisableAutoScale bool
}

// ListItem is one row of a list widget.
type ListItem struct {
	Title       string
	Label       string // optional tag shown next to the title
	LabelColor  string
	Description string
}

// Pointer returns &v. Convenience for optional numeric fields such as
// FunnelStage.Value and RAGItem.Value.
func Pointer(v float64) *float64 { return &v }

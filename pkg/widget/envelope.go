package widget

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// Build converts a native value into the envelope structure for the given
// widget kind. The result marshals to the exact JSON the dashboard product
// expects. Build is deterministic: equal inputs produce structurally equal
// envelopes.
func Build(kind Kind, value any) (map[string]any, error) {
	if value == nil {
		return nil, invalidf(kind, "nil value")
	}
	switch kind {
	case KindNumber:
		return buildNumber(value)
	case KindRAG:
		return buildRAG(value)
	case KindText:
		return buildText(value)
	case KindPieChart:
		return buildPieChart(value)
	case KindLineChart:
		return buildLineChart(value)
	case KindGeckOMeter:
		return buildGeckOMeter(value)
	case KindFunnel:
		return buildFunnel(value)
	case KindBullet:
		return buildBullet(value)
	case KindList:
		return buildList(value)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

type numberEntry struct {
	Value  float64 `json:"value"`
	Prefix string  `json:"prefix,omitempty"`
}

func buildNumber(value any) (map[string]any, error) {
	var entries []numberEntry
	switch v := value.(type) {
	case NumberItem:
		entries = []numberEntry{{Value: v.Value, Prefix: v.Prefix}}
	case []NumberItem:
		for _, it := range v {
			entries = append(entries, numberEntry{Value: it.Value, Prefix: it.Prefix})
		}
	default:
		if f, ok := toFloat(value); ok {
			entries = []numberEntry{{Value: f}}
			break
		}
		fs, ok := toFloatSlice(value)
		if !ok {
			return nil, invalidf(KindNumber, "expected a number, a pair of numbers, or NumberItems, got %T", value)
		}
		for _, f := range fs {
			entries = append(entries, numberEntry{Value: f})
		}
	}
	if n := len(entries); n == 0 || n > 2 {
		return nil, invalidf(KindNumber, "takes one value or a [current, previous] pair, got %d values", len(entries))
	}
	return map[string]any{"item": entries}, nil
}

func buildRAG(value any) (map[string]any, error) {
	items, ok := value.([]RAGItem)
	if !ok {
		return nil, invalidf(KindRAG, "expected []RAGItem, got %T", value)
	}
	if len(items) != 3 {
		return nil, invalidf(KindRAG, "requires exactly red, amber and green readings, got %d", len(items))
	}
	out := make([]map[string]any, 0, 3)
	for _, it := range items {
		entry := map[string]any{}
		if it.Value != nil {
			entry["value"] = *it.Value
		} else {
			// the product renders an empty slot for a missing reading
			entry["value"] = ""
		}
		if it.Text != "" {
			entry["text"] = it.Text
		}
		out = append(out, entry)
	}
	return map[string]any{"item": out}, nil
}

type textEntry struct {
	Text string   `json:"text"`
	Type TextType `json:"type"`
}

func buildText(value any) (map[string]any, error) {
	var items []TextItem
	switch v := value.(type) {
	case string:
		items = []TextItem{{Text: v}}
	case []string:
		for _, s := range v {
			items = append(items, TextItem{Text: s})
		}
	case TextItem:
		items = []TextItem{v}
	case []TextItem:
		items = v
	default:
		return nil, invalidf(KindText, "expected a string, []string or TextItems, got %T", value)
	}
	if len(items) == 0 {
		return nil, invalidf(KindText, "requires at least one message")
	}
	entries := make([]textEntry, 0, len(items))
	for _, it := range items {
		switch it.Type {
		case TextNone, TextWarn, TextInfo:
		default:
			return nil, invalidf(KindText, "unknown text type %d", it.Type)
		}
		entries = append(entries, textEntry{Text: it.Text, Type: it.Type})
	}
	return map[string]any{"item": entries}, nil
}

type pieEntry struct {
	Value  float64 `json:"value"`
	Label  string  `json:"label"`
	Colour string  `json:"colour,omitempty"`
}

func buildPieChart(value any) (map[string]any, error) {
	var slices []PieSlice
	switch v := value.(type) {
	case PieSlice:
		slices = []PieSlice{v}
	case []PieSlice:
		slices = v
	default:
		return nil, invalidf(KindPieChart, "expected PieSlices, got %T", value)
	}
	if len(slices) == 0 {
		return nil, invalidf(KindPieChart, "requires at least one slice")
	}
	entries := make([]pieEntry, 0, len(slices))
	for i, s := range slices {
		if s.Label == "" {
			return nil, invalidf(KindPieChart, "slice %d is missing a label", i)
		}
		entries = append(entries, pieEntry{Value: s.Value, Label: s.Label, Colour: s.Colour})
	}
	return map[string]any{"item": entries}, nil
}

func buildLineChart(value any) (map[string]any, error) {
	var chart LineChart
	switch v := value.(type) {
	case LineChart:
		chart = v
	default:
		fs, ok := toFloatSlice(value)
		if !ok {
			return nil, invalidf(KindLineChart, "expected a LineChart or a series of numbers, got %T", value)
		}
		chart = LineChart{Values: fs}
	}
	if len(chart.Values) == 0 {
		return nil, invalidf(KindLineChart, "requires at least one data point")
	}
	settings := map[string]any{}
	if len(chart.XAxis) > 0 {
		settings["axisx"] = chart.XAxis
	}
	if len(chart.YAxis) > 0 {
		settings["axisy"] = chart.YAxis
	}
	if chart.Colour != "" {
		settings["colour"] = chart.Colour
	}
	return map[string]any{"item": chart.Values, "settings": settings}, nil
}

func buildGeckOMeter(value any) (map[string]any, error) {
	m, ok := value.(Meter)
	if !ok {
		return nil, invalidf(KindGeckOMeter, "expected a Meter, got %T", value)
	}
	if m.Max.Value < m.Min.Value {
		return nil, invalidf(KindGeckOMeter, "max %v is below min %v", m.Max.Value, m.Min.Value)
	}
	return map[string]any{
		"item": m.Value,
		"min":  boundEntry(m.Min),
		"max":  boundEntry(m.Max),
	}, nil
}

func boundEntry(b MeterBound) map[string]any {
	entry := map[string]any{"value": b.Value}
	if b.Text != "" {
		entry["text"] = b.Text
	}
	return entry
}

type funnelEntry struct {
	Value *float64 `json:"value"`
	Label string   `json:"label"`
}

func buildFunnel(value any) (map[string]any, error) {
	f, ok := value.(Funnel)
	if !ok {
		return nil, invalidf(KindFunnel, "expected a Funnel, got %T", value)
	}
	if len(f.Stages) == 0 {
		return nil, invalidf(KindFunnel, "requires at least one stage")
	}
	stages := make([]FunnelStage, len(f.Stages))
	copy(stages, f.Stages)
	if f.Sort {
		sort.SliceStable(stages, func(i, j int) bool {
			return stageValue(stages[i]) > stageValue(stages[j])
		})
	}
	entries := make([]funnelEntry, 0, len(stages))
	for _, s := range stages {
		entries = append(entries, funnelEntry{Value: s.Value, Label: s.Label})
	}
	kind := "standard"
	if f.Reverse {
		kind = "reverse"
	}
	percentage := "show"
	if f.HidePercentage {
		percentage = "hide"
	}
	return map[string]any{
		"item":       entries,
		"type":       kind,
		"percentage": percentage,
	}, nil
}

// stageValue orders unvalued stages after every valued one when sorting.
func stageValue(s FunnelStage) float64 {
	if s.Value == nil {
		return negInf
	}
	return *s.Value
}

func buildList(value any) (map[string]any, error) {
	items, ok := value.([]ListItem)
	if !ok {
		return nil, invalidf(KindList, "expected []ListItem, got %T", value)
	}
	if len(items) == 0 {
		return nil, invalidf(KindList, "requires at least one row")
	}
	entries := make([]map[string]any, 0, len(items))
	for i, it := range items {
		if it.Title == "" {
			return nil, invalidf(KindList, "row %d is missing a title", i)
		}
		entry := map[string]any{
			"title": map[string]any{"text": it.Title},
		}
		if it.Label != "" {
			label := map[string]any{"name": it.Label}
			if it.LabelColor != "" {
				label["color"] = it.LabelColor
			}
			entry["label"] = label
		}
		if it.Description != "" {
			entry["description"] = it.Description
		}
		entries = append(entries, entry)
	}
	return map[string]any{"item": entries}, nil
}

// toFloat coerces the numeric types business callables commonly return.
// Numbers pass through unmodified; there is no rounding here.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case decimal.Decimal:
		f, _ := n.Float64()
		return f, true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func toFloatSlice(v any) ([]float64, bool) {
	switch s := v.(type) {
	case []float64:
		return s, true
	case []int:
		out := make([]float64, len(s))
		for i, n := range s {
			out[i] = float64(n)
		}
		return out, true
	case []decimal.Decimal:
		out := make([]float64, len(s))
		for i, d := range s {
			out[i], _ = d.Float64()
		}
		return out, true
	case []any:
		out := make([]float64, len(s))
		for i, e := range s {
			f, ok := toFloat(e)
			if !ok {
				return nil, false
			}
			out[i] = f
		}
		return out, true
	}
	return nil, false
}

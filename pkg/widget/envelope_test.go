package widget

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustJSON(t *testing.T, kind Kind, value any) string {
	t.Helper()
	env, err := Build(kind, value)
	require.NoError(t, err)
	b, err := json.Marshal(env)
	require.NoError(t, err)
	return string(b)
}

// --- Number ---

func TestNumber_Scalar(t *testing.T) {
	assert.JSONEq(t, `{"item": [{"value": 42}]}`, mustJSON(t, KindNumber, 42))
}

func TestNumber_CurrentAndPrevious(t *testing.T) {
	assert.JSONEq(t, `{"item": [{"value": 42}, {"value": 40}]}`,
		mustJSON(t, KindNumber, []float64{42, 40}))
}

func TestNumber_SingleHasNoPreviousField(t *testing.T) {
	env, err := Build(KindNumber, 10)
	require.NoError(t, err)
	items := env["item"].([]numberEntry)
	require.Len(t, items, 1)
	assert.Equal(t, 10.0, items[0].Value)
}

func TestNumber_ItemsWithPrefix(t *testing.T) {
	value := []NumberItem{{Value: 10, Prefix: "$"}, {Value: 9}}
	assert.JSONEq(t,
		`{"item": [{"value": 10, "prefix": "$"}, {"value": 9}]}`,
		mustJSON(t, KindNumber, value))
}

func TestNumber_Decimal(t *testing.T) {
	assert.JSONEq(t, `{"item": [{"value": 5.25}]}`,
		mustJSON(t, KindNumber, decimal.NewFromFloat(5.25)))
}

func TestNumber_TooManyValues(t *testing.T) {
	_, err := Build(KindNumber, []float64{1, 2, 3})
	var ive *InvalidValueError
	require.ErrorAs(t, err, &ive)
	assert.Equal(t, KindNumber, ive.Kind)
}

func TestNumber_WrongType(t *testing.T) {
	_, err := Build(KindNumber, "forty-two")
	var ive *InvalidValueError
	require.ErrorAs(t, err, &ive)
}

func TestNumber_NilValue(t *testing.T) {
	_, err := Build(KindNumber, nil)
	var ive *InvalidValueError
	require.ErrorAs(t, err, &ive)
}

// --- RAG ---

func TestRAG_Full(t *testing.T) {
	value := []RAGItem{
		{Value: Pointer(10), Text: "ten"},
		{Value: Pointer(5), Text: "five"},
		{Value: Pointer(1), Text: "one"},
	}
	assert.JSONEq(t,
		`{"item": [{"value": 10, "text": "ten"}, {"value": 5, "text": "five"}, {"value": 1, "text": "one"}]}`,
		mustJSON(t, KindRAG, value))
}

func TestRAG_MissingReadingRendersEmpty(t *testing.T) {
	value := []RAGItem{
		{Value: nil},
		{Value: Pointer(5)},
		{Value: Pointer(1)},
	}
	assert.JSONEq(t,
		`{"item": [{"value": ""}, {"value": 5}, {"value": 1}]}`,
		mustJSON(t, KindRAG, value))
}

func TestRAG_WrongCount(t *testing.T) {
	_, err := Build(KindRAG, []RAGItem{{Value: Pointer(1)}})
	var ive *InvalidValueError
	require.ErrorAs(t, err, &ive)
}

// --- Text ---

func TestText_String(t *testing.T) {
	assert.JSONEq(t, `{"item": [{"text": "test message", "type": 0}]}`,
		mustJSON(t, KindText, "test message"))
}

func TestText_TypedItems(t *testing.T) {
	value := []TextItem{
		{Text: "plain"},
		{Text: "info", Type: TextInfo},
		{Text: "warn", Type: TextWarn},
	}
	assert.JSONEq(t,
		`{"item": [{"text": "plain", "type": 0}, {"text": "info", "type": 2}, {"text": "warn", "type": 1}]}`,
		mustJSON(t, KindText, value))
}

func TestText_UnknownType(t *testing.T) {
	_, err := Build(KindText, []TextItem{{Text: "x", Type: TextType(7)}})
	var ive *InvalidValueError
	require.ErrorAs(t, err, &ive)
}

// --- Pie chart ---

func TestPieChart_ColoursOmittedWhenUnset(t *testing.T) {
	value := []PieSlice{
		{Value: 1, Label: "A"},
		{Value: 3, Label: "B"},
	}
	assert.JSONEq(t,
		`{"item": [{"label": "A", "value": 1}, {"label": "B", "value": 3}]}`,
		mustJSON(t, KindPieChart, value))
}

func TestPieChart_WithColours(t *testing.T) {
	value := []PieSlice{
		{Value: 1, Label: "one", Colour: "00112233"},
		{Value: 2, Label: "two", Colour: "44556677"},
	}
	assert.JSONEq(t,
		`{"item": [{"value": 1, "label": "one", "colour": "00112233"}, {"value": 2, "label": "two", "colour": "44556677"}]}`,
		mustJSON(t, KindPieChart, value))
}

func TestPieChart_MissingLabel(t *testing.T) {
	_, err := Build(KindPieChart, []PieSlice{{Value: 1}})
	var ive *InvalidValueError
	require.ErrorAs(t, err, &ive)
	assert.Contains(t, ive.Reason, "label")
}

// --- Line chart ---

func TestLineChart_ValuesOnly(t *testing.T) {
	assert.JSONEq(t, `{"item": [1, 2, 3], "settings": {}}`,
		mustJSON(t, KindLineChart, []float64{1, 2, 3}))
}

func TestLineChart_AxesAndColour(t *testing.T) {
	value := LineChart{
		Values: []float64{1, 2, 3},
		XAxis:  []string{"first", "last"},
		YAxis:  []string{"low", "high"},
		Colour: "00112233",
	}
	assert.JSONEq(t,
		`{"item": [1, 2, 3], "settings": {"axisx": ["first", "last"], "axisy": ["low", "high"], "colour": "00112233"}}`,
		mustJSON(t, KindLineChart, value))
}

func TestLineChart_Empty(t *testing.T) {
	_, err := Build(KindLineChart, LineChart{})
	var ive *InvalidValueError
	require.ErrorAs(t, err, &ive)
}

// --- Geck-o-meter ---

func TestGeckOMeter(t *testing.T) {
	value := Meter{
		Value: 2,
		Min:   MeterBound{Value: 1, Text: "min"},
		Max:   MeterBound{Value: 3, Text: "max"},
	}
	assert.JSONEq(t,
		`{"item": 2, "min": {"value": 1, "text": "min"}, "max": {"value": 3, "text": "max"}}`,
		mustJSON(t, KindGeckOMeter, value))
}

func TestGeckOMeter_BoundTextOmitted(t *testing.T) {
	value := Meter{Value: 2, Min: MeterBound{Value: 1}, Max: MeterBound{Value: 3}}
	assert.JSONEq(t,
		`{"item": 2, "min": {"value": 1}, "max": {"value": 3}}`,
		mustJSON(t, KindGeckOMeter, value))
}

func TestGeckOMeter_InvertedBounds(t *testing.T) {
	_, err := Build(KindGeckOMeter, Meter{Value: 2, Min: MeterBound{Value: 3}, Max: MeterBound{Value: 1}})
	var ive *InvalidValueError
	require.ErrorAs(t, err, &ive)
}

// --- Funnel ---

func TestFunnel_Defaults(t *testing.T) {
	value := Funnel{
		Stages: []FunnelStage{
			{Value: Pointer(100), Label: "step 1"},
			{Value: Pointer(50), Label: "step 2"},
		},
	}
	assert.JSONEq(t,
		`{"item": [{"value": 100, "label": "step 1"}, {"value": 50, "label": "step 2"}], "type": "standard", "percentage": "show"}`,
		mustJSON(t, KindFunnel, value))
}

func TestFunnel_ReverseHiddenSorted(t *testing.T) {
	value := Funnel{
		Stages: []FunnelStage{
			{Value: Pointer(50), Label: "step 2"},
			{Value: Pointer(100), Label: "step 1"},
		},
		Reverse:        true,
		HidePercentage: true,
		Sort:           true,
	}
	assert.JSONEq(t,
		`{"item": [{"value": 100, "label": "step 1"}, {"value": 50, "label": "step 2"}], "type": "reverse", "percentage": "hide"}`,
		mustJSON(t, KindFunnel, value))
}

func TestFunnel_AbsentStageValueIsNull(t *testing.T) {
	value := Funnel{
		Stages: []FunnelStage{
			{Value: Pointer(80), Label: "visited"},
			{Value: nil, Label: "quoted"},
			{Value: Pointer(12), Label: "bought"},
		},
	}
	assert.JSONEq(t,
		`{"item": [{"value": 80, "label": "visited"}, {"value": null, "label": "quoted"}, {"value": 12, "label": "bought"}], "type": "standard", "percentage": "show"}`,
		mustJSON(t, KindFunnel, value))
}

func TestFunnel_SortDoesNotMutateInput(t *testing.T) {
	stages := []FunnelStage{
		{Value: Pointer(50), Label: "b"},
		{Value: Pointer(100), Label: "a"},
	}
	_, err := Build(KindFunnel, Funnel{Stages: stages, Sort: true})
	require.NoError(t, err)
	assert.Equal(t, "b", stages[0].Label)
}

// --- List ---

func TestList(t *testing.T) {
	value := []ListItem{
		{Title: "v2.14.0", Label: "stable", LabelColor: "#108000", Description: "checkout rework"},
		{Title: "v2.15.0-rc1"},
	}
	assert.JSONEq(t,
		`{"item": [
			{"title": {"text": "v2.14.0"}, "label": {"name": "stable", "color": "#108000"}, "description": "checkout rework"},
			{"title": {"text": "v2.15.0-rc1"}}
		]}`,
		mustJSON(t, KindList, value))
}

func TestList_MissingTitle(t *testing.T) {
	_, err := Build(KindList, []ListItem{{Description: "no title"}})
	var ive *InvalidValueError
	require.ErrorAs(t, err, &ive)
}

// --- Cross-cutting ---

func TestBuild_UnknownKind(t *testing.T) {
	_, err := Build(Kind("gauge"), 1)
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("pie_chart")
	require.NoError(t, err)
	assert.Equal(t, KindPieChart, k)

	_, err = ParseKind("sparkline")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestBuild_Deterministic(t *testing.T) {
	value := Funnel{
		Stages: []FunnelStage{
			{Value: Pointer(100), Label: "a"},
			{Value: nil, Label: "b"},
		},
	}
	first := mustJSON(t, KindFunnel, value)
	second := mustJSON(t, KindFunnel, value)
	assert.Equal(t, first, second)
}

func TestNumber_RoundTrip(t *testing.T) {
	raw := mustJSON(t, KindNumber, []float64{42, 40})

	var decoded struct {
		Item []struct {
			Value float64 `json:"value"`
		} `json:"item"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	require.Len(t, decoded.Item, 2)
	assert.Equal(t, 42.0, decoded.Item[0].Value)
	assert.Equal(t, 40.0, decoded.Item[1].Value)
}

func TestPieChart_RoundTrip(t *testing.T) {
	raw := mustJSON(t, KindPieChart, []PieSlice{
		{Value: 1, Label: "A"},
		{Value: 3, Label: "B", Colour: "8899aa"},
	})

	var decoded struct {
		Item []struct {
			Value  float64 `json:"value"`
			Label  string  `json:"label"`
			Colour string  `json:"colour"`
		} `json:"item"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	require.Len(t, decoded.Item, 2)
	assert.Equal(t, "A", decoded.Item[0].Label)
	assert.Empty(t, decoded.Item[0].Colour)
	assert.Equal(t, 3.0, decoded.Item[1].Value)
	assert.Equal(t, "8899aa", decoded.Item[1].Colour)
}

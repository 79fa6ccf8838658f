package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildBulletEnvelope(t *testing.T, b Bullet) map[string]any {
	t.Helper()
	env, err := Build(KindBullet, b)
	require.NoError(t, err)
	return env
}

func minimalBullet() Bullet {
	return Bullet{
		Label:            "Some label",
		AxisPoints:       []float64{0, 200, 400, 600, 800, 1000},
		Current:          Span(500),
		Comparative:      600,
		DisableAutoScale: true,
	}
}

func TestBullet_Minimal(t *testing.T) {
	env := buildBulletEnvelope(t, minimalBullet())

	assert.Equal(t, "horizontal", env["orientation"])

	item := env["item"].(map[string]any)
	assert.Equal(t, "Some label", item["label"])
	assert.NotContains(t, item, "sublabel")

	axis := item["axis"].(map[string]any)
	assert.Equal(t, []float64{0, 200, 400, 600, 800, 1000}, axis["point"])

	measure := item["measure"].(map[string]any)
	current := measure["current"].(map[string]any)
	assert.Equal(t, 0.0, current["start"])
	assert.Equal(t, 500.0, current["end"])
	assert.NotContains(t, measure, "projected")

	comparative := item["comparative"].(map[string]any)
	assert.Equal(t, 600.0, comparative["point"])
}

func TestBullet_DerivedRanges(t *testing.T) {
	env := buildBulletEnvelope(t, minimalBullet())
	ranges := env["item"].(map[string]any)["range"].(map[string]any)

	red := ranges["red"].(map[string]any)
	amber := ranges["amber"].(map[string]any)
	green := ranges["green"].(map[string]any)

	assert.Equal(t, 0.0, red["start"])
	assert.Equal(t, 332.0, red["end"])
	assert.Equal(t, 333.0, amber["start"])
	assert.Equal(t, 666.0, amber["end"])
	assert.Equal(t, 667.0, green["start"])
	assert.Equal(t, 1000.0, green["end"])
}

func TestBullet_AutoScaleThousands(t *testing.T) {
	b := minimalBullet()
	b.DisableAutoScale = false
	env := buildBulletEnvelope(t, b)
	item := env["item"].(map[string]any)

	axis := item["axis"].(map[string]any)
	assert.Equal(t, []float64{0, 0.2, 0.4, 0.6, 0.8, 1.0}, axis["point"])

	current := item["measure"].(map[string]any)["current"].(map[string]any)
	assert.Equal(t, 0.0, current["start"])
	assert.Equal(t, 0.5, current["end"])

	comparative := item["comparative"].(map[string]any)
	assert.Equal(t, 0.6, comparative["point"])

	ranges := item["range"].(map[string]any)
	assert.Equal(t, 0.33, ranges["red"].(map[string]any)["end"])
	assert.Equal(t, 0.33, ranges["amber"].(map[string]any)["start"])
	assert.Equal(t, 0.67, ranges["amber"].(map[string]any)["end"])
	assert.Equal(t, 0.67, ranges["green"].(map[string]any)["start"])
	assert.Equal(t, 1.0, ranges["green"].(map[string]any)["end"])

	// scaling annotates the sublabel
	assert.Equal(t, "Thousands", item["sublabel"])
}

func TestBullet_AutoScaleSuffixesExistingSublabel(t *testing.T) {
	b := minimalBullet()
	b.DisableAutoScale = false
	b.Sublabel = "USD"
	b.AxisPoints = []float64{0, 500000, 1000000}
	env := buildBulletEnvelope(t, b)
	item := env["item"].(map[string]any)
	assert.Equal(t, "USD (millions)", item["sublabel"])
}

func TestBullet_SuppliedRangesKept(t *testing.T) {
	b := minimalBullet()
	b.Red = &BulletRange{Start: 0, End: 100}
	b.Amber = &BulletRange{Start: 100, End: 400}
	b.Green = &BulletRange{Start: 400, End: 1000}
	env := buildBulletEnvelope(t, b)
	ranges := env["item"].(map[string]any)["range"].(map[string]any)
	assert.Equal(t, 100.0, ranges["red"].(map[string]any)["end"])
	assert.Equal(t, 400.0, ranges["amber"].(map[string]any)["end"])
}

func TestBullet_Projected(t *testing.T) {
	b := minimalBullet()
	p := Span(900)
	b.Projected = &p
	env := buildBulletEnvelope(t, b)
	projected := env["item"].(map[string]any)["measure"].(map[string]any)["projected"].(map[string]any)
	assert.Equal(t, 0.0, projected["start"])
	assert.Equal(t, 900.0, projected["end"])
}

func TestBullet_DoesNotMutateInput(t *testing.T) {
	b := minimalBullet()
	b.DisableAutoScale = false
	_, err := Build(KindBullet, b)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 200, 400, 600, 800, 1000}, b.AxisPoints)
	assert.Equal(t, 600.0, b.Comparative)
}

func TestBullet_MissingLabel(t *testing.T) {
	b := minimalBullet()
	b.Label = ""
	_, err := Build(KindBullet, b)
	var ive *InvalidValueError
	require.ErrorAs(t, err, &ive)
}

func TestBullet_MissingAxis(t *testing.T) {
	b := minimalBullet()
	b.AxisPoints = nil
	_, err := Build(KindBullet, b)
	var ive *InvalidValueError
	require.ErrorAs(t, err, &ive)
}

func TestBullet_BadOrientation(t *testing.T) {
	b := minimalBullet()
	b.Orientation = "diagonal"
	_, err := Build(KindBullet, b)
	var ive *InvalidValueError
	require.ErrorAs(t, err, &ive)
}

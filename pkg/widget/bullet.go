package widget

import (
	"fmt"
	"math"
	"strings"
)

var negInf = math.Inf(-1)

// scaleNames maps an auto-scale divisor to the sublabel annotation.
var scaleNames = map[float64]string{
	1e9: "billions",
	1e6: "millions",
	1e3: "thousands",
}

func buildBullet(value any) (map[string]any, error) {
	b, ok := value.(Bullet)
	if !ok {
		return nil, invalidf(KindBullet, "expected a Bullet, got %T", value)
	}
	if b.Label == "" {
		return nil, invalidf(KindBullet, "label is required")
	}
	if len(b.AxisPoints) == 0 {
		return nil, invalidf(KindBullet, "axis points are required")
	}
	orientation := b.Orientation
	switch orientation {
	case "":
		orientation = "horizontal"
	case "horizontal", "vertical":
	default:
		return nil, invalidf(KindBullet, "orientation must be horizontal or vertical, got %q", b.Orientation)
	}

	axis := append([]float64(nil), b.AxisPoints...)
	current := b.Current
	comparative := b.Comparative
	sublabel := b.Sublabel
	var projected *BulletRange
	if b.Projected != nil {
		p := *b.Projected
		projected = &p
	}

	red, amber, green := b.Red, b.Amber, b.Green
	if red == nil || amber == nil || green == nil {
		r, a, g := defaultRanges(axis)
		red, amber, green = &r, &a, &g
	} else {
		r, a, g := *red, *amber, *green
		red, amber, green = &r, &a, &g
	}

	if !b.DisableAutoScale {
		if scale := pickScale(axis); scale > 1 {
			div := func(v float64) float64 { return round2(v / scale) }
			for i := range axis {
				axis[i] = div(axis[i])
			}
			current = BulletRange{Start: div(current.Start), End: div(current.End)}
			if projected != nil {
				*projected = BulletRange{Start: div(projected.Start), End: div(projected.End)}
			}
			*red = BulletRange{Start: div(red.Start), End: div(red.End)}
			*amber = BulletRange{Start: div(amber.Start), End: div(amber.End)}
			*green = BulletRange{Start: div(green.Start), End: div(green.End)}
			comparative = div(comparative)

			name := scaleNames[scale]
			if sublabel != "" {
				sublabel = fmt.Sprintf("%s (%s)", sublabel, name)
			} else {
				sublabel = strings.ToUpper(name[:1]) + name[1:]
			}
		}
	}

	measure := map[string]any{
		"current": rangeEntry(current),
	}
	if projected != nil {
		measure["projected"] = rangeEntry(*projected)
	}
	item := map[string]any{
		"label": b.Label,
		"axis":  map[string]any{"point": axis},
		"range": map[string]any{
			"red":   rangeEntry(*red),
			"amber": rangeEntry(*amber),
			"green": rangeEntry(*green),
		},
		"measure":     measure,
		"comparative": map[string]any{"point": comparative},
	}
	if sublabel != "" {
		item["sublabel"] = sublabel
	}
	return map[string]any{
		"orientation": orientation,
		"item":        item,
	}, nil
}

func rangeEntry(r BulletRange) map[string]any {
	return map[string]any{"start": r.Start, "end": r.End}
}

// defaultRanges splits the axis span into thirds. The third is floored so
// integer axis points keep integer boundaries: a 0–1000 axis yields
// 0–332 / 333–666 / 667–1000.
func defaultRanges(axis []float64) (red, amber, green BulletRange) {
	lo, hi := axis[0], axis[0]
	for _, p := range axis[1:] {
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	third := math.Floor((hi - lo) / 3)
	red = BulletRange{Start: lo, End: lo + third - 1}
	amber = BulletRange{Start: lo + third, End: hi - third - 1}
	green = BulletRange{Start: hi - third, End: hi}
	return red, amber, green
}

// pickScale returns the divisor that keeps the largest axis point readable
// in the product's UI, or 1 when no scaling is needed.
func pickScale(axis []float64) float64 {
	top := negInf
	for _, p := range axis {
		top = math.Max(top, p)
	}
	for _, scale := range []float64{1e9, 1e6, 1e3} {
		if top >= scale {
			return scale
		}
	}
	return 1
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

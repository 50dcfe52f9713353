package colormodel

import "math"

// Match is the result of a nearest-color search.
type Match struct {
	Name     string
	Color    [3]uint8
	Distance float64
}

// Distance is the Euclidean distance between two RGB triples. With fast set
// it returns the squared distance, which orders colors the same way.
func Distance(a, b [3]float64, fast bool) float64 {
	dr := a[0] - b[0]
	dg := a[1] - b[1]
	db := a[2] - b[2]
	d := dr*dr + dg*dg + db*db
	if fast {
		return d
	}
	return math.Sqrt(d)
}

// Closest scans table for the entry nearest to c in RGB space. Alpha is
// ignored. The scan stops at the first exact match and earlier entries win
// ties. The returned distance is the true Euclidean distance.
func Closest(c RGBA, table Table) (Match, error) {
	if len(table.Colors) == 0 {
		return Match{}, &EmptyReferenceSetError{Table: table.Name}
	}

	target := [3]float64{c.R, c.G, c.B}
	for i, v := range target {
		if math.IsNaN(v) {
			target[i] = 0
		}
	}
	best := 0
	bestDist := math.Inf(1)

	for i, ref := range table.Colors {
		d := Distance(target, [3]float64{float64(ref.RGB[0]), float64(ref.RGB[1]), float64(ref.RGB[2])}, true)
		if d < bestDist {
			best, bestDist = i, d
		}
		if d == 0 {
			break
		}
	}

	ref := table.Colors[best]
	return Match{Name: ref.Name, Color: ref.RGB, Distance: math.Sqrt(bestDist)}, nil
}

// ClosestRecord converts rec to RGB and resolves its nearest named color.
func ClosestRecord(rec Record, table Table) (Match, error) {
	rgb, err := Convert(rec, ModelRGB)
	if err != nil {
		return Match{}, err
	}
	return Closest(RGBA{R: rgb.values[0], G: rgb.values[1], B: rgb.values[2], A: rgb.alpha}, table)
}

package hexgrid

import (
	"math"
	"sort"
)

// Triple is three mutually adjacent slots meeting at one grid vertex.
// Triples are computed on demand; the order of the coordinates carries no
// meaning (see Canonical).
type Triple [3]Coord

// Canonical returns the triple with its coordinates sorted by column, then row.
func (t Triple) Canonical() Triple {
	out := t
	sort.Slice(out[:], func(i, j int) bool {
		return out[i].less(out[j])
	})
	return out
}

// Equal reports whether two triples cover the same slots.
func (t Triple) Equal(other Triple) bool {
	return t.Canonical() == other.Canonical()
}

// Contains reports whether c is one of the triple's slots.
func (t Triple) Contains(c Coord) bool {
	return t[0] == c || t[1] == c || t[2] == c
}

// Center returns the average of the three slot centres.
func (t Triple) Center(l Layout) Point {
	sum := Point{}
	for _, c := range t {
		sum = sum.Add(l.Position(c))
	}
	return sum.Scale(1.0 / 3.0)
}

// Clockwise returns the triple's slots in clockwise order around its centre,
// starting from the slot with the largest angle.
func (t Triple) Clockwise(l Layout) [3]Coord {
	center := t.Center(l)
	out := t.Canonical()
	angle := func(c Coord) float64 {
		p := l.Position(c).Sub(center)
		return math.Atan2(p.Y, p.X)
	}
	sort.Slice(out[:], func(i, j int) bool {
		return angle(out[i]) > angle(out[j])
	})
	return out
}

// TriplesAt returns the triples that include c, one per pair of clockwise
// adjacent directions, keeping only those whose three slots are inside g.
// Occupancy is not considered.
func TriplesAt(g *Grid, c Coord) []Triple {
	if !g.IsValid(c) {
		return nil
	}
	result := make([]Triple, 0, DirectionCount)
	for _, d := range AllDirections() {
		a := c.Neighbor(d)
		b := c.Neighbor(d.Clockwise())
		if g.IsValid(a) && g.IsValid(b) {
			result = append(result, Triple{c, a, b})
		}
	}
	return result
}

// AllTriples returns every distinct triple of g, in canonical form, ordered by
// their first slot as visited by AllCoords.
func AllTriples(g *Grid) []Triple {
	seen := make(map[Triple]bool)
	var result []Triple
	for _, c := range g.AllCoords() {
		for _, t := range TriplesAt(g, c) {
			key := t.Canonical()
			if seen[key] {
				continue
			}
			seen[key] = true
			result = append(result, key)
		}
	}
	return result
}

// NearestTriple returns the candidate whose centre is closest to p by squared
// distance. Ties keep the first candidate. ok is false when candidates is empty.
func NearestTriple(l Layout, p Point, candidates []Triple) (Triple, bool) {
	if len(candidates) == 0 {
		return Triple{}, false
	}
	best := 0
	bestDist := math.MaxFloat64
	for i, t := range candidates {
		d := t.Center(l).DistSq(p)
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return candidates[best], true
}

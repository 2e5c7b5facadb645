// Package physics provides the distance and circle tests used for hit-testing
// and spawn placement. All coordinates are normalized device coordinates.
package physics

import "math"

// Distance returns the Euclidean distance between (x1,y1) and (x2,y2).
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// PointInCircle reports whether (px,py) lies inside or on the circle centered
// at (cx,cy). The boundary counts as inside so a tap exactly on the rim hits.
func PointInCircle(px, py, cx, cy, radius float64) bool {
	return Distance(px, py, cx, cy) <= radius
}

// CirclesOverlap reports whether two circles intersect. Touching circles do not.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	return Distance(x1, y1, x2, y2) < r1+r2
}

// Lerp interpolates between a and b by fraction f.
func Lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}

// Clamp01 limits v to [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

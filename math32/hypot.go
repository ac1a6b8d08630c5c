package math32

import "math"

// Hypot returns sqrt(x*x + y*y) without spurious overflow or underflow:
// squares of float32 values are exact in double precision and far from
// its limits, so no scaling is needed.
func Hypot(x, y float32) float32 {
	ax, ay := Abs(x), Abs(y)
	switch {
	case IsInf(ax) || IsInf(ay):
		return inf()
	case ax != ax || ay != ay:
		return nan()
	}
	xd, yd := float64(ax), float64(ay)
	return float32(math.Sqrt(xd*xd + yd*yd))
}

// Hypot3 returns sqrt(x*x + y*y + z*z).
func Hypot3(x, y, z float32) float32 {
	ax, ay, az := Abs(x), Abs(y), Abs(z)
	switch {
	case IsInf(ax) || IsInf(ay) || IsInf(az):
		return inf()
	case ax != ax || ay != ay || az != az:
		return nan()
	}
	xd, yd, zd := float64(ax), float64(ay), float64(az)
	return float32(math.Sqrt(xd*xd + yd*yd + zd*zd))
}

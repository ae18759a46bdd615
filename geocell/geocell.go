package geocell

import (
	"math"
	"math/bits"

	"gonum.org/v1/gonum/spatial/curve"
)

// EarthRadiusMeters is the mean Earth radius used for great-circle distance,
// matching genet's APPROX_EARTH_RADIUS (original_source/genet/utils/spatial.py).
const EarthRadiusMeters = 6371008.8

// maxLevel is the finest indexing level: coordinates are quantized onto a
// 2^maxLevel x 2^maxLevel grid before being folded through the Hilbert curve.
const maxLevel = 30

// bitsPerLevel is the number of position bits the Hilbert curve contributes
// per level step (one quadrant choice per axis).
const bitsPerLevel = 2

// quantSize is the width, in grid units, of the full lat/lng quantization.
const quantSize = 1 << maxLevel

// IndexLevels are the fixed, coarse-to-fine hierarchical indexing levels
// used throughout spatialtree: level 0 is the root below the synthetic
// super-root ID 0, level 30 is leaf precision.
var IndexLevels = [...]int{0, 6, 8, 12, 18, 24, 30}

// ID is a 64-bit hierarchical geospatial cell identifier. The zero value is
// the synthetic super-root, the common ancestor of every level-0 cell.
type ID uint64

// hilbertCurve is the order-30 2D space-filling curve all cell IDs are built
// on: it preserves spatial locality, so truncating an ID's low bits yields
// an ancestor covering a contiguous, nearby region.
var hilbertCurve = curve.Hilbert2D{Order: maxLevel}

// Encode maps a (lat, lng) coordinate, in degrees, onto a leaf-level (30)
// cell ID.
func Encode(lat, lng float64) ID {
	x, y := quantize(lat, lng)
	pos := uint64(hilbertCurve.Curve([]int{x, y}))
	return cellIDAtLevel(pos, maxLevel)
}

// quantize maps (lat, lng) in degrees onto integer grid coordinates in
// [0, quantSize).
func quantize(lat, lng float64) (x, y int) {
	lat = clamp(lat, -90, 90)
	lng = clamp(lng, -180, 180)
	fx := (lng + 180) / 360 * quantSize
	fy := (lat + 90) / 180 * quantSize
	x = clampInt(int(fx), 0, quantSize-1)
	y = clampInt(int(fy), 0, quantSize-1)
	return x, y
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// cellIDAtLevel folds a full-precision Hilbert position and a target level
// into an S2-style cell ID: position bits for the levels coarser than or
// equal to `level`, a trailing marker bit recording exactly how deep the ID
// reaches, and zeros below it.
func cellIDAtLevel(pos uint64, level int) ID {
	shift := uint(bitsPerLevel * (maxLevel - level))
	prefix := pos >> shift
	return ID((prefix << (shift + 1)) | (uint64(1) << shift))
}

// levelOf returns the indexing level implied by id's marker bit position.
func levelOf(id ID) int {
	shift := bits.TrailingZeros64(uint64(id))
	return maxLevel - shift/bitsPerLevel
}

// posOf recovers the Hilbert position this cell's marker bit encodes,
// re-centering it within the range the cell covers when id is not a leaf.
func posOf(id ID) uint64 {
	shift := uint(bits.TrailingZeros64(uint64(id)))
	prefix := uint64(id) >> (shift + 1)
	if shift == 0 {
		return prefix
	}
	return (prefix << shift) | (uint64(1) << (shift - 1))
}

// center decodes a cell ID back to an approximate (lat, lng) center, exact
// for leaf cells and the midpoint of the covered region for ancestors.
func center(id ID) (lat, lng float64) {
	xy := hilbertCurve.Space(int(posOf(id)))
	x, y := xy[0], xy[1]
	lng = float64(x)/quantSize*360 - 180
	lat = float64(y)/quantSize*180 - 90
	return lat, lng
}

// angularRadius bounds, in radians, how far a point inside this cell can
// stray from its decoded center -- zero for leaf cells, growing with
// coarseness for ancestors. Used so Cap.MayIntersect over-approximates
// (never under-approximates) containment for non-leaf cells.
func angularRadius(id ID) float64 {
	shift := bits.TrailingZeros64(uint64(id))
	if shift == 0 {
		return 0
	}
	cellUnits := float64(uint64(1) << shift)
	const twoPi = 2 * math.Pi
	radiansPerUnit := twoPi / quantSize
	return (cellUnits / 2) * radiansPerUnit * math.Sqrt2
}

// angularDistance returns the great-circle angular separation, in radians,
// between two (lat, lng) points in degrees, via the spherical law of
// cosines.
func angularDistance(lat1, lng1, lat2, lng2 float64) float64 {
	phi1, phi2 := lat1*math.Pi/180, lat2*math.Pi/180
	dLng := (lng2 - lng1) * math.Pi / 180
	cosC := math.Sin(phi1)*math.Sin(phi2) + math.Cos(phi1)*math.Cos(phi2)*math.Cos(dLng)
	// Clamp for float round-off before acos.
	cosC = clamp(cosC, -1, 1)
	return math.Acos(cosC)
}

// Distance returns the great-circle distance, in meters, between the
// decoded centers of two cells.
func Distance(a, b ID) float64 {
	lat1, lng1 := center(a)
	lat2, lng2 := center(b)
	return angularDistance(lat1, lng1, lat2, lng2) * EarthRadiusMeters
}

// Ancestors returns cell's ancestor chain at the fixed IndexLevels, ordered
// coarse to fine (index 0 is level 0, the last entry is the leaf-level
// (30) cell itself).
func Ancestors(cell ID) []ID {
	pos := posOf(cell)
	out := make([]ID, len(IndexLevels))
	for i, lvl := range IndexLevels {
		out[i] = cellIDAtLevel(pos, lvl)
	}
	return out
}

// Cap is a bounded spherical region: all points within AngleRadians (in
// great-circle angle, i.e. distance/EarthRadiusMeters) of a center point.
type Cap struct {
	lat, lng    float64
	angleRadian float64
}

// NewCap builds a Cap of angular radius angleRadians centered on the given
// cell.
func NewCap(center ID, angleRadians float64) Cap {
	lat, lng := centerOf(center)
	return Cap{lat: lat, lng: lng, angleRadian: angleRadians}
}

// NewCapForCells builds a Cap covering every one of cells plus an angle
// buffer: the center is the (normalized) centroid of the cells' positions,
// and the radius is the largest center-to-point angular distance found,
// plus angleRadians. This generalizes genet's create_subsetting_area to an
// arbitrary number of seed cells (original_source/genet/utils/spatial.py).
func NewCapForCells(cells []ID, angleRadians float64) Cap {
	if len(cells) == 0 {
		return Cap{angleRadian: angleRadians}
	}
	if len(cells) == 1 {
		lat, lng := centerOf(cells[0])
		return Cap{lat: lat, lng: lng, angleRadian: angleRadians}
	}

	var sx, sy, sz float64
	pts := make([][3]float64, len(cells))
	for i, c := range cells {
		lat, lng := centerOf(c)
		p := toUnitVector(lat, lng)
		pts[i] = p
		sx += p[0]
		sy += p[1]
		sz += p[2]
	}
	mid := normalize([3]float64{sx, sy, sz})
	midLat, midLng := fromUnitVector(mid)

	maxDist := 0.0
	for _, p := range pts {
		pLat, pLng := fromUnitVector(p)
		d := angularDistance(midLat, midLng, pLat, pLng)
		if d > maxDist {
			maxDist = d
		}
	}
	return Cap{lat: midLat, lng: midLng, angleRadian: angleRadians + maxDist}
}

// centerOf exposes center for use by Cap constructors within the package.
func centerOf(id ID) (lat, lng float64) { return center(id) }

// MayIntersect reports whether cell could fall within the cap, accounting
// for cell's own angular extent so that coarser ancestor cells are never
// incorrectly excluded during a hierarchical descent.
func (c Cap) MayIntersect(cell ID) bool {
	lat, lng := center(cell)
	d := angularDistance(c.lat, c.lng, lat, lng)
	return d <= c.angleRadian+angularRadius(cell)
}

func toUnitVector(lat, lng float64) [3]float64 {
	phi := lat * math.Pi / 180
	lam := lng * math.Pi / 180
	return [3]float64{
		math.Cos(phi) * math.Cos(lam),
		math.Cos(phi) * math.Sin(lam),
		math.Sin(phi),
	}
}

func fromUnitVector(v [3]float64) (lat, lng float64) {
	lat = math.Asin(clamp(v[2], -1, 1)) * 180 / math.Pi
	lng = math.Atan2(v[1], v[0]) * 180 / math.Pi
	return lat, lng
}

func normalize(v [3]float64) [3]float64 {
	n := math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
	if n == 0 {
		return v
	}
	return [3]float64{v[0] / n, v[1] / n, v[2] / n}
}

// Level reports the indexing level a cell ID was built at.
func Level(id ID) int { return levelOf(id) }

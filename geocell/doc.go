// Package geocell provides a hierarchical, S2-flavored geospatial cell index:
// lat/lng <-> 64-bit cell IDs, great-circle distance between cells, and a
// spherical cap region usable for "does this cell lie within radius r"
// pruning during a tree descent.
//
// What
//
//   - Encode(lat, lng) maps a coordinate onto a Hilbert-curve cell ID.
//   - Distance(a, b) returns the great-circle distance between two cells'
//     centers, in meters.
//   - NewCap / NewCapForCells build a bounded spherical region; Cap.MayIntersect
//     reports whether a given cell could fall inside that region.
//   - Ancestors(cell) returns the chain of coarser cells covering a leaf cell
//     at the fixed indexing levels {0, 6, 8, 12, 18, 24, 30}.
//
// Why
//
//   - spatialtree needs a cheap, deterministic containment test to prune a
//     cell hierarchy during nearest-node search without scanning every node.
//   - Index levels are coarse-to-fine; level 0 is the common parent below the
//     synthetic super-root ID 0, mirroring the level set genet's Python
//     original used via s2sphere (see original_source/genet/utils/spatial.py).
//
// Implementation
//
// Cell IDs are built on top of gonum.org/v1/gonum/spatial/curve's Hilbert2D
// space-filling curve rather than a bespoke quadtree: (lat, lng) is quantized
// onto a 2^30 x 2^30 grid, run through the curve to get a locality-preserving
// 60-bit index, then an S2-style trailing "level marker" bit is folded in so
// that truncating low bits yields exact ancestors at the fixed levels.
package geocell

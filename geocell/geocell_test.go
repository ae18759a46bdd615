package geocell_test

import (
	"testing"

	"github.com/geomesh/snaproute/geocell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDeterministic(t *testing.T) {
	a := geocell.Encode(51.5074, -0.1278)
	b := geocell.Encode(51.5074, -0.1278)
	assert.Equal(t, a, b)
}

func TestDistanceZeroForSameCell(t *testing.T) {
	id := geocell.Encode(49.766830, -7.557148)
	assert.Equal(t, 0.0, geocell.Distance(id, id))
}

func TestDistanceSymmetric(t *testing.T) {
	a := geocell.Encode(51.5074, -0.1278)
	b := geocell.Encode(48.8566, 2.3522)
	require.InDelta(t, geocell.Distance(a, b), geocell.Distance(b, a), 1e-6)
}

func TestDistanceApproximatesKnownCities(t *testing.T) {
	london := geocell.Encode(51.5074, -0.1278)
	paris := geocell.Encode(48.8566, 2.3522)
	d := geocell.Distance(london, paris)
	// True great-circle distance is ~343 km; allow generous quantization slack.
	assert.InDelta(t, 343000, d, 10000)
}

func TestAncestorsOrderedCoarseToFine(t *testing.T) {
	id := geocell.Encode(10, 10)
	anc := geocell.Ancestors(id)
	require.Len(t, anc, len(geocell.IndexLevels))
	for i, lvl := range geocell.IndexLevels {
		assert.Equal(t, lvl, geocell.Level(anc[i]))
	}
	assert.Equal(t, id, anc[len(anc)-1])
}

func TestAncestorsShareCoarsePrefixForNearbyPoints(t *testing.T) {
	a := geocell.Ancestors(geocell.Encode(10.00001, 10.00001))
	b := geocell.Ancestors(geocell.Encode(10.00002, 10.00002))
	assert.Equal(t, a[0], b[0], "nearby points should share the same level-0 ancestor")
}

func TestCapMayIntersectContainsCenter(t *testing.T) {
	center := geocell.Encode(0, 0)
	capRegion := geocell.NewCap(center, 1000/geocell.EarthRadiusMeters)
	assert.True(t, capRegion.MayIntersect(center))
}

func TestCapMayIntersectExcludesFarCell(t *testing.T) {
	center := geocell.Encode(0, 0)
	far := geocell.Encode(45, 45)
	capRegion := geocell.NewCap(center, 1000/geocell.EarthRadiusMeters)
	assert.False(t, capRegion.MayIntersect(far))
}

func TestCapMayIntersectIncludesCoarseAncestorOfNearbyLeaf(t *testing.T) {
	center := geocell.Encode(0, 0)
	near := geocell.Encode(0.0001, 0.0001)
	capRegion := geocell.NewCap(center, 200/geocell.EarthRadiusMeters)
	ancestors := geocell.Ancestors(near)
	// the coarsest ancestor (largest angularRadius) must never be excluded
	// if any point it covers could intersect the cap.
	assert.True(t, capRegion.MayIntersect(ancestors[0]))
}

func TestNewCapForCellsCoversAllSeeds(t *testing.T) {
	cells := []geocell.ID{
		geocell.Encode(1, 1),
		geocell.Encode(1, 2),
		geocell.Encode(2, 1),
	}
	capRegion := geocell.NewCapForCells(cells, 0)
	for _, c := range cells {
		assert.True(t, capRegion.MayIntersect(c))
	}
}

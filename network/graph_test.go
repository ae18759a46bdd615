package network_test

import (
	"testing"

	"github.com/geomesh/snaproute/geocell"
	"github.com/geomesh/snaproute/network"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

func buildGrid(t *testing.T) *network.Graph {
	t.Helper()
	g := network.NewGraph()
	for i := 1; i <= 9; i++ {
		id := nodeID(i)
		require.NoError(t, g.AddNode(network.Node{
			ID:   id,
			Cell: geocell.Encode(float64(i), float64(i)),
			Pos:  r2.Vec{X: float64(i), Y: float64(i)},
		}))
	}
	return g
}

func nodeID(i int) string {
	return "node_" + string(rune('0'+i))
}

func TestAddLinkRejectsUnknownEndpoint(t *testing.T) {
	g := network.NewGraph()
	require.NoError(t, g.AddNode(network.Node{ID: "a"}))
	err := g.AddLink(network.Link{ID: "l1", From: "a", To: "b", Modes: network.NewModeSet("bus")})
	assert.ErrorIs(t, err, network.ErrNodeNotFound)
}

func TestAddLinkRejectsNegativeLength(t *testing.T) {
	g := network.NewGraph()
	require.NoError(t, g.AddNode(network.Node{ID: "a"}))
	require.NoError(t, g.AddNode(network.Node{ID: "b"}))
	err := g.AddLink(network.Link{ID: "l1", From: "a", To: "b", Length: -1, Modes: network.NewModeSet("bus")})
	assert.ErrorIs(t, err, network.ErrNegativeLength)
}

func TestParallelLinksPermitted(t *testing.T) {
	g := network.NewGraph()
	require.NoError(t, g.AddNode(network.Node{ID: "a"}))
	require.NoError(t, g.AddNode(network.Node{ID: "b"}))
	require.NoError(t, g.AddLink(network.Link{ID: "l1", From: "a", To: "b", Length: 5, Modes: network.NewModeSet("bus")}))
	require.NoError(t, g.AddLink(network.Link{ID: "l2", From: "a", To: "b", Length: 3, Modes: network.NewModeSet("car")}))
	bundle := g.Bundle("a", "b")
	require.Len(t, bundle, 2)
	assert.Equal(t, "l1", bundle[0].ID)
	assert.Equal(t, "l2", bundle[1].ID)
}

func TestModalSubgraphFiltersLinks(t *testing.T) {
	g := network.NewGraph()
	require.NoError(t, g.AddNode(network.Node{ID: "a"}))
	require.NoError(t, g.AddNode(network.Node{ID: "b"}))
	require.NoError(t, g.AddLink(network.Link{ID: "bus1", From: "a", To: "b", Length: 1, Modes: network.NewModeSet("bus")}))
	require.NoError(t, g.AddLink(network.Link{ID: "rail1", From: "a", To: "b", Length: 1, Modes: network.NewModeSet("rail")}))

	sub := g.ModalSubgraph(network.NewModeSet("bus", "car"))
	require.Equal(t, 2, sub.NodeCount())
	require.Len(t, sub.Links(), 1)
	assert.Equal(t, "bus1", sub.Links()[0].ID)
}

func TestDijkstraShortestPath(t *testing.T) {
	g := network.NewGraph()
	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, g.AddNode(network.Node{ID: id}))
	}
	require.NoError(t, g.AddLink(network.Link{ID: "l1", From: "a", To: "b", Length: 4, Modes: network.NewModeSet("bus")}))
	require.NoError(t, g.AddLink(network.Link{ID: "l2", From: "b", To: "c", Length: 6, Modes: network.NewModeSet("bus")}))
	require.NoError(t, g.AddLink(network.Link{ID: "l3", From: "a", To: "c", Length: 20, Modes: network.NewModeSet("bus")}))

	path, err := network.ShortestPath(g, "a", "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, path)

	length, err := network.ShortestPathLength(g, "a", "c")
	require.NoError(t, err)
	assert.Equal(t, 10.0, length)
}

func TestDijkstraNoPath(t *testing.T) {
	g := network.NewGraph()
	require.NoError(t, g.AddNode(network.Node{ID: "a"}))
	require.NoError(t, g.AddNode(network.Node{ID: "isolated"}))
	_, err := network.ShortestPathLength(g, "a", "isolated")
	assert.ErrorIs(t, err, network.ErrNoPath)
}

func TestSelectLinkForModePrefersShortestThenLowestID(t *testing.T) {
	bundle := []*network.Link{
		{ID: "l1", Length: 5, Modes: network.NewModeSet("bus")},
		{ID: "l4", Length: 3, Modes: network.NewModeSet("bus")},
		{ID: "l2", Length: 3, Modes: network.NewModeSet("bus", "car")},
		{ID: "l3", Length: 3, Modes: network.NewModeSet("car")},
	}
	best, err := network.SelectLinkForMode(bundle, "bus")
	require.NoError(t, err)
	assert.Equal(t, "l2", best.ID)
}

func TestSelectLinkForModeNoMatch(t *testing.T) {
	bundle := []*network.Link{{ID: "l1", Length: 1, Modes: network.NewModeSet("car")}}
	_, err := network.SelectLinkForMode(bundle, "bus")
	assert.ErrorIs(t, err, network.ErrNoLinkForMode)
}

var _ = buildGrid

package router_test

import (
	"testing"

	"github.com/geomesh/snaproute/geocell"
	"github.com/geomesh/snaproute/network"
	"github.com/geomesh/snaproute/router"
	"github.com/geomesh/snaproute/transitsched"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r2"
)

// busLine builds a 2-node network with a single bus link, node_1 exactly at
// stop_1's location and node_2 exactly at stop_2's location (E1-flavored:
// minimal fixture, solver has exactly one candidate per stop so the choice
// is forced rather than contested).
func busLine(t *testing.T) *network.Graph {
	t.Helper()
	g := network.NewGraph()
	require.NoError(t, g.AddNode(network.Node{ID: "node_1", Cell: geocell.Encode(1, 2.5)}))
	require.NoError(t, g.AddNode(network.Node{ID: "node_2", Cell: geocell.Encode(2, 2.5)}))
	require.NoError(t, g.AddLink(network.Link{ID: "link_1", From: "node_1", To: "node_2", Length: 100, Modes: network.NewModeSet("bus")}))
	return g
}

func TestFindRouteForRouteSingleEdge(t *testing.T) {
	g := busLine(t)
	s1, err := transitsched.NewStop("stop_1", geocell.Encode(1, 2.5), r2.Vec{})
	require.NoError(t, err)
	s2, err := transitsched.NewStop("stop_2", geocell.Encode(2, 2.5), r2.Vec{})
	require.NoError(t, err)
	route, err := transitsched.NewRoute("route_1", "bus", []*transitsched.Stop{s1, s2})
	require.NoError(t, err)

	err = router.FindRouteForRoute(g, route, router.WithSnappingDistance(30))
	require.NoError(t, err)

	assert.Equal(t, []string{"link_1"}, route.NetworkRoute)
	assert.Equal(t, "link_1", s1.LinkRefID)
	assert.Equal(t, "link_1", s2.LinkRefID)
}

func TestFindRouteForRouteSingleStopIsVacuousSuccess(t *testing.T) {
	g := busLine(t)
	s1, err := transitsched.NewStop("stop_1", geocell.Encode(1, 2.5), r2.Vec{})
	require.NoError(t, err)
	route, err := transitsched.NewRoute("route_1", "bus", []*transitsched.Stop{s1})
	require.NoError(t, err)

	err = router.FindRouteForRoute(g, route, router.WithSnappingDistance(30))
	require.NoError(t, err)
	assert.Empty(t, route.NetworkRoute)
	assert.Equal(t, "", s1.LinkRefID)
}

func TestFindRouteForRouteEmptyCandidatePoolPropagates(t *testing.T) {
	g := network.NewGraph()
	require.NoError(t, g.AddNode(network.Node{ID: "node_1", Cell: geocell.Encode(0, 0)}))

	s1, err := transitsched.NewStop("stop_1", geocell.Encode(80, 80), r2.Vec{})
	require.NoError(t, err)
	s2, err := transitsched.NewStop("stop_2", geocell.Encode(-80, -80), r2.Vec{})
	require.NoError(t, err)
	route, err := transitsched.NewRoute("route_1", "bus", []*transitsched.Stop{s1, s2})
	require.NoError(t, err)

	err = router.FindRouteForRoute(g, route, router.WithSnappingDistance(1))
	assert.Error(t, err)
}

func TestFindRoutesForServiceSharedStopReconciliation(t *testing.T) {
	g := network.NewGraph()
	for i, id := range []string{"node_1", "node_2", "node_3"} {
		require.NoError(t, g.AddNode(network.Node{ID: id, Cell: geocell.Encode(float64(i), 0)}))
	}
	require.NoError(t, g.AddLink(network.Link{ID: "link_a", From: "node_1", To: "node_2", Length: 10, Modes: network.NewModeSet("bus")}))
	require.NoError(t, g.AddLink(network.Link{ID: "link_b", From: "node_2", To: "node_3", Length: 10, Modes: network.NewModeSet("bus")}))

	s1, _ := transitsched.NewStop("stop_1", geocell.Encode(0, 0), r2.Vec{})
	shared, _ := transitsched.NewStop("stop_2", geocell.Encode(1, 0), r2.Vec{})
	s3, _ := transitsched.NewStop("stop_3", geocell.Encode(2, 0), r2.Vec{})

	route1, err := transitsched.NewRoute("route_1", "bus", []*transitsched.Stop{s1, shared})
	require.NoError(t, err)
	route2, err := transitsched.NewRoute("route_2", "bus", []*transitsched.Stop{shared, s3})
	require.NoError(t, err)

	svc := &transitsched.Service{ID: "svc_1", Routes: []*transitsched.Route{route1, route2}}
	err = router.FindRoutesForService(g, svc, router.WithSnappingDistance(30))
	require.NoError(t, err)

	assert.Equal(t, []string{"link_a"}, route1.NetworkRoute)
	assert.Equal(t, []string{"link_b"}, route2.NetworkRoute)
	assert.Contains(t, []string{"link_a", "link_b"}, shared.LinkRefID)
}

func TestRouteScheduleSkipsEmptyModalSubgraphButRoutesOthers(t *testing.T) {
	g := busLine(t)
	require.NoError(t, g.AddLink(network.Link{ID: "link_rail_never", From: "node_1", To: "node_2", Length: 1, Modes: network.NewModeSet("rail")}))
	g2 := network.NewGraph()
	require.NoError(t, g2.AddNode(network.Node{ID: "node_1", Cell: geocell.Encode(1, 2.5)}))
	require.NoError(t, g2.AddNode(network.Node{ID: "node_2", Cell: geocell.Encode(2, 2.5)}))
	require.NoError(t, g2.AddLink(network.Link{ID: "link_1", From: "node_1", To: "node_2", Length: 100, Modes: network.NewModeSet("bus")}))

	s1, _ := transitsched.NewStop("stop_1", geocell.Encode(1, 2.5), r2.Vec{})
	s2, _ := transitsched.NewStop("stop_2", geocell.Encode(2, 2.5), r2.Vec{})
	busRoute, err := transitsched.NewRoute("bus_route", "bus", []*transitsched.Stop{s1, s2})
	require.NoError(t, err)

	rs1, _ := transitsched.NewStop("rstop_1", geocell.Encode(1, 2.5), r2.Vec{})
	rs2, _ := transitsched.NewStop("rstop_2", geocell.Encode(2, 2.5), r2.Vec{})
	railRoute, err := transitsched.NewRoute("rail_route", "rail", []*transitsched.Stop{rs1, rs2})
	require.NoError(t, err)

	sched := transitsched.NewSchedule()
	sched.AddService(&transitsched.Service{ID: "svc_bus", Routes: []*transitsched.Route{busRoute}})
	sched.AddService(&transitsched.Service{ID: "svc_rail", Routes: []*transitsched.Route{railRoute}})

	err = router.RouteSchedule(sched, g2, router.WithSnappingDistance(30))
	require.NoError(t, err)

	assert.Equal(t, []string{"link_1"}, busRoute.NetworkRoute)
	assert.Empty(t, railRoute.NetworkRoute, "rail family has no rail-moded links in g2, must stay unrouted")
}

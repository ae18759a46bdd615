package router

import "github.com/geomesh/snaproute/network"

// modeFamily is one of C7's fixed routing-mode partitions.
type modeFamily struct {
	name  string
	modes network.ModeSet
}

// modeFamilies is the fixed partitioning of spec.md §4.7. "cable car" is
// represented as the single token "cable_car".
var modeFamilies = []modeFamily{
	{name: "drive", modes: network.NewModeSet("bus", "car")},
	{name: "rail", modes: network.NewModeSet("rail", "tram", "subway", "funicular")},
	{name: "ferry", modes: network.NewModeSet("ferry")},
	{name: "cable", modes: network.NewModeSet("gondola", "cable_car")},
}

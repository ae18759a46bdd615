package network

import (
	"sort"
	"sync"

	"github.com/geomesh/snaproute/geocell"
	"gonum.org/v1/gonum/spatial/r2"
)

// Node is a stable network vertex: a junction, a stop-less waypoint, or
// anywhere a Link can begin or end. Immutable after ingest.
type Node struct {
	ID   string
	Cell geocell.ID
	Pos  r2.Vec
}

// Link is a directed edge between two Nodes. Parallel links between the
// same endpoints are permitted and distinguished only by ID.
type Link struct {
	ID        string
	From, To  string
	Length    float64
	Modes     ModeSet
	Freespeed *float64
}

// Graph is a directed multigraph over Nodes and Links. Distinct RWMutex
// guards for nodes vs. links+adjacency minimize contention, mirroring the
// teacher's core.Graph.
type Graph struct {
	muNode sync.RWMutex
	muLink sync.RWMutex

	nodes map[string]*Node
	links map[string]*Link

	// adjacency[from][to][linkID] = struct{}{}
	adjacency map[string]map[string]map[string]struct{}
}

// NewGraph constructs an empty network graph.
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[string]*Node),
		links:     make(map[string]*Link),
		adjacency: make(map[string]map[string]map[string]struct{}),
	}
}

// AddNode registers a new Node. Returns ErrEmptyNodeID or ErrDuplicateNode.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}
	g.muNode.Lock()
	defer g.muNode.Unlock()
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNode
	}
	cp := n
	g.nodes[n.ID] = &cp

	g.muLink.Lock()
	g.ensureAdjID(n.ID)
	g.muLink.Unlock()

	return nil
}

// AddLink registers a new Link. Returns ErrEmptyLinkID, ErrDuplicateLink,
// ErrNodeNotFound (unknown endpoint), ErrNegativeLength, ErrEmptyModeSet, or
// ErrBadFreespeed.
func (g *Graph) AddLink(l Link) error {
	if l.ID == "" {
		return ErrEmptyLinkID
	}
	if l.Length < 0 {
		return ErrNegativeLength
	}
	if len(l.Modes) == 0 {
		return ErrEmptyModeSet
	}
	if l.Freespeed != nil && *l.Freespeed <= 0 {
		return ErrBadFreespeed
	}
	if !g.HasNode(l.From) || !g.HasNode(l.To) {
		return ErrNodeNotFound
	}

	g.muLink.Lock()
	defer g.muLink.Unlock()
	if _, exists := g.links[l.ID]; exists {
		return ErrDuplicateLink
	}
	cp := l
	g.links[l.ID] = &cp
	g.ensureAdjMap(l.From, l.To)
	g.adjacency[l.From][l.To][l.ID] = struct{}{}

	return nil
}

// HasNode reports whether id is a registered node.
func (g *Graph) HasNode(id string) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]
	return ok
}

// Node returns the node for id, or ErrNodeNotFound.
func (g *Graph) Node(id string) (*Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return n, nil
}

// Link returns the link for id, or ErrLinkNotFound.
func (g *Graph) Link(id string) (*Link, error) {
	g.muLink.RLock()
	defer g.muLink.RUnlock()
	l, ok := g.links[id]
	if !ok {
		return nil, ErrLinkNotFound
	}
	return l, nil
}

// Nodes returns all node IDs in sorted order.
func (g *Graph) Nodes() []string {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	out := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Links returns all links sorted by ID.
func (g *Graph) Links() []*Link {
	g.muLink.RLock()
	defer g.muLink.RUnlock()
	out := make([]*Link, 0, len(g.links))
	for _, l := range g.links {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Neighbors returns the links outgoing from id, sorted by ID.
func (g *Graph) Neighbors(id string) []*Link {
	g.muLink.RLock()
	defer g.muLink.RUnlock()
	var out []*Link
	for _, linkIDs := range g.adjacency[id] {
		for lid := range linkIDs {
			out = append(out, g.links[lid])
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Bundle returns the parallel links from u directly to v, sorted by ID.
func (g *Graph) Bundle(u, v string) []*Link {
	g.muLink.RLock()
	defer g.muLink.RUnlock()
	ids := g.adjacency[u][v]
	out := make([]*Link, 0, len(ids))
	for lid := range ids {
		out = append(out, g.links[lid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// NodeCount returns the number of registered nodes.
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	return len(g.nodes)
}

// LinkCount returns the number of registered links.
func (g *Graph) LinkCount() int {
	g.muLink.RLock()
	defer g.muLink.RUnlock()
	return len(g.links)
}

func (g *Graph) ensureAdjID(id string) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[string]map[string]struct{})
	}
}

func (g *Graph) ensureAdjMap(from, to string) {
	g.ensureAdjID(from)
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// ModalSubgraph returns a new Graph containing every node and only the
// links whose Modes intersect the given ModeSet (C3). Both endpoints of a
// retained link are always present, so orphaned nodes with no surviving
// links remain isolated vertices rather than disappearing.
func (g *Graph) ModalSubgraph(modes ModeSet) *Graph {
	out := NewGraph()
	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		_ = out.AddNode(*n)
	}
	for _, l := range g.Links() {
		if l.Modes.Intersects(modes) {
			_ = out.AddLink(*l)
		}
	}
	return out
}

package network

import (
	"container/heap"
	"math"
)

// Dijkstra computes shortest distances, by Link.Length, from source to
// every reachable node. Returns ErrNodeNotFound if source is unregistered.
// Adapted from the teacher's dijkstra package: a lazy-decrease-key min-heap
// over (node, distance) pairs, generalized from int64 to float64 lengths
// and from core.Graph to network.Graph.
func Dijkstra(g *Graph, source string) (dist map[string]float64, prev map[string]string, err error) {
	if !g.HasNode(source) {
		return nil, nil, ErrNodeNotFound
	}

	nodes := g.Nodes()
	dist = make(map[string]float64, len(nodes))
	prev = make(map[string]string, len(nodes))
	visited := make(map[string]bool, len(nodes))
	for _, id := range nodes {
		dist[id] = math.Inf(1)
	}
	dist[source] = 0

	pq := make(nodePQ, 0, len(nodes))
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist
		if visited[u] {
			continue
		}
		visited[u] = true

		for _, l := range g.Neighbors(u) {
			v := l.To
			newDist := d + l.Length
			if newDist >= dist[v] {
				continue
			}
			dist[v] = newDist
			prev[v] = u
			heap.Push(&pq, &nodeItem{id: v, dist: newDist})
		}
	}

	return dist, prev, nil
}

// ShortestPathLength returns the shortest Length-weighted distance from
// source to target, or ErrNoPath if target is unreachable.
func ShortestPathLength(g *Graph, source, target string) (float64, error) {
	dist, _, err := Dijkstra(g, source)
	if err != nil {
		return 0, err
	}
	d, ok := dist[target]
	if !ok || math.IsInf(d, 1) {
		return 0, ErrNoPath
	}
	return d, nil
}

// ShortestPath returns the ordered node sequence (including source and
// target) of the shortest Length-weighted path, or ErrNoPath.
func ShortestPath(g *Graph, source, target string) ([]string, error) {
	if source == target {
		if !g.HasNode(source) {
			return nil, ErrNodeNotFound
		}
		return []string{source}, nil
	}
	dist, prev, err := Dijkstra(g, source)
	if err != nil {
		return nil, err
	}
	if d, ok := dist[target]; !ok || math.IsInf(d, 1) {
		return nil, ErrNoPath
	}
	var path []string
	for v := target; v != ""; {
		path = append([]string{v}, path...)
		if v == source {
			break
		}
		v = prev[v]
	}
	return path, nil
}

// nodeItem pairs a node with its tentative distance from the source.
type nodeItem struct {
	id   string
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by ascending distance, using
// the same lazy-decrease-key pattern as dijkstra.nodePQ: stale entries are
// pushed rather than updated in place, and ignored on pop via `visited`.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

package mwis

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/geomesh/snaproute/problemgraph"
)

// BranchAndBound is the default Solver: deterministic depth-first exact
// search over "one candidate per stop," pruned by an admissible upper
// bound, with a soft deadline check every 4096 node expansions -- the same
// shape as the teacher's tsp.bbEngine, generalized from Hamiltonian-cycle
// search to independent-set selection.
type BranchAndBound struct{}

// bbState holds one search's working data; a fresh state is built per Solve
// call so BranchAndBound itself stays stateless and reusable.
type bbState struct {
	stops     []string            // sorted stop IDs, the branching order
	pools     map[string][]string // stopID -> candidate keys, sorted ascending
	weight    map[string]float64  // candidate key -> problemgraph weight
	suffixSum []float64           // suffixSum[i] = sum of max pool weight over stops[i:]
	g         *problemgraph.Graph

	chosen  map[string]string // stopID -> candidate key, current partial path
	best    map[string]string // best complete assignment found so far
	bestW   float64
	found   bool

	deadline    time.Time
	useDeadline bool
	steps       int

	ctx context.Context
}

func (e *bbState) deadlineExceeded() bool {
	e.steps++
	if e.ctx.Err() != nil {
		return true
	}
	if !e.useDeadline || (e.steps&4095) != 0 {
		return false
	}
	return time.Now().After(e.deadline)
}

func (e *bbState) dfs(depth int, weightSoFar float64) bool {
	if e.deadlineExceeded() {
		return true
	}
	if bound := weightSoFar + e.suffixSum[depth]; bound <= e.bestW && e.found {
		return false
	}
	if depth == len(e.stops) {
		if !e.found || weightSoFar > e.bestW {
			e.found = true
			e.bestW = weightSoFar
			for k, v := range e.chosen {
				e.best[k] = v
			}
		}
		return false
	}

	stop := e.stops[depth]
	for _, key := range e.pools[stop] {
		conflict := false
		for _, chosenKey := range e.chosen {
			if e.g.HasEdge(key, chosenKey) {
				conflict = true
				break
			}
		}
		if conflict {
			continue
		}
		e.chosen[stop] = key
		if e.dfs(depth+1, weightSoFar+e.weight[key]) {
			delete(e.chosen, stop)
			return true
		}
		delete(e.chosen, stop)
	}
	return false
}

// Solve implements Solver.
func (bb BranchAndBound) Solve(ctx context.Context, g *problemgraph.Graph, timeout time.Duration) (map[string]string, error) {
	pools := make(map[string][]string)
	weight := make(map[string]float64)
	for _, key := range g.Vertices() {
		v := g.Vertex(key)
		pools[v.StopID] = append(pools[v.StopID], key)
		weight[key] = g.Weight(key)
	}

	for stopID, pool := range pools {
		sort.Strings(pool)
		pools[stopID] = pool
	}

	// g.StopIDs is authoritative when set: a stop purged down to zero
	// candidates (I5) still needs to be recognized as infeasible rather
	// than silently vanishing because it has no vertices left to iterate.
	stops := g.StopIDs
	if len(stops) == 0 {
		for stopID := range pools {
			stops = append(stops, stopID)
		}
	}
	sort.Strings(stops)

	for _, stopID := range stops {
		if len(pools[stopID]) == 0 {
			return nil, ErrInfeasible
		}
	}

	maxWeight := make(map[string]float64, len(stops))
	for _, stopID := range stops {
		m := weight[pools[stopID][0]]
		for _, key := range pools[stopID] {
			if weight[key] > m {
				m = weight[key]
			}
		}
		maxWeight[stopID] = m
	}

	suffixSum := make([]float64, len(stops)+1)
	for i := len(stops) - 1; i >= 0; i-- {
		suffixSum[i] = suffixSum[i+1] + maxWeight[stops[i]]
	}

	e := &bbState{
		stops:     stops,
		pools:     pools,
		weight:    weight,
		suffixSum: suffixSum,
		g:         g,
		chosen:    make(map[string]string, len(stops)),
		best:      make(map[string]string, len(stops)),
		ctx:       ctx,
	}
	if timeout > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(timeout)
	}

	timedOut := e.dfs(0, 0)
	if timedOut {
		return nil, ErrTimeout
	}
	if !e.found {
		return nil, ErrInfeasible
	}

	out := make(map[string]string, len(e.best))
	for stopID, key := range e.best {
		out[stopID] = strings.TrimSuffix(key, "-"+stopID)
	}
	return out, nil
}

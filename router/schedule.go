package router

import (
	"sort"

	"github.com/geomesh/snaproute/network"
	"github.com/geomesh/snaproute/transitsched"
)

// RouteSchedule is C7: it partitions net by the fixed mode families, and
// for each family whose intersection with sched's modes is non-empty,
// extracts the modal subgraph and routes every intersecting Service.
// Per-service failures are logged and skipped; RouteSchedule itself never
// returns an error -- completion is observed via sched.IsValid().
func RouteSchedule(sched *transitsched.Schedule, net *network.Graph, opts ...Option) error {
	options := buildOptions(opts)
	uniqueModes := sched.UniqueModes()

	for _, fam := range modeFamilies {
		if !fam.modes.Intersects(uniqueModes) {
			continue
		}
		options.logger.Info("Routing for subgraph: %s", fam.name)
		sub := net.ModalSubgraph(fam.modes)
		if sub.LinkCount() == 0 {
			options.logger.Warn("Modal subgraph for %s is empty", fam.name)
			continue
		}

		serviceIDs := make([]string, 0, len(sched.Services))
		for id := range sched.Services {
			serviceIDs = append(serviceIDs, id)
		}
		sort.Strings(serviceIDs)

		for _, id := range serviceIDs {
			svc := sched.Services[id]
			if !svc.Modes().Intersects(fam.modes) {
				continue
			}
			if err := routeElement(sub, transitsched.FromService(svc), options); err != nil {
				options.logger.Warn("Routing failed for %s: %s", "service", svc.ID)
				continue
			}
		}
	}

	return nil
}

package mobility

import "cmp"

// IncidentsByTimeDesc orders incidents with the most recent first.
func IncidentsByTimeDesc(a, b *Incident) int {
	return b.OccurredAt.Compare(a.OccurredAt)
}

// RoutesByDistanceAsc orders routes with the shortest distance first.
func RoutesByDistanceAsc(a, b *Route) int {
	return cmp.Compare(a.Distance, b.Distance)
}

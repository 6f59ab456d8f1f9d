package cli

import (
	"time"

	"github.com/roach88/mobility/internal/mobility"
	"github.com/roach88/mobility/internal/seqlist"
)

// PersonView is the JSON form of a person: the persisted record plus its kind.
type PersonView struct {
	Kind mobility.PersonKind `json:"kind"`
	mobility.PersonRecord
}

// SortResult is the JSON payload of the sort commands.
type SortResult[T any] struct {
	Swaps   int `json:"swaps"`
	Records []T `json:"records"`
}

func routeRecords(routes *seqlist.List[*mobility.Route]) []mobility.RouteRecord {
	out := make([]mobility.RouteRecord, 0, routes.Len())
	for r := range routes.All() {
		out = append(out, r.Record())
	}
	return out
}

func incidentRecords(incidents *seqlist.List[*mobility.Incident]) []mobility.IncidentRecord {
	out := make([]mobility.IncidentRecord, 0, incidents.Len())
	for inc := range incidents.All() {
		out = append(out, inc.Record())
	}
	return out
}

func personView(p *mobility.Person) PersonView {
	return PersonView{Kind: p.Kind, PersonRecord: p.Record()}
}

func personViews(people []*mobility.Person) []PersonView {
	out := make([]PersonView, 0, len(people))
	for _, p := range people {
		out = append(out, personView(p))
	}
	return out
}

// parseTime accepts the registry's "2006-01-02 15:04:05" layout in local
// time or an RFC3339 timestamp.
func parseTime(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(mobility.TimeLayout, s, time.Local); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

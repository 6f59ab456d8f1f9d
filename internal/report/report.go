// Package report renders registry contents as human-readable text.
//
// Every function only reads from the registry; none of them sorts or
// otherwise mutates a sequence. Callers that want a sorted listing sort first.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kr/text"

	"github.com/roach88/mobility/internal/mobility"
	"github.com/roach88/mobility/internal/seqlist"
)

const none = "(none)"

// descriptionWidth is the column at which incident descriptions wrap.
const descriptionWidth = 60

// Full writes the routes, incidents and people of the registry.
func Full(w io.Writer, reg *mobility.Registry) error {
	var b strings.Builder
	writeRoutes(&b, "Routes report:", reg.Routes())
	b.WriteString("\n")
	writeIncidents(&b, "Incidents report:", reg.Incidents())
	b.WriteString("\n")
	writePeople(&b, "People report:", reg)
	return flush(w, &b)
}

// Routes writes one line per route under title.
func Routes(w io.Writer, title string, routes *seqlist.List[*mobility.Route]) error {
	var b strings.Builder
	writeRoutes(&b, title, routes)
	return flush(w, &b)
}

// Incidents writes one line per incident under title.
func Incidents(w io.Writer, title string, incidents *seqlist.List[*mobility.Incident]) error {
	var b strings.Builder
	writeIncidents(&b, title, incidents)
	return flush(w, &b)
}

// People writes one line per registered person.
func People(w io.Writer, reg *mobility.Registry) error {
	var b strings.Builder
	writePeople(&b, "People:", reg)
	return flush(w, &b)
}

// Drivers writes one line per driver in the given slice.
func Drivers(w io.Writer, drivers []*mobility.Person) error {
	var b strings.Builder
	if len(drivers) == 0 {
		b.WriteString("No drivers found.\n")
		return flush(w, &b)
	}
	for _, d := range drivers {
		fmt.Fprintf(&b, "ID: %s, Name: %s, Vehicle: %s, Status: %s\n",
			d.ID, d.Name, d.Driver.Vehicle, d.Driver.Status)
	}
	return flush(w, &b)
}

// IncidentDetail writes every field of one incident.
func IncidentDetail(w io.Writer, inc *mobility.Incident) error {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s\n", inc.ID)
	fmt.Fprintf(&b, "Type: %s\n", inc.Type)
	fmt.Fprintf(&b, "Location: %s\n", inc.Location)
	fmt.Fprintf(&b, "Date: %s\n", inc.OccurredAt.Format(mobility.TimeLayout))
	fmt.Fprintf(&b, "Description: %s\n", wrapField("Description: ", inc.Description))
	fmt.Fprintf(&b, "Status: %s\n", inc.Status)
	return flush(w, &b)
}

// RouteDetail writes every field of one route under title.
func RouteDetail(w io.Writer, title string, route *mobility.Route) error {
	var b strings.Builder
	b.WriteString(title + "\n")
	fmt.Fprintf(&b, "ID: %s\n", route.ID)
	fmt.Fprintf(&b, "Distance: %s km\n", formatDistance(route.Distance))
	fmt.Fprintf(&b, "Estimated time: %d minutes\n", route.EstimatedTime)
	fmt.Fprintf(&b, "Start: %s\n", route.Start)
	fmt.Fprintf(&b, "End: %s\n", route.End)
	return flush(w, &b)
}

// PersonDetail writes the shared fields and the variant payload of a person.
// For passengers the assigned route is resolved against the registry.
func PersonDetail(w io.Writer, reg *mobility.Registry, p *mobility.Person) error {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %s\n", p.ID)
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	fmt.Fprintf(&b, "Contact: %s\n", p.Contact)
	fmt.Fprintf(&b, "Kind: %s\n", p.Kind)
	switch {
	case p.IsDriver():
		fmt.Fprintf(&b, "Vehicle: %s\n", p.Driver.Vehicle)
		fmt.Fprintf(&b, "Status: %s\n", p.Driver.Status)
	case p.IsPassenger():
		fmt.Fprintf(&b, "Route: %s\n", passengerRoute(reg, p))
	}
	return flush(w, &b)
}

func writeRoutes(b *strings.Builder, title string, routes *seqlist.List[*mobility.Route]) {
	b.WriteString(title + "\n")
	if routes.IsEmpty() {
		b.WriteString(none + "\n")
		return
	}
	for r := range routes.All() {
		fmt.Fprintf(b, "ID: %s | Distance: %s km | Time: %d min | %s -> %s\n",
			r.ID, formatDistance(r.Distance), r.EstimatedTime, r.Start, r.End)
	}
}

func writeIncidents(b *strings.Builder, title string, incidents *seqlist.List[*mobility.Incident]) {
	b.WriteString(title + "\n")
	if incidents.IsEmpty() {
		b.WriteString(none + "\n")
		return
	}
	for inc := range incidents.All() {
		fmt.Fprintf(b, "ID: %s | Type: %s | Date: %s | Status: %s\n",
			inc.ID, inc.Type, inc.OccurredAt.Format(mobility.TimeLayout), inc.Status)
	}
}

func writePeople(b *strings.Builder, title string, reg *mobility.Registry) {
	b.WriteString(title + "\n")
	if reg.People().IsEmpty() {
		b.WriteString(none + "\n")
		return
	}
	for p := range reg.People().All() {
		switch {
		case p.IsDriver():
			fmt.Fprintf(b, "ID: %s | Name: %s | Driver | Vehicle: %s | Status: %s\n",
				p.ID, p.Name, p.Driver.Vehicle, p.Driver.Status)
		case p.IsPassenger():
			fmt.Fprintf(b, "ID: %s | Name: %s | Passenger | Route: %s\n",
				p.ID, p.Name, passengerRoute(reg, p))
		}
	}
}

// passengerRoute describes a passenger's route, flagging ids that no longer
// resolve to a registered route.
func passengerRoute(reg *mobility.Registry, p *mobility.Person) string {
	id := p.Passenger.RouteID
	if id == "" {
		return none
	}
	if _, ok := reg.PassengerRoute(p); !ok {
		return id + " (missing)"
	}
	return id
}

// wrapField wraps long values at descriptionWidth and aligns continuation
// lines under the first character after label.
func wrapField(label, value string) string {
	if len(value) <= descriptionWidth {
		return value
	}
	first, rest, found := strings.Cut(text.Wrap(value, descriptionWidth), "\n")
	if !found {
		return first
	}
	return first + "\n" + text.Indent(rest, strings.Repeat(" ", len(label)))
}

func formatDistance(km float64) string {
	return strconv.FormatFloat(km, 'f', -1, 64)
}

func flush(w io.Writer, b *strings.Builder) error {
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

package snapshot

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/roach88/mobility/internal/mobility"
)

// Query evaluates a JSONPath expression against the JSON document form of
// snap, the same document Save writes. Numbers come back as float64, objects
// as map[string]any and wildcard or filter matches as []any in record order.
//
//	$.routes[?(@.distance < 10)].id
//	$.drivers[*].name
func Query(snap mobility.Snapshot, expr string) (any, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, ErrEmptyQuery
	}

	data, err := marshal(snap)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("query: decode document: %w", err)
	}

	v, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", expr, err)
	}
	return v, nil
}

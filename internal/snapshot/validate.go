package snapshot

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed schema.cue
var schemaSrc string

// schema holds the compiled #Snapshot definition. CUE values from one context
// must not be used concurrently, so validation is serialized.
var schema struct {
	once sync.Once
	mu   sync.Mutex
	ctx  *cue.Context
	def  cue.Value
	err  error
}

func loadSchema() error {
	schema.once.Do(func() {
		schema.ctx = cuecontext.New()
		v := schema.ctx.CompileString(schemaSrc, cue.Filename("schema.cue"))
		if err := v.Err(); err != nil {
			schema.err = fmt.Errorf("compile snapshot schema: %w", err)
			return
		}
		schema.def = v.LookupPath(cue.ParsePath("#Snapshot"))
		if err := schema.def.Err(); err != nil {
			schema.err = fmt.Errorf("lookup #Snapshot: %w", err)
		}
	})
	return schema.err
}

// Validate checks a JSON document against the snapshot schema.
// Syntax errors and schema violations are returned as *FormatError.
func Validate(data []byte) error {
	return validate("", data)
}

func validate(path string, data []byte) error {
	if err := loadSchema(); err != nil {
		return err
	}

	name := path
	if name == "" {
		name = "snapshot.json"
	}
	expr, err := cuejson.Extract(name, data)
	if err != nil {
		return &FormatError{Path: path, Err: fmt.Errorf("parse json: %s", describe(err))}
	}

	schema.mu.Lock()
	defer schema.mu.Unlock()

	doc := schema.ctx.BuildExpr(expr)
	if err := doc.Err(); err != nil {
		return &FormatError{Path: path, Err: fmt.Errorf("build document: %s", describe(err))}
	}

	unified := schema.def.Unify(doc)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return &FormatError{Path: path, Err: fmt.Errorf("schema: %s", describe(err))}
	}
	return nil
}

// describe flattens a CUE error list into a single line.
func describe(err error) string {
	details := strings.TrimSpace(cueerrors.Details(err, nil))
	if details == "" {
		return err.Error()
	}
	return strings.Join(strings.Fields(strings.ReplaceAll(details, "\n", "; ")), " ")
}

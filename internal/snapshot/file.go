// Package snapshot reads and writes mobility snapshots as JSON documents.
//
// Documents are pretty-printed with two-space indentation. Every document is
// checked against an embedded CUE schema before it is decoded, so a record
// with a missing id or a negative distance is rejected as malformed rather
// than reaching the registry.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/roach88/mobility/internal/mobility"
)

// Encode writes snap to w as indented JSON followed by a newline.
func Encode(w io.Writer, snap mobility.Snapshot) error {
	data, err := marshal(snap)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// Decode reads a JSON document from r, validates it and decodes it.
func Decode(r io.Reader) (mobility.Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return mobility.Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}
	return decode("", data)
}

// Save writes snap to path. The document is written to a temporary file in
// the same directory and renamed over path.
func Save(path string, snap mobility.Snapshot) error {
	data, err := marshal(snap)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// Load reads, validates and decodes the snapshot at path.
// Malformed documents return a *FormatError matching ErrMalformed.
func Load(path string) (mobility.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return mobility.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}
	return decode(path, data)
}

func decode(path string, data []byte) (mobility.Snapshot, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return mobility.Snapshot{}, &FormatError{Path: path, Err: errors.New("empty document")}
	}
	if err := validate(path, data); err != nil {
		return mobility.Snapshot{}, err
	}

	var snap mobility.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return mobility.Snapshot{}, &FormatError{Path: path, Err: err}
	}
	return snap, nil
}

func marshal(snap mobility.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return nil, fmt.Errorf("marshal snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

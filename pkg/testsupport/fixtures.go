// Package testsupport holds fixture and golden-file helpers shared by the
// package tests. Goldens are refreshed with UPDATE_GOLDENS=1.
package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formulay/pkg/controller"
	"github.com/goliatone/go-formulay/pkg/model"
	"github.com/goliatone/go-formulay/pkg/schema"
)

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// LoadSchema reads a definition fixture from disk and introspects it.
func LoadSchema(ctx context.Context, path string, options ...schema.Option) (model.Schema, error) {
	if path == "" {
		return model.Schema{}, errors.New("testsupport: schema path is required")
	}
	doc, err := schema.Load(ctx, schema.SourceFromFile(path))
	if err != nil {
		return model.Schema{}, fmt.Errorf("testsupport: load document: %w", err)
	}
	return schema.FromDocument(doc, options...)
}

// MustLoadSchema loads and introspects a definition fixture.
func MustLoadSchema(t *testing.T, path string, options ...schema.Option) model.Schema {
	t.Helper()

	out, err := LoadSchema(context.Background(), path, options...)
	if err != nil {
		t.Fatalf("load schema %s: %v", path, err)
	}
	return out
}

// DumpState renders a controller state as plain values for failure messages.
// Pointer addresses are omitted so dumps are stable across runs.
func DumpState(state controller.State) string {
	return dumper.Sdump(map[string]any{
		"phase":    state.Phase().String(),
		"values":   state.Values.Map(),
		"warnings": state.DisplayRequiredWarnings,
	})
}

// writeGolden writes value as indented JSON when UPDATE_GOLDENS is set.
func writeGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// mustReadGolden reads a golden file and returns its raw bytes.
func mustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// AssertGoldenJSON compares value, marshalled as indented JSON, with the
// golden at path. With UPDATE_GOLDENS set the golden is rewritten instead.
func AssertGoldenJSON(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") != "" {
		writeGolden(t, path, value)
		return
	}
	got, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal value: %v", err)
	}
	want := mustReadGolden(t, path)
	if diff := cmp.Diff(string(bytes.TrimSpace(want)), string(got)); diff != "" {
		t.Fatalf("golden %s mismatch (-want +got):\n%s", path, diff)
	}
}

// Package testutil provides helpers shared by the codec tests.
package testutil

import (
	"testing"

	"github.com/chaisql/binjson/types"
	"github.com/google/go-cmp/cmp"
)

// KV mirrors one object field in the rendered form used for diffs.
type KV struct {
	K string
	V any
}

// RequireValueEqual fails the test if want and got are not structurally
// equal, printing a diff of the two trees.
func RequireValueEqual(t testing.TB, want, got types.Value) {
	t.Helper()

	if !types.IsEqual(want, got) {
		t.Fatalf("values differ (-want +got):\n%s", cmp.Diff(render(want), render(got)))
	}
}

// render converts a value tree to plain Go data so that go-cmp can diff it
// without knowing about the types package.
func render(v types.Value) any {
	if v == nil {
		return nil
	}

	switch v.Type() {
	case types.TypeNull:
		return nil
	case types.TypeBoolean:
		return types.AsBool(v)
	case types.TypeDouble:
		return types.AsFloat64(v)
	case types.TypeText:
		return types.AsString(v)
	case types.TypeArray:
		vals := []any{}
		_ = types.AsArray(v).Iterate(func(_ int, value types.Value) error {
			vals = append(vals, render(value))
			return nil
		})
		return vals
	case types.TypeObject:
		fields := []KV{}
		_ = types.AsObject(v).Iterate(func(field string, value types.Value) error {
			fields = append(fields, KV{K: field, V: render(value)})
			return nil
		})
		return fields
	}

	return v.V()
}

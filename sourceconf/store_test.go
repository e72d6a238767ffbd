package sourceconf

import (
	"reflect"
	"testing"
)

func TestStore_Fetch(t *testing.T) {
	src := New(map[string]any{
		"database": map[string]any{
			"host": "db.example.com",
			"port": 5432,
			"pool": map[string]any{
				"max": 10,
			},
		},
		"debug":   true,
		"timeout": "30", // Stays a string: no coercion in this source
	})

	tests := []struct {
		name     string
		key      string
		expected any
	}{
		{
			name:     "top-level scalar",
			key:      "debug",
			expected: true,
		},
		{
			name:     "nested scalar",
			key:      "database.host",
			expected: "db.example.com",
		},
		{
			name:     "deeply nested scalar",
			key:      "database.pool.max",
			expected: 10,
		},
		{
			name:     "string stays string",
			key:      "timeout",
			expected: "30",
		},
		{
			name:     "missing top-level key",
			key:      "nope",
			expected: nil,
		},
		{
			name:     "missing nested key",
			key:      "database.user",
			expected: nil,
		},
		{
			name:     "path through scalar",
			key:      "debug.nested",
			expected: nil,
		},
		{
			name:     "path past a leaf",
			key:      "database.host.extra",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := src.Fetch(tt.key); got != tt.expected {
				t.Errorf("Fetch(%q) = %v, want %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestStore_FetchSubtree(t *testing.T) {
	tree := map[string]any{
		"database": map[string]any{
			"host": "localhost",
			"port": 5432,
		},
	}
	src := New(tree)

	got := src.Fetch("database")
	if !reflect.DeepEqual(got, tree["database"]) {
		t.Errorf("Fetch(database) = %v, want the whole subtree", got)
	}

	// Empty key addresses the root.
	if got := src.Fetch(""); !reflect.DeepEqual(got, tree) {
		t.Errorf("Fetch(\"\") = %v, want the root tree", got)
	}
}

func TestStore_FetchAnyKeyedNodes(t *testing.T) {
	// YAML decoders produce map[any]any nodes; string keys still resolve.
	src := New(map[string]any{
		"outer": map[any]any{
			"inner": map[any]any{
				"value": 7,
			},
		},
	})

	if got := src.Fetch("outer.inner.value"); got != 7 {
		t.Errorf("Fetch(outer.inner.value) = %v, want 7", got)
	}
}

func TestStore_NilTree(t *testing.T) {
	src := New(nil)
	if got := src.Fetch("anything"); got != nil {
		t.Errorf("Fetch on nil tree = %v, want nil", got)
	}
}

func TestStore_Snapshot(t *testing.T) {
	src := New(map[string]any{
		"app": map[string]any{
			"name": "demo",
			"tags": []any{"a", "b"},
		},
		"port": 8080,
	})

	snap, ok := src.(interface{ Snapshot() map[string]any })
	if !ok {
		t.Fatal("store should implement Snapshot")
	}

	got := snap.Snapshot()
	want := map[string]any{
		"app.name": "demo",
		"app.tags": []any{"a", "b"},
		"port":     8080,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Snapshot() = %v, want %v", got, want)
	}
}

package sourceconf

import (
	"strings"

	"github.com/Azhovan/confkit"
)

type store struct {
	tree map[string]any
}

// New creates a configuration source over a nested tree. The tree is the
// application's merged configuration, built by the host at startup; the
// store treats it as immutable and never writes to it.
func New(tree map[string]any) confkit.Source {
	if tree == nil {
		tree = make(map[string]any)
	}
	return &store{tree: tree}
}

// Fetch resolves a dot-separated path and returns whatever is stored there,
// verbatim. Missing paths and paths descending through a non-mapping yield
// nil. Literal dots in segment names are not escapable. The empty key
// addresses the root tree itself.
func (s *store) Fetch(key string) any {
	if key == "" {
		return s.tree
	}

	var current any = s.tree

	for _, segment := range strings.Split(key, ".") {
		node, ok := asMapping(current)
		if !ok {
			return nil
		}
		current, ok = node[segment]
		if !ok {
			return nil
		}
	}

	return current
}

// Snapshot flattens the tree to dot-separated leaf paths for Dump. Nodes
// under a non-string key are unreachable by Fetch and are skipped the same
// way here.
func (s *store) Snapshot() map[string]any {
	flat := make(map[string]any)
	flatten("", s.tree, flat)
	return flat
}

func flatten(prefix string, value any, result map[string]any) {
	node, ok := asMapping(value)
	if !ok || len(node) == 0 {
		if prefix != "" {
			result[prefix] = value
		}
		return
	}

	for key, val := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		flatten(path, val, result)
	}
}

// asMapping widens a tree node to map[string]any. YAML decoders produce
// map[any]any nodes; those are accepted as long as the keys are strings.
func asMapping(value any) (map[string]any, bool) {
	switch node := value.(type) {
	case map[string]any:
		return node, true
	case map[any]any:
		m := make(map[string]any, len(node))
		for k, v := range node {
			key, ok := k.(string)
			if !ok {
				continue
			}
			m[key] = v
		}
		return m, true
	default:
		return nil, false
	}
}

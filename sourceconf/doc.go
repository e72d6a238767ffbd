// Package sourceconf reads configuration values from an immutable nested
// tree, addressed by dot-separated paths.
//
// Values come back exactly as stored: no coercion, no casting. A path that
// stops at a mapping returns the whole subtree, so collection getters can
// address intermediate nodes.
//
// Example:
//
//	cfg := confkit.NewAccessor(sourceconf.New(map[string]any{
//	    "database": map[string]any{"host": "localhost", "port": 5432},
//	}))
//	port, err := cfg.Int("database.port")
package sourceconf

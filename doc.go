// Package confkit provides strictly-typed access to environment variables
// and hierarchical configuration trees.
//
// Quick Start:
//
//	env := confkit.NewAccessor(sourceenv.New(sourceenv.Options{}))
//	port, err := env.Int("APP_PORT")
//
//	cfg := confkit.NewAccessor(sourceconf.New(tree))
//	host := cfg.StringOr("database.host", "localhost")
//
// An Accessor wraps a Source and exposes 20 getters: {String, Int, Bool,
// Float} in required, Or-default, Optional, Slice, and Map flavors. Kind
// checks are strict: a stored string "8080" is never silently accepted as
// an int, and a single off-kind element invalidates a whole slice or map.
//
// See example_test.go and README.md for detailed usage.
package confkit

// Package sourceenv reads configuration values from process environment
// variables.
//
// Well-known literal tokens are canonicalized before anything else: "true"
// and "(true)" become bool true, "false" and "(false)" become bool false,
// "null" and "(null)" become nil, "empty" and "(empty)" become "". The
// default variant then narrows remaining strings to int or float64 where
// they denote numbers; the string variant instead coerces every scalar to
// its string form, for values that are semantically text but happen to be
// all digits (tokens, secrets).
//
// Example:
//
//	env := confkit.NewAccessor(sourceenv.New(sourceenv.Options{Prefix: "APP_"}))
//	port, err := env.Int("PORT") // reads APP_PORT
package sourceenv

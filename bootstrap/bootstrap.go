// Package bootstrap wires the standard accessor set at the composition
// root: one casting environment accessor, one string-preserving environment
// accessor, and one configuration-tree accessor, published under the stable
// names confkit.NameEnv, confkit.NameEnvString, and confkit.NameConfig.
package bootstrap

import (
	"github.com/Azhovan/confkit"
	"github.com/Azhovan/confkit/sourceconf"
	"github.com/Azhovan/confkit/sourceenv"
)

// New builds a Registry holding the standard accessor trio. The tree is the
// application's merged configuration; envOpts applies to both environment
// variants.
func New(tree map[string]any, envOpts sourceenv.Options) *confkit.Registry {
	registry := confkit.NewRegistry()
	registry.Publish(confkit.NameEnv, confkit.NewAccessor(sourceenv.New(envOpts)))
	registry.Publish(confkit.NameEnvString, confkit.NewAccessor(sourceenv.NewString(envOpts)))
	registry.Publish(confkit.NameConfig, confkit.NewAccessor(sourceconf.New(tree)))
	return registry
}

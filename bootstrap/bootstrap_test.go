package bootstrap

import (
	"os"
	"testing"

	"github.com/Azhovan/confkit"
	"github.com/Azhovan/confkit/sourceenv"
)

func TestNew_PublishesStandardNames(t *testing.T) {
	os.Setenv("BOOT_TEST_PORT", "8080")
	defer os.Unsetenv("BOOT_TEST_PORT")

	tree := map[string]any{
		"app": map[string]any{"name": "demo"},
	}
	reg := New(tree, sourceenv.Options{Prefix: "BOOT_TEST_"})

	env, ok := reg.Accessor(confkit.NameEnv)
	if !ok {
		t.Fatal("registry should publish the env accessor")
	}
	if v, err := env.Int("PORT"); err != nil || v != 8080 {
		t.Errorf("env.Int(PORT) = (%v, %v), want (8080, nil)", v, err)
	}

	envStr, ok := reg.Accessor(confkit.NameEnvString)
	if !ok {
		t.Fatal("registry should publish the env.string accessor")
	}
	if v, err := envStr.String("PORT"); err != nil || v != "8080" {
		t.Errorf("envStr.String(PORT) = (%q, %v), want (8080, nil)", v, err)
	}

	cfg, ok := reg.Accessor(confkit.NameConfig)
	if !ok {
		t.Fatal("registry should publish the config accessor")
	}
	if v, err := cfg.String("app.name"); err != nil || v != "demo" {
		t.Errorf("cfg.String(app.name) = (%q, %v), want (demo, nil)", v, err)
	}
}

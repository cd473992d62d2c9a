package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/conn-castle/nebula-setup/internal/messages"
)

// EnvNoNetwork disables all downloads when set.
const EnvNoNetwork = "NB_NO_NETWORK"

// Env holds tool settings read from the process environment.
type Env struct {
	ConfigPath string `env:"NB_SETUP_CONFIG"`
	NoNetwork  bool   `env:"NB_NO_NETWORK"`
	Plain      bool   `env:"NB_PLAIN"`
	Python     string `env:"NB_PYTHON"`
}

// LoadEnv parses NB_* settings from the environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf(messages.ConfigParseEnvFmt, err)
	}
	return e, nil
}

// Apply overlays environment overrides onto cfg.
func (e Env) Apply(cfg *Config) {
	if e.Python != "" {
		cfg.Python.Executable = e.Python
	}
}

package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/conn-castle/nebula-setup/internal/config"
	"github.com/conn-castle/nebula-setup/internal/download"
	"github.com/conn-castle/nebula-setup/internal/messages"
	"github.com/conn-castle/nebula-setup/internal/premake"
	"github.com/conn-castle/nebula-setup/internal/prompt"
	"github.com/conn-castle/nebula-setup/internal/python"
	"github.com/conn-castle/nebula-setup/internal/root"
	"github.com/conn-castle/nebula-setup/internal/terminal"
	"github.com/conn-castle/nebula-setup/internal/vulkan"
)

var (
	loadEnvFunc       = config.LoadEnv
	isInteractiveFunc = terminal.IsInteractive
)

// app bundles what every command resolves before it runs.
type app struct {
	root       string
	configPath string
	cfg        *config.Config
	env        config.Env
	quiet      bool
	// out receives informational lines. It is io.Discard with --quiet.
	out      io.Writer
	stdin    io.Reader
	stdout   io.Writer
	stderr   io.Writer
	prompter prompt.Prompter
	download download.Options
}

// loadApp resolves the project root, environment, and config for cmd.
func loadApp(cmd *cobra.Command, flags *rootFlags) (*app, error) {
	env, err := loadEnvFunc()
	if err != nil {
		return nil, err
	}
	projectRoot, err := resolveProjectRoot(flags.root)
	if err != nil {
		return nil, err
	}

	configPath, explicit := resolveConfigPath(flags, env, projectRoot)
	cfg, found, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if explicit && !found {
		return nil, fmt.Errorf(messages.RootConfigNotFoundFmt, configPath)
	}
	env.Apply(cfg)

	interactive := isInteractiveFunc()
	a := &app{
		root:       projectRoot,
		configPath: configPath,
		cfg:        cfg,
		env:        env,
		quiet:      flags.quiet,
		out:        cmd.OutOrStdout(),
		stdin:      cmd.InOrStdin(),
		stdout:     cmd.OutOrStdout(),
		stderr:     cmd.ErrOrStderr(),
		prompter:   prompt.New(flags.plain || env.Plain, interactive, cmd.InOrStdin(), cmd.OutOrStdout()),
		download: download.Options{
			Client:    &http.Client{Timeout: cfg.Download.DownloadTimeout()},
			MaxBytes:  cfg.Download.MaxBytes,
			NoNetwork: env.NoNetwork,
		},
	}
	if flags.quiet {
		a.out = io.Discard
	}
	if interactive && !flags.quiet {
		a.download.Progress = cmd.ErrOrStderr()
	}
	return a, nil
}

// resolveConfigPath picks --config, then NB_SETUP_CONFIG, then scripts/setup.toml under projectRoot.
// explicit reports whether the path came from the user.
func resolveConfigPath(flags *rootFlags, env config.Env, projectRoot string) (path string, explicit bool) {
	if flags.config != "" {
		return flags.config, true
	}
	if env.ConfigPath != "" {
		return env.ConfigPath, true
	}
	return config.DefaultConfigPath(projectRoot), false
}

// resolveProjectRoot returns explicit when set, otherwise the nearest Nebula root above the cwd.
func resolveProjectRoot(explicit string) (string, error) {
	if explicit != "" {
		abs, err := filepath.Abs(explicit)
		if err != nil {
			return "", err
		}
		info, err := os.Stat(abs)
		if err != nil {
			return "", err
		}
		if !info.IsDir() {
			return "", fmt.Errorf(messages.RootMissingProjectFmt, abs)
		}
		return abs, nil
	}
	cwd, err := getwd()
	if err != nil {
		return "", err
	}
	projectRoot, found, err := root.FindProjectRoot(cwd)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf(messages.RootMissingProjectFmt, cwd)
	}
	return projectRoot, nil
}

func (a *app) pythonSystem() python.System {
	return python.RealSystem{Stdout: a.out, Stderr: a.stderr}
}

func (a *app) pythonValidator() (*python.Validator, error) {
	return python.NewValidator(a.pythonSystem(), a.prompter, a.out, a.cfg.Python.PythonExecutable(), a.cfg.Python.MinVersion)
}

func (a *app) vulkanChecker() *vulkan.Checker {
	return vulkan.NewChecker(vulkan.RealSystem{Options: a.download}, a.prompter, a.out, a.cfg.Vulkan, a.root)
}

func (a *app) premakeChecker() *premake.Checker {
	return premake.NewChecker(premake.RealSystem{Options: a.download}, a.prompter, a.out, a.cfg.Premake, a.root)
}

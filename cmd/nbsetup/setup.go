package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/nebula-setup/internal/messages"
	"github.com/conn-castle/nebula-setup/internal/setup"
	"github.com/conn-castle/nebula-setup/internal/vulkan"
)

var newSetupSystem = func(a *app) setup.System {
	return setup.RealSystem{Stdin: a.stdin, Stdout: a.out, Stderr: a.stderr}
}

func newSetupCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.SetupUse,
		Short: messages.SetupShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd, flags)
		},
	}
}

func runSetup(cmd *cobra.Command, flags *rootFlags) error {
	a, err := loadApp(cmd, flags)
	if err != nil {
		return err
	}
	validator, err := a.pythonValidator()
	if err != nil {
		return err
	}

	pipeline := &setup.Pipeline{
		Sys:          newSetupSystem(a),
		Python:       validator,
		Packages:     a.cfg.Python.Packages,
		Premake:      a.premakeChecker(),
		Vulkan:       a.vulkanChecker(),
		Out:          a.out,
		Root:         a.root,
		Project:      a.cfg.Project,
		VulkanEnvVar: a.cfg.Vulkan.EnvVar,
	}
	outcome, err := pipeline.Run(cmd.Context())
	if errors.Is(err, vulkan.ErrRestartRequired) {
		return err
	}
	if !a.quiet && len(outcome.Results) > 0 {
		_, _ = fmt.Fprintln(a.stdout, messages.SummaryHeader)
		printResults(a.stdout, outcome.Results)
	}
	if errors.Is(err, setup.ErrPrerequisites) {
		return &SilentExitError{Code: 1}
	}
	return err
}

package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/nebula-setup/internal/doctor"
	"github.com/conn-castle/nebula-setup/internal/messages"
	"github.com/conn-castle/nebula-setup/internal/premake"
	"github.com/conn-castle/nebula-setup/internal/python"
	"github.com/conn-castle/nebula-setup/internal/vulkan"
)

var runDoctorFunc = doctor.Run

func newDoctorCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			env, err := loadEnvFunc()
			if err != nil {
				return err
			}
			projectRoot, err := resolveProjectRoot(flags.root)
			if err != nil {
				return err
			}
			configPath, _ := resolveConfigPath(flags, env, projectRoot)

			_, _ = fmt.Fprintf(out, messages.DoctorHealthCheckFmt, projectRoot)
			results := runDoctorFunc(cmd.Context(), doctor.Options{
				Root:       projectRoot,
				ConfigPath: configPath,
				Env:        env,
				Python:     python.RealSystem{Stdout: io.Discard, Stderr: io.Discard},
				Vulkan:     vulkan.RealSystem{},
				Premake:    premake.RealSystem{},
			})

			if printResults(out, results) {
				_, _ = fmt.Fprintln(out, color.RedString(messages.DoctorFailureSummary))
				return fmt.Errorf(messages.DoctorFailureError)
			}
			_, _ = fmt.Fprintln(out, color.GreenString(messages.DoctorSuccessSummary))
			return nil
		},
	}
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/nebula-setup/internal/messages"
)

const (
	flagRoot   = "root"
	flagConfig = "config"
	flagPlain  = "plain"
	flagQuiet  = "quiet"
)

// rootFlags are the persistent flags shared by every command.
type rootFlags struct {
	root   string
	config string
	plain  bool
	quiet  bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd, flags)
		},
	}
	cmd.Flags().BoolP("version", "v", false, messages.RootVersionFlag)

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.root, flagRoot, "", messages.RootFlagRoot)
	pf.StringVar(&flags.config, flagConfig, "", messages.RootFlagConfig)
	pf.BoolVar(&flags.plain, flagPlain, false, messages.RootFlagPlain)
	pf.BoolVarP(&flags.quiet, flagQuiet, "q", false, messages.RootFlagQuiet)

	cmd.AddCommand(
		newSetupCmd(flags),
		newPythonCmd(flags),
		newVulkanCmd(flags),
		newPremakeCmd(flags),
		newDoctorCmd(flags),
	)
	return cmd
}

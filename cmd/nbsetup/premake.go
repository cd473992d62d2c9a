package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/nebula-setup/internal/messages"
)

func newPremakeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.PremakeUse,
		Short: messages.PremakeShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			ok, err := a.premakeChecker().Validate(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				return &SilentExitError{Code: 1}
			}
			return nil
		},
	}
}

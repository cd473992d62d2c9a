package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/nebula-setup/internal/messages"
)

func newPythonCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.PythonUse,
		Short: messages.PythonShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			validator, err := a.pythonValidator()
			if err != nil {
				return err
			}
			ok, err := validator.Validate(cmd.Context(), a.cfg.Python.Packages)
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

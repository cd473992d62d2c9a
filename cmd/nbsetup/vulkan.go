package main

import (
	"github.com/spf13/cobra"

	"github.com/conn-castle/nebula-setup/internal/messages"
)

func newVulkanCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   messages.VulkanUse,
		Short: messages.VulkanShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			ok, err := a.vulkanChecker().Validate(cmd.Context())
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

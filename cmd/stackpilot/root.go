package main

import (
	"github.com/spf13/cobra"

	"github.com/castlebay-dev/stackpilot/internal/messages"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newInstallCmd())
	cmd.AddCommand(newKickoffCmd())
	cmd.AddCommand(newDoctorCmd())
	return cmd
}

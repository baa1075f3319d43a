package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/castlebay-dev/stackpilot/internal/clierr"
	"github.com/castlebay-dev/stackpilot/internal/config"
	"github.com/castlebay-dev/stackpilot/internal/install"
	"github.com/castlebay-dev/stackpilot/internal/messages"
)

var installRun = install.Run

func newInstallCmd() *cobra.Command {
	var force bool
	var target string

	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Long:  messages.InstallLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := getwd()
			if err != nil {
				return fmt.Errorf(messages.ResolveWorkdirFailedFmt, err)
			}
			home, err := config.ResolveHome(os.LookupEnv)
			if err != nil {
				return err
			}
			hostPath, err := config.HostCommandPath(home, target)
			if err != nil {
				if errors.Is(err, config.ErrUnsupportedTarget) {
					return clierr.Usage(err, messages.UnsupportedTargetRemedy)
				}
				return err
			}
			_, err = installRun(root, install.Options{
				Force:           force,
				System:          install.RealSystem{},
				HostCommandPath: hostPath,
				Out:             cmd.OutOrStdout(),
			})
			return err
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, messages.InstallFlagForce)
	cmd.Flags().StringVar(&target, "target", config.HostTargetClaude, messages.InstallFlagTarget)
	return cmd
}

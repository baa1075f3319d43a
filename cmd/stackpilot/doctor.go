package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/castlebay-dev/stackpilot/internal/clierr"
	"github.com/castlebay-dev/stackpilot/internal/doctor"
	"github.com/castlebay-dev/stackpilot/internal/messages"
	"github.com/castlebay-dev/stackpilot/internal/terminal"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DoctorUse,
		Short: messages.DoctorShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := getwd()
			if err != nil {
				return fmt.Errorf(messages.ResolveWorkdirFailedFmt, err)
			}
			out := cmd.OutOrStdout()
			colorize := terminal.IsInteractive(out)
			results := doctor.Run(root, os.LookupEnv)
			for _, result := range results {
				printResult(out, result, colorize)
			}
			if doctor.AnyFailed(results) {
				return clierr.Dependency(errors.New(messages.DoctorFailed), messages.DoctorFailedRemedy)
			}
			return nil
		},
	}
}

func printResult(out io.Writer, r doctor.Result, colorize bool) {
	status := r.Status.String()
	if colorize {
		switch r.Status {
		case doctor.StatusOK:
			status = color.GreenString(status)
		case doctor.StatusWarn:
			status = color.YellowString(status)
		case doctor.StatusFail:
			status = color.RedString(status)
		}
	}
	_, _ = fmt.Fprintf(out, messages.DoctorResultLineFmt, status, r.CheckName, r.Message)
	if r.Recommendation != "" {
		_, _ = fmt.Fprintf(out, messages.DoctorRecommendLineFmt, r.Recommendation)
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/castlebay-dev/stackpilot/internal/clierr"
	"github.com/castlebay-dev/stackpilot/internal/messages"
)

var getwd = os.Getwd

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// execute runs the CLI command with the provided args and output writers.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

// runMain executes the CLI and maps the returned error to an exit code.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	err := execute(args, stdout, stderr)
	if err == nil {
		return
	}
	_, _ = fmt.Fprintln(stderr, err)
	if remedy := clierr.Remedy(err); remedy != "" {
		_, _ = fmt.Fprintln(stderr, remedy)
	}
	exit(clierr.ExitCode(err))
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}

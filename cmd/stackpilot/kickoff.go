package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/castlebay-dev/stackpilot/internal/catalog"
	"github.com/castlebay-dev/stackpilot/internal/clierr"
	"github.com/castlebay-dev/stackpilot/internal/config"
	"github.com/castlebay-dev/stackpilot/internal/dryrun"
	"github.com/castlebay-dev/stackpilot/internal/messages"
)

func newKickoffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   messages.KickoffUse,
		Short: messages.KickoffShort,
		// The --dry-run flag belongs to the prompt, not to cobra: its
		// placement inside the raw input decides the request state, so
		// the tokens must reach RunE unparsed.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			rawInput := joinPrompt(args)
			req := dryrun.Classify(rawInput)
			out := cmd.OutOrStdout()
			switch req.State {
			case dryrun.StateInvalidFlagPlacement:
				return clierr.InvalidFlagPlacement(
					fmt.Errorf(messages.InvalidFlagPlacementFmt, dryrun.Flag),
					messages.InvalidFlagPlacementRemedy,
				)
			case dryrun.StatePreview:
				return runPreview(out, req)
			}
			if rawInput == "" {
				return clierr.Usage(errors.New(messages.KickoffPromptRequired), messages.KickoffPromptRequiredRemedy)
			}
			return runSelection(out, rawInput)
		},
	}
	return cmd
}

// joinPrompt reassembles the raw prompt from argv tokens. A single quoted
// argument and unquoted words produce the same input text.
func joinPrompt(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}

// runPreview prints the downstream prompt chain without touching the
// repository: the chain comes from the embedded settings template, and no
// downstream command is invoked.
func runPreview(out io.Writer, req dryrun.Request) error {
	cfg, err := config.LoadTemplate()
	if err != nil {
		return err
	}
	targets := dryRunTargets(cfg)
	_, _ = fmt.Fprint(out, messages.DryRunHeader)
	if len(req.TargetCommands(targets)) == 0 {
		_, _ = fmt.Fprint(out, messages.DryRunEmptyNote)
		return nil
	}
	for _, prompt := range dryrun.BuildPrompts(req.PromptContent, targets) {
		_, _ = fmt.Fprintf(out, messages.DryRunPromptLineFmt, prompt.Order, prompt.Command)
		_, _ = fmt.Fprintf(out, messages.DryRunTextLineFmt, prompt.Text)
		if prompt.Notes != "" {
			_, _ = fmt.Fprintf(out, messages.DryRunNoteLineFmt, prompt.Notes)
		}
	}
	return nil
}

func dryRunTargets(cfg *config.Config) []dryrun.Target {
	targets := make([]dryrun.Target, 0, len(cfg.DryRun.Targets))
	for _, target := range cfg.DryRun.Targets {
		targets = append(targets, dryrun.Target{Command: target.Command, Artifact: target.Artifact})
	}
	return targets
}

// runSelection loads the installed settings and catalog, selects a stack
// for the prompt, and reports the selection.
func runSelection(out io.Writer, prompt string) error {
	root, err := getwd()
	if err != nil {
		return fmt.Errorf(messages.ResolveWorkdirFailedFmt, err)
	}
	paths := config.DefaultPaths(root)
	if _, err := os.Stat(paths.Dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return clierr.Dependency(errors.New(messages.NotInstalled), messages.NotInstalledRemedy)
		}
		return fmt.Errorf(messages.InstallFailedStatFmt, paths.Dir, err)
	}
	cfg, err := config.Load(paths.ConfigPath)
	if err != nil {
		if errors.Is(err, config.ErrConfigValidation) {
			return clierr.Validation(err, messages.ConfigValidationGuidance)
		}
		return err
	}
	index, err := catalog.Load(paths.CatalogPath(cfg))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrCatalogValidation):
			return clierr.Validation(err, messages.CatalogInvalidRemedy)
		case errors.Is(err, os.ErrNotExist):
			return clierr.Dependency(err, messages.CatalogMissingRemedy)
		}
		return err
	}
	selection, err := catalog.Select(index, prompt)
	if err != nil {
		return err
	}
	printSelection(out, selection)
	return nil
}

func printSelection(out io.Writer, selection catalog.SelectionResult) {
	_, _ = fmt.Fprintf(out, messages.SelectionHeaderFmt, selection.Stack, selection.Priority)
	if selection.Fallback {
		_, _ = fmt.Fprint(out, messages.SelectionFallbackNote)
	} else {
		_, _ = fmt.Fprintf(out, messages.SelectionMatchedTagFmt, selection.MatchedTag)
	}
	_, _ = fmt.Fprintf(out, messages.SelectionReasonFmt, selection.Reason)
	if len(selection.Technologies) > 0 {
		_, _ = fmt.Fprintln(out, messages.SelectionTechHeader)
		for _, tech := range selection.Technologies {
			_, _ = fmt.Fprintf(out, messages.SelectionTechLineFmt, tech)
		}
	}
	_, _ = fmt.Fprint(out, messages.SelectionDelegateNote)
}

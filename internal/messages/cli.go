package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "stackpilot"
	// RootShort is the short description for the root command.
	RootShort = "Stack Pilot CLI"
	RootLong  = "Stack Pilot installs and orchestrates the /kickoff slash-command workflow for AI coding assistants."

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// InstallUse is the install command name.
	InstallUse   = "install"
	InstallShort = "Install the kickoff workflow assets into this repository"
	InstallLong  = "Install the managed asset set under .stackpilot, append the usage block to CLAUDE.md, and register the kickoff command with the host assistant."

	InstallFlagForce  = "Recreate managed assets even when they already exist (backs up the registered command definition first)"
	InstallFlagTarget = "Host assistant to register the command with"

	// KickoffUse is the kickoff command usage.
	KickoffUse   = "kickoff <prompt>"
	KickoffShort = "Select a stack for a prompt, or preview the downstream chain with --dry-run"

	KickoffPromptRequired       = "kickoff requires a prompt"
	KickoffPromptRequiredRemedy = "pass a project description, e.g. stackpilot kickoff \"build a web app\""

	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Check the kickoff workflow installation"

	// ResolveWorkdirFailedFmt formats working-directory resolution failures.
	ResolveWorkdirFailedFmt = "resolve working directory: %w"

	NotInstalled       = "stackpilot isn't installed in this repository (missing .stackpilot)"
	NotInstalledRemedy = "run 'stackpilot install' first"

	UnsupportedTargetFmt    = "unsupported host target %q"
	UnsupportedTargetRemedy = "supported targets: claude"

	PermissionDeniedRemedy = "check file ownership and mode for the reported path"

	// SelectionHeaderFmt formats the selected stack line.
	SelectionHeaderFmt     = "Selected stack: %s (priority %d)\n"
	SelectionMatchedTagFmt = "Matched tag: %s\n"
	SelectionFallbackNote  = "No tag matched; fell back to the most general stack.\n"
	SelectionReasonFmt     = "Reason: %s\n"
	SelectionTechHeader    = "Technologies:"
	SelectionTechLineFmt   = "  - %s\n"
	SelectionDelegateNote  = "Hand this selection to the host assistant to run the generation chain.\n"
)

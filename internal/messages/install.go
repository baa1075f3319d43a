package messages

// Installer, configuration-writer, and registration messages.
const (
	InstallRootRequired   = "install root is required"
	InstallSystemRequired = "install system is required"

	InstallCreateDirFailedFmt    = "failed to create directory %s: %w"
	InstallFailedStatFmt         = "failed to stat %s: %w"
	InstallFailedReadFmt         = "failed to read %s: %w"
	InstallFailedWriteFmt        = "failed to write %s: %w"
	InstallFailedReadTemplateFmt = "failed to read template %s: %w"

	InstallOutcomeCreatedFmt   = "created    %s\n"
	InstallOutcomeSkippedFmt   = "skipped    %s (exists)\n"
	InstallOutcomeRecreatedFmt = "recreated  %s\n"
	InstallOutcomeFailedFmt    = "failed     %s: %v\n"

	InstallFailedSummaryFmt = "%d of %d assets failed"
	InstallFailedRemedy     = "fix the reported paths and re-run 'stackpilot install'"

	InstallBackupNoteFmt = "backed up %s to %s\n"
	InstallDiffHeaderFmt = "Replacing %s:\n"
	InstallDiffTruncated = "  ... diff truncated ...\n"

	// BackupCopyFailedFmt formats backup copy failures; the overwrite is aborted.
	BackupCopyFailedFmt   = "failed to back up %s: %w"
	BackupCandidatesFmt   = "no free backup name for %s after %d attempts"
	RegisterSourceMissing = "canonical command definition is missing"

	DefinitionInvalidFmt    = "command definition %s is invalid: %v"
	DefinitionMissingName   = "frontmatter has no name"
	DefinitionNoFrontmatter = "missing YAML frontmatter"
	DefinitionInvalidRemedy = "restore the command definition from the template with 'stackpilot install --force'"

	ConfigBlockMarkerRequired = "config block marker is required"
)

package messages

// Dry-run preview messages.
const (
	DryRunHeader = "Dry run: no downstream commands will be executed.\n"

	// DryRunEmptyNote explains an empty preview; this is success, not an error.
	DryRunEmptyNote = "Nothing to preview: no prompt was provided after --dry-run.\n"

	DryRunPromptLineFmt = "%d. /%s\n"
	DryRunTextLineFmt   = "   prompt: %s\n"
	DryRunNoteLineFmt   = "   note: %s\n"

	// DryRunChainedPromptFmt formats the structured reference a downstream
	// target receives instead of the raw prompt content.
	DryRunChainedPromptFmt = "Use the %s artifact produced by /%s as the input for this step."
	DryRunChainedNoteFmt   = "depends on the /%s output"

	InvalidFlagPlacementFmt    = "the %s flag must be the first token of the prompt"
	InvalidFlagPlacementRemedy = "move the flag to the front, e.g. stackpilot kickoff \"--dry-run build a web app\""
)

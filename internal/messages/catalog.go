package messages

// Catalog loading and stack selection messages.
const (
	CatalogMissingFileFmt = "failed to read catalog %s: %w"
	CatalogMissingRemedy  = "run 'stackpilot install' to restore the default catalog"

	CatalogRecordMissingNameFmt = "catalog record at line %d has no name"
	CatalogDuplicateNameFmt     = "catalog defines stack %q more than once"
	CatalogNoStacks             = "catalog defines no stacks"
	CatalogInvalidRemedy        = "fix the catalog document or restore it with 'stackpilot install --force'"

	SelectionEmptyCatalog = "cannot select a stack from an empty catalog"

	// SelectionMatchedReasonFmt records why a stack was selected by tag.
	SelectionMatchedReasonFmt = "matched tag %q"
	SelectionFallbackReason   = "no tag match; fallback to lowest priority"
)

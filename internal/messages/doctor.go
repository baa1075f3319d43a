package messages

// Doctor check names and messages.
const (
	DoctorCheckNameStructure    = "structure"
	DoctorCheckNameSettings     = "settings"
	DoctorCheckNameCatalog      = "catalog"
	DoctorCheckNameRegistration = "registration"

	DoctorMissingRequiredPathFmt   = "missing required path %s"
	DoctorMissingRequiredRecommend = "run 'stackpilot install'"
	DoctorPathNotDirFmt            = "%s exists but is not a directory"
	DoctorPathNotDirRecommend      = "move the file aside and run 'stackpilot install'"
	DoctorPathExistsFmt            = "%s exists"

	DoctorSettingsLoadFailedFmt    = "settings failed to load: %v"
	DoctorSettingsInvalidFmt       = "settings are invalid: %v"
	DoctorSettingsInvalidRecommend = "restore settings with 'stackpilot install --force'"
	DoctorSettingsOK               = "settings are valid"

	DoctorCatalogInvalidFmt       = "catalog failed to parse: %v"
	DoctorCatalogInvalidRecommend = "fix the catalog or restore it with 'stackpilot install --force'"
	DoctorCatalogOKFmt            = "catalog defines %d stacks"

	DoctorHostUnresolvedFmt       = "host command path could not be resolved: %v"
	DoctorHostUnresolvedRecommend = "set STACKPILOT_HOME or fix the home directory"
	DoctorNotRegisteredFmt        = "kickoff command is not registered at %s"
	DoctorNotRegisteredRecommend  = "run 'stackpilot install'"
	DoctorRegisteredFmt           = "kickoff command registered at %s"

	DoctorStatusOK   = "OK"
	DoctorStatusWarn = "WARN"
	DoctorStatusFail = "FAIL"

	DoctorResultLineFmt    = "[%s] %s: %s\n"
	DoctorRecommendLineFmt = "       -> %s\n"
	DoctorFailed           = "doctor found problems"
	DoctorFailedRemedy     = "address the FAIL results above"
)

package messages

// Doctor messages for the doctor command.
const (
	// DoctorUse is the doctor command name.
	DoctorUse   = "doctor"
	DoctorShort = "Report on the development environment without changing anything"

	DoctorHealthCheckFmt = "Checking Nebula setup in %s...\n"

	DoctorCheckNameGit       = "Git"
	DoctorCheckNameGenerator = "Generator"
	DoctorCheckNameConfig    = "Config"

	DoctorGitFoundFmt         = "git found at %s"
	DoctorGitMissing          = "git not found on PATH"
	DoctorGitRecommend        = "Install git from https://git-scm.com/downloads."
	DoctorGitmodulesMissing   = "No .gitmodules in project root; submodule update will be a no-op"
	DoctorGeneratorFoundFmt   = "Project generator found: %s"
	DoctorGeneratorMissingFmt = "Project generator missing: %s"
	DoctorGeneratorRecommend  = "Restore the script from version control or set project.generate_script in setup.toml."
	DoctorConfigDefaults      = "No setup.toml found; using built-in defaults"
	DoctorConfigLoadedFmt     = "Loaded %s"
	DoctorConfigLoadFailedFmt = "Failed to load config: %v"
	DoctorConfigLoadRecommend = "Fix scripts/setup.toml or remove it to fall back to the built-in defaults."
	DoctorGeneratorSkippedFmt = "Project generation is not automated on %s"

	DoctorStatusOKLabel        = "[OK]  "
	DoctorStatusWarnLabel      = "[WARN]"
	DoctorStatusFailLabel      = "[FAIL]"
	DoctorResultLineFmt        = "%s %-16s %s\n"
	DoctorRecommendationPrefix = "       💡 "
	DoctorRecommendationIndent = "          "

	DoctorFailureSummary = "\nSome checks failed. Run `nbsetup` to fix what can be fixed automatically."
	DoctorFailureError   = "doctor checks failed"
	DoctorSuccessSummary = "\nAll checks passed."
)

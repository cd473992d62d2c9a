package messages

// Python runtime and package validation messages.
const (
	PythonSystemRequired       = "python system is required"
	PythonExecutableRequired   = "python executable is required"
	PythonMinVersionRequired   = "minimum python version is required"
	PythonVersionDetectedFmt   = "Python version %d.%d.%d detected\n"
	PythonInvalidVersionFmt    = "Invalid Python Version, expected %d.%d or higher\n"
	PythonNotFoundFmt          = "Could not run Python interpreter %q: %v\n"
	PythonUnparsableVersionFmt = "could not parse a Python version from %q"
	PythonMinVersionInvalidFmt = "invalid minimum Python version %q: %w"
	PythonInstallPromptFmt     = "Would you like to install Python package '%s'?"
	PythonInstallingFmt        = "Installing %s module...\n"
	PythonInstallFailedFmt     = "pip install %s: %w"
	PythonProbeFailedFmt       = "check python package %s: %w"
	PythonStillMissingFmt      = "python package %s is still not importable after installation"
	PythonPackageDeclinedFmt   = "Python package '%s' is required; setup cannot continue without it.\n"
	PythonProbeScript          = "import importlib.util,sys; sys.exit(0 if importlib.util.find_spec(sys.argv[1]) else 1)"
	PythonStepRuntime          = "Python"
	PythonStepPackages         = "Packages"
	PythonRuntimeOKFmt         = "Python %s meets the minimum %s"
	PythonRuntimeFailFmt       = "Python %s is below the minimum %s"
	PythonRuntimeMissingFmt    = "Python unavailable: %v"
	PythonRuntimeRecommend     = "Install Python 3 from https://www.python.org/downloads/ and make sure it is on PATH (or set NB_PYTHON)."
	PythonPackagesOKFmt        = "Required packages installed: %s"
	PythonPackageMissingFmt    = "Python package missing: %s"
	PythonPackageRecommendFmt  = "Run `nbsetup python` or `python -m pip install %s`."
	PythonPackagesNoneRequired = "No Python packages required."
)

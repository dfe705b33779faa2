package build

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
	BuiltBy = "unknown"
)

func IsDev() bool {
	return Version == "dev"
}

// BinaryName returns the name of the deflector executable.
func BinaryName() string {
	if IsDev() {
		return "ddeflector"
	}
	return "deflector"
}

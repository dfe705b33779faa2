package build

// ConfigFolderName is the folder under the user's home directory
// holding the deflector config file.
var ConfigFolderName = ".deflector"

const (
	// Scheme is the vendor protocol that the shell uses to force links into Microsoft Edge.
	Scheme = "microsoft-edge"

	// ProgID is the registry class name the Scheme is associated with.
	ProgID = "EdgeUriDeflector"

	ApplicationName        = "EdgeDeflector"
	ApplicationDescription = "Open web links normally forced to open in Microsoft Edge in your default web browser."
	ProtocolDescription    = "URL: Microsoft Edge Protocol Deflector"
)

package irecv

// Version is this package's ABI-parity version string, returned by
// VersionString() for callers that log or report it (§6's diagnostics surface).
const Version = "0.1.0"

// VersionString returns the library's version, equivalent to irecv_version.
func VersionString() string {
	return Version
}

// Package exitcode defines named exit codes for the autosplitter CLI.
package exitcode

const (
	Success     = 0   // Clean shutdown
	Error       = 1   // Invalid args, unreadable config, fatal runtime error
	Unsupported = 2   // No process memory access on this platform
	Interrupted = 130 // SIGINT/SIGTERM received
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	case Unsupported:
		return "Unsupported"
	case Interrupted:
		return "Interrupted"
	default:
		return "unknown"
	}
}

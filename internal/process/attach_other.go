//go:build !linux && !windows

package process

// Attach is not implemented on this platform.
func Attach(names []string) (Process, error) {
	return nil, ErrUnsupported
}

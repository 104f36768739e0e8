// Package process attaches to a running game process and reads its memory.
//
// Reads are fallible and never retried here. Callers decide whether a
// failed read means "value unavailable this tick" or "process is gone".
package process

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// Sentinel errors returned by Attach and Process implementations.
var (
	ErrNotFound       = errors.New("process not found")
	ErrModuleNotFound = errors.New("module not found")
	ErrUnsupported    = errors.New("process attach is not supported on this platform")
	ErrDetached       = errors.New("process detached")
)

// Address is a virtual address in the target process.
type Address uint64

// Add offsets the address by a signed displacement.
func (a Address) Add(off int64) Address {
	return Address(int64(a) + off)
}

func (a Address) String() string {
	return fmt.Sprintf("%#x", uint64(a))
}

// Module is a loaded image inside the target process.
type Module struct {
	Name string
	Base Address
	Size uint64
}

// End returns the first address past the module.
func (m Module) End() Address {
	return m.Base + Address(m.Size)
}

// Reader reads target memory. A short read is an error.
type Reader interface {
	Read(addr Address, buf []byte) error
}

// Process is an attached target process.
type Process interface {
	Reader

	// Pid returns the OS process id.
	Pid() int
	// Name returns the executable name the process was matched by.
	Name() string
	// Module locates a loaded module by file name (case-insensitive).
	Module(name string) (Module, error)
	// Alive reports whether the process is still running.
	Alive() bool
	// Close releases any OS handle held for the process.
	Close() error
}

// MatchName reports whether an executable path or command-line argv[0]
// refers to one of names. Both '/' and '\' are treated as separators so that
// Windows paths seen through Wine match too.
func MatchName(exe string, names []string) (string, bool) {
	base := path.Base(strings.ReplaceAll(strings.TrimSpace(exe), `\`, "/"))
	for _, n := range names {
		if strings.EqualFold(base, n) {
			return n, true
		}
	}
	return "", false
}

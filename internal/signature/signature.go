// Package signature locates byte patterns in compiled code.
//
// A pattern is written as space-separated hex bytes; "??" matches any byte.
package signature

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/CodexForgeBR/colors-autosplitter/internal/process"
)

// chunkSize is how much remote memory ScanRange reads per call.
const chunkSize = 64 * 1024

// Signature is a parsed byte pattern.
type Signature struct {
	bytes []byte
	mask  []bool // true where the byte must match
}

// Parse builds a Signature from a pattern such as "76 0C 48 8B 0D".
func Parse(pattern string) (Signature, error) {
	fields := strings.Fields(pattern)
	if len(fields) == 0 {
		return Signature{}, fmt.Errorf("empty signature")
	}
	sig := Signature{
		bytes: make([]byte, len(fields)),
		mask:  make([]bool, len(fields)),
	}
	for i, f := range fields {
		if f == "??" || f == "?" {
			continue
		}
		v, err := strconv.ParseUint(f, 16, 8)
		if err != nil {
			return Signature{}, fmt.Errorf("signature byte %d %q: %w", i, f, err)
		}
		sig.bytes[i] = byte(v)
		sig.mask[i] = true
	}
	if !sig.mask[0] {
		return Signature{}, fmt.Errorf("signature must not start with a wildcard")
	}
	return sig, nil
}

// MustParse is like Parse but panics on error. For package-level patterns.
func MustParse(pattern string) Signature {
	sig, err := Parse(pattern)
	if err != nil {
		panic(err)
	}
	return sig
}

// Len returns the pattern length in bytes.
func (s Signature) Len() int {
	return len(s.bytes)
}

func (s Signature) String() string {
	parts := make([]string, len(s.bytes))
	for i, b := range s.bytes {
		if s.mask[i] {
			parts[i] = fmt.Sprintf("%02X", b)
		} else {
			parts[i] = "??"
		}
	}
	return strings.Join(parts, " ")
}

// Scan returns the offset of the first match in buf, or -1.
func (s Signature) Scan(buf []byte) int {
	n := len(s.bytes)
	for i := 0; i+n <= len(buf); i++ {
		if buf[i] != s.bytes[0] {
			continue
		}
		if s.matchAt(buf[i:]) {
			return i
		}
	}
	return -1
}

func (s Signature) matchAt(b []byte) bool {
	for j := 1; j < len(s.bytes); j++ {
		if s.mask[j] && b[j] != s.bytes[j] {
			return false
		}
	}
	return true
}

// ScanRange searches size bytes of remote memory starting at base. Chunks
// overlap by Len()-1 bytes so matches spanning a boundary are found.
// Unreadable chunks are skipped.
func (s Signature) ScanRange(r process.Reader, base process.Address, size uint64) (process.Address, bool) {
	overlap := uint64(s.Len() - 1)
	buf := make([]byte, chunkSize)
	for off := uint64(0); off < size; {
		n := uint64(chunkSize)
		if off+n > size {
			n = size - off
		}
		if n < uint64(s.Len()) {
			break
		}
		chunk := buf[:n]
		if err := r.Read(base+process.Address(off), chunk); err == nil {
			if i := s.Scan(chunk); i >= 0 {
				return base + process.Address(off) + process.Address(i), true
			}
		}
		if off+n >= size {
			break
		}
		off += n - overlap
	}
	return 0, false
}

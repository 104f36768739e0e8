// Package processtest provides an in-memory Process for tests.
package processtest

import (
	"encoding/binary"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/CodexForgeBR/colors-autosplitter/internal/process"
)

type region struct {
	base process.Address
	data []byte
}

// Fake is a process whose memory is a set of byte regions. Reads that are
// not fully covered by one region fail.
type Fake struct {
	mu      sync.Mutex
	PID     int
	Exe     string
	regions []region
	modules map[string]process.Module
	dead    bool
	closed  bool
	reads   int
}

// New returns an empty live fake.
func New(exe string) *Fake {
	return &Fake{PID: 4242, Exe: exe, modules: make(map[string]process.Module)}
}

// Map installs data at base, replacing any region that starts there.
func (f *Fake) Map(base process.Address, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.regions {
		if f.regions[i].base == base {
			f.regions[i].data = data
			return
		}
	}
	f.regions = append(f.regions, region{base: base, data: data})
	sort.Slice(f.regions, func(i, j int) bool { return f.regions[i].base < f.regions[j].base })
}

// Unmap removes the region starting at base.
func (f *Fake) Unmap(base process.Address) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.regions {
		if f.regions[i].base == base {
			f.regions = append(f.regions[:i], f.regions[i+1:]...)
			return
		}
	}
}

// PutPointer maps an 8-byte little-endian pointer at addr.
func (f *Fake) PutPointer(addr, target process.Address) {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, uint64(target))
	f.Map(addr, b)
}

// PutU8 maps a single byte at addr.
func (f *Fake) PutU8(addr process.Address, v uint8) {
	f.Map(addr, []byte{v})
}

// PutF32 maps a little-endian float at addr.
func (f *Fake) PutF32(addr process.Address, v float32) {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, math.Float32bits(v))
	f.Map(addr, b)
}

// PutI32 maps a little-endian int32 at addr.
func (f *Fake) PutI32(addr process.Address, v int32) {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	f.Map(addr, b)
}

// AddModule registers a module and maps its image.
func (f *Fake) AddModule(name string, base process.Address, image []byte) {
	f.Map(base, image)
	f.mu.Lock()
	f.modules[strings.ToLower(name)] = process.Module{Name: name, Base: base, Size: uint64(len(image))}
	f.mu.Unlock()
}

// Kill makes Alive report false and every read fail.
func (f *Fake) Kill() {
	f.mu.Lock()
	f.dead = true
	f.mu.Unlock()
}

// Closed reports whether Close was called.
func (f *Fake) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Reads returns the number of Read calls so far.
func (f *Fake) Reads() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reads
}

func (f *Fake) Pid() int     { return f.PID }
func (f *Fake) Name() string { return f.Exe }

func (f *Fake) Read(addr process.Address, buf []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reads++
	if f.dead {
		return fmt.Errorf("read %s: %w", addr, process.ErrDetached)
	}
	end := addr + process.Address(len(buf))
	for _, r := range f.regions {
		rend := r.base + process.Address(len(r.data))
		if addr >= r.base && end <= rend {
			copy(buf, r.data[addr-r.base:])
			return nil
		}
	}
	return fmt.Errorf("read %s: unmapped", addr)
}

func (f *Fake) Module(name string) (process.Module, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.modules[strings.ToLower(name)]
	if !ok {
		return process.Module{}, fmt.Errorf("%s: %w", name, process.ErrModuleNotFound)
	}
	return m, nil
}

func (f *Fake) Alive() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return !f.dead
}

func (f *Fake) Close() error {
	f.mu.Lock()
	f.closed = true
	f.mu.Unlock()
	return nil
}

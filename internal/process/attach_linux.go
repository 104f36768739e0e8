//go:build linux

package process

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/sys/unix"
)

// linuxProcess reads memory with process_vm_readv. Under Wine or Proton the
// game's PE image is file-mapped, so /proc/<pid>/maps locates it.
type linuxProcess struct {
	pid  int
	name string
}

// Attach finds the first running process whose executable matches one of
// names. It returns ErrNotFound when none is running.
func Attach(names []string) (Process, error) {
	entries, err := os.ReadDir("/proc")
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}
	self := os.Getpid()
	for _, e := range entries {
		pid, err := strconv.Atoi(e.Name())
		if err != nil || pid == self {
			continue
		}
		if name, ok := matchPid(pid, names); ok {
			return &linuxProcess{pid: pid, name: name}, nil
		}
	}
	return nil, ErrNotFound
}

// matchPid checks argv[0] from the command line, then the exe link. Wine
// processes report the Windows path only in their command line.
func matchPid(pid int, names []string) (string, bool) {
	dir := filepath.Join("/proc", strconv.Itoa(pid))
	if cmdline, err := os.ReadFile(filepath.Join(dir, "cmdline")); err == nil {
		if name, ok := MatchName(argv0(cmdline), names); ok {
			return name, true
		}
	}
	if exe, err := os.Readlink(filepath.Join(dir, "exe")); err == nil {
		if name, ok := MatchName(exe, names); ok {
			return name, true
		}
	}
	return "", false
}

func (p *linuxProcess) Pid() int     { return p.pid }
func (p *linuxProcess) Name() string { return p.name }

func (p *linuxProcess) Read(addr Address, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	local := []unix.Iovec{{Base: &buf[0]}}
	local[0].SetLen(len(buf))
	remote := []unix.RemoteIovec{{Base: uintptr(addr), Len: len(buf)}}

	n, err := unix.ProcessVMReadv(p.pid, local, remote, 0)
	if err != nil {
		if err == unix.ESRCH {
			return fmt.Errorf("read %s: %w", addr, ErrDetached)
		}
		return fmt.Errorf("read %s: %w", addr, err)
	}
	if n != len(buf) {
		return fmt.Errorf("read %s: short read (%d of %d bytes)", addr, n, len(buf))
	}
	return nil
}

func (p *linuxProcess) Module(name string) (Module, error) {
	f, err := os.Open(filepath.Join("/proc", strconv.Itoa(p.pid), "maps"))
	if err != nil {
		return Module{}, fmt.Errorf("open maps: %w", err)
	}
	defer f.Close()
	return findModule(f, name)
}

func (p *linuxProcess) Alive() bool {
	// Signal 0 checks existence; EPERM still means the pid exists.
	err := unix.Kill(p.pid, 0)
	if err != nil && err != unix.EPERM {
		return false
	}
	// A zombie is not a usable target.
	stat, err := os.ReadFile(filepath.Join("/proc", strconv.Itoa(p.pid), "stat"))
	if err != nil {
		return false
	}
	return procState(stat) != 'Z'
}

func (p *linuxProcess) Close() error { return nil }

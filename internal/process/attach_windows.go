//go:build windows

package process

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"
)

// stillActive is the exit code GetExitCodeProcess reports for a running process.
const stillActive = 259

type windowsProcess struct {
	pid    int
	name   string
	handle windows.Handle
}

// Attach finds the first running process whose executable matches one of
// names. It returns ErrNotFound when none is running.
func Attach(names []string) (Process, error) {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return nil, fmt.Errorf("snapshot processes: %w", err)
	}
	defer windows.CloseHandle(snap)

	var entry windows.ProcessEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	for err = windows.Process32First(snap, &entry); err == nil; err = windows.Process32Next(snap, &entry) {
		name, ok := MatchName(windows.UTF16ToString(entry.ExeFile[:]), names)
		if !ok {
			continue
		}
		h, err := windows.OpenProcess(windows.PROCESS_VM_READ|windows.PROCESS_QUERY_LIMITED_INFORMATION, false, entry.ProcessID)
		if err != nil {
			return nil, fmt.Errorf("open %s (pid %d): %w", name, entry.ProcessID, err)
		}
		return &windowsProcess{pid: int(entry.ProcessID), name: name, handle: h}, nil
	}
	if !errors.Is(err, windows.ERROR_NO_MORE_FILES) {
		return nil, fmt.Errorf("walk processes: %w", err)
	}
	return nil, ErrNotFound
}

func (p *windowsProcess) Pid() int     { return p.pid }
func (p *windowsProcess) Name() string { return p.name }

func (p *windowsProcess) Read(addr Address, buf []byte) error {
	if len(buf) == 0 {
		return nil
	}
	var n uintptr
	if err := windows.ReadProcessMemory(p.handle, uintptr(addr), &buf[0], uintptr(len(buf)), &n); err != nil {
		return fmt.Errorf("read %s: %w", addr, err)
	}
	if int(n) != len(buf) {
		return fmt.Errorf("read %s: short read (%d of %d bytes)", addr, n, len(buf))
	}
	return nil
}

func (p *windowsProcess) Module(name string) (Module, error) {
	snap, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPMODULE|windows.TH32CS_SNAPMODULE32, uint32(p.pid))
	if err != nil {
		return Module{}, fmt.Errorf("snapshot modules: %w", err)
	}
	defer windows.CloseHandle(snap)

	var entry windows.ModuleEntry32
	entry.Size = uint32(unsafe.Sizeof(entry))
	for err = windows.Module32First(snap, &entry); err == nil; err = windows.Module32Next(snap, &entry) {
		if strings.EqualFold(windows.UTF16ToString(entry.Module[:]), name) {
			return Module{Name: name, Base: Address(entry.ModBaseAddr), Size: uint64(entry.ModBaseSize)}, nil
		}
	}
	return Module{}, fmt.Errorf("%s: %w", name, ErrModuleNotFound)
}

func (p *windowsProcess) Alive() bool {
	var code uint32
	if err := windows.GetExitCodeProcess(p.handle, &code); err != nil {
		return false
	}
	return code == stillActive
}

func (p *windowsProcess) Close() error {
	return windows.CloseHandle(p.handle)
}

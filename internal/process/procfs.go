package process

import (
	"bufio"
	"fmt"
	"io"
	"path"
	"strconv"
	"strings"
)

// mapping is one line of /proc/<pid>/maps.
type mapping struct {
	start, end Address
	path       string
}

// parseMapsLine parses a line such as
//
//	140000000-140001000 r--p 00000000 00:1f 1234   /games/SonicColorsUltimate.exe
func parseMapsLine(line string) (mapping, bool) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return mapping{}, false
	}
	lo, hi, ok := strings.Cut(fields[0], "-")
	if !ok {
		return mapping{}, false
	}
	start, err := strconv.ParseUint(lo, 16, 64)
	if err != nil {
		return mapping{}, false
	}
	end, err := strconv.ParseUint(hi, 16, 64)
	if err != nil || end < start {
		return mapping{}, false
	}
	m := mapping{start: Address(start), end: Address(end)}
	if len(fields) >= 6 {
		// Paths may contain spaces ("Sonic Colors - Ultimate.exe").
		m.path = strings.Join(fields[5:], " ")
	}
	return m, true
}

// findModule scans a maps listing for every mapping backed by a file named
// name and returns the range spanning them.
func findModule(r io.Reader, name string) (Module, error) {
	var (
		mod   Module
		found bool
	)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m, ok := parseMapsLine(scanner.Text())
		if !ok || m.path == "" {
			continue
		}
		if !strings.EqualFold(path.Base(strings.ReplaceAll(m.path, `\`, "/")), name) {
			continue
		}
		if !found {
			mod = Module{Name: name, Base: m.start, Size: uint64(m.end - m.start)}
			found = true
			continue
		}
		if m.start < mod.Base {
			mod.Size += uint64(mod.Base - m.start)
			mod.Base = m.start
		}
		if m.end > mod.End() {
			mod.Size = uint64(m.end - mod.Base)
		}
	}
	if err := scanner.Err(); err != nil {
		return Module{}, fmt.Errorf("read maps: %w", err)
	}
	if !found {
		return Module{}, fmt.Errorf("%s: %w", name, ErrModuleNotFound)
	}
	return mod, nil
}

// argv0 extracts the first NUL-separated field of /proc/<pid>/cmdline.
func argv0(cmdline []byte) string {
	s := string(cmdline)
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return s
}

// procState returns the state letter from /proc/<pid>/stat. The command name
// is parenthesised and may itself contain ')' so the last one is used.
func procState(stat []byte) byte {
	s := string(stat)
	i := strings.LastIndexByte(s, ')')
	if i < 0 || i+2 >= len(s) {
		return 0
	}
	return s[i+2]
}

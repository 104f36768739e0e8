package process

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMaps = `00400000-00401000 r--p 00000000 00:1f 77 /usr/bin/wine64-preloader
140000000-140001000 r--p 00000000 00:2a 1234 /games/Sonic Colors - Ultimate.exe
140001000-141800000 r-xp 00001000 00:2a 1234 /games/Sonic Colors - Ultimate.exe
141800000-142000000 rw-p 01800000 00:2a 1234 /games/Sonic Colors - Ultimate.exe
7f0000000000-7f0000021000 rw-p 00000000 00:00 0
7ffd00000000-7ffd00021000 rw-p 00000000 00:00 0 [stack]
`

func TestParseMapsLine(t *testing.T) {
	m, ok := parseMapsLine("140001000-141800000 r-xp 00001000 00:2a 1234 /games/Sonic Colors - Ultimate.exe")
	require.True(t, ok)
	assert.Equal(t, Address(0x140001000), m.start)
	assert.Equal(t, Address(0x141800000), m.end)
	assert.Equal(t, "/games/Sonic Colors - Ultimate.exe", m.path)
}

func TestParseMapsLineAnonymous(t *testing.T) {
	m, ok := parseMapsLine("7f0000000000-7f0000021000 rw-p 00000000 00:00 0")
	require.True(t, ok)
	assert.Empty(t, m.path)
}

func TestParseMapsLineRejectsGarbage(t *testing.T) {
	for _, line := range []string{"", "nonsense", "zz-10 r--p 0 0 0 /x", "20-10 r--p 0 0 0 /x"} {
		_, ok := parseMapsLine(line)
		assert.False(t, ok, line)
	}
}

func TestFindModuleSpansAllMappings(t *testing.T) {
	mod, err := findModule(strings.NewReader(sampleMaps), "sonic colors - ultimate.exe")
	require.NoError(t, err)
	assert.Equal(t, Address(0x140000000), mod.Base)
	assert.Equal(t, uint64(0x142000000-0x140000000), mod.Size)
	assert.Equal(t, Address(0x142000000), mod.End())
}

func TestFindModuleMissing(t *testing.T) {
	_, err := findModule(strings.NewReader(sampleMaps), "SonicColorsUltimate.exe")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrModuleNotFound))
}

func TestArgv0(t *testing.T) {
	assert.Equal(t, `Z:\games\SonicColorsUltimate.exe`, argv0([]byte("Z:\\games\\SonicColorsUltimate.exe\x00--flag\x00")))
	assert.Equal(t, "plain", argv0([]byte("plain")))
	assert.Empty(t, argv0(nil))
}

func TestProcState(t *testing.T) {
	assert.Equal(t, byte('S'), procState([]byte("4242 (SonicColorsUlti) S 1 4242 4242 0")))
	assert.Equal(t, byte('Z'), procState([]byte("17 (odd) name)) Z 1 17")))
	assert.Equal(t, byte(0), procState([]byte("garbage")))
}

func TestMatchName(t *testing.T) {
	names := []string{"SonicColorsUltimate.exe", "Sonic Colors - Ultimate.exe"}
	tests := []struct {
		exe   string
		want  string
		match bool
	}{
		{`Z:\games\SonicColorsUltimate.exe`, "SonicColorsUltimate.exe", true},
		{"/games/sonic colors - ultimate.exe", "Sonic Colors - Ultimate.exe", true},
		{"SonicColorsUltimate.exe", "SonicColorsUltimate.exe", true},
		{"/usr/bin/wine64", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.exe, func(t *testing.T) {
			got, ok := MatchName(tt.exe, names)
			assert.Equal(t, tt.match, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

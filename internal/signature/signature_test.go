package signature_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/colors-autosplitter/internal/process"
	"github.com/CodexForgeBR/colors-autosplitter/internal/process/processtest"
	"github.com/CodexForgeBR/colors-autosplitter/internal/signature"
)

// ---------------------------------------------------------------------------
// Parse tests
// ---------------------------------------------------------------------------

func TestParse(t *testing.T) {
	sig, err := signature.Parse("76 0C 48 8B 0D")
	require.NoError(t, err)
	assert.Equal(t, 5, sig.Len())
	assert.Equal(t, "76 0C 48 8B 0D", sig.String())
}

func TestParseWildcards(t *testing.T) {
	sig, err := signature.Parse("48 ?? 0d ?")
	require.NoError(t, err)
	assert.Equal(t, "48 ?? 0D ??", sig.String())
}

func TestParseErrors(t *testing.T) {
	tests := []string{"", "   ", "ZZ", "76 100", "?? 76"}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := signature.Parse(in)
			assert.Error(t, err)
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { signature.MustParse("nope") })
	assert.NotPanics(t, func() { signature.MustParse("AA BB") })
}

// ---------------------------------------------------------------------------
// Scan tests
// ---------------------------------------------------------------------------

func TestScan(t *testing.T) {
	sig := signature.MustParse("76 0C 48 8B 0D")
	buf := []byte{0x00, 0x76, 0x0C, 0x48, 0x00, 0x76, 0x0C, 0x48, 0x8B, 0x0D, 0x11}
	assert.Equal(t, 5, sig.Scan(buf))
}

func TestScanWildcard(t *testing.T) {
	sig := signature.MustParse("76 ?? 48")
	assert.Equal(t, 0, sig.Scan([]byte{0x76, 0xEE, 0x48}))
	assert.Equal(t, -1, sig.Scan([]byte{0x76, 0xEE, 0x49}))
}

func TestScanNoMatch(t *testing.T) {
	sig := signature.MustParse("76 0C 48 8B 0D")
	assert.Equal(t, -1, sig.Scan([]byte{0x76, 0x0C, 0x48, 0x8B}))
	assert.Equal(t, -1, sig.Scan(nil))
}

// ---------------------------------------------------------------------------
// ScanRange tests
// ---------------------------------------------------------------------------

func TestScanRangeAcrossChunkBoundary(t *testing.T) {
	sig := signature.MustParse("76 0C 48 8B 0D")
	image := make([]byte, 200*1024)
	// Straddle the first 64 KiB chunk boundary.
	at := 64*1024 - 2
	copy(image[at:], []byte{0x76, 0x0C, 0x48, 0x8B, 0x0D})

	f := processtest.New("game.exe")
	f.Map(0x140000000, image)

	addr, ok := sig.ScanRange(f, 0x140000000, uint64(len(image)))
	require.True(t, ok)
	assert.Equal(t, process.Address(0x140000000+at), addr)
}

func TestScanRangeAtEnd(t *testing.T) {
	sig := signature.MustParse("AA BB")
	image := make([]byte, 100)
	image[98], image[99] = 0xAA, 0xBB

	f := processtest.New("game.exe")
	f.Map(0x1000, image)

	addr, ok := sig.ScanRange(f, 0x1000, 100)
	require.True(t, ok)
	assert.Equal(t, process.Address(0x1000+98), addr)
}

func TestScanRangeSkipsUnreadableChunks(t *testing.T) {
	sig := signature.MustParse("AA BB CC")
	second := make([]byte, 64*1024)
	copy(second[10:], []byte{0xAA, 0xBB, 0xCC})

	f := processtest.New("game.exe")
	// Nothing is mapped in the first chunk; the second is readable.
	f.Map(0x10000+64*1024-2, second)

	addr, ok := sig.ScanRange(f, 0x10000, 3*64*1024)
	require.True(t, ok)
	assert.Equal(t, process.Address(0x10000+64*1024-2+10), addr)
}

func TestScanRangeNotFound(t *testing.T) {
	sig := signature.MustParse("AA BB")
	f := processtest.New("game.exe")
	f.Map(0x1000, make([]byte, 4096))

	_, ok := sig.ScanRange(f, 0x1000, 4096)
	assert.False(t, ok)
}

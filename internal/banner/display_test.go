package banner

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/colors-autosplitter/internal/level"
)

func init() {
	color.NoColor = true
}

func TestPrintStartupBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintStartupBanner(&buf, "v1.2.0", []string{"a.exe", "b.exe"}, 60, 64)
	out := buf.String()

	assert.Contains(t, out, "colors-autosplitter v1.2.0")
	assert.Contains(t, out, "Processes:  a.exe, b.exe")
	assert.Contains(t, out, "Tick rate:  60 Hz")
	assert.Contains(t, out, "Splits:     64/66 levels")
	assert.Equal(t, 3, strings.Count(out, rule))
}

func TestPrintAttachedBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintAttachedBanner(&buf, "sess-1", 4242, "SonicColorsUltimate.exe", "0x7ff6a000")
	out := buf.String()

	assert.Contains(t, out, "Attached to SonicColorsUltimate.exe")
	assert.Contains(t, out, "PID:        4242")
	assert.Contains(t, out, "Root:       0x7ff6a000")
	assert.Contains(t, out, "Session:    sess-1")
}

func TestPrintDetachedBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintDetachedBanner(&buf, "sess-1", "process exited")
	out := buf.String()

	assert.Contains(t, out, "Detached")
	assert.Contains(t, out, "Reason:     process exited")
}

func TestPrintRunSummaryBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintRunSummaryBanner(&buf, 3*time.Minute, []time.Duration{
		65210 * time.Millisecond,
		160020 * time.Millisecond,
	})
	out := buf.String()

	assert.Contains(t, out, "Run ended at 3:00.00 with 2 splits")
	assert.Contains(t, out, "1:05.21")
	assert.Contains(t, out, "(+1:05.21)")
	assert.Contains(t, out, "2:40.02")
	assert.Contains(t, out, "(+1:34.81)")
}

func TestPrintRunSummaryBannerNoSplits(t *testing.T) {
	var buf bytes.Buffer
	PrintRunSummaryBanner(&buf, 0, nil)
	assert.Contains(t, buf.String(), "with 0 splits")
}

func TestPrintLevelList(t *testing.T) {
	splits := map[level.ID]bool{level.TropicalResortAct1: true}

	var buf bytes.Buffer
	PrintLevelList(&buf, splits)
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	assert.Len(t, lines, len(level.All()))
	assert.Contains(t, lines[0], "[✓] TROPICAL_RESORT_1")
	assert.Contains(t, lines[0], "Tropical Resort - Act 1")
	assert.Contains(t, lines[1], "[ ]")
}

func TestPrintShutdownBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintShutdownBanner(&buf, "Interrupted")
	assert.Contains(t, buf.String(), "Shutting down: Interrupted")
}

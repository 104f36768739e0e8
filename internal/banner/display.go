// Package banner prints the framed status blocks shown when the autosplitter
// starts, attaches, loses the game, finishes a run or shuts down.
package banner

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/colors-autosplitter/internal/level"
	"github.com/CodexForgeBR/colors-autosplitter/internal/logging"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	warnColor    = color.New(color.FgYellow, color.Bold).SprintFunc()
)

const rule = "═══════════════════════════════════════════════════"

// PrintStartupBanner displays the startup banner.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  colors-autosplitter v1.2.0
//	═══════════════════════════════════════════════════
//	  Processes:  SonicColorsUltimate.exe
//	  Tick rate:  60 Hz
//	  Splits:     64/66 levels
//	═══════════════════════════════════════════════════
func PrintStartupBanner(w io.Writer, version string, processNames []string, tickRate, splitsEnabled int) {
	sep := headerColor(rule)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, headerColor("  colors-autosplitter "+version))
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  Processes:  %s\n", strings.Join(processNames, ", "))
	fmt.Fprintf(w, "  Tick rate:  %d Hz\n", tickRate)
	fmt.Fprintf(w, "  Splits:     %d/%d levels\n", splitsEnabled, len(level.All()))
	fmt.Fprintln(w, sep)
}

// PrintAttachedBanner displays the game process that was found and the
// session id tagging this attachment in the logs.
func PrintAttachedBanner(w io.Writer, session string, pid int, name, root string) {
	sep := successColor(rule)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, successColor("  ✓ Attached to "+name))
	fmt.Fprintf(w, "  PID:        %d\n", pid)
	fmt.Fprintf(w, "  Root:       %s\n", root)
	fmt.Fprintf(w, "  Session:    %s\n", session)
	fmt.Fprintln(w, sep)
}

// PrintDetachedBanner displays why the process was dropped.
func PrintDetachedBanner(w io.Writer, session string, reason string) {
	sep := warnColor(rule)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, warnColor("  ⚠ Detached"))
	fmt.Fprintf(w, "  Session:    %s\n", session)
	fmt.Fprintf(w, "  Reason:     %s\n", reason)
	fmt.Fprintln(w, sep)
}

// PrintRunSummaryBanner lists the split times of a run that just ended,
// each with the length of its segment.
//
// Example output:
//
//	──────────────────────────────────────────────────
//	  Run ended at 3:12.90 with 3 splits
//	    1   1:05.21   (+1:05.21)
//	    2   2:40.02   (+1:34.81)
//	    3   3:12.90   (+0:32.88)
//	──────────────────────────────────────────────────
func PrintRunSummaryBanner(w io.Writer, final time.Duration, splits []time.Duration) {
	sep := strings.Repeat("─", 50)
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  Run ended at %s with %d splits\n", logging.FormatGameTime(final), len(splits))
	var prev time.Duration
	for i, d := range splits {
		fmt.Fprintf(w, "    %-3d %9s   (+%s)\n", i+1, logging.FormatGameTime(d), logging.FormatGameTime(d-prev))
		prev = d
	}
	fmt.Fprintln(w, sep)
}

// PrintLevelList prints every level with its config key and whether leaving
// it splits.
func PrintLevelList(w io.Writer, splits map[level.ID]bool) {
	for _, id := range level.All() {
		mark := "✓"
		if !splits[id] {
			mark = " "
		}
		fmt.Fprintf(w, "  [%s] %-32s %s\n", mark, id.Key(), id)
	}
}

// PrintShutdownBanner displays the exit reason.
func PrintShutdownBanner(w io.Writer, reason string) {
	sep := headerColor(rule)
	fmt.Fprintln(w, sep)
	fmt.Fprintf(w, "  Shutting down: %s\n", reason)
	fmt.Fprintln(w, sep)
}

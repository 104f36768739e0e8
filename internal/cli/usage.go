package cli

import (
	"github.com/spf13/cobra"
)

const helpTemplate = `colors-autosplitter - Autosplitter for Sonic Colors: Ultimate

Attaches to the running game, reads its memory every tick and drives a split
timer: start, split, reset and in-game time.

USAGE
  colors-autosplitter [flags]

FLAGS
  Target Process:
    --process-name <name>          Executable to attach to, repeatable
                                   (default: SonicColorsUltimate.exe, Sonic Colors - Ultimate.exe)
    --tick-rate <hz>               Ticks per second, 1-1000 (default: 60)

  Configuration:
    --config <path>                Path to additional config file
    -v, --verbose                  Log every tick decision

  Start & Reset:
    --no-start-anypercent          Do not start on the Any% time trial start
    --no-start-sonic-simulator     Do not start on entering Sonic Simulator 1-1
    --no-start-egg-shuttle         Do not start Egg Shuttle runs
    --no-reset-anypercent          Do not reset when an Any% run is abandoned
    --no-reset-egg-shuttle         Do not reset when an Egg Shuttle run is abandoned

  Splits:
    --skip-split <level>           Level key that should not split, repeatable
    --list-levels                  Print every level key and exit

  Help & Version:
    -h, --help                     Show this help text
    --version                      Show version, commit, build date

CONFIG FILES
  KEY=VALUE lines, read in this order (later wins):
    $XDG_CONFIG_HOME/colors-autosplitter/config
    ./.colors-autosplitter
    --config <path>
  Keys: PROCESS_NAMES, TICK_RATE, VERBOSE, START_ANYPERCENT,
  START_SONIC_SIMULATOR, START_EGG_SHUTTLE, RESET_ANYPERCENT,
  RESET_EGG_SHUTTLE, SPLIT_<LEVEL> (see --list-levels)

EXIT CODES
  0   Success              Clean shutdown
  1   Error                Invalid arguments, unreadable config, runtime failure
  2   Unsupported          Process memory access unavailable on this platform
  130 Interrupted          SIGINT or SIGTERM received

EXAMPLES
  # Run with every start, split and reset enabled
  colors-autosplitter

  # Egg Shuttle practice without resets
  colors-autosplitter --no-reset-egg-shuttle

  # Skip the Planet Wisp Act 3 split
  colors-autosplitter --skip-split PLANET_WISP_3
`

// SetCustomHelp configures the cobra command to use our custom help template.
func SetCustomHelp(cmd *cobra.Command) {
	cmd.SetHelpTemplate(helpTemplate)
}

// doom is a terminal roguelike: find the Amulet of Yendor at the bottom of
// the Dungeons of Doom and climb back out with it.
//
// Usage:
//
//	doom [savegame]    - Start a new game, or resume a saved one
//	doom scores        - Show the best finished games
//
// Global flags:
//
//	--config <path>  - Config file (default: search the usual places)
//	--db <path>      - Score database (default: from config)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doom [savegame]",
	Short: "Explore the Dungeons of Doom",
	Long: `Descend through the Dungeons of Doom, find the Amulet of Yendor and
bring it back to the surface before you starve.

Controls:
  h j k l y u b n  - Move (arrow keys and Home/PgUp/End/PgDn also work)
  .                - Rest
  >  <             - Take the stairs down or up
  i                - Inventory
  Q / Ctrl+C       - Quit

Examples:
  doom
  doom --seed 42 --name Ann
  doom ~/rogue.save
  doom scores`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database")

	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagName, "name", "", "Player name")

	rootCmd.AddCommand(scoresCmd)
}

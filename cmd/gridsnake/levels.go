package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels",
	Long:  `Shows the three levels and the hazards each one adds.`,
	Args:  cobra.NoArgs,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Levels:")
	fmt.Fprintln(out)

	fmt.Fprintf(out, "  %-7s  %-9s  %-7s  %s\n", "Level", "Obstacles", "Enemies", "Description")
	fmt.Fprintf(out, "  %-7s  %-9s  %-7s  %s\n", "-----", "---------", "-------", "-----------")

	for lvl := snake.Level1; lvl <= snake.LevelCount; lvl++ {
		fmt.Fprintf(out, "  %-7d  %-9s  %-7s  %s\n", int(lvl), yesNo(lvl.HasObstacles()), yesNo(lvl.HasEnemies()), lvl.Describe())
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'gridsnake play' and pick a level from the menu.")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

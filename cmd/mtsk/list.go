package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mtsk/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available minigames",
	Long:  `Shows a list of all minigames that can be used as session slots.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No minigames available.")
		return
	}

	fmt.Println("Available minigames:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")

	// Print minigames
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	fmt.Println()
	fmt.Println("Run 'mtsk play <id>...' to choose the session slots.")
}

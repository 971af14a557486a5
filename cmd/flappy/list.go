package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available courses",
	Long:  `Shows every course that can be passed to --course.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	courses := registry.List()

	if len(courses) == 0 {
		fmt.Println("No courses available.")
		return
	}

	fmt.Println("Available courses:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	for _, c := range courses {
		maxIDLen = max(maxIDLen, len(c.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, c := range courses {
		fmt.Printf("  %-*s  %s\n", maxIDLen, c.ID, c.Title)
	}

	fmt.Println()
	fmt.Println("Run 'flappy play --course <id>' to fly it.")
}

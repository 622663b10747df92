package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pocket-arcade/internal/registry"
)

var rulesCmd = &cobra.Command{
	Use:   "rules <game>",
	Short: "Show how to play a game",
	Args:  cobra.ExactArgs(1),
	RunE:  runRules,
}

func runRules(cmd *cobra.Command, args []string) error {
	info, ok := registry.Info(args[0])
	if !ok {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", args[0])
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s\n\n", info.Title)
	for _, rule := range info.Rules {
		fmt.Fprintf(out, "  • %s\n", rule)
	}
	return nil
}

package main

import (
	"fmt"
	"strings"

	"calcui/internal/calc"
	"calcui/internal/logger"

	"github.com/spf13/cobra"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <key>...",
		Short: "Press keypad keys without the UI and print the display",
		Long: `eval feeds keypad labels to the calculator in order and prints the final
display. Runs of digits may be written as one argument ("12" is "1" "2").
Quote "*" and "%" for the shell, and put -- before a leading "-" or "+/-".

  calcui eval 5 + 3 =
  calcui eval 12 '*' 4 =`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := calc.New()
			for _, label := range expandLabels(args) {
				next, err := calc.Step(s, label)
				if err != nil {
					logger.Debug("evaluation skipped", "err", err)
				}
				s = next
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), s.Display)
			return err
		},
	}
}

// expandLabels splits number arguments such as "12.5" into one label per
// character; every other argument is a single label.
func expandLabels(args []string) []string {
	labels := make([]string, 0, len(args))
	for _, arg := range args {
		if arg == "" || strings.Trim(arg, "0123456789.") != "" {
			labels = append(labels, arg)
			continue
		}
		for _, r := range arg {
			labels = append(labels, string(r))
		}
	}
	return labels
}

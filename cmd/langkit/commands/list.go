package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List topics and their checks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, topic := range a.registry.Topics() {
				checks, err := a.registry.Select(topic)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, topic)
				for _, c := range checks {
					fmt.Fprintf(out, "  %s\n", c.Name)
				}
			}
			return nil
		},
	}
}

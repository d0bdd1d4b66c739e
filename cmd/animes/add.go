package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [day] [title]",
	Short: "Start tracking an anime",
	Long:  "Add an anime airing on the given day. It starts at episode 0.",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		day := args[0]
		title := strings.Join(args[1:], " ")

		s, err := openSession(true)
		if err != nil {
			return err
		}
		defer s.Close()

		if err := s.controller.AddAnime(day, title); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✅ Added '%s' on %s\n", title, day)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}

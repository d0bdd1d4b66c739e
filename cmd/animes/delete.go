package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [title or id]",
	Aliases: []string{"rm"},
	Short:   "Stop tracking an anime",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(true)
		if err != nil {
			return err
		}
		defer s.Close()

		id, err := resolveAnime(s.controller, args[0])
		if err != nil {
			return err
		}

		if err := s.controller.DeleteAnime(id); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "🗑️  Deleted %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

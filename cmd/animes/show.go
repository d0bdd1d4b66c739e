package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [title or id]",
	Short: "Show one tracked anime",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(false)
		if err != nil {
			return err
		}
		defer s.Close()

		id, err := resolveAnime(s.controller, args[0])
		if err != nil {
			return err
		}

		a := s.controller.GetAnime(id)
		if a == nil {
			return fmt.Errorf("no anime matches %q", args[0])
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Title:    %s\n", a.Title)
		fmt.Fprintf(out, "Day:      %s\n", a.Day)
		fmt.Fprintf(out, "Episodes: %d\n", a.Episodes)
		fmt.Fprintf(out, "ID:       %s\n", a.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

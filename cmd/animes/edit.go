package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [title or id]",
	Short: "Change the day or title of an anime",
	Long:  "Overwrite the day and title of an anime. Flags left out keep their current value; an unknown id is created.",
	Args:  cobra.ExactArgs(1),
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

		var day, title string
		existing := s.controller.GetAnime(id)
		if existing != nil {
			day, title = existing.Day, existing.Title
		}
		if cmd.Flags().Changed("day") {
			day, _ = cmd.Flags().GetString("day")
		}
		if cmd.Flags().Changed("title") {
			title, _ = cmd.Flags().GetString("title")
		}

		if err := s.controller.EditAnime(id, day, title); err != nil {
			return err
		}

		announceCreated(cmd, existing == nil, id)
		fmt.Fprintf(cmd.OutOrStdout(), "✅ Saved '%s' on %s\n", title, day)
		return nil
	},
}

func init() {
	editCmd.Flags().StringP("day", "d", "", "new scheduled day")
	editCmd.Flags().StringP("title", "t", "", "new title")

	rootCmd.AddCommand(editCmd)
}

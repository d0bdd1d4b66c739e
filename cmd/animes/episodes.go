package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var episodesCmd = &cobra.Command{
	Use:   "episodes [title or id] [count]",
	Short: "Set the episode counter",
	Long:  "Set the episode counter to count, or move it by --by (default +1) when count is left out",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		by, _ := cmd.Flags().GetInt("by")

		s, err := openSession(true)
		if err != nil {
			return err
		}
		defer s.Close()

		id, err := resolveAnime(s.controller, args[0])
		if err != nil {
			return err
		}

		existing := s.controller.GetAnime(id)

		var episodes int
		if len(args) == 2 {
			if episodes, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid episode count %q: %w", args[1], err)
			}
		} else {
			if existing != nil {
				episodes = existing.Episodes
			}
			episodes = max(episodes+by, 0)
		}

		if err := s.controller.SetEpisodes(id, episodes); err != nil {
			return err
		}

		announceCreated(cmd, existing == nil, id)
		fmt.Fprintf(cmd.OutOrStdout(), "📺 %s: episode %d\n", args[0], episodes)
		return nil
	},
}

func init() {
	episodesCmd.Flags().Int("by", 1, "amount to move the counter when no count is given")

	rootCmd.AddCommand(episodesCmd)
}

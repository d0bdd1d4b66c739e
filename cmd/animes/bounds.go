package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var boundsCmd = &cobra.Command{
	Use:   "bounds",
	Short: "Show the saved window geometry",
	RunE: func(cmd *cobra.Command, args []string) error {
		reset, _ := cmd.Flags().GetBool("reset")

		s, err := openSession(reset)
		if err != nil {
			return err
		}
		defer s.Close()

		out := cmd.OutOrStdout()
		if reset {
			if err := s.store.ResetBounds(); err != nil {
				return err
			}
			fmt.Fprintln(out, "Window geometry reset, the next launch uses the defaults")
			return nil
		}

		if !s.store.HasBounds() {
			fmt.Fprintf(out, "No geometry saved yet, defaulting to %dx%d cells\n", s.cfg.Window.Width, s.cfg.Window.Height)
			return nil
		}

		b := s.store.Bounds()
		fmt.Fprintf(out, "Size:     %dx%d cells\n", b.Width, b.Height)
		if b.X != nil && b.Y != nil {
			fmt.Fprintf(out, "Position: %d,%d\n", *b.X, *b.Y)
		} else {
			fmt.Fprintln(out, "Position: default")
		}
		return nil
	},
}

func init() {
	boundsCmd.Flags().Bool("reset", false, "forget the saved geometry")

	rootCmd.AddCommand(boundsCmd)
}

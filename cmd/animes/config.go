package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/kerbaras/animes/pkg/logging"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config file: %s\n\n", path)
		fmt.Fprintln(out, "[storage]")
		fmt.Fprintf(out, "backend  = %s\n", cfg.Storage.Backend)
		fmt.Fprintf(out, "data_dir = %s\n\n", cfg.Storage.DataDir)
		fmt.Fprintln(out, "[window]")
		fmt.Fprintf(out, "size     = %dx%d cells\n", cfg.Window.Width, cfg.Window.Height)
		fmt.Fprintf(out, "min size = %dx%d\n\n", cfg.Window.MinWidth, cfg.Window.MinHeight)
		fmt.Fprintln(out, "[log]")
		fmt.Fprintf(out, "level    = %s\n", cfg.Log.Level)
		fmt.Fprintf(out, "format   = %s\n", cfg.Log.Format)
		fmt.Fprintf(out, "file     = %s\n", filepath.Join(cfg.LogDir(), logging.FileName))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

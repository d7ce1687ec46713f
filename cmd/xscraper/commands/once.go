package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(onceCmd)
}

var onceCmd = &cobra.Command{
	Use:   "once <handle>",
	Short: "Scrapes one handle and submits its posts a single time.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return newWorker(cfg).RunOnce(cmd.Context(), args[0])
	},
}

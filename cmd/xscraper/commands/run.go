package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrapes every person known to the backend, forever, once per poll interval.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		err = newWorker(cfg).Run(cmd.Context())
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	},
}

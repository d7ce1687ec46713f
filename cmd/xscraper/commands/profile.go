package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(profileCmd)
}

var profileCmd = &cobra.Command{
	Use:   "profile <handle>",
	Short: "Scrapes the profile header of a handle and prints it as JSON.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		profile, err := newWorker(cfg).ScrapeProfile(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(profile)
	},
}

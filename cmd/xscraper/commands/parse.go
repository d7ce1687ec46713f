package commands

import (
	"fmt"

	"go-xscraper/internal/config"
	"go-xscraper/internal/dom"
	"go-xscraper/internal/scraper"

	"github.com/spf13/cobra"
)

var (
	parseFile     *string
	parsePersonID *int
	parseProfile  *bool
)

func init() {
	parseFile = parseCmd.Flags().String("file", "", "Saved HTML of a rendered profile page.")
	parsePersonID = parseCmd.Flags().Int("person-id", 1, "Owner id stamped on every parsed post.")
	parseProfile = parseCmd.Flags().Bool("profile", false, "Print the profile header instead of the posts.")
	_ = parseCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(parseCmd)
}

// parseCmd runs the extractors against a saved page, without a browser or
// backend. Handy for checking selectors after the site changes its markup.
var parseCmd = &cobra.Command{
	Use:   "parse --file <page.html> [--person-id N] [--profile]",
	Short: "Extracts posts or the profile header from a saved HTML page.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if *parsePersonID <= 0 {
			return fmt.Errorf("--person-id must be positive, got %d", *parsePersonID)
		}

		page, err := dom.StaticPageFromFile(*parseFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", *parseFile, err)
		}

		cfg := config.Default()
		cfg.ClickSettle = 0

		if *parseProfile {
			profile, err := scraper.BuildProfile(page.Root(), cfg.ClickSettle)
			if err != nil {
				return err
			}
			return printJSON(profile)
		}

		posts, err := scraper.NewXScraper(cfg).ScrapeProfilePosts(cmd.Context(), page, "saved", *parsePersonID)
		if err != nil {
			return err
		}
		return printJSON(posts)
	},
}

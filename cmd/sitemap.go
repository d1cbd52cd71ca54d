package cmd

import (
	"time"

	"github.com/athaploo/portfolio/internal/sitemap"
	"github.com/spf13/cobra"
)

var baseURL string

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Print sitemap.xml for static hosting",
	RunE:  runSitemap,
}

func init() {
	sitemapCmd.Flags().StringVar(&baseURL, "base-url", "", "Canonical site URL (defaults to BASE_URL, then the profile)")
	rootCmd.AddCommand(sitemapCmd)
}

func runSitemap(cmd *cobra.Command, args []string) error {
	url := baseURL
	if url == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		url = cfg.BaseURL
		if url == "" {
			p, err := loadContent(cfg)
			if err != nil {
				return err
			}
			url = p.Profile.BaseURL
		}
	}

	out, err := sitemap.Build(url, time.Now())
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

package cmd

import (
	"os"

	"github.com/athaploo/portfolio/internal/config"
	"github.com/athaploo/portfolio/internal/content"
	"github.com/athaploo/portfolio/internal/logger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var contentPath string

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Personal portfolio site and terminal browser",
	Long: `Serves a single-page portfolio with tabbed collections and a detail
modal. Run without a subcommand to start the web server.`,
	RunE:          runServe,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "Portfolio YAML to load instead of the embedded one")
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, errors.Wrap(err, "error loading config")
	}
	if contentPath != "" {
		cfg.ContentPath = contentPath
	}
	logger.Init(os.Stderr, logger.ParseLevel(cfg.LogLevel))
	return cfg, nil
}

func loadContent(cfg *config.Config) (*content.Portfolio, error) {
	p, err := content.Load(cfg.ContentPath)
	if err != nil {
		return nil, errors.Wrap(err, "error loading portfolio")
	}
	return p, nil
}

package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/athaploo/portfolio/internal/logger"
	"github.com/athaploo/portfolio/internal/web"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var port string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port != "" {
		cfg.Port = port
	}

	p, err := loadContent(cfg)
	if err != nil {
		return err
	}

	srv, err := web.New(cfg, p)
	if err != nil {
		return errors.Wrap(err, "error building server")
	}
	if !cfg.SMTP.Enabled() {
		logger.Warn("SMTP credentials not set; contact form will report failures")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting portfolio for %s", p.Profile.Name)
	return srv.Run(ctx, cfg.Addr())
}

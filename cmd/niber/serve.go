package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/niber/pkg/inspect"
	"github.com/vango-dev/niber/pkg/render"
)

func serveCmd(configPath *string) *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "serve <tree-file>",
		Short: "Serve a tree file behind the inspector",
		Long: `Mount a tree file and serve it with the HTTP inspector.

Routes:
  GET  /tree      instance tree as JSON
  GET  /html      live HTML page
  POST /dispatch  {"path": [0, 1], "event": "click"}
  GET  /metrics   Prometheus metrics
  GET  /ws        commit notifications

Examples:
  niber serve app.yaml
  niber serve app.json --port=8080`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Inspect.Port = port
			}
			if host != "" {
				cfg.Inspect.Host = host
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			desc, err := loadTree(args[0])
			if err != nil {
				return err
			}

			s := newSession(cfg, cmd.ErrOrStderr())
			if err := s.runtime.Render(desc, s.container); err != nil {
				return err
			}

			srv := inspect.New(inspect.Config{
				Runtime:    s.runtime,
				Container:  s.container,
				Render:     render.Config{Pretty: cfg.Render.Pretty, Indent: cfg.Render.Indent},
				Title:      args[0],
				Gatherer:   s.registry,
				Logger:     s.logger,
				TracerName: cfg.Tracing.TracerName,
			})

			out := cmd.OutOrStdout()
			printBanner(out)
			success(out, "Serving %s", args[0])
			info(out, "http://%s/html", cfg.InspectAddress())

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx, cfg.InspectAddress())
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from config)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from config)")

	return cmd
}

package main

import (
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-signupform/internal/logging"
	"github.com/goliatone/go-signupform/internal/server"
)

func newServeCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the form over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			orch, err := c.orchestrator()
			if err != nil {
				return err
			}
			srv, err := server.New(ctx,
				server.WithOrchestrator(orch),
				server.WithLogger(logging.Named(c.logger, "http")),
				server.WithRenderer(c.cfg.Render.Renderer),
				server.WithGrace(c.cfg.Server.Grace),
			)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(ctx, c.cfg.Server.Addr)
		},
	}
	cmd.Flags().String("addr", "", "listen address")
	cmd.Flags().Duration("grace", 5*time.Second, "shutdown grace period")
	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	signupform "github.com/goliatone/go-signupform"
)

func newRenderCmd(c *cli) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the empty form to stdout or a file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch, err := c.orchestrator()
			if err != nil {
				return err
			}
			app, err := signupform.New(signupform.WithOrchestrator(orch))
			if err != nil {
				return err
			}
			out, err := app.Render(cmd.Context(), c.cfg.Render.Renderer)
			if err != nil {
				return err
			}
			if output == "" {
				_, err = c.stdout.Write(out)
				return err
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintf(c.stderr, "form written to %s\n", output)
			return nil
		},
	}
	cmd.Flags().String("renderer", "", "renderer to use: vanilla or tui")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

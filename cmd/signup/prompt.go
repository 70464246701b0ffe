package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	signupform "github.com/goliatone/go-signupform"
	"github.com/goliatone/go-signupform/internal/logging"
	"github.com/goliatone/go-signupform/pkg/renderers/tui"
)

func newPromptCmd(c *cli) *cobra.Command {
	var attempts int
	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the form interactively in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			orch, err := c.orchestrator()
			if err != nil {
				return err
			}
			app, err := signupform.New(
				signupform.WithOrchestrator(orch),
				signupform.WithLogger(logging.Named(c.logger, "prompt")),
			)
			if err != nil {
				return err
			}
			session, err := app.Session(cmd.Context(),
				tui.WithPromptDriver(tui.NewSurveyDriver(c.stdout)),
				tui.WithMaxAttempts(attempts),
			)
			if err != nil {
				return err
			}
			if _, err := session.Run(cmd.Context()); err != nil {
				if errors.Is(err, tui.ErrAborted) {
					fmt.Fprintln(c.stderr, "cadastro cancelado")
					return nil
				}
				return err
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&attempts, "max-attempts", 0, "give up after this many rejected submissions (0 means unlimited)")
	return cmd
}

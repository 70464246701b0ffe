package main

import (
	"github.com/spf13/cobra"

	"github.com/goliatone/go-signupform/pkg/openapi"
)

func newSchemaCmd(c *cli) *cobra.Command {
	var serverURL string
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI document describing the form submission",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var options []openapi.Option
			if serverURL != "" {
				options = append(options, openapi.WithServerURL(serverURL))
			}
			data, err := openapi.Marshal(cmd.Context(), options...)
			if err != nil {
				return err
			}
			if _, err := c.stdout.Write(append(data, '\n')); err != nil {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&serverURL, "server-url", "", "server URL advertised in the document")
	return cmd
}

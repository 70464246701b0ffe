package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/goliatone/go-signupform/internal/config"
	"github.com/goliatone/go-signupform/internal/logging"
	"github.com/goliatone/go-signupform/pkg/orchestrator"
	"github.com/goliatone/go-signupform/pkg/uischema"
)

// cli carries state shared by every subcommand once the root has loaded
// configuration.
type cli struct {
	cfgFile string
	stdout  io.Writer
	stderr  io.Writer

	viper  *viper.Viper
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "signup",
		Short:         "Registration form served over HTTP or in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.load(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "config file (default ./signup.yaml when present)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: json or console")
	flags.String("ui-schema", "", "UI schema file overriding the embedded labels")

	root.AddCommand(
		newServeCmd(c),
		newPromptCmd(c),
		newRenderCmd(c),
		newSchemaCmd(c),
	)
	return root
}

var flagKeys = map[string]string{
	"log-level":  "log.level",
	"log-format": "log.format",
	"ui-schema":  "ui.schema",
	"addr":       "server.addr",
	"grace":      "server.grace",
	"renderer":   "render.renderer",
}

func (c *cli) load(cmd *cobra.Command) error {
	v, err := config.NewViper(c.cfgFile)
	if err != nil {
		return err
	}
	for name, key := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	c.viper = v
	c.cfg = cfg
	c.logger = logger
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("config loaded", zap.String("file", used))
	}
	return nil
}

// orchestrator builds the shared orchestrator, loading ui.schema when set.
func (c *cli) orchestrator() (*orchestrator.Orchestrator, error) {
	options := []orchestrator.Option{
		orchestrator.WithDefaultRenderer(c.cfg.Render.Renderer),
	}
	if path := c.cfg.UI.Schema; path != "" {
		doc, err := uischema.LoadFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithUISchema(doc))
		c.logger.Debug("ui schema loaded", zap.String("file", path))
	}
	return orchestrator.New(options...), nil
}

package commands

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	envFile    string
	quiet      bool
	dump       bool

	cfg    Config
	logger *slog.Logger
)

// Execute runs the root command.
func Execute() error {
	return newRoot(os.Stdout, os.Stderr).Execute()
}

func newRoot(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "nestplot",
		Short:        "Fitted-probability plots for nested-dichotomies models",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadDotEnv(envFile); err != nil {
				return err
			}
			level := slog.LevelInfo
			if quiet {
				level = slog.LevelWarn
			}
			logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			cfg = Config{}
			if configPath != "" {
				c, err := LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = c
			}
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the config (optional)")
	root.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "hide advisories about defaulted values")
	root.PersistentFlags().BoolVar(&dump, "dump", false, "dump the resolved axis to stderr")

	root.AddCommand(plotCmd(), tableCmd(), demoCmd())
	return root
}

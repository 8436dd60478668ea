package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nightshift-tools/nightshift/internal/buildinfo"
	"github.com/nightshift-tools/nightshift/internal/config"
	"github.com/nightshift-tools/nightshift/internal/log"
)

func version() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date)
}

// commonFlags are shared by both tools.
type commonFlags struct {
	configPath string
	verbose    bool
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default $"+config.EnvConfig+" or ./"+config.FileName+")")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "enable debug logging")
}

// load resolves the config and builds a logger writing to the command's stderr.
func (f *commonFlags) load(cmd *cobra.Command) (*config.Config, *log.Logger, error) {
	cfg, err := config.Resolve(f.configPath)
	if err != nil {
		return nil, nil, err
	}
	logger := cfg.Logger(cmd.ErrOrStderr(), f.verbose).WithComponent(log.ComponentCLI)
	return cfg, logger, nil
}

func newCommand(use, short string) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		Version: version(),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
}

// Package cli implements the luckysign command line tool.
package cli

import (
	"fmt"
	"os"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/listenupapp/luckysign/internal/di"
	"github.com/listenupapp/luckysign/internal/service"
	"github.com/listenupapp/luckysign/internal/version"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// globalOptions are flags shared by every subcommand.
type globalOptions struct {
	envFile  string
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:          "luckysign",
		Short:        "Draw lucky signs from a birth date and name",
		Version:      version.Version,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "Path to .env file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "error", "Log level (debug, info, warn, error)")

	cmd.AddCommand(
		drawCmd(opts),
		colorsCmd(opts),
		pngCmd(opts),
		paletteCmd(),
		discoverCmd(),
	)

	return cmd
}

// signService resolves the sign service from a container configured for
// one-shot use: no render cache and no mDNS.
func (o *globalOptions) signService() (*service.SignService, func(), error) {
	injector := di.NewContainer([]string{
		"-env-file=" + o.envFile,
		"-log-level=" + o.logLevel,
		"-render-cache=false",
		"-advertise-mdns=false",
	})
	cleanup := func() { _ = injector.Shutdown() }

	if err := di.Services(injector); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("load configuration: %w", err)
	}

	return do.MustInvoke[*service.SignService](injector), cleanup, nil
}

// Package main is packagingctl, a command-line front end to the packaging
// debug workflow. It shares configuration and wiring with the HTTP server, so
// a selection made here is visible to the server when both use a durable
// settings driver.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/go-packaging-service/internal/adapters/settings"
	"github.com/jsamuelsen11/go-packaging-service/internal/bootstrap"
	"github.com/jsamuelsen11/go-packaging-service/internal/platform/config"
	"github.com/jsamuelsen11/go-packaging-service/internal/ports"
)

func main() {
	if err := newRootCmd(openService).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// openService wires the workflow from configuration. The returned cleanup
// closes the settings store and the log file.
func openService(cmd *cobra.Command, opts globalOptions) (ports.PackagingDebugService, func(), error) {
	var cfgOpts []config.Option
	if opts.configDir != "" {
		cfgOpts = append(cfgOpts, config.WithConfigDir(opts.configDir))
	}
	cfg, err := bootstrap.LoadConfig(opts.envFile, cfgOpts...)
	if err != nil {
		return nil, nil, err
	}

	logOut := io.Discard
	if opts.verbose {
		logOut = cmd.ErrOrStderr()
	}
	logger, logFile := bootstrap.NewLogger(cfg.Log, logOut)

	injector := do.New()
	bootstrap.Register(injector, cfg, logger, nil)

	svc, err := do.Invoke[ports.PackagingDebugService](injector)
	if err != nil {
		_ = logFile.Close()
		return nil, nil, fmt.Errorf("wiring workflow: %w", err)
	}
	store := do.MustInvoke[*settings.Resilient](injector)

	cleanup := func() {
		_ = store.Close()
		_ = logFile.Close()
	}
	return svc, cleanup, nil
}

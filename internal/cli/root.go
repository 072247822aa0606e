// Package cli implements the embygo command tree.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmcdole/embygo/internal/config"
	"github.com/mmcdole/embygo/internal/log"
	"github.com/mmcdole/embygo/pkg/emby"
	"github.com/mmcdole/embygo/pkg/emby/transport"
)

// app carries the wired dependencies shared by every command.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	version string

	server *emby.Emby
}

// Execute runs the command tree.
func Execute(version string) {
	if err := NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

// NewRootCmd builds the embygo root command.
func NewRootCmd(version string) *cobra.Command {
	a := &app{version: version}

	var (
		serverURL string
		apiKey    string
		userID    string
		failFast  bool
	)

	root := &cobra.Command{
		Use:           "embygo",
		Short:         "Command-line client for Emby-protocol media servers",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&serverURL, "server", "", "server URL (overrides config)")
	root.PersistentFlags().StringVar(&apiKey, "api-key", "", "api key or access token (overrides config)")
	root.PersistentFlags().StringVar(&userID, "user-id", "", "user id (overrides config)")
	root.PersistentFlags().BoolVar(&failFast, "fail-fast-refresh", false, "abort refresh on the first failing collection")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if serverURL != "" {
			cfg.Server.URL = serverURL
		}
		if apiKey != "" {
			cfg.Server.APIKey = apiKey
		}
		if userID != "" {
			cfg.Server.UserID = userID
		}
		a.cfg = cfg

		logger, err := log.Setup(&cfg.Logging)
		if err != nil {
			logger = log.Null()
		}
		slog.SetDefault(logger)
		a.logger = logger

		if cmd.Name() == "login" {
			return nil
		}
		return a.connect(failFast)
	}

	root.AddCommand(
		loginCommand(a),
		infoCommand(a),
		searchCommand(a),
		lsCommand(a),
		latestCommand(a),
		nextUpCommand(a),
		playlistCommand(a),
		refreshCommand(a),
	)

	return root
}

// connect wires the transport connector and the root aggregate.
func (a *app) connect(failFast bool) error {
	if !a.cfg.IsConfigured() {
		return fmt.Errorf("no server configured; run `embygo login` or pass --server and --api-key")
	}

	conn := transport.NewClient(transport.Config{
		URL:      a.cfg.Server.URL,
		APIKey:   a.cfg.Server.APIKey,
		UserID:   a.cfg.Server.UserID,
		DeviceID: a.cfg.Server.DeviceID,
		Version:  a.version,
		Logger:   a.logger,
	})

	var opts []emby.Option
	if failFast {
		opts = append(opts, emby.WithFailFastRefresh())
	}
	a.server = emby.New(conn, opts...)
	return nil
}

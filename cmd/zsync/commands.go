package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/zotero-sync/internal/app"
	"github.com/MKhiriev/zotero-sync/internal/client"
	"github.com/MKhiriev/zotero-sync/internal/config"
	"github.com/MKhiriev/zotero-sync/internal/logger"
	"github.com/MKhiriev/zotero-sync/internal/tui"
	"github.com/MKhiriev/zotero-sync/models"
)

const (
	flagMetricsFile = "metrics-file"
	flagUsername    = "username"
	flagPassword    = "password"

	envPassword = "ZSYNC_PASSWORD"
)

// errReported marks a failure whose message was already printed.
var errReported = errors.New("reported")

func newRootCmd(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "zsync",
		Short:         "Keep a local replica of your libraries in sync with the server",
		Version:       buildVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)
	root.SetVersionTemplate(tui.RenderBuildInfo("zsync", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)) + "\n")

	config.RegisterFlags(root.PersistentFlags())
	root.PersistentFlags().String(flagMetricsFile, "", "Write sync metrics in the Prometheus text format to this file")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newSyncCmd(),
		newStatusCmd(),
		newWatchCmd(),
	)
	return root
}

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Create an API key for this device and run the first sync",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			creds, err := readCredentials(cmd)
			if err != nil {
				return err
			}
			return withApp(cmd, func(ctx context.Context, a *client.App) error {
				return a.Login(ctx, creds)
			})
		},
	}
	cmd.Flags().StringP(flagUsername, "u", "", "Account name")
	cmd.Flags().String(flagPassword, "", "Account password (default: $"+envPassword+" or stdin)")
	_ = cmd.MarkFlagRequired(flagUsername)
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the API key stored on this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *client.App) error {
				return a.Logout(ctx)
			})
		},
	}
}

func newSyncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Run one sync session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *client.App) error {
				return a.Sync(ctx)
			})
		},
	}
}

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show stored library versions and pending deletions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(ctx context.Context, a *client.App) error {
				return a.Status(ctx)
			})
		},
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Sync now and then on the configured interval until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, func(_ context.Context, a *client.App) error {
				return a.Run()
			})
		},
	}
}

// withApp builds the client from the command flags, runs fn and prints the
// user-facing message of a failure.
func withApp(cmd *cobra.Command, fn func(context.Context, *client.App) error) error {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return err
	}

	log := logger.NewClientLogger("zsync", cfg.Log.File)
	log.Debug().Str("command", cmd.Name()).Msg("starting")

	a, err := client.NewApp(cfg, cmd.OutOrStdout(), log)
	if err != nil {
		log.Err(err).Msg("init client app error")
		return err
	}
	defer a.Close()

	a.MetricsFile, _ = cmd.Flags().GetString(flagMetricsFile)

	if err := fn(cmd.Context(), a); err != nil {
		log.Err(err).Str("command", cmd.Name()).Msg("command failed")
		fmt.Fprintln(cmd.ErrOrStderr(), "zsync: "+app.UserMessage(err))
		return errReported
	}
	return nil
}

func readCredentials(cmd *cobra.Command) (models.Credentials, error) {
	username, _ := cmd.Flags().GetString(flagUsername)
	password, _ := cmd.Flags().GetString(flagPassword)

	if password == "" {
		password = os.Getenv(envPassword)
	}
	if password == "" {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return models.Credentials{}, fmt.Errorf("read password: %w", err)
		}
		password = strings.TrimRight(line, "\r\n")
	}
	if password == "" {
		return models.Credentials{}, errors.New("a password is required")
	}

	return models.Credentials{Username: username, Password: password}, nil
}

// Package cli is hotelctl, the terminal front end over the shared list controllers.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"BE-HOTEL-ADMIN/app/catalog"
	"BE-HOTEL-ADMIN/app/remote"
	"BE-HOTEL-ADMIN/app/storage"
	"BE-HOTEL-ADMIN/config"
	"BE-HOTEL-ADMIN/pkg/database"

	"github.com/spf13/cobra"
)

type App struct {
	ConfigPath string
	Backend    string
	Format     string

	cfg        *config.Config
	store      storage.Store
	closeStore func() error
	now        func() time.Time
}

func NewRootCmd() *cobra.Command {
	return newRootCmd(&App{})
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hotelctl",
		Short:         "Hotel admin dashboard from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Log in against the mock API, then work on its data
  hotelctl login --username admin --password 'Admin#123'
  hotelctl --backend rest rooms list --sort price --desc

  # Work offline on the local snapshot
  hotelctl rooms add --name 207 --capacity 30 --category kelas --price 1000000
  hotelctl bookings rm 3 --yes
`),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if err := app.setup(cmd.Context()); err != nil {
			return writeErr(cmd, err)
		}
		return nil
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closeStore == nil {
			return nil
		}
		return app.closeStore()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("HOTELCTL_CONFIG", "config.yaml"), "Path to the YAML config file")
	cmd.PersistentFlags().StringVar(&app.Backend, "backend", envOr("HOTELCTL_BACKEND", string(catalog.ModeLocal)), "Data backend (local|static|rest)")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("HOTELCTL_FORMAT", formatTable), "Output format (table|json)")

	cmd.AddCommand(newLoginCmd(app))
	cmd.AddCommand(newLogoutCmd(app))
	cmd.AddCommand(newRoomsCmd(app))
	cmd.AddCommand(newUsersCmd(app))
	cmd.AddCommand(newBookingsCmd(app))

	return cmd
}

// setup loads configuration and opens the snapshot store unless a test injected them.
func (app *App) setup(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if app.now == nil {
		app.now = time.Now
	}
	if app.cfg == nil {
		cfg, err := config.LoadConfig(app.ConfigPath)
		if err != nil {
			return err
		}
		app.cfg = cfg
	}
	if app.store != nil {
		return nil
	}
	cfg := *app.cfg
	// the cache has to survive between invocations
	if cfg.Storage.Driver == "" || cfg.Storage.Driver == "memory" {
		cfg.Storage.Driver = "file"
	}
	store, closeFn, err := database.OpenStore(ctx, &cfg)
	if err != nil {
		return err
	}
	app.store, app.closeStore = store, closeFn
	return nil
}

func (app *App) remoteOptions() remote.Options {
	return remote.Options{
		BaseURL:        app.cfg.Client.BaseURL,
		Timeout:        app.cfg.Client.Timeout,
		Token:          app.sessionToken,
		OnUnauthorized: app.clearSession,
	}
}

// openCatalog builds and loads the controllers for the selected backend.
func (app *App) openCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	mode, err := catalog.ParseMode(app.Backend)
	if err != nil {
		return nil, err
	}
	cat := catalog.New(catalog.Options{
		Mode:   mode,
		Store:  app.store,
		Remote: app.remoteOptions(),
		Sources: map[string]string{
			catalog.SlotRooms:    app.cfg.Client.RoomsSource,
			catalog.SlotUsers:    app.cfg.Client.UsersSource,
			catalog.SlotBookings: app.cfg.Client.BookingsSource,
		},
		Debounce: app.cfg.Client.Debounce,
		PageSize: app.cfg.Client.PageSize,
		Now:      app.now,
		Logger:   log.New(cmd.ErrOrStderr(), "hotelctl: ", 0),
	})
	if _, err := cat.Load(cmd.Context()); err != nil {
		return nil, err
	}
	return cat, nil
}

// withCatalog runs fn on a loaded catalog and flushes pending snapshot writes before returning.
func withCatalog(cmd *cobra.Command, app *App, fn func(cat *catalog.Catalog) error) error {
	cat, err := app.openCatalog(cmd)
	if err != nil {
		return writeErr(cmd, err)
	}
	err = fn(cat)
	if cerr := cat.Close(); cerr != nil {
		err = errors.Join(err, cerr)
	}
	if err != nil {
		return writeErr(cmd, err)
	}
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}

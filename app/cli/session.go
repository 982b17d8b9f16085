package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"BE-HOTEL-ADMIN/app/remote"
	"BE-HOTEL-ADMIN/app/storage"

	"github.com/spf13/cobra"
)

const slotSession = "session"

type session struct {
	Username     string `json:"username,omitempty"`
	AccessToken  string `json:"accessToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

func (app *App) loadSession(ctx context.Context) (session, error) {
	var s session
	data, err := app.store.Load(ctx, slotSession)
	if errors.Is(err, storage.ErrNotFound) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return session{}, fmt.Errorf("decode session: %w", err)
	}
	return s, nil
}

func (app *App) saveSession(ctx context.Context, s session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return app.store.Save(ctx, slotSession, data)
}

func (app *App) sessionToken() string {
	s, err := app.loadSession(context.Background())
	if err != nil {
		return ""
	}
	return s.AccessToken
}

// clearSession drops the stored tokens after the API refused them.
func (app *App) clearSession() {
	if err := app.saveSession(context.Background(), session{}); err != nil {
		log.Printf("[WARN] clear session: %v", err)
	}
}

func newLoginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the mock API and keep the token for --backend rest",
		RunE: func(cmd *cobra.Command, args []string) error {
			pair, err := remote.Login(cmd.Context(), app.remoteOptions(), username, password)
			if err != nil {
				return writeErr(cmd, fmt.Errorf("login failed: %w", err))
			}
			if err := app.saveSession(cmd.Context(), session{Username: username, AccessToken: pair.AccessToken, RefreshToken: pair.RefreshToken}); err != nil {
				return writeErr(cmd, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", username)
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "Username or email")
	cmd.Flags().StringVar(&password, "password", "", "Password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.saveSession(cmd.Context(), session{}); err != nil {
				return writeErr(cmd, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

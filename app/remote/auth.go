package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"BE-HOTEL-ADMIN/app/entities"
)

// Login posts credentials to {base}/login and returns the issued token pair.
// Bad credentials come back as listing.ErrUnauthorized.
func Login(ctx context.Context, opts Options, username, password string) (entities.TokenPair, error) {
	opts.Token = nil
	opts.OnUnauthorized = nil
	b := NewRESTBackend[entities.TokenPair](opts)

	payload, err := json.Marshal(entities.Login{Username: username, Password: password})
	if err != nil {
		return entities.TokenPair{}, err
	}
	body, err := b.do(ctx, http.MethodPost, strings.TrimRight(opts.BaseURL, "/")+"/login", payload)
	if err != nil {
		return entities.TokenPair{}, err
	}
	pair, err := decodeRecord[entities.TokenPair](body)
	if err != nil {
		return entities.TokenPair{}, fmt.Errorf("decode login response: %w", err)
	}
	if pair.AccessToken == "" {
		return entities.TokenPair{}, fmt.Errorf("login response carries no access token")
	}
	return pair, nil
}

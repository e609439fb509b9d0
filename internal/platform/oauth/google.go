// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package oauth talks to third-party identity providers.
//
// Only Google is supported. The client exchanges a provider access token for
// the caller's profile; the provider's own verification is trusted.
package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// ErrInvalidToken is returned when the provider rejects the access token.
var ErrInvalidToken = errors.New("oauth: provider rejected access token")

// GoogleUser is the subset of the userinfo response the shop consumes.
type GoogleUser struct {
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
	Picture       string `json:"picture"`
}

// GoogleClient fetches profiles from the Google userinfo endpoint.
type GoogleClient struct {
	httpClient  *http.Client
	userInfoURL string
}

// NewGoogleClient creates a client against userInfoURL.
func NewGoogleClient(httpClient *http.Client, userInfoURL string) *GoogleClient {
	return &GoogleClient{httpClient: httpClient, userInfoURL: userInfoURL}
}

/*
FetchUserInfo resolves an access token into a profile.

Returns:
  - *GoogleUser: The provider profile (email lower-cased)
  - error: ErrInvalidToken on 401/403, otherwise transport or decoding failures
*/
func (client *GoogleClient) FetchUserInfo(ctx context.Context, accessToken string) (*GoogleUser, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, client.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("oauth_google_request_build_failed: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+accessToken)
	request.Header.Set("Accept", "application/json")

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("oauth_google_request_failed: %w", err)
	}
	defer response.Body.Close()

	switch {
	case response.StatusCode == http.StatusUnauthorized || response.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidToken
	case response.StatusCode != http.StatusOK:
		_, _ = io.Copy(io.Discard, response.Body)
		return nil, fmt.Errorf("oauth_google_unexpected_status: %d", response.StatusCode)
	}

	profile := &GoogleUser{}
	if err := json.NewDecoder(io.LimitReader(response.Body, 1<<20)).Decode(profile); err != nil {
		return nil, fmt.Errorf("oauth_google_decode_failed: %w", err)
	}

	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))
	if profile.Email == "" {
		return nil, fmt.Errorf("oauth_google_profile_missing_email")
	}

	return profile, nil
}

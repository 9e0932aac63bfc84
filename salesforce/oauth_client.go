package salesforce

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
)

const (
	ProductionLoginURL = "https://login.salesforce.com"
	SandboxLoginURL    = "https://test.salesforce.com"
	TokenPath          = "/services/oauth2/token"

	// Salesforce does not report an expiry for refreshed access tokens.
	DefaultTokenLifetime = 15 * time.Minute

	AuthenticationFailureMessage = "Failed to authenticate with Salesforce"
	MissingInstanceURLMessage    = "token response did not include an instance_url"
)

type Credentials struct {
	LoginURL     string
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Session is an authenticated handle: every request made through HTTPClient carries a
// bearer token that is refreshed from the refresh token when it lapses.
type Session struct {
	HTTPClient  *http.Client
	InstanceURL string
}

func LoginURL(isSandbox bool) string {
	if isSandbox {
		return SandboxLoginURL
	}
	return ProductionLoginURL
}

func Login(ctx context.Context, baseClient *http.Client, creds Credentials) (*Session, error) {
	conf := &oauth2.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  strings.TrimSuffix(creds.LoginURL, "/") + TokenPath,
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, baseClient)

	tokenSource := oauth2.ReuseTokenSource(nil, &refreshTokenSource{
		ctx:          ctx,
		conf:         conf,
		refreshToken: creds.RefreshToken,
		lifetime:     DefaultTokenLifetime,
	})

	token, err := tokenSource.Token()
	if err != nil {
		return nil, errors.Wrap(err, AuthenticationFailureMessage)
	}

	instanceURL, _ := token.Extra("instance_url").(string)
	if instanceURL == "" {
		return nil, errors.Wrap(errors.New(MissingInstanceURLMessage), AuthenticationFailureMessage)
	}

	return &Session{
		HTTPClient:  oauth2.NewClient(ctx, tokenSource),
		InstanceURL: strings.TrimSuffix(instanceURL, "/"),
	}, nil
}

type refreshTokenSource struct {
	ctx          context.Context
	conf         *oauth2.Config
	refreshToken string
	lifetime     time.Duration
}

func (s *refreshTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.conf.TokenSource(s.ctx, &oauth2.Token{RefreshToken: s.refreshToken}).Token()
	if err != nil {
		return nil, err
	}
	if token.Expiry.IsZero() {
		token.Expiry = time.Now().Add(s.lifetime)
	}
	return token, nil
}

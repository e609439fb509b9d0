// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing, OTP
// generation, authorization predicates) from the domain logic. The
// [TokenService] is injected into the Application layer and the middleware.
package sec

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// minSecretLength is the shortest HMAC key accepted at startup.
const minSecretLength = 32

// ErrInvalidToken is returned by [TokenService.VerifyToken] for any token that
// fails signature, format, issuer or expiry checks.
var ErrInvalidToken = errors.New("sec: invalid token")

// AuthClaims represents the claim set embedded inside a session token.
//
// # Durable key
//
// UserID is optional on the wire. Tokens minted before the key was embedded
// carry only the email; the middleware resolves the key against the credential
// store before any handler sees the claims.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID          string `json:"uid,omitempty"`
	Email           string `json:"eml"`
	FirstName       string `json:"fnm,omitempty"`
	LastName        string `json:"lnm,omitempty"`
	Role            string `json:"rol"`
	IsBlocked       bool   `json:"blk"`
	IsEmailVerified bool   `json:"ver"`
	Image           string `json:"img,omitempty"`
}

// FullName joins the name parts, falling back to the email's local part.
func (claims *AuthClaims) FullName() string {
	switch {
	case claims.FirstName != "" && claims.LastName != "":
		return claims.FirstName + " " + claims.LastName
	case claims.FirstName != "":
		return claims.FirstName
	case claims.LastName != "":
		return claims.LastName
	}
	localPart, _, _ := strings.Cut(claims.Email, "@")
	return localPart
}

// TokenService handles generation and verification of HS256 session tokens.
type TokenService struct {
	secret     []byte
	issuer     string
	timeToLive time.Duration
}

// NewTokenService creates a new TokenService.
//
// A zero timeToLive issues tokens without an expiry claim.
func NewTokenService(secret, issuer string, timeToLive time.Duration) (*TokenService, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("sec: signing secret must be at least %d bytes", minSecretLength)
	}
	if timeToLive < 0 {
		return nil, fmt.Errorf("sec: token ttl must not be negative")
	}

	return &TokenService{
		secret:     []byte(secret),
		issuer:     issuer,
		timeToLive: timeToLive,
	}, nil
}

// Issue signs a copy of claims. Registered claims (iss, sub, iat, exp) are
// overwritten by the service.
func (service *TokenService) Issue(claims AuthClaims) (string, error) {
	currentTime := time.Now()

	claims.RegisteredClaims = jwt.RegisteredClaims{
		Subject:  claims.UserID,
		Issuer:   service.issuer,
		IssuedAt: jwt.NewNumericDate(currentTime),
	}
	if service.timeToLive > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(currentTime.Add(service.timeToLive))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	}, jwt.WithIssuer(service.issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

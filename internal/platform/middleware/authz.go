// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/constants"
	"github.com/taibuivan/microcctv/internal/platform/ctxutil"
	"github.com/taibuivan/microcctv/internal/platform/respond"
	"github.com/taibuivan/microcctv/internal/platform/sec"
)

// TokenVerifier defines the interface needed to verify tokens in middleware.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// IdentityResolver looks up the current account state for an email.
//
// The returned claims carry the durable key plus the authoritative role,
// blocked and verified flags. A missing account must surface as an
// [apperr.AppError] with code NOT_FOUND.
type IdentityResolver interface {
	ResolveIdentity(ctx context.Context, email string) (*sec.AuthClaims, error)
}

// Authenticate turns an Authorization header into resolved caller claims.
//
// # Flow
//  1. No header: the request proceeds as anonymous.
//  2. Anything but 'Bearer <token>', or a token failing verification: 401.
//  3. A verified token without a durable key is resolved by email through
//     [IdentityResolver]. A missing account is 401; a lookup failure is 500.
//  4. The resolved [*sec.AuthClaims] are injected into the request context.
//
// Resolution happens in memory only; no token is re-issued.
func Authenticate(verifier TokenVerifier, resolver IdentityResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// 1. Anonymous access
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// 2. Format validation and signature check
			tokenString, ok := strings.CutPrefix(authHeader, constants.BearerScheme)
			if !ok || strings.TrimSpace(tokenString) == "" {
				respond.Error(writer, request, apperr.Unauthorized("Unauthorized"))
				return
			}

			claims, err := verifier.VerifyToken(strings.TrimSpace(tokenString))
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Unauthorized"))
				return
			}

			// 3. Durable key resolution for email-only tokens
			if claims.UserID == "" {
				if claims.Email == "" {
					respond.Error(writer, request, apperr.Unauthorized("Unauthorized"))
					return
				}

				current, err := resolver.ResolveIdentity(request.Context(), claims.Email)
				if err != nil {
					if apperr.HasCode(err, apperr.CodeNotFound) {
						respond.Error(writer, request, apperr.Unauthorized("Unauthorized: user not found"))
						return
					}
					respond.Error(writer, request, apperr.InternalMessage("Failed to resolve identity", err))
					return
				}

				claims.UserID = current.UserID
				claims.Role = current.Role
				claims.IsBlocked = current.IsBlocked
				claims.IsEmailVerified = current.IsEmailVerified
				if current.Image != "" {
					claims.Image = current.Image
				}
			}

			// 4. Context injection
			recordUserID(writer, claims.UserID)
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks anonymous requests with 401.
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Unauthorized"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireAdmin blocks anonymous callers with 401 and non-admins with 403.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireRole()(next)
}

// RequireRole blocks requests unless the caller holds one of the allowed
// roles. Admins always pass, so RequireRole() with no arguments is admin-only.
//
// It implies [RequireAuth]; mounting both is unnecessary.
func RequireRole(allowed ...sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := ctxutil.GetAuthUser(request.Context())

			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Unauthorized"))
				return
			}

			if !sec.HasRole(claims, allowed...) {
				respond.Error(writer, request, apperr.Forbidden("Forbidden"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

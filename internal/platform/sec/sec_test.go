// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/microcctv/internal/platform/sec"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTokenService(t *testing.T, ttl time.Duration) *sec.TokenService {
	t.Helper()
	service, err := sec.NewTokenService(testSecret, "microcctv.test", ttl)
	require.NoError(t, err)
	return service
}

/*
TestHashPassword_RoundTrip verifies a digest only accepts its own secret.
*/
func TestHashPassword_RoundTrip(t *testing.T) {
	secrets := []string{"hunter22", "correct horse battery staple", "ünïcødé-pässwörd", " "}

	for _, secret := range secrets {
		digest, err := sec.HashPassword(secret)
		require.NoError(t, err)

		assert.NotEqual(t, secret, digest)
		assert.True(t, sec.CheckPasswordHash(secret, digest))
		assert.False(t, sec.CheckPasswordHash(secret+"x", digest))
	}
}

/*
TestHashPassword_Salted verifies two digests of the same secret differ.
*/
func TestHashPassword_Salted(t *testing.T) {
	first, err := sec.HashPassword("same-secret")
	require.NoError(t, err)
	second, err := sec.HashPassword("same-secret")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

/*
TestCheckPasswordHash_MalformedDigest verifies corrupted records yield false.
*/
func TestCheckPasswordHash_MalformedDigest(t *testing.T) {
	assert.False(t, sec.CheckPasswordHash("secret", ""))
	assert.False(t, sec.CheckPasswordHash("secret", "not-a-bcrypt-digest"))
	assert.False(t, sec.CheckPasswordHash("secret", "$2a$10$short"))
}

func TestNewTokenService_RejectsShortSecret(t *testing.T) {
	_, err := sec.NewTokenService("short", "issuer", time.Hour)
	assert.Error(t, err)
}

/*
TestTokenService_RoundTrip verifies verify(issue(C)) == C for the custom claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service := newTokenService(t, time.Hour)

	claims := sec.AuthClaims{
		UserID:          "0192f1c4-aaaa-7bbb-8ccc-000000000001",
		Email:           "nimal@example.com",
		FirstName:       "Nimal",
		LastName:        "Perera",
		Role:            string(sec.RoleCustomer),
		IsBlocked:       false,
		IsEmailVerified: true,
		Image:           "https://cdn.example.com/a.png",
	}

	token, err := service.Issue(claims)
	require.NoError(t, err)

	decoded, err := service.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, claims.UserID, decoded.UserID)
	assert.Equal(t, claims.Email, decoded.Email)
	assert.Equal(t, claims.FirstName, decoded.FirstName)
	assert.Equal(t, claims.LastName, decoded.LastName)
	assert.Equal(t, claims.Role, decoded.Role)
	assert.Equal(t, claims.IsBlocked, decoded.IsBlocked)
	assert.Equal(t, claims.IsEmailVerified, decoded.IsEmailVerified)
	assert.Equal(t, claims.Image, decoded.Image)
	assert.Equal(t, claims.UserID, decoded.Subject)
	require.NotNil(t, decoded.ExpiresAt)
}

/*
TestTokenService_NoExpiry verifies a zero TTL issues tokens without exp.
*/
func TestTokenService_NoExpiry(t *testing.T) {
	service := newTokenService(t, 0)

	token, err := service.Issue(sec.AuthClaims{Email: "legacy@example.com", Role: "customer"})
	require.NoError(t, err)

	decoded, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Nil(t, decoded.ExpiresAt)
	assert.Empty(t, decoded.UserID)
}

/*
TestTokenService_Tampered verifies any signature or payload change is rejected.
*/
func TestTokenService_Tampered(t *testing.T) {
	service := newTokenService(t, time.Hour)

	token, err := service.Issue(sec.AuthClaims{UserID: "u1", Email: "a@b.c", Role: "customer"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip the last signature character.
	signature := []byte(parts[2])
	if signature[len(signature)-1] == 'A' {
		signature[len(signature)-1] = 'B'
	} else {
		signature[len(signature)-1] = 'A'
	}
	tamperedSignature := parts[0] + "." + parts[1] + "." + string(signature)

	// Re-sign the payload with another key.
	other, err := sec.NewTokenService("ffffffffffffffffffffffffffffffff", "microcctv.test", time.Hour)
	require.NoError(t, err)
	foreign, err := other.Issue(sec.AuthClaims{UserID: "u1", Email: "a@b.c", Role: "admin"})
	require.NoError(t, err)

	for name, candidate := range map[string]string{
		"signature": tamperedSignature,
		"foreign":   foreign,
		"garbage":   "not.a.token",
		"empty":     "",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := service.VerifyToken(candidate)
			require.Error(t, err)
			assert.True(t, errors.Is(err, sec.ErrInvalidToken))
		})
	}
}

/*
TestTokenService_Expired verifies expired tokens fail verification.
*/
func TestTokenService_Expired(t *testing.T) {
	service := newTokenService(t, time.Nanosecond)

	token, err := service.Issue(sec.AuthClaims{UserID: "u1", Email: "a@b.c", Role: "customer"})
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	_, err = service.VerifyToken(token)
	assert.ErrorIs(t, err, sec.ErrInvalidToken)
}

/*
TestGate_IsAdmin covers absent, customer, admin and superadmin claims.
*/
func TestGate_IsAdmin(t *testing.T) {
	tests := []struct {
		name   string
		claims *sec.AuthClaims
		want   bool
	}{
		{"anonymous", nil, false},
		{"customer", &sec.AuthClaims{Role: "customer"}, false},
		{"technician", &sec.AuthClaims{Role: "technician"}, false},
		{"unknown_role", &sec.AuthClaims{Role: "root"}, false},
		{"admin", &sec.AuthClaims{Role: "admin"}, true},
		{"superadmin", &sec.AuthClaims{Role: "superadmin"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sec.IsAdmin(tt.claims))
		})
	}
}

func TestGate_IsAuthenticated(t *testing.T) {
	assert.False(t, sec.IsAuthenticated(nil))
	assert.True(t, sec.IsAuthenticated(&sec.AuthClaims{}))
}

func TestGate_IsOwnerOrAdmin(t *testing.T) {
	owner := &sec.AuthClaims{UserID: "u1", Role: "customer"}
	stranger := &sec.AuthClaims{UserID: "u2", Role: "customer"}
	admin := &sec.AuthClaims{UserID: "u3", Role: "admin"}
	keyless := &sec.AuthClaims{Role: "customer"}

	assert.True(t, sec.IsOwnerOrAdmin(owner, "u1"))
	assert.False(t, sec.IsOwnerOrAdmin(stranger, "u1"))
	assert.True(t, sec.IsOwnerOrAdmin(admin, "u1"))
	assert.False(t, sec.IsOwnerOrAdmin(nil, "u1"))
	assert.False(t, sec.IsOwnerOrAdmin(keyless, ""))
}

func TestGate_HasRole(t *testing.T) {
	technician := &sec.AuthClaims{Role: "technician"}
	customer := &sec.AuthClaims{Role: "customer"}
	admin := &sec.AuthClaims{Role: "admin"}

	assert.True(t, sec.HasRole(technician, sec.RoleTechnician))
	assert.False(t, sec.HasRole(customer, sec.RoleTechnician))
	assert.True(t, sec.HasRole(admin, sec.RoleTechnician))
	assert.False(t, sec.HasRole(nil, sec.RoleCustomer))
}

func TestParseRole(t *testing.T) {
	role, ok := sec.ParseRole("supplier")
	assert.True(t, ok)
	assert.Equal(t, sec.RoleSupplier, role)

	_, ok = sec.ParseRole("Admin")
	assert.False(t, ok)
}

/*
TestGenerateOTP verifies every code is a six-digit number in range.
*/
func TestGenerateOTP(t *testing.T) {
	for i := 0; i < 500; i++ {
		code, err := sec.GenerateOTP()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, sec.OTPMin)
		assert.LessOrEqual(t, n, sec.OTPMax)
	}
}

func TestEqualCodes(t *testing.T) {
	assert.True(t, sec.EqualCodes("123456", "123456"))
	assert.False(t, sec.EqualCodes("123456", "123457"))
	assert.False(t, sec.EqualCodes("123456", ""))
}

func TestAuthClaims_FullName(t *testing.T) {
	assert.Equal(t, "Nimal Perera", (&sec.AuthClaims{FirstName: "Nimal", LastName: "Perera"}).FullName())
	assert.Equal(t, "Nimal", (&sec.AuthClaims{FirstName: "Nimal"}).FullName())
	assert.Equal(t, "kamal", (&sec.AuthClaims{Email: "kamal@example.com"}).FullName())
}

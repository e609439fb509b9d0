// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/constants"
	"github.com/taibuivan/microcctv/internal/platform/mail"
	"github.com/taibuivan/microcctv/internal/platform/oauth"
	"github.com/taibuivan/microcctv/internal/platform/sec"
	"github.com/taibuivan/microcctv/internal/platform/validate"
	"github.com/taibuivan/microcctv/pkg/pointer"
	"github.com/taibuivan/microcctv/pkg/uuid"
)

// # Contracts & Types

// TokenIssuer signs session claim sets.
type TokenIssuer interface {
	Issue(claims sec.AuthClaims) (string, error)
}

// ProfileFetcher exchanges a federated access token for a provider profile.
type ProfileFetcher interface {
	FetchUserInfo(ctx context.Context, accessToken string) (*oauth.GoogleUser, error)
}

// adminRoles are the roles listed and deleted through the admin endpoints.
var adminRoles = []sec.UserRole{sec.RoleAdmin, sec.RoleSuperAdmin}

// Service implements customer and admin identity use cases.
type Service struct {
	users  UserRepository
	otps   OTPRepository
	tokens TokenIssuer
	mailer mail.Sender
	google ProfileFetcher
	otpTTL time.Duration
	logger *slog.Logger
}

// NewService constructs a new [Service] with necessary dependencies.
//
// otpTTL of zero keeps reset codes valid until superseded or redeemed.
func NewService(
	users UserRepository,
	otps OTPRepository,
	tokens TokenIssuer,
	mailer mail.Sender,
	google ProfileFetcher,
	otpTTL time.Duration,
	logger *slog.Logger,
) *Service {
	return &Service{
		users:  users,
		otps:   otps,
		tokens: tokens,
		mailer: mailer,
		google: google,
		otpTTL: otpTTL,
		logger: logger,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// # Registration Flow

// SignupInput holds the data required to create a customer account.
type SignupInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
	Phone     string
}

/*
Signup validates, hashes, and persists a new customer account.

Parameters:
  - context: context.Context
  - input: SignupInput

Returns:
  - *User: Created entity
  - error: InvalidPayload, Conflict (if the email exists) or storage errors
*/
func (service *Service) Signup(context context.Context, input SignupInput) (*User, error) {
	input.Email = normalizeEmail(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldEmail, input.Email).
		Email(FieldEmail, input.Email).
		Required(FieldFirstName, input.FirstName).
		MaxLen(FieldFirstName, input.FirstName, maxNameLength).
		Required(FieldLastName, input.LastName).
		MaxLen(FieldLastName, input.LastName, maxNameLength).
		MinLen(FieldPassword, input.Password, constants.MinPasswordLength)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		phone = DefaultPhone
	}

	user := &User{
		ID:           uuid.New(),
		Email:        input.Email,
		PasswordHash: hashedPassword,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Role:         sec.RoleCustomer,
		Phone:        phone,
	}

	if err := service.users.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "user_registered", slog.String("user_id", user.ID))
	return user, nil
}

// # Authentication Flow

/*
Login verifies a password and issues a session token.

Description: A missing account is 404, a wrong password is 403, and a blocked
account is 403 even with the right password.

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - *Session: Token, role and account
  - error: NotFound, Forbidden or internal failures
*/
func (service *Service) Login(context context.Context, email, password string) (*Session, error) {
	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Required(FieldPassword, password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	user, err := service.users.FindByEmail(context, normalizeEmail(email))
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, apperr.NotFoundMessage("User not found")
		}
		return nil, err
	}

	if !sec.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperr.Forbidden("Incorrect password")
	}

	if user.IsBlocked {
		return nil, apperr.Forbidden("Account is blocked")
	}

	return service.issueSession(context, user)
}

/*
GoogleLogin signs in with a Google access token, creating a customer account
on first use.

Description: New accounts get a random, hashed secret that nobody knows, so
password login stays impossible until a reset. Blocked accounts are refused.

Returns:
  - *Session: Token, role and account
  - error: Unauthorized (rejected token), Forbidden (blocked) or Internal (provider failure)
*/
func (service *Service) GoogleLogin(context context.Context, accessToken string) (*Session, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, validate.RequiredError(FieldToken, "Token is required")
	}

	profile, err := service.google.FetchUserInfo(context, accessToken)
	if err != nil {
		if errors.Is(err, oauth.ErrInvalidToken) {
			return nil, apperr.Unauthorized("Invalid Google token")
		}
		return nil, apperr.InternalMessage("Google login failed", err)
	}

	user, err := service.users.FindByEmail(context, profile.Email)
	switch {
	case err == nil:
	case apperr.HasCode(err, apperr.CodeNotFound):
		user, err = service.createFederatedUser(context, profile)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if user.IsBlocked {
		return nil, apperr.Forbidden("Account is blocked")
	}

	return service.issueSession(context, user)
}

func (service *Service) createFederatedUser(context context.Context, profile *oauth.GoogleUser) (*User, error) {
	secret, err := sec.GenerateSecureToken(googleSecretBytes)
	if err != nil {
		return nil, fmt.Errorf("auth_service_secret_failed: %w", err)
	}

	hashedSecret, err := sec.HashPassword(secret)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		ID:              uuid.New(),
		Email:           profile.Email,
		PasswordHash:    hashedSecret,
		FirstName:       profile.GivenName,
		LastName:        profile.FamilyName,
		Role:            sec.RoleCustomer,
		Phone:           DefaultPhone,
		Image:           profile.Picture,
		IsEmailVerified: true,
	}

	if err := service.users.Create(context, user); err != nil {
		// Another request created the same account first.
		if apperr.HasCode(err, apperr.CodeConflict) {
			return service.users.FindByEmail(context, profile.Email)
		}
		return nil, err
	}

	service.logger.InfoContext(context, "user_registered_google", slog.String("user_id", user.ID))
	return user, nil
}

func (service *Service) issueSession(context context.Context, user *User) (*Session, error) {
	token, err := service.tokens.Issue(user.Claims())
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}

	service.logger.InfoContext(context, "user_logged_in",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
	)

	return &Session{Token: token, Role: user.Role, User: user}, nil
}

// # Password Reset Flow

/*
SendOTP issues a fresh reset code for email and mails it.

Description: Every previous code for the email is invalidated first. When
delivery fails the stored code stays valid, but the caller is told it failed.
The response does not reveal whether an account exists.

Returns:
  - error: InvalidPayload, or Internal when storage or delivery fails
*/
func (service *Service) SendOTP(context context.Context, email string) error {
	email = normalizeEmail(email)

	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Email(FieldEmail, email)
	if err := validator.Err(); err != nil {
		return err
	}

	code, err := sec.GenerateOTP()
	if err != nil {
		return apperr.InternalMessage("Failed to generate OTP", err)
	}

	if err := service.otps.Replace(context, email, code, service.otpTTL); err != nil {
		return apperr.InternalMessage("Failed to store OTP", err)
	}

	if err := service.mailer.Send(context, mail.ResetCodeMessage(email, code)); err != nil {
		return apperr.InternalMessage("Failed to send OTP", err)
	}

	service.logger.InfoContext(context, "otp_issued")
	return nil
}

// ResetPasswordInput carries a code redemption.
type ResetPasswordInput struct {
	Email       string
	OTP         string
	NewPassword string
}

/*
ResetPassword redeems a reset code and replaces the account secret.

Description: A wrong, superseded or expired code is reported the same way
("Invalid OTP"). On success every code for the email is deleted.

Returns:
  - error: NotFound (invalid code or unknown user), InvalidPayload or storage errors
*/
func (service *Service) ResetPassword(context context.Context, input ResetPasswordInput) error {
	email := normalizeEmail(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).
		Required(FieldOTP, input.OTP).
		MinLen(FieldNewPassword, input.NewPassword, constants.MinPasswordLength)
	if err := validator.Err(); err != nil {
		return err
	}

	record, err := service.otps.Find(context, email)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return apperr.NotFoundMessage("Invalid OTP")
		}
		return apperr.InternalMessage("Failed to reset password", err)
	}

	if !sec.EqualCodes(record.Code, strings.TrimSpace(input.OTP)) {
		return apperr.NotFoundMessage("Invalid OTP")
	}

	if _, err := service.users.FindByEmail(context, email); err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return apperr.NotFoundMessage("User not found")
		}
		return err
	}

	hashedPassword, err := sec.HashPassword(input.NewPassword)
	if err != nil {
		return fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	if err := service.users.UpdatePassword(context, email, hashedPassword); err != nil {
		return err
	}

	if err := service.otps.DeleteAll(context, email); err != nil {
		return apperr.InternalMessage("Failed to reset password", err)
	}

	service.logger.InfoContext(context, "password_reset")
	return nil
}

// # Profile

/*
Profile returns the caller's account.

Description: Customer and admin callers are read from the credential store.
Staff callers live in their own tables, so their profile is built from the
resolved claims.
*/
func (service *Service) Profile(context context.Context, claims *sec.AuthClaims) (*User, error) {
	role, _ := sec.ParseRole(claims.Role)
	if role != sec.RoleCustomer && !role.IsAdmin() {
		return &User{
			ID:              claims.UserID,
			Email:           claims.Email,
			FirstName:       claims.FirstName,
			LastName:        claims.LastName,
			Role:            role,
			Image:           claims.Image,
			IsBlocked:       claims.IsBlocked,
			IsEmailVerified: claims.IsEmailVerified,
		}, nil
	}

	return service.users.FindByID(context, claims.UserID)
}

// UpdateProfileInput holds the editable profile fields. Nil leaves a field unchanged.
type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Image     *string
}

// UpdateProfile edits the caller's own profile.
func (service *Service) UpdateProfile(context context.Context, userID string, input UpdateProfileInput) (*User, error) {
	user, err := service.users.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	user.FirstName = strings.TrimSpace(pointer.Fallback(input.FirstName, user.FirstName))
	user.LastName = strings.TrimSpace(pointer.Fallback(input.LastName, user.LastName))
	user.Phone = strings.TrimSpace(pointer.Fallback(input.Phone, user.Phone))
	user.Image = strings.TrimSpace(pointer.Fallback(input.Image, user.Image))

	validator := &validate.Validator{}
	validator.Required(FieldFirstName, user.FirstName).
		MaxLen(FieldFirstName, user.FirstName, maxNameLength).
		Required(FieldLastName, user.LastName).
		MaxLen(FieldLastName, user.LastName, maxNameLength)
	if user.Image != "" {
		validator.URL(FieldImage, user.Image)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.users.UpdateProfile(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Administration

// CreateAdminInput provisions an admin account. An empty Password makes the
// service generate a temporary one.
type CreateAdminInput struct {
	Email     string
	FirstName string
	LastName  string
	Password  string
}

/*
CreateAdmin provisions a new email-verified admin account.

Returns:
  - *ProvisionedAccount: The account plus the generated password, if any
  - error: InvalidPayload, Conflict or storage errors
*/
func (service *Service) CreateAdmin(context context.Context, input CreateAdminInput) (*ProvisionedAccount, error) {
	email := normalizeEmail(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Email(FieldEmail, email)
	if input.Password != "" {
		validator.MinLen(FieldPassword, input.Password, constants.MinPasswordLength)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	password := input.Password
	temporary := ""
	if password == "" {
		generated, err := sec.GenerateSecureToken(constants.TemporaryPasswordBytes)
		if err != nil {
			return nil, fmt.Errorf("auth_service_secret_failed: %w", err)
		}
		password, temporary = generated, generated
	}

	hashedPassword, err := sec.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	firstName := strings.TrimSpace(input.FirstName)
	if firstName == "" {
		firstName = "Admin"
	}

	user := &User{
		ID:              uuid.New(),
		Email:           email,
		PasswordHash:    hashedPassword,
		FirstName:       firstName,
		LastName:        strings.TrimSpace(input.LastName),
		Role:            sec.RoleAdmin,
		Phone:           DefaultPhone,
		IsEmailVerified: true,
	}

	if err := service.users.Create(context, user); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "admin_created", slog.String("user_id", user.ID))
	return &ProvisionedAccount{User: user, TemporaryPassword: temporary}, nil
}

// ListAdmins returns one page of admin-equivalent accounts and the total count.
func (service *Service) ListAdmins(context context.Context, limit, offset int) ([]*User, int, error) {
	return service.users.ListByRoles(context, adminRoles, limit, offset)
}

// DeleteAdmin removes an admin account. Admins cannot delete themselves.
func (service *Service) DeleteAdmin(context context.Context, callerEmail, email string) error {
	email = normalizeEmail(email)
	if email == normalizeEmail(callerEmail) {
		return apperr.Forbidden("You cannot delete your own account")
	}

	if err := service.users.DeleteByEmailAndRoles(context, email, adminRoles); err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return apperr.NotFoundMessage("Admin not found")
		}
		return err
	}

	service.logger.InfoContext(context, "admin_deleted")
	return nil
}

// ListCustomers returns one page of customer accounts and the total count.
func (service *Service) ListCustomers(context context.Context, limit, offset int) ([]*User, int, error) {
	return service.users.ListByRoles(context, []sec.UserRole{sec.RoleCustomer}, limit, offset)
}

// SetBlocked blocks or unblocks an account. Admins cannot block themselves.
func (service *Service) SetBlocked(context context.Context, callerEmail, email string, blocked bool) (*User, error) {
	email = normalizeEmail(email)
	if blocked && email == normalizeEmail(callerEmail) {
		return nil, apperr.Forbidden("You cannot block your own account")
	}

	user, err := service.users.SetBlocked(context, email, blocked)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "user_block_changed",
		slog.String("user_id", user.ID),
		slog.Bool("blocked", blocked),
	)
	return user, nil
}

// # Claim Resolution

/*
ResolveIdentity returns the current claim-relevant state of the account with
email. It backs the request-time resolver for tokens lacking a durable key.

Returns:
  - *sec.AuthClaims: Durable key plus current role, block, verified and image
  - error: apperr NOT_FOUND when no account exists
*/
func (service *Service) ResolveIdentity(context context.Context, email string) (*sec.AuthClaims, error) {
	user, err := service.users.FindByEmail(context, normalizeEmail(email))
	if err != nil {
		return nil, err
	}

	claims := user.Claims()
	return &claims, nil
}

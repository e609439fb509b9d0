// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package staff

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/taibuivan/microcctv/internal/platform/apperr"
	"github.com/taibuivan/microcctv/internal/platform/constants"
	"github.com/taibuivan/microcctv/internal/platform/mail"
	"github.com/taibuivan/microcctv/internal/platform/sec"
	"github.com/taibuivan/microcctv/internal/platform/validate"
	"github.com/taibuivan/microcctv/pkg/pointer"
	"github.com/taibuivan/microcctv/pkg/uuid"
)

// TokenIssuer signs session claim sets.
type TokenIssuer interface {
	Issue(claims sec.AuthClaims) (string, error)
}

// Service implements account management and login for one staff kind.
type Service struct {
	kind    Kind
	members Repository
	tokens  TokenIssuer
	mailer  mail.Sender
	logger  *slog.Logger
}

// NewService constructs a [Service] bound to kind.
func NewService(kind Kind, members Repository, tokens TokenIssuer, mailer mail.Sender, logger *slog.Logger) *Service {
	return &Service{
		kind:    kind,
		members: members,
		tokens:  tokens,
		mailer:  mailer,
		logger:  logger.With(slog.String("staff_kind", string(kind))),
	}
}

// Kind reports which staff table the service manages.
func (service *Service) Kind() Kind {
	return service.kind
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (service *Service) notFound() error {
	return apperr.NotFoundMessage(service.kind.Resource() + " not found")
}

// # Provisioning

// CreateInput describes a new staff account. An empty Password makes the
// service generate a temporary one.
type CreateInput struct {
	Email      string
	FirstName  string
	LastName   string
	Password   string
	Phone      string
	Salary     string
	Speciality string
	Item       string
}

/*
Create provisions a staff account.

Returns:
  - *Provisioned: The member plus the generated password, if any
  - error: InvalidPayload, Conflict or storage errors
*/
func (service *Service) Create(context context.Context, input CreateInput) (*Provisioned, error) {
	email := normalizeEmail(input.Email)

	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).
		Email(FieldEmail, email).
		Required(FieldFirstName, input.FirstName).
		Required(FieldLastName, input.LastName)
	if input.Password != "" {
		validator.MinLen(FieldPassword, input.Password, constants.MinPasswordLength)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	password, temporary := input.Password, ""
	if password == "" {
		generated, err := sec.GenerateSecureToken(constants.TemporaryPasswordBytes)
		if err != nil {
			return nil, fmt.Errorf("staff_service_secret_failed: %w", err)
		}
		password, temporary = generated, generated
	}

	hashedPassword, err := sec.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("staff_service_hash_failed: %w", err)
	}

	phone := strings.TrimSpace(input.Phone)
	if phone == "" {
		phone = DefaultPhone
	}

	member := &Member{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Phone:        phone,
		Salary:       strings.TrimSpace(input.Salary),
		Speciality:   strings.TrimSpace(input.Speciality),
		Item:         strings.TrimSpace(input.Item),
		IsActive:     true,
	}

	if err := service.members.Create(context, member); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "staff_created", slog.String("staff_id", member.ID))
	return &Provisioned{Member: member, TemporaryPassword: temporary}, nil
}

// # Queries

// List returns one page of members and the total count.
func (service *Service) List(context context.Context, limit, offset int) ([]*Member, int, error) {
	return service.members.List(context, limit, offset)
}

// Get returns the member with email.
func (service *Service) Get(context context.Context, email string) (*Member, error) {
	member, err := service.members.FindByEmail(context, normalizeEmail(email))
	if apperr.HasCode(err, apperr.CodeNotFound) {
		return nil, service.notFound()
	}
	return member, err
}

// # Mutations

// UpdateInput carries a partial update. Nil fields stay unchanged.
type UpdateInput struct {
	FirstName  *string
	LastName   *string
	Password   *string
	Phone      *string
	Salary     *string
	Speciality *string
	Item       *string
	IsActive   *bool
}

/*
Update applies a partial update to the member with email.

Description: A supplied password is re-hashed before it is stored.
*/
func (service *Service) Update(context context.Context, email string, input UpdateInput) (*Member, error) {
	member, err := service.Get(context, email)
	if err != nil {
		return nil, err
	}

	member.FirstName = strings.TrimSpace(pointer.Fallback(input.FirstName, member.FirstName))
	member.LastName = strings.TrimSpace(pointer.Fallback(input.LastName, member.LastName))
	member.Phone = strings.TrimSpace(pointer.Fallback(input.Phone, member.Phone))
	member.Salary = strings.TrimSpace(pointer.Fallback(input.Salary, member.Salary))
	member.Speciality = strings.TrimSpace(pointer.Fallback(input.Speciality, member.Speciality))
	member.Item = strings.TrimSpace(pointer.Fallback(input.Item, member.Item))
	member.IsActive = pointer.Fallback(input.IsActive, member.IsActive)

	validator := &validate.Validator{}
	validator.Required(FieldFirstName, member.FirstName).Required(FieldLastName, member.LastName)
	if input.Password != nil {
		validator.MinLen(FieldPassword, *input.Password, constants.MinPasswordLength)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if input.Password != nil {
		hashedPassword, err := sec.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("staff_service_hash_failed: %w", err)
		}
		member.PasswordHash = hashedPassword
	}

	if err := service.members.Update(context, member); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "staff_updated", slog.String("staff_id", member.ID))
	return member, nil
}

// Delete removes the member with email.
func (service *Service) Delete(context context.Context, email string) error {
	err := service.members.DeleteByEmail(context, normalizeEmail(email))
	if apperr.HasCode(err, apperr.CodeNotFound) {
		return service.notFound()
	}
	if err != nil {
		return err
	}

	service.logger.InfoContext(context, "staff_deleted")
	return nil
}

// # Authentication

/*
Login verifies a staff password and issues a session token whose role is the
service kind and whose durable key is the member id.

Returns:
  - *Session: Token, role and member
  - error: NotFound (unknown email), Forbidden (wrong password or inactive)
*/
func (service *Service) Login(context context.Context, email, password string) (*Session, error) {
	validator := &validate.Validator{}
	validator.Required(FieldEmail, email).Required(FieldPassword, password)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	member, err := service.Get(context, email)
	if err != nil {
		return nil, err
	}

	if !sec.CheckPasswordHash(password, member.PasswordHash) {
		return nil, apperr.Forbidden("Incorrect password")
	}

	if !member.IsActive {
		return nil, apperr.Forbidden("Account is inactive")
	}

	token, err := service.tokens.Issue(member.Claims(service.kind))
	if err != nil {
		return nil, fmt.Errorf("staff_service_token_generation_failed: %w", err)
	}

	service.logger.InfoContext(context, "staff_logged_in", slog.String("staff_id", member.ID))
	return &Session{Token: token, Role: service.kind.Role(), Member: member}, nil
}

// # Supplier Requests

// PurchaseInput is a stock request sent to a supplier.
type PurchaseInput struct {
	Item         string
	Quantity     int
	RequiredDate string
}

/*
RequestPurchase emails a purchase request to the supplier with email.

Returns:
  - error: NotFound, InvalidPayload, or Internal when delivery fails
*/
func (service *Service) RequestPurchase(context context.Context, email string, input PurchaseInput) error {
	validator := &validate.Validator{}
	validator.Required(FieldItem, input.Item).
		Custom(FieldQuantity, input.Quantity < 1, "Quantity must be at least 1").
		Date(FieldRequiredDate, input.RequiredDate)
	if err := validator.Err(); err != nil {
		return err
	}

	supplier, err := service.Get(context, email)
	if err != nil {
		return err
	}

	message := mail.PurchaseRequestMessage(supplier.Email, mail.PurchaseRequest{
		SupplierName: strings.TrimSpace(supplier.FirstName + " " + supplier.LastName),
		Item:         strings.TrimSpace(input.Item),
		Quantity:     input.Quantity,
		RequiredDate: input.RequiredDate,
	})

	if err := service.mailer.Send(context, message); err != nil {
		return apperr.InternalMessage("Failed to send purchase request", err)
	}

	service.logger.InfoContext(context, "purchase_request_sent", slog.String("staff_id", supplier.ID))
	return nil
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/microcctv/internal/platform/middleware"
	requestutil "github.com/taibuivan/microcctv/internal/platform/request"
	"github.com/taibuivan/microcctv/internal/platform/respond"
	"github.com/taibuivan/microcctv/pkg/pagination"
)

// # Definitions & Constructors

// Handler implements the /users HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns a [chi.Router] configured with identity routes.
//
// # Endpoints
//   - POST /               : Customer signup.
//   - POST /login          : Password login.
//   - POST /googlelogin    : Google login.
//   - POST /send-otp       : Issue a reset code.
//   - POST /reset-password : Redeem a reset code.
//   - GET  /, PUT /        : Own profile (authenticated).
//   - Admin: /admins, /create-admin, /customers, /{email}/block
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public endpoints
	router.Post("/", handler.signup)
	router.Post("/login", handler.login)
	router.Post("/googlelogin", handler.googleLogin)
	router.Post("/send-otp", handler.sendOTP)
	router.Post("/reset-password", handler.resetPassword)

	// Authenticated endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/", handler.profile)
		r.Put("/", handler.updateProfile)
	})

	// Admin endpoints
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/admins", handler.listAdmins)
		r.Delete("/admins/{email}", handler.deleteAdmin)
		r.Post("/create-admin", handler.createAdmin)
		r.Get("/customers", handler.listCustomers)
		r.Put("/{email}/block", handler.setBlocked)
	})

	return router
}

// # Request Payloads

type signupRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type googleLoginRequest struct {
	Token string `json:"token"`
}

type sendOTPRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Email       string `json:"email"`
	NewPassword string                 `json:"newPassword"`
	OTP         requestutil.NumberText `json:"otp"`
}

type updateProfileRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Image     *string `json:"image"`
}

type createAdminRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

type blockRequest struct {
	IsBlock bool `json:"isBlock"`
}

/*
signup handles customer registration.

POST /users

Response:
  - 200: User: Created account
  - 400: Validation failure
  - 409: Email already registered
*/
func (handler *Handler) signup(writer http.ResponseWriter, request *http.Request) {
	var input signupRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Signup(request.Context(), SignupInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

/*
login authenticates with email and password.

POST /users/login

Response:
  - 200: Session: token and role
  - 403: Wrong password or blocked account
  - 404: Unknown email
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

// googleLogin handles POST /users/googlelogin.
func (handler *Handler) googleLogin(writer http.ResponseWriter, request *http.Request) {
	var input googleLoginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.authService.GoogleLogin(request.Context(), input.Token)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

// sendOTP handles POST /users/send-otp.
func (handler *Handler) sendOTP(writer http.ResponseWriter, request *http.Request) {
	var input sendOTPRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.authService.SendOTP(request.Context(), input.Email); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "OTP sent successfully")
}

/*
resetPassword redeems a reset code.

POST /users/reset-password

Response:
  - 200: Password replaced
  - 404: Invalid OTP or unknown user
*/
func (handler *Handler) resetPassword(writer http.ResponseWriter, request *http.Request) {
	var input resetPasswordRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err := handler.authService.ResetPassword(request.Context(), ResetPasswordInput{
		Email:       input.Email,
		OTP:         string(input.OTP),
		NewPassword: input.NewPassword,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Password reset successfully")
}

// profile handles GET /users.
func (handler *Handler) profile(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Profile(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// updateProfile handles PUT /users.
func (handler *Handler) updateProfile(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateProfileRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.UpdateProfile(request.Context(), userID, UpdateProfileInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

// listAdmins handles GET /users/admins?page=&limit=.
func (handler *Handler) listAdmins(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	admins, total, err := handler.authService.ListAdmins(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, admins, pagination.NewMeta(params.Page, params.Limit, total))
}

// deleteAdmin handles DELETE /users/admins/{email}.
func (handler *Handler) deleteAdmin(writer http.ResponseWriter, request *http.Request) {
	claims := requestutil.Claims(request)

	if err := handler.authService.DeleteAdmin(request.Context(), claims.Email, requestutil.Param(request, "email")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Admin deleted successfully")
}

/*
createAdmin provisions an admin account.

POST /users/create-admin

Response:
  - 201: ProvisionedAccount: the account and, when generated, its temporary password
*/
func (handler *Handler) createAdmin(writer http.ResponseWriter, request *http.Request) {
	var input createAdminRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	account, err := handler.authService.CreateAdmin(request.Context(), CreateAdminInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, account)
}

// listCustomers handles GET /users/customers?page=&limit=.
func (handler *Handler) listCustomers(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	customers, total, err := handler.authService.ListCustomers(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, customers, pagination.NewMeta(params.Page, params.Limit, total))
}

// setBlocked handles PUT /users/{email}/block.
func (handler *Handler) setBlocked(writer http.ResponseWriter, request *http.Request) {
	var input blockRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	claims := requestutil.Claims(request)
	user, err := handler.authService.SetBlocked(request.Context(), claims.Email, requestutil.Param(request, "email"), input.IsBlock)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, user)
}

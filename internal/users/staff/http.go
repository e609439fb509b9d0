// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package staff

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/microcctv/internal/platform/middleware"
	requestutil "github.com/taibuivan/microcctv/internal/platform/request"
	"github.com/taibuivan/microcctv/internal/platform/respond"
	"github.com/taibuivan/microcctv/pkg/pagination"
)

// Handler serves the /{kind}s endpoints for one staff kind.
type Handler struct {
	staffService *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{staffService: service}
}

// Routes returns the staff router. Everything except login is admin only.
// The purchase request route is mounted for suppliers only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/login", handler.login)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Post("/", handler.create)
		r.Get("/", handler.list)
		r.Get("/{email}", handler.get)
		r.Put("/{email}", handler.update)
		r.Delete("/{email}", handler.delete)

		if handler.staffService.Kind() == KindSupplier {
			r.Post("/{email}/request", handler.requestPurchase)
		}
	})

	return router
}

type createRequest struct {
	Email      string `json:"email"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	Salary     string `json:"salary"`
	Speciality string `json:"speciality"`
	Item       string `json:"item"`
}

type updateRequest struct {
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Password   *string `json:"password"`
	Phone      *string `json:"phone"`
	Salary     *string `json:"salary"`
	Speciality *string `json:"speciality"`
	Item       *string `json:"item"`
	IsActive   *bool   `json:"isActive"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type purchaseRequest struct {
	Item         string `json:"item"`
	Quantity     int    `json:"quantity"`
	RequiredDate string `json:"requiredDate"`
}

/*
login authenticates a staff member.

POST /{kind}s/login

Response:
  - 200: Session: token whose role is the staff kind
  - 403: Wrong password or inactive account
  - 404: Unknown email
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	session, err := handler.staffService.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, session)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	provisioned, err := handler.staffService.Create(request.Context(), CreateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, provisioned)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	members, total, err := handler.staffService.List(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, members, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	member, err := handler.staffService.Get(request.Context(), requestutil.Param(request, "email"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, member)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	member, err := handler.staffService.Update(request.Context(), requestutil.Param(request, "email"), UpdateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, member)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.staffService.Delete(request.Context(), requestutil.Param(request, "email")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, handler.staffService.Kind().Resource()+" deleted successfully")
}

/*
requestPurchase emails a stock request to a supplier.

POST /suppliers/{email}/request

Response:
  - 200: Request sent
  - 404: Unknown supplier
  - 500: Delivery failed
*/
func (handler *Handler) requestPurchase(writer http.ResponseWriter, request *http.Request) {
	var input purchaseRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err := handler.staffService.RequestPurchase(request.Context(), requestutil.Param(request, "email"), PurchaseInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Purchase request sent")
}

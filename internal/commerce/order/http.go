// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package order

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/microcctv/internal/platform/middleware"
	requestutil "github.com/taibuivan/microcctv/internal/platform/request"
	"github.com/taibuivan/microcctv/internal/platform/respond"
	"github.com/taibuivan/microcctv/pkg/pagination"
	"github.com/taibuivan/microcctv/pkg/slice"
)

// Handler implements the /orders HTTP endpoints.
type Handler struct {
	orderService *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{orderService: service}
}

// Routes returns a [chi.Router] configured with order routes.
//
// # Endpoints
//   - POST /               : Checkout (auth)
//   - GET  /{page}/{limit} : Order history, every order for admins (auth)
//   - GET  /{orderId}      : One order (owner or admin)
//   - PUT  /{orderId}      : Update status and notes (admin)
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Post("/", handler.create)
	router.Get("/{page}/{limit}", handler.list)
	router.Get("/{orderId}", handler.get)
	router.With(middleware.RequireAdmin).Put("/{orderId}", handler.update)

	return router
}

type itemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"qty"`
}

type createRequest struct {
	Items   []itemRequest `json:"items"`
	Address string        `json:"address"`
	Phone   string        `json:"phone"`
	Notes   string        `json:"notes"`
}

type updateRequest struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

/*
create places an order from the listed products.

POST /orders

Request: {"items": [{productId, qty}], "address": string, "phone": string}

Response:
  - 201: Order: the placed order, numbered
  - 400: Invalid payload or unknown product id
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	items := slice.Map(input.Items, func(item itemRequest) ItemInput {
		return ItemInput(item)
	})

	order, err := handler.orderService.Create(request.Context(), claims, CreateInput{
		Items:   items,
		Address: input.Address,
		Phone:   input.Phone,
		Notes:   input.Notes,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, order)
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	page, err := requestutil.PositiveIntParam(request, "page")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	limit, err := requestutil.PositiveIntParam(request, "limit")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	limit = min(limit, pagination.MaxLimit)

	params := pagination.Params{Page: page, Limit: limit}
	orders, total, err := handler.orderService.List(request.Context(), claims, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, orders, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	order, err := handler.orderService.Get(request.Context(), claims, requestutil.Param(request, "orderId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, order)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	order, err := handler.orderService.Update(request.Context(), requestutil.Param(request, "orderId"), UpdateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, order)
}

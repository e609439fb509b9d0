// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/microcctv/internal/platform/middleware"
	requestutil "github.com/taibuivan/microcctv/internal/platform/request"
	"github.com/taibuivan/microcctv/internal/platform/respond"
	"github.com/taibuivan/microcctv/pkg/pagination"
)

// Handler implements the /reviews HTTP endpoints.
type Handler struct {
	reviewService *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{reviewService: service}
}

// Routes returns a [chi.Router] configured with review routes.
//
// # Endpoints
//   - GET    /?productId= : Reviews of one product (public)
//   - GET    /all         : Every review (admin)
//   - POST   /            : Create or replace own review (auth)
//   - DELETE /{id}        : Delete (author or admin)
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listByProduct)
	router.With(middleware.RequireAdmin).Get("/all", handler.listAll)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Post("/", handler.post)
		r.Delete("/{id}", handler.delete)
	})

	return router
}

type postRequest struct {
	ProductID string `json:"productId"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

func (handler *Handler) listByProduct(writer http.ResponseWriter, request *http.Request) {
	reviews, err := handler.reviewService.ListByProduct(request.Context(), request.URL.Query().Get("productId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, reviews)
}

func (handler *Handler) listAll(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	reviews, total, err := handler.reviewService.ListAll(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, reviews, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
post creates the caller's review of a product, or replaces it.

POST /reviews

Response:
  - 200: Review
  - 400: Rating outside 1..5 or comment empty / too long
  - 404: Unknown product
*/
func (handler *Handler) post(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if _, err := requestutil.RequiredUserID(request); err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input postRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.reviewService.Post(request.Context(), claims, PostInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, review)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.reviewService.Delete(request.Context(), claims, requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Review deleted successfully")
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/microcctv/internal/platform/ctxutil"
	"github.com/taibuivan/microcctv/internal/platform/middleware"
	requestutil "github.com/taibuivan/microcctv/internal/platform/request"
	"github.com/taibuivan/microcctv/internal/platform/respond"
	"github.com/taibuivan/microcctv/pkg/pagination"
)

// Handler implements the /products HTTP endpoints.
type Handler struct {
	productService *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{productService: service}
}

// Routes returns a [chi.Router] configured with product routes.
//
// # Endpoints
//   - GET    /                  : Paginated catalog
//   - GET    /search/{query}    : Name or alternative name search
//   - GET    /{productId}       : Single product
//   - POST   /                  : Create (admin)
//   - PUT    /{productId}       : Update (admin)
//   - DELETE /{productId}       : Delete (admin)
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Get("/search/{query}", handler.search)
	router.Get("/{productId}", handler.get)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Post("/", handler.create)
		r.Put("/{productId}", handler.update)
		r.Delete("/{productId}", handler.delete)
	})

	return router
}

type createRequest struct {
	ProductID   string   `json:"productId"`
	Name        string   `json:"name"`
	AltNames    NameList `json:"altNames"`
	LabelPrice  float64  `json:"labelPrice"`
	Price       float64  `json:"price"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Stock       *int     `json:"stock"`
	Category    string   `json:"category"`
	IsAvailable *bool    `json:"isAvailable"`
}

type updateRequest struct {
	Name        *string   `json:"name"`
	AltNames    *NameList `json:"altNames"`
	LabelPrice  *float64  `json:"labelPrice"`
	Price       *float64  `json:"price"`
	Images      *[]string `json:"images"`
	Description *string   `json:"description"`
	Stock       *int      `json:"stock"`
	Category    *string   `json:"category"`
	IsAvailable *bool     `json:"isAvailable"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	isAdmin := ctxutil.IsAdmin(request.Context())

	products, total, err := handler.productService.List(request.Context(), "", isAdmin, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, products, pagination.NewMeta(params.Page, params.Limit, total))
}

/*
search matches products by name or alternative name, ignoring case.

GET /products/search/{query}?page=&limit=
*/
func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)
	isAdmin := ctxutil.IsAdmin(request.Context())

	products, total, err := handler.productService.List(request.Context(), requestutil.Param(request, "query"), isAdmin, params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, products, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.productService.Get(request.Context(), requestutil.Param(request, "productId"), ctxutil.IsAdmin(request.Context()))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, product)
}

/*
create adds a product to the catalog.

POST /products

Request: altNames may be an array or a comma-separated string.

Response:
  - 201: Product
  - 400: Validation failure
  - 409: productId already used
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.productService.Create(request.Context(), CreateInput{
		ProductID:   input.ProductID,
		Name:        input.Name,
		AltNames:    input.AltNames,
		LabelPrice:  input.LabelPrice,
		Price:       input.Price,
		Images:      input.Images,
		Description: input.Description,
		Stock:       input.Stock,
		Category:    input.Category,
		IsAvailable: input.IsAvailable,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, product)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	update := UpdateInput{
		Name:        input.Name,
		LabelPrice:  input.LabelPrice,
		Price:       input.Price,
		Images:      input.Images,
		Description: input.Description,
		Stock:       input.Stock,
		Category:    input.Category,
		IsAvailable: input.IsAvailable,
	}
	if input.AltNames != nil {
		names := []string(*input.AltNames)
		update.AltNames = &names
	}

	product, err := handler.productService.Update(request.Context(), requestutil.Param(request, "productId"), update)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, product)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.productService.Delete(request.Context(), requestutil.Param(request, "productId")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Product deleted successfully")
}

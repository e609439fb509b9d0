// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package bundle

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/microcctv/internal/platform/middleware"
	requestutil "github.com/taibuivan/microcctv/internal/platform/request"
	"github.com/taibuivan/microcctv/internal/platform/respond"
)

// Handler implements the /packages HTTP endpoints.
type Handler struct {
	packageService *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{packageService: service}
}

// Routes returns the package router. Every route is admin only.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAdmin)

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{packageId}", handler.get)
	router.Put("/{packageId}", handler.update)
	router.Delete("/{packageId}", handler.delete)

	return router
}

type createRequest struct {
	PackageID   string  `json:"packageId"`
	PackageName string  `json:"packageName"`
	Price       float64 `json:"price"`
	Details     string  `json:"details"`
}

type updateRequest struct {
	PackageName *string  `json:"packageName"`
	Price       *float64 `json:"price"`
	Details     *string  `json:"details"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	packages, err := handler.packageService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, packages)
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	pkg, err := handler.packageService.Get(request.Context(), requestutil.Param(request, "packageId"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, pkg)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pkg, err := handler.packageService.Create(request.Context(), CreateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, pkg)
}

func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	pkg, err := handler.packageService.Update(request.Context(), requestutil.Param(request, "packageId"), UpdateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, pkg)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.packageService.Delete(request.Context(), requestutil.Param(request, "packageId")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Package deleted successfully")
}

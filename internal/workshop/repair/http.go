// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package repair

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/microcctv/internal/platform/middleware"
	requestutil "github.com/taibuivan/microcctv/internal/platform/request"
	"github.com/taibuivan/microcctv/internal/platform/respond"
	"github.com/taibuivan/microcctv/internal/platform/sec"
	"github.com/taibuivan/microcctv/pkg/pagination"
)

// Handler implements the /repairs HTTP endpoints.
type Handler struct {
	repairService *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{repairService: service}
}

// Routes returns a [chi.Router] configured with repair routes.
//
// # Endpoints
//   - GET    /     : Paginated tickets (admin)
//   - POST   /     : Open a ticket (admin)
//   - GET    /{id} : One ticket (admin)
//   - PUT    /{id} : Update progress (admin or technician)
//   - DELETE /{id} : Delete (admin)
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.With(middleware.RequireRole(sec.RoleTechnician)).Put("/{id}", handler.update)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Get("/", handler.list)
		r.Post("/", handler.create)
		r.Get("/{id}", handler.get)
		r.Delete("/{id}", handler.delete)
	})

	return router
}

type createRequest struct {
	DeviceName    string `json:"deviceName"`
	SerialNo      string `json:"serialNo"`
	Progress      string `json:"progress"`
	Notes         string `json:"notes"`
	EstimatedDate string `json:"estimatedDate"`
}

type updateRequest struct {
	DeviceName    *string `json:"deviceName"`
	SerialNo      *string `json:"serialNo"`
	Progress      *string `json:"progress"`
	Notes         *string `json:"notes"`
	EstimatedDate *string `json:"estimatedDate"`
}

func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	repairs, total, err := handler.repairService.List(request.Context(), params.Limit, params.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, repairs, pagination.NewMeta(params.Page, params.Limit, total))
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	repair, err := handler.repairService.Get(request.Context(), requestutil.Param(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, repair)
}

func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input createRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	repair, err := handler.repairService.Create(request.Context(), CreateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, repair)
}

/*
update applies a partial update to a ticket.

PUT /repairs/{id}

Request: any of {deviceName, serialNo, progress, notes, estimatedDate}

Response:
  - 200: Repair: the updated ticket
  - 400: Blank required field or malformed estimatedDate
  - 403: Caller is neither admin nor technician
  - 404: No such ticket
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input updateRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	repair, err := handler.repairService.Update(request.Context(), requestutil.Param(request, "id"), UpdateInput(input))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, repair)
}

func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.repairService.Delete(request.Context(), requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Repair deleted successfully")
}

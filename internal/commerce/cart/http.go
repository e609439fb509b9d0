// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/microcctv/internal/platform/middleware"
	requestutil "github.com/taibuivan/microcctv/internal/platform/request"
	"github.com/taibuivan/microcctv/internal/platform/respond"
)

// Handler implements the /cart HTTP endpoints. The cart is always the caller's.
type Handler struct {
	cartService *Service
}

// NewHandler constructs a new [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{cartService: service}
}

// Routes returns the cart router. Every route requires authentication.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.get)
	router.Post("/", handler.addItem)
	router.Delete("/", handler.clear)

	return router
}

type addItemRequest struct {
	Item struct {
		ProductID string   `json:"productId"`
		Name      string   `json:"name"`
		Price     *float64 `json:"price"`
		Image     string   `json:"image"`
	} `json:"item"`
	Quantity requestutil.NumberText `json:"quantity"`
}

func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	cart, err := handler.cartService.Get(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, cart)
}

/*
addItem merges a quantity delta into the caller's cart.

POST /cart

Request: {"item": {productId, name, price, image}, "quantity": number}

Response:
  - 200: []Item: the updated lines
  - 400: Missing line field or non-numeric quantity
*/
func (handler *Handler) addItem(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input addItemRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	items, err := handler.cartService.AddItem(request.Context(), userID, AddItemInput{
		ProductID: input.Item.ProductID,
		Name:      input.Item.Name,
		Price:     input.Item.Price,
		Image:     input.Item.Image,
		Quantity:  string(input.Quantity),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, items)
}

func (handler *Handler) clear(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.cartService.Clear(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, "Cart cleared successfully")
}

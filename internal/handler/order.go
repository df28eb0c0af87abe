package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"admin-orders-service/internal/order"
)

type listOrdersResponse struct {
	Success bool         `json:"success"`
	Orders  []order.View `json:"orders"`
	Total   int          `json:"total"`
	Error   string       `json:"error,omitempty"`
}

type orderProductsRequest struct {
	OrderID int64 `json:"order_id" validate:"required"`
}

type orderProductsResponse struct {
	Success  bool            `json:"success"`
	Products []order.Product `json:"products"`
}

type updateStatusRequest struct {
	OrderID int64  `json:"orderId" validate:"required"`
	Status  string `json:"status" validate:"required"`
}

type updateStatusResponse struct {
	Success bool `json:"success"`
}

// OrderHandler handles the dashboard's order endpoints.
type OrderHandler struct {
	svc      order.Service
	validate *validator.Validate
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

// ListOrders handles GET /orders?status=&search=&limit=&offset=.
// Malformed limit/offset values fall back to defaults rather than failing.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	q := order.ListQuery{
		Status: params.Get("status"),
		Search: params.Get("search"),
		Limit:  intParam(params.Get("limit"), order.DefaultListLimit),
		Offset: intParam(params.Get("offset"), 0),
	}

	views, err := h.svc.ListOrders(r.Context(), q)
	if err != nil {
		if errors.Is(err, order.ErrInvalidStatus) {
			respondWithJSON(w, http.StatusBadRequest, listOrdersResponse{
				Orders: []order.View{},
				Error:  "invalid status filter",
			})
			return
		}
		log.Error().Err(err).Msg("Failed to list orders")
		respondWithJSON(w, http.StatusInternalServerError, listOrdersResponse{
			Orders: []order.View{},
			Error:  err.Error(),
		})
		return
	}

	respondWithJSON(w, http.StatusOK, listOrdersResponse{
		Success: true,
		Orders:  views,
		Total:   len(views),
	})
}

// OrderProducts handles POST /products with body {order_id}.
func (h *OrderHandler) OrderProducts(w http.ResponseWriter, r *http.Request) {
	var req orderProductsRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "No order_id provided")
		return
	}

	products, err := h.svc.OrderProducts(r.Context(), req.OrderID)
	if err != nil {
		log.Error().Err(err).Int64("order_id", req.OrderID).Msg("Failed to fetch order products")
		respondWithError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondWithJSON(w, http.StatusOK, orderProductsResponse{Success: true, Products: products})
}

// UpdateStatus handles POST /update-status with body {orderId, status}.
// The status value must be one of the four canonical statuses.
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req updateStatusRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Missing orderId or status")
		return
	}

	if err := h.svc.UpdateOrderStatus(r.Context(), req.OrderID, req.Status); err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			respondWithError(w, http.StatusBadRequest, "invalid status value")
		case errors.Is(err, order.ErrOrderNotFound):
			respondWithError(w, http.StatusNotFound, "order not found")
		default:
			log.Error().Err(err).Int64("order_id", req.OrderID).Msg("Failed to update order status")
			respondWithError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respondWithJSON(w, http.StatusOK, updateStatusResponse{Success: true})
}

func intParam(raw string, defaultValue int) int {
	if raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue
	}
	return n
}

package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	logger "github.com/sirupsen/logrus"
	"github.com/tmbewe/bccargo/internal/auth"
	"github.com/tmbewe/bccargo/internal/db"
	"github.com/tmbewe/bccargo/internal/order"
	"github.com/tmbewe/bccargo/internal/types"
)

func (h *HandlerSet) HandleCreateOrder(w http.ResponseWriter, req *http.Request) {

	body, err := io.ReadAll(req.Body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	var request order.CreateOrderRequest
	if err := json.Unmarshal(body, &request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	cmd, err := order.NewCreateOrderCommand(request)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.orders.Create(req.Context(), cmd)
	if err != nil {
		var validationErr *order.ValidationError
		if errors.As(err, &validationErr) {
			writeError(w, http.StatusBadRequest, validationErr.Error())
			return
		}
		logger.Errorf("Order intake failed: %s", err.Error())
		writeError(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	writeJSON(w, http.StatusCreated, result)
}

func (h *HandlerSet) HandleListOrders(w http.ResponseWriter, req *http.Request) {

	limit := order.DefaultListLimit
	if raw := req.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			limit = parsed
		}
	}
	status := types.Status(req.URL.Query().Get("status"))

	result, err := h.orders.List(req.Context(), status, limit)
	if err != nil {
		logger.Errorf("Failed to list orders: %s", err.Error())
		writeError(w, http.StatusInternalServerError, "Failed to fetch orders")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *HandlerSet) HandleUpdateOrderStatus(w http.ResponseWriter, req *http.Request) {

	body, err := io.ReadAll(req.Body)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	var data struct {
		ID     string       `json:"id"`
		Status types.Status `json:"status"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if data.ID == "" || data.Status == "" {
		writeError(w, http.StatusBadRequest, "id and status are required")
		return
	}

	// ids are uuids; anything else can't name an order
	if _, err := uuid.Parse(data.ID); err != nil {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}

	result, err := h.orders.UpdateStatus(req.Context(), data.ID, data.Status, auth.Actor(req))
	if err != nil {
		if errors.Is(err, order.ErrInvalidStatus) {
			writeError(w, http.StatusBadRequest, "Invalid status value")
			return
		}
		var notFound *db.OrderNotFoundError
		if errors.As(err, &notFound) {
			writeError(w, http.StatusNotFound, "Order not found")
			return
		}
		logger.Errorf("Failed to update order status: %s", err.Error())
		writeError(w, http.StatusInternalServerError, "Failed to update status")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

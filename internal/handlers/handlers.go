package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/tmbewe/bccargo/internal/order"
	"github.com/tmbewe/bccargo/internal/types"
)

type OrderService interface {
	Create(ctx context.Context, cmd order.CreateOrderCommand) (*order.CreateResult, error)
	List(ctx context.Context, status types.Status, limit int) (*order.ListResult, error)
	UpdateStatus(ctx context.Context, orderID string, newStatus types.Status, actor string) (*order.UpdateResult, error)
}

type AccountStore interface {
	CreateAccount(ctx context.Context, email string, passwordHash string, apiToken string) error
	GetAccount(ctx context.Context, email string) (*types.Account, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type HandlerSet struct {
	orders           OrderService
	accounts         AccountStore
	storage          Pinger
	registrationCode string
	sessionSecret    []byte
	sessionTTL       time.Duration
}

func NewHandlerSet(orders OrderService, accounts AccountStore, storage Pinger,
	registrationCode string, sessionSecret []byte, sessionTTL time.Duration) *HandlerSet {
	return &HandlerSet{
		orders:           orders,
		accounts:         accounts,
		storage:          storage,
		registrationCode: registrationCode,
		sessionSecret:    sessionSecret,
		sessionTTL:       sessionTTL,
	}
}

func writeJSON(w http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Could not serialize result")
		return
	}
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(code)
	_, err = w.Write(response)
	if err != nil {
		logger.Error(err)
	}
}

func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("content-type", "application/json")
	w.WriteHeader(code)
	body, _ := json.Marshal(map[string]string{"error": message})
	_, err := w.Write(body)
	if err != nil {
		logger.Error(err)
	}
}

func (h *HandlerSet) HandleHealth(w http.ResponseWriter, req *http.Request) {
	if err := h.storage.Ping(req.Context()); err != nil {
		logger.Errorf("Health check failed: %s", err.Error())
		writeError(w, http.StatusInternalServerError, "storage unreachable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

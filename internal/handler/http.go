package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/weinert-art/commission-service/internal/entities"
	"github.com/weinert-art/commission-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in entities.OrderInput) (entities.Order, error)
	ChangeStatus(ctx context.Context, id string, status entities.Status, comment string) (entities.Order, error)
	DeleteOrder(ctx context.Context, id string) (string, error)
	GetOrderByNumber(ctx context.Context, number string) (entities.Order, error)
	ListOrders(ctx context.Context) ([]entities.Order, error)
}

type HTTPHandler struct {
	logger     *slog.Logger
	validate   *validator.Validate
	svc        OrderService
	adminGuard func(http.Handler) http.Handler
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService, adminGuard func(http.Handler) http.Handler) *HTTPHandler {
	return &HTTPHandler{
		logger:     logger.With(slog.String("handler", "http")),
		validate:   validator.New(),
		svc:        svc,
		adminGuard: adminGuard,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/{order_number}", h.GetOrderByNumber)

		r.Group(func(r chi.Router) {
			r.Use(h.adminGuard)
			r.Get("/", h.ListOrders)
			r.Patch("/", h.ChangeStatus)
			r.Delete("/", h.DeleteOrder)
		})
	})
}

// CreateOrder принимает заявку с формы заказа.
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.CreateOrder(ctx, CreateRequestToInput(req))
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create order", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// ChangeStatus меняет статус заказа. Отмена требует комментария.
func (h *HTTPHandler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.ChangeStatus(ctx, req.ID, entities.Status(req.Status), req.AdminComment)

	switch {
	case errors.Is(err, entities.ErrInvalidStatus):
		utils.WriteError(w, "unknown order status", http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrCommentRequired):
		utils.WriteError(w, "cancellation requires an admin comment", http.StatusBadRequest)
		return
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	case err != nil:
		h.logger.ErrorContext(ctx, "failed to change order status",
			slog.Any("error", err), slog.String("order_id", req.ID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	statusChanges.WithLabelValues(req.Status).Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder безвозвратно удаляет заказ.
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req DeleteOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	number, err := h.svc.DeleteOrder(ctx, req.ID)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete order",
			slog.Any("error", err), slog.String("order_id", req.ID))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, DeleteOrderResponse{
		Message:     "order deleted",
		OrderNumber: number,
	}, http.StatusOK)
}

// GetOrderByNumber — публичная проверка статуса заказа по его номеру.
func (h *HTTPHandler) GetOrderByNumber(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	number := chi.URLParam(r, "order_number")

	if err := h.validate.Var(number, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.svc.GetOrderByNumber(ctx, number)

	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order",
			slog.Any("error", err), slog.String("order_number", number))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// ListOrders возвращает все заказы для админки, старые первыми.
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orders, err := h.svc.ListOrders(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	result := make([]Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, result, http.StatusOK)
}

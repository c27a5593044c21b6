// Package handler содержит HTTP-обработчики API сервиса customer-api.
package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/mmeshcher/customer-api/internal/middleware"
	"github.com/mmeshcher/customer-api/internal/model"
	"github.com/mmeshcher/customer-api/internal/pricing"
	"github.com/mmeshcher/customer-api/internal/token"
	"github.com/mmeshcher/customer-api/internal/validation"
)

// Service определяет контракт бизнес-логики, используемой HTTP-обработчиками.
type Service interface {
	GetCustomerItems(ctx context.Context, nameCustomers string) ([]model.PricedLineItem, error)
}

// Handler реализует HTTP-обработчики API сервиса customer-api.
type Handler struct {
	service        Service
	issuer         *token.Issuer
	logger         *zap.Logger
	authMiddleware *middleware.AuthMiddleware
}

// NewHandler создаёт новый экземпляр обработчика HTTP-запросов.
func NewHandler(s Service, issuer *token.Issuer, logger *zap.Logger, auth *middleware.AuthMiddleware) *Handler {
	return &Handler{
		service:        s,
		issuer:         issuer,
		logger:         logger,
		authMiddleware: auth,
	}
}

type generateTokenRequest struct {
	Name        string `json:"name"`
	DateRequest string `json:"date_request"`
}

type generateTokenResponse struct {
	Name        string `json:"name"`
	DateRequest string `json:"date_request"`
	Token       string `json:"token"`
	Exp         int64  `json:"exp"`
}

type validationErrorResponse struct {
	Error    string              `json:"error"`
	Messages map[string][]string `json:"messages"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// GenerateToken выпускает токен доступа для указанного имени и даты запроса.
func (h *Handler) GenerateToken(w http.ResponseWriter, r *http.Request) {
	var req generateTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	messages := map[string][]string{}
	if !validation.IsValidName(req.Name) {
		messages["name"] = []string{"The name field is required."}
	}
	if !validation.IsValidDateRequest(req.DateRequest) {
		messages["date_request"] = []string{"The date_request field must match the format Y-m-d H:i:s."}
	}
	if len(messages) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{
			Error:    "Validation failed",
			Messages: messages,
		})
		return
	}

	signed, exp, err := h.issuer.Issue(req.Name, req.DateRequest)
	if err != nil {
		h.logger.Error("issue token error", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	writeJSON(w, http.StatusOK, generateTokenResponse{
		Name:        req.Name,
		DateRequest: req.DateRequest,
		Token:       signed,
		Exp:         exp,
	})
}

type customerItemsRequest struct {
	NameCustomers string `json:"name_customers"`
	DateRequest   string `json:"date_request"`
}

// pricedItemResponse описывает позицию клиента в формате выдачи.
// Ключ dicount сохранён намеренно для совместимости с существующими
// потребителями API; внутри сервиса поле называется Discount.
type pricedItemResponse struct {
	NameCustomers string `json:"name_customers"`
	Items         string `json:"items"`
	Dicount       string `json:"dicount"`
	FixPrice      string `json:"fix_price"`
}

type customerItemsResponse struct {
	Result  []pricedItemResponse `json:"result"`
	Message string               `json:"message,omitempty"`
}

// GetCustomerItems возвращает позиции клиента с рассчитанной скидкой и итоговой ценой.
// Запрос должен пройти проверку bearer-токена до вызова обработчика.
func (h *Handler) GetCustomerItems(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetClaimsFromContext(r.Context()); !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Token not provided or invalid format"})
		return
	}

	var req customerItemsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	messages := map[string][]string{}
	if !validation.IsValidName(req.NameCustomers) {
		messages["name_customers"] = []string{"The name_customers field is required."}
	}
	if !validation.IsValidDateRequest(req.DateRequest) {
		messages["date_request"] = []string{"The date_request field must match the format Y-m-d H:i:s."}
	}
	if len(messages) > 0 {
		writeJSON(w, http.StatusUnprocessableEntity, validationErrorResponse{
			Error:    "Validation failed",
			Messages: messages,
		})
		return
	}

	items, err := h.service.GetCustomerItems(r.Context(), req.NameCustomers)
	if err != nil {
		h.logger.Error("get customer items error", zap.Error(err), zap.String("name_customers", req.NameCustomers))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	resp := customerItemsResponse{
		Result: make([]pricedItemResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Result = append(resp.Result, pricedItemResponse{
			NameCustomers: item.NameCustomers,
			Items:         item.Items,
			Dicount:       pricing.FormatRate(item.Discount),
			FixPrice:      pricing.FormatFixPrice(item.FixPrice),
		})
	}

	if len(resp.Result) == 0 {
		resp.Message = "No items found for this customer"
	}

	writeJSON(w, http.StatusOK, resp)
}

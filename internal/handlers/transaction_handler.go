package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/pocketledger/pocketledger/internal/logger"
	"github.com/pocketledger/pocketledger/internal/middleware"
	"github.com/pocketledger/pocketledger/internal/models"
	"github.com/pocketledger/pocketledger/internal/service"
)

type TransactionHandler struct {
	ledger *service.LedgerService
	log    *logger.Logger
}

func NewTransactionHandler(ledger *service.LedgerService) *TransactionHandler {
	return &TransactionHandler{
		ledger: ledger,
		log:    logger.New("transaction-handler"),
	}
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req models.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	transaction, err := h.ledger.Create(r.Context(), userID, &req)
	if err != nil {
		if isValidationError(err) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("create transaction failed: %v", err)
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	respondJSON(w, http.StatusCreated, transaction)
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	query := r.URL.Query()

	opts := service.ListOptions{
		Page:     queryInt(query.Get("page")),
		Limit:    queryInt(query.Get("limit")),
		Type:     query.Get("type"),
		Category: query.Get("category"),
		Month:    queryInt(query.Get("month")),
		Year:     queryInt(query.Get("year")),
	}

	resp, err := h.ledger.List(r.Context(), userID, opts)
	if err != nil {
		h.log.Error("list transactions failed: %v", err)
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

func (h *TransactionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	query := r.URL.Query()

	summary, err := h.ledger.Summary(r.Context(), userID, service.SummaryOptions{
		Month: queryInt(query.Get("month")),
		Year:  queryInt(query.Get("year")),
	})
	if err != nil {
		h.log.Error("summary failed: %v", err)
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := r.PathValue("id")

	// Unknown fields are rejected so a client cannot smuggle protected
	// columns (like the owner) into the patch.
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	var patch models.UpdateTransactionRequest
	if err := decoder.Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	transaction, err := h.ledger.Update(r.Context(), userID, id, &patch)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTransactionNotFound):
			respondError(w, http.StatusNotFound, "transaction not found")
		case isValidationError(err):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("update transaction failed: %v", err)
			respondError(w, http.StatusInternalServerError, "server error")
		}
		return
	}

	respondJSON(w, http.StatusOK, transaction)
}

func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	id := r.PathValue("id")

	if err := h.ledger.Delete(r.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			respondError(w, http.StatusNotFound, "transaction not found")
			return
		}
		h.log.Error("delete transaction failed: %v", err)
		respondError(w, http.StatusInternalServerError, "server error")
		return
	}

	respondJSON(w, http.StatusOK, models.MessageResponse{Message: "transaction deleted"})
}

func queryInt(value string) int {
	if value == "" {
		return 0
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return n
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/curioyard/studio-api/internal/domain"
	"github.com/curioyard/studio-api/internal/render"
	"github.com/curioyard/studio-api/internal/service"
)

type InvoiceHandler struct {
	invoiceService *service.InvoiceService
	renderer       *render.Renderer
	logger         *zap.Logger
}

func NewInvoiceHandler(invoiceService *service.InvoiceService, renderer *render.Renderer, logger *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: invoiceService,
		renderer:       renderer,
		logger:         logger,
	}
}

// List returns the user's invoices, optionally filtered by status and a
// search term over invoice number and client name.
func (h *InvoiceHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.InvoiceListFilter{
		Search: r.URL.Query().Get("search"),
		Status: domain.InvoiceStatus(r.URL.Query().Get("status")),
	}

	invoices, err := h.invoiceService.List(r.Context(), userID(r), filter)
	if err != nil {
		h.logger.Error("failed to list invoices", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list invoices")
		return
	}

	respondJSON(w, http.StatusOK, invoices)
}

func (h *InvoiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.InvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	invoice, err := h.invoiceService.Create(r.Context(), userID(r), &req)
	if err != nil {
		if respondServiceError(w, err) {
			return
		}
		h.logger.Error("failed to create invoice", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create invoice")
		return
	}

	w.Header().Set("Location", "/api/v1/invoices/"+invoice.ID.String())
	respondJSON(w, http.StatusCreated, invoice)
}

func (h *InvoiceHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	invoice, err := h.invoiceService.GetByID(r.Context(), userID(r), id)
	if err != nil {
		if respondServiceError(w, err) {
			return
		}
		h.logger.Error("failed to get invoice", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get invoice")
		return
	}

	respondJSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var req domain.InvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	invoice, err := h.invoiceService.Update(r.Context(), userID(r), id, &req)
	if err != nil {
		if respondServiceError(w, err) {
			return
		}
		h.logger.Error("failed to update invoice", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update invoice")
		return
	}

	respondJSON(w, http.StatusOK, invoice)
}

func (h *InvoiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	if err := h.invoiceService.Delete(r.Context(), userID(r), id); err != nil {
		if respondServiceError(w, err) {
			return
		}
		h.logger.Error("failed to delete invoice", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete invoice")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RecordPayment applies a partial or settling payment to the invoice
func (h *InvoiceHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var req domain.PaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	invoice, entry, err := h.invoiceService.RecordPayment(r.Context(), userID(r), id, &req)
	if err != nil {
		if respondServiceError(w, err) {
			return
		}
		h.logger.Error("failed to record payment", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to record payment")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"invoice": invoice,
		"entry":   entry,
	})
}

// Document renders the printable invoice HTML
func (h *InvoiceHandler) Document(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	invoice, err := h.invoiceService.GetByID(r.Context(), userID(r), id)
	if err != nil {
		if respondServiceError(w, err) {
			return
		}
		h.logger.Error("failed to get invoice", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get invoice")
		return
	}

	html, err := h.renderer.Invoice(invoice)
	if err != nil {
		h.logger.Error("failed to render invoice", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to render invoice")
		return
	}

	respondHTML(w, http.StatusOK, html)
}

// Receipt renders the printable receipt HTML. Without a payment query
// parameter it covers the whole invoice; with ?payment=<entryId> it
// covers that payment only.
func (h *InvoiceHandler) Receipt(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var entryID *uuid.UUID
	if payment := r.URL.Query().Get("payment"); payment != "" {
		parsed, err := uuid.Parse(payment)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid payment entry ID format")
			return
		}
		entryID = &parsed
	}

	receipt, err := h.invoiceService.Receipt(r.Context(), userID(r), id, entryID)
	if err != nil {
		if respondServiceError(w, err) {
			return
		}
		h.logger.Error("failed to derive receipt", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to derive receipt")
		return
	}

	html, err := h.renderer.Receipt(receipt)
	if err != nil {
		h.logger.Error("failed to render receipt", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to render receipt")
		return
	}

	respondHTML(w, http.StatusOK, html)
}

// Export streams the filtered invoice list as CSV
func (h *InvoiceHandler) Export(w http.ResponseWriter, r *http.Request) {
	filter := domain.InvoiceListFilter{
		Search: r.URL.Query().Get("search"),
		Status: domain.InvoiceStatus(r.URL.Query().Get("status")),
	}

	data, err := h.invoiceService.ExportCSV(r.Context(), userID(r), filter)
	if err != nil {
		h.logger.Error("failed to export invoices", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to export invoices")
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="invoices.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

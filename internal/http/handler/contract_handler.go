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

type ContractHandler struct {
	contractService *service.ContractService
	renderer        *render.Renderer
	logger          *zap.Logger
}

func NewContractHandler(contractService *service.ContractService, renderer *render.Renderer, logger *zap.Logger) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
		renderer:        renderer,
		logger:          logger,
	}
}

// List returns the user's contracts, optionally filtered by type, status
// and a search term over contract number, client name and project title.
func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.ContractListFilter{
		Search: r.URL.Query().Get("search"),
		Type:   domain.ContractType(r.URL.Query().Get("type")),
		Status: domain.ContractStatus(r.URL.Query().Get("status")),
	}

	contracts, err := h.contractService.List(r.Context(), userID(r), filter)
	if err != nil {
		h.logger.Error("failed to list contracts", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to list contracts")
		return
	}

	respondJSON(w, http.StatusOK, contracts)
}

// NewDraft returns an unsaved draft pre-filled with the studio's standard
// terms and a preview of the next contract number. The number is not
// consumed until the draft is saved.
func (h *ContractHandler) NewDraft(w http.ResponseWriter, r *http.Request) {
	contractType := domain.ContractType(r.URL.Query().Get("type"))
	if contractType == "" {
		contractType = domain.ContractTypeGraphic
	}

	draft, err := h.contractService.NewDraft(r.Context(), userID(r), contractType)
	if err != nil {
		if respondServiceError(w, err) {
			return
		}
		h.logger.Error("failed to build draft contract", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to build draft contract")
		return
	}

	respondJSON(w, http.StatusOK, draft)
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.ContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	contract, err := h.contractService.Create(r.Context(), userID(r), &req)
	if err != nil {
		if respondServiceError(w, err) {
			return
		}
		h.logger.Error("failed to create contract", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to create contract")
		return
	}

	w.Header().Set("Location", "/api/v1/contracts/"+contract.ID.String())
	respondJSON(w, http.StatusCreated, contract)
}

func (h *ContractHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid contract ID format")
		return
	}

	contract, err := h.contractService.GetByID(r.Context(), userID(r), id)
	if err != nil {
		if respondServiceError(w, err) {
			return
		}
		h.logger.Error("failed to get contract", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get contract")
		return
	}

	respondJSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid contract ID format")
		return
	}

	var req domain.ContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		respondValidationError(w, err)
		return
	}

	contract, err := h.contractService.Update(r.Context(), userID(r), id, &req)
	if err != nil {
		if respondServiceError(w, err) {
			return
		}
		h.logger.Error("failed to update contract", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to update contract")
		return
	}

	respondJSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid contract ID format")
		return
	}

	if err := h.contractService.Delete(r.Context(), userID(r), id); err != nil {
		if respondServiceError(w, err) {
			return
		}
		h.logger.Error("failed to delete contract", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to delete contract")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Duplicate copies an existing contract into a fresh draft with its own
// number. Financial terms carry over verbatim.
func (h *ContractHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid contract ID format")
		return
	}

	contract, err := h.contractService.Duplicate(r.Context(), userID(r), id)
	if err != nil {
		if respondServiceError(w, err) {
			return
		}
		h.logger.Error("failed to duplicate contract", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to duplicate contract")
		return
	}

	w.Header().Set("Location", "/api/v1/contracts/"+contract.ID.String())
	respondJSON(w, http.StatusCreated, contract)
}

// Document renders the printable contract HTML
func (h *ContractHandler) Document(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid contract ID format")
		return
	}

	contract, err := h.contractService.GetByID(r.Context(), userID(r), id)
	if err != nil {
		if respondServiceError(w, err) {
			return
		}
		h.logger.Error("failed to get contract", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get contract")
		return
	}

	html, err := h.renderer.Contract(contract)
	if err != nil {
		h.logger.Error("failed to render contract", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to render contract")
		return
	}

	respondHTML(w, http.StatusOK, html)
}

// Catalog returns the service rate card for a contract type
func (h *ContractHandler) Catalog(w http.ResponseWriter, r *http.Request) {
	contractType := domain.ContractType(chi.URLParam(r, "type"))

	catalog, err := h.contractService.Catalog(contractType)
	if err != nil {
		if respondServiceError(w, err) {
			return
		}
		h.logger.Error("failed to get catalog", zap.Error(err))
		respondWithError(w, http.StatusInternalServerError, "Failed to get catalog")
		return
	}

	respondJSON(w, http.StatusOK, catalog)
}

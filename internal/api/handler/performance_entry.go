package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/shawnempower/chicago-hub-api/internal/domain"
	"github.com/shawnempower/chicago-hub-api/internal/usecases/tracking"
	"github.com/shawnempower/chicago-hub-api/pkg/apiErrors"
	"github.com/shawnempower/chicago-hub-api/pkg/log"
)

// CreatePerformanceEntry registra uma entrada reportada manualmente
func CreatePerformanceEntry(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var entry *domain.PerformanceEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		logger.WithFields(log.Fields{
			"order_id": entry.OrderID,
			"channel":  entry.Channel,
		}).Info("entries: creating performance entry")

		created, err := service.CreateEntry(r.Context(), entry)
		if err != nil {
			handleTrackingError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithField("error", err.Error()).Error("entries: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// IngestAutomatedEntry registra um disparo do pixel de tracking
func IngestAutomatedEntry(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var entry *domain.PerformanceEntry
		if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		logger.WithFields(log.Fields{
			"order_id":  entry.OrderID,
			"item_path": entry.ItemPath,
		}).Info("entries: ingesting automated pixel entry")

		created, err := service.IngestAutomatedEntry(r.Context(), entry)
		if err != nil {
			handleTrackingError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(created); err != nil {
			logger.WithField("error", err.Error()).Error("entries: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// UpdatePerformanceEntry aplica edições parciais a uma entrada manual
func UpdatePerformanceEntry(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da entrada não fornecido", nil)
			return
		}

		var req tracking.UpdateEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}
		req.ID = id

		logger.WithField("entry_id", id).Info("entries: updating performance entry")

		updated, err := service.UpdateEntry(r.Context(), &req)
		if err != nil {
			handleTrackingError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(updated); err != nil {
			logger.WithField("error", err.Error()).Error("entries: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// DeletePerformanceEntry marca uma entrada como excluída
func DeletePerformanceEntry(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da entrada não fornecido", nil)
			return
		}

		logger.WithField("entry_id", id).Info("entries: deleting performance entry")

		if err := service.DeleteEntry(r.Context(), id); err != nil {
			handleTrackingError(w, r, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// BulkImportPerformanceEntries importa um lote de entradas
func BulkImportPerformanceEntries(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var entries []*domain.PerformanceEntry
		if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		logger.WithField("count", len(entries)).Info("entries: bulk importing performance entries")

		result, err := service.BulkImport(r.Context(), entries)
		if err != nil {
			handleTrackingError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithField("error", err.Error()).Error("entries: failed to encode response")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// ListOrderPerformanceEntries lista as entradas não excluídas de uma ordem
func ListOrderPerformanceEntries(service tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		orderID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("order_id", orderID).Info("entries: listing performance entries for order")

		entries, err := service.ListOrderEntries(r.Context(), orderID)
		if err != nil {
			handleTrackingError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logger.WithFields(log.Fields{
				"order_id": orderID,
				"error":    err.Error(),
			}).Error("entries: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// handleTrackingError converte erros do usecase de tracking para a resposta da API
func handleTrackingError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())
	logger.WithField("error", err.Error()).Warn("entries: request failed")

	var trackErr *tracking.TrackingError
	if errors.As(err, &trackErr) {
		apiErrors.WriteError(w, trackErr.Code, trackErr.Error(), map[string]any{
			"entry_id": trackErr.EntryID,
		})
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar entrada de performance", nil)
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shawnempower/chicago-hub-api/infrastructure/repository"
	"github.com/shawnempower/chicago-hub-api/internal/usecases/reconciling"
	"github.com/shawnempower/chicago-hub-api/pkg/apiErrors"
	"github.com/shawnempower/chicago-hub-api/pkg/log"
)

// GetOrder retorna a ordem com o resumo de entrega mais recente persistido
func GetOrder(orderRepo repository.OrderRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("order_id", id).Info("orders: fetching order by ID")

		order, err := orderRepo.GetByID(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"order_id": id,
				"error":    err.Error(),
			}).Error("orders: failed to fetch order")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ordem", nil)
			return
		}

		if order == nil {
			apiErrors.WriteError(w, apiErrors.ErrOrderNotFound, "Ordem não encontrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(order); err != nil {
			logger.WithFields(log.Fields{
				"order_id": id,
				"error":    err.Error(),
			}).Error("orders: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// ResyncDeliverySummary recomputa o resumo de entrega da ordem de forma
// síncrona e retorna o resultado fresco. É a saída para quando um refresh
// best-effort falhou silenciosamente.
func ResyncDeliverySummary(reconciler reconciling.OrderReconciler, orderRepo repository.OrderRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("order_id", id).Info("orders: resyncing delivery summary")

		order, err := orderRepo.GetByID(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"order_id": id,
				"error":    err.Error(),
			}).Error("orders: failed to fetch order for resync")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar ordem", nil)
			return
		}

		if order == nil {
			apiErrors.WriteError(w, apiErrors.ErrOrderNotFound, "Ordem não encontrada", nil)
			return
		}

		if err := reconciler.RefreshOrderDeliverySummary(r.Context(), id); err != nil {
			logger.WithFields(log.Fields{
				"order_id": id,
				"error":    err.Error(),
			}).Error("orders: delivery summary resync failed")

			apiErrors.WriteError(w, apiErrors.ErrSummaryConflict, "Erro ao recalcular resumo de entrega", nil)
			return
		}

		// Reler para devolver o resumo recém-persistido
		order, err = orderRepo.GetByID(id)
		if err != nil || order == nil {
			logger.WithField("order_id", id).Error("orders: failed to reload order after resync")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao reler ordem após resync", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(order.DeliverySummary); err != nil {
			logger.WithFields(log.Fields{
				"order_id": id,
				"error":    err.Error(),
			}).Error("orders: failed to encode response")

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

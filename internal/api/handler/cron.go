package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shawnempower/chicago-hub-api/internal/scheduler"
	"github.com/shawnempower/chicago-hub-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeDeliveryResync = "delivery-resync"
	CronJobTypeAll            = "all"
)

// CronJobServices contém os serviços de cron necessários para execução manual
type CronJobServices struct {
	DeliveryResyncService *scheduler.DeliveryResyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeDeliveryResync, CronJobTypeAll:
			if services.DeliveryResyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de resync de entrega não disponível", nil)
				return
			}
			services.DeliveryResyncService.TriggerManualSync()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: delivery-resync, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"delivery-resync": services.DeliveryResyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}

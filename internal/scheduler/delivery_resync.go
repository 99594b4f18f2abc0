package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/shawnempower/chicago-hub-api/infrastructure/repository"
	"github.com/shawnempower/chicago-hub-api/internal/config"
	"github.com/shawnempower/chicago-hub-api/internal/usecases/reconciling"
	"github.com/sirupsen/logrus"
)

// DeliveryResyncConfig representa a configuração do agendador de resync de entrega
type DeliveryResyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
}

// DeliveryResyncService recomputa periodicamente o resumo de entrega de todas
// as ordens ativas. Serve de rede de segurança para refreshes best-effort que
// falharam silenciosamente após mutações de entradas.
type DeliveryResyncService struct {
	scheduler           *gocron.Scheduler
	config              DeliveryResyncConfig
	orderRepo           repository.OrderRepository
	reconciler          reconciling.OrderReconciler
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncErrors      int
}

// NewDeliveryResyncService cria uma nova instância do serviço de resync de entrega
func NewDeliveryResyncService(
	orderRepo repository.OrderRepository,
	reconciler reconciling.OrderReconciler,
	appConfig *config.Config,
) *DeliveryResyncService {
	resyncConfig := DeliveryResyncConfig{
		CronSchedule:        appConfig.DeliveryResync.CronSchedule,
		RequestDelaySeconds: appConfig.DeliveryResync.RequestDelaySeconds,
		SyncEnabled:         appConfig.DeliveryResync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         resyncConfig.CronSchedule,
		"request_delay_seconds": resyncConfig.RequestDelaySeconds,
		"sync_enabled":          resyncConfig.SyncEnabled,
	}).Info("Configuração do agendador de resync de entrega carregada")

	return &DeliveryResyncService{
		scheduler:   scheduler,
		config:      resyncConfig,
		orderRepo:   orderRepo,
		reconciler:  reconciler,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *DeliveryResyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Resync periódico de entrega desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de resync de entrega")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.resyncAllOrders(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar resync de entrega: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de resync de entrega")
		s.scheduler.Stop()
	}()

	return nil
}

// resyncAllOrders recomputa o resumo de entrega de todas as ordens ativas
func (s *DeliveryResyncService) resyncAllOrders(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Resync de entrega já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando resync de entrega para todas as ordens ativas")

	orderIDs, err := s.orderRepo.ListActiveIDs()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de ordens para resync de entrega")
		return
	}

	if len(orderIDs) == 0 {
		logrus.Info("Nenhuma ordem ativa encontrada para resync de entrega")
		return
	}

	failures := 0
	for _, orderID := range orderIDs {
		if ctx.Err() != nil {
			logrus.Info("Resync de entrega interrompido pelo cancelamento do contexto")
			break
		}

		if err := s.reconciler.RefreshOrderDeliverySummary(ctx, orderID); err != nil {
			failures++
			logrus.WithFields(logrus.Fields{
				"order_id": orderID,
				"error":    err.Error(),
			}).Error("Erro ao recalcular resumo de entrega da ordem")
		}

		// Espaçar as recomputações para não saturar o banco
		time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"duration": duration.String(),
		"orders":   len(orderIDs),
		"failures": failures,
	}).Info("Resync de entrega concluído")

	s.lastSyncCompletedAt = time.Now()
	s.lastSyncErrors = failures
}

// TriggerManualSync inicia manualmente um resync de entrega
func (s *DeliveryResyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Resync de entrega já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando resync manual de entrega")
	go s.resyncAllOrders(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *DeliveryResyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_errors":       s.lastSyncErrors,
	}
}

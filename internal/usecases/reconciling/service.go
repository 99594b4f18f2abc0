package reconciling

import (
	"context"
	"fmt"
	"time"

	"github.com/shawnempower/chicago-hub-api/infrastructure/repository"
	"github.com/shawnempower/chicago-hub-api/internal/config"
	"github.com/shawnempower/chicago-hub-api/internal/domain"
	"github.com/shawnempower/chicago-hub-api/pkg/log"
	"github.com/shawnempower/chicago-hub-api/pkg/utils"
)

// Mensagens fixas do diagnóstico de pixel, expostas na API
const (
	pixelErrorMessage   = "Tracking pixel has reported invalid data; delivery numbers may be incomplete"
	pixelNoDataMessage  = "No automated tracking data has been received for this order"
	pixelWarningMessage = "Tracking pixel is firing but no meaningful ad activity has been recorded"
	pixelHealthyMessage = "Tracking pixel is installed and reporting normally"
)

// pixelActivityFloor é o total de impressões automatizadas abaixo do qual,
// na ausência de entradas atribuídas a criativos, o pixel é considerado sem
// atividade relevante.
const pixelActivityFloor = 10

// Service recomputa resumos de entrega. Cada recomputação relê as metas da
// ordem e todas as entradas vigentes: contadores incrementais exigiriam
// lógica de compensação para cada caminho de mutação e são propensos a erro
// sob escritores concorrentes.
type Service struct {
	orderRepo repository.OrderRepository
	entryRepo repository.PerformanceEntryRepository
	cfg       *config.Config
}

// NewService cria uma nova instância do reconciliador de entrega
func NewService(
	orderRepo repository.OrderRepository,
	entryRepo repository.PerformanceEntryRepository,
	cfg *config.Config,
) OrderReconciler {
	return &Service{
		orderRepo: orderRepo,
		entryRepo: entryRepo,
		cfg:       cfg,
	}
}

// RefreshBestEffort recalcula o resumo engolindo falhas. Usado pelos fluxos
// de mutação de entradas, que não podem falhar porque o resumo não pôde ser
// atualizado.
func (s *Service) RefreshBestEffort(ctx context.Context, orderID string) {
	if err := s.RefreshOrderDeliverySummary(ctx, orderID); err != nil {
		log.ForContext(ctx).WithError(err).WithField("order_id", orderID).
			Warn("Não foi possível atualizar o resumo de entrega da ordem")
	}
}

// RefreshOrderDeliverySummary recalcula o resumo de entrega da ordem por
// inteiro e o persiste, sobrescrevendo o resumo anterior. Ordem inexistente
// ou sem snapshot de inventário é tratada como no-op.
func (s *Service) RefreshOrderDeliverySummary(ctx context.Context, orderID string) error {
	logger := log.ForContext(ctx).WithField("order_id", orderID)

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return fmt.Errorf("erro ao buscar ordem %s: %w", orderID, err)
	}

	if order == nil {
		logger.Warn("Reconciliação ignorada: ordem não encontrada")
		return nil
	}

	if len(order.SelectedInventory) == 0 {
		logger.Warn("Reconciliação ignorada: ordem sem snapshot de inventário")
		return nil
	}

	entries, err := s.entryRepo.ListActiveByOrderID(orderID)
	if err != nil {
		return fmt.Errorf("erro ao buscar entradas de performance da ordem %s: %w", orderID, err)
	}

	summary := s.buildSummary(order, entries)

	if err := s.orderRepo.UpdateDeliverySummary(orderID, summary); err != nil {
		return fmt.Errorf("erro ao persistir resumo de entrega da ordem %s: %w", orderID, err)
	}

	logger.WithFields(log.Fields{
		"entries":          len(entries),
		"delivery_percent": summary.DeliveryPercent,
		"reports_percent":  summary.ReportsPercent,
	}).Info("Resumo de entrega recalculado")

	return nil
}

// channelGoal acumula as metas esperadas de um canal a partir do snapshot
// de inventário da ordem.
type channelGoal struct {
	placements int
	goal       float64
}

// channelAggregate acumula as métricas das entradas válidas de um canal.
type channelAggregate struct {
	metrics     domain.EntryMetrics
	reportCount int
}

func (s *Service) buildSummary(order *domain.Order, entries []*domain.PerformanceEntry) *domain.DeliverySummary {
	now := time.Now()

	// Metas esperadas vêm do snapshot de inventário da própria ordem, não
	// do inventário da campanha, que pode ter divergido do contratado.
	goals := make(map[domain.Channel]*channelGoal)
	totalExpectedReports := 0
	totalExpectedGoal := 0.0
	hasPixelChannel := false

	for _, item := range order.SelectedInventory {
		if item.Excluded {
			continue
		}

		channel := domain.NormalizeChannel(string(item.Channel))
		if channel.UsesTrackingPixel() {
			hasPixelChannel = true
		}

		goal := goals[channel]
		if goal == nil {
			goal = &channelGoal{}
			goals[channel] = goal
		}

		itemGoal := order.GoalFor(item.ItemPath)
		goal.placements++
		goal.goal += itemGoal

		totalExpectedReports++
		totalExpectedGoal += itemGoal
	}

	// Agrega as entradas válidas por canal. Disparos brutos de pixel somam
	// impressões, mas não contam como relatório submetido.
	aggregates := make(map[domain.Channel]*channelAggregate)
	newsletterImpressions := make(map[string]map[string]int)

	for _, entry := range entries {
		if entry.HasValidationFailure() {
			continue
		}

		channel := domain.NormalizeChannel(string(entry.Channel))

		agg := aggregates[channel]
		if agg == nil {
			agg = &channelAggregate{}
			aggregates[channel] = agg
		}

		agg.metrics.Add(entry.Metrics)
		if entry.CountsAsReport() {
			agg.reportCount++
		}

		if channel == domain.ChannelNewsletter {
			date := entry.DateStart.UTC().Format(time.DateOnly)
			byDate := newsletterImpressions[entry.ItemPath]
			if byDate == nil {
				byDate = make(map[string]int)
				newsletterImpressions[entry.ItemPath] = byDate
			}
			byDate[date] += entry.Metrics.Impressions
		}
	}

	sendCount := s.countNewsletterSends(order, newsletterImpressions)

	// União dos canais com meta e dos canais com entradas: um canal sem
	// meta mas com entregas ainda aparece no resumo.
	channels := make(map[domain.Channel]bool)
	for channel := range goals {
		channels[channel] = true
	}
	for channel := range aggregates {
		channels[channel] = true
	}

	byChannel := make(map[domain.Channel]*domain.ChannelDelivery, len(channels))
	totalReportsSubmitted := 0
	totalDelivered := 0

	for channel := range channels {
		profile := channel.Profile()

		var agg channelAggregate
		if found := aggregates[channel]; found != nil {
			agg = *found
		}

		var delivered int
		switch profile.DeliveredFrom {
		case domain.DeliveredFromImpressions:
			delivered = agg.metrics.Impressions
		case domain.DeliveredFromSendBursts:
			delivered = sendCount
		default:
			delivered = agg.reportCount
		}

		var goal float64
		if found := goals[channel]; found != nil {
			goal = found.goal
		}

		byChannel[channel] = &domain.ChannelDelivery{
			Goal:      goal,
			Delivered: delivered,
			// Superentrega é um estado válido: o percentual por canal não satura
			DeliveryPercent: utils.RoundPercent(float64(delivered), goal),
			GoalType:        profile.GoalType,
			VolumeLabel:     profile.VolumeLabel,
		}

		totalReportsSubmitted += agg.reportCount
		totalDelivered += delivered
	}

	summary := &domain.DeliverySummary{
		TotalExpectedReports:  totalExpectedReports,
		TotalReportsSubmitted: totalReportsSubmitted,
		ReportsPercent:        utils.CapPercent(utils.RoundPercent(float64(totalReportsSubmitted), float64(totalExpectedReports))),
		TotalExpectedGoal:     totalExpectedGoal,
		TotalDelivered:        totalDelivered,
		DeliveryPercent:       utils.RoundPercent(float64(totalDelivered), totalExpectedGoal),
		ByChannel:             byChannel,
		UpdatedAt:             now,
	}

	if hasPixelChannel {
		summary.PixelHealth = diagnosePixelHealth(entries, now)
	}

	return summary
}

// countNewsletterSends converte a agregação (placement, dia) em grupos e
// delega para o detector de disparos.
func (s *Service) countNewsletterSends(order *domain.Order, impressions map[string]map[string]int) int {
	if len(impressions) == 0 {
		return 0
	}

	groups := make([]domain.ItemPathDates, 0, len(impressions))
	for itemPath, byDate := range impressions {
		dates := make([]string, 0, len(byDate))
		for date := range byDate {
			dates = append(dates, date)
		}
		groups = append(groups, domain.ItemPathDates{
			ItemPath:          itemPath,
			Dates:             dates,
			ImpressionsByDate: byDate,
		})
	}

	return domain.CountNewsletterSends(
		groups,
		s.cfg.SendDetection.GapDays,
		order.SubscribersByItemPath(),
		s.cfg.SendDetection.MinOpenRate,
	)
}

// diagnosePixelHealth classifica o estado do tracking automatizado da ordem
// a partir de TODAS as entradas automatizadas, inclusive as inválidas.
func diagnosePixelHealth(entries []*domain.PerformanceEntry, now time.Time) *domain.PixelHealth {
	var totalAutomated, badCount, attributedCount, totalImpressions int

	for _, entry := range entries {
		if entry.Source != domain.SourceAutomated {
			continue
		}

		totalAutomated++
		totalImpressions += entry.Metrics.Impressions

		if entry.HasValidationFailure() || entry.IsBarePixelFire() {
			badCount++
			continue
		}

		if entry.Metrics.Impressions > 0 {
			attributedCount++
		}
	}

	health := &domain.PixelHealth{
		BadEntryCount:         badCount,
		TotalAutomatedEntries: totalAutomated,
		LastChecked:           now,
	}

	switch {
	case badCount > 0:
		health.Status = domain.PixelError
		health.Message = pixelErrorMessage
	case totalAutomated == 0:
		health.Status = domain.PixelNoData
		health.Message = pixelNoDataMessage
	case attributedCount == 0 && totalImpressions <= pixelActivityFloor:
		health.Status = domain.PixelWarning
		health.Message = pixelWarningMessage
	default:
		health.Status = domain.PixelHealthy
		health.Message = pixelHealthyMessage
	}

	return health
}

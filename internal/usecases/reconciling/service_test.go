package reconciling

import (
	"context"
	"testing"
	"time"

	"github.com/shawnempower/chicago-hub-api/infrastructure/repository/mocks"
	"github.com/shawnempower/chicago-hub-api/internal/config"
	"github.com/shawnempower/chicago-hub-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		SendDetection: config.SendDetection{GapDays: 2},
	}
}

func date(value string) time.Time {
	t, _ := time.Parse(time.DateOnly, value)
	return t
}

// refreshAndCapture executa a reconciliação e captura o resumo persistido
func refreshAndCapture(
	t *testing.T,
	order *domain.Order,
	entries []*domain.PerformanceEntry,
) *domain.DeliverySummary {
	t.Helper()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockEntryRepo := mocks.NewMockPerformanceEntryRepository(ctrl)

	mockOrderRepo.EXPECT().GetByID(order.ID).Return(order, nil)
	mockEntryRepo.EXPECT().ListActiveByOrderID(order.ID).Return(entries, nil)

	var captured *domain.DeliverySummary
	mockOrderRepo.EXPECT().
		UpdateDeliverySummary(order.ID, gomock.Any()).
		DoAndReturn(func(_ string, summary *domain.DeliverySummary) error {
			captured = summary
			return nil
		})

	service := &Service{
		orderRepo: mockOrderRepo,
		entryRepo: mockEntryRepo,
		cfg:       testConfig(),
	}

	err := service.RefreshOrderDeliverySummary(context.Background(), order.ID)
	require.NoError(t, err)
	require.NotNil(t, captured)

	return captured
}

func TestRefreshOrderDeliverySummary_WebsiteOverdelivery(t *testing.T) {
	// Cenário ponta a ponta: um placement de website com meta de 10.000
	// impressões e duas entradas automatizadas válidas de 5.000 e 6.000
	order := &domain.Order{
		ID: "ORD001",
		SelectedInventory: []domain.InventoryItem{
			{ItemPath: "website.homepage.banner", Channel: domain.ChannelWebsite},
		},
		DeliveryGoals: map[string]float64{"website.homepage.banner": 10000},
	}

	entries := []*domain.PerformanceEntry{
		{
			OrderID:   "ORD001",
			ItemPath:  "website.homepage.banner",
			ItemName:  "Homepage Banner 728x90",
			Channel:   domain.ChannelWebsite,
			DateStart: date("2024-03-01"),
			Source:    domain.SourceAutomated,
			Metrics:   domain.EntryMetrics{Impressions: 5000},
		},
		{
			OrderID:   "ORD001",
			ItemPath:  "website.homepage.banner",
			ItemName:  "Homepage Banner 728x90",
			Channel:   domain.ChannelWebsite,
			DateStart: date("2024-03-02"),
			Source:    domain.SourceAutomated,
			Metrics:   domain.EntryMetrics{Impressions: 6000},
		},
	}

	summary := refreshAndCapture(t, order, entries)

	website := summary.ByChannel[domain.ChannelWebsite]
	require.NotNil(t, website)
	assert.Equal(t, 10000.0, website.Goal)
	assert.Equal(t, 11000, website.Delivered)
	assert.Equal(t, 110, website.DeliveryPercent) // Superentrega não satura
	assert.Equal(t, domain.GoalTypeImpressions, website.GoalType)
	assert.Equal(t, "Impressions", website.VolumeLabel)

	assert.Equal(t, 11000, summary.TotalDelivered)
	assert.Equal(t, 110, summary.DeliveryPercent)

	// Dois relatórios para um placement esperado: percentual de relatórios satura em 100
	assert.Equal(t, 1, summary.TotalExpectedReports)
	assert.Equal(t, 2, summary.TotalReportsSubmitted)
	assert.Equal(t, 100, summary.ReportsPercent)

	// Entradas automatizadas atribuídas e com impressões: pixel saudável
	require.NotNil(t, summary.PixelHealth)
	assert.Equal(t, domain.PixelHealthy, summary.PixelHealth.Status)
	assert.Equal(t, 0, summary.PixelHealth.BadEntryCount)
	assert.Equal(t, 2, summary.PixelHealth.TotalAutomatedEntries)
}

func TestRefreshOrderDeliverySummary_ZeroGoalNeverNaN(t *testing.T) {
	order := &domain.Order{
		ID: "ORD002",
		SelectedInventory: []domain.InventoryItem{
			{ItemPath: "website.sidebar", Channel: domain.ChannelWebsite},
		},
		// Nenhuma meta definida
		DeliveryGoals: map[string]float64{},
	}

	entries := []*domain.PerformanceEntry{
		{
			OrderID:   "ORD002",
			ItemPath:  "website.sidebar",
			ItemName:  "Sidebar",
			Channel:   domain.ChannelWebsite,
			DateStart: date("2024-03-01"),
			Source:    domain.SourceManual,
			Metrics:   domain.EntryMetrics{Impressions: 2500},
		},
	}

	summary := refreshAndCapture(t, order, entries)

	assert.Equal(t, 0.0, summary.TotalExpectedGoal)
	assert.Equal(t, 2500, summary.TotalDelivered)
	assert.Equal(t, 0, summary.DeliveryPercent)
	assert.Equal(t, 0, summary.ByChannel[domain.ChannelWebsite].DeliveryPercent)
}

func TestRefreshOrderDeliverySummary_BarePixelFires(t *testing.T) {
	// Disparos brutos de pixel somam impressões mas não contam como relatório
	order := &domain.Order{
		ID: "ORD003",
		SelectedInventory: []domain.InventoryItem{
			{ItemPath: "website.homepage.banner", Channel: domain.ChannelWebsite},
		},
		DeliveryGoals: map[string]float64{"website.homepage.banner": 1000},
	}

	entries := []*domain.PerformanceEntry{
		{
			OrderID:   "ORD003",
			ItemPath:  "website.homepage.banner",
			ItemName:  domain.TrackingPixelSentinel,
			Channel:   domain.ChannelWebsite,
			DateStart: date("2024-03-01"),
			Source:    domain.SourceAutomated,
			Metrics:   domain.EntryMetrics{Impressions: 500},
		},
		{
			OrderID:   "ORD003",
			ItemPath:  "website.homepage.banner",
			ItemName:  "Homepage Banner",
			Channel:   domain.ChannelWebsite,
			DateStart: date("2024-03-02"),
			Source:    domain.SourceManual,
			Metrics:   domain.EntryMetrics{Impressions: 300},
		},
	}

	summary := refreshAndCapture(t, order, entries)

	website := summary.ByChannel[domain.ChannelWebsite]
	require.NotNil(t, website)
	assert.Equal(t, 800, website.Delivered, "impressões do disparo bruto contam para o volume")
	assert.Equal(t, 1, summary.TotalReportsSubmitted, "disparo bruto não conta como relatório")

	// Entrada automatizada sem atribuição de criativo marca o pixel com erro
	require.NotNil(t, summary.PixelHealth)
	assert.Equal(t, domain.PixelError, summary.PixelHealth.Status)
	assert.Equal(t, 1, summary.PixelHealth.BadEntryCount)
	assert.Equal(t, 1, summary.PixelHealth.TotalAutomatedEntries)
}

func TestRefreshOrderDeliverySummary_InvalidEntriesExcluded(t *testing.T) {
	order := &domain.Order{
		ID: "ORD004",
		SelectedInventory: []domain.InventoryItem{
			{ItemPath: "website.homepage.banner", Channel: domain.ChannelWebsite},
		},
		DeliveryGoals: map[string]float64{"website.homepage.banner": 1000},
	}

	entries := []*domain.PerformanceEntry{
		{
			OrderID:          "ORD004",
			ItemPath:         "website.homepage.banner",
			ItemName:         "Homepage Banner",
			Channel:          domain.ChannelWebsite,
			DateStart:        date("2024-03-01"),
			Source:           domain.SourceAutomated,
			ValidationStatus: domain.ValidationInvalidTraffic,
			Metrics:          domain.EntryMetrics{Impressions: 90000},
		},
		{
			OrderID:   "ORD004",
			ItemPath:  "website.homepage.banner",
			ItemName:  "Homepage Banner",
			Channel:   domain.ChannelWebsite,
			DateStart: date("2024-03-02"),
			Source:    domain.SourceAutomated,
			Metrics:   domain.EntryMetrics{Impressions: 400},
		},
	}

	summary := refreshAndCapture(t, order, entries)

	// A entrada inválida não soma no volume, mas aparece no diagnóstico de pixel
	assert.Equal(t, 400, summary.ByChannel[domain.ChannelWebsite].Delivered)
	require.NotNil(t, summary.PixelHealth)
	assert.Equal(t, domain.PixelError, summary.PixelHealth.Status)
	assert.Equal(t, 1, summary.PixelHealth.BadEntryCount)
	assert.Equal(t, 2, summary.PixelHealth.TotalAutomatedEntries)
}

func TestRefreshOrderDeliverySummary_PixelHealthStates(t *testing.T) {
	digitalOrder := func(id string) *domain.Order {
		return &domain.Order{
			ID: id,
			SelectedInventory: []domain.InventoryItem{
				{ItemPath: "website.homepage.banner", Channel: domain.ChannelWebsite},
			},
			DeliveryGoals: map[string]float64{"website.homepage.banner": 1000},
		}
	}

	t.Run("Sem entradas automatizadas - no_data", func(t *testing.T) {
		entries := []*domain.PerformanceEntry{
			{
				OrderID:   "ORD005",
				ItemPath:  "website.homepage.banner",
				ItemName:  "Homepage Banner",
				Channel:   domain.ChannelWebsite,
				DateStart: date("2024-03-01"),
				Source:    domain.SourceManual,
				Metrics:   domain.EntryMetrics{Impressions: 100},
			},
		}

		summary := refreshAndCapture(t, digitalOrder("ORD005"), entries)

		require.NotNil(t, summary.PixelHealth)
		assert.Equal(t, domain.PixelNoData, summary.PixelHealth.Status)
		assert.Equal(t, 0, summary.PixelHealth.TotalAutomatedEntries)
	})

	t.Run("Pixel dispara sem atividade relevante - warning", func(t *testing.T) {
		entries := []*domain.PerformanceEntry{
			{
				OrderID:   "ORD006",
				ItemPath:  "website.homepage.banner",
				ItemName:  "Homepage Banner",
				Channel:   domain.ChannelWebsite,
				DateStart: date("2024-03-01"),
				Source:    domain.SourceAutomated,
				Metrics:   domain.EntryMetrics{Impressions: 0},
			},
		}

		summary := refreshAndCapture(t, digitalOrder("ORD006"), entries)

		require.NotNil(t, summary.PixelHealth)
		assert.Equal(t, domain.PixelWarning, summary.PixelHealth.Status)
	})

	t.Run("Ordem sem placement digital ou newsletter - sem diagnóstico", func(t *testing.T) {
		order := &domain.Order{
			ID: "ORD007",
			SelectedInventory: []domain.InventoryItem{
				{ItemPath: "print.monthly.full-page", Channel: domain.ChannelPrint},
			},
			DeliveryGoals: map[string]float64{"print.monthly.full-page": 2},
		}

		summary := refreshAndCapture(t, order, nil)

		assert.Nil(t, summary.PixelHealth)
	})
}

func TestRefreshOrderDeliverySummary_NewsletterSends(t *testing.T) {
	order := &domain.Order{
		ID: "ORD008",
		SelectedInventory: []domain.InventoryItem{
			{ItemPath: "newsletters.daily.slot-1", Channel: domain.ChannelNewsletter, Subscribers: 12000},
		},
		DeliveryGoals: map[string]float64{"newsletters.daily.slot-1": 4},
	}

	newsletterEntry := func(day string, impressions int) *domain.PerformanceEntry {
		return &domain.PerformanceEntry{
			OrderID:   "ORD008",
			ItemPath:  "newsletters.daily.slot-1",
			ItemName:  "Daily Digest Sponsor",
			Channel:   domain.ChannelNewsletter,
			DateStart: date(day),
			Source:    domain.SourceManual,
			Metrics:   domain.EntryMetrics{Impressions: impressions},
		}
	}

	// Dois aglomerados de datas: 01-02/03 e 10/03
	entries := []*domain.PerformanceEntry{
		newsletterEntry("2024-03-01", 4000),
		newsletterEntry("2024-03-02", 1200),
		newsletterEntry("2024-03-10", 3800),
	}

	summary := refreshAndCapture(t, order, entries)

	newsletter := summary.ByChannel[domain.ChannelNewsletter]
	require.NotNil(t, newsletter)
	assert.Equal(t, 2, newsletter.Delivered, "newsletters são medidas em disparos, não em relatórios")
	assert.Equal(t, "Sends", newsletter.VolumeLabel)
	assert.Equal(t, domain.GoalTypeFrequency, newsletter.GoalType)
	assert.Equal(t, 50, newsletter.DeliveryPercent)

	// Os três relatórios ainda contam para a métrica de completude
	assert.Equal(t, 3, summary.TotalReportsSubmitted)
}

func TestRefreshOrderDeliverySummary_ChannelWithoutGoalStillReported(t *testing.T) {
	order := &domain.Order{
		ID: "ORD009",
		SelectedInventory: []domain.InventoryItem{
			{ItemPath: "radio.morning.spot", Channel: domain.ChannelRadio},
		},
		DeliveryGoals: map[string]float64{"radio.morning.spot": 10},
	}

	entries := []*domain.PerformanceEntry{
		{
			OrderID:   "ORD009",
			ItemPath:  "podcast.weekly.midroll",
			ItemName:  "Midroll 30s",
			Channel:   domain.ChannelPodcast,
			DateStart: date("2024-03-01"),
			Source:    domain.SourceManual,
			Metrics:   domain.EntryMetrics{Downloads: 900},
		},
	}

	summary := refreshAndCapture(t, order, entries)

	radio := summary.ByChannel[domain.ChannelRadio]
	require.NotNil(t, radio)
	assert.Equal(t, 10.0, radio.Goal)
	assert.Equal(t, 0, radio.Delivered)
	assert.Equal(t, "Spots", radio.VolumeLabel)

	podcast := summary.ByChannel[domain.ChannelPodcast]
	require.NotNil(t, podcast)
	assert.Equal(t, 0.0, podcast.Goal)
	assert.Equal(t, 1, podcast.Delivered)
	assert.Equal(t, "Episodes", podcast.VolumeLabel)
	assert.Equal(t, 0, podcast.DeliveryPercent)
}

func TestRefreshOrderDeliverySummary_ExcludedInventoryIgnored(t *testing.T) {
	order := &domain.Order{
		ID: "ORD010",
		SelectedInventory: []domain.InventoryItem{
			{ItemPath: "website.homepage.banner", Channel: domain.ChannelWebsite},
			{ItemPath: "website.archive.banner", Channel: domain.ChannelWebsite, Excluded: true},
		},
		DeliveryGoals: map[string]float64{
			"website.homepage.banner": 1000,
			"website.archive.banner":  9999,
		},
	}

	summary := refreshAndCapture(t, order, nil)

	assert.Equal(t, 1, summary.TotalExpectedReports)
	assert.Equal(t, 1000.0, summary.TotalExpectedGoal)
}

func TestRefreshOrderDeliverySummary_MissingOrderIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockEntryRepo := mocks.NewMockPerformanceEntryRepository(ctrl)

	mockOrderRepo.EXPECT().GetByID("GHOST").Return(nil, nil)
	// Nenhuma leitura de entradas nem escrita de resumo deve acontecer

	service := &Service{
		orderRepo: mockOrderRepo,
		entryRepo: mockEntryRepo,
		cfg:       testConfig(),
	}

	err := service.RefreshOrderDeliverySummary(context.Background(), "GHOST")
	assert.NoError(t, err)
}

func TestRefreshOrderDeliverySummary_MissingInventoryIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockEntryRepo := mocks.NewMockPerformanceEntryRepository(ctrl)

	mockOrderRepo.EXPECT().GetByID("ORD011").Return(&domain.Order{ID: "ORD011"}, nil)

	service := &Service{
		orderRepo: mockOrderRepo,
		entryRepo: mockEntryRepo,
		cfg:       testConfig(),
	}

	err := service.RefreshOrderDeliverySummary(context.Background(), "ORD011")
	assert.NoError(t, err)
}

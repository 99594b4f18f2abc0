package tracking

import (
	"context"
	"errors"
	"testing"
	"time"

	repomocks "github.com/shawnempower/chicago-hub-api/infrastructure/repository/mocks"
	"github.com/shawnempower/chicago-hub-api/internal/domain"
	reconcilermocks "github.com/shawnempower/chicago-hub-api/internal/usecases/reconciling/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T) (*Service, *repomocks.MockPerformanceEntryRepository, *reconcilermocks.MockOrderReconciler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockEntryRepo := repomocks.NewMockPerformanceEntryRepository(ctrl)
	mockReconciler := reconcilermocks.NewMockOrderReconciler(ctrl)

	service := &Service{
		entryRepo:  mockEntryRepo,
		reconciler: mockReconciler,
	}

	return service, mockEntryRepo, mockReconciler
}

func TestCreateEntry(t *testing.T) {
	t.Run("Entrada válida é inserida e dispara reconciliação", func(t *testing.T) {
		service, mockEntryRepo, mockReconciler := newTestService(t)

		entry := &domain.PerformanceEntry{
			OrderID:   "ORD001",
			ItemPath:  "website.homepage.banner",
			Channel:   "Website", // capitalização de entrada é normalizada
			DateStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Metrics:   domain.EntryMetrics{Impressions: 1000},
		}

		mockEntryRepo.EXPECT().Insert(gomock.Any()).Return(nil)
		mockReconciler.EXPECT().RefreshBestEffort(gomock.Any(), "ORD001")

		created, err := service.CreateEntry(context.Background(), entry)
		require.NoError(t, err)

		assert.NotEmpty(t, created.ID)
		assert.Equal(t, domain.SourceManual, created.Source)
		assert.Equal(t, domain.ChannelWebsite, created.Channel)
	})

	t.Run("Entrada sem orderId é rejeitada", func(t *testing.T) {
		service, _, _ := newTestService(t)

		entry := &domain.PerformanceEntry{
			Channel:   domain.ChannelWebsite,
			DateStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		}

		_, err := service.CreateEntry(context.Background(), entry)
		assert.ErrorIs(t, err, ErrOrderIDRequired)
	})
}

func TestIngestAutomatedEntry(t *testing.T) {
	service, mockEntryRepo, mockReconciler := newTestService(t)

	entry := &domain.PerformanceEntry{
		OrderID:   "ORD001",
		ItemPath:  "website.homepage.banner",
		Channel:   domain.ChannelWebsite,
		DateStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Metrics:   domain.EntryMetrics{Impressions: 42},
	}

	mockEntryRepo.EXPECT().Insert(gomock.Any()).Return(nil)
	mockReconciler.EXPECT().RefreshBestEffort(gomock.Any(), "ORD001")

	created, err := service.IngestAutomatedEntry(context.Background(), entry)
	require.NoError(t, err)

	assert.Equal(t, domain.SourceAutomated, created.Source)
	// Disparo sem atribuição de criativo recebe o itemName sentinela
	assert.Equal(t, domain.TrackingPixelSentinel, created.ItemName)
	assert.True(t, created.IsImmutable())
}

func TestUpdateEntry(t *testing.T) {
	t.Run("Entrada automatizada é imutável", func(t *testing.T) {
		service, mockEntryRepo, _ := newTestService(t)

		mockEntryRepo.EXPECT().GetByID("ENT001").Return(&domain.PerformanceEntry{
			ID:      "ENT001",
			OrderID: "ORD001",
			Source:  domain.SourceAutomated,
		}, nil)

		newName := "Homepage Banner"
		_, err := service.UpdateEntry(context.Background(), &UpdateEntryRequest{
			ID:       "ENT001",
			ItemName: &newName,
		})

		assert.ErrorIs(t, err, ErrEntryImmutable)
	})

	t.Run("Entrada manual aceita edições parciais", func(t *testing.T) {
		service, mockEntryRepo, mockReconciler := newTestService(t)

		existing := &domain.PerformanceEntry{
			ID:       "ENT002",
			OrderID:  "ORD001",
			ItemPath: "website.homepage.banner",
			ItemName: "Banner antigo",
			Channel:  domain.ChannelWebsite,
			Source:   domain.SourceManual,
			Metrics:  domain.EntryMetrics{Impressions: 100},
		}

		mockEntryRepo.EXPECT().GetByID("ENT002").Return(existing, nil)
		mockEntryRepo.EXPECT().Update(gomock.Any()).Return(nil)
		mockReconciler.EXPECT().RefreshBestEffort(gomock.Any(), "ORD001")

		newMetrics := domain.EntryMetrics{Impressions: 250}
		updated, err := service.UpdateEntry(context.Background(), &UpdateEntryRequest{
			ID:      "ENT002",
			Metrics: &newMetrics,
		})
		require.NoError(t, err)

		assert.Equal(t, 250, updated.Metrics.Impressions)
		assert.Equal(t, "Banner antigo", updated.ItemName, "campos não informados são preservados")
	})

	t.Run("Entrada inexistente", func(t *testing.T) {
		service, mockEntryRepo, _ := newTestService(t)

		mockEntryRepo.EXPECT().GetByID("GHOST").Return(nil, nil)

		_, err := service.UpdateEntry(context.Background(), &UpdateEntryRequest{ID: "GHOST"})
		assert.ErrorIs(t, err, ErrEntryNotFound)
	})
}

func TestDeleteEntry(t *testing.T) {
	t.Run("Exclusão é lógica e dispara reconciliação", func(t *testing.T) {
		service, mockEntryRepo, mockReconciler := newTestService(t)

		mockEntryRepo.EXPECT().GetByID("ENT003").Return(&domain.PerformanceEntry{
			ID:      "ENT003",
			OrderID: "ORD009",
			Source:  domain.SourceManual,
		}, nil)
		mockEntryRepo.EXPECT().SoftDelete("ENT003", gomock.Any()).Return(nil)
		mockReconciler.EXPECT().RefreshBestEffort(gomock.Any(), "ORD009")

		err := service.DeleteEntry(context.Background(), "ENT003")
		assert.NoError(t, err)
	})

	t.Run("Entrada automatizada não pode ser excluída", func(t *testing.T) {
		service, mockEntryRepo, _ := newTestService(t)

		mockEntryRepo.EXPECT().GetByID("ENT004").Return(&domain.PerformanceEntry{
			ID:      "ENT004",
			OrderID: "ORD009",
			Source:  domain.SourceAutomated,
		}, nil)

		err := service.DeleteEntry(context.Background(), "ENT004")
		assert.ErrorIs(t, err, ErrEntryImmutable)
	})

	t.Run("Entrada já excluída", func(t *testing.T) {
		service, mockEntryRepo, _ := newTestService(t)

		deletedAt := time.Now()
		mockEntryRepo.EXPECT().GetByID("ENT005").Return(&domain.PerformanceEntry{
			ID:        "ENT005",
			OrderID:   "ORD009",
			Source:    domain.SourceManual,
			DeletedAt: &deletedAt,
		}, nil)

		err := service.DeleteEntry(context.Background(), "ENT005")
		assert.ErrorIs(t, err, ErrEntryDeleted)
	})
}

func TestBulkImport(t *testing.T) {
	t.Run("Lote misto insere válidas e rejeita inválidas", func(t *testing.T) {
		service, mockEntryRepo, mockReconciler := newTestService(t)

		entries := []*domain.PerformanceEntry{
			{
				OrderID:   "ORD001",
				ItemPath:  "website.homepage.banner",
				Channel:   domain.ChannelWebsite,
				DateStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			},
			{
				OrderID:   "ORD002",
				ItemPath:  "print.monthly.full-page",
				Channel:   domain.ChannelPrint,
				DateStart: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			},
			{
				// Sem orderId: rejeitada
				Channel:   domain.ChannelWebsite,
				DateStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			},
		}

		mockEntryRepo.EXPECT().
			InsertBatch(gomock.Any()).
			DoAndReturn(func(batch []*domain.PerformanceEntry) error {
				assert.Len(t, batch, 2)
				return nil
			})

		// Uma reconciliação por ordem afetada, não por entrada
		mockReconciler.EXPECT().RefreshBestEffort(gomock.Any(), "ORD001")
		mockReconciler.EXPECT().RefreshBestEffort(gomock.Any(), "ORD002")

		result, err := service.BulkImport(context.Background(), entries)
		require.NoError(t, err)

		assert.Equal(t, 2, result.Inserted)
		assert.Equal(t, 1, result.Rejected)
		assert.Len(t, result.Errors, 1)
	})

	t.Run("Falha de banco não reconcilia nada", func(t *testing.T) {
		service, mockEntryRepo, _ := newTestService(t)

		entries := []*domain.PerformanceEntry{
			{
				OrderID:   "ORD001",
				Channel:   domain.ChannelWebsite,
				DateStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			},
		}

		mockEntryRepo.EXPECT().InsertBatch(gomock.Any()).Return(errors.New("conexão perdida"))

		_, err := service.BulkImport(context.Background(), entries)
		assert.ErrorIs(t, err, ErrDatabaseOperation)
	})
}

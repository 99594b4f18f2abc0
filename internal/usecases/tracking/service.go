package tracking

import (
	"context"
	"time"

	"github.com/shawnempower/chicago-hub-api/infrastructure/repository"
	"github.com/shawnempower/chicago-hub-api/internal/domain"
	"github.com/shawnempower/chicago-hub-api/internal/usecases/reconciling"
	"github.com/shawnempower/chicago-hub-api/pkg/apiErrors"
	"github.com/shawnempower/chicago-hub-api/pkg/log"
	"github.com/shawnempower/chicago-hub-api/pkg/utils"
)

// UpdateEntryRequest carrega os campos editáveis de uma entrada. Campos nil
// são preservados.
type UpdateEntryRequest struct {
	ID               string                   `json:"id"`
	ItemPath         *string                  `json:"itemPath"`
	ItemName         *string                  `json:"itemName"`
	Channel          *string                  `json:"channel"`
	DateStart        *time.Time               `json:"dateStart"`
	DateEnd          *time.Time               `json:"dateEnd"`
	Metrics          *domain.EntryMetrics     `json:"metrics"`
	ValidationStatus *domain.ValidationStatus `json:"validationStatus"`
}

// BulkImportResult resume uma importação em massa.
type BulkImportResult struct {
	Inserted int      `json:"inserted"`
	Rejected int      `json:"rejected"`
	Errors   []string `json:"errors,omitempty"`
}

// Tracker gerencia o ciclo de vida das entradas de performance. Toda
// mutação dispara a reconciliação best-effort do resumo da ordem afetada.
type Tracker interface {
	CreateEntry(ctx context.Context, entry *domain.PerformanceEntry) (*domain.PerformanceEntry, error)
	IngestAutomatedEntry(ctx context.Context, entry *domain.PerformanceEntry) (*domain.PerformanceEntry, error)
	UpdateEntry(ctx context.Context, req *UpdateEntryRequest) (*domain.PerformanceEntry, error)
	DeleteEntry(ctx context.Context, entryID string) error
	BulkImport(ctx context.Context, entries []*domain.PerformanceEntry) (*BulkImportResult, error)
	ListOrderEntries(ctx context.Context, orderID string) ([]*domain.PerformanceEntry, error)
}

type Service struct {
	entryRepo  repository.PerformanceEntryRepository
	reconciler reconciling.OrderReconciler
}

// NewService cria uma nova instância do serviço de entradas de performance
func NewService(
	entryRepo repository.PerformanceEntryRepository,
	reconciler reconciling.OrderReconciler,
) Tracker {
	return &Service{
		entryRepo:  entryRepo,
		reconciler: reconciler,
	}
}

// CreateEntry registra uma entrada reportada manualmente (publisher ou
// admin do hub).
func (s *Service) CreateEntry(ctx context.Context, entry *domain.PerformanceEntry) (*domain.PerformanceEntry, error) {
	if entry.Source == "" {
		entry.Source = domain.SourceManual
	}

	return s.insertEntry(ctx, entry)
}

// IngestAutomatedEntry registra um disparo do pixel de tracking. A entrada
// nasce imutável.
func (s *Service) IngestAutomatedEntry(ctx context.Context, entry *domain.PerformanceEntry) (*domain.PerformanceEntry, error) {
	entry.Source = domain.SourceAutomated
	if entry.ItemName == "" {
		entry.ItemName = domain.TrackingPixelSentinel
	}

	return s.insertEntry(ctx, entry)
}

func (s *Service) insertEntry(ctx context.Context, entry *domain.PerformanceEntry) (*domain.PerformanceEntry, error) {
	if err := validateEntry(entry); err != nil {
		return nil, err
	}

	if entry.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, NewTrackingError(err, apiErrors.ErrInternalServer, "erro ao gerar ID da entrada")
		}
		entry.ID = id
	}

	if err := s.entryRepo.Insert(entry); err != nil {
		return nil, NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	s.reconciler.RefreshBestEffort(ctx, entry.OrderID)

	return entry, nil
}

// UpdateEntry aplica edições a uma entrada manual ou importada. Entradas
// automatizadas são imutáveis pelos fluxos normais.
func (s *Service) UpdateEntry(ctx context.Context, req *UpdateEntryRequest) (*domain.PerformanceEntry, error) {
	entry, err := s.entryRepo.GetByID(req.ID)
	if err != nil {
		return nil, NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if entry == nil {
		return nil, NewEntryError(ErrEntryNotFound, apiErrors.ErrEntryNotFound, req.ID, "")
	}

	if entry.DeletedAt != nil {
		return nil, NewEntryError(ErrEntryDeleted, apiErrors.ErrEntryDeleted, req.ID, "")
	}

	if entry.IsImmutable() {
		return nil, NewEntryError(ErrEntryImmutable, apiErrors.ErrEntryImmutable, req.ID, "")
	}

	if req.ItemPath != nil {
		entry.ItemPath = *req.ItemPath
	}
	if req.ItemName != nil {
		entry.ItemName = *req.ItemName
	}
	if req.Channel != nil {
		entry.Channel = domain.NormalizeChannel(*req.Channel)
	}
	if req.DateStart != nil {
		entry.DateStart = *req.DateStart
	}
	if req.DateEnd != nil {
		entry.DateEnd = req.DateEnd
	}
	if req.Metrics != nil {
		entry.Metrics = *req.Metrics
	}
	if req.ValidationStatus != nil {
		entry.ValidationStatus = *req.ValidationStatus
	}

	if err := s.entryRepo.Update(entry); err != nil {
		return nil, NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	s.reconciler.RefreshBestEffort(ctx, entry.OrderID)

	return entry, nil
}

// DeleteEntry marca a entrada como excluída. Exclusões são sempre lógicas.
func (s *Service) DeleteEntry(ctx context.Context, entryID string) error {
	entry, err := s.entryRepo.GetByID(entryID)
	if err != nil {
		return NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if entry == nil {
		return NewEntryError(ErrEntryNotFound, apiErrors.ErrEntryNotFound, entryID, "")
	}

	if entry.DeletedAt != nil {
		return NewEntryError(ErrEntryDeleted, apiErrors.ErrEntryDeleted, entryID, "")
	}

	if entry.IsImmutable() {
		return NewEntryError(ErrEntryImmutable, apiErrors.ErrEntryImmutable, entryID, "")
	}

	if err := s.entryRepo.SoftDelete(entryID, time.Now()); err != nil {
		return NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	s.reconciler.RefreshBestEffort(ctx, entry.OrderID)

	return nil
}

// BulkImport insere um lote de entradas (importação de planilha ou
// backfill de admin). Entradas inválidas são rejeitadas individualmente;
// as válidas são aplicadas em uma única transação.
func (s *Service) BulkImport(ctx context.Context, entries []*domain.PerformanceEntry) (*BulkImportResult, error) {
	logger := log.ForContext(ctx)

	result := &BulkImportResult{}
	accepted := make([]*domain.PerformanceEntry, 0, len(entries))
	orderIDs := make(map[string]bool)

	for _, entry := range entries {
		if entry.Source == "" {
			entry.Source = domain.SourceImport
		}

		if err := validateEntry(entry); err != nil {
			result.Rejected++
			result.Errors = append(result.Errors, err.Error())
			continue
		}

		if entry.ID == "" {
			id, err := utils.GenerateID()
			if err != nil {
				return nil, NewTrackingError(err, apiErrors.ErrInternalServer, "erro ao gerar ID da entrada")
			}
			entry.ID = id
		}

		accepted = append(accepted, entry)
		orderIDs[entry.OrderID] = true
	}

	if len(accepted) > 0 {
		if err := s.entryRepo.InsertBatch(accepted); err != nil {
			return nil, NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}
		result.Inserted = len(accepted)
	}

	logger.WithFields(log.Fields{
		"inserted": result.Inserted,
		"rejected": result.Rejected,
		"orders":   len(orderIDs),
	}).Info("Importação em massa de entradas de performance concluída")

	for orderID := range orderIDs {
		s.reconciler.RefreshBestEffort(ctx, orderID)
	}

	return result, nil
}

// ListOrderEntries retorna as entradas não excluídas de uma ordem.
func (s *Service) ListOrderEntries(ctx context.Context, orderID string) ([]*domain.PerformanceEntry, error) {
	if orderID == "" {
		return nil, NewTrackingError(ErrOrderIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	entries, err := s.entryRepo.ListActiveByOrderID(orderID)
	if err != nil {
		return nil, NewTrackingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return entries, nil
}

func validateEntry(entry *domain.PerformanceEntry) error {
	if entry.OrderID == "" {
		return NewTrackingError(ErrOrderIDRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if entry.Channel == "" {
		return NewTrackingError(ErrChannelRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if entry.DateStart.IsZero() {
		return NewTrackingError(ErrDateStartRequired, apiErrors.ErrMissingRequiredData, "")
	}

	entry.Channel = domain.NormalizeChannel(string(entry.Channel))

	return nil
}

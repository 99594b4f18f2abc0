package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shawnempower/chicago-hub-api/infrastructure/database/postgres"
	"github.com/shawnempower/chicago-hub-api/internal/domain"
)

const (
	performanceEntriesTable   = "performance_entries pe"
	performanceEntriesColumns = "pe.id, pe.order_id, pe.campaign_id, pe.publication_id, pe.item_path, pe.item_name, pe.channel, pe.date_start, pe.date_end, pe.metrics, pe.source, pe.validation_status, pe.created_at, pe.updated_at, pe.deleted_at"
)

type PerformanceEntryRepository interface {
	GetByID(entryID string) (*domain.PerformanceEntry, error)
	ListActiveByOrderID(orderID string) ([]*domain.PerformanceEntry, error)
	Insert(entry *domain.PerformanceEntry) error
	InsertBatch(entries []*domain.PerformanceEntry) error
	Update(entry *domain.PerformanceEntry) error
	SoftDelete(entryID string, deletedAt time.Time) error
}

type performanceEntryRepository struct {
	conn *postgres.Connection
}

func NewPerformanceEntryRepository(conn *postgres.Connection) PerformanceEntryRepository {
	return &performanceEntryRepository{
		conn: conn,
	}
}

func (r *performanceEntryRepository) GetByID(entryID string) (*domain.PerformanceEntry, error) {
	query, args, err := squirrel.
		Select(performanceEntriesColumns).
		From(performanceEntriesTable).
		Where(squirrel.Eq{"pe.id": entryID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
		}
		return nil, nil
	}

	entry, err := r.scanEntry(rows)
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear entrada de performance: %w", err)
	}

	return entry, nil
}

// ListActiveByOrderID retorna todas as entradas não excluídas de uma ordem.
// A filtragem por status de validação é responsabilidade do agregador, que
// também precisa das entradas inválidas para o diagnóstico de pixel.
func (r *performanceEntryRepository) ListActiveByOrderID(orderID string) ([]*domain.PerformanceEntry, error) {
	query, args, err := squirrel.
		Select(performanceEntriesColumns).
		From(performanceEntriesTable).
		Where(squirrel.Eq{"pe.order_id": orderID}).
		Where("pe.deleted_at IS NULL").
		OrderBy("pe.date_start ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.PerformanceEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada de performance: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *performanceEntryRepository) Insert(entry *domain.PerformanceEntry) error {
	query, args, err := r.insertBuilder(entry).ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// InsertBatch insere as entradas em uma única transação, para que uma
// importação em massa seja aplicada por inteiro ou não seja aplicada.
func (r *performanceEntryRepository) InsertBatch(entries []*domain.PerformanceEntry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		for _, entry := range entries {
			query, args, err := r.insertBuilder(entry).ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("erro ao inserir entrada %s: %w", entry.ID, err)
			}
		}
		return nil
	})
}

func (r *performanceEntryRepository) Update(entry *domain.PerformanceEntry) error {
	metricsJSON, err := json.Marshal(entry.Metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update("performance_entries").
		Set("item_path", entry.ItemPath).
		Set("item_name", entry.ItemName).
		Set("channel", entry.Channel).
		Set("date_start", entry.DateStart).
		Set("date_end", entry.DateEnd).
		Set("metrics", metricsJSON).
		Set("validation_status", entry.ValidationStatus).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": entry.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

// SoftDelete marca a entrada como excluída. Entradas nunca são removidas
// fisicamente.
func (r *performanceEntryRepository) SoftDelete(entryID string, deletedAt time.Time) error {
	query, args, err := squirrel.
		Update("performance_entries").
		Set("deleted_at", deletedAt).
		Set("updated_at", deletedAt).
		Where(squirrel.Eq{"id": entryID}).
		Where("deleted_at IS NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao verificar linhas afetadas: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("entrada não encontrada ou já excluída: %s", entryID)
	}

	return nil
}

func (r *performanceEntryRepository) insertBuilder(entry *domain.PerformanceEntry) squirrel.InsertBuilder {
	metricsJSON, _ := json.Marshal(entry.Metrics)

	return squirrel.StatementBuilder.
		Insert("performance_entries").
		Columns("id", "order_id", "campaign_id", "publication_id", "item_path", "item_name", "channel", "date_start", "date_end", "metrics", "source", "validation_status").
		Values(
			entry.ID,
			entry.OrderID,
			entry.CampaignID,
			entry.PublicationID,
			entry.ItemPath,
			entry.ItemName,
			entry.Channel,
			entry.DateStart,
			entry.DateEnd,
			metricsJSON,
			entry.Source,
			entry.ValidationStatus,
		).
		PlaceholderFormat(squirrel.Dollar)
}

func (r *performanceEntryRepository) scanEntry(rows *sql.Rows) (*domain.PerformanceEntry, error) {
	var entry domain.PerformanceEntry
	var itemName, validationStatus sql.NullString
	var dateEnd, deletedAt sql.NullTime
	var metricsJSON []byte

	err := rows.Scan(
		&entry.ID,
		&entry.OrderID,
		&entry.CampaignID,
		&entry.PublicationID,
		&entry.ItemPath,
		&itemName,
		&entry.Channel,
		&entry.DateStart,
		&dateEnd,
		&metricsJSON,
		&entry.Source,
		&validationStatus,
		&entry.CreatedAt,
		&entry.UpdatedAt,
		&deletedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.ItemName = itemName.String
	entry.ValidationStatus = domain.ValidationStatus(validationStatus.String)

	if dateEnd.Valid {
		entry.DateEnd = &dateEnd.Time
	}
	if deletedAt.Valid {
		entry.DeletedAt = &deletedAt.Time
	}

	if len(metricsJSON) > 0 {
		if err := json.Unmarshal(metricsJSON, &entry.Metrics); err != nil {
			return nil, fmt.Errorf("erro ao desserializar métricas: %w", err)
		}
	}

	return &entry, nil
}

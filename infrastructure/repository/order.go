package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shawnempower/chicago-hub-api/infrastructure/database/postgres"
	"github.com/shawnempower/chicago-hub-api/internal/domain"
)

const (
	ordersTable = "orders o"
)

type OrderRepository interface {
	GetByID(orderID string) (*domain.Order, error)
	ListActiveIDs() ([]string, error)
	UpdateDeliverySummary(orderID string, summary *domain.DeliverySummary) error
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) GetByID(orderID string) (*domain.Order, error) {
	query, args, err := squirrel.
		Select("o.id, o.campaign_id, o.publication_id, o.status, o.selected_inventory, o.delivery_goals, o.delivery_summary, o.created_at, o.updated_at").
		From(ordersTable).
		Where(squirrel.Eq{"o.id": orderID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	order, err := r.scanOrder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear ordem: %w", err)
	}

	return order, nil
}

func (r *orderRepository) ListActiveIDs() ([]string, error) {
	query, args, err := squirrel.
		Select("o.id").
		From(ordersTable).
		Where(squirrel.Eq{"o.status": domain.OrderStatusActive}).
		OrderBy("o.created_at ASC").
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

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear id de ordem: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}

// UpdateDeliverySummary sobrescreve o resumo de entrega da ordem por inteiro.
// O resumo nunca é atualizado de forma incremental.
func (r *orderRepository) UpdateDeliverySummary(orderID string, summary *domain.DeliverySummary) error {
	summaryJSON, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("erro ao serializar DeliverySummary para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update("orders").
		Set("delivery_summary", summaryJSON).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": orderID}).
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
		return fmt.Errorf("ordem não encontrada: %s", orderID)
	}

	return nil
}

func (r *orderRepository) scanOrder(row *sql.Row) (*domain.Order, error) {
	var order domain.Order
	var inventoryJSON, goalsJSON []byte
	var summaryJSON sql.NullString

	err := row.Scan(
		&order.ID,
		&order.CampaignID,
		&order.PublicationID,
		&order.Status,
		&inventoryJSON,
		&goalsJSON,
		&summaryJSON,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(inventoryJSON) > 0 {
		if err := json.Unmarshal(inventoryJSON, &order.SelectedInventory); err != nil {
			return nil, fmt.Errorf("erro ao desserializar selected_inventory: %w", err)
		}
	}

	if len(goalsJSON) > 0 {
		if err := json.Unmarshal(goalsJSON, &order.DeliveryGoals); err != nil {
			return nil, fmt.Errorf("erro ao desserializar delivery_goals: %w", err)
		}
	}

	if summaryJSON.Valid && summaryJSON.String != "" {
		summary := &domain.DeliverySummary{}
		if err := json.Unmarshal([]byte(summaryJSON.String), summary); err != nil {
			return nil, fmt.Errorf("erro ao desserializar delivery_summary: %w", err)
		}
		order.DeliverySummary = summary
	}

	return &order, nil
}

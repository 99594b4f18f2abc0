package domain

import "time"

// OrderStatus representa o ciclo de vida de uma ordem de inserção.
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusActive    OrderStatus = "active"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// InventoryItem é um item do snapshot de inventário da ordem. O snapshot da
// ordem é a fonte de verdade para a reconciliação: o inventário da campanha
// pode divergir do que foi de fato contratado.
type InventoryItem struct {
	ItemPath    string  `json:"itemPath"`
	ItemName    string  `json:"itemName,omitempty"`
	Channel     Channel `json:"channel"`
	Excluded    bool    `json:"excluded,omitempty"`
	Subscribers int     `json:"subscribers,omitempty"`
}

// Order é uma ordem de inserção de uma publicação dentro de uma campanha,
// a unidade sobre a qual a entrega é reconciliada.
type Order struct {
	ID                string             `json:"id"`
	CampaignID        string             `json:"campaignId"`
	PublicationID     string             `json:"publicationId"`
	Status            OrderStatus        `json:"status"`
	SelectedInventory []InventoryItem    `json:"selectedInventory"`
	DeliveryGoals     map[string]float64 `json:"deliveryGoals"`
	DeliverySummary   *DeliverySummary   `json:"deliverySummary,omitempty"`
	CreatedAt         time.Time          `json:"createdAt"`
	UpdatedAt         time.Time          `json:"updatedAt"`
}

// GoalFor retorna a meta de entrega de um item pelo seu path, ou zero se
// nenhuma meta foi definida.
func (o *Order) GoalFor(itemPath string) float64 {
	if o.DeliveryGoals == nil {
		return 0
	}
	return o.DeliveryGoals[itemPath]
}

// SubscribersByItemPath monta o mapa de assinantes por placement de
// newsletter, usado na supressão de ruído da detecção de disparos.
func (o *Order) SubscribersByItemPath() map[string]int {
	subscribers := make(map[string]int)
	for _, item := range o.SelectedInventory {
		if item.Channel == ChannelNewsletter && item.Subscribers > 0 {
			subscribers[item.ItemPath] = item.Subscribers
		}
	}
	return subscribers
}

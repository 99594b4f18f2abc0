package domain

import (
	"time"
)

// EntrySource indica a origem de uma entrada de performance.
type EntrySource string

const (
	SourceManual    EntrySource = "manual"
	SourceAutomated EntrySource = "automated"
	SourceImport    EntrySource = "import"
)

// ValidationStatus sinaliza problemas detectados upstream nos dados de tracking.
type ValidationStatus string

const (
	ValidationOK             ValidationStatus = ""
	ValidationBadPixel       ValidationStatus = "bad_pixel"
	ValidationInvalidOrderID ValidationStatus = "invalid_orderId"
	ValidationInvalidTraffic ValidationStatus = "invalid_traffic"
)

// TrackingPixelSentinel é o itemName usado por disparos brutos de pixel
// que ainda não têm atribuição de criativo.
const TrackingPixelSentinel = "tracking-pixel"

// EntryMetrics agrupa as métricas reportadas, esparsas por canal.
type EntryMetrics struct {
	Impressions int `json:"impressions,omitempty"`
	Clicks      int `json:"clicks,omitempty"`
	Reach       int `json:"reach,omitempty"`
	Insertions  int `json:"insertions,omitempty"`
	SpotsAired  int `json:"spotsAired,omitempty"`
	Downloads   int `json:"downloads,omitempty"`
	Posts       int `json:"posts,omitempty"`
	Circulation int `json:"circulation,omitempty"`
}

// Add acumula as métricas de outra entrada.
func (m *EntryMetrics) Add(other EntryMetrics) {
	m.Impressions += other.Impressions
	m.Clicks += other.Clicks
	m.Reach += other.Reach
	m.Insertions += other.Insertions
	m.SpotsAired += other.SpotsAired
	m.Downloads += other.Downloads
	m.Posts += other.Posts
	m.Circulation += other.Circulation
}

// PerformanceEntry representa um registro de entrega reportado por um
// publisher, lançado por um admin do hub ou ingerido pelo pixel de tracking.
type PerformanceEntry struct {
	ID               string           `json:"id"`
	OrderID          string           `json:"orderId"`
	CampaignID       string           `json:"campaignId"`
	PublicationID    string           `json:"publicationId"`
	ItemPath         string           `json:"itemPath"`
	ItemName         string           `json:"itemName,omitempty"`
	Channel          Channel          `json:"channel"`
	DateStart        time.Time        `json:"dateStart"`
	DateEnd          *time.Time       `json:"dateEnd,omitempty"`
	Metrics          EntryMetrics     `json:"metrics"`
	Source           EntrySource      `json:"source"`
	ValidationStatus ValidationStatus `json:"validationStatus,omitempty"`
	CreatedAt        time.Time        `json:"createdAt"`
	UpdatedAt        time.Time        `json:"updatedAt"`
	DeletedAt        *time.Time       `json:"deletedAt,omitempty"`
}

// HasValidationFailure indica se a entrada foi marcada como inválida pelo
// pipeline de validação upstream.
func (e *PerformanceEntry) HasValidationFailure() bool {
	switch e.ValidationStatus {
	case ValidationBadPixel, ValidationInvalidOrderID, ValidationInvalidTraffic:
		return true
	}
	return false
}

// IsBarePixelFire indica um disparo bruto de pixel sem atribuição de
// criativo. As impressões contam para o volume digital, mas a entrada não
// conta como relatório submetido.
func (e *PerformanceEntry) IsBarePixelFire() bool {
	return e.Source == SourceAutomated &&
		(e.ItemName == "" || e.ItemName == TrackingPixelSentinel)
}

// CountsAsReport indica se a entrada incrementa o contador de relatórios
// submetidos do canal.
func (e *PerformanceEntry) CountsAsReport() bool {
	return !e.IsBarePixelFire()
}

// IsImmutable indica se a entrada não pode ser editada nem excluída pelos
// fluxos normais. Entradas automatizadas são imutáveis.
func (e *PerformanceEntry) IsImmutable() bool {
	return e.Source == SourceAutomated
}

package domain

import "time"

// PixelHealthStatus classifica o estado do pixel de tracking de uma ordem.
type PixelHealthStatus string

const (
	PixelHealthy PixelHealthStatus = "healthy"
	PixelWarning PixelHealthStatus = "warning"
	PixelError   PixelHealthStatus = "error"
	PixelNoData  PixelHealthStatus = "no_data"
)

// PixelHealth é o diagnóstico do tracking automatizado de uma ordem,
// presente apenas quando a ordem tem algum placement digital ou de
// newsletter.
type PixelHealth struct {
	Status                PixelHealthStatus `json:"status"`
	Message               string            `json:"message"`
	BadEntryCount         int               `json:"badEntryCount"`
	TotalAutomatedEntries int               `json:"totalAutomatedEntries"`
	LastChecked           time.Time         `json:"lastChecked"`
}

// ChannelDelivery é o resumo de entrega de um canal.
type ChannelDelivery struct {
	Goal            float64  `json:"goal"`
	Delivered       int      `json:"delivered"`
	DeliveryPercent int      `json:"deliveryPercent"`
	GoalType        GoalType `json:"goalType"`
	VolumeLabel     string   `json:"volumeLabel"`
}

// DeliverySummary é o resumo de entrega persistido na ordem, recalculado
// por inteiro a cada mutação de entrada de performance. ReportsPercent é uma
// métrica de completude e satura em 100; DeliveryPercent é uma métrica de
// volume e pode ultrapassar 100 (superentrega é um estado válido).
type DeliverySummary struct {
	TotalExpectedReports  int                          `json:"totalExpectedReports"`
	TotalReportsSubmitted int                          `json:"totalReportsSubmitted"`
	ReportsPercent        int                          `json:"reportsPercent"`
	TotalExpectedGoal     float64                      `json:"totalExpectedGoal"`
	TotalDelivered        int                          `json:"totalDelivered"`
	DeliveryPercent       int                          `json:"deliveryPercent"`
	ByChannel             map[Channel]*ChannelDelivery `json:"byChannel"`
	PixelHealth           *PixelHealth                 `json:"pixelHealth,omitempty"`
	UpdatedAt             time.Time                    `json:"updatedAt"`
}

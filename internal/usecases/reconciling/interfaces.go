package reconciling

import "context"

// OrderReconciler recomputa o resumo de entrega de uma ordem a partir das
// suas metas e entradas de performance vigentes.
type OrderReconciler interface {
	// RefreshOrderDeliverySummary recalcula e persiste o resumo por inteiro,
	// retornando erro. É o ponto de entrada síncrono para chamadores que
	// precisam de garantia de frescor.
	RefreshOrderDeliverySummary(ctx context.Context, orderID string) error

	// RefreshBestEffort recalcula o resumo como efeito colateral de outra
	// operação: falhas são logadas e engolidas, nunca propagadas. Chamadores
	// não devem depender do resumo estar fresco quando a requisição retorna.
	RefreshBestEffort(ctx context.Context, orderID string)
}

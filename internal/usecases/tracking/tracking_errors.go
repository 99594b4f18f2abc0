package tracking

import (
	"errors"
	"fmt"
)

// Erros específicos do contexto de entradas de performance
var (
	// Erros de validação
	ErrOrderIDRequired     = errors.New("orderId é obrigatório")
	ErrChannelRequired     = errors.New("channel é obrigatório")
	ErrDateStartRequired   = errors.New("dateStart é obrigatório")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")

	// Erros de ciclo de vida
	ErrEntryNotFound  = errors.New("entrada de performance não encontrada")
	ErrEntryDeleted   = errors.New("entrada de performance já excluída")
	ErrEntryImmutable = errors.New("entradas automatizadas não podem ser alteradas ou excluídas")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("erro ao realizar operação no banco de dados")
)

// TrackingError é um erro com contexto adicional para entradas de performance
type TrackingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	EntryID string // ID da entrada envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *TrackingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *TrackingError) Unwrap() error {
	return e.Err
}

// NewTrackingError cria um novo erro de tracking
func NewTrackingError(baseErr error, code string, details string) *TrackingError {
	return &TrackingError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewEntryError cria um novo erro de tracking com contexto da entrada
func NewEntryError(baseErr error, code string, entryID string, details string) *TrackingError {
	return &TrackingError{
		Err:     baseErr,
		Code:    code,
		EntryID: entryID,
		Details: details,
	}
}

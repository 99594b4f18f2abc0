package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountSendBursts(t *testing.T) {
	tests := []struct {
		name     string
		dates    []string
		gapDays  int
		expected int
	}{
		{
			name:     "Sem datas - nenhum disparo",
			dates:    []string{},
			gapDays:  2,
			expected: 0,
		},
		{
			name:     "Data única - um disparo",
			dates:    []string{"2024-03-05"},
			gapDays:  2,
			expected: 1,
		},
		{
			name:     "Datas próximas fora de ordem - um disparo (invariância de permutação)",
			dates:    []string{"2024-03-05", "2024-03-01", "2024-03-03"},
			gapDays:  2,
			expected: 1,
		},
		{
			name:     "Intervalo exatamente no limite não divide o disparo",
			dates:    []string{"2024-01-01", "2024-01-03"},
			gapDays:  2,
			expected: 1,
		},
		{
			name:     "Intervalo acima do limite divide o disparo",
			dates:    []string{"2024-01-01", "2024-01-04"},
			gapDays:  2,
			expected: 2,
		},
		{
			name:     "Datas duplicadas não inflam a contagem",
			dates:    []string{"2024-01-01", "2024-01-01", "2024-01-02"},
			gapDays:  2,
			expected: 1,
		},
		{
			name:     "Múltiplos disparos bem separados",
			dates:    []string{"2024-01-01", "2024-01-02", "2024-01-15", "2024-01-16", "2024-02-01"},
			gapDays:  2,
			expected: 3,
		},
		{
			name:     "Datas inválidas são descartadas",
			dates:    []string{"2024-01-01", "not-a-date", "2024-01-02"},
			gapDays:  2,
			expected: 1,
		},
		{
			name:     "Somente datas inválidas - nenhum disparo",
			dates:    []string{"31/01/2024", "banana"},
			gapDays:  2,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CountSendBursts(tt.dates, tt.gapDays))
		})
	}
}

func TestCountSendBursts_NonEmptyAlwaysAtLeastOne(t *testing.T) {
	// Qualquer sequência não vazia de datas válidas resulta em pelo menos um disparo
	sequences := [][]string{
		{"2024-06-01"},
		{"2024-06-01", "2024-12-31"},
		{"2024-06-01", "2024-06-01", "2024-06-01"},
	}

	for _, dates := range sequences {
		assert.GreaterOrEqual(t, CountSendBursts(dates, 2), 1)
	}
}

func TestCountNewsletterSends(t *testing.T) {
	t.Run("Aditivo entre placements independentes", func(t *testing.T) {
		groupA := ItemPathDates{
			ItemPath: "newsletters.daily.slot-1",
			Dates:    []string{"2024-01-01", "2024-01-02"},
		}
		groupB := ItemPathDates{
			ItemPath: "newsletters.weekly.slot-2",
			Dates:    []string{"2024-01-10", "2024-01-20"},
		}

		individual := CountSendBursts(groupA.Dates, 2) + CountSendBursts(groupB.Dates, 2)
		combined := CountNewsletterSends([]ItemPathDates{groupA, groupB}, 2, nil, 0)

		assert.Equal(t, individual, combined)
		assert.Equal(t, 3, combined)
	})

	t.Run("Supressão de ruído descarta dias com volume implausível", func(t *testing.T) {
		group := ItemPathDates{
			ItemPath: "newsletters.daily.slot-1",
			Dates:    []string{"2024-01-01", "2024-01-10"},
			ImpressionsByDate: map[string]int{
				"2024-01-01": 4000,
				"2024-01-10": 3, // aberturas residuais, não é um disparo real
			},
		}
		subscribers := map[string]int{"newsletters.daily.slot-1": 10000}

		// Sem supressão, os dois dias contam como dois disparos
		assert.Equal(t, 2, CountNewsletterSends([]ItemPathDates{group}, 2, subscribers, 0))

		// Com taxa mínima de abertura de 1%, o dia residual é descartado
		assert.Equal(t, 1, CountNewsletterSends([]ItemPathDates{group}, 2, subscribers, 0.01))
	})

	t.Run("Placement sem base de assinantes não sofre supressão", func(t *testing.T) {
		group := ItemPathDates{
			ItemPath:          "newsletters.daily.slot-9",
			Dates:             []string{"2024-01-01", "2024-01-10"},
			ImpressionsByDate: map[string]int{"2024-01-01": 2, "2024-01-10": 1},
		}

		assert.Equal(t, 2, CountNewsletterSends([]ItemPathDates{group}, 2, map[string]int{}, 0.01))
	})
}

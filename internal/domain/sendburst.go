package domain

import (
	"sort"
	"time"
)

// DefaultSendGapDays é o espaçamento máximo, em dias, entre datas de
// impressão consecutivas que ainda pertencem ao mesmo disparo de newsletter.
const DefaultSendGapDays = 2

const secondsPerDay = 24 * 60 * 60

// ItemPathDates agrupa, por placement, as datas distintas em que houve
// impressões, com o volume observado em cada dia.
type ItemPathDates struct {
	ItemPath          string
	Dates             []string
	ImpressionsByDate map[string]int
}

// CountSendBursts agrupa um conjunto de datas (YYYY-MM-DD, não
// necessariamente únicas nem ordenadas) em disparos discretos: um novo
// disparo começa quando o intervalo entre duas datas ordenadas adjacentes
// excede gapDays. Um intervalo exatamente igual a gapDays ainda pertence ao
// mesmo disparo. Datas que não parseiam como YYYY-MM-DD são descartadas.
func CountSendBursts(dates []string, gapDays int) int {
	days := make([]int64, 0, len(dates))
	for _, raw := range dates {
		t, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			continue
		}
		// Aritmética em meia-noite UTC para evitar desvios de fuso/DST.
		days = append(days, t.Unix()/secondsPerDay)
	}

	if len(days) == 0 {
		return 0
	}

	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	bursts := 1
	for i := 1; i < len(days); i++ {
		if days[i]-days[i-1] > int64(gapDays) {
			bursts++
		}
	}

	return bursts
}

// CountNewsletterSends soma os disparos detectados independentemente por
// placement. Quando o mapa de assinantes e um minOpenRate positivo são
// informados, dias cujo volume de impressões é implausivelmente baixo em
// relação à base de assinantes do placement (aberturas de bounce/trickle)
// são descartados antes do agrupamento.
func CountNewsletterSends(
	groups []ItemPathDates,
	gapDays int,
	subscribersByItemPath map[string]int,
	minOpenRate float64,
) int {
	total := 0
	for _, group := range groups {
		dates := group.Dates

		subscribers := subscribersByItemPath[group.ItemPath]
		if minOpenRate > 0 && subscribers > 0 && group.ImpressionsByDate != nil {
			floor := minOpenRate * float64(subscribers)
			filtered := make([]string, 0, len(dates))
			for _, date := range dates {
				if float64(group.ImpressionsByDate[date]) >= floor {
					filtered = append(filtered, date)
				}
			}
			dates = filtered
		}

		total += CountSendBursts(dates, gapDays)
	}

	return total
}

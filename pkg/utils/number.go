package utils

import "math"

// RoundPercent calcula a razão delivered/goal como percentual inteiro
// arredondado. Meta zero ou negativa resulta em 0, nunca NaN/Inf.
func RoundPercent(delivered float64, goal float64) int {
	if goal <= 0 {
		return 0
	}

	return int(math.Round(delivered / goal * 100))
}

// CapPercent satura um percentual em 100. Usado para métricas de
// completude, não de volume.
func CapPercent(percent int) int {
	if percent > 100 {
		return 100
	}
	return percent
}

package service

import (
	"math"
	"strconv"
	"strings"
)

// Fórmulas numéricas compartilhadas pela consolidação.
// A taxa de pendência é SEMPRE recalculada sobre somas agregadas —
// nunca pela média das taxas individuais, que produz outro resultado.

// round2 arredonda para duas casas decimais: escala por 100, soma 0.5 e
// trunca. Meios exatos sobem sempre em direção a +∞, inclusive nos
// valores negativos (−0.125 vira −0.12, não −0.13).
func round2(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}

// taxaPendencia (fechados − recuperados) × 100 / informados.
// Retorna 0 quando informados é zero — nunca divide por zero, nunca
// propaga NaN/Inf.
func taxaPendencia(fechados, recuperados, informados int) float64 {
	if informados == 0 {
		return 0
	}
	return round2(float64(fechados-recuperados) * 100 / float64(informados))
}

// percentualConcluido round(100 × concluídos / total), 0 quando total é zero
func percentualConcluido(concluidos, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(concluidos) * 100 / float64(total)))
}

// numeroSemana extrai o valor numérico de um rótulo "SE NN".
// A ordenação da série semanal usa este número, não o texto —
// ordenação textual colocaria "SE 10" antes de "SE 2".
// Rótulos irreconhecíveis valem 0.
func numeroSemana(rotulo string) int {
	s := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rotulo), "SE"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// numeroCiclo interpreta o rótulo de ciclo como inteiro; 0 se inválido
func numeroCiclo(rotulo string) int {
	n, err := strconv.Atoi(strings.TrimSpace(rotulo))
	if err != nil {
		return 0
	}
	return n
}

// Package pricing реализует расчёт скидки и итоговой цены по оценочной стоимости.
package pricing

import (
	"math"
	"strconv"
	"strings"
)

// Пороговые значения ступеней скидки. Границы включаются в среднюю ступень.
const (
	lowerBound = 50000
	upperBound = 1500000

	lowRate  = 0.02
	midRate  = 0.035
	highRate = 0.05
)

// Rate возвращает ставку скидки для указанной оценочной стоимости.
func Rate(estimatePrice float64) float64 {
	switch {
	case estimatePrice < lowerBound:
		return lowRate
	case estimatePrice <= upperBound:
		return midRate
	default:
		return highRate
	}
}

// Price возвращает ставку скидки и итоговую цену для оценочной стоимости.
// Итоговая цена округляется до целого по правилу «половина от нуля».
func Price(estimatePrice float64) (float64, int64) {
	rate := Rate(estimatePrice)
	fixPrice := int64(math.Round(estimatePrice - estimatePrice*rate))
	return rate, fixPrice
}

// FormatRate форматирует ставку скидки для выдачи: три знака после запятой,
// разделитель дробной части — запятая.
func FormatRate(rate float64) string {
	s := strconv.FormatFloat(rate, 'f', 3, 64)
	return strings.Replace(s, ".", ",", 1)
}

// FormatFixPrice форматирует итоговую цену для выдачи: целое число
// с запятой в качестве разделителя групп разрядов.
func FormatFixPrice(fixPrice int64) string {
	s := strconv.FormatInt(fixPrice, 10)

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}

	if neg {
		return "-" + b.String()
	}
	return b.String()
}

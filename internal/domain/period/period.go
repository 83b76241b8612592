// Package period concentra a aritmética de janelas de tempo dos relatórios.
// Todas as fronteiras são calculadas em UTC: meia-noite do dia 1 até a
// meia-noite do dia 1 do mês seguinte (intervalo semiaberto).
package period

import (
	"strconv"
	"strings"
	"time"

	"github.com/oficinapro/oficina-api/internal/domain"
)

// MonthWindow resolve um seletor "YYYY-MM" na janela [início, fim) do mês em UTC.
// Seletor vazio usa o mês corrente UTC de now. Seletor não numérico ou com mês
// fora de 1..12 devolve domain.ErrInvalidRange.
func MonthWindow(selector string, now time.Time) (from, to time.Time, err error) {
	year, month := now.UTC().Year(), int(now.UTC().Month())

	if selector != "" {
		parts := strings.SplitN(selector, "-", 2)
		if len(parts) != 2 {
			return time.Time{}, time.Time{}, domain.ErrInvalidRange
		}
		y, errY := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		if errY != nil || errM != nil || m < 1 || m > 12 {
			return time.Time{}, time.Time{}, domain.ErrInvalidRange
		}
		year, month = y, m
	}

	from = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	to = from.AddDate(0, 1, 0)
	return from, to, nil
}

// DayStart devolve a meia-noite UTC do dia de t.
func DayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

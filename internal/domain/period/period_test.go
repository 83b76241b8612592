package period_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oficinapro/oficina-api/internal/domain"
	"github.com/oficinapro/oficina-api/internal/domain/period"
)

func TestMonthWindow_SeletorExplicito(t *testing.T) {
	now := time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

	from, to, err := period.MonthWindow("2024-02", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), to)
}

func TestMonthWindow_SeletorVazioUsaMesCorrente(t *testing.T) {
	now := time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC)

	from, to, err := period.MonthWindow("", now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), to,
		"dezembro vira na janela de janeiro do ano seguinte")
}

func TestMonthWindow_SeletorInvalido(t *testing.T) {
	now := time.Now()
	invalid := []string{"2024-13", "2024-00", "2024", "abc-12", "2024-xy", "-"}
	for _, sel := range invalid {
		_, _, err := period.MonthWindow(sel, now)
		assert.ErrorIs(t, err, domain.ErrInvalidRange, "seletor %q deve ser rejeitado", sel)
	}
}

func TestMonthWindow_JanelaSemiaberta(t *testing.T) {
	from, to, err := period.MonthWindow("2024-01", time.Now())
	require.NoError(t, err)

	lastInstant := time.Date(2024, time.January, 31, 23, 59, 59, 999999999, time.UTC)
	assert.True(t, lastInstant.After(from) && lastInstant.Before(to),
		"o último instante de janeiro pertence à janela")
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), to,
		"a fronteira superior é a meia-noite do dia 1 seguinte, exclusiva")
}

func TestDayStart(t *testing.T) {
	ts := time.Date(2024, time.June, 7, 18, 45, 12, 345, time.UTC)
	assert.Equal(t, time.Date(2024, time.June, 7, 0, 0, 0, 0, time.UTC), period.DayStart(ts))
}

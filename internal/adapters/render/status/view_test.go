package status

import (
	"testing"
	"time"

	"github.com/bnema/currency-gateway/internal/application"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderBalanceReport(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render(application.BalanceReport{
		Source: "http://127.0.0.1:9010/",
		Entries: []application.BalanceEntry{
			{AccountID: "11111111-1111-4111-8111-111111111111", Balance: 2000, OK: true},
			{AccountID: "22222222-2222-4222-8222-222222222222", Balance: 500, OK: true},
		},
		CapturedAt: now.Add(-time.Minute),
	}, RenderOptions{Now: now, StaleAfter: time.Hour})

	require.NoError(t, err)
	assert.Contains(t, output, "Currency Gateway Balances")
	assert.Contains(t, output, "source: http://127.0.0.1:9010/")
	assert.Contains(t, output, "accounts: 2")
	assert.Contains(t, output, "captured 10:59:00")
	assert.Contains(t, output, "11111111-1111-4111-8111-111111111111")
	assert.Contains(t, output, "2000")
	assert.Contains(t, output, "500")
	assert.Contains(t, stripStyles(output), "[========================]")
	assert.NotContains(t, output, "stale")
}

func TestRenderUnavailableBalance(t *testing.T) {
	output, err := Render(application.BalanceReport{
		Source: "local",
		Entries: []application.BalanceEntry{
			{AccountID: "33333333-3333-4333-8333-333333333333", Balance: -1},
		},
	}, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "balance: unavailable")
	assert.NotContains(t, output, "captured")
}

func TestRenderEmptyReportMarksStale(t *testing.T) {
	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)

	output, err := Render(application.BalanceReport{
		CapturedAt: now.Add(-48 * time.Hour),
	}, RenderOptions{Now: now, StaleAfter: time.Hour})

	require.NoError(t, err)
	assert.Contains(t, output, "source: unknown")
	assert.Contains(t, output, "No balances available.")
	assert.Contains(t, output, "[stale]")
	assert.Contains(t, output, "on 12 Feb")
}

func TestProgressBarScalesToPeak(t *testing.T) {
	t.Parallel()

	s := newStyles()
	assert.Equal(t, "[====------]", stripStyles(renderProgressBar(40, 10, s)))
	assert.Equal(t, "[----------]", stripStyles(renderProgressBar(-5, 10, s)))
	assert.Equal(t, "[==========]", stripStyles(renderProgressBar(150, 10, s)))
}

func TestSummaryDrivesFooterAndStaleness(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	report := application.BalanceReport{
		Entries: []application.BalanceEntry{
			{AccountID: "11111111-1111-4111-8111-111111111111", Balance: 700, OK: true},
			{AccountID: "22222222-2222-4222-8222-222222222222", Balance: 9000, OK: false},
			{AccountID: "33333333-3333-4333-8333-333333333333", Balance: 100, OK: true},
		},
		CapturedAt: now.Add(-2 * time.Hour),
	}
	opts := RenderOptions{Now: now, StaleAfter: time.Hour}

	sum := summarize(report, opts)
	assert.Equal(t, summary{peak: 700, total: 800, available: 2, unavailable: 1, stale: true}, sum)

	output := stripStyles(renderView(report, opts, sum, newStyles()))
	assert.Contains(t, output, "[stale]")
	assert.Contains(t, output, "total: 800 across 2 accounts  1 unavailable")

	fresh := summarize(report, RenderOptions{Now: now, StaleAfter: 3 * time.Hour})
	assert.False(t, fresh.stale)
	assert.False(t, summarize(application.BalanceReport{}, opts).stale)
}

func stripStyles(s string) string {
	return ansi.Strip(s)
}

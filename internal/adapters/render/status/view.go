package status

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/currency-gateway/internal/application"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

type RenderOptions struct {
	Now        time.Time
	StaleAfter time.Duration
}

func renderView(report application.BalanceReport, opts RenderOptions, sum summary, s styles) string {
	header := s.header
	if sum.stale {
		header = s.stale
	}
	lines := []string{
		s.title.Render("Currency Gateway Balances"),
		header.Render(headerLine(report, opts, sum)),
	}

	if len(report.Entries) == 0 {
		lines = append(lines, s.empty.Render("No balances available."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range report.Entries {
		lines = append(lines, s.section.Render(renderEntry(entry, sum.peak, s)))
	}
	lines = append(lines, s.section.Render(footerLine(sum, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func footerLine(sum summary, s styles) string {
	line := s.detail.Render(fmt.Sprintf("total: %d across %d accounts", sum.total, sum.available))
	if sum.unavailable == 0 {
		return line
	}

	return line + "  " + s.warning.Render(fmt.Sprintf("%d unavailable", sum.unavailable))
}

func headerLine(report application.BalanceReport, opts RenderOptions, sum summary) string {
	source := strings.TrimSpace(report.Source)
	if source == "" {
		source = "unknown"
	}

	line := fmt.Sprintf("source: %s  accounts: %d", source, len(report.Entries))
	if report.CapturedAt.IsZero() {
		return line
	}

	line += "  captured " + formatCapturedAt(report.CapturedAt, opts.Now)
	if sum.stale {
		line += " [stale]"
	}

	return line
}

func renderEntry(entry application.BalanceEntry, peak int32, s styles) string {
	title := s.account.Render(string(entry.AccountID))
	if !entry.OK {
		return lipgloss.JoinVertical(lipgloss.Left, title, s.warning.Render("balance: unavailable"))
	}

	percent := 0.0
	if peak > 0 {
		percent = float64(entry.Balance) / float64(peak) * 100
	}

	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.detail.Render("balance:"),
		" ",
		renderProgressBar(percent, barWidth, s),
		" ",
		lipgloss.NewStyle().Foreground(interpolateColor(percent, 0, 100)).Render(fmt.Sprintf("%d", entry.Balance)),
	)

	return lipgloss.JoinVertical(lipgloss.Left, title, line)
}

func renderProgressBar(percent float64, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * clampPercent(percent) / 100.0))
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func formatCapturedAt(capturedAt, now time.Time) string {
	if now.IsZero() {
		return capturedAt.Format(time.RFC3339)
	}

	yearA, monthA, dayA := now.Date()
	yearB, monthB, dayB := capturedAt.Date()
	if yearA == yearB && monthA == monthB && dayA == dayB {
		return capturedAt.Format("15:04:05")
	}

	return capturedAt.Format("15:04 on 02 Jan")
}

func isStale(capturedAt time.Time, opts RenderOptions) bool {
	if opts.Now.IsZero() || opts.StaleAfter <= 0 {
		return false
	}

	return opts.Now.Sub(capturedAt) > opts.StaleAfter
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// 240 (faded) at min, 255 (bright white) at max on the greyscale ramp.
	colorCode := int(240.0 + 15.0*normalized)

	return lipgloss.Color(fmt.Sprintf("%d", colorCode))
}

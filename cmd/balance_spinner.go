package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/bnema/currency-gateway/internal/application"
	"github.com/bnema/currency-gateway/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type fetchBalanceFunc func(ctx context.Context, id domain.AccountID) application.BalanceEntry

// balanceEntryMsg carries one account's answer back to the progress model.
type balanceEntryMsg struct {
	entry application.BalanceEntry
}

// balanceProgressModel queries accounts one at a time and shows how many
// have answered. The finished report lives on the final model.
type balanceProgressModel struct {
	ctx     context.Context
	spinner spinner.Model
	ids     []domain.AccountID
	fetch   fetchBalanceFunc
	now     func() time.Time

	report application.BalanceReport
	failed int
	done   bool
}

func newBalanceProgressModel(ctx context.Context, source string, ids []domain.AccountID, fetch fetchBalanceFunc, now func() time.Time) balanceProgressModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return balanceProgressModel{
		ctx:     ctx,
		spinner: s,
		ids:     ids,
		fetch:   fetch,
		now:     now,
		report:  application.BalanceReport{Source: source, Entries: make([]application.BalanceEntry, 0, len(ids))},
	}
}

func (m balanceProgressModel) Init() tea.Cmd {
	if len(m.ids) == 0 {
		return tea.Quit
	}

	return tea.Batch(m.spinner.Tick, m.fetchNext())
}

func (m balanceProgressModel) fetchNext() tea.Cmd {
	id := m.ids[len(m.report.Entries)]
	ctx, fetch := m.ctx, m.fetch

	return func() tea.Msg {
		return balanceEntryMsg{entry: fetch(ctx, id)}
	}
}

func (m balanceProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case balanceEntryMsg:
		m.report.Entries = append(m.report.Entries, msg.entry)
		if !msg.entry.OK {
			m.failed++
		}
		if len(m.report.Entries) < len(m.ids) {
			return m, m.fetchNext()
		}
		m.report.CapturedAt = m.now()
		m.done = true
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m balanceProgressModel) View() string {
	if m.done {
		return ""
	}

	view := fmt.Sprintf("%s Querying gateway balance... %d/%d accounts", m.spinner.View(), len(m.report.Entries), len(m.ids))
	if m.failed > 0 {
		view += fmt.Sprintf(" (%d unavailable)", m.failed)
	}
	return view
}

func runBalanceProgress(ctx context.Context, output io.Writer, source string, ids []domain.AccountID, fetch fetchBalanceFunc, now func() time.Time) (application.BalanceReport, error) {
	p := tea.NewProgram(
		newBalanceProgressModel(ctx, source, ids, fetch, now),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		return application.BalanceReport{}, err
	}

	result, ok := finalModel.(balanceProgressModel)
	if !ok {
		return application.BalanceReport{}, fmt.Errorf("unexpected final progress model type %T", finalModel)
	}

	return result.report, nil
}

package status

import (
	"errors"
	"io"

	"github.com/bnema/currency-gateway/internal/application"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

// summary is derived once from the report and decides how the view is
// styled: bars scale to peak, the header turns to a warning when stale,
// and the footer flags accounts that did not answer.
type summary struct {
	peak        int32
	total       int64
	available   int
	unavailable int
	stale       bool
}

func summarize(report application.BalanceReport, opts RenderOptions) summary {
	sum := summary{stale: !report.CapturedAt.IsZero() && isStale(report.CapturedAt, opts)}
	for _, entry := range report.Entries {
		if !entry.OK {
			sum.unavailable++
			continue
		}
		sum.available++
		sum.total += int64(entry.Balance)
		if entry.Balance > sum.peak {
			sum.peak = entry.Balance
		}
	}
	return sum
}

type model struct {
	report  application.BalanceReport
	opts    RenderOptions
	summary summary
	styles  styles
	output  string
}

func newModel(report application.BalanceReport, opts RenderOptions) model {
	return model{
		report:  report,
		opts:    opts,
		summary: summarize(report, opts),
		styles:  newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.report, m.opts, m.summary, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

func Render(report application.BalanceReport, opts RenderOptions) (string, error) {
	p := tea.NewProgram(
		newModel(report, opts),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}

package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pocketledger/pocketledger/cmd/tui/client"
	"github.com/pocketledger/pocketledger/internal/models"
)

type summarySuccessMsg struct {
	summary *models.Summary
}

type summaryErrorMsg struct {
	err error
}

type DashboardModel struct {
	summary *models.Summary
	loading bool
	err     error
	api     *client.Client
	loaded  bool
}

func (m *DashboardModel) Init() tea.Cmd {
	return nil
}

func NewDashboardModel() *DashboardModel {
	return &DashboardModel{}
}

func (m *DashboardModel) SetClient(c *client.Client) {
	m.api = c
}

func summaryCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		summary, err := c.Summary()
		if err != nil {
			return summaryErrorMsg{err: err}
		}
		return summarySuccessMsg{summary: summary}
	}
}

func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case summarySuccessMsg:
		m.loading = false
		m.summary = msg.summary
		m.err = nil
		m.loaded = true
		return m, nil

	case summaryErrorMsg:
		m.loading = false
		m.err = msg.err
		m.loaded = true
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "r" && !m.loading {
			m.loading = true
			m.err = nil
			return m, summaryCmd(m.api)
		}
	}

	if !m.loaded && !m.loading && m.api != nil {
		m.loading = true
		return m, summaryCmd(m.api)
	}

	return m, nil
}

func (m *DashboardModel) View() string {
	var b strings.Builder

	header := TitleStyle.Render("DASHBOARD")
	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(2).
		MarginBottom(2).
		Render(header))
	b.WriteString("\n\n")

	if m.loading {
		loading := lipgloss.NewStyle().
			Foreground(Accent).
			Render("⏳ Loading summary...")
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(2).Render(loading))
		b.WriteString("\n")
	} else if m.err != nil {
		errMsg := ErrorStyle.Render("❌ " + m.err.Error())
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(2).Render(errMsg))
		b.WriteString("\n")
	} else if m.summary != nil {
		savingsRate := "n/a"
		if m.summary.SavingsRate != nil {
			savingsRate = m.summary.SavingsRate.StringFixed(1) + "%"
		}

		rows := []struct {
			label string
			value string
			color lipgloss.Color
		}{
			{"Total Income:", "+" + m.summary.TotalIncome.StringFixed(2), Success},
			{"Total Expense:", "-" + m.summary.TotalExpense.StringFixed(2), Error},
			{"Savings:", m.summary.Savings.StringFixed(2), Primary},
			{"Savings Rate:", savingsRate, Warning},
		}

		var lines []string
		for _, row := range rows {
			label := LabelStyle.Render(row.label)
			value := lipgloss.NewStyle().Foreground(row.color).Bold(true).Render(row.value)
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Left, label, value))
		}

		statsBox := BoxStyle.Width(50).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(statsBox))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("r refresh  •  q back")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(help))

	return BoxStyle.Width(76).Render(b.String())
}

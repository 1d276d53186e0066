package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pocketledger/pocketledger/cmd/tui/client"
	"github.com/pocketledger/pocketledger/internal/models"
)

type listSuccessMsg struct {
	transactions []*models.Transaction
	total        int
}

type listErrorMsg struct {
	err error
}

type ListModel struct {
	transactions []*models.Transaction
	total        int
	cursor       int
	loading      bool
	err          error
	api          *client.Client
	loaded       bool
}

func (m *ListModel) Init() tea.Cmd {
	return nil
}

func NewListModel() *ListModel {
	return &ListModel{
		transactions: []*models.Transaction{},
	}
}

func (m *ListModel) SetClient(c *client.Client) {
	m.api = c
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func relativeTime(t time.Time) string {
	ago := time.Since(t)
	if ago < time.Hour {
		return fmt.Sprintf("%d min ago", int(ago.Minutes()))
	}
	if ago < 24*time.Hour {
		return fmt.Sprintf("%d hours ago", int(ago.Hours()))
	}
	return fmt.Sprintf("%d days ago", int(ago.Hours()/24))
}

func listCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		resp, err := c.ListTransactions(1, 20)
		if err != nil {
			return listErrorMsg{err: err}
		}
		return listSuccessMsg{transactions: resp.Transactions, total: resp.Total}
	}
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listSuccessMsg:
		m.loading = false
		m.transactions = msg.transactions
		m.total = msg.total
		m.err = nil
		m.loaded = true
		if m.cursor >= len(m.transactions) {
			m.cursor = 0
		}
		return m, nil

	case listErrorMsg:
		m.loading = false
		m.err = msg.err
		m.loaded = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.transactions)-1 {
				m.cursor++
			}
		case "r":
			if !m.loading {
				m.loading = true
				m.err = nil
				return m, listCmd(m.api)
			}
		}
	}

	if !m.loaded && !m.loading && m.api != nil {
		m.loading = true
		return m, listCmd(m.api)
	}

	return m, nil
}

func (m *ListModel) View() string {
	var b strings.Builder

	header := TitleStyle.Render("YOUR TRANSACTIONS")
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
			Render("⏳ Loading transactions...")
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(2).Render(loading))
		b.WriteString("\n")
	} else if m.err != nil {
		errMsg := ErrorStyle.Render("❌ " + m.err.Error())
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(2).Render(errMsg))
		b.WriteString("\n")
	} else if len(m.transactions) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(Muted).
			Render("📝 No transactions yet. Add one first!")
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).MarginTop(2).Render(empty))
		b.WriteString("\n")
	} else {
		for i, tx := range m.transactions {
			var cardStyle lipgloss.Style
			if i == m.cursor {
				cardStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(Accent).
					Padding(0, 2).
					Width(70).
					MarginBottom(1)
			} else {
				cardStyle = lipgloss.NewStyle().
					Border(lipgloss.RoundedBorder()).
					BorderForeground(Muted).
					Padding(0, 2).
					Width(70).
					MarginBottom(1)
			}

			var amountLine string
			if tx.Type == models.TypeIncome {
				amountLine = lipgloss.NewStyle().Foreground(Success).Bold(true).
					Render("💰 +" + tx.Amount.StringFixed(2))
			} else {
				amountLine = lipgloss.NewStyle().Foreground(Error).Bold(true).
					Render("💸 -" + tx.Amount.StringFixed(2))
			}
			categoryValue := lipgloss.NewStyle().Foreground(Secondary).
				Render("  " + tx.Category)
			timeValue := lipgloss.NewStyle().Foreground(Muted).
				Render("  • " + relativeTime(tx.Date))
			firstLine := amountLine + categoryValue + timeValue

			lines := []string{firstLine}
			if tx.Description != "" {
				desc := lipgloss.NewStyle().Foreground(Text).
					Render(truncate(tx.Description, 60))
				lines = append(lines, desc)
			}

			card := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
			b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(card))
		}

		if m.total > len(m.transactions) {
			more := InfoStyle.Render(fmt.Sprintf("showing %d of %d", len(m.transactions), m.total))
			b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(more))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	help := InfoStyle.Render("↑/↓ navigate  •  r refresh  •  q back")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(help))

	return BoxStyle.Width(76).Render(b.String())
}

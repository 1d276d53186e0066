package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pocketledger/pocketledger/cmd/tui/client"
	"github.com/pocketledger/pocketledger/internal/models"
	"github.com/shopspring/decimal"
)

type createSuccessMsg struct {
	transaction *models.Transaction
}

type createErrorMsg struct {
	err error
}

type CreateModel struct {
	isExpense        bool
	categoryInput    string
	amountInput      string
	descriptionInput string
	focusedInput     int
	loading          bool
	result           string
	err              error
	api              *client.Client
}

func (m *CreateModel) Init() tea.Cmd {
	return nil
}

func NewCreateModel() *CreateModel {
	return &CreateModel{
		isExpense:    true,
		focusedInput: 0,
	}
}

func (m *CreateModel) SetClient(c *client.Client) {
	m.api = c
}

func validateAmount(input string) (decimal.Decimal, error) {
	if input == "" {
		return decimal.Zero, fmt.Errorf("amount cannot be empty")
	}

	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount must be a number")
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("amount must be greater than zero")
	}
	return amount, nil
}

func createCmd(c *client.Client, req *models.CreateTransactionRequest) tea.Cmd {
	return func() tea.Msg {
		created, err := c.CreateTransaction(req)
		if err != nil {
			return createErrorMsg{err: err}
		}
		return createSuccessMsg{transaction: created}
	}
}

func (m *CreateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case createSuccessMsg:
		m.loading = false
		m.err = nil
		m.result = fmt.Sprintf("%s of %s recorded under '%s'",
			msg.transaction.Type, msg.transaction.Amount.StringFixed(2), msg.transaction.Category)
		m.categoryInput = ""
		m.amountInput = ""
		m.descriptionInput = ""
		return m, nil

	case createErrorMsg:
		m.loading = false
		m.err = msg.err
		m.result = ""
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "tab", "shift+tab":
			m.focusedInput = (m.focusedInput + 1) % 3
		case "ctrl+t":
			m.isExpense = !m.isExpense
		case "enter":
			if m.categoryInput == "" {
				m.err = fmt.Errorf("category cannot be empty")
				return m, nil
			}
			amount, err := validateAmount(m.amountInput)
			if err != nil {
				m.err = err
				return m, nil
			}

			if m.api != nil {
				txType := models.TypeExpense
				if !m.isExpense {
					txType = models.TypeIncome
				}

				m.loading = true
				m.err = nil
				m.result = ""
				return m, createCmd(m.api, &models.CreateTransactionRequest{
					Type:        txType,
					Category:    m.categoryInput,
					Amount:      &amount,
					Description: m.descriptionInput,
				})
			} else {
				m.err = fmt.Errorf("client not connected")
			}
		case "backspace":
			if m.focusedInput == 0 && len(m.categoryInput) > 0 {
				m.categoryInput = m.categoryInput[:len(m.categoryInput)-1]
			} else if m.focusedInput == 1 && len(m.amountInput) > 0 {
				m.amountInput = m.amountInput[:len(m.amountInput)-1]
			} else if m.focusedInput == 2 && len(m.descriptionInput) > 0 {
				m.descriptionInput = m.descriptionInput[:len(m.descriptionInput)-1]
			}
		case "ctrl+l":
			m.categoryInput = ""
			m.amountInput = ""
			m.descriptionInput = ""
			m.result = ""
			m.err = nil
		default:
			if len(msg.String()) == 1 {
				if m.focusedInput == 0 {
					m.categoryInput += msg.String()
				} else if m.focusedInput == 1 {
					m.amountInput += msg.String()
				} else {
					m.descriptionInput += msg.String()
				}
			}
		}
	}
	return m, nil
}

func (m *CreateModel) View() string {
	var b strings.Builder

	icon := lipgloss.NewStyle().Foreground(Accent).Render("💳")
	header := icon + " " + TitleStyle.Render("ADD TRANSACTION") + " " + icon
	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(2).
		MarginBottom(2).
		Render(header))
	b.WriteString("\n\n")

	// Type toggle
	typeLabel := LabelStyle.Render("Type:")
	var typeValue string
	if m.isExpense {
		typeValue = lipgloss.NewStyle().Foreground(Error).Bold(true).Render("💸 expense")
	} else {
		typeValue = lipgloss.NewStyle().Foreground(Success).Bold(true).Render("💰 income")
	}
	typeField := lipgloss.JoinHorizontal(lipgloss.Left, typeLabel, typeValue)
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(typeField))
	b.WriteString("\n\n")

	fields := []struct {
		label string
		value string
	}{
		{"Category:", m.categoryInput},
		{"Amount:", m.amountInput},
		{"Description:", m.descriptionInput},
	}

	for i, field := range fields {
		label := LabelStyle.Render(field.label)
		var inputStyle lipgloss.Style
		if m.focusedInput == i {
			inputStyle = FocusedInputStyle
		} else {
			inputStyle = InputStyle
		}
		value := inputStyle.Width(50).Render(field.value)
		row := lipgloss.JoinHorizontal(lipgloss.Left, label, value)
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(row))
		b.WriteString("\n\n")
	}

	if m.loading {
		loading := InfoStyle.Render("Saving transaction...")
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(loading))
		b.WriteString("\n")
	}

	if m.result != "" {
		result := SuccessStyle.Render("✓ " + m.result)
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(result))
		b.WriteString("\n")
	}

	if m.err != nil {
		errMsg := ErrorStyle.Render("Error: " + m.err.Error())
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(errMsg))
		b.WriteString("\n")
	}

	help := InfoStyle.Render("tab switch  •  ctrl+t type  •  enter submit  •  ctrl+l clear  •  q back")
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(help))

	return BoxStyle.Width(76).Render(b.String())
}

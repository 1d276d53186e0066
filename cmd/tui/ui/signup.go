package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pocketledger/pocketledger/cmd/tui/client"
)

type signupErrorMsg struct {
	err error
}

type SignupModel struct {
	nameInput     string
	emailInput    string
	passwordInput string
	focusedInput  int
	loading       bool
	err           error
	api           *client.Client
}

func NewSignupModel() *SignupModel {
	return &SignupModel{
		focusedInput: 0,
	}
}

func (m *SignupModel) SetClient(c *client.Client) {
	m.api = c
}

func (m *SignupModel) Init() tea.Cmd {
	return nil
}

// signupCmd registers the account and immediately logs in with the same
// credentials, since registration alone does not hand out a token.
func signupCmd(c *client.Client, name, email, password string) tea.Cmd {
	return func() tea.Msg {
		if err := c.Register(name, email, password); err != nil {
			return signupErrorMsg{err: err}
		}

		resp, err := c.Login(email, password)
		if err != nil {
			return signupErrorMsg{err: err}
		}

		return loginSuccessMsg{
			token: resp.Token,
			email: resp.User.Email,
			name:  resp.User.Name,
		}
	}
}

func (m *SignupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginSuccessMsg:
		m.loading = false
		m.err = nil
		return m, nil

	case signupErrorMsg:
		m.loading = false
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		if m.loading {
			return m, nil
		}

		switch msg.String() {
		case "tab", "shift+tab":
			m.focusedInput = (m.focusedInput + 1) % 3
		case "enter":
			if m.nameInput == "" {
				m.err = fmt.Errorf("name cannot be empty")
				return m, nil
			}
			if m.emailInput == "" {
				m.err = fmt.Errorf("email cannot be empty")
				return m, nil
			}
			if m.passwordInput == "" {
				m.err = fmt.Errorf("password cannot be empty")
				return m, nil
			}
			if len(m.passwordInput) < 6 {
				m.err = fmt.Errorf("password must be at least 6 characters")
				return m, nil
			}

			if m.api != nil {
				m.loading = true
				m.err = nil
				return m, signupCmd(m.api, m.nameInput, m.emailInput, m.passwordInput)
			} else {
				m.err = fmt.Errorf("client not connected")
			}
		case "backspace":
			if m.focusedInput == 0 && len(m.nameInput) > 0 {
				m.nameInput = m.nameInput[:len(m.nameInput)-1]
			} else if m.focusedInput == 1 && len(m.emailInput) > 0 {
				m.emailInput = m.emailInput[:len(m.emailInput)-1]
			} else if m.focusedInput == 2 && len(m.passwordInput) > 0 {
				m.passwordInput = m.passwordInput[:len(m.passwordInput)-1]
			}
		case "ctrl+l":
			m.nameInput = ""
			m.emailInput = ""
			m.passwordInput = ""
			m.err = nil
		default:
			if len(msg.String()) == 1 {
				if m.focusedInput == 0 {
					m.nameInput += msg.String()
				} else if m.focusedInput == 1 {
					m.emailInput += msg.String()
				} else {
					m.passwordInput += msg.String()
				}
			}
		}
	}
	return m, nil
}

func (m *SignupModel) View() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(Success).
		Bold(true).
		Render("✨ SIGN UP")

	subtitle := lipgloss.NewStyle().
		Foreground(Muted).
		Render("Create a new account to get started.")

	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginTop(2).
		Render(title))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(80).
		Align(lipgloss.Center).
		MarginBottom(3).
		Render(subtitle))
	b.WriteString("\n\n")

	fields := []struct {
		label  string
		value  string
		masked bool
	}{
		{"Name:", m.nameInput, false},
		{"Email:", m.emailInput, false},
		{"Password:", m.passwordInput, true},
	}

	for i, field := range fields {
		label := LabelStyle.Width(15).Render(field.label)
		var inputStyle lipgloss.Style
		if m.focusedInput == i {
			inputStyle = FocusedInputStyle
		} else {
			inputStyle = InputStyle
		}
		value := field.value
		if field.masked {
			value = strings.Repeat("•", len(value))
		}
		rendered := inputStyle.Width(50).Render(value)
		row := lipgloss.JoinHorizontal(lipgloss.Left, label, rendered)
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(row))
		b.WriteString("\n\n")
	}

	if m.loading {
		loading := InfoStyle.Render("🔄 Creating account...")
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(loading))
		b.WriteString("\n")
	}

	if m.err != nil {
		errMsg := ErrorStyle.Render("❌ " + m.err.Error())
		b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(errMsg))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	help := InfoStyle.Render("tab switch  •  enter sign up  •  ctrl+l clear  •  ctrl+s login  •  q quit")
	b.WriteString(lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(help))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Success).
		Padding(2, 4).
		Width(76).
		Render(b.String())
}

package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"silentvoices/internal/advisory"
	"silentvoices/internal/engine"
	"silentvoices/internal/milestone"
	"silentvoices/internal/notify"
	"silentvoices/internal/types"
)

// Model is the dashboard state. It treats the engine as the single
// source of truth and re-reads it after every action.
type Model struct {
	ctx      context.Context
	eng      *engine.Engine
	notifier *notify.Dispatcher
	advisor  advisory.Service

	profile types.UserProfile
	routine []types.RoutineItem

	selected int
	insight  string
	loading  bool
	spin     spinner.Model

	// insightSeq discards stale advisory responses: only the reply
	// matching the latest request is applied.
	insightSeq int

	width  int
	height int
}

type tickMsg time.Time

type insightMsg struct {
	seq int
	res advisory.Insight
}

// New builds the dashboard model.
func New(ctx context.Context, eng *engine.Engine, notifier *notify.Dispatcher, advisor advisory.Service) Model {
	m := Model{ctx: ctx, eng: eng, notifier: notifier, advisor: advisor}
	m.spin = spinner.New(spinner.WithSpinner(spinner.Dot))
	m.refresh()
	return m
}

// Run starts the dashboard program and blocks until quit.
func Run(ctx context.Context, eng *engine.Engine, notifier *notify.Dispatcher, advisor advisory.Service) error {
	_, err := tea.NewProgram(New(ctx, eng, notifier, advisor), tea.WithAltScreen()).Run()
	return err
}

func (m *Model) refresh() {
	if p, ok := m.eng.Profile(); ok {
		m.profile = p
	}
	m.routine = m.eng.Routine()
	if m.selected >= len(m.routine) {
		m.selected = len(m.routine) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// tickCmd re-renders every second so notification expiry shows up.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m Model) insightCmd() tea.Cmd {
	seq := m.insightSeq
	checkIns := m.eng.CheckIns()
	journals := m.eng.Journals()
	return func() tea.Msg {
		return insightMsg{seq: seq, res: m.advisor.AnalyzePatterns(m.ctx, checkIns, journals)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tickCmd()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case insightMsg:
		// A newer request was issued after this one; ignore the reply.
		if msg.seq != m.insightSeq {
			return m, nil
		}
		m.loading = false
		m.insight = msg.res.Insight
		if msg.res.Action != "" {
			m.insight += "\nTry this: " + msg.res.Action
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.routine)-1 {
				m.selected++
			}
		case " ", "enter":
			if len(m.routine) > 0 {
				m.eng.ToggleRoutine(m.routine[m.selected].ID)
				m.refresh()
			}
		case "g":
			m.eng.SetStatus(types.StatusGreen)
			m.refresh()
		case "a":
			m.eng.SetStatus(types.StatusAmber)
			m.refresh()
		case "r":
			m.eng.SetStatus(types.StatusRed)
			m.refresh()
		case "i":
			m.insightSeq++
			m.loading = true
			return m, tea.Batch(m.insightCmd(), m.spin.Tick)
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("SilentVoices") + "\n\n")
	b.WriteString(fmt.Sprintf("%s — status %s, risk %s\n",
		m.profile.Name, statusText(m.profile.CurrentStatus), riskText(m.profile.RiskLevel)))
	b.WriteString(fmt.Sprintf("Resilience %d/100", m.profile.ResilienceScore))
	if m.profile.Role.AccruesSoberDays() {
		b.WriteString(fmt.Sprintf("  •  %d sober days", m.profile.TotalSoberDays))
		if next, ok := milestone.Next(m.profile.TotalSoberDays); ok {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  (day %d: %s)", next.Day, next.Title)))
		}
	}
	if m.profile.IsLighthouse {
		b.WriteString(goldStyle.Render("  🗼 lighthouse"))
	}
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Today's routine") + "\n")
	for i, item := range m.routine {
		cursor := "  "
		if i == m.selected {
			cursor = cursorStyle.Render("> ")
		}
		mark := "[ ]"
		if item.Completed {
			mark = "[✓]"
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, item.Name))
	}

	if m.loading {
		b.WriteString("\n" + m.spin.View() + mutedStyle.Render(" Looking for patterns...") + "\n")
	} else if m.insight != "" {
		b.WriteString("\n" + m.insight + "\n")
	}

	if msg, ok := m.notifier.Active(); ok {
		b.WriteString("\n" + notifStyle.Render("🛡️  "+msg) + "\n")
	}

	b.WriteString("\n" + mutedStyle.Render("space toggle • g/a/r status • i insight • q quit") + "\n")
	return b.String()
}

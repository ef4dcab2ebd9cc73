package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/ainara-edu/teksplan/internal/cli/formatter"
	"github.com/ainara-edu/teksplan/internal/domain"
	"github.com/ainara-edu/teksplan/internal/standards"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

type viewKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	MoveUp key.Binding
	MoveDn key.Binding
	Delete key.Binding
	Detail key.Binding
	Quit   key.Binding
}

func defaultViewKeys() viewKeyMap {
	return viewKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		MoveUp: key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("K", "move up")),
		MoveDn: key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("J", "move down")),
		Delete: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Detail: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "detail")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// planViewModel is the interactive activity browser. Reordering and
// deletion mutate the in-memory plan; changes are persisted once on exit.
type planViewModel struct {
	rec        *domain.PlanRecord
	db         standards.Database
	keys       viewKeyMap
	cursor     int
	showDetail bool
	detail     viewport.Model
	width      int
	height     int
	dirty      bool
}

func newPlanViewModel(rec *domain.PlanRecord, db standards.Database) *planViewModel {
	return &planViewModel{
		rec:    rec,
		db:     db,
		keys:   defaultViewKeys(),
		detail: viewport.New(80, 20),
	}
}

func (m *planViewModel) Init() tea.Cmd {
	return nil
}

func (m *planViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.detail.Width = msg.Width - 2
		m.detail.Height = msg.Height - 6
		return m, nil

	case tea.KeyMsg:
		if m.showDetail {
			return m.updateDetail(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

func (m *planViewModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.rec.Plan.Activities)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < n-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.MoveUp):
		if m.cursor > 0 {
			m.rec.Plan.MoveActivity(m.cursor, m.cursor-1)
			m.cursor--
			m.dirty = true
		}

	case key.Matches(msg, m.keys.MoveDn):
		if m.cursor < n-1 {
			m.rec.Plan.MoveActivity(m.cursor, m.cursor+1)
			m.cursor++
			m.dirty = true
		}

	case key.Matches(msg, m.keys.Delete):
		if n > 0 {
			m.rec.Plan.RemoveActivity(m.cursor)
			if m.cursor >= len(m.rec.Plan.Activities) && m.cursor > 0 {
				m.cursor--
			}
			m.dirty = true
		}

	case key.Matches(msg, m.keys.Detail):
		if n > 0 {
			a := m.rec.Plan.Activities[m.cursor]
			m.detail.SetContent(formatter.FormatActivity(m.cursor+1, &a, m.db))
			m.detail.GotoTop()
			m.showDetail = true
		}
	}
	return m, nil
}

func (m *planViewModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) || key.Matches(msg, m.keys.Detail) {
		m.showDetail = false
		return m, nil
	}
	var cmd tea.Cmd
	m.detail, cmd = m.detail.Update(msg)
	return m, cmd
}

func (m *planViewModel) View() string {
	var b strings.Builder

	b.WriteString(formatter.Header(m.rec.Plan.Title) + "\n\n")

	if m.showDetail {
		b.WriteString(m.detail.View() + "\n")
		b.WriteString(formatter.Dim("enter/q back  ↑/↓ scroll"))
		return b.String()
	}

	if len(m.rec.Plan.Activities) == 0 {
		b.WriteString(formatter.Dim("No activities.") + "\n")
	}
	for i, a := range m.rec.Plan.Activities {
		pointer := "  "
		line := fmt.Sprintf("%d. %s", i+1, a.Title)
		if i == m.cursor {
			pointer = formatter.StyleHeader.Render("▸ ")
			line = formatter.Bold(line)
		}
		b.WriteString(pointer + line + "  " + formatter.Dim(a.Timeframe) + "\n")
	}

	b.WriteString("\n" + formatter.Dim("↑/↓ navigate  K/J reorder  x delete  enter detail  q quit"))
	return b.String()
}

func newViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view [id]",
		Short: "Browse a plan's activities interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("view requires an interactive terminal")
			}

			ctx := context.Background()
			id, err := resolvePlanID(ctx, app, argOrEmpty(args))
			if err != nil {
				return err
			}
			rec, err := app.Plans.GetByID(ctx, id)
			if err != nil {
				return err
			}

			result := app.Session.Load(rec.Plan.Subject)
			model := newPlanViewModel(rec, result.DB)
			if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
				return err
			}

			if model.dirty {
				if err := app.Plans.Update(ctx, rec); err != nil {
					return err
				}
				fmt.Println("Saved activity changes.")
			}
			return nil
		},
	}
}

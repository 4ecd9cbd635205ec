package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/grovetools/muxify/internal/catalog"
)

var pickDocStyle = lipgloss.NewStyle().Margin(1, 2)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively choose a workspace to create",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := loadCatalog(cfg, newLogger())
		if err != nil {
			return err
		}
		if c.Len() == 0 {
			return fmt.Errorf("no workspaces found in %s", cfg.ResolvedWorkspaceDir())
		}

		final, err := tea.NewProgram(newPickModel(c), tea.WithAltScreen()).Run()
		if err != nil {
			return fmt.Errorf("failed to run picker: %w", err)
		}

		m, ok := final.(pickModel)
		if !ok || m.choice == "" {
			return nil
		}
		return runWorkspace(cmd, m.choice, false)
	},
}

type pickItem struct {
	name string
	desc string
}

func (i pickItem) Title() string       { return i.name }
func (i pickItem) Description() string { return i.desc }
func (i pickItem) FilterValue() string { return i.name }

type pickModel struct {
	list   list.Model
	choice string
}

func newPickModel(c *catalog.Catalog) pickModel {
	var items []list.Item
	for _, ws := range c.Workspaces() {
		windows := ws.Windows()
		panes := 0
		for _, w := range windows {
			panes += len(w.Panes())
		}
		items = append(items, pickItem{
			name: ws.Name(),
			desc: fmt.Sprintf("%d windows, %d panes", len(windows), panes),
		})
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Workspaces"
	return pickModel{list: l}
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := pickDocStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(pickItem); ok {
				m.choice = item.name
			}
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickModel) View() string {
	return pickDocStyle.Render(m.list.View())
}

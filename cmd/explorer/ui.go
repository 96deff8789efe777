package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jwebster45206/world-graph/pkg/graph"
	"github.com/jwebster45206/world-graph/pkg/logic"
	"github.com/jwebster45206/world-graph/pkg/schema"
	"github.com/jwebster45206/world-graph/pkg/state"
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const PlaceholderText = "grant <item> | revoke <item> | reset | help"

var (
	worldPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(1).
			PaddingLeft(2).
			PaddingRight(0)

	metaPanelStyle = lipgloss.NewStyle().
			PaddingTop(1).
			PaddingBottom(0).
			PaddingLeft(0).
			PaddingRight(2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")). // pink
			Bold(true)

	regionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // purple
			Bold(true)

	openStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")) // green

	closedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")) // red

	unreachableStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")) // dark grey

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")) // yellow

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")) // dark grey
)

var separatorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")) // dark grey

var titleCaser = cases.Title(language.AmericanEnglish)

// ExplorerUI is the BubbleTea model that runs the UI.
// https://github.com/charmbracelet/bubbletea
type ExplorerUI struct {
	world      *graph.World
	data       *schema.WorldData
	opts       *logic.Options
	collection *state.Collection

	worldViewport viewport.Model
	metaViewport  viewport.Model
	input         textinput.Model
	ready         bool
	width         int
	height        int
	status        string
}

func NewExplorerUI(world *graph.World, data *schema.WorldData, opts *logic.Options) ExplorerUI {
	ti := textinput.New()
	ti.Placeholder = PlaceholderText
	ti.Focus()
	ti.Prompt = promptStyle.Render(":: ")
	ti.CharLimit = 200

	worldVp := viewport.New(50, 20)
	worldVp.MouseWheelEnabled = true

	metaVp := viewport.New(20, 20)

	return ExplorerUI{
		world:         world,
		data:          data,
		opts:          opts,
		collection:    state.NewCollection(),
		input:         ti,
		worldViewport: worldVp,
		metaViewport:  metaVp,
	}
}

func (m ExplorerUI) Init() tea.Cmd {
	return textinput.Blink
}

func (m ExplorerUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		tiCmd tea.Cmd
		vpCmd tea.Cmd
		mvCmd tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		worldWidth := int(float64(m.width)*0.65) - 4
		metaWidth := m.width - worldWidth - 6

		m.worldViewport.Width = worldWidth - 2
		m.worldViewport.Height = m.height - 5
		m.metaViewport.Width = metaWidth - 2
		m.metaViewport.Height = m.height - 3
		m.input.Width = worldWidth - 6

		m.ready = true
		m.writeWorldContent()
		m.metaViewport.SetContent(m.writeCollection())

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlY:
			data, err := json.MarshalIndent(m.collection, "", "  ")
			if err == nil {
				if err := clipboard.WriteAll(string(data)); err == nil {
					m.status = "Collection copied to clipboard"
				} else {
					m.status = "Clipboard unavailable"
				}
			}
			return m, nil
		case tea.KeyEnter:
			input := strings.TrimSpace(m.input.Value())
			if input == "" {
				return m, nil
			}
			m.input.Reset()
			m.handleCommand(input)
			m.writeWorldContent()
			m.metaViewport.SetContent(m.writeCollection())
			return m, nil
		}
	}

	m.input, tiCmd = m.input.Update(msg)
	m.worldViewport, vpCmd = m.worldViewport.Update(msg)
	m.metaViewport, mvCmd = m.metaViewport.Update(msg)

	return m, tea.Batch(tiCmd, vpCmd, mvCmd)
}

func (m *ExplorerUI) handleCommand(input string) {
	verb, arg, _ := strings.Cut(input, " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(verb) {
	case "grant", "g":
		if _, ok := m.data.Items[arg]; !ok {
			m.status = fmt.Sprintf("Unknown item %q", arg)
			return
		}
		m.collection.Add(arg, 1)
		m.status = fmt.Sprintf("Granted %s (now %d)", arg, m.collection.Count(arg))
	case "revoke", "r":
		if m.collection.Count(arg) == 0 {
			m.status = fmt.Sprintf("Not holding %q", arg)
			return
		}
		m.collection.Add(arg, -1)
		m.status = fmt.Sprintf("Revoked %s (now %d)", arg, m.collection.Count(arg))
	case "reset":
		m.collection = state.NewCollection()
		m.status = "Collection cleared"
	case "help", "h":
		m.status = "grant <item> / revoke <item> / reset — Ctrl+Y copies state, Ctrl+C quits"
	case "quit", "q", "exit":
		m.status = "Use Ctrl+C to quit"
	default:
		m.status = fmt.Sprintf("Unknown command %q — try help", verb)
	}
}

func (m *ExplorerUI) writeWorldContent() {
	width := m.worldViewport.Width - 4

	reached := m.world.Reachable(m.collection, graph.DefaultStartRegion)

	var content strings.Builder
	content.WriteString(titleStyle.Render("WORLD GRAPH") + "\n\n")

	names := make([]string, 0, len(m.world.Regions()))
	for name := range m.world.Regions() {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		region := m.world.Region(name)

		header := regionStyle.Render(name)
		if !reached[name] {
			header = unreachableStyle.Render(name + " (unreachable)")
		}
		content.WriteString(header + "\n")

		for _, exit := range region.Exits {
			content.WriteString("  " + marker(exit.Accessible(m.collection)) + " → " + exit.Target.Name + "\n")
		}
		for _, loc := range region.Locations {
			content.WriteString("  " + marker(loc.Accessible(m.collection)) + " " + loc.Name + "\n")
		}
		content.WriteString("\n")
	}

	content.WriteString(separatorStyle.Render(strings.Repeat("─", max(1, width))) + "\n")
	goal := "Goal not met"
	if m.world.Complete(m.collection) {
		goal = "GOAL COMPLETE"
	}
	content.WriteString(statusStyle.Render(goal) + "\n")

	m.worldViewport.SetContent(content.String())
}

func marker(open bool) string {
	if open {
		return openStyle.Render("✓")
	}
	return closedStyle.Render("✗")
}

func (m *ExplorerUI) writeCollection() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("COLLECTION") + "\n\n")

	content.WriteString("Session:\n")
	content.WriteString(m.collection.ID.String()[:8] + "...\n\n")

	if len(m.collection.Counts) > 0 {
		names := make([]string, 0, len(m.collection.Counts))
		for name := range m.collection.Counts {
			names = append(names, name)
		}
		sort.Strings(names)

		content.WriteString("Held:\n")
		for _, name := range names {
			line := fmt.Sprintf("• %s ×%d", name, m.collection.Count(name))
			if item, ok := m.data.Items[name]; ok {
				line += " (" + item.Classification.String() + ")"
			}
			content.WriteString(line + "\n")
		}
	} else {
		content.WriteString("Held:\nNothing yet\n")
	}

	content.WriteString("\nOptions:\n")
	for _, option := range []string{
		logic.OptionRandomizeCustomers,
		logic.OptionRandomizeDealers,
		logic.OptionRandomizeSuppliers,
		logic.OptionRandomizeLevelUnlocks,
		logic.OptionRandomizeCartelInfluence,
		logic.OptionRandomizeBusinessProperties,
		logic.OptionRandomizeDrugMakingProperties,
	} {
		label := titleCaser.String(strings.ReplaceAll(strings.TrimPrefix(option, "randomize_"), "_", " "))
		if m.opts.Enabled(option) {
			content.WriteString("• " + label + ": on\n")
		} else {
			content.WriteString("• " + label + ": off\n")
		}
	}
	content.WriteString(fmt.Sprintf("• Goal: %d\n", m.opts.Goal))

	return content.String()
}

func (m ExplorerUI) View() string {
	if !m.ready {
		return "Loading..."
	}

	status := m.status
	if status == "" {
		status = "Type help for commands"
	}
	statusLine := statusStyle.Render(wordwrap.String(status, m.worldViewport.Width))

	left := lipgloss.JoinVertical(lipgloss.Left,
		worldPanelStyle.Render(m.worldViewport.View()),
		statusLine,
		m.input.View(),
	)
	right := metaPanelStyle.Render(m.metaViewport.View())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/uenv/env"
	"github.com/ardnew/uenv/log"
)

// Browse interactively filters the merged dotenv mapping.
type Browse struct {
	Query string `help:"Initial filter." short:"q"`
}

// Run executes the browse command.
func (b *Browse) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	merged, err := settingsFrom(ctx).load(ctx)
	if err != nil {
		return err
	}

	log.TraceContext(ctx, "browse start",
		slog.String("mode", merged.Mode().String()),
		slog.Int("keys", merged.Len()))

	m := newBrowser(merged, b.Query)

	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	if sel, ok := selected(final); ok {
		_, err = fmt.Fprintf(stdout(ctx), "%s=%s\n", sel.Key, dotenvQuote(sel.Value))
	}

	return err
}

const (
	browsePrompt  = "» "
	defaultWidth  = 80
	defaultHeight = 12
)

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	keyStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	valueStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
)

// browser is the bubbletea model of the browse command.
type browser struct {
	input    textinput.Model
	entries  []entry
	keys     []string
	matches  fuzzy.Matches
	cursor   int
	width    int
	height   int
	chosen   int // index into entries, or -1
	quitting bool
}

func newBrowser(merged *env.Merged, query string) browser {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(browsePrompt)
	ti.Placeholder = "filter keys"
	ti.CharLimit = 256
	ti.Width = defaultWidth
	ti.SetValue(query)
	ti.Focus()

	m := browser{
		input:  ti,
		width:  defaultWidth,
		height: defaultHeight,
		chosen: -1,
	}

	for key, val := range merged.All() {
		src, _ := merged.Source(key)
		m.entries = append(m.entries, entry{Key: key, Value: val, Source: src})
		m.keys = append(m.keys, key)
	}

	m.refresh()

	return m
}

// refresh recomputes the fuzzy matches for the current filter. An empty
// filter matches every key in sorted order.
func (m *browser) refresh() {
	query := strings.TrimSpace(m.input.Value())

	if query == "" {
		m.matches = make(fuzzy.Matches, len(m.keys))
		for i, k := range m.keys {
			m.matches[i] = fuzzy.Match{Str: k, Index: i}
		}
	} else {
		m.matches = fuzzy.Find(query, m.keys)
	}

	m.cursor = min(m.cursor, max(len(m.matches)-1, 0))
}

// selection returns the entry picked with Enter.
func (m browser) selection() (entry, bool) {
	if m.chosen < 0 || m.chosen >= len(m.entries) {
		return entry{}, false
	}

	return m.entries[m.chosen], true
}

// selected returns the entry picked in the final model of a browse program.
func selected(final tea.Model) (entry, bool) {
	switch m := final.(type) {
	case browser:
		return m.selection()
	case *browser:
		if m != nil {
			return m.selection()
		}
	}

	return entry{}, false
}

func (m browser) Init() tea.Cmd {
	return textinput.Blink
}

func (m browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-len(browsePrompt)-2, 1)

		return m, nil
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m browser) handleKey(msg tea.KeyMsg) (browser, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
		m.quitting = true

		return m, tea.Quit

	case tea.KeyEnter:
		if len(m.matches) > 0 {
			m.chosen = m.matches[m.cursor].Index
		}

		m.quitting = true

		return m, tea.Quit

	case tea.KeyUp, tea.KeyCtrlP, tea.KeyShiftTab:
		if m.cursor > 0 {
			m.cursor--
		}

		return m, nil

	case tea.KeyDown, tea.KeyCtrlN, tea.KeyTab:
		if m.cursor < len(m.matches)-1 {
			m.cursor++
		}

		return m, nil
	}

	var cmd tea.Cmd

	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)

	if m.input.Value() != before {
		m.cursor = 0
		m.refresh()
	}

	return m, cmd
}

// rows is the number of list lines that fit below the input and above the
// status line.
func (m browser) rows() int {
	return max(m.height-2, 1)
}

func (m browser) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	rows := m.rows()
	first := 0

	if m.cursor >= rows {
		first = m.cursor - rows + 1
	}

	for i := first; i < len(m.matches) && i < first+rows; i++ {
		b.WriteString(m.renderRow(m.matches[i], i == m.cursor))
		b.WriteString("\n")
	}

	status := fmt.Sprintf("%s/%d",
		lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(len(m.matches))),
		len(m.entries))

	if len(m.matches) > 0 {
		if src := m.entries[m.matches[m.cursor].Index].Source; src != "" {
			status += "  " + src
		}
	}

	b.WriteString(hintStyle.Render(status))
	b.WriteString("\n")

	return b.String()
}

// renderRow renders KEY=value with the matched characters of KEY
// highlighted, truncated to the terminal width.
func (m browser) renderRow(match fuzzy.Match, selected bool) string {
	ks, hs, vs := keyStyle, matchStyle, valueStyle

	if selected {
		ks, hs, vs = selectedStyle, selectedStyle.Bold(true), selectedStyle
	}

	hit := make(map[int]bool, len(match.MatchedIndexes))
	for _, i := range match.MatchedIndexes {
		hit[i] = true
	}

	var b strings.Builder

	for i, r := range match.Str {
		if hit[i] {
			b.WriteString(hs.Render(string(r)))
		} else {
			b.WriteString(ks.Render(string(r)))
		}
	}

	value := m.entries[match.Index].Value
	value = strings.ReplaceAll(value, "\n", `\n`)

	room := m.width - lipgloss.Width(match.Str) - 1
	if room < 0 {
		room = 0
	}

	if r := []rune(value); len(r) > room {
		if room > 3 {
			value = string(r[:room-3]) + "..."
		} else {
			value = string(r[:room])
		}
	}

	b.WriteString(vs.Render("=" + value))

	return b.String()
}

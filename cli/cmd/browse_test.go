package cmd

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/uenv/env"
)

func testBrowser(query string) browser {
	return newBrowser(env.NewMerged(env.Development, map[string]string{
		"API_URL":      "http://localhost",
		"DATABASE_URL": "postgres://db",
		"DEBUG":        "true",
		"PORT":         "8080",
	}), query)
}

func send(m browser, msgs ...tea.Msg) browser {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(browser)
	}

	return m
}

func typed(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func matchedKeys(m browser) []string {
	keys := make([]string, len(m.matches))
	for i, match := range m.matches {
		keys[i] = match.Str
	}

	return keys
}

func TestBrowser_EmptyFilterListsAll(t *testing.T) {
	m := testBrowser("")

	got := strings.Join(matchedKeys(m), ",")
	if want := "API_URL,DATABASE_URL,DEBUG,PORT"; got != want {
		t.Errorf("matches = %s, want %s", got, want)
	}
}

func TestBrowser_Filter(t *testing.T) {
	m := send(testBrowser(""), typed("url"))

	got := matchedKeys(m)
	if len(got) != 2 {
		t.Fatalf("matches = %v, want API_URL and DATABASE_URL", got)
	}

	for _, k := range got {
		if !strings.HasSuffix(k, "_URL") {
			t.Errorf("unexpected match %q", k)
		}
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace},
		tea.KeyMsg{Type: tea.KeyBackspace})
	if len(m.matches) != 4 {
		t.Errorf("after clearing filter, %d matches, want 4", len(m.matches))
	}
}

func TestBrowser_InitialQuery(t *testing.T) {
	m := testBrowser("port")

	if got := matchedKeys(m); len(got) != 1 || got[0] != "PORT" {
		t.Errorf("matches = %v, want [PORT]", got)
	}
}

func TestBrowser_NoMatches(t *testing.T) {
	m := send(testBrowser(""), typed("zzz"))

	if len(m.matches) != 0 {
		t.Fatalf("matches = %v, want none", matchedKeys(m))
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := m.selection(); ok {
		t.Error("selection() ok with no matches")
	}
}

func TestBrowser_Navigate(t *testing.T) {
	m := testBrowser("")

	m = send(m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d after up at top, want 0", m.cursor)
	}

	m = send(m,
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
	)
	if m.cursor != 3 {
		t.Errorf("cursor = %d after moving past end, want 3", m.cursor)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyUp}, tea.KeyMsg{Type: tea.KeyEnter})

	sel, ok := m.selection()
	if !ok || sel.Key != "DEBUG" || sel.Value != "true" {
		t.Errorf("selection() = %+v, %v; want DEBUG=true", sel, ok)
	}

	if m.View() != "" {
		t.Error("View() not empty after quitting")
	}
}

func TestBrowser_Quit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC, tea.KeyCtrlD} {
		m := testBrowser("")

		next, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("%v: no command returned, want quit", key)
		}

		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v: command did not quit", key)
		}

		if _, ok := next.(browser).selection(); ok {
			t.Errorf("%v: selection made on quit", key)
		}
	}
}

func TestBrowser_View(t *testing.T) {
	m := send(testBrowser(""), tea.WindowSizeMsg{Width: 40, Height: 4})

	view := m.View()
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")

	// input line, two rows, status line
	if len(lines) != 4 {
		t.Fatalf("View() has %d lines, want 4:\n%s", len(lines), view)
	}

	if !strings.Contains(view, "http://localhost") {
		t.Errorf("View() missing first value:\n%s", view)
	}

	if !strings.Contains(view, "/4") {
		t.Errorf("View() missing count:\n%s", view)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if view := m.View(); !strings.Contains(view, "8080") && !strings.Contains(view, "true") {
		t.Errorf("View() did not scroll:\n%s", view)
	}
}

func TestSelected(t *testing.T) {
	picked := send(testBrowser("port"), tea.KeyMsg{Type: tea.KeyEnter})

	tests := []struct {
		name  string
		final tea.Model
		want  string
	}{
		{"value", picked, "PORT"},
		{"pointer", &picked, "PORT"},
		{"nil_pointer", (*browser)(nil), ""},
		{"nil", nil, ""},
		{"not_picked", testBrowser(""), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, ok := selected(tt.final)
			if ok != (tt.want != "") || sel.Key != tt.want {
				t.Errorf("selected() = %+v, %v; want key %q", sel, ok, tt.want)
			}
		})
	}
}

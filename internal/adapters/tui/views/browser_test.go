package views

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"webdir/internal/application"
	"webdir/internal/domain"
	"webdir/internal/mock"
)

type browserFixture struct {
	model   *BrowserModel
	copied  []string
	opened  []string
	copyErr error
	openErr error
}

func newBrowserFixture(t *testing.T, entries ...domain.Entry) *browserFixture {
	t.Helper()
	f := &browserFixture{}
	clip := &mock.Clipboard{WriteAllFn: func(text string) error {
		if f.copyErr != nil {
			return f.copyErr
		}
		f.copied = append(f.copied, text)
		return nil
	}}
	opener := &mock.URLOpener{OpenFn: func(url string) error {
		if f.openErr != nil {
			return f.openErr
		}
		f.opened = append(f.opened, url)
		return nil
	}}
	f.model = NewBrowserModel(loadedStore(t, entries...), clip, opener)
	f.model.Update(EntriesLoadedMsg{})
	return f
}

func names(blocks []Block) []string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, b.Title)
	}
	return out
}

func TestBrowserModel_ScenarioA(t *testing.T) {
	f := newBrowserFixture(t, sampleEntries...)

	f.model.SetKeyword("git")
	f.model.SelectCategory("dev")

	got := strings.Join(names(f.model.Blocks()), ",")
	if got != "GitHub,GitLab" {
		t.Errorf("blocks = %s, want GitHub,GitLab", got)
	}
}

func TestBrowserModel_Categories(t *testing.T) {
	f := newBrowserFixture(t, sampleEntries...)

	got := f.model.Categories()
	want := []string{domain.CategoryAll, "Dev", "Design"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestBrowserModel_CycleCategory(t *testing.T) {
	f := newBrowserFixture(t, sampleEntries...)

	f.model.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.model.Category() != "Dev" {
		t.Fatalf("Category() = %q, want Dev", f.model.Category())
	}
	if got := len(f.model.Blocks()); got != 2 {
		t.Errorf("blocks = %d, want 2", got)
	}

	f.model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.model.Category() != domain.CategoryAll {
		t.Errorf("Category() = %q, want all", f.model.Category())
	}
}

func TestBrowserModel_SearchTyping(t *testing.T) {
	f := newBrowserFixture(t, sampleEntries...)

	f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	for _, r := range "fig" {
		f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}

	if f.model.Keyword() != "fig" {
		t.Fatalf("Keyword() = %q, want fig", f.model.Keyword())
	}
	if got := strings.Join(names(f.model.Blocks()), ","); got != "Figma" {
		t.Errorf("blocks = %s, want Figma", got)
	}

	// keys go to the search box until it is left
	f.model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	_, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if cmd == nil {
		t.Fatal("copy after leaving search returned nil cmd")
	}
}

func TestBrowserModel_NoMatches(t *testing.T) {
	f := newBrowserFixture(t, sampleEntries...)

	f.model.SetKeyword("zzz")

	if len(f.model.Blocks()) != 0 {
		t.Errorf("blocks = %v, want none", names(f.model.Blocks()))
	}
	if _, ok := f.model.Selected(); ok {
		t.Error("Selected() ok with no blocks")
	}
	if cmd := f.model.Dispatch(ActionCopy); cmd != nil {
		t.Error("Dispatch() with no selection returned a cmd")
	}
}

func TestBrowserModel_CopyAction(t *testing.T) {
	f := newBrowserFixture(t, sampleEntries...)
	f.model.Update(tea.KeyMsg{Type: tea.KeyDown})

	_, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	if cmd == nil {
		t.Fatal("copy returned nil cmd")
	}

	msg := cmd()
	if msg != (NotifyMsg{Text: MsgCopied}) {
		t.Errorf("msg = %#v, want %q", msg, MsgCopied)
	}
	if len(f.copied) != 1 || f.copied[0] != "https://figma.com" {
		t.Errorf("copied = %v, want [https://figma.com]", f.copied)
	}
}

func TestBrowserModel_CopyError(t *testing.T) {
	f := newBrowserFixture(t, sampleEntries...)
	f.copyErr = errors.New("no clipboard")

	msg, ok := f.model.Dispatch(ActionCopy)().(NotifyMsg)
	if !ok || !msg.IsErr {
		t.Fatalf("msg = %#v, want error notification", msg)
	}
	if !strings.Contains(msg.Text, "no clipboard") {
		t.Errorf("Text = %q", msg.Text)
	}
}

func TestBrowserModel_VisitAction(t *testing.T) {
	f := newBrowserFixture(t, sampleEntries...)

	_, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	if cmd != nil {
		t.Errorf("visit returned cmd %T, want nil", cmd())
	}
	if len(f.opened) != 1 || f.opened[0] != "https://github.com" {
		t.Errorf("opened = %v, want [https://github.com]", f.opened)
	}
	if len(f.copied) != 0 {
		t.Errorf("visit also copied %v", f.copied)
	}
}

func TestBrowserModel_VisitError(t *testing.T) {
	f := newBrowserFixture(t, sampleEntries...)
	f.openErr = errors.New("no browser")

	msg, ok := f.model.Dispatch(ActionVisit)().(NotifyMsg)
	if !ok || !msg.IsErr {
		t.Fatalf("msg = %#v, want error notification", msg)
	}
}

func TestBrowserModel_CursorBounds(t *testing.T) {
	f := newBrowserFixture(t, sampleEntries...)

	f.model.Update(tea.KeyMsg{Type: tea.KeyUp})
	if blk, _ := f.model.Selected(); blk.Title != "GitHub" {
		t.Errorf("Selected() = %q, want GitHub", blk.Title)
	}

	for range 10 {
		f.model.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if blk, _ := f.model.Selected(); blk.Title != "GitLab" {
		t.Errorf("Selected() = %q, want GitLab", blk.Title)
	}
}

func TestBrowserModel_LoadFailure(t *testing.T) {
	seed := &mock.SeedSource{FetchFn: func(ctx context.Context) ([]domain.Entry, error) {
		return nil, errors.New("offline")
	}}
	store := application.NewEntryStore(mock.NewCache(nil), seed, nil)
	m := NewBrowserModel(store, &mock.Clipboard{}, &mock.URLOpener{})

	msg := m.Init()()
	loaded, ok := msg.(EntriesLoadedMsg)
	if !ok || loaded.Err == nil {
		t.Fatalf("Init() msg = %#v, want load error", msg)
	}

	_, cmd := m.Update(msg)
	if cmd == nil {
		t.Fatal("load failure returned nil cmd")
	}
	if n, ok := cmd().(NotifyMsg); !ok || !n.IsErr {
		t.Errorf("msg = %#v, want error notification", n)
	}
	if len(m.Blocks()) != 0 {
		t.Error("blocks present after failed load")
	}
	if !strings.Contains(m.View(), NoResultsText) {
		t.Error("View() missing placeholder after failed load")
	}
}

func TestBrowserModel_SwitchMessages(t *testing.T) {
	tests := []struct {
		name string
		key  rune
		want tea.Msg
	}{
		{"add", 'a', SwitchToAddMsg{}},
		{"help", '?', SwitchToHelpMsg{}},
		{"theme", 't', ToggleThemeMsg{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBrowserFixture(t, sampleEntries...)
			_, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{tt.key}})
			if cmd == nil {
				t.Fatal("nil cmd")
			}
			if got := cmd(); got != tt.want {
				t.Errorf("msg = %#v, want %#v", got, tt.want)
			}
		})
	}
}

package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"webdir/internal/adapters/tui/styles"
	"webdir/internal/application"
	"webdir/internal/application/commands"
	"webdir/internal/domain"
	"webdir/internal/ports"
)

// MsgCopied is shown after a link reaches the clipboard
const MsgCopied = "Link copied!"

// BrowserKeyMap defines key bindings for the browser view
type BrowserKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextCat     key.Binding
	PrevCat     key.Binding
	Visit       key.Binding
	Copy        key.Binding
	Add         key.Binding
	Search      key.Binding
	LeaveSearch key.Binding
	Theme       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

var BrowserKeys = BrowserKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextCat: key.NewBinding(
		key.WithKeys("tab", "l", "right"),
		key.WithHelp("tab", "category"),
	),
	PrevCat: key.NewBinding(
		key.WithKeys("shift+tab", "h", "left"),
		key.WithHelp("shift+tab", "prev category"),
	),
	Visit: key.NewBinding(
		key.WithKeys("o", "enter"),
		key.WithHelp("o", "visit"),
	),
	Copy: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "copy"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	LeaveSearch: key.NewBinding(
		key.WithKeys("esc", "enter"),
		key.WithHelp("esc", "done"),
	),
	Theme: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "theme"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ActionHandler performs a block action
type ActionHandler func(Block) tea.Cmd

// EntriesLoadedMsg carries the outcome of the initial load
type EntriesLoadedMsg struct {
	Entries domain.Collection
	Err     error
}

// BrowserModel lists websites with a search box and a category selector
type BrowserModel struct {
	ViewState
	store     *application.EntryStore
	clipboard ports.Clipboard
	opener    ports.URLOpener

	search     textinput.Model
	categories []string
	category   int
	blocks     []Block
	cursor     int
	viewport   viewport.Model
	loaded     bool

	actions map[Action]ActionHandler
}

// NewBrowserModel creates a new browser model
func NewBrowserModel(store *application.EntryStore, clipboard ports.Clipboard, opener ports.URLOpener) *BrowserModel {
	search := textinput.New()
	search.Placeholder = "Search websites..."
	search.Prompt = "/ "
	search.CharLimit = 100

	m := &BrowserModel{
		store:      store,
		clipboard:  clipboard,
		opener:     opener,
		search:     search,
		categories: []string{domain.CategoryAll},
		viewport:   viewport.New(80, 20),
	}
	m.actions = map[Action]ActionHandler{
		ActionVisit: m.visit,
		ActionCopy:  m.copy,
	}
	return m
}

// Init starts loading the collection
func (m *BrowserModel) Init() tea.Cmd {
	return m.load
}

func (m *BrowserModel) load() tea.Msg {
	result, err := commands.NewLoadCommand(m.store).Execute(context.Background())
	if err != nil {
		return EntriesLoadedMsg{Err: err}
	}
	return EntriesLoadedMsg{Entries: result.Entries}
}

// Update handles messages for the browser
func (m *BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case EntriesLoadedMsg:
		m.loaded = true
		m.Refresh()
		if msg.Err != nil {
			return m, NotifyError(fmt.Sprintf("Could not load websites: %v", msg.Err))
		}
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.search.Focused() {
			return m, m.updateSearch(msg)
		}

		switch {
		case key.Matches(msg, BrowserKeys.Quit):
			return m, tea.Quit

		case key.Matches(msg, BrowserKeys.Up):
			m.moveCursor(-1)
			return m, nil

		case key.Matches(msg, BrowserKeys.Down):
			m.moveCursor(1)
			return m, nil

		case key.Matches(msg, BrowserKeys.NextCat):
			m.cycleCategory(1)
			return m, nil

		case key.Matches(msg, BrowserKeys.PrevCat):
			m.cycleCategory(-1)
			return m, nil

		case key.Matches(msg, BrowserKeys.Visit):
			return m, m.Dispatch(ActionVisit)

		case key.Matches(msg, BrowserKeys.Copy):
			return m, m.Dispatch(ActionCopy)

		case key.Matches(msg, BrowserKeys.Search):
			return m, m.search.Focus()

		case key.Matches(msg, BrowserKeys.Add):
			return m, switchTo(SwitchToAddMsg{})

		case key.Matches(msg, BrowserKeys.Theme):
			return m, switchTo(ToggleThemeMsg{})

		case key.Matches(msg, BrowserKeys.Help):
			return m, switchTo(SwitchToHelpMsg{})
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// updateSearch refilters on every keystroke
func (m *BrowserModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, BrowserKeys.LeaveSearch) {
		m.search.Blur()
		return nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != before {
		m.cursor = 0
		m.Refresh()
	}
	return cmd
}

// Dispatch runs the handler bound to action for the selected block
func (m *BrowserModel) Dispatch(action Action) tea.Cmd {
	blk, ok := m.Selected()
	if !ok || !blk.Has(action) {
		return nil
	}
	handler, ok := m.actions[action]
	if !ok {
		return nil
	}
	return handler(blk)
}

func (m *BrowserModel) visit(blk Block) tea.Cmd {
	if err := m.opener.Open(blk.URL); err != nil {
		return NotifyError(fmt.Sprintf("Could not open %s: %v", blk.URL, err))
	}
	return nil
}

func (m *BrowserModel) copy(blk Block) tea.Cmd {
	if err := m.clipboard.WriteAll(blk.URL); err != nil {
		return NotifyError(fmt.Sprintf("Could not copy link: %v", err))
	}
	return Notify(MsgCopied)
}

// Selected returns the block under the cursor
func (m *BrowserModel) Selected() (Block, bool) {
	if m.cursor >= 0 && m.cursor < len(m.blocks) {
		return m.blocks[m.cursor], true
	}
	return Block{}, false
}

// Blocks returns the currently displayed blocks
func (m *BrowserModel) Blocks() []Block {
	return m.blocks
}

// Keyword returns the search box contents
func (m *BrowserModel) Keyword() string {
	return m.search.Value()
}

// SetKeyword replaces the search box contents and refilters
func (m *BrowserModel) SetKeyword(keyword string) {
	m.search.SetValue(keyword)
	m.cursor = 0
	m.Refresh()
}

// Category returns the selected category
func (m *BrowserModel) Category() string {
	if m.category < 0 || m.category >= len(m.categories) {
		return domain.CategoryAll
	}
	return m.categories[m.category]
}

// Categories returns the selector options, "all" first
func (m *BrowserModel) Categories() []string {
	return m.categories
}

// SelectCategory selects category by name (case-insensitive) and refilters
func (m *BrowserModel) SelectCategory(category string) {
	for i, c := range m.categories {
		if strings.EqualFold(c, category) {
			m.category = i
			break
		}
	}
	m.cursor = 0
	m.Refresh()
}

func (m *BrowserModel) cycleCategory(delta int) {
	n := len(m.categories)
	if n == 0 {
		return
	}
	m.category = (m.category + delta + n) % n
	m.cursor = 0
	m.Refresh()
}

func (m *BrowserModel) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= len(m.blocks) {
		return
	}
	m.cursor = next
	m.syncViewport()
}

// Refresh recomputes the category options and the filtered blocks from the
// store, then redraws the list.
func (m *BrowserModel) Refresh() {
	ctx := context.Background()
	selected := m.Category()

	categories, err := commands.NewCategoriesCommand(m.store).Execute(ctx)
	if err == nil {
		m.categories = categories
	}
	m.category = 0
	for i, c := range m.categories {
		if strings.EqualFold(c, selected) {
			m.category = i
			break
		}
	}

	entries, err := commands.NewListCommand(m.store, m.search.Value(), m.Category()).Execute(ctx)
	if err != nil {
		entries = nil
	}
	m.blocks = BuildBlocks(entries)

	if m.cursor >= len(m.blocks) {
		m.cursor = len(m.blocks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.syncViewport()
}

// syncViewport redraws the blocks and scrolls so the cursor is visible
func (m *BrowserModel) syncViewport() {
	content, offsets := layoutBlocks(m.blocks, m.cursor, m.viewport.Width)
	m.viewport.SetContent(content)

	if len(offsets) == 0 {
		m.viewport.GotoTop()
		return
	}

	top := offsets[m.cursor]
	bottom := strings.Count(content, "\n")
	if m.cursor+1 < len(offsets) {
		bottom = offsets[m.cursor+1]
	}

	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

// header: title, subtitle, search, chips, spacing; footer: help and toast
const browserChrome = 9

// SetSize updates the view dimensions
func (m *BrowserModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.search.Width = max(width-10, 10)
	m.viewport.Width = max(width-4, 20)
	m.viewport.Height = max(height-browserChrome, 3)
	m.syncViewport()
}

// View renders the browser
func (m *BrowserModel) View() string {
	vb := NewViewBuilder().
		Title("Web Directory").
		Subtitle(fmt.Sprintf("%d websites", m.store.Len()))

	if m.search.Focused() || m.search.Value() != "" {
		vb.Line(m.search.View())
	} else {
		vb.Muted("/ to search")
	}
	vb.Line(m.renderCategories()).BlankLine()

	if !m.loaded {
		vb.Muted("Loading...")
	} else {
		vb.Line(m.viewport.View())
	}

	vb.Raw(m.renderHelpLine())
	return vb.String()
}

func (m *BrowserModel) renderCategories() string {
	chips := make([]string, 0, len(m.categories))
	for i, c := range m.categories {
		label := c
		if c == domain.CategoryAll {
			label = "All"
		}
		if i == m.category {
			chips = append(chips, styles.ChipSelected.Render(label))
		} else {
			chips = append(chips, styles.Chip.Render(label))
		}
	}
	return strings.Join(chips, " ")
}

func (m *BrowserModel) renderHelpLine() string {
	if m.search.Focused() {
		return RenderHelpLine(BrowserKeys.LeaveSearch)
	}
	return RenderHelpLine(
		BrowserKeys.Down,
		BrowserKeys.NextCat,
		BrowserKeys.Visit,
		BrowserKeys.Copy,
		BrowserKeys.Add,
		BrowserKeys.Search,
		BrowserKeys.Theme,
		BrowserKeys.Help,
		BrowserKeys.Quit,
	)
}

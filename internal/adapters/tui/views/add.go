package views

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"webdir/internal/application"
	"webdir/internal/application/commands"
	"webdir/internal/domain"
)

// Add form field indexes
const (
	FieldName = iota
	FieldDescription
	FieldURL
	FieldCategory
)

// EntryAddedMsg reports a submission that reached the store. SaveErr is set
// when the entry is in memory but the cache write failed.
type EntryAddedMsg struct {
	Entry   domain.Entry
	Message string
	SaveErr error
}

// AddModel is the input form controller for new websites
type AddModel struct {
	ViewState
	store *application.EntryStore
	form  *InputForm
}

// NewAddModel creates a new add view model
func NewAddModel(store *application.EntryStore) *AddModel {
	form := NewInputForm(
		NewInputField("Name", "Website name", 100),
		NewInputField("Description", "What is it for?", 300),
		NewInputField("URL", "https://example.com", 2048),
		NewInputField("Category", "e.g. Tools", 50),
	)
	return &AddModel{
		store: store,
		form:  form,
	}
}

// Init initializes the add view
func (m *AddModel) Init() tea.Cmd {
	m.form.SetFocus(FieldName)
	return m.form.Init()
}

// Form exposes the underlying input form
func (m *AddModel) Form() *InputForm {
	return m.form
}

// Update handles messages for the add view
func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, switchTo(SwitchToBrowserMsg{})
		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.Submit()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

// Submit validates the four fields and adds the entry. On validation failure
// the fields keep their values; once the entry is in the store they are cleared.
func (m *AddModel) Submit() tea.Cmd {
	cmd := commands.NewAddEntryCommand(m.store,
		m.form.Value(FieldName),
		m.form.Value(FieldDescription),
		m.form.Value(FieldURL),
		m.form.Value(FieldCategory),
	)

	result, err := cmd.Execute(context.Background())
	switch {
	case errors.Is(err, application.ErrCacheWrite):
		// the store kept the entry; resubmitting would duplicate it
		m.form.Reset()
		entry := domain.Entry{Name: cmd.Name, Description: cmd.Description, URL: cmd.URL, Category: cmd.Category}
		return func() tea.Msg {
			return EntryAddedMsg{Entry: entry, Message: commands.MsgAdded, SaveErr: err}
		}
	case err != nil:
		return NotifyError(commands.UserMessage(err))
	}

	m.form.Reset()
	return func() tea.Msg {
		return EntryAddedMsg{Entry: result.Entry, Message: result.Message}
	}
}

// View renders the add form
func (m *AddModel) View() string {
	vb := NewViewBuilder().
		Title("Add a website").
		Subtitle("All fields are required")

	for i := range m.form.Fields {
		vb.Line(m.form.RenderField(i)).BlankLine()
	}

	vb.Raw(m.form.RenderHelp("add"))
	return vb.String()
}

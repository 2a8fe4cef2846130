package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"webdir/internal/adapters/tui/styles"
)

// InputFormKeyMap defines key bindings for input forms
type InputFormKeyMap struct {
	Submit   key.Binding
	Cancel   key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
}

var DefaultInputFormKeys = InputFormKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	ShiftTab: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
}

// InputField is a labelled text input
type InputField struct {
	Label string
	Input textinput.Model
}

// NewInputField creates a field; charLimit <= 0 keeps the textinput default
func NewInputField(label, placeholder string, charLimit int) InputField {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = ""
	if charLimit > 0 {
		input.CharLimit = charLimit
	}
	return InputField{Label: label, Input: input}
}

// InputForm is an ordered set of fields with exactly one focused
type InputForm struct {
	Fields       []InputField
	FocusedField int
	Keys         InputFormKeyMap
}

// NewInputForm creates a form focused on its first field
func NewInputForm(fields ...InputField) *InputForm {
	f := &InputForm{Fields: fields, Keys: DefaultInputFormKeys}
	f.SetFocus(0)
	return f
}

// Init returns the cursor blink command
func (f *InputForm) Init() tea.Cmd {
	return textinput.Blink
}

// Update moves focus on tab/shift+tab and otherwise feeds the focused input.
// handled reports whether msg was a focus key.
func (f *InputForm) Update(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(km, f.Keys.Tab):
			f.NextField()
			return true, nil
		case key.Matches(km, f.Keys.ShiftTab):
			f.PrevField()
			return true, nil
		}
	}

	if !f.valid(f.FocusedField) {
		return false, nil
	}
	field := &f.Fields[f.FocusedField]
	field.Input, cmd = field.Input.Update(msg)
	return false, cmd
}

// NextField focuses the following field, wrapping to the first
func (f *InputForm) NextField() {
	f.moveFocus(1)
}

// PrevField focuses the preceding field, wrapping to the last
func (f *InputForm) PrevField() {
	f.moveFocus(-1)
}

func (f *InputForm) moveFocus(delta int) {
	n := len(f.Fields)
	if n <= 1 {
		return
	}
	f.SetFocus((f.FocusedField + delta + n) % n)
}

// SetFocus focuses field index; out-of-range indexes are ignored
func (f *InputForm) SetFocus(index int) {
	if !f.valid(index) {
		return
	}
	for i := range f.Fields {
		f.Fields[i].Input.Blur()
	}
	f.FocusedField = index
	f.Fields[index].Input.Focus()
}

// Value returns the trimmed value of field index
func (f *InputForm) Value(index int) string {
	return strings.TrimSpace(f.RawValue(index))
}

// RawValue returns field index exactly as typed
func (f *InputForm) RawValue(index int) string {
	if !f.valid(index) {
		return ""
	}
	return f.Fields[index].Input.Value()
}

// SetValue replaces the contents of field index
func (f *InputForm) SetValue(index int, value string) {
	if f.valid(index) {
		f.Fields[index].Input.SetValue(value)
	}
}

// Reset empties every field and focuses the first
func (f *InputForm) Reset() {
	for i := range f.Fields {
		f.Fields[i].Input.Reset()
	}
	f.SetFocus(0)
}

func (f *InputForm) valid(index int) bool {
	return index >= 0 && index < len(f.Fields)
}

// RenderField draws the label and the boxed input of field index
func (f *InputForm) RenderField(index int) string {
	if !f.valid(index) {
		return ""
	}

	box := styles.InputField
	if index == f.FocusedField {
		box = styles.InputFocused
	}
	field := f.Fields[index]
	return styles.InputLabel.Render(field.Label) + "\n" + box.Render(field.Input.View())
}

// RenderHelp draws the form's key help with submitText on the enter binding
func (f *InputForm) RenderHelp(submitText string) string {
	var bindings []key.Binding
	if len(f.Fields) > 1 {
		bindings = append(bindings, f.Keys.Tab)
	}
	submit := f.Keys.Submit
	submit.SetHelp(submit.Help().Key, submitText)
	bindings = append(bindings, submit, f.Keys.Cancel)

	return RenderHelpLine(bindings...)
}

package views

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"webdir/internal/adapters/tui/styles"
)

// DismissAfter is how long a notification stays visible
const DismissAfter = 2 * time.Second

// NotifyMsg asks the app to show a notification
type NotifyMsg struct {
	Text  string
	IsErr bool
}

// Notify returns a command that emits a notification
func Notify(text string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Text: text}
	}
}

// NotifyError returns a command that emits an error notification
func NotifyError(text string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Text: text, IsErr: true}
	}
}

type toastExpiredMsg struct {
	id int
}

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastWarning
	toastError
)

// Toast shows one transient message at a time. Showing a new message
// replaces the current one and restarts the dismissal timer; ticks from
// replaced messages are ignored.
type Toast struct {
	id      int
	message string
	level   toastLevel
	visible bool
	after   time.Duration
}

// NewToast creates an idle toast
func NewToast() *Toast {
	return &Toast{after: DismissAfter}
}

// Show displays message and schedules its dismissal
func (t *Toast) Show(message string) tea.Cmd {
	return t.show(message, toastInfo)
}

// ShowWarning displays message with warning styling
func (t *Toast) ShowWarning(message string) tea.Cmd {
	return t.show(message, toastWarning)
}

// ShowError displays message with error styling
func (t *Toast) ShowError(message string) tea.Cmd {
	return t.show(message, toastError)
}

func (t *Toast) show(message string, level toastLevel) tea.Cmd {
	t.id++
	t.message = message
	t.level = level
	t.visible = true

	id := t.id
	return tea.Tick(t.after, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

// Update handles dismissal ticks. It reports whether msg belonged to the toast.
func (t *Toast) Update(msg tea.Msg) bool {
	expired, ok := msg.(toastExpiredMsg)
	if !ok {
		return false
	}
	if expired.id == t.id {
		t.visible = false
		t.message = ""
		t.level = toastInfo
	}
	return true
}

// Visible reports whether a message is showing
func (t *Toast) Visible() bool {
	return t.visible
}

// Message returns the visible message, or "" when idle
func (t *Toast) Message() string {
	return t.message
}

// View renders the toast, or "" when idle
func (t *Toast) View() string {
	if !t.visible {
		return ""
	}
	switch t.level {
	case toastError:
		return styles.ToastError.Render(t.message)
	case toastWarning:
		return styles.ToastWarning.Render(t.message)
	default:
		return styles.Toast.Render(t.message)
	}
}

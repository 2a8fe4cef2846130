package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"webdir/internal/adapters/tui/styles"
	"webdir/internal/domain"
)

// NoResultsText is shown instead of blocks when nothing matches
const NoResultsText = "No websites found."

// Action is something the user can do with a rendered block
type Action string

const (
	ActionVisit Action = "visit"
	ActionCopy  Action = "copy"
)

var actionLabels = map[Action]string{
	ActionVisit: "Visit website",
	ActionCopy:  "Copy link",
}

// Block is the display projection of one entry
type Block struct {
	Title   string
	Body    string
	Meta    string
	URL     string
	Actions []Action
}

// Has reports whether a is bound on this block
func (b Block) Has(a Action) bool {
	for _, action := range b.Actions {
		if action == a {
			return true
		}
	}
	return false
}

// BuildBlocks projects entries into display blocks, one per entry, in order
func BuildBlocks(entries domain.Collection) []Block {
	blocks := make([]Block, 0, len(entries))
	for _, e := range entries {
		blocks = append(blocks, Block{
			Title:   e.Name,
			Body:    e.Description,
			Meta:    e.Category,
			URL:     e.URL,
			Actions: []Action{ActionVisit, ActionCopy},
		})
	}
	return blocks
}

// RenderBlocks draws blocks from scratch. An empty slice renders the
// no-results placeholder only.
func RenderBlocks(blocks []Block, cursor, width int) string {
	content, _ := layoutBlocks(blocks, cursor, width)
	return content
}

// layoutBlocks renders blocks and returns the first line of each one
func layoutBlocks(blocks []Block, cursor, width int) (string, []int) {
	if len(blocks) == 0 {
		return styles.Placeholder.Width(max(width, len(NoResultsText))).Render(NoResultsText), nil
	}

	var b strings.Builder
	offsets := make([]int, len(blocks))
	line := 0
	for i, blk := range blocks {
		offsets[i] = line
		rendered := renderBlock(blk, i == cursor, width)
		b.WriteString(rendered)
		b.WriteString("\n")
		line += lipgloss.Height(rendered)
	}
	return b.String(), offsets
}

func renderBlock(blk Block, selected bool, width int) string {
	style := styles.Card
	if selected {
		style = styles.CardSelected
	}

	// border (2) + padding (2)
	inner := width - 4
	if width > 0 {
		style = style.Width(width - 2)
	}

	lines := []string{styles.CardTitle.Render(blk.Title)}
	if blk.Body != "" {
		body := blk.Body
		if inner > 0 {
			body = wordwrap.String(body, inner)
		}
		lines = append(lines, styles.CardBody.Render(body))
	}
	lines = append(lines, styles.CardMeta.Render("Category: "+blk.Meta))

	var actions []string
	for _, a := range blk.Actions {
		switch a {
		case ActionVisit:
			actions = append(actions, styles.VisitAction.Render(actionLabels[a]))
		case ActionCopy:
			actions = append(actions, styles.CopyAction.Render(actionLabels[a]))
		}
	}
	if len(actions) > 0 {
		lines = append(lines, strings.Join(actions, "    "))
	}

	return style.Render(strings.Join(lines, "\n"))
}

package modal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Size selects the modal width.
type Size string

const (
	SizeSM Size = "sm"
	SizeMD Size = "md"
	SizeLG Size = "lg"
	SizeXL Size = "xl"
)

// Width in terminal columns, including the border.
func (s Size) Width() int {
	switch s {
	case SizeSM:
		return 40
	case SizeLG:
		return 80
	case SizeXL:
		return 100
	default:
		return 60
	}
}

// Props mirror the options a caller passes when rendering a modal.
type Props struct {
	IsOpen              bool
	OnClose             func()
	Title               string
	Size                Size
	CloseOnOverlayClick bool
	CloseOnEscape       bool
	ShowCloseButton     bool
}

// DefaultProps is a closed, medium modal that closes on Esc, on overlay
// clicks and through its close button.
func DefaultProps() Props {
	return Props{
		Size:                SizeMD,
		CloseOnOverlayClick: true,
		CloseOnEscape:       true,
		ShowCloseButton:     true,
	}
}

const closeGlyph = "✕"

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("208")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	closeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Modal is a dialog rendered into a Host's portal layer while open.
type Modal struct {
	host    *Host
	props   Props
	body    string
	mounted bool
	guard   *guard
}

// New creates an unmounted modal.
func New(host *Host, props Props, body string) *Modal {
	return &Modal{host: host, props: props, body: body}
}

// Mount attaches the modal; if it is open it acquires the host resources.
func (m *Modal) Mount() {
	m.mounted = true
	m.sync()
}

// Unmount detaches the modal and releases anything it holds.
func (m *Modal) Unmount() {
	m.mounted = false
	m.sync()
}

// SetProps replaces the props, opening or closing the modal as needed.
func (m *Modal) SetProps(p Props) {
	m.props = p
	m.sync()
}

func (m *Modal) Props() Props { return m.props }

func (m *Modal) SetBody(body string) { m.body = body }

// Open reports whether the modal currently holds its portal layer.
func (m *Modal) Open() bool { return m.guard != nil }

func (m *Modal) sync() {
	want := m.mounted && m.props.IsOpen
	switch {
	case want && m.guard == nil:
		m.guard = acquire(m.host, m.handleKey, m.View)
	case !want && m.guard != nil:
		m.guard.Release()
		m.guard = nil
	}
}

func (m *Modal) handleKey(key string) {
	if key == "esc" && m.props.CloseOnEscape {
		m.close()
	}
}

// HandleClick routes a left click at screen cell (x, y). Clicks outside the
// dialog close it when CloseOnOverlayClick is set; clicks on the close
// button always close it.
func (m *Modal) HandleClick(x, y int) {
	if m.guard == nil {
		return
	}
	b, ok := m.host.Bounds(m.guard.layer)
	if !ok || b.W == 0 {
		return
	}

	switch {
	case !b.Contains(x, y):
		if m.props.CloseOnOverlayClick {
			m.close()
		}
	case m.props.ShowCloseButton && m.onCloseButton(b, x, y):
		m.close()
	}
}

// onCloseButton hit-tests the glyph on the header line, one cell of slack
// either side.
func (m *Modal) onCloseButton(b Rect, x, y int) bool {
	glyphX := b.X + b.W - 3
	return y == b.Y+1 && x >= glyphX-1 && x <= glyphX+1
}

// PressClose activates the close button.
func (m *Modal) PressClose() {
	if m.guard != nil && m.props.ShowCloseButton {
		m.close()
	}
}

func (m *Modal) close() {
	if m.props.OnClose != nil {
		m.props.OnClose()
	}
}

// View renders the dialog box. It is what the host draws in the portal layer.
func (m *Modal) View() string {
	width := m.props.Size.Width()
	inner := width - 4

	title := titleStyle.Render(m.props.Title)
	header := title
	if m.props.ShowCloseButton {
		gap := max(1, inner-lipgloss.Width(title)-lipgloss.Width(closeGlyph))
		header = title + strings.Repeat(" ", gap) + closeStyle.Render(closeGlyph)
	}

	parts := []string{header}
	if m.props.Title != "" || m.props.ShowCloseButton {
		parts = append(parts, ruleStyle.Render(strings.Repeat("─", inner)))
	}
	parts = append(parts, lipgloss.NewStyle().Width(inner).Render(m.body))

	return boxStyle.Width(width - 2).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

package modal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Confirm is a bubbletea program showing base with a modal asking the user
// to confirm. Enter confirms; Esc, an overlay click or the close button
// cancel.
type Confirm struct {
	host  *Host
	modal *Modal
	base  string

	width, height int

	Confirmed bool
	Cancelled bool
}

// NewConfirm builds a confirm dialog titled title over base.
func NewConfirm(title, base, question string) *Confirm {
	c := &Confirm{host: NewHost(), base: base, width: 80, height: 24}

	props := DefaultProps()
	props.Title = title
	props.IsOpen = true
	props.OnClose = func() {
		c.Cancelled = true
		p := c.modal.Props()
		p.IsOpen = false
		c.modal.SetProps(p)
	}

	body := question + "\n\n" + hintStyle.Render("enter: confirm   esc: cancel")
	c.modal = New(c.host, props, body)
	return c
}

// Host exposes the portal host, mainly for inspection.
func (c *Confirm) Host() *Host { return c.host }

func (c *Confirm) Init() tea.Cmd {
	c.modal.Mount()
	return nil
}

func (c *Confirm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width, c.height = msg.Width, msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			c.Confirmed = true
			c.modal.Unmount()
			return c, tea.Quit
		case "ctrl+c":
			c.Cancelled = true
			c.modal.Unmount()
			return c, tea.Quit
		}
		c.host.DispatchKey(msg.String())

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			c.modal.HandleClick(msg.X, msg.Y)
		}
	}

	if c.Cancelled {
		c.modal.Unmount()
		return c, tea.Quit
	}
	return c, nil
}

func (c *Confirm) View() string {
	return c.host.Compose(c.base, c.width, c.height)
}

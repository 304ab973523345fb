package modal

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestConfirmEnter(t *testing.T) {
	c := NewConfirm("Save receipt", "outline", "Save Donation_Receipt_1.pdf?")
	c.Init()
	if c.Host().ListenerCount() != 1 || !c.Host().ScrollLocked() {
		t.Fatal("modal not open after Init")
	}

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !c.Confirmed || c.Cancelled {
		t.Errorf("Confirmed=%v Cancelled=%v", c.Confirmed, c.Cancelled)
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
	if c.Host().ListenerCount() != 0 || c.Host().ScrollLocked() {
		t.Error("resources held after quitting")
	}
}

func TestConfirmEscape(t *testing.T) {
	c := NewConfirm("Save receipt", "outline", "Save?")
	c.Init()

	_, cmd := c.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !c.Cancelled || c.Confirmed {
		t.Errorf("Confirmed=%v Cancelled=%v", c.Confirmed, c.Cancelled)
	}
	if cmd == nil {
		t.Error("expected quit command")
	}
	if c.Host().Layers() != 0 {
		t.Error("portal layer left mounted")
	}
}

func TestConfirmOverlayClick(t *testing.T) {
	c := NewConfirm("Save receipt", "outline", "Save?")
	c.Init()
	c.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	c.View()

	c.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !c.Cancelled {
		t.Error("overlay click did not cancel")
	}
}

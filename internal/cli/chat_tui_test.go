package cli

import (
	"testing"

	"github.com/lucasmreid/advisor/internal/teatest"
	"github.com/stretchr/testify/assert"
)

func TestChatView_FullTurnThroughDriver(t *testing.T) {
	d := teatest.New(t, newTestChatModel())
	d.DrainInit()

	assert.Contains(t, d.View(), "ADVISING CHAT")
	assert.Contains(t, d.View(), "Ana Reyes")

	d.Type("what classes do I still need?")
	assert.Contains(t, d.View(), "what classes do I still need?")

	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "You:")
	assert.Contains(t, view, "Advisor:")
	assert.Contains(t, view, "CS201")
	assert.False(t, d.Quitting)
}

func TestChatView_EscQuits(t *testing.T) {
	d := teatest.New(t, newTestChatModel())
	d.DrainInit()

	d.PressEsc()
	assert.True(t, d.Quitting)
}

func TestChatView_SlashQuitQuits(t *testing.T) {
	d := teatest.New(t, newTestChatModel())
	d.DrainInit()

	d.Type("/quit")
	d.PressEnter()
	assert.True(t, d.Quitting)
}

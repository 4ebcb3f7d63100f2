package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hexarcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
		quit bool
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"w", runeKey('w'), core.ActionUp, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space rotates", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionRotateCW, false},
		{"e rotates", runeKey('e'), core.ActionRotateCW, false},
		{"z rotates back", runeKey('z'), core.ActionRotateCCW, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('m'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, quit, tt.want, tt.quit)
			}
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	click := tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if !km.MapMouseToFrame(click, &frame) {
		t.Fatal("left click should map to a pointer action")
	}
	if !frame.Has(core.ActionPoint) {
		t.Error("frame should carry ActionPoint")
	}
	if frame.Pointer != (core.Pointer{X: 12, Y: 7}) {
		t.Errorf("Pointer = %+v, want {12 7}", frame.Pointer)
	}

	frame.Clear()
	motion := tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionMotion}
	if km.MapMouseToFrame(motion, &frame) {
		t.Error("motion should be ignored")
	}
	right := tea.MouseMsg{X: 3, Y: 3, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}
	if km.MapMouseToFrame(right, &frame) {
		t.Error("right click should be ignored")
	}
	if frame.Has(core.ActionPoint) {
		t.Error("ignored events must not set ActionPoint")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	if got := km.MapKeyToMenuAction(runeKey('j')); got != MenuActionDown {
		t.Errorf("j = %v, want MenuActionDown", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyTab}); got != MenuActionScoreboard {
		t.Errorf("tab = %v, want MenuActionScoreboard", got)
	}
	if got := km.MapKeyToMenuAction(tea.KeyMsg{Type: tea.KeyEnter}); got != MenuActionSelect {
		t.Errorf("enter = %v, want MenuActionSelect", got)
	}
}

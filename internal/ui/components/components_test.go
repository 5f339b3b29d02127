package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizladder/internal/problemgen"
	"github.com/abhisek/quizladder/internal/progression"
	"github.com/abhisek/quizladder/internal/tier"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuestion() problemgen.Question {
	return problemgen.Question{
		Text:    "7 + 5",
		Answer:  12,
		Options: [problemgen.OptionCount]int{11, 12, 13, 14},
		Tier:    tier.Elementary,
		Kind:    problemgen.KindSum,
	}
}

func TestChoices_Navigation(t *testing.T) {
	c := NewChoices(testQuestion())
	assert.Equal(t, 1, c.Correct)
	assert.Equal(t, problemgen.NoAnswer, c.Chosen)

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 0, c.Selected, "cursor stays at the top")

	for range 5 {
		c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, 3, c.Selected, "cursor stops at the last option")

	c, _ = c.Update(keyPress('k'))
	assert.Equal(t, 2, c.Selected)
}

func TestChoices_Reveal(t *testing.T) {
	c := NewChoices(testQuestion())
	c.Reveal(3)

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	assert.Equal(t, 0, c.Selected, "revealed choices ignore input")

	view := c.View()
	assert.Contains(t, view, "2)  12  ✓")
	assert.Contains(t, view, "4)  14  ✗")
	assert.NotContains(t, view, "▸")
}

func TestChoices_View(t *testing.T) {
	view := NewChoices(testQuestion()).View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, problemgen.OptionCount)
	assert.Contains(t, lines[0], "▸ 1)  11")
	assert.Contains(t, lines[3], "4)  14")
}

func TestAnswerInput_Filter(t *testing.T) {
	in := NewAnswerInput("answer", 8)
	for _, r := range "-x4 2a" {
		in, _ = in.Update(keyPress(r))
	}
	assert.Equal(t, "-42", in.Value())

	in, _ = in.Update(keyPress('-'))
	assert.Equal(t, "-42", in.Value(), "sign only allowed first")

	in.Submit(true)
	in, _ = in.Update(keyPress('7'))
	assert.Equal(t, "-42", in.Value(), "submitted input is frozen")
	assert.True(t, in.Submitted())
	assert.Contains(t, in.View(), "✓")
}

func TestMenu(t *testing.T) {
	var picked string
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "Climb", Action: func() tea.Cmd { picked = "climb"; return nil }},
		{Label: "Quit", Action: func() tea.Cmd { picked = "quit"; return nil }},
	})
	assert.Equal(t, 1, m.Selected, "first enabled item is selected")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	assert.Equal(t, 1, m.Selected, "disabled items are skipped")

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, "quit", picked)

	m.SetLabel(1, "Climb!")
	assert.Equal(t, []string{"Off", "Climb!", "Quit"}, m.Labels())
	assert.Contains(t, m.View(), "▸ Quit")
}

func TestStreakBar(t *testing.T) {
	p := progression.Progress{Tier: tier.JuniorHigh, Streak: 4, Required: 8}
	assert.Contains(t, StreakBar(p, 40), "JuniorHigh: 4/8")
}

func TestContentWidth(t *testing.T) {
	tests := []struct {
		frame, want int
	}{
		{10, 20},
		{40, 34},
		{200, 60},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ContentWidth(tt.frame), "frame %d", tt.frame)
	}
}

func TestRung(t *testing.T) {
	idle := Rung("PLAY", false, tier.PhD, 20)
	lit := Rung("PLAY", true, tier.PhD, 20)

	assert.Contains(t, idle, "─ PLAY ─")
	assert.NotContains(t, idle, "▸")
	assert.Contains(t, lit, "▸ PLAY ◂")
	assert.Contains(t, lit, "╟")
	assert.Contains(t, lit, "╢")
	assert.Equal(t, 1, strings.Count(lit, "\n")+1, "a rung is a single line")
}

func TestCabinetFrame(t *testing.T) {
	out := CabinetFrame("hello", tier.University, 30, 8)
	lines := strings.Split(out, "\n")
	require.NotEmpty(t, lines)
	assert.Contains(t, out, "hello")
	assert.Contains(t, lines[0], "╔")
	assert.Contains(t, lines[len(lines)-1], "╚")
}

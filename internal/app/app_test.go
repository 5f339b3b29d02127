package app

import (
	"fmt"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizladder/internal/logging"
	"github.com/abhisek/quizladder/internal/problemgen"
	"github.com/abhisek/quizladder/internal/router"
	"github.com/abhisek/quizladder/internal/screens/home"
	"github.com/abhisek/quizladder/internal/screens/quiz"
	"github.com/abhisek/quizladder/internal/session"
	"github.com/abhisek/quizladder/internal/tier"
)

type fixedSource struct{ n int }

func (f *fixedSource) Create(t tier.Tier) problemgen.Question {
	f.n++
	return problemgen.Question{
		Text:    fmt.Sprintf("question %d", f.n),
		Answer:  1,
		Options: [problemgen.OptionCount]int{1, 2, 3, 4},
		Tier:    t,
	}
}

func testModel(skipWelcome bool) AppModel {
	cfg := session.DefaultConfig()
	cfg.Policy.StartTier = tier.University
	return newAppModel(Options{
		Session:     cfg,
		Questions:   &fixedSource{},
		Logger:      logging.Discard(),
		SkipWelcome: skipWelcome,
	})
}

// send delivers msg and feeds a resulting navigation message back in.
func send(t *testing.T, m AppModel, msg tea.Msg) AppModel {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(AppModel)
	if cmd == nil {
		return m
	}
	switch nav := cmd().(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		next, _ = m.Update(nav)
		m = next.(AppModel)
	}
	return m
}

func TestApp_WelcomeToHome(t *testing.T) {
	m := testModel(false)
	assert.Equal(t, "", m.router.Active().Title())

	m = send(t, m, tea.KeyPressMsg{Code: ' ', Text: " "})
	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok, "any key replaces the welcome screen with home")
	assert.Equal(t, 1, m.router.Depth())
}

func TestApp_StartClimbAndQuit(t *testing.T) {
	m := testModel(true)
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 32})

	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEnter})
	q, ok := m.router.Active().(*quiz.QuizScreen)
	require.True(t, ok, "enter on START CLIMB opens the quiz")
	assert.Equal(t, tier.University, q.Status().Tier)

	view := m.render()
	assert.Contains(t, view, "University")
	assert.Contains(t, view, "♥♥♥")
	assert.Contains(t, view, "question 1")

	// Esc goes to the quiz's confirm dialog instead of popping.
	m = send(t, m, tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Equal(t, 2, m.router.Depth())
	assert.True(t, strings.Contains(m.render(), "Abandon this round?"))

	m = send(t, m, tea.KeyPressMsg{Code: 'y', Text: "y"})
	assert.Equal(t, 1, m.router.Depth())
}

func TestApp_TooSmall(t *testing.T) {
	m := send(t, testModel(true), tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, m.render(), "Terminal too small")
}

func TestApp_CtrlC(t *testing.T) {
	m := testModel(true)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

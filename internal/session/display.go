package session

import (
	"github.com/abhisek/quizladder/internal/problemgen"
	"github.com/abhisek/quizladder/internal/progression"
)

// RoundInfo describes a round that has just started.
type RoundInfo struct {
	Round    int
	Progress progression.Progress
	MaxLives int
}

// Display receives session events. Calls happen synchronously on the
// goroutine that drives the Session.
type Display interface {
	OnRoundStarted(info RoundInfo)
	OnQuestion(q problemgen.Question)
	OnAnswerResolved(o Outcome)
	OnProgressChanged(p progression.Progress)
	OnGameOver(s Summary)
	OnCompleted(s Summary)
}

// NopDisplay ignores every event. Embed it to implement part of Display.
type NopDisplay struct{}

func (NopDisplay) OnRoundStarted(RoundInfo)               {}
func (NopDisplay) OnQuestion(problemgen.Question)         {}
func (NopDisplay) OnAnswerResolved(Outcome)               {}
func (NopDisplay) OnProgressChanged(progression.Progress) {}
func (NopDisplay) OnGameOver(Summary)                     {}
func (NopDisplay) OnCompleted(Summary)                    {}

// Displays fans events out to several displays in order.
type Displays []Display

func (ds Displays) OnRoundStarted(info RoundInfo) {
	for _, d := range ds {
		d.OnRoundStarted(info)
	}
}

func (ds Displays) OnQuestion(q problemgen.Question) {
	for _, d := range ds {
		d.OnQuestion(q)
	}
}

func (ds Displays) OnAnswerResolved(o Outcome) {
	for _, d := range ds {
		d.OnAnswerResolved(o)
	}
}

func (ds Displays) OnProgressChanged(p progression.Progress) {
	for _, d := range ds {
		d.OnProgressChanged(p)
	}
}

func (ds Displays) OnGameOver(s Summary) {
	for _, d := range ds {
		d.OnGameOver(s)
	}
}

func (ds Displays) OnCompleted(s Summary) {
	for _, d := range ds {
		d.OnCompleted(s)
	}
}

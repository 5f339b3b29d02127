package progression

import (
	"testing"

	"github.com/abhisek/quizladder/internal/tier"
)

func TestPromotionAfterRequiredStreak(t *testing.T) {
	s := New(DefaultPolicy())

	for i := 1; i <= 9; i++ {
		res := s.RecordCorrect()
		if res.Promoted || res.Completed {
			t.Fatalf("answer %d: unexpected transition %+v", i, res)
		}
		if s.Streak() != i {
			t.Fatalf("answer %d: streak = %d", i, s.Streak())
		}
	}
	if s.Tier() != tier.Elementary {
		t.Fatalf("tier = %s after 9 correct, want Elementary", s.Tier())
	}

	res := s.RecordCorrect()
	if !res.Promoted {
		t.Fatal("expected promotion on 10th correct answer")
	}
	if res.From != tier.Elementary || res.To != tier.JuniorHigh {
		t.Errorf("transition %s -> %s, want Elementary -> JuniorHigh", res.From, res.To)
	}
	if s.Tier() != tier.JuniorHigh || s.Streak() != 0 {
		t.Errorf("after promotion: tier=%s streak=%d", s.Tier(), s.Streak())
	}
	if got := res.Progress.Text(); got != "JuniorHigh: 0/8" {
		t.Errorf("progress text = %q", got)
	}
}

func TestCompletionAtLastTier(t *testing.T) {
	p := DefaultPolicy()
	p.StartTier = tier.PhD
	s := New(p)

	if res := s.RecordCorrect(); res.Completed || res.Promoted {
		t.Fatalf("first PhD answer: %+v", res)
	}
	res := s.RecordCorrect()
	if !res.Completed || res.Promoted {
		t.Fatalf("second PhD answer: %+v, want completed", res)
	}
	if !s.Completed() || s.Tier() != tier.PhD {
		t.Fatalf("completed=%v tier=%s", s.Completed(), s.Tier())
	}

	// Further answers change nothing.
	again := s.RecordCorrect()
	if again.Completed || again.Promoted || s.Streak() != 2 {
		t.Fatalf("after completion: %+v streak=%d", again, s.Streak())
	}
}

func TestFullClimb(t *testing.T) {
	s := New(DefaultPolicy())
	promotions := 0
	answers := 0
	for !s.Completed() {
		answers++
		if s.RecordCorrect().Promoted {
			promotions++
		}
		if answers > 100 {
			t.Fatal("never completed")
		}
	}
	if promotions != 4 {
		t.Errorf("promotions = %d, want 4", promotions)
	}
	if answers != 10+8+6+4+2 {
		t.Errorf("answers = %d, want 30", answers)
	}
}

func TestIncorrectKeepsStreakByDefault(t *testing.T) {
	s := New(DefaultPolicy())
	s.RecordCorrect()
	s.RecordCorrect()
	if s.RecordIncorrect() {
		t.Fatal("default policy should not reset")
	}
	if s.Streak() != 2 || s.Tier() != tier.Elementary {
		t.Fatalf("streak=%d tier=%s", s.Streak(), s.Tier())
	}
}

func TestIncorrectResetsStreakWhenConfigured(t *testing.T) {
	p := DefaultPolicy()
	p.ResetStreakOnWrong = true
	s := New(p)
	s.RecordCorrect()
	s.RecordCorrect()
	if !s.RecordIncorrect() {
		t.Fatal("expected reset")
	}
	if s.Streak() != 0 || s.Tier() != tier.Elementary {
		t.Fatalf("streak=%d tier=%s", s.Streak(), s.Tier())
	}
	if s.RecordIncorrect() {
		t.Error("reset reported with an empty streak")
	}
}

func TestMissingRequirementTreatedAsOne(t *testing.T) {
	s := New(Policy{RequiredStreak: map[tier.Tier]int{tier.Elementary: 2, tier.JuniorHigh: 0}})
	if got := s.Required(tier.JuniorHigh); got != 1 {
		t.Errorf("Required(JuniorHigh) = %d, want 1", got)
	}
	if got := s.Required(tier.University); got != 1 {
		t.Errorf("Required(University) = %d, want 1", got)
	}

	s.RecordCorrect()
	s.RecordCorrect()
	if s.Tier() != tier.JuniorHigh {
		t.Fatalf("tier = %s, want JuniorHigh", s.Tier())
	}
	if !s.RecordCorrect().Promoted {
		t.Fatal("a single correct answer should clear a tier with no requirement")
	}
}

func TestRestart(t *testing.T) {
	p := DefaultPolicy()
	p.StartTier = tier.University
	s := New(p)
	for !s.Completed() {
		s.RecordCorrect()
	}
	s.Restart()
	got := s.Snapshot()
	want := Progress{Tier: tier.University, Streak: 0, Required: 4}
	if got != want {
		t.Fatalf("after restart %+v, want %+v", got, want)
	}
}

func TestInvalidStartTier(t *testing.T) {
	s := New(Policy{StartTier: tier.Tier(17)})
	if s.Tier() != tier.Elementary {
		t.Fatalf("tier = %s, want Elementary", s.Tier())
	}
}

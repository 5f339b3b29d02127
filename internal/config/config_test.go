package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/quizladder/internal/riddles"
	"github.com/abhisek/quizladder/internal/tier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	sc := cfg.Session()
	assert.Equal(t, 3, sc.MaxLives)
	assert.Equal(t, time.Second, sc.AnswerDelay)
	assert.Equal(t, time.Second, sc.LevelUpDelay)
	assert.False(t, sc.Policy.ResetStreakOnWrong)
	assert.Equal(t, tier.Elementary, sc.Policy.StartTier)
	assert.Equal(t, map[tier.Tier]int{
		tier.Elementary: 10, tier.JuniorHigh: 8, tier.HighSchool: 6, tier.University: 4, tier.PhD: 2,
	}, sc.Policy.RequiredStreak)
	assert.True(t, cfg.Journal)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "quizladder.yaml", `
lives: 5
start_tier: high-school
required_streak:
  elementary: 2
  PhD: 1
reset_streak_on_wrong: true
delays:
  answer: 500ms
distractors:
  min_spread: 4
riddles_file: pools/riddles.yaml
llm:
  provider: gemini
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Lives)
	assert.Equal(t, tier.HighSchool, cfg.StartTier)
	assert.True(t, cfg.ResetStreakOnWrong)
	assert.Equal(t, 500*time.Millisecond, cfg.Delays.Answer)
	assert.Equal(t, time.Second, cfg.Delays.LevelUp, "unset delay keeps default")
	assert.Equal(t, 4, cfg.Distractors.MinSpread)
	assert.Equal(t, 5, cfg.Distractors.SpreadDivisor, "unset field keeps default")
	assert.Equal(t, filepath.Join(dir, "pools", "riddles.yaml"), cfg.RiddlesFile)
	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "gemini-flash", cfg.LLM.Gemini.Model)

	require.NoError(t, cfg.Validate())
	streaks := cfg.Session().Policy.RequiredStreak
	assert.Equal(t, 2, streaks[tier.Elementary])
	assert.Equal(t, 8, streaks[tier.JuniorHigh])
	assert.Equal(t, 1, streaks[tier.PhD])
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "unknown.yaml", "livez: 3\n"))
	assert.Error(t, err, "unknown keys are rejected")

	_, err = Load(writeFile(t, dir, "tier.yaml", "start_tier: kindergarten\n"))
	assert.ErrorIs(t, err, tier.ErrUnknownTier)

	cfg, err := Load(writeFile(t, dir, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, Default().Lives, cfg.Lives)
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "c.yaml", "lives: 4\nseed: 9\n")

	cfg, err := Resolve("", env(map[string]string{
		EnvConfig:                          path,
		"QUIZLADDER_SEED":                  "42",
		"QUIZLADDER_RESET_STREAK_ON_WRONG": "true",
		"QUIZLADDER_LLM_PROVIDER":          "mock",
	}))
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Lives)
	assert.Equal(t, uint64(42), cfg.Seed, "environment overrides the file")
	assert.True(t, cfg.ResetStreakOnWrong)
	assert.Equal(t, "mock", cfg.LLM.Provider)

	cfg, err = Resolve("", env(nil))
	require.NoError(t, err)
	assert.Equal(t, Default().Lives, cfg.Lives)
}

func TestApplyEnv_Invalid(t *testing.T) {
	for _, key := range []string{"QUIZLADDER_LIVES", "QUIZLADDER_SEED", "QUIZLADDER_RESET_STREAK_ON_WRONG"} {
		cfg := Default()
		err := cfg.ApplyEnv(env(map[string]string{key: "lots"}))
		assert.ErrorIs(t, err, ErrInvalid, key)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no lives", func(c *Config) { c.Lives = 0 }},
		{"bad min version", func(c *Config) { c.MinVersion = "1.2" }},
		{"bad start tier", func(c *Config) { c.StartTier = tier.Tier(9) }},
		{"unknown streak tier", func(c *Config) { c.RequiredStreak["grad-school"] = 3 }},
		{"zero streak", func(c *Config) { c.RequiredStreak["elementary"] = 0 }},
		{"negative delay", func(c *Config) { c.Delays.LevelUp = -time.Second }},
		{"narrow spread", func(c *Config) { c.Distractors.MinSpread = 2 }},
		{"duplicate riddles", func(c *Config) {
			c.Riddles = []riddles.Riddle{
				{Text: "2 + 2 = ?", Answer: 4},
				{Text: "2 + 2 = ?", Answer: 4},
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestSupports(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.Supports("v0.1.0"), "no minimum")

	cfg.MinVersion = "v0.4.0"
	assert.True(t, cfg.Supports("v0.4.0"))
	assert.True(t, cfg.Supports("v1.0.0"))
	assert.False(t, cfg.Supports("v0.3.9"))
	assert.True(t, cfg.Supports("(devel)"), "development builds are not checked")
}

func TestValidate_ReportsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Lives = 0
	cfg.Delays.Answer = -1
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lives")
	assert.Contains(t, err.Error(), "delays")
}

func TestProblems(t *testing.T) {
	cfg := Default()
	opts, err := cfg.Problems()
	require.NoError(t, err)
	assert.Empty(t, opts.Riddles, "empty means the built-in pool")

	dir := t.TempDir()
	pool := []riddles.Riddle{{Text: "3 × 3 = ?", Answer: 9, Expression: "3 × 3"}}
	path := filepath.Join(dir, "pool.yaml")
	require.NoError(t, riddles.WriteFile(path, pool))

	cfg.RiddlesFile = path
	opts, err = cfg.Problems()
	require.NoError(t, err)
	assert.Equal(t, pool, opts.Riddles)

	cfg.Riddles = []riddles.Riddle{{Text: "1 + 1 = ?", Answer: 2}}
	opts, err = cfg.Problems()
	require.NoError(t, err)
	assert.Len(t, opts.Riddles, 1)
	assert.Equal(t, 2, opts.Riddles[0].Answer, "inline riddles win over the file")

	cfg.Riddles = nil
	cfg.RiddlesFile = filepath.Join(dir, "nope.yaml")
	_, err = cfg.Problems()
	assert.Error(t, err)
}

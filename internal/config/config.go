// Package config resolves quizladder settings from defaults, a YAML file,
// the environment and command-line flags, in that order.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/abhisek/quizladder/internal/lives"
	"github.com/abhisek/quizladder/internal/llm"
	"github.com/abhisek/quizladder/internal/problemgen"
	"github.com/abhisek/quizladder/internal/progression"
	"github.com/abhisek/quizladder/internal/riddles"
	"github.com/abhisek/quizladder/internal/session"
	"github.com/abhisek/quizladder/internal/tier"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// EnvConfig names the variable holding the config file path.
const EnvConfig = "QUIZLADDER_CONFIG"

type Config struct {
	// MinVersion is the oldest quizladder release that understands this
	// file, e.g. "v0.4.0".
	MinVersion string `yaml:"min_version"`

	Lives int `yaml:"lives"`

	// Seed makes question generation reproducible. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`

	StartTier          tier.Tier      `yaml:"start_tier"`
	RequiredStreak     map[string]int `yaml:"required_streak"`
	ResetStreakOnWrong bool           `yaml:"reset_streak_on_wrong"`

	Delays Delays `yaml:"delays"`

	Distractors problemgen.DistractorConfig `yaml:"distractors"`

	// Riddles overrides the built-in PhD pool. RiddlesFile is used when
	// Riddles is empty; a relative path is resolved against the config file.
	Riddles     []riddles.Riddle `yaml:"riddles"`
	RiddlesFile string           `yaml:"riddles_file"`

	// Journal keeps an in-memory record of the round for the summary screen.
	Journal bool `yaml:"journal"`

	LLM llm.Config `yaml:"llm"`
}

type Delays struct {
	Answer  time.Duration `yaml:"answer"`
	LevelUp time.Duration `yaml:"level_up"`
}

func Default() Config {
	streaks := make(map[string]int)
	for t, n := range progression.DefaultRequiredStreak() {
		streaks[t.Key()] = n
	}
	return Config{
		Lives:          lives.DefaultMax,
		StartTier:      tier.Elementary,
		RequiredStreak: streaks,
		Delays: Delays{
			Answer:  session.DefaultAnswerDelay,
			LevelUp: session.DefaultLevelUpDelay,
		},
		Distractors: problemgen.DefaultDistractorConfig(),
		Journal:     true,
		LLM:         llm.DefaultConfig(),
	}
}

// Load reads the YAML file at path over the defaults. Unknown keys are an
// error. Tiers missing from required_streak keep their default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.RiddlesFile != "" && !filepath.IsAbs(cfg.RiddlesFile) {
		cfg.RiddlesFile = filepath.Join(filepath.Dir(path), cfg.RiddlesFile)
	}
	return cfg, nil
}

// Resolve loads the file named by path, or by QUIZLADDER_CONFIG when path
// is empty, and applies the environment. No file means defaults.
func Resolve(path string, getenv func(string) string) (Config, error) {
	if path == "" {
		path = getenv(EnvConfig)
	}
	cfg := Default()
	if path != "" {
		var err error
		if cfg, err = Load(path); err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with QUIZLADDER_LIVES, QUIZLADDER_SEED,
// QUIZLADDER_RESET_STREAK_ON_WRONG and the LLM variables.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("QUIZLADDER_LIVES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: QUIZLADDER_LIVES: %v", ErrInvalid, err)
		}
		c.Lives = n
	}
	if v := getenv("QUIZLADDER_SEED"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%w: QUIZLADDER_SEED: %v", ErrInvalid, err)
		}
		c.Seed = n
	}
	if v := getenv("QUIZLADDER_RESET_STREAK_ON_WRONG"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: QUIZLADDER_RESET_STREAK_ON_WRONG: %v", ErrInvalid, err)
		}
		c.ResetStreakOnWrong = b
	}
	c.LLM.ApplyEnv(getenv)
	return nil
}

// Validate reports every problem found, each wrapping ErrInvalid. The LLM
// section is checked only by commands that use it.
func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.MinVersion != "" && !semver.IsValid(c.MinVersion) {
		bad("min_version %q is not a semantic version", c.MinVersion)
	}
	if c.Lives < 1 {
		bad("lives must be at least 1, got %d", c.Lives)
	}
	if !c.StartTier.Valid() {
		bad("start_tier %d is out of range", int(c.StartTier))
	}
	if _, err := c.streaks(); err != nil {
		bad("%v", err)
	}
	if c.Delays.Answer < 0 || c.Delays.LevelUp < 0 {
		bad("delays must not be negative")
	}
	if err := c.Distractors.Validate(); err != nil {
		bad("distractors: %v", err)
	}
	if len(c.Riddles) > 0 {
		if err := riddles.CheckAll(c.Riddles); err != nil {
			bad("riddles: %v", err)
		}
	}
	return errors.Join(errs...)
}

// Supports reports whether a binary at version satisfies MinVersion.
// Development builds, whose version is not semver, always do.
func (c Config) Supports(version string) bool {
	if c.MinVersion == "" || !semver.IsValid(version) {
		return true
	}
	return semver.Compare(version, c.MinVersion) >= 0
}

func (c Config) streaks() (map[tier.Tier]int, error) {
	out := make(map[tier.Tier]int, len(c.RequiredStreak))
	for name, n := range c.RequiredStreak {
		t, err := tier.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("required_streak: %w", err)
		}
		if n < 1 {
			return nil, fmt.Errorf("required_streak.%s must be at least 1, got %d", t.Key(), n)
		}
		out[t] = n
	}
	return out, nil
}

// Session returns the round rules. Call Validate first.
func (c Config) Session() session.Config {
	streaks, _ := c.streaks()
	return session.Config{
		MaxLives: c.Lives,
		Policy: progression.Policy{
			RequiredStreak:     streaks,
			ResetStreakOnWrong: c.ResetStreakOnWrong,
			StartTier:          c.StartTier,
		},
		AnswerDelay:  c.Delays.Answer,
		LevelUpDelay: c.Delays.LevelUp,
	}
}

// Problems returns the question factory options, loading the riddle pool
// file if one is configured.
func (c Config) Problems() (problemgen.Options, error) {
	opts := problemgen.Options{Distractors: c.Distractors, Riddles: c.Riddles}
	if len(opts.Riddles) == 0 && c.RiddlesFile != "" {
		rs, err := riddles.LoadFile(c.RiddlesFile)
		if err != nil {
			return opts, fmt.Errorf("riddles_file: %w", err)
		}
		opts.Riddles = rs
	}
	return opts, nil
}

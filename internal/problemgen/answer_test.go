package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleQuestion() Question {
	return Question{Text: "6 × 7 = ?", Answer: 42, Options: [OptionCount]int{40, 45, 42, 39}, Kind: KindProduct}
}

func TestValueAndIsCorrect(t *testing.T) {
	q := sampleQuestion()
	for i, want := range []bool{false, false, true, false} {
		assert.Equal(t, want, q.IsCorrect(i), "index %d", i)
	}
	for _, i := range []int{NoAnswer, -7, OptionCount, 99} {
		_, ok := q.Value(i)
		assert.False(t, ok, "index %d", i)
		assert.False(t, q.IsCorrect(i), "index %d", i)
	}
	assert.Equal(t, 2, q.CorrectIndex())
}

func TestParseInput(t *testing.T) {
	q := sampleQuestion()
	tests := []struct {
		in   string
		want int
	}{
		{"42", 2},
		{"  42 ", 2},
		{"+42", 2},
		{"042", 2},
		{"39", 3},
		{"41", NoAnswer},
		{"", NoAnswer},
		{"forty-two", NoAnswer},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, q.ParseInput(tt.in), "input %q", tt.in)
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, sampleQuestion().Validate())

	dup := sampleQuestion()
	dup.Options = [OptionCount]int{42, 40, 40, 39}
	assert.Error(t, dup.Validate())

	missing := sampleQuestion()
	missing.Options = [OptionCount]int{1, 2, 3, 4}
	assert.Error(t, missing.Validate())
}

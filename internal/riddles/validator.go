package riddles

import (
	"fmt"
	"strings"
)

// Validator checks one authored riddle.
type Validator interface {
	Name() string
	Validate(r Riddle, accepted []Riddle) *ValidationError
}

// ValidationError describes why a riddle was rejected.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the validators run on every authored riddle.
func DefaultValidators() []Validator {
	return []Validator{&StructuralValidator{}, &ExpressionValidator{}, &DedupValidator{}}
}

// StructuralValidator checks lengths and the answer range.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(r Riddle, _ []Riddle) *ValidationError {
	text := strings.TrimSpace(r.Text)
	switch {
	case text == "":
		return &ValidationError{Validator: v.Name(), Message: "text is empty", Retryable: true}
	case len(text) > 200:
		return &ValidationError{Validator: v.Name(), Message: "text exceeds 200 characters", Retryable: true}
	case !strings.HasSuffix(text, "?"):
		return &ValidationError{Validator: v.Name(), Message: "text does not end with '?'", Retryable: true}
	case r.Answer < -999 || r.Answer > 9999:
		return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("answer %d out of range", r.Answer), Retryable: true}
	}
	return nil
}

// ExpressionValidator recomputes the riddle's expression.
type ExpressionValidator struct{}

func (v *ExpressionValidator) Name() string { return "expression" }

func (v *ExpressionValidator) Validate(r Riddle, _ []Riddle) *ValidationError {
	if strings.TrimSpace(r.Expression) == "" {
		return &ValidationError{Validator: v.Name(), Message: "expression is empty", Retryable: true}
	}
	if err := r.Check(); err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error(), Retryable: true}
	}
	return nil
}

// DedupValidator rejects riddles whose text is already accepted.
type DedupValidator struct{}

func (v *DedupValidator) Name() string { return "dedup" }

func (v *DedupValidator) Validate(r Riddle, accepted []Riddle) *ValidationError {
	key := normalizeText(r.Text)
	for _, a := range accepted {
		if normalizeText(a.Text) == key {
			return &ValidationError{Validator: v.Name(), Message: "duplicate of an existing riddle", Retryable: false}
		}
	}
	return nil
}

func normalizeText(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

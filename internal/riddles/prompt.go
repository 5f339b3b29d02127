package riddles

import (
	"fmt"
	"strings"
)

const systemPrompt = `You write the hardest round of an arithmetic quiz game.

Rules:
- Each riddle is one or two short lines and ends with "?".
- Each riddle has exactly one answer, a whole number between -999 and 9999.
- Topics: sequences, recurrences, permutations and combinations, function evaluation, number theory.
- The expression field restates the riddle as plain arithmetic (digits, + - * / ^ mod, parentheses) whose value is the answer. No variables.
- Do not repeat any riddle from the "already in the pool" list.`

func buildUserMessage(in AuthorInput, maxExisting int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d riddles.\n", in.Count)
	if in.Theme != "" {
		fmt.Fprintf(&b, "Theme: %s\n", in.Theme)
	}
	b.WriteString("\nAlready in the pool:\n")
	b.WriteString(listExisting(in.Existing, maxExisting))
	return b.String()
}

// listExisting formats the most recent riddles for the prompt.
func listExisting(rs []Riddle, max int) string {
	if len(rs) == 0 {
		return "None"
	}
	if max > 0 && len(rs) > max {
		rs = rs[len(rs)-max:]
	}
	var b strings.Builder
	for i, r := range rs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r.Text)
	}
	return strings.TrimRight(b.String(), "\n")
}

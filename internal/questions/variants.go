// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package questions

import "strings"

// genericFollowUps are offered after every question. They do not depend on
// the question text.
var genericFollowUps = [...]string{
	"Can you tell me more about that?",
	"How did that make you feel at the time?",
	"What happened next?",
}

// phraseSubstitutions rewrites a question into an alternative wording. The
// first occurrence of from is replaced with to.
var phraseSubstitutions = []struct{ from, to string }{
	{"Can you", "Could you"},
	{"Tell me about", "I'd love to hear about"},
	{"How did", "In what ways did"},
	{"What", "In your own words, what"},
	{"If you feel comfortable", "Only if you want to"},
}

const maxAlternatives = 2

// FollowUps returns a fresh copy of the generic follow-up prompts.
func FollowUps() []string {
	out := make([]string, len(genericFollowUps))
	copy(out, genericFollowUps[:])
	return out
}

// Alternatives returns up to two rephrasings of question produced by fixed
// phrase substitution. Rephrasings identical to the original or to an
// earlier alternative are dropped. The result is never nil.
func Alternatives(question string) []string {
	out := make([]string, 0, maxAlternatives)
	seen := map[string]bool{question: true}
	for _, sub := range phraseSubstitutions {
		if len(out) == maxAlternatives {
			break
		}
		if !strings.Contains(question, sub.from) {
			continue
		}
		alt := strings.Replace(question, sub.from, sub.to, 1)
		if seen[alt] {
			continue
		}
		seen[alt] = true
		out = append(out, alt)
	}
	return out
}

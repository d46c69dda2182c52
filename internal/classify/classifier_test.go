package classify

import "testing"

func TestClassifyGreeting(t *testing.T) {
	for _, utterance := range []string{"hello", "Hi there", "HEY you"} {
		if got := Classify(Rules(), utterance); got != Greeting {
			t.Fatalf("expected greeting for %q, got %s", utterance, got)
		}
	}
}

func TestClassifyGreetingWinsByPriority(t *testing.T) {
	// Greeting is the first rule, so it beats later groups even when both
	// match.
	if got := Classify(Rules(), "hello, tell me about your projects"); got != Greeting {
		t.Fatalf("expected greeting to win priority, got %s", got)
	}
}

func TestClassifySkillsQuestion(t *testing.T) {
	if got := Classify(Rules(), "What are Miguel's skills?"); got != Skills {
		t.Fatalf("expected skills, got %s", got)
	}
}

func TestClassifyFallbackOnNoMatch(t *testing.T) {
	if got := Classify(Rules(), "xyzzy plugh"); got != Fallback {
		t.Fatalf("expected fallback, got %s", got)
	}
}

func TestClassifyNaiveSubstring(t *testing.T) {
	// Matching is raw substring, not word-boundary: "hi" inside "which"
	// counts as a greeting. Locked on purpose.
	if got := Classify(Rules(), "which one?"); got != Greeting {
		t.Fatalf("expected greeting via substring match, got %s", got)
	}
}

func TestClassifyRuleOrder(t *testing.T) {
	cases := []struct {
		utterance string
		want      ResponseID
	}{
		{"tell me about your work", Experience},
		{"where did you study?", Education},
		{"any cool projects?", Projects},
		{"any hobby recommendations?", Interests},
		{"how do I contact you?", Contact},
		// skills precedes education in the table.
		{"I study tech", Skills},
		// "hobbies" does not contain the substring "hobby", so the plural
		// falls through. Part of the naive-substring contract.
		{"what are your hobbies?", Fallback},
	}

	for _, tc := range cases {
		if got := Classify(Rules(), tc.utterance); got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.utterance, got, tc.want)
		}
	}
}

func TestClassifyDeterministic(t *testing.T) {
	first := Classify(Rules(), "tell me about your projects")
	second := Classify(Rules(), "tell me about your projects")
	if first != second {
		t.Fatalf("classification not deterministic: %s vs %s", first, second)
	}
}

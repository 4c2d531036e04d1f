package speech

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "plain text unchanged",
			input:    "Hello there, traveler.",
			expected: "Hello there, traveler.",
		},
		{
			name:     "strips stage directions",
			input:    "*smiles softly* The village is just north of here.",
			expected: "The village is just north of here.",
		},
		{
			name:     "strips bracketed tags",
			input:    "[intent=greeting] Hi!",
			expected: "Hi!",
		},
		{
			name:     "unwraps double underscore bold",
			input:    "You __must__ hurry.",
			expected: "You must hurry.",
		},
		{
			name:     "unwraps underscore italics",
			input:    "It is _very_ far.",
			expected: "It is very far.",
		},
		{
			name:     "collapses whitespace",
			input:    "So   much \n\n space",
			expected: "So much space",
		},
		{
			name:     "empty input becomes pause",
			input:    "",
			expected: "...",
		},
		{
			name:     "pure markup becomes pause",
			input:    "*waves*",
			expected: "...",
		},
		{
			name:     "mixed markup",
			input:    "*giggles* [intent=farewell] Take _care_ out there!",
			expected: "Take care out there!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.input); got != tt.expected {
				t.Errorf("Clean(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestClean_Idempotent(t *testing.T) {
	inputs := []string{
		"*waves* Goodbye, friend!",
		"plain text",
		"[tag] **bold** _ital_",
	}

	for _, input := range inputs {
		once := Clean(input)
		if twice := Clean(once); twice != once {
			t.Errorf("Clean not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

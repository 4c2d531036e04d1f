// Package intent resolves a player utterance into one of a closed set of
// NPC-facing intents. Resolution is hybrid: a local embedding-similarity
// matcher handles the common case, an LLM classifier is consulted when the
// matcher is not confident, and a keyword override layer has the final word.
package intent

// Label is one member of the closed intent set. Other is the universal
// fallback and is always a valid result.
type Label string

const (
	Greeting     Label = "greeting"
	AskDirection Label = "ask_direction"
	Combat       Label = "combat"
	Trade        Label = "trade"
	Farewell     Label = "farewell"
	GatherFlower Label = "gather_flower"
	Other        Label = "other"
)

// Labels is the closed intent set, in declaration order.
var Labels = []Label{Greeting, AskDirection, Combat, Trade, Farewell, GatherFlower, Other}

// Valid reports whether l is a member of the closed intent set.
func (l Label) Valid() bool {
	for _, known := range Labels {
		if l == known {
			return true
		}
	}
	return false
}

// Normalize maps an arbitrary string onto the closed intent set,
// forcing anything unrecognized to Other.
func Normalize(s string) Label {
	if l := Label(s); l.Valid() {
		return l
	}
	return Other
}

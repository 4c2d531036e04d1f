package intent

// Category pairs an intent label with its hand-authored example
// utterances, used as similarity anchors by the Matcher.
type Category struct {
	Label    Label
	Examples []string
}

// Exemplars is the exemplar corpus. The slice order is the iteration
// order used by the Matcher, so ties in mean similarity resolve to the
// earliest category listed here. Populated once; never mutated at runtime.
//
// GatherFlower has no exemplars: it is only ever produced by the keyword
// override layer or the LLM classifier.
var Exemplars = []Category{
	{Label: Greeting, Examples: []string{
		"hello", "hi", "hey there", "how are you",
	}},
	{Label: AskDirection, Examples: []string{
		"where is the village", "how do I get to the village", "show me the way",
		"which way to go", "guide me", "how to reach the town", "where is the town",
	}},
	{Label: Combat, Examples: []string{
		"attack", "fight", "kill the wolf", "start combat", "go fight", "battle",
	}},
	{Label: Trade, Examples: []string{
		"open shop", "show me your wares", "buy items", "sell goods", "trade",
	}},
	{Label: Farewell, Examples: []string{
		"goodbye", "bye", "see you", "take care", "farewell",
	}},
}

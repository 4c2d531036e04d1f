package intent

import "strings"

// overrideRule maps literal vocabulary to an intent. Rules are evaluated
// in slice order and the first match wins, regardless of what the
// classifier produced.
type overrideRule struct {
	label    Label
	keywords []string
}

// overrideRules is the fixed priority order: direction, combat, trade,
// farewell, gathering. Hand-tuned vocabulary carried over from the game;
// treat as configuration.
var overrideRules = []overrideRule{
	{label: AskDirection, keywords: []string{"village", "town", "where"}},
	{label: Combat, keywords: []string{"attack", "fight", "wolf", "combat"}},
	{label: Trade, keywords: []string{"shop", "buy", "sell"}},
	{label: Farewell, keywords: []string{"bye", "goodbye"}},
	{label: GatherFlower, keywords: []string{"flower", "pick", "gather", "bloom", "petal"}},
}

// ApplyOverrides corrects a resolved intent using literal substring
// matches against the lowercased text. If no keyword matches, the
// resolved intent passes through unchanged. Pure and idempotent; this
// layer runs last and is the final authority on the emitted intent.
func ApplyOverrides(text string, resolved Label) Label {
	lower := strings.ToLower(text)
	for _, rule := range overrideRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.label
			}
		}
	}
	return resolved
}

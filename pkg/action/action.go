// Package action maps resolved intents to the discrete game actions the
// client executes. The {action, params} vocabulary is the engine's binding
// contract with the game: new actions may be added, existing ones must
// keep their meaning.
package action

import "github.com/jwebster45206/npc-dialogue/pkg/intent"

// Type is the action token interpreted by the game client.
type Type string

const (
	None         Type = "NONE"
	Navigate     Type = "NAVIGATE"
	StartCombat  Type = "START_COMBAT"
	OpenShop     Type = "OPEN_SHOP"
	Anim         Type = "ANIM"
	GatherFlower Type = "GATHER_FLOWER"
)

// Spec is one game action descriptor: an action token plus its fixed
// string parameters.
type Spec struct {
	Action Type              `json:"action"`
	Params map[string]string `json:"params"`
}

// Map resolves an intent to its game action. It is total: every member
// of the closed intent set yields a defined result, and anything
// unrecognized behaves like intent.Other. Each call returns a fresh
// params map, so callers may mutate the result freely.
func Map(label intent.Label) Spec {
	switch label {
	case intent.AskDirection:
		return Spec{Action: Navigate, Params: map[string]string{
			"target":       "village",
			"target_label": "Village",
		}}
	case intent.Combat:
		return Spec{Action: StartCombat, Params: map[string]string{}}
	case intent.Trade:
		return Spec{Action: OpenShop, Params: map[string]string{
			"shop_id": "default_shop",
		}}
	case intent.Farewell:
		return Spec{Action: Anim, Params: map[string]string{
			"name": "wave",
		}}
	case intent.GatherFlower:
		return Spec{Action: GatherFlower, Params: map[string]string{
			"target":       "flower_field",
			"target_label": "Wildflowers",
		}}
	default:
		// greeting, other, and anything unmapped
		return Spec{Action: None, Params: map[string]string{}}
	}
}

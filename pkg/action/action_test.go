package action

import (
	"testing"

	"github.com/jwebster45206/npc-dialogue/pkg/intent"
	"github.com/stretchr/testify/assert"
)

func TestMap(t *testing.T) {
	tests := []struct {
		name           string
		label          intent.Label
		expectedAction Type
		expectedParams map[string]string
	}{
		{
			name:           "ask_direction navigates to the village",
			label:          intent.AskDirection,
			expectedAction: Navigate,
			expectedParams: map[string]string{"target": "village", "target_label": "Village"},
		},
		{
			name:           "combat starts combat with no params",
			label:          intent.Combat,
			expectedAction: StartCombat,
			expectedParams: map[string]string{},
		},
		{
			name:           "trade opens the default shop",
			label:          intent.Trade,
			expectedAction: OpenShop,
			expectedParams: map[string]string{"shop_id": "default_shop"},
		},
		{
			name:           "farewell plays the wave animation",
			label:          intent.Farewell,
			expectedAction: Anim,
			expectedParams: map[string]string{"name": "wave"},
		},
		{
			name:           "gather_flower targets the flower field",
			label:          intent.GatherFlower,
			expectedAction: GatherFlower,
			expectedParams: map[string]string{"target": "flower_field", "target_label": "Wildflowers"},
		},
		{
			name:           "greeting maps to NONE",
			label:          intent.Greeting,
			expectedAction: None,
			expectedParams: map[string]string{},
		},
		{
			name:           "other maps to NONE",
			label:          intent.Other,
			expectedAction: None,
			expectedParams: map[string]string{},
		},
		{
			name:           "garbage label maps to NONE",
			label:          intent.Label("definitely_not_an_intent"),
			expectedAction: None,
			expectedParams: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := Map(tt.label)
			assert.Equal(t, tt.expectedAction, spec.Action)
			assert.Equal(t, tt.expectedParams, spec.Params)
		})
	}
}

func TestMap_TotalOverClosedSet(t *testing.T) {
	for _, label := range intent.Labels {
		spec := Map(label)
		assert.NotEmpty(t, spec.Action, "label %q must map to an action", label)
		assert.NotNil(t, spec.Params, "label %q must map to non-nil params", label)
	}
}

func TestMap_ReturnsFreshParams(t *testing.T) {
	first := Map(intent.AskDirection)
	first.Params["target"] = "mutated"

	second := Map(intent.AskDirection)
	assert.Equal(t, "village", second.Params["target"],
		"mutating one result must not affect later calls")
}

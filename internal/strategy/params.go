package strategy

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Params holds the heuristic weights steering the robert strategy. The
// three base weights rescale whole move families against each other;
// everything else shapes the score inside one family.
type Params struct {
	PlayBase    float64
	DiscardBase float64
	HintBase    float64

	PlayProbabilityExponent  int
	PlayPlayabilityWeight    float64
	PlayMistakeWeight        float64
	PlayFiveBonus            float64
	PlayMakePlayable         float64
	PlayMakePlayableKnown    float64
	PlayMakeDiscardable      float64
	PlayMakeDiscardableKnown float64
	PlaySureBonus            float64
	PlayFocusedBonus         float64

	DiscardProbabilityExponent int
	DiscardProbabilityWeight   float64
	DiscardMistakeWeight       float64
	DiscardNeedHintsWeight     float64

	HintFocusedBonus    float64
	HintInfoExponent    int
	HintInfoWeight      float64
	HintMakePlayable    float64
	HintMakeDiscardable float64

	CriticalLossWeight float64
}

// DefaultParams returns the tuned weight set
func DefaultParams() Params {
	return Params{
		PlayBase:    1,
		DiscardBase: 1,
		HintBase:    1,

		PlayProbabilityExponent:  3,
		PlayPlayabilityWeight:    20,
		PlayMistakeWeight:        100,
		PlayFiveBonus:            1000,
		PlayMakePlayable:         50,
		PlayMakePlayableKnown:    40,
		PlayMakeDiscardable:      2,
		PlayMakeDiscardableKnown: 2,
		PlaySureBonus:            100,
		PlayFocusedBonus:         100,

		DiscardProbabilityExponent: 2,
		DiscardProbabilityWeight:   60,
		DiscardMistakeWeight:       80,
		DiscardNeedHintsWeight:     25,

		HintFocusedBonus:    50,
		HintInfoExponent:    1,
		HintInfoWeight:      1.5,
		HintMakePlayable:    100,
		HintMakeDiscardable: 20,

		CriticalLossWeight: 5000,
	}
}

// paramsFile mirrors Params with pointer attributes so a weights file may
// override any subset and leave the rest at their defaults.
type paramsFile struct {
	PlayBase    *float64 `hcl:"play_base,optional"`
	DiscardBase *float64 `hcl:"discard_base,optional"`
	HintBase    *float64 `hcl:"hint_base,optional"`

	PlayProbabilityExponent  *int     `hcl:"play_probability_exponent,optional"`
	PlayPlayabilityWeight    *float64 `hcl:"play_playability_weight,optional"`
	PlayMistakeWeight        *float64 `hcl:"play_mistake_weight,optional"`
	PlayFiveBonus            *float64 `hcl:"play_five_bonus,optional"`
	PlayMakePlayable         *float64 `hcl:"play_make_playable,optional"`
	PlayMakePlayableKnown    *float64 `hcl:"play_make_playable_known,optional"`
	PlayMakeDiscardable      *float64 `hcl:"play_make_discardable,optional"`
	PlayMakeDiscardableKnown *float64 `hcl:"play_make_discardable_known,optional"`
	PlaySureBonus            *float64 `hcl:"play_sure_bonus,optional"`
	PlayFocusedBonus         *float64 `hcl:"play_focused_bonus,optional"`

	DiscardProbabilityExponent *int     `hcl:"discard_probability_exponent,optional"`
	DiscardProbabilityWeight   *float64 `hcl:"discard_probability_weight,optional"`
	DiscardMistakeWeight       *float64 `hcl:"discard_mistake_weight,optional"`
	DiscardNeedHintsWeight     *float64 `hcl:"discard_need_hints_weight,optional"`

	HintFocusedBonus    *float64 `hcl:"hint_focused_bonus,optional"`
	HintInfoExponent    *int     `hcl:"hint_info_exponent,optional"`
	HintInfoWeight      *float64 `hcl:"hint_info_weight,optional"`
	HintMakePlayable    *float64 `hcl:"hint_make_playable,optional"`
	HintMakeDiscardable *float64 `hcl:"hint_make_discardable,optional"`

	CriticalLossWeight *float64 `hcl:"critical_loss_weight,optional"`
}

// LoadParams reads a weights file and overlays it on the defaults. A
// missing file is not an error; the defaults are returned unchanged.
func LoadParams(path string) (Params, error) {
	params := DefaultParams()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return params, nil
	}
	if err != nil {
		return params, fmt.Errorf("reading weights file: %w", err)
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(data, path)
	if diags.HasErrors() {
		return params, fmt.Errorf("parsing weights file: %w", diags)
	}

	var overrides paramsFile
	if diags := gohcl.DecodeBody(file.Body, nil, &overrides); diags.HasErrors() {
		return params, fmt.Errorf("decoding weights file: %w", diags)
	}

	overlayFloat := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	overlayInt := func(dst *int, src *int) {
		if src != nil {
			*dst = *src
		}
	}

	overlayFloat(&params.PlayBase, overrides.PlayBase)
	overlayFloat(&params.DiscardBase, overrides.DiscardBase)
	overlayFloat(&params.HintBase, overrides.HintBase)

	overlayInt(&params.PlayProbabilityExponent, overrides.PlayProbabilityExponent)
	overlayFloat(&params.PlayPlayabilityWeight, overrides.PlayPlayabilityWeight)
	overlayFloat(&params.PlayMistakeWeight, overrides.PlayMistakeWeight)
	overlayFloat(&params.PlayFiveBonus, overrides.PlayFiveBonus)
	overlayFloat(&params.PlayMakePlayable, overrides.PlayMakePlayable)
	overlayFloat(&params.PlayMakePlayableKnown, overrides.PlayMakePlayableKnown)
	overlayFloat(&params.PlayMakeDiscardable, overrides.PlayMakeDiscardable)
	overlayFloat(&params.PlayMakeDiscardableKnown, overrides.PlayMakeDiscardableKnown)
	overlayFloat(&params.PlaySureBonus, overrides.PlaySureBonus)
	overlayFloat(&params.PlayFocusedBonus, overrides.PlayFocusedBonus)

	overlayInt(&params.DiscardProbabilityExponent, overrides.DiscardProbabilityExponent)
	overlayFloat(&params.DiscardProbabilityWeight, overrides.DiscardProbabilityWeight)
	overlayFloat(&params.DiscardMistakeWeight, overrides.DiscardMistakeWeight)
	overlayFloat(&params.DiscardNeedHintsWeight, overrides.DiscardNeedHintsWeight)

	overlayFloat(&params.HintFocusedBonus, overrides.HintFocusedBonus)
	overlayInt(&params.HintInfoExponent, overrides.HintInfoExponent)
	overlayFloat(&params.HintInfoWeight, overrides.HintInfoWeight)
	overlayFloat(&params.HintMakePlayable, overrides.HintMakePlayable)
	overlayFloat(&params.HintMakeDiscardable, overrides.HintMakeDiscardable)

	overlayFloat(&params.CriticalLossWeight, overrides.CriticalLossWeight)

	return params, nil
}

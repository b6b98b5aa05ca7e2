// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package voicepack

import (
	"encoding/json"
	"io/ioutil"

	"github.com/goki/ki/kit"
)

// IntonationMode is a bitmask of the intonation features a synthesis
// run enables, decoded with github.com/goki/ki/bitflag the way the
// teacher's Control.SetIntonation does.
type IntonationMode int64

const (
	IntonationMicro IntonationMode = 1 << iota
	IntonationMacro
	IntonationSmooth
	IntonationDrift
	IntonationRandom
)

//go:generate stringer -type=IntonationMode

// KitIntonationMode registers IntonationMode the way the teacher
// registers every small enum, even its own bit-flag-shaped Intonation
// type: through kit.NotBitFlag, with github.com/goki/ki/bitflag doing
// the actual mask decoding at use sites (see synth.applyIntonationMode).
var KitIntonationMode = kit.Enums.AddEnum(5, kit.NotBitFlag, nil)

// ModelConfig is the voice-wide synthesis configuration: control rate,
// global tempo, mean pitch, drift parameters, and which intonation
// features are active.
type ModelConfig struct {
	ControlRate        float64        `json:"controlRate"`
	GlobalTempo        float64        `json:"globalTempo"`
	PitchMean          float64        `json:"pitchMean"`
	DriftDeviation     float64        `json:"driftDeviation"`
	DriftLowpassCutoff float64        `json:"driftLowpassCutoff"`
	Intonation         IntonationMode `json:"intonation"`
	PitchParameter     string         `json:"pitchParameter"`
}

// RhythmConfig overrides rhythm.DefaultConfig's constants; zero value
// fields fall back to the default when Merge is used.
type RhythmConfig struct {
	MarkedA     float64 `json:"markedA"`
	MarkedB     float64 `json:"markedB"`
	MarkedDiv   float64 `json:"markedDiv"`
	UnmarkedA   float64 `json:"unmarkedA"`
	UnmarkedB   float64 `json:"unmarkedB"`
	UnmarkedDiv float64 `json:"unmarkedDiv"`
	MinTempo    float64 `json:"minTempo"`
	MaxTempo    float64 `json:"maxTempo"`
}

// IntonationParamsDoc is the JSON shape of one intonation.Params row.
type IntonationParamsDoc struct {
	Pretonic             float64 `json:"pretonic"`
	PretonicPerturbation float64 `json:"pretonicPerturbation"`
	Tonic                float64 `json:"tonic"`
	TonicDelta           float64 `json:"tonicDelta"`
	TonicPerturbation    float64 `json:"tonicPerturbation"`
}

// ToneGroupParameters holds the candidate parameter rows for each of
// the four tone-group table slots (statement/exclamation, question,
// continuation, semicolon), one JSON document per
// tone_group_param-*.txt of the reference engine's voice packs.
type ToneGroupParameters struct {
	Statement    []IntonationParamsDoc `json:"statement"`
	Question     []IntonationParamsDoc `json:"question"`
	Continuation []IntonationParamsDoc `json:"continuation"`
	Semicolon    []IntonationParamsDoc `json:"semicolon"`
}

// IntonationConfig selects fixed-vs-table parameters and curve fitting
// mode, mirroring intonation_rhythm/intonation.config.
type IntonationConfig struct {
	UseFixedParameters bool                 `json:"useFixedParameters"`
	Fixed              *IntonationParamsDoc `json:"fixed,omitempty"`
	UseRandom          bool                 `json:"useRandom"`
	Smooth             bool                 `json:"smooth"`
}

// LoadJSON reads path and unmarshals it into v, the way
// trmcontrolv2.TrmConfig.OpenJSON does.
func LoadJSON(path string, v interface{}) error {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}

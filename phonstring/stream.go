// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package phonstring

import "github.com/mym-br/gama-tts-sub001/model"

// PostureEntry is one posture's position in the stream plus the
// per-posture markup that survived parsing: its own tempo, the rule
// tempo to apply for the rule it starts, and whether a syllable
// boundary falls on it.
type PostureEntry struct {
	Posture   *model.Posture
	Tempo     float64
	RuleTempo float64
	Syllable  bool
}

// FootEntry is a contiguous run of postures (by index into
// Stream.Postures, inclusive) sharing one rhythmic beat, with its own
// tempo and marked/last flags.
type FootEntry struct {
	Start, End int
	Tempo      float64
	Marked     bool
	Last       bool
}

// ToneGroupEntry is a contiguous run of feet (by index into
// Stream.Feet, inclusive) sharing one intonation contour.
type ToneGroupEntry struct {
	StartFoot, EndFoot int
	Type               ToneGroupType
}

// Stream is the parsed, but not yet rule-applied, result of a phonetic
// string: a flat posture sequence plus the foot and tone-group
// bookkeeping records layered over it.
type Stream struct {
	Postures   []PostureEntry
	Feet       []FootEntry
	ToneGroups []ToneGroupEntry
}

// streamBuilder incrementally accumulates a Stream while the parser
// scans the input, keeping the currently-open foot and tone group
// indices open until a boundary token closes them.
type streamBuilder struct {
	stream Stream
}

func newStreamBuilder() *streamBuilder {
	b := &streamBuilder{}
	b.openToneGroup()
	b.openFoot(false)
	return b
}

func (b *streamBuilder) openFoot(marked bool) {
	b.stream.Feet = append(b.stream.Feet, FootEntry{
		Start:  len(b.stream.Postures),
		End:    len(b.stream.Postures),
		Tempo:  1.0,
		Marked: marked,
	})
}

func (b *streamBuilder) openToneGroup() {
	b.stream.ToneGroups = append(b.stream.ToneGroups, ToneGroupEntry{
		StartFoot: len(b.stream.Feet),
		EndFoot:   len(b.stream.Feet),
		Type:      ToneGroupStatement,
	})
}

func (b *streamBuilder) currentFoot() *FootEntry {
	return &b.stream.Feet[len(b.stream.Feet)-1]
}

func (b *streamBuilder) currentToneGroup() *ToneGroupEntry {
	return &b.stream.ToneGroups[len(b.stream.ToneGroups)-1]
}

func (b *streamBuilder) appendPosture(p *model.Posture, tempo, ruleTempo float64) {
	b.stream.Postures = append(b.stream.Postures, PostureEntry{
		Posture:   p,
		Tempo:     tempo,
		RuleTempo: ruleTempo,
	})
	b.currentFoot().End = len(b.stream.Postures) - 1
}

func (b *streamBuilder) markLastSyllable() {
	if n := len(b.stream.Postures); n > 0 {
		b.stream.Postures[n-1].Syllable = true
	}
}

func (b *streamBuilder) replaceLastPosture(p *model.Posture) {
	if n := len(b.stream.Postures); n > 0 {
		b.stream.Postures[n-1].Posture = p
	}
}

// newFoot opens a fresh foot starting at the next posture and extends
// the current tone group to it. The previous foot keeps the End set by
// its last appended posture; a foot that received no posture is kept
// as it is, not removed.
func (b *streamBuilder) newFoot(marked bool) {
	b.openFoot(marked)
	b.currentToneGroup().EndFoot = len(b.stream.Feet) - 1
}

func (b *streamBuilder) setFootLast() {
	b.currentFoot().Last = true
}

func (b *streamBuilder) setFootTempo(tempo float64) {
	b.currentFoot().Tempo = tempo
}

func (b *streamBuilder) newToneGroup() {
	b.openToneGroup()
	b.openFoot(false)
}

func (b *streamBuilder) setToneGroupType(t ToneGroupType) {
	b.currentToneGroup().Type = t
}

func (b *streamBuilder) build() *Stream {
	return &b.stream
}

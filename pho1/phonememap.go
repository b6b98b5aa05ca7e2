// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

// Package pho1 parses the alternate Pho1 phonetic input format: lines
// of "phoneme duration [position frequency]*", remapped through a
// phoneme table that may split one phoneme into two before being
// turned into a posture stream with per-posture intonation points.
package pho1

import (
	"bufio"
	"io"
	"strings"

	"github.com/mym-br/gama-tts-sub001/ttserr"
)

const phonemeSeparator = '_'

// PhonemeMap renames phonemes read from a Pho1 line, optionally
// splitting one phoneme into a sequence of two (e.g. a diphthong split
// into its onset and offset postures).
type PhonemeMap struct {
	entries map[string]string
}

// LoadPhonemeMap reads "oldName newName" or "oldName newName1_newName2"
// lines, one per phoneme needing remapping. Absent entries pass
// through unchanged.
func LoadPhonemeMap(r io.Reader) (*PhonemeMap, error) {
	pm := &PhonemeMap{entries: make(map[string]string)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == ';' {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, ttserr.NewParseError("pho1-phoneme-map", line, 0, "expected exactly two fields")
		}
		pm.entries[fields[0]] = fields[1]
	}
	if err := scanner.Err(); err != nil {
		return nil, ttserr.NewConfigError("pho1-phoneme-map", "read error", err)
	}
	return pm, nil
}

// lookup returns the mapped replacement for name, which may itself
// encode a two-phoneme split joined by '_', and whether a mapping
// exists at all.
func (pm *PhonemeMap) lookup(name string) (string, bool) {
	v, ok := pm.entries[name]
	return v, ok
}

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package pho1

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/mym-br/gama-tts-sub001/ttserr"
)

const commentChar = ';'

// IntonPoint is one intonation marker attached to an Entry: position is
// a percent (0-100) of the phoneme's own duration, frequency is in
// hertz.
type IntonPoint struct {
	Position  float64
	Frequency float64
}

// Entry is one line of Pho1 input: a phoneme name, its duration in
// milliseconds, and zero or more intonation points.
type Entry struct {
	Phoneme  string
	Duration float64
	Points   []IntonPoint
}

// Parse reads Pho1-format text into an ordered list of entries.
// Blank lines and lines starting with ';' are ignored.
func Parse(text string) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(strings.NewReader(text))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || line[0] == commentChar {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, ttserr.NewParseError("pho1", line, 0, "missing phoneme or duration")
		}
		duration, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, ttserr.NewParseError("pho1", line, 0, "invalid duration")
		}
		rest := fields[2:]
		if len(rest)%2 != 0 {
			return nil, ttserr.NewParseError("pho1", line, 0, "intonation points must come in position/frequency pairs")
		}
		entry := Entry{Phoneme: fields[0], Duration: duration}
		for i := 0; i < len(rest); i += 2 {
			pos, err := strconv.ParseFloat(rest[i], 64)
			if err != nil {
				return nil, ttserr.NewParseError("pho1", line, 0, "invalid intonation position")
			}
			freq, err := strconv.ParseFloat(rest[i+1], 64)
			if err != nil {
				return nil, ttserr.NewParseError("pho1", line, 0, "invalid intonation frequency")
			}
			entry.Points = append(entry.Points, IntonPoint{Position: pos, Frequency: freq})
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, ttserr.NewConfigError("pho1", "read error", err)
	}
	return entries, nil
}

// ReplacePhonemes applies pm to entries, splitting any entry whose
// mapped name encodes two phonemes into two entries with halved
// duration, redistributing intonation points to whichever half their
// position (0-100) falls in and rescaling the position into that
// half's own 0-100 range.
func ReplacePhonemes(entries []Entry, pm *PhonemeMap) []Entry {
	if pm == nil {
		return entries
	}
	result := make([]Entry, 0, len(entries))
	for _, e := range entries {
		mapped, ok := pm.lookup(e.Phoneme)
		if !ok {
			result = append(result, e)
			continue
		}
		sepIdx := strings.IndexByte(mapped, phonemeSeparator)
		if sepIdx < 0 {
			e.Phoneme = mapped
			result = append(result, e)
			continue
		}
		first := mapped[:sepIdx]
		second := mapped[sepIdx+1:]
		halfDuration := e.Duration * 0.5

		var firstPoints, secondPoints []IntonPoint
		for _, p := range e.Points {
			if p.Position <= 50.0 {
				firstPoints = append(firstPoints, IntonPoint{Position: p.Position * 2.0, Frequency: p.Frequency})
			} else {
				secondPoints = append(secondPoints, IntonPoint{Position: (p.Position - 50.0) * 2.0, Frequency: p.Frequency})
			}
		}
		result = append(result, Entry{Phoneme: first, Duration: halfDuration, Points: firstPoints})
		result = append(result, Entry{Phoneme: second, Duration: halfDuration, Points: secondPoints})
	}
	return result
}

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package phonstring

import (
	"strconv"
	"unicode"

	"github.com/mym-br/gama-tts-sub001/model"
	"github.com/mym-br/gama-tts-sub001/ttserr"
)

const (
	startEndPostureName = "^"
	trailingPostureName = "#"
)

type scanner struct {
	src []byte
	pos int
}

func (s *scanner) finished() bool { return s.pos >= len(s.src) }

func (s *scanner) skipSeparators() {
	for !s.finished() && (unicode.IsSpace(rune(s.src[s.pos])) || s.src[s.pos] == '_') {
		s.pos++
	}
}

func (s *scanner) getNumber() string {
	start := s.pos
	for !s.finished() && (isDigit(s.src[s.pos]) || s.src[s.pos] == '.') {
		s.pos++
	}
	return string(s.src[start:s.pos])
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isPostureChar(c byte) bool {
	return unicode.IsLetter(rune(c)) || c == '^' || c == '#'
}

// Parse scans a marked phonetic string against m, applying rewriter
// (which may be nil) on every posture boundary, and returns the
// resulting Stream.
func Parse(m *model.Model, rewriter *Rewriter, input string) (*Stream, error) {
	startEndID, ok := m.FindPosture(startEndPostureName)
	if !ok {
		return nil, ttserr.NewLookupError("posture", startEndPostureName)
	}
	trailingID, ok := m.FindPosture(trailingPostureName)
	if !ok {
		return nil, ttserr.NewLookupError("posture", trailingPostureName)
	}
	startEnd := m.Posture(startEndID)
	trailing := m.Posture(trailingID)

	b := newStreamBuilder()
	b.appendPosture(startEnd, 1.0, 1.0)

	s := &scanner{src: []byte(input)}
	var rwState RewriterState
	rwState.lastPosture = startEnd

	lastFoot := false
	markedFoot := false
	wordMarker := false
	ruleTempo := 1.0
	postureTempo := 1.0

	for !s.finished() {
		s.skipSeparators()
		if s.finished() {
			break
		}
		c := s.src[s.pos]
		switch {
		case c == '/':
			s.pos++
			if s.finished() {
				return nil, ttserr.NewParseError("phonetic-string", input, s.pos, "truncated escape sequence")
			}
			ctrl := s.src[s.pos]
			switch ctrl {
			case '0':
				s.pos++
				b.setToneGroupType(ToneGroupStatement)
			case '1':
				s.pos++
				b.setToneGroupType(ToneGroupExclamation)
			case '2':
				s.pos++
				b.setToneGroupType(ToneGroupQuestion)
			case '3':
				s.pos++
				b.setToneGroupType(ToneGroupContinuation)
			case '4':
				s.pos++
				b.setToneGroupType(ToneGroupSemicolon)
			case '_':
				s.pos++
				b.newFoot(false)
				if lastFoot {
					b.setFootLast()
				}
				lastFoot = false
				markedFoot = false
			case '*':
				s.pos++
				b.newFoot(true)
				if lastFoot {
					b.setFootLast()
				}
				lastFoot = false
				markedFoot = true
			case '/':
				s.pos++
				b.newToneGroup()
			case 'c':
				s.pos++
			case 'l':
				s.pos++
				lastFoot = true
			case 'w':
				s.pos++
				wordMarker = true
			case '"':
				s.pos++
			case 'f':
				s.pos++
				s.skipSeparators()
				num := s.getNumber()
				if num == "" {
					return nil, ttserr.NewParseError("phonetic-string", input, s.pos, "missing foot tempo value")
				}
				v, err := strconv.ParseFloat(num, 64)
				if err != nil {
					return nil, ttserr.NewParseError("phonetic-string", input, s.pos, "invalid foot tempo value")
				}
				b.setFootTempo(v)
			case 'r':
				s.pos++
				s.skipSeparators()
				num := s.getNumber()
				if num == "" {
					return nil, ttserr.NewParseError("phonetic-string", input, s.pos, "missing rule tempo value")
				}
				v, err := strconv.ParseFloat(num, 64)
				if err != nil {
					return nil, ttserr.NewParseError("phonetic-string", input, s.pos, "invalid rule tempo value")
				}
				ruleTempo = v
			default:
				return nil, ttserr.NewParseError("phonetic-string", input, s.pos, "unknown escape sequence")
			}

		case c == '.':
			b.markLastSyllable()
			s.pos++

		case isDigit(c):
			num := s.getNumber()
			v, err := strconv.ParseFloat(num, 64)
			if err != nil {
				return nil, ttserr.NewParseError("phonetic-string", input, s.pos, "invalid posture tempo value")
			}
			postureTempo = v

		default:
			start := s.pos
			for !s.finished() && isPostureChar(s.src[s.pos]) {
				s.pos++
			}
			if s.pos == start {
				return nil, ttserr.NewParseError("phonetic-string", input, start, "missing posture")
			}
			name := string(s.src[start:s.pos])
			if markedFoot {
				name += "'"
			}
			postureID, ok := m.FindPosture(name)
			if !ok {
				return nil, ttserr.NewLookupError("posture", name)
			}
			posture := m.Posture(postureID)

			action, replacement := rewriter.applyOrNone(posture, wordMarker, &rwState)
			switch action {
			case RewriteInsert:
				b.appendPosture(replacement, 1.0, 1.0)
			case RewriteInsertIfWordStart:
				if wordMarker {
					b.appendPosture(replacement, 1.0, 1.0)
				}
			case RewriteReplaceFirst:
				b.replaceLastPosture(replacement)
			}
			rwState.lastPosture = posture

			b.appendPosture(posture, postureTempo, ruleTempo)

			postureTempo = 1.0
			ruleTempo = 1.0
			wordMarker = false
		}
	}

	b.appendPosture(trailing, 1.0, 1.0)
	b.appendPosture(startEnd, 1.0, 1.0)

	return b.build(), nil
}

// applyOrNone lets Parse call Apply on a possibly-nil rewriter.
func (rw *Rewriter) applyOrNone(next *model.Posture, wordMarker bool, state *RewriterState) (RewriteAction, *model.Posture) {
	if rw == nil {
		return RewriteNone, nil
	}
	return rw.Apply(next, wordMarker, state)
}

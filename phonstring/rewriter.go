// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package phonstring

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mym-br/gama-tts-sub001/model"
	"github.com/mym-br/gama-tts-sub001/ttserr"
)

// RewriteAction is the effect a matched rewriter command has on the
// posture stream being built.
type RewriteAction int

const (
	RewriteNone RewriteAction = iota
	RewriteInsert
	RewriteInsertIfWordStart
	RewriteReplaceFirst
)

type rewriterCommand struct {
	category1 model.CategoryID
	action    RewriteAction
	posture   *model.Posture
}

type rewriterData struct {
	category2 model.CategoryID
	commands  []rewriterCommand
}

// Rewriter holds the `(cat1, cat2) -> action(posture)` table consulted
// on every new posture of the phonetic string.
type Rewriter struct {
	data []rewriterData
}

// RewriterState tracks the posture last seen by Apply, across calls.
type RewriterState struct {
	lastPosture *model.Posture
}

// Apply runs the rewriter for next, the posture about to be appended to
// the stream. state.lastPosture must be updated by the caller's builder
// after Apply returns (it is not mutated here, to let the stream
// builder decide whether the match still counts once wordMarker has
// been consumed). It reports the first command whose cat2 covers next
// and whose cat1 covers the previous posture; RewriteNone if none
// matched or this is the first posture of the utterance.
func (rw *Rewriter) Apply(next *model.Posture, wordMarker bool, state *RewriterState) (RewriteAction, *model.Posture) {
	prev := state.lastPosture
	if prev == nil {
		return RewriteNone, nil
	}
	for _, d := range rw.data {
		if !next.HasCategory(d.category2) {
			continue
		}
		for _, cmd := range d.commands {
			if prev.HasCategory(cmd.category1) {
				return cmd.action, cmd.posture
			}
		}
	}
	return RewriteNone, nil
}

const rewriterSeparator = '>'
const rewriterComment = '#'

// LoadRewriter parses a rewrite-configuration table: non-comment,
// non-blank lines of the form `cat1 cat2 > action posture`, e.g.
// `nasal vowel > insert nasal1`. Categories and the posture name are
// resolved against m.
func LoadRewriter(r io.Reader, m *model.Model) (*Rewriter, error) {
	rw := &Rewriter{}
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if line == "" {
			continue
		}
		if line[0] == rewriterComment {
			continue
		}
		fields, action, err := splitRewriteLine(line, lineNum)
		if err != nil {
			return nil, err
		}
		cat1Name, cat2Name, postureName := fields[0], fields[1], fields[2]

		cat1, ok := m.FindCategory(cat1Name)
		if !ok {
			return nil, ttserr.NewLookupError("category", cat1Name)
		}
		cat2, ok := m.FindCategory(cat2Name)
		if !ok {
			return nil, ttserr.NewLookupError("category", cat2Name)
		}
		postureID, ok := m.FindPosture(postureName)
		if !ok {
			return nil, ttserr.NewLookupError("posture", postureName)
		}

		var bucket *rewriterData
		for i := range rw.data {
			if rw.data[i].category2 == cat2 {
				bucket = &rw.data[i]
				break
			}
		}
		if bucket == nil {
			rw.data = append(rw.data, rewriterData{category2: cat2})
			bucket = &rw.data[len(rw.data)-1]
		}
		for _, cmd := range bucket.commands {
			if cmd.category1 == cat1 {
				return nil, ttserr.NewParseError("rewrite-config", line, 0,
					fmt.Sprintf("duplicate category pair at line %d", lineNum))
			}
		}
		bucket.commands = append(bucket.commands, rewriterCommand{
			category1: cat1,
			action:    action,
			posture:   m.Posture(postureID),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, ttserr.NewConfigError("rewrite-config", "read error", err)
	}
	return rw, nil
}

func splitRewriteLine(line string, lineNum int) ([3]string, RewriteAction, error) {
	sepIdx := strings.IndexByte(line, rewriterSeparator)
	if sepIdx < 0 {
		return [3]string{}, RewriteNone, ttserr.NewParseError("rewrite-config", line, 0,
			fmt.Sprintf("missing separator at line %d", lineNum))
	}
	head := strings.Fields(line[:sepIdx])
	tail := strings.Fields(line[sepIdx+1:])
	if len(head) != 2 {
		return [3]string{}, RewriteNone, ttserr.NewParseError("rewrite-config", line, 0,
			fmt.Sprintf("expected two categories before separator at line %d", lineNum))
	}
	if len(tail) != 2 {
		return [3]string{}, RewriteNone, ttserr.NewParseError("rewrite-config", line, 0,
			fmt.Sprintf("expected action and posture after separator at line %d", lineNum))
	}
	var action RewriteAction
	switch tail[0] {
	case "insert":
		action = RewriteInsert
	case "insert_if_word_start":
		action = RewriteInsertIfWordStart
	case "replace_first":
		action = RewriteReplaceFirst
	case "nop":
		action = RewriteNone
	default:
		return [3]string{}, RewriteNone, ttserr.NewParseError("rewrite-config", line, 0,
			fmt.Sprintf("invalid command %q at line %d", tail[0], lineNum))
	}
	return [3]string{head[0], head[1], tail[1]}, action, nil
}

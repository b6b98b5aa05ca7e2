// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

// Package phonstring parses a marked phonetic string into a posture
// stream annotated with per-posture tempo and syllable marks, grouped
// into feet and tone groups, applying an optional category rewriter
// along the way.
package phonstring

import "github.com/goki/ki/kit"

// ToneGroupType is the intonation contour a tone group carries.
type ToneGroupType int

const (
	ToneGroupStatement ToneGroupType = iota
	ToneGroupExclamation
	ToneGroupQuestion
	ToneGroupContinuation
	ToneGroupSemicolon
	ToneGroupNone
	ToneGroupTypeN
)

// KitToneGroupType registers ToneGroupType the way the teacher registers
// every small closed enum.
var KitToneGroupType = kit.Enums.AddEnum(int64(ToneGroupTypeN), kit.NotBitFlag, nil)

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda,
// reworked: the original's shared_ptr graph of categories/equations/
// transitions shared across rules and postures becomes arena storage (the
// Model) addressed by small integer handles. Cross-references in
// serialized form (voicepack.Document) stay names; cross-references at
// runtime are handles, so there is no cyclic ownership or weak-reference
// plumbing to manage.

// Package model holds the articulatory data model: categories,
// parameters, symbols, postures, equations, transitions, and rules, plus
// the Model registry that owns them and the boolean-expression evaluator
// rules use to match postures.
package model

// CategoryID addresses a Category owned by a Model.
type CategoryID int

// ParamID addresses a Parameter owned by a Model.
type ParamID int

// SymID addresses a Symbol owned by a Model.
type SymID int

// PostureID addresses a Posture owned by a Model.
type PostureID int

// EquationID addresses an Equation owned by a Model.
type EquationID int

// TransitionID addresses a Transition owned by a Model.
type TransitionID int

// InvalidID marks an absent reference for any of the handle types above.
const InvalidID = -1

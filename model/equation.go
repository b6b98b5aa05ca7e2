package model

import "github.com/mym-br/gama-tts-sub001/formula"

// Equation re-exports formula.Equation: equations are owned by the
// Model (arena storage, addressed by EquationID) but their formula
// grammar and evaluation live entirely in package formula, which has no
// dependency on the model at all.
type Equation = formula.Equation

// EquationGroup is a named collection of equations. Names are unique
// across all groups of a Model, not just within one group.
type EquationGroup = formula.EquationGroup

// Copyright (c) 2019, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/***************************************************************************
 *  Copyright 1991, 1992, 1993, 1994, 1995, 1996, 2001, 2002               *
 *    David R. Hill, Leonard Manzara, Craig Schock                         *
 *                                                                         *
 *  This program is free software: you can redistribute it and/or modify   *
 *  it under the terms of the GNU General Public License as published by   *
 *  the Free Software Foundation, either version 3 of the License, or      *
 *  (at your option) any later version.                                    *
 *                                                                         *
 *  This program is distributed in the hope that it will be useful,        *
 *  but WITHOUT ANY WARRANTY; without even the implied warranty of         *
 *  MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the          *
 *  GNU General Public License for more details.                           *
 *                                                                         *
 *  You should have received a copy of the GNU General Public License      *
 *  along with this program.  If not, see <http://www.gnu.org/licenses/>.  *
 ***************************************************************************/
// 2014-09
// This file was copied from Gnuspeech and modified by Marcelo Y. Matuda.

// Package formula implements the equation formula language: infix
// arithmetic over the 21 reserved rule-symbol names (transition1..4,
// qssa1..4, qssb1..4, tempo1..4, rd, beat, mark1..3). Equations are
// parsed once into a small expression tree and evaluated many times
// against a fixed-size symbol vector.
package formula

import "github.com/goki/ki/kit"

// Symbol identifies one of the 21 reserved formula symbols by a stable
// small integer, used to index a SymbolValues vector.
type Symbol int

const (
	Transition1 Symbol = iota
	Transition2
	Transition3
	Transition4
	Qssa1
	Qssa2
	Qssa3
	Qssa4
	Qssb1
	Qssb2
	Qssb3
	Qssb4
	Tempo1
	Tempo2
	Tempo3
	Tempo4
	Rd
	Beat
	Mark1
	Mark2
	Mark3
	SymbolTypeN
)

//go:generate stringer -type=Symbol

// KitSymbol registers Symbol with the goki enum registry so it gets the
// same String()/JSON round-trip every other small enum in the model gets.
var KitSymbol = kit.Enums.AddEnum(int64(SymbolTypeN), kit.NotBitFlag, nil)

var symbolNames = map[string]Symbol{
	"transition1": Transition1,
	"transition2": Transition2,
	"transition3": Transition3,
	"transition4": Transition4,
	"qssa1":       Qssa1,
	"qssa2":       Qssa2,
	"qssa3":       Qssa3,
	"qssa4":       Qssa4,
	"qssb1":       Qssb1,
	"qssb2":       Qssb2,
	"qssb3":       Qssb3,
	"qssb4":       Qssb4,
	"tempo1":      Tempo1,
	"tempo2":      Tempo2,
	"tempo3":      Tempo3,
	"tempo4":      Tempo4,
	"rd":          Rd,
	"beat":        Beat,
	"mark1":       Mark1,
	"mark2":       Mark2,
	"mark3":       Mark3,
}

// LookupSymbol returns the Symbol named by name and true, or false if
// name is not one of the 21 reserved formula symbols.
func LookupSymbol(name string) (Symbol, bool) {
	s, ok := symbolNames[name]
	return s, ok
}

// SymbolValues is a fixed-size vector of formula symbol values, indexed
// by Symbol. It is the sole input to Eval.
type SymbolValues [SymbolTypeN]float64

// Get returns the value bound to sym.
func (v *SymbolValues) Get(sym Symbol) float64 { return v[sym] }

// Set binds sym to value.
func (v *SymbolValues) Set(sym Symbol, value float64) { v[sym] = value }

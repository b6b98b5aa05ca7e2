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

// 2019-02
// This is a port to golang of the C++ Gnuspeech port by Marcelo Y. Matuda

package drift

const (
	initialSeed = 0.7892347
	seedFactor  = 377.0
)

// Generator produces one drift sample per control-rate tick: a
// deterministic pseudo-random value in [-deviation, +deviation],
// lowpass filtered so successive samples wander slowly instead of
// jittering tick to tick.
type Generator struct {
	filter    Butterworth2LowPass
	deviation float64
	offset    float64
	seed      float64
}

// NewGenerator configures a Generator producing drift of up to
// +/-deviation semitones, at sampleRateHz control ticks per second,
// shaped by a lowpass with the given cutoff.
func NewGenerator(deviation, sampleRateHz, lowpassCutoffHz float64) *Generator {
	g := &Generator{seed: initialSeed}
	g.Reconfigure(deviation, sampleRateHz, lowpassCutoffHz)
	return g
}

// Reconfigure re-designs the filter and deviation range, resetting
// filter state but not the noise seed sequence.
func (g *Generator) Reconfigure(deviation, sampleRateHz, lowpassCutoffHz float64) {
	g.deviation = deviation * 2.0
	g.offset = deviation
	g.filter.Update(sampleRateHz, lowpassCutoffHz)
}

// Next advances the noise sequence and returns one filtered drift
// sample.
func (g *Generator) Next() float64 {
	temp := g.seed * seedFactor
	g.seed = temp - float64(int(temp))
	noise := g.seed*g.deviation - g.offset
	return g.filter.Filter(noise)
}

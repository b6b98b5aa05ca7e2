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

// Package drift generates the slow pseudo-random pitch wander applied
// on top of the macro intonation curve: a deterministic noise sequence
// shaped by a true second-order Butterworth lowpass.
package drift

import "math"

// Butterworth2LowPass is a second-order Butterworth lowpass biquad, in
// direct form II transposed, designed by the bilinear transform.
type Butterworth2LowPass struct {
	b0, b1, b2 float64
	a1, a2     float64
	z1, z2     float64
}

// Update (re)designs the filter for cutoffHz at sampleRateHz and resets
// its state.
func (f *Butterworth2LowPass) Update(sampleRateHz, cutoffHz float64) {
	wc := math.Tan(math.Pi * cutoffHz / sampleRateHz)
	k1 := math.Sqrt2 * wc
	k2 := wc * wc
	a0 := k2 + k1 + 1.0

	f.b0 = k2 / a0
	f.b1 = 2.0 * f.b0
	f.b2 = f.b0
	f.a1 = 2.0 * (k2 - 1.0) / a0
	f.a2 = (k2 - k1 + 1.0) / a0
	f.z1 = 0
	f.z2 = 0
}

// Filter runs one sample through the biquad.
func (f *Butterworth2LowPass) Filter(input float64) float64 {
	output := f.b0*input + f.z1
	f.z1 = f.b1*input - f.a1*output + f.z2
	f.z2 = f.b2*input - f.a2*output
	return output
}

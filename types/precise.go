// SPDX-License-Identifier: BUSL-1.1
//
// Copyright (C) 2026, Meridian Labs. All rights reserved.
// Use of this software is governed by the Business Source License included
// in the LICENSE file of this repository and at www.mariadb.com/bsl11.
//
// ANY USE OF THE LICENSED WORK IN VIOLATION OF THIS LICENSE WILL AUTOMATICALLY
// TERMINATE YOUR RIGHTS UNDER THIS LICENSE FOR THE CURRENT AND ALL OTHER
// VERSIONS OF THE LICENSED WORK.
//
// THIS LICENSE DOES NOT GRANT YOU ANY RIGHT IN ANY TRADEMARK OR LOGO OF
// LICENSOR OR ITS AFFILIATES (PROVIDED THAT YOU MAY USE A TRADEMARK OR LOGO OF
// LICENSOR AS EXPRESSLY REQUIRED BY THIS LICENSE).
//
// TO THE EXTENT PERMITTED BY APPLICABLE LAW, THE LICENSED WORK IS PROVIDED ON
// AN "AS IS" BASIS. LICENSOR HEREBY DISCLAIMS ALL WARRANTIES AND CONDITIONS,
// EXPRESS OR IMPLIED, INCLUDING (WITHOUT LIMITATION) WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, NON-INFRINGEMENT, AND
// TITLE.

package types

import (
	"math/big"

	"cosmossdk.io/math"
)

// The debt ledger works in a 27 decimal "precise" unit so that rounding
// drift stays bounded over arbitrarily long chains of compounded
// multipliers. The standard unit used everywhere else is the 18 decimal
// math.LegacyDec. Narrowing conversions round half up.
var (
	preciseUnitRaw, _ = new(big.Int).SetString("1000000000000000000000000000", 10) // 1e27
	precisionGapRaw   = big.NewInt(1_000_000_000)                                  // 1e27 / 1e18

	halfPreciseUnit = math.NewIntFromBigInt(new(big.Int).Rsh(preciseUnitRaw, 1))
	halfGap         = math.NewInt(precisionGapRaw.Int64() / 2)
	precisionGap    = math.NewIntFromBigInt(precisionGapRaw)
)

// PreciseUnit returns 1.0 in the precise unit.
func PreciseUnit() math.Int {
	return math.NewIntFromBigInt(preciseUnitRaw)
}

// PreciseMul multiplies two precise-unit values, rounding half up on the
// discarded quotient.
func PreciseMul(a, b math.Int) math.Int {
	return a.Mul(b).Add(halfPreciseUnit).Quo(PreciseUnit())
}

// PreciseDiv divides two precise-unit values, rounding half up.
func PreciseDiv(a, b math.Int) math.Int {
	scaled := a.Mul(PreciseUnit())
	return scaled.Add(b.Quo(math.NewInt(2))).Quo(b)
}

// PreciseMulInt scales an integer amount by a precise-unit fraction,
// rounding half up. This is the single narrowing step permitted when a
// high precision ownership fraction is applied to a token amount.
func PreciseMulInt(fraction math.Int, amount math.Int) math.Int {
	return fraction.Mul(amount).Add(halfPreciseUnit).Quo(PreciseUnit())
}

// DecToPrecise widens an 18 decimal fraction to the precise unit. The
// conversion is exact.
func DecToPrecise(d math.LegacyDec) math.Int {
	return math.NewIntFromBigInt(d.BigInt()).Mul(precisionGap)
}

// PreciseToDec narrows a precise-unit value to an 18 decimal fraction,
// rounding half up on the nine discarded digits.
func PreciseToDec(p math.Int) math.LegacyDec {
	rounded := p.Add(halfGap).Quo(precisionGap)
	return math.LegacyNewDecFromBigIntWithPrec(rounded.BigInt(), math.LegacyPrecision)
}

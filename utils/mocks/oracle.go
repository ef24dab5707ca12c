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

package mocks

import (
	"context"
	"fmt"

	"cosmossdk.io/math"

	"synthpool.meridian.xyz/types"
)

var _ types.OracleKeeper = OracleKeeper{}

// OracleKeeper serves fixed rates from memory. Marking a denom in Stale
// makes every valuation-dependent mutation abort.
type OracleKeeper struct {
	Rates map[string]math.LegacyDec
	Stale map[string]bool
}

func (k OracleKeeper) RateForCurrency(_ context.Context, denom string) (math.LegacyDec, error) {
	rate, ok := k.Rates[denom]
	if !ok {
		return math.LegacyZeroDec(), fmt.Errorf("no rate for denom %s", denom)
	}
	return rate, nil
}

func (k OracleKeeper) RateIsStale(_ context.Context, denom string) (bool, error) {
	return k.Stale[denom], nil
}

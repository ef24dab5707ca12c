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

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"synthpool.meridian.xyz/types"
)

var _ types.ExchangeKeeper = ExchangeKeeper{}

// ExchangeKeeper replays pending settlement outcomes staged per account.
// Each entry is consumed on first settle, matching the one-shot nature
// of exchange settlement.
type ExchangeKeeper struct {
	Reclaimed map[string]math.Int
	Rebated   map[string]math.Int
}

func (k ExchangeKeeper) Settle(_ context.Context, account sdk.AccAddress) (math.Int, math.Int, error) {
	reclaimed, rebated := math.ZeroInt(), math.ZeroInt()

	if amount, ok := k.Reclaimed[account.String()]; ok {
		reclaimed = amount
		delete(k.Reclaimed, account.String())
	}
	if amount, ok := k.Rebated[account.String()]; ok {
		rebated = amount
		delete(k.Rebated, account.String())
	}

	return reclaimed, rebated, nil
}

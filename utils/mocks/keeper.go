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
	"testing"

	"cosmossdk.io/core/header"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"synthpool.meridian.xyz/keeper"
	"synthpool.meridian.xyz/types"
)

// HeaderService reads block metadata from the underlying sdk.Context so
// tests can steer time with WithHeaderInfo.
type HeaderService struct{}

func (HeaderService) GetHeaderInfo(ctx context.Context) header.Info {
	return sdk.UnwrapSDKContext(ctx).HeaderInfo()
}

// SynthpoolKeeper builds a keeper over an in-memory store with default
// mocks: an empty bank, a fresh one-to-one collateral rate, and a no-op
// exchange.
func SynthpoolKeeper(t *testing.T) (*keeper.Keeper, sdk.Context) {
	t.Helper()

	account := AccountKeeper{
		Accounts: make(map[string]sdk.AccountI),
	}
	bank := BankKeeper{
		Balances: make(map[string]sdk.Coins),
	}
	oracle := OracleKeeper{
		Rates: map[string]math.LegacyDec{"umer": math.LegacyOneDec()},
		Stale: make(map[string]bool),
	}
	exchange := ExchangeKeeper{
		Reclaimed: make(map[string]math.Int),
		Rebated:   make(map[string]math.Int),
	}

	return SynthpoolKeeperWithKeepers(t, account, bank, oracle, exchange)
}

// SynthpoolKeeperWithKeepers builds a keeper over an in-memory store
// using the supplied mocks.
func SynthpoolKeeperWithKeepers(
	t *testing.T,
	account AccountKeeper,
	bank BankKeeper,
	oracle OracleKeeper,
	exchange ExchangeKeeper,
) (*keeper.Keeper, sdk.Context) {
	t.Helper()

	key := storetypes.NewKVStoreKey(types.ModuleName)
	tkey := storetypes.NewTransientStoreKey("transient_" + types.ModuleName)
	ctx := testutil.DefaultContextWithDB(t, key, tkey).Ctx

	k := keeper.NewKeeper(
		"usyn",
		"authority",
		runtime.NewKVStoreService(key),
		log.NewNopLogger(),
		HeaderService{},
		runtime.EventService{},
		address.NewBech32Codec("meridian"),
		account,
		bank,
		oracle,
		exchange,
	)

	return k, ctx
}

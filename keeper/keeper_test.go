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

package keeper_test

import (
	"testing"
	"time"

	"cosmossdk.io/core/header"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"synthpool.meridian.xyz/keeper"
	"synthpool.meridian.xyz/types"
	"synthpool.meridian.xyz/utils"
	"synthpool.meridian.xyz/utils/mocks"
)

const ONE = 1_000_000

var baseTime = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type testEnv struct {
	keeper   *keeper.Keeper
	server   types.MsgServer
	queries  types.QueryServer
	bank     mocks.BankKeeper
	oracle   mocks.OracleKeeper
	exchange mocks.ExchangeKeeper
	ctx      sdk.Context
}

func setupTest(t *testing.T) *testEnv {
	t.Helper()

	account := mocks.AccountKeeper{
		Accounts: make(map[string]sdk.AccountI),
	}
	bank := mocks.BankKeeper{
		Balances: make(map[string]sdk.Coins),
	}
	oracle := mocks.OracleKeeper{
		Rates: map[string]math.LegacyDec{"umer": math.LegacyOneDec()},
		Stale: make(map[string]bool),
	}
	exchange := mocks.ExchangeKeeper{
		Reclaimed: make(map[string]math.Int),
		Rebated:   make(map[string]math.Int),
	}

	k, ctx := mocks.SynthpoolKeeperWithKeepers(t, account, bank, oracle, exchange)
	ctx = ctx.WithHeaderInfo(header.Info{Time: baseTime})

	return &testEnv{
		keeper:   k,
		server:   keeper.NewMsgServer(k),
		queries:  keeper.NewQueryServer(k),
		bank:     bank,
		oracle:   oracle,
		exchange: exchange,
		ctx:      ctx,
	}
}

// at returns a context whose block time is baseTime plus the offset.
func (e *testEnv) at(offset time.Duration) sdk.Context {
	return e.ctx.WithHeaderInfo(header.Info{Time: baseTime.Add(offset)})
}

func (e *testEnv) fund(account utils.Account, denom string, amount int64) {
	e.bank.Balances[account.Address] = e.bank.Balances[account.Address].Add(sdk.NewCoin(denom, math.NewInt(amount)))
}

func (e *testEnv) balance(account utils.Account, denom string) math.Int {
	return e.bank.Balances[account.Address].AmountOf(denom)
}

// stake deposits collateral for the account and mints the given amount
// of synths against it.
func (e *testEnv) stake(t *testing.T, ctx sdk.Context, account utils.Account, collateral, mint int64) {
	t.Helper()

	e.fund(account, "umer", collateral)
	_, err := e.server.DepositCollateral(ctx, &types.MsgDepositCollateral{
		Depositor: account.Address,
		Amount:    math.NewInt(collateral),
	})
	require.NoError(t, err)

	if mint > 0 {
		_, err = e.server.Mint(ctx, &types.MsgMint{
			Minter: account.Address,
			Amount: math.NewInt(mint),
		})
		require.NoError(t, err)
	}
}

func (e *testEnv) debtOf(t *testing.T, ctx sdk.Context, account utils.Account) math.Int {
	t.Helper()

	debt, err := e.keeper.DebtBalanceOf(ctx, account.Bytes)
	require.NoError(t, err)
	return debt
}

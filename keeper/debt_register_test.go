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

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synthpool.meridian.xyz/types"
	"synthpool.meridian.xyz/utils"
)

func TestDebtRegisterScenario(t *testing.T) {
	env := setupTest(t)
	alice, bob := utils.TestAccount(), utils.TestAccount()

	// Alice opens the pool and owns all of it.
	env.stake(t, env.ctx, alice, 1000*ONE, 100*ONE)
	require.Equal(t, math.NewInt(100*ONE), env.debtOf(t, env.ctx, alice))

	total, err := env.keeper.GetTotalDebt(env.ctx)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100*ONE), total)

	count, err := env.keeper.GetTotalIssuerCount(env.ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	first, err := env.keeper.GetDebtLedgerEntry(env.ctx, 0)
	require.NoError(t, err)
	require.Equal(t, types.PreciseUnit(), first)

	// Bob mints the same amount, splitting the pool in half. The second
	// ledger entry is the exact dilution factor applied to Alice.
	env.stake(t, env.ctx, bob, 1000*ONE, 100*ONE)
	require.Equal(t, math.NewInt(100*ONE), env.debtOf(t, env.ctx, alice))
	require.Equal(t, math.NewInt(100*ONE), env.debtOf(t, env.ctx, bob))

	second, err := env.keeper.GetDebtLedgerEntry(env.ctx, 1)
	require.NoError(t, err)
	require.Equal(t, types.PreciseUnit().QuoRaw(2), second)

	// Alice burns half her debt. Bob's absolute debt does not move, only
	// the ownership split shifts to one third versus two thirds.
	ctx := env.at(9 * time.Hour)
	resp, err := env.server.Burn(ctx, &types.MsgBurn{
		Burner: alice.Address,
		Amount: math.NewInt(50 * ONE),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(50*ONE), resp.Burned)
	require.EqualValues(t, 3, resp.LedgerLength)

	assert.Equal(t, math.NewInt(50*ONE), env.debtOf(t, ctx, alice))
	assert.Equal(t, math.NewInt(100*ONE), env.debtOf(t, ctx, bob))

	total, err = env.keeper.GetTotalDebt(ctx)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(150*ONE), total)

	// Conservation: individual balances account for the whole pool.
	sum := env.debtOf(t, ctx, alice).Add(env.debtOf(t, ctx, bob))
	assert.Equal(t, total, sum)
}

func TestDebtRegisterNoDilutionAfterExit(t *testing.T) {
	env := setupTest(t)
	alice, bob, carol := utils.TestAccount(), utils.TestAccount(), utils.TestAccount()

	env.stake(t, env.ctx, alice, 1000*ONE, 100*ONE)
	env.stake(t, env.ctx, bob, 1000*ONE, 100*ONE)

	// Alice exits completely.
	ctx := env.at(9 * time.Hour)
	resp, err := env.server.Burn(ctx, &types.MsgBurn{
		Burner: alice.Address,
		Amount: math.NewInt(100 * ONE),
	})
	require.NoError(t, err)
	require.Equal(t, math.NewInt(100*ONE), resp.Burned)

	record, err := env.keeper.GetIssuanceRecord(ctx, alice.Bytes)
	require.NoError(t, err)
	require.True(t, record.IsZero())

	count, err := env.keeper.GetTotalIssuerCount(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	// Later mutations cannot resurrect a closed position.
	env.stake(t, ctx, carol, 1000*ONE, 50*ONE)
	assert.Equal(t, math.ZeroInt(), env.debtOf(t, ctx, alice))
	assert.Equal(t, math.NewInt(100*ONE), env.debtOf(t, ctx, bob))
	assert.Equal(t, math.NewInt(50*ONE), env.debtOf(t, ctx, carol))
}

func TestDebtRegisterEpochRestart(t *testing.T) {
	env := setupTest(t)
	alice, bob := utils.TestAccount(), utils.TestAccount()

	env.stake(t, env.ctx, alice, 1000*ONE, 100*ONE)

	// Draining the pool appends the zero marker.
	ctx := env.at(9 * time.Hour)
	_, err := env.server.Burn(ctx, &types.MsgBurn{
		Burner: alice.Address,
		Amount: math.NewInt(100 * ONE),
	})
	require.NoError(t, err)

	last, err := env.keeper.GetLastDebtLedgerEntry(ctx)
	require.NoError(t, err)
	require.True(t, last.IsZero())

	total, err := env.keeper.GetTotalDebt(ctx)
	require.NoError(t, err)
	require.True(t, total.IsZero())

	// The next mint starts a fresh epoch instead of dividing by zero.
	env.stake(t, ctx, bob, 1000*ONE, 50*ONE)

	last, err = env.keeper.GetLastDebtLedgerEntry(ctx)
	require.NoError(t, err)
	assert.Equal(t, types.PreciseUnit(), last)

	assert.Equal(t, math.NewInt(50*ONE), env.debtOf(t, ctx, bob))
	assert.Equal(t, math.ZeroInt(), env.debtOf(t, ctx, alice))
}

func TestDebtRegisterReplayDeterminism(t *testing.T) {
	run := func(t *testing.T) []math.Int {
		env := setupTest(t)
		alice, bob := utils.TestAccount(), utils.TestAccount()

		env.stake(t, env.ctx, alice, 1000*ONE, 70*ONE)
		env.stake(t, env.ctx, bob, 1000*ONE, 130*ONE)

		ctx := env.at(9 * time.Hour)
		_, err := env.server.Burn(ctx, &types.MsgBurn{
			Burner: bob.Address,
			Amount: math.NewInt(40 * ONE),
		})
		require.NoError(t, err)

		length, err := env.keeper.GetDebtLedgerLength(ctx)
		require.NoError(t, err)

		entries := make([]math.Int, 0, length)
		for i := uint64(0); i < length; i++ {
			entry, err := env.keeper.GetDebtLedgerEntry(ctx, i)
			require.NoError(t, err)
			entries = append(entries, entry)
		}
		return entries
	}

	// The ledger is a pure function of the mutation sequence.
	assert.Equal(t, run(t), run(t))
}

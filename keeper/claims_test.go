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
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synthpool.meridian.xyz/types"
	"synthpool.meridian.xyz/utils"
)

// setupClaimTest stakes a sixty/forty pool split, records fees and
// rewards against the open period, and closes it so the split becomes
// claimable.
func setupClaimTest(t *testing.T, env *testEnv) (alice, bob utils.Account, ctx sdk.Context) {
	t.Helper()

	alice, bob = utils.TestAccount(), utils.TestAccount()
	authority := utils.TestAccount()

	params := types.DefaultParams()
	params.FeeAuthority = authority.Address
	require.NoError(t, env.keeper.SetParams(env.ctx, params))

	env.stake(t, env.ctx, alice, 1000*ONE, 60*ONE)
	env.stake(t, env.ctx, bob, 1000*ONE, 40*ONE)

	env.fund(authority, "usyn", 1000)
	env.fund(authority, "umer", 500)
	_, err := env.server.RecordFees(env.ctx, &types.MsgRecordFees{
		Sender:  authority.Address,
		Fees:    math.NewInt(1000),
		Rewards: math.NewInt(500),
	})
	require.NoError(t, err)

	ctx = env.at(25 * time.Hour)
	_, err = env.server.ClosePeriod(ctx, &types.MsgClosePeriod{Caller: alice.Address})
	require.NoError(t, err)

	return alice, bob, ctx
}

func TestClaimSplitsFeesByHistoricalOwnership(t *testing.T) {
	env := setupTest(t)
	alice, bob, ctx := setupClaimTest(t, env)

	fees, rewards, err := env.keeper.FeesAvailable(ctx, alice.Bytes)
	require.NoError(t, err)
	require.Equal(t, math.NewInt(600), fees)
	require.Equal(t, math.NewInt(300), rewards)

	resp, err := env.server.Claim(ctx, &types.MsgClaim{Claimant: alice.Address})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(600), resp.FeePaid)
	assert.Equal(t, math.NewInt(300), resp.RewardPaid)
	assert.Equal(t, math.NewInt(60*ONE+600), env.balance(alice, "usyn"))
	assert.Equal(t, math.NewInt(300), env.balance(alice, "umer"))

	resp, err = env.server.Claim(ctx, &types.MsgClaim{Claimant: bob.Address})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(400), resp.FeePaid)
	assert.Equal(t, math.NewInt(200), resp.RewardPaid)

	period, err := env.keeper.GetFeePeriod(ctx, types.ClaimableFeePeriod)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1000), period.FeesClaimed)
	assert.Equal(t, math.NewInt(500), period.RewardsClaimed)
	assert.True(t, period.UnclaimedFees().IsZero())
}

func TestClaimIsOncePerPeriod(t *testing.T) {
	env := setupTest(t)
	alice, _, ctx := setupClaimTest(t, env)

	_, err := env.server.Claim(ctx, &types.MsgClaim{Claimant: alice.Address})
	require.NoError(t, err)

	_, err = env.server.Claim(ctx, &types.MsgClaim{Claimant: alice.Address})
	assert.ErrorIs(t, err, types.ErrAlreadyClaimed)

	fees, rewards, err := env.keeper.FeesAvailable(ctx, alice.Bytes)
	require.NoError(t, err)
	assert.Equal(t, math.ZeroInt(), fees)
	assert.Equal(t, math.ZeroInt(), rewards)
}

func TestClaimNothingToClaim(t *testing.T) {
	env := setupTest(t)
	alice := utils.TestAccount()

	// No period has closed yet.
	env.stake(t, env.ctx, alice, 1000*ONE, 60*ONE)
	_, err := env.server.Claim(env.ctx, &types.MsgClaim{Claimant: alice.Address})
	assert.ErrorIs(t, err, types.ErrNothingToClaim)

	// A bystander with no ownership in the closed period gets nothing.
	env2 := setupTest(t)
	_, _, ctx := setupClaimTest(t, env2)
	carol := utils.TestAccount()
	_, err = env2.server.Claim(ctx, &types.MsgClaim{Claimant: carol.Address})
	assert.ErrorIs(t, err, types.ErrNothingToClaim)
}

func TestClaimGatedOnCollateralRatio(t *testing.T) {
	env := setupTest(t)
	alice, _, ctx := setupClaimTest(t, env)

	// A collateral price collapse pushes the ratio below the claim floor.
	env.oracle.Rates["umer"] = math.LegacyMustNewDecFromStr("0.2")

	_, err := env.server.Claim(ctx, &types.MsgClaim{Claimant: alice.Address})
	assert.ErrorIs(t, err, types.ErrCollateralRatioTooLow)

	// Recovery reopens the claim.
	env.oracle.Rates["umer"] = math.LegacyOneDec()
	resp, err := env.server.Claim(ctx, &types.MsgClaim{Claimant: alice.Address})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(600), resp.FeePaid)
}

func TestEffectiveDebtRatioPerSlot(t *testing.T) {
	env := setupTest(t)
	alice, _, ctx := setupClaimTest(t, env)

	// Live and historical slots agree while nothing has moved since close.
	live, err := env.keeper.EffectiveDebtRatioForPeriod(ctx, alice.Bytes, types.CurrentFeePeriod)
	require.NoError(t, err)
	assert.Equal(t, math.LegacyMustNewDecFromStr("0.6"), live)

	historical, err := env.keeper.EffectiveDebtRatioForPeriod(ctx, alice.Bytes, types.ClaimableFeePeriod)
	require.NoError(t, err)
	assert.Equal(t, math.LegacyMustNewDecFromStr("0.6"), historical)

	_, err = env.keeper.EffectiveDebtRatioForPeriod(ctx, alice.Bytes, 7)
	assert.ErrorIs(t, err, types.ErrInvalidRequest)
}

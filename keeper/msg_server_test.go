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

func TestDepositCollateral(t *testing.T) {
	env := setupTest(t)
	alice := utils.TestAccount()

	_, err := env.server.DepositCollateral(env.ctx, nil)
	assert.ErrorIs(t, err, types.ErrInvalidRequest)

	_, err = env.server.DepositCollateral(env.ctx, &types.MsgDepositCollateral{
		Depositor: alice.Address,
		Amount:    math.NewInt(-1),
	})
	assert.ErrorIs(t, err, types.ErrInvalidAmount)

	// Unfunded deposits bounce off the bank.
	_, err = env.server.DepositCollateral(env.ctx, &types.MsgDepositCollateral{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000 * ONE),
	})
	assert.Error(t, err)

	env.fund(alice, "umer", 1000*ONE)
	resp, err := env.server.DepositCollateral(env.ctx, &types.MsgDepositCollateral{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000 * ONE),
	})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1000*ONE), resp.TotalCollateral)
	assert.Equal(t, math.ZeroInt(), env.balance(alice, "umer"))

	collateral, err := env.keeper.GetCollateral(env.ctx, alice.Bytes)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(1000*ONE), collateral)
}

func TestWithdrawCollateral(t *testing.T) {
	env := setupTest(t)
	alice := utils.TestAccount()

	// Max mint locks every unit of collateral.
	env.stake(t, env.ctx, alice, 1000*ONE, 200*ONE)

	_, err := env.server.WithdrawCollateral(env.ctx, &types.MsgWithdrawCollateral{
		Depositor: alice.Address,
		Amount:    math.NewInt(1),
	})
	assert.ErrorIs(t, err, types.ErrInsufficientCollateral)

	// Burning the debt frees it again.
	ctx := env.at(9 * time.Hour)
	_, err = env.server.Burn(ctx, &types.MsgBurn{
		Burner: alice.Address,
		Amount: math.NewInt(200 * ONE),
	})
	require.NoError(t, err)

	resp, err := env.server.WithdrawCollateral(ctx, &types.MsgWithdrawCollateral{
		Depositor: alice.Address,
		Amount:    math.NewInt(1000 * ONE),
	})
	require.NoError(t, err)
	assert.True(t, resp.TotalCollateral.IsZero())
	assert.Equal(t, math.NewInt(1000*ONE), env.balance(alice, "umer"))
}

func TestMintLimits(t *testing.T) {
	env := setupTest(t)
	alice := utils.TestAccount()

	env.stake(t, env.ctx, alice, 1000*ONE, 0)

	// 0.2 issuance ratio caps issuance at a fifth of collateral value.
	_, err := env.server.Mint(env.ctx, &types.MsgMint{
		Minter: alice.Address,
		Amount: math.NewInt(201 * ONE),
	})
	assert.ErrorIs(t, err, types.ErrAmountTooLarge)

	resp, err := env.server.Mint(env.ctx, &types.MsgMint{
		Minter: alice.Address,
		Amount: math.NewInt(200 * ONE),
	})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(200*ONE), resp.Minted)
	assert.Equal(t, math.NewInt(200*ONE), env.balance(alice, "usyn"))
}

func TestMintAbortsOnStaleRate(t *testing.T) {
	env := setupTest(t)
	alice := utils.TestAccount()

	env.stake(t, env.ctx, alice, 1000*ONE, 0)
	env.oracle.Stale["umer"] = true

	_, err := env.server.Mint(env.ctx, &types.MsgMint{
		Minter: alice.Address,
		Amount: math.NewInt(100 * ONE),
	})
	assert.ErrorIs(t, err, types.ErrStaleRate)
}

func TestMintMax(t *testing.T) {
	env := setupTest(t)
	alice := utils.TestAccount()

	env.stake(t, env.ctx, alice, 1000*ONE, 0)

	resp, err := env.server.MintMax(env.ctx, &types.MsgMintMax{Minter: alice.Address})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(200*ONE), resp.Minted)

	// Nothing left afterwards.
	_, err = env.server.MintMax(env.ctx, &types.MsgMintMax{Minter: alice.Address})
	assert.ErrorIs(t, err, types.ErrInvalidAmount)
}

func TestBurnEnforcesMinimumStakeTime(t *testing.T) {
	env := setupTest(t)
	alice := utils.TestAccount()

	env.stake(t, env.ctx, alice, 1000*ONE, 100*ONE)

	_, err := env.server.Burn(env.at(time.Hour), &types.MsgBurn{
		Burner: alice.Address,
		Amount: math.NewInt(50 * ONE),
	})
	assert.ErrorIs(t, err, types.ErrMinimumStakeTime)

	_, err = env.server.Burn(env.at(9*time.Hour), &types.MsgBurn{
		Burner: alice.Address,
		Amount: math.NewInt(50 * ONE),
	})
	assert.NoError(t, err)
}

func TestBurnClampsToOutstandingDebt(t *testing.T) {
	env := setupTest(t)
	alice := utils.TestAccount()

	env.stake(t, env.ctx, alice, 1000*ONE, 100*ONE)

	// The excess above the outstanding debt is forgiven, not rejected.
	ctx := env.at(9 * time.Hour)
	resp, err := env.server.Burn(ctx, &types.MsgBurn{
		Burner: alice.Address,
		Amount: math.NewInt(150 * ONE),
	})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100*ONE), resp.Burned)
	assert.Equal(t, math.ZeroInt(), env.debtOf(t, ctx, alice))

	_, err = env.server.Burn(ctx, &types.MsgBurn{
		Burner: alice.Address,
		Amount: math.NewInt(1),
	})
	assert.ErrorIs(t, err, types.ErrNoDebt)
}

func TestBurnAppliesSettlement(t *testing.T) {
	env := setupTest(t)
	alice := utils.TestAccount()

	env.stake(t, env.ctx, alice, 1000*ONE, 100*ONE)

	// A pending rebate of 40 shrinks the amount retired, leaving the
	// rebated portion of the debt on the account's position.
	env.exchange.Rebated[alice.Address] = math.NewInt(40 * ONE)

	ctx := env.at(9 * time.Hour)
	resp, err := env.server.Burn(ctx, &types.MsgBurn{
		Burner: alice.Address,
		Amount: math.NewInt(100 * ONE),
	})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(60*ONE), resp.Burned)
	assert.Equal(t, math.NewInt(40*ONE), env.debtOf(t, ctx, alice))

	// The register still accounts for every unit of the total.
	total, err := env.keeper.GetTotalDebt(ctx)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(40*ONE), total)
	issuers, err := env.keeper.GetTotalIssuerCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), issuers)
}

func TestBurnSettlementReclaimRetiresFullPosition(t *testing.T) {
	env := setupTest(t)
	alice := utils.TestAccount()

	env.stake(t, env.ctx, alice, 1000*ONE, 100*ONE)

	// A pending reclaim enlarges the amount retired, but the burn is
	// still clamped to the debt the register holds for the account.
	env.exchange.Reclaimed[alice.Address] = math.NewInt(50 * ONE)

	ctx := env.at(9 * time.Hour)
	resp, err := env.server.Burn(ctx, &types.MsgBurn{
		Burner: alice.Address,
		Amount: math.NewInt(150 * ONE),
	})
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(100*ONE), resp.Burned)
	assert.True(t, env.debtOf(t, ctx, alice).IsZero())

	total, err := env.keeper.GetTotalDebt(ctx)
	require.NoError(t, err)
	assert.True(t, total.IsZero())
	issuers, err := env.keeper.GetTotalIssuerCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), issuers)
}

func TestBurnSettlementRebateConsumingBurnIsRejected(t *testing.T) {
	env := setupTest(t)
	alice := utils.TestAccount()

	env.stake(t, env.ctx, alice, 1000*ONE, 100*ONE)
	env.exchange.Rebated[alice.Address] = math.NewInt(100 * ONE)

	ctx := env.at(9 * time.Hour)
	_, err := env.server.Burn(ctx, &types.MsgBurn{
		Burner: alice.Address,
		Amount: math.NewInt(50 * ONE),
	})
	assert.ErrorIs(t, err, types.ErrInvalidAmount)
	assert.Equal(t, math.NewInt(100*ONE), env.debtOf(t, ctx, alice))
}

func TestPauseBlocksMutations(t *testing.T) {
	env := setupTest(t)
	alice := utils.TestAccount()

	_, err := env.server.SetPaused(env.ctx, &types.MsgSetPaused{
		Authority: alice.Address,
		Paused:    true,
	})
	assert.ErrorIs(t, err, types.ErrUnauthorized)

	_, err = env.server.SetPaused(env.ctx, &types.MsgSetPaused{
		Authority: "authority",
		Paused:    true,
	})
	require.NoError(t, err)
	require.True(t, env.keeper.GetPaused(env.ctx))

	_, err = env.server.Mint(env.ctx, &types.MsgMint{
		Minter: alice.Address,
		Amount: math.NewInt(ONE),
	})
	assert.ErrorIs(t, err, types.ErrPaused)

	_, err = env.server.SetPaused(env.ctx, &types.MsgSetPaused{
		Authority: "authority",
		Paused:    false,
	})
	require.NoError(t, err)
	require.False(t, env.keeper.GetPaused(env.ctx))
}

func TestRecordFeesRequiresFeeAuthority(t *testing.T) {
	env := setupTest(t)
	alice := utils.TestAccount()

	_, err := env.server.RecordFees(env.ctx, &types.MsgRecordFees{
		Sender:  alice.Address,
		Fees:    math.NewInt(1000),
		Rewards: math.ZeroInt(),
	})
	assert.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestUpdateParams(t *testing.T) {
	env := setupTest(t)

	_, err := env.server.UpdateParams(env.ctx, &types.MsgUpdateParams{
		Authority: "intruder",
		Params:    types.DefaultParams(),
	})
	assert.ErrorIs(t, err, types.ErrUnauthorized)

	invalid := types.DefaultParams()
	invalid.CollateralDenom = ""
	_, err = env.server.UpdateParams(env.ctx, &types.MsgUpdateParams{
		Authority: "authority",
		Params:    invalid,
	})
	assert.ErrorIs(t, err, types.ErrInvalidRequest)

	updated := types.DefaultParams()
	updated.IssuanceRatio = math.LegacyMustNewDecFromStr("0.25")
	_, err = env.server.UpdateParams(env.ctx, &types.MsgUpdateParams{
		Authority: "authority",
		Params:    updated,
	})
	require.NoError(t, err)

	params, err := env.keeper.GetParams(env.ctx)
	require.NoError(t, err)
	assert.Equal(t, math.LegacyMustNewDecFromStr("0.25"), params.IssuanceRatio)
}

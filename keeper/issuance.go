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

package keeper

import (
	"context"
	"time"

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"synthpool.meridian.xyz/types"
)

// Issue mints synths against the account's locked collateral and records
// the resulting dilution in the debt register. Every precondition is
// checked before the first state write; the synthetic token is minted
// only after the debt pool has been updated.
func (k *Keeper) Issue(ctx context.Context, account []byte, amount math.Int) (minted math.Int, ledgerLength uint64, err error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), 0, err
	}

	stale, err := k.oracle.RateIsStale(ctx, params.CollateralDenom)
	if err != nil {
		return math.ZeroInt(), 0, sdkerrors.Wrap(err, "unable to check rate staleness")
	}
	if stale {
		return math.ZeroInt(), 0, sdkerrors.Wrapf(types.ErrStaleRate, "denom %s", params.CollateralDenom)
	}

	remaining, _, err := k.RemainingIssuableSynths(ctx, account)
	if err != nil {
		return math.ZeroInt(), 0, err
	}
	if amount.GT(remaining) {
		return math.ZeroInt(), 0, sdkerrors.Wrapf(types.ErrAmountTooLarge, "amount %s, issuable %s", amount, remaining)
	}

	existingDebt, err := k.DebtBalanceOf(ctx, account)
	if err != nil {
		return math.ZeroInt(), 0, err
	}
	totalDebt, err := k.GetTotalDebt(ctx)
	if err != nil {
		return math.ZeroInt(), 0, err
	}

	if err := k.EnsureFeeWindow(ctx); err != nil {
		return math.ZeroInt(), 0, err
	}

	if err := k.addToDebtRegister(ctx, account, amount, existingDebt, totalDebt); err != nil {
		return math.ZeroInt(), 0, err
	}

	if err := k.TotalDebt.Set(ctx, totalDebt.Add(amount)); err != nil {
		return math.ZeroInt(), 0, sdkerrors.Wrap(err, "unable to update total debt")
	}

	now := k.header.GetHeaderInfo(ctx).Time
	if err := k.LastIssueTime.Set(ctx, account, now.Unix()); err != nil {
		return math.ZeroInt(), 0, sdkerrors.Wrap(err, "unable to record issue time")
	}

	coins := sdk.NewCoins(sdk.NewCoin(k.denom, amount))
	if err := k.bank.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return math.ZeroInt(), 0, sdkerrors.Wrap(err, "unable to mint synths")
	}
	if err := k.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, sdk.AccAddress(account), coins); err != nil {
		return math.ZeroInt(), 0, sdkerrors.Wrap(err, "unable to deliver synths")
	}

	length, err := k.GetDebtLedgerLength(ctx)
	if err != nil {
		return math.ZeroInt(), 0, err
	}

	return amount, length, nil
}

// Retire burns synths and unwinds the account's share of the debt pool.
// Amounts above the outstanding debt are clamped to it rather than
// rejected. Pending cross-asset exchanges are settled first: a reclaim
// enlarges the amount retired and a rebate shrinks it, but the register
// and the total are only ever reduced by what is actually burned, so
// the pool never carries debt nobody owns.
func (k *Keeper) Retire(ctx context.Context, account []byte, amount math.Int) (burned math.Int, ledgerLength uint64, err error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), 0, err
	}

	lastIssue, err := k.GetLastIssueTime(ctx, account)
	if err != nil {
		return math.ZeroInt(), 0, err
	}
	now := k.header.GetHeaderInfo(ctx).Time
	if lastIssue > 0 {
		readyAt := time.Unix(lastIssue, 0).UTC().Add(params.MinStakeDuration)
		if now.Before(readyAt) {
			return math.ZeroInt(), 0, sdkerrors.Wrapf(types.ErrMinimumStakeTime, "ready at %s", readyAt)
		}
	}

	reclaimed, rebated, err := k.exchange.Settle(ctx, sdk.AccAddress(account))
	if err != nil {
		return math.ZeroInt(), 0, sdkerrors.Wrap(err, "unable to settle pending exchanges")
	}

	existingDebt, err := k.DebtBalanceOf(ctx, account)
	if err != nil {
		return math.ZeroInt(), 0, err
	}
	if !existingDebt.IsPositive() {
		return math.ZeroInt(), 0, types.ErrNoDebt
	}

	// Settlement adjusts what the account retires, never the register's
	// view of its debt. The clamp below keeps
	// burned <= existingDebt <= totalDebt.
	target := amount.Add(reclaimed)
	if rebated.IsPositive() {
		target = math.MaxInt(target.Sub(rebated), math.ZeroInt())
	}
	if !target.IsPositive() {
		return math.ZeroInt(), 0, sdkerrors.Wrap(types.ErrInvalidAmount, "settlement rebate covers the entire burn amount")
	}

	// Forgive the excess: burning more than owed retires the whole
	// position instead of failing.
	burned = math.MinInt(target, existingDebt)

	balance := k.bank.GetBalance(ctx, sdk.AccAddress(account), k.denom).Amount
	if balance.LT(burned) {
		return math.ZeroInt(), 0, sdkerrors.Wrapf(types.ErrInvalidAmount, "synth balance %s below burn amount %s", balance, burned)
	}

	totalDebt, err := k.GetTotalDebt(ctx)
	if err != nil {
		return math.ZeroInt(), 0, err
	}

	if err := k.EnsureFeeWindow(ctx); err != nil {
		return math.ZeroInt(), 0, err
	}

	if err := k.removeFromDebtRegister(ctx, account, burned, existingDebt, totalDebt); err != nil {
		return math.ZeroInt(), 0, err
	}

	if err := k.TotalDebt.Set(ctx, totalDebt.Sub(burned)); err != nil {
		return math.ZeroInt(), 0, sdkerrors.Wrap(err, "unable to update total debt")
	}

	coins := sdk.NewCoins(sdk.NewCoin(k.denom, burned))
	if err := k.bank.SendCoinsFromAccountToModule(ctx, sdk.AccAddress(account), types.ModuleName, coins); err != nil {
		return math.ZeroInt(), 0, sdkerrors.Wrap(err, "unable to collect synths")
	}
	if err := k.bank.BurnCoins(ctx, types.ModuleName, coins); err != nil {
		return math.ZeroInt(), 0, sdkerrors.Wrap(err, "unable to burn synths")
	}

	length, err := k.GetDebtLedgerLength(ctx)
	if err != nil {
		return math.ZeroInt(), 0, err
	}

	return burned, length, nil
}

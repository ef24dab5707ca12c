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

	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"synthpool.meridian.xyz/types"
)

// currentOwnership reconstructs the account's live ownership fraction in
// the precise unit. Dividing the last ledger entry by the entry the
// record is anchored at yields the compounded dilution the account has
// experienced since its last mutation, so no other account's record is
// ever touched.
func (k *Keeper) currentOwnership(ctx context.Context, record types.IssuanceRecord) (math.Int, error) {
	length, err := k.GetDebtLedgerLength(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	if length == 0 {
		return math.ZeroInt(), nil
	}
	return k.effectiveOwnershipAtIndex(ctx, record, length-1)
}

// effectiveOwnershipAtIndex reconstructs the ownership fraction the
// record implied as of the given ledger position.
func (k *Keeper) effectiveOwnershipAtIndex(ctx context.Context, record types.IssuanceRecord, index uint64) (math.Int, error) {
	if record.IsZero() {
		return math.ZeroInt(), nil
	}

	target, err := k.GetDebtLedgerEntry(ctx, index)
	if err != nil {
		return math.ZeroInt(), err
	}
	entry, err := k.GetDebtLedgerEntry(ctx, record.DebtEntryIndex)
	if err != nil {
		return math.ZeroInt(), err
	}
	if target.IsZero() || entry.IsZero() {
		// A zero entry means the pool was fully unwound at that point;
		// every ownership fraction is zero across the discontinuity.
		return math.ZeroInt(), nil
	}

	adjustment := types.PreciseDiv(target, entry)
	return types.PreciseMul(adjustment, types.DecToPrecise(record.InitialOwnership)), nil
}

// DebtBalanceOf returns the account's share of the total system debt in
// base synth units. The high precision ownership fraction is applied to
// the total and truncated only in that final step.
func (k *Keeper) DebtBalanceOf(ctx context.Context, account []byte) (math.Int, error) {
	record, err := k.GetIssuanceRecord(ctx, account)
	if err != nil {
		return math.ZeroInt(), err
	}
	if record.IsZero() {
		return math.ZeroInt(), nil
	}

	ownership, err := k.currentOwnership(ctx, record)
	if err != nil {
		return math.ZeroInt(), err
	}
	if ownership.IsZero() {
		return math.ZeroInt(), nil
	}

	totalDebt, err := k.GetTotalDebt(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	return types.PreciseMulInt(ownership, totalDebt), nil
}

// CollateralValue prices the account's locked collateral in base synth
// units using the oracle rate for the collateral denom.
func (k *Keeper) CollateralValue(ctx context.Context, account []byte) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	collateral, err := k.GetCollateral(ctx, account)
	if err != nil {
		return math.ZeroInt(), err
	}
	if collateral.IsZero() {
		return math.ZeroInt(), nil
	}

	rate, err := k.oracle.RateForCurrency(ctx, params.CollateralDenom)
	if err != nil {
		return math.ZeroInt(), sdkerrors.Wrap(err, "unable to fetch collateral rate")
	}

	return rate.MulInt(collateral).TruncateInt(), nil
}

// CollateralisationRatio returns locked collateral value divided by owed
// debt value. A zero ratio means the account has no outstanding debt.
func (k *Keeper) CollateralisationRatio(ctx context.Context, account []byte) (math.LegacyDec, error) {
	debt, err := k.DebtBalanceOf(ctx, account)
	if err != nil {
		return math.LegacyZeroDec(), err
	}
	if debt.IsZero() {
		return math.LegacyZeroDec(), nil
	}

	value, err := k.CollateralValue(ctx, account)
	if err != nil {
		return math.LegacyZeroDec(), err
	}

	return math.LegacyNewDecFromInt(value).QuoInt(debt), nil
}

// MaxIssuableSynths returns the total amount of synths the account's
// collateral can back at the configured issuance ratio.
func (k *Keeper) MaxIssuableSynths(ctx context.Context, account []byte) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	value, err := k.CollateralValue(ctx, account)
	if err != nil {
		return math.ZeroInt(), err
	}

	return params.IssuanceRatio.MulInt(value).TruncateInt(), nil
}

// RemainingIssuableSynths returns how many more synths the account can
// mint before reaching its issuance limit, alongside the limit itself.
func (k *Keeper) RemainingIssuableSynths(ctx context.Context, account []byte) (remaining math.Int, max math.Int, err error) {
	max, err = k.MaxIssuableSynths(ctx, account)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	debt, err := k.DebtBalanceOf(ctx, account)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	if debt.GTE(max) {
		return math.ZeroInt(), max, nil
	}
	return max.Sub(debt), max, nil
}

// TransferableCollateral returns the portion of the account's collateral
// that is not currently backing debt and may be withdrawn.
func (k *Keeper) TransferableCollateral(ctx context.Context, account []byte) (math.Int, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	collateral, err := k.GetCollateral(ctx, account)
	if err != nil {
		return math.ZeroInt(), err
	}

	debt, err := k.DebtBalanceOf(ctx, account)
	if err != nil {
		return math.ZeroInt(), err
	}
	if debt.IsZero() {
		return collateral, nil
	}

	rate, err := k.oracle.RateForCurrency(ctx, params.CollateralDenom)
	if err != nil {
		return math.ZeroInt(), sdkerrors.Wrap(err, "unable to fetch collateral rate")
	}
	if !rate.IsPositive() {
		return math.ZeroInt(), nil
	}

	// locked = debt / (rate * issuanceRatio), rounded up so the backing
	// requirement is never understated.
	locked := math.LegacyNewDecFromInt(debt).Quo(rate.Mul(params.IssuanceRatio)).Ceil().TruncateInt()
	if locked.GTE(collateral) {
		return math.ZeroInt(), nil
	}
	return collateral.Sub(locked), nil
}

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
	sdk "github.com/cosmos/cosmos-sdk/types"

	"synthpool.meridian.xyz/types"
)

// EffectiveDebtRatioForPeriod returns the ownership fraction the account
// holds for the given window slot: the live fraction for the open period,
// or the fraction in effect when the claimable period closed.
func (k *Keeper) EffectiveDebtRatioForPeriod(ctx context.Context, account []byte, period uint64) (math.LegacyDec, error) {
	switch period {
	case types.CurrentFeePeriod:
		record, err := k.GetIssuanceRecord(ctx, account)
		if err != nil {
			return math.LegacyZeroDec(), err
		}
		ownership, err := k.currentOwnership(ctx, record)
		if err != nil {
			return math.LegacyZeroDec(), err
		}
		return types.PreciseToDec(ownership), nil
	case types.ClaimableFeePeriod:
		ownership, err := k.claimablePeriodOwnership(ctx, account)
		if err != nil {
			return math.LegacyZeroDec(), err
		}
		return types.PreciseToDec(ownership), nil
	default:
		return math.LegacyZeroDec(), sdkerrors.Wrapf(types.ErrInvalidRequest, "unknown fee period slot %d", period)
	}
}

// claimablePeriodOwnership reconstructs, in the precise unit, the
// ownership fraction the account held when the claimable period closed.
// The closing index is the entry immediately before the open period's
// starting index; mutations the account made within the open period do
// not count.
func (k *Keeper) claimablePeriodOwnership(ctx context.Context, account []byte) (math.Int, error) {
	current, err := k.GetFeePeriod(ctx, types.CurrentFeePeriod)
	if err != nil {
		return math.ZeroInt(), err
	}
	if current.StartingDebtIndex == 0 {
		// No mint ever happened before the open period started.
		return math.ZeroInt(), nil
	}
	closingIndex := current.StartingDebtIndex - 1

	record, err := k.applicableIssuanceRecord(ctx, account, closingIndex)
	if err != nil {
		return math.ZeroInt(), err
	}

	return k.effectiveOwnershipAtIndex(ctx, record, closingIndex)
}

// claimShares computes the account's fee and reward entitlement for the
// claimable period. The high precision fraction is applied to each total
// and truncated once, then capped at the period's unclaimed remainder so
// claimed never exceeds distributable.
func (k *Keeper) claimShares(ctx context.Context, account []byte, period types.FeePeriod) (fees math.Int, rewards math.Int, err error) {
	ownership, err := k.claimablePeriodOwnership(ctx, account)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if ownership.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), nil
	}

	fees = math.MinInt(types.PreciseMulInt(ownership, period.FeesToDistribute), period.UnclaimedFees())
	rewards = math.MinInt(types.PreciseMulInt(ownership, period.RewardsToDistribute), period.UnclaimedRewards())
	return fees, rewards, nil
}

// FeesAvailable returns the fee and reward amounts the account could
// claim right now, without mutating any state.
func (k *Keeper) FeesAvailable(ctx context.Context, account []byte) (fees math.Int, rewards math.Int, err error) {
	period, err := k.GetFeePeriod(ctx, types.ClaimableFeePeriod)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if period.Id == 0 {
		return math.ZeroInt(), math.ZeroInt(), nil
	}

	lastClaimed, err := k.GetLastClaimedPeriod(ctx, account)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if lastClaimed >= period.Id {
		return math.ZeroInt(), math.ZeroInt(), nil
	}

	return k.claimShares(ctx, account, period)
}

// Claim settles the account's share of the claimable period: shares are
// computed from the historical ownership snapshot, recorded against the
// period's claimed counters, and paid out from the fee collector. All
// preconditions are checked before the first state write.
func (k *Keeper) Claim(ctx context.Context, account []byte) (feePaid math.Int, rewardPaid math.Int, err error) {
	if err := k.EnsureFeeWindow(ctx); err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	period, err := k.GetFeePeriod(ctx, types.ClaimableFeePeriod)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if period.Id == 0 {
		return math.ZeroInt(), math.ZeroInt(), sdkerrors.Wrap(types.ErrNothingToClaim, "no period has closed yet")
	}

	lastClaimed, err := k.GetLastClaimedPeriod(ctx, account)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if lastClaimed >= period.Id {
		return math.ZeroInt(), math.ZeroInt(), sdkerrors.Wrapf(types.ErrAlreadyClaimed, "period %d", period.Id)
	}

	debt, err := k.DebtBalanceOf(ctx, account)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if debt.IsPositive() {
		params, err := k.GetParams(ctx)
		if err != nil {
			return math.ZeroInt(), math.ZeroInt(), err
		}
		ratio, err := k.CollateralisationRatio(ctx, account)
		if err != nil {
			return math.ZeroInt(), math.ZeroInt(), err
		}
		if ratio.LT(params.MinimumClaimRatio()) {
			return math.ZeroInt(), math.ZeroInt(), sdkerrors.Wrapf(
				types.ErrCollateralRatioTooLow,
				"ratio %s below minimum %s", ratio, params.MinimumClaimRatio(),
			)
		}
	}

	fees, rewards, err := k.claimShares(ctx, account, period)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}
	if fees.IsZero() && rewards.IsZero() {
		return math.ZeroInt(), math.ZeroInt(), sdkerrors.Wrapf(types.ErrNothingToClaim, "period %d", period.Id)
	}

	period.FeesClaimed = period.FeesClaimed.Add(fees)
	period.RewardsClaimed = period.RewardsClaimed.Add(rewards)
	if err := k.SetFeePeriod(ctx, types.ClaimableFeePeriod, period); err != nil {
		return math.ZeroInt(), math.ZeroInt(), sdkerrors.Wrap(err, "unable to store claimable fee period")
	}

	if err := k.LastClaimedPeriod.Set(ctx, account, period.Id); err != nil {
		return math.ZeroInt(), math.ZeroInt(), sdkerrors.Wrap(err, "unable to store last claimed period")
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return math.ZeroInt(), math.ZeroInt(), err
	}

	if fees.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(k.denom, fees))
		if err := k.bank.SendCoinsFromModuleToAccount(ctx, types.FeeCollectorName, sdk.AccAddress(account), coins); err != nil {
			return math.ZeroInt(), math.ZeroInt(), sdkerrors.Wrap(err, "unable to pay out fees")
		}
	}
	if rewards.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(params.CollateralDenom, rewards))
		if err := k.bank.SendCoinsFromModuleToAccount(ctx, types.FeeCollectorName, sdk.AccAddress(account), coins); err != nil {
			return math.ZeroInt(), math.ZeroInt(), sdkerrors.Wrap(err, "unable to pay out rewards")
		}
	}

	return fees, rewards, nil
}

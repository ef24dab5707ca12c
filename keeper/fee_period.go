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
	"errors"
	"time"

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"synthpool.meridian.xyz/types"
)

// GetFeePeriod returns the fee period stored in the given window slot.
// An unset slot decodes to a zero period with id zero.
func (k *Keeper) GetFeePeriod(ctx context.Context, slot uint64) (types.FeePeriod, error) {
	period, err := k.FeePeriods.Get(ctx, slot)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.NewFeePeriod(0, 0, time.Time{}), nil
		}
		return types.FeePeriod{}, err
	}

	return period, nil
}

// SetFeePeriod persists a fee period into the given window slot.
func (k *Keeper) SetFeePeriod(ctx context.Context, slot uint64, period types.FeePeriod) error {
	return k.FeePeriods.Set(ctx, slot, period)
}

// EnsureFeeWindow lazily opens the very first accruing period. Mutating
// entry points call this before touching the window so the open period
// is always anchored at a real start time.
func (k *Keeper) EnsureFeeWindow(ctx context.Context) error {
	has, err := k.FeePeriods.Has(ctx, types.CurrentFeePeriod)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	length, err := k.GetDebtLedgerLength(ctx)
	if err != nil {
		return err
	}

	now := k.header.GetHeaderInfo(ctx).Time
	if err := k.SetFeePeriod(ctx, types.CurrentFeePeriod, types.NewFeePeriod(1, length, now)); err != nil {
		return sdkerrors.Wrap(err, "unable to open initial fee period")
	}
	return k.SetFeePeriod(ctx, types.ClaimableFeePeriod, types.NewFeePeriod(0, 0, time.Time{}))
}

// RecordFees credits collected fees and rewards to the open period.
func (k *Keeper) RecordFees(ctx context.Context, fees, rewards math.Int) error {
	if err := k.EnsureFeeWindow(ctx); err != nil {
		return err
	}

	current, err := k.GetFeePeriod(ctx, types.CurrentFeePeriod)
	if err != nil {
		return err
	}

	current.FeesToDistribute = current.FeesToDistribute.Add(fees)
	current.RewardsToDistribute = current.RewardsToDistribute.Add(rewards)

	return k.SetFeePeriod(ctx, types.CurrentFeePeriod, current)
}

// ClosePeriod rolls the fee window forward: the open period becomes
// claimable, the evicted period's unclaimed remainder is folded into it
// so nothing is stranded, and a fresh accruing period opens anchored at
// the current ledger length.
func (k *Keeper) ClosePeriod(ctx context.Context) (closedId uint64, newId uint64, err error) {
	if err := k.EnsureFeeWindow(ctx); err != nil {
		return 0, 0, err
	}

	params, err := k.GetParams(ctx)
	if err != nil {
		return 0, 0, err
	}

	current, err := k.GetFeePeriod(ctx, types.CurrentFeePeriod)
	if err != nil {
		return 0, 0, err
	}
	evicted, err := k.GetFeePeriod(ctx, types.ClaimableFeePeriod)
	if err != nil {
		return 0, 0, err
	}

	now := k.header.GetHeaderInfo(ctx).Time
	if now.Before(current.StartTime.Add(params.MinFeePeriodDuration)) {
		return 0, 0, sdkerrors.Wrapf(
			types.ErrTooEarlyToClose,
			"period %d opened at %s, minimum duration %s",
			current.Id, current.StartTime, params.MinFeePeriodDuration,
		)
	}

	current.FeesToDistribute = current.FeesToDistribute.Add(evicted.UnclaimedFees())
	current.RewardsToDistribute = current.RewardsToDistribute.Add(evicted.UnclaimedRewards())

	if err := k.SetFeePeriod(ctx, types.ClaimableFeePeriod, current); err != nil {
		return 0, 0, sdkerrors.Wrap(err, "unable to store claimable fee period")
	}

	length, err := k.GetDebtLedgerLength(ctx)
	if err != nil {
		return 0, 0, err
	}

	next := types.NewFeePeriod(current.Id+1, length, now)
	if err := k.SetFeePeriod(ctx, types.CurrentFeePeriod, next); err != nil {
		return 0, 0, sdkerrors.Wrap(err, "unable to open fee period")
	}

	k.logger.Info(
		"fee period closed",
		"closed_period", current.Id,
		"new_period", next.Id,
		"fees_rolled", evicted.UnclaimedFees().String(),
		"rewards_rolled", evicted.UnclaimedRewards().String(),
	)

	return current.Id, next.Id, nil
}


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
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	"synthpool.meridian.xyz/types"
)

// GetParams returns the stored parameter set, falling back to defaults
// when none have been persisted yet.
func (k *Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.DefaultParams(), nil
		}
		return types.Params{}, err
	}

	return params, nil
}

// SetParams persists the supplied parameter set.
func (k *Keeper) SetParams(ctx context.Context, params types.Params) error {
	return k.Params.Set(ctx, params)
}

// GetTotalDebt returns the aggregate system debt in base synth units.
func (k *Keeper) GetTotalDebt(ctx context.Context) (math.Int, error) {
	total, err := k.TotalDebt.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.ZeroInt(), err
	}

	return total, nil
}

// GetTotalIssuerCount returns the number of accounts holding an open
// debt position.
func (k *Keeper) GetTotalIssuerCount(ctx context.Context) (uint64, error) {
	count, err := k.TotalIssuerCount.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return count, nil
}

// IncrementTotalIssuerCount bumps the open-position statistic.
func (k *Keeper) IncrementTotalIssuerCount(ctx context.Context) error {
	count, err := k.GetTotalIssuerCount(ctx)
	if err != nil {
		return err
	}
	return k.TotalIssuerCount.Set(ctx, count+1)
}

// DecrementTotalIssuerCount lowers the open-position statistic.
func (k *Keeper) DecrementTotalIssuerCount(ctx context.Context) error {
	count, err := k.GetTotalIssuerCount(ctx)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("total issuer count cannot go negative")
	}
	return k.TotalIssuerCount.Set(ctx, count-1)
}

// GetIssuanceRecord returns the account's current issuance record or a
// closed zero record anchored at the current ledger length when the
// account has never minted.
func (k *Keeper) GetIssuanceRecord(ctx context.Context, account []byte) (types.IssuanceRecord, error) {
	record, err := k.IssuanceRecords.Get(ctx, account)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			length, err := k.GetDebtLedgerLength(ctx)
			if err != nil {
				return types.IssuanceRecord{}, err
			}
			return types.ClosedIssuanceRecord(length), nil
		}
		return types.IssuanceRecord{}, err
	}

	return record, nil
}

// GetCollateral returns the account's locked collateral balance.
func (k *Keeper) GetCollateral(ctx context.Context, account []byte) (math.Int, error) {
	collateral, err := k.Collateral.Get(ctx, account)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.ZeroInt(), err
	}

	return collateral, nil
}

// GetLastIssueTime returns the unix timestamp of the account's most
// recent mint, or zero when it has never minted.
func (k *Keeper) GetLastIssueTime(ctx context.Context, account []byte) (int64, error) {
	ts, err := k.LastIssueTime.Get(ctx, account)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return ts, nil
}

// GetLastClaimedPeriod returns the id of the last fee period the account
// claimed, or zero when it has never claimed.
func (k *Keeper) GetLastClaimedPeriod(ctx context.Context, account []byte) (uint64, error) {
	id, err := k.LastClaimedPeriod.Get(ctx, account)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return id, nil
}

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

	"cosmossdk.io/collections"
	sdkerrors "cosmossdk.io/errors"
	"cosmossdk.io/math"

	"synthpool.meridian.xyz/types"
)

// addToDebtRegister records a mint against the shared pool. It writes the
// account's new issuance record anchored at the ledger position about to
// be appended, then appends the retention factor the mint imposes on
// every other holder. An account's stored ownership is always computed
// directly from the amounts involved, never derived from the ledger, so
// rounding on its own entry does not compound.
func (k *Keeper) addToDebtRegister(ctx context.Context, account []byte, amount, existingDebt, totalDebt math.Int) error {
	newTotal := totalDebt.Add(amount)

	// Fraction of the pool the freshly minted debt represents, and the
	// complementary retention factor applied to everyone else.
	mintOwnership := types.PreciseDiv(amount, newTotal)
	delta := types.PreciseUnit().Sub(mintOwnership)

	if existingDebt.IsZero() {
		if err := k.IncrementTotalIssuerCount(ctx); err != nil {
			return sdkerrors.Wrap(err, "unable to increment total issuer count")
		}
	}

	ownership := mintOwnership
	if !existingDebt.IsZero() {
		ownership = types.PreciseDiv(amount.Add(existingDebt), newTotal)
	}

	length, err := k.GetDebtLedgerLength(ctx)
	if err != nil {
		return err
	}

	record := types.NewIssuanceRecord(types.PreciseToDec(ownership), length)
	if err := k.IssuanceRecords.Set(ctx, account, record); err != nil {
		return sdkerrors.Wrap(err, "unable to store issuance record")
	}
	if err := k.recordIssuanceSnapshot(ctx, account, record); err != nil {
		return err
	}

	if length == 0 {
		return k.AppendDebtLedgerEntry(ctx, types.PreciseUnit())
	}

	last, err := k.GetLastDebtLedgerEntry(ctx)
	if err != nil {
		return err
	}
	if last.IsZero() {
		// The pool was previously emptied and the ledger's running
		// product collapsed to zero. Every account's balance is zero at
		// this point, so the mint opens a fresh ledger epoch.
		return k.AppendDebtLedgerEntry(ctx, types.PreciseUnit())
	}

	return k.AppendDebtLedgerEntry(ctx, types.PreciseMul(last, delta))
}

// removeFromDebtRegister records a burn against the shared pool. The
// caller guarantees amount <= existingDebt and existingDebt <= totalDebt.
func (k *Keeper) removeFromDebtRegister(ctx context.Context, account []byte, amount, existingDebt, totalDebt math.Int) error {
	newTotal := totalDebt.Sub(amount)

	length, err := k.GetDebtLedgerLength(ctx)
	if err != nil {
		return err
	}

	var record types.IssuanceRecord
	if amount.GTE(existingDebt) {
		record = types.ClosedIssuanceRecord(length)
		if err := k.DecrementTotalIssuerCount(ctx); err != nil {
			return sdkerrors.Wrap(err, "unable to decrement total issuer count")
		}
	} else {
		residual := types.PreciseDiv(existingDebt.Sub(amount), newTotal)
		record = types.NewIssuanceRecord(types.PreciseToDec(residual), length)
	}

	if err := k.IssuanceRecords.Set(ctx, account, record); err != nil {
		return sdkerrors.Wrap(err, "unable to store issuance record")
	}
	if err := k.recordIssuanceSnapshot(ctx, account, record); err != nil {
		return err
	}

	last, err := k.GetLastDebtLedgerEntry(ctx)
	if err != nil {
		return err
	}

	if newTotal.IsZero() {
		// The pool is fully unwound. There is no remaining debt to
		// concentrate, so instead of dividing by zero the ledger's
		// contribution is zeroed going forward.
		return k.AppendDebtLedgerEntry(ctx, math.ZeroInt())
	}

	delta := types.PreciseUnit().Add(types.PreciseDiv(amount, newTotal))
	return k.AppendDebtLedgerEntry(ctx, types.PreciseMul(last, delta))
}

// recordIssuanceSnapshot mirrors the account's freshly written issuance
// record into the fee window's per-account snapshot slots. Slot zero
// always holds the newest record; a record from an earlier period is
// shifted to slot one so claims can still see the ownership that was in
// effect when the claimable period closed.
func (k *Keeper) recordIssuanceSnapshot(ctx context.Context, account []byte, record types.IssuanceRecord) error {
	current, err := k.GetFeePeriod(ctx, types.CurrentFeePeriod)
	if err != nil {
		return err
	}

	existing, err := k.IssuanceSnapshots.Get(ctx, collections.Join(account, types.CurrentFeePeriod))
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			return sdkerrors.Wrap(err, "unable to read issuance snapshot")
		}
		return k.IssuanceSnapshots.Set(ctx, collections.Join(account, types.CurrentFeePeriod), record)
	}

	if existing.DebtEntryIndex < current.StartingDebtIndex {
		// The previous snapshot predates the open period; preserve it as
		// the claimable-period snapshot before overwriting.
		if err := k.IssuanceSnapshots.Set(ctx, collections.Join(account, types.ClaimableFeePeriod), existing); err != nil {
			return sdkerrors.Wrap(err, "unable to shift issuance snapshot")
		}
	}

	return k.IssuanceSnapshots.Set(ctx, collections.Join(account, types.CurrentFeePeriod), record)
}

// applicableIssuanceRecord returns the most recent snapshot taken at or
// before the supplied ledger index, or a closed record when the account
// had no position then.
func (k *Keeper) applicableIssuanceRecord(ctx context.Context, account []byte, index uint64) (types.IssuanceRecord, error) {
	for _, slot := range []uint64{types.CurrentFeePeriod, types.ClaimableFeePeriod} {
		snapshot, err := k.IssuanceSnapshots.Get(ctx, collections.Join(account, slot))
		if err != nil {
			if errors.Is(err, collections.ErrNotFound) {
				continue
			}
			return types.IssuanceRecord{}, sdkerrors.Wrap(err, "unable to read issuance snapshot")
		}
		if snapshot.DebtEntryIndex <= index {
			return snapshot, nil
		}
	}

	return types.ClosedIssuanceRecord(index), nil
}

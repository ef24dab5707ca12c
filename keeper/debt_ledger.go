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

// The debt ledger is an append-only sequence of precise-unit values.
// Each entry is the previous entry multiplied by the dilution factor of
// the mutation that produced it, so the ratio of any two entries is the
// compounded ownership adjustment between those two points in history.
// Entries are never rewritten and the ledger never shrinks.

// GetDebtLedgerLength returns the number of ledger entries.
func (k *Keeper) GetDebtLedgerLength(ctx context.Context) (uint64, error) {
	length, err := k.DebtLedgerLength.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return length, nil
}

// GetDebtLedgerEntry returns the entry at the given index.
func (k *Keeper) GetDebtLedgerEntry(ctx context.Context, index uint64) (math.Int, error) {
	length, err := k.GetDebtLedgerLength(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	if index >= length {
		return math.ZeroInt(), sdkerrors.Wrapf(types.ErrIndexOutOfRange, "index %d, length %d", index, length)
	}

	entry, err := k.DebtLedger.Get(ctx, index)
	if err != nil {
		return math.ZeroInt(), sdkerrors.Wrapf(err, "unable to read debt ledger entry %d", index)
	}

	return entry, nil
}

// GetLastDebtLedgerEntry returns the most recently appended entry.
func (k *Keeper) GetLastDebtLedgerEntry(ctx context.Context) (math.Int, error) {
	length, err := k.GetDebtLedgerLength(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}
	if length == 0 {
		return math.ZeroInt(), types.ErrEmptyLedger
	}

	return k.GetDebtLedgerEntry(ctx, length-1)
}

// AppendDebtLedgerEntry adds a new entry at the tail of the ledger. The
// value must be non-negative; negative values indicate an arithmetic
// fault upstream and are fatal.
func (k *Keeper) AppendDebtLedgerEntry(ctx context.Context, value math.Int) error {
	if value.IsNil() || value.IsNegative() {
		return sdkerrors.Wrapf(types.ErrInvalidRequest, "invalid debt ledger value %s", value)
	}

	length, err := k.GetDebtLedgerLength(ctx)
	if err != nil {
		return err
	}

	if err := k.DebtLedger.Set(ctx, length, value); err != nil {
		return sdkerrors.Wrapf(err, "unable to append debt ledger entry %d", length)
	}

	return k.DebtLedgerLength.Set(ctx, length+1)
}

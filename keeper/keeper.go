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

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/header"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"synthpool.meridian.xyz/types"
)

// Keeper owns the debt pool state: the append-only debt ledger, the
// per-account issuance registry, and the two slot fee period window.
// Every mutation flows through the registrar and window entry points so
// the ledger append order is the authoritative history.
type Keeper struct {
	denom     string
	authority string

	store store.KVStoreService

	logger   log.Logger
	header   header.Service
	event    event.Service
	address  address.Codec
	account  types.AccountKeeper
	bank     types.BankKeeper
	oracle   types.OracleKeeper
	exchange types.ExchangeKeeper

	Paused           collections.Item[bool]
	Params           collections.Item[types.Params]
	TotalDebt        collections.Item[math.Int]
	TotalIssuerCount collections.Item[uint64]

	DebtLedger       collections.Map[uint64, math.Int]
	DebtLedgerLength collections.Item[uint64]
	IssuanceRecords  collections.Map[[]byte, types.IssuanceRecord]

	// IssuanceSnapshots keeps, per account, the issuance record in effect
	// for each window slot so that claims can reconstruct the ownership a
	// historical period closed with.
	IssuanceSnapshots collections.Map[collections.Pair[[]byte, uint64], types.IssuanceRecord]

	FeePeriods        collections.Map[uint64, types.FeePeriod]
	LastClaimedPeriod collections.Map[[]byte, uint64]

	Collateral    collections.Map[[]byte, math.Int]
	LastIssueTime collections.Map[[]byte, int64]
}

func NewKeeper(
	denom string,
	authority string,
	store store.KVStoreService,
	logger log.Logger,
	header header.Service,
	event event.Service,
	address address.Codec,
	account types.AccountKeeper,
	bank types.BankKeeper,
	oracle types.OracleKeeper,
	exchange types.ExchangeKeeper,
) *Keeper {
	builder := collections.NewSchemaBuilder(store)

	keeper := &Keeper{
		denom:     denom,
		authority: authority,

		store: store,

		logger:   logger.With("module", types.ModuleName),
		header:   header,
		event:    event,
		address:  address,
		account:  account,
		bank:     bank,
		oracle:   oracle,
		exchange: exchange,

		Paused:           collections.NewItem(builder, types.PausedKey, "paused", collections.BoolValue),
		Params:           collections.NewItem(builder, types.ParamsKey, "params", types.JSONValue[types.Params]("params")),
		TotalDebt:        collections.NewItem(builder, types.TotalDebtKey, "total_debt", sdk.IntValue),
		TotalIssuerCount: collections.NewItem(builder, types.TotalIssuerCountKey, "total_issuer_count", collections.Uint64Value),

		DebtLedger:       collections.NewMap(builder, types.DebtLedgerPrefix, "debt_ledger", collections.Uint64Key, sdk.IntValue),
		DebtLedgerLength: collections.NewItem(builder, types.DebtLedgerLengthKey, "debt_ledger_length", collections.Uint64Value),
		IssuanceRecords:  collections.NewMap(builder, types.IssuanceRecordPrefix, "issuance_records", collections.BytesKey, types.JSONValue[types.IssuanceRecord]("issuance_record")),

		IssuanceSnapshots: collections.NewMap(builder, types.IssuanceSnapshotPrefix, "issuance_snapshots", collections.PairKeyCodec(collections.BytesKey, collections.Uint64Key), types.JSONValue[types.IssuanceRecord]("issuance_snapshot")),

		FeePeriods:        collections.NewMap(builder, types.FeePeriodPrefix, "fee_periods", collections.Uint64Key, types.JSONValue[types.FeePeriod]("fee_period")),
		LastClaimedPeriod: collections.NewMap(builder, types.LastClaimedPeriodPrefix, "last_claimed_period", collections.BytesKey, collections.Uint64Value),

		Collateral:    collections.NewMap(builder, types.CollateralPrefix, "collateral", collections.BytesKey, sdk.IntValue),
		LastIssueTime: collections.NewMap(builder, types.LastIssueTimestampPrefix, "last_issue_time", collections.BytesKey, collections.Int64Value),
	}

	_, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return keeper
}

// SetBankKeeper overwrites the bank keeper used in this module.
func (k *Keeper) SetBankKeeper(bank types.BankKeeper) {
	k.bank = bank
}

// SetOracleKeeper overwrites the oracle keeper used in this module.
func (k *Keeper) SetOracleKeeper(oracle types.OracleKeeper) {
	k.oracle = oracle
}

// SetExchangeKeeper overwrites the exchange keeper used in this module.
func (k *Keeper) SetExchangeKeeper(exchange types.ExchangeKeeper) {
	k.exchange = exchange
}

// GetDenom returns the configured synthetic currency denomination.
func (k *Keeper) GetDenom() string {
	return k.denom
}

// GetAuthority returns the configured module authority.
func (k *Keeper) GetAuthority() string {
	return k.authority
}

// GetPaused reports the module pause switch; a missing item means the
// module is live.
func (k *Keeper) GetPaused(ctx context.Context) bool {
	paused, err := k.Paused.Get(ctx)
	if err != nil {
		return false
	}
	return paused
}

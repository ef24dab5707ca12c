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

package types

import authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

const ModuleName = "synthpool"

// FeeCollectorName is the sub-account that custodies recorded fees and
// rewards until they are claimed.
const FeeCollectorName = "synthpool/fee_collector"

var (
	ModuleAddress       = authtypes.NewModuleAddress(ModuleName)
	FeeCollectorAddress = authtypes.NewModuleAddress(FeeCollectorName)
)

var (
	ParamsKey                = []byte("params")
	PausedKey                = []byte("paused")
	TotalDebtKey             = []byte("total_debt")
	TotalIssuerCountKey      = []byte("total_issuer_count")
	DebtLedgerPrefix         = []byte("debt_ledger/")
	DebtLedgerLengthKey      = []byte("debt_ledger_length")
	IssuanceRecordPrefix     = []byte("issuance_record/")
	IssuanceSnapshotPrefix   = []byte("issuance_snapshot/")
	FeePeriodPrefix          = []byte("fee_period/")
	LastClaimedPeriodPrefix  = []byte("last_claimed_period/")
	CollateralPrefix         = []byte("collateral/")
	LastIssueTimestampPrefix = []byte("last_issue_timestamp/")
)

// Fee period window slots. Slot zero is always the open, accruing period
// and slot one the most recently closed, claimable one.
const (
	CurrentFeePeriod   = uint64(0)
	ClaimableFeePeriod = uint64(1)

	FeePeriodWindowLength = uint64(2)
)

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

import (
	"time"

	"cosmossdk.io/math"
)

// IssuanceRecord captures an account's position in the shared debt pool:
// the ownership fraction it held immediately after its last mint or burn,
// and the debt ledger index that mutation produced. DebtEntryIndex always
// refers to the ledger entry whose value normalizes every dilution event
// the account has experienced since.
type IssuanceRecord struct {
	InitialOwnership math.LegacyDec `json:"initial_ownership"`
	DebtEntryIndex   uint64         `json:"debt_entry_index"`
}

// IsZero reports whether the record describes a closed position.
func (r IssuanceRecord) IsZero() bool {
	return r.InitialOwnership.IsNil() || r.InitialOwnership.IsZero()
}

// NewIssuanceRecord returns a record for a freshly computed ownership
// fraction at the given ledger index.
func NewIssuanceRecord(ownership math.LegacyDec, index uint64) IssuanceRecord {
	return IssuanceRecord{InitialOwnership: ownership, DebtEntryIndex: index}
}

// ClosedIssuanceRecord returns the record written when an account burns
// its entire debt: zero ownership anchored at the current ledger length.
func ClosedIssuanceRecord(ledgerLength uint64) IssuanceRecord {
	return IssuanceRecord{InitialOwnership: math.LegacyZeroDec(), DebtEntryIndex: ledgerLength}
}

// FeePeriod is one slot of the two period fee window. Slot zero accrues,
// slot one is claimable. Claimed totals never exceed the distributable
// totals, and the unclaimed remainder of an evicted period is folded into
// the incoming claimable period on rollover.
type FeePeriod struct {
	Id                  uint64    `json:"id"`
	StartingDebtIndex   uint64    `json:"starting_debt_index"`
	StartTime           time.Time `json:"start_time"`
	FeesToDistribute    math.Int  `json:"fees_to_distribute"`
	FeesClaimed         math.Int  `json:"fees_claimed"`
	RewardsToDistribute math.Int  `json:"rewards_to_distribute"`
	RewardsClaimed      math.Int  `json:"rewards_claimed"`
}

// NewFeePeriod opens an accruing period anchored at the supplied ledger
// position with zeroed counters.
func NewFeePeriod(id uint64, startingDebtIndex uint64, startTime time.Time) FeePeriod {
	return FeePeriod{
		Id:                  id,
		StartingDebtIndex:   startingDebtIndex,
		StartTime:           startTime,
		FeesToDistribute:    math.ZeroInt(),
		FeesClaimed:         math.ZeroInt(),
		RewardsToDistribute: math.ZeroInt(),
		RewardsClaimed:      math.ZeroInt(),
	}
}

// UnclaimedFees returns the fees recorded for the period that no account
// has claimed yet.
func (p FeePeriod) UnclaimedFees() math.Int {
	if p.FeesToDistribute.IsNil() {
		return math.ZeroInt()
	}
	if p.FeesClaimed.IsNil() {
		return p.FeesToDistribute
	}
	return p.FeesToDistribute.Sub(p.FeesClaimed)
}

// UnclaimedRewards returns the rewards recorded for the period that no
// account has claimed yet.
func (p FeePeriod) UnclaimedRewards() math.Int {
	if p.RewardsToDistribute.IsNil() {
		return math.ZeroInt()
	}
	if p.RewardsClaimed.IsNil() {
		return p.RewardsToDistribute
	}
	return p.RewardsToDistribute.Sub(p.RewardsClaimed)
}

// Stats aggregates the pool-wide figures exposed by the stats query.
type Stats struct {
	TotalDebt        math.Int `json:"total_debt"`
	TotalIssuerCount uint64   `json:"total_issuer_count"`
	DebtLedgerLength uint64   `json:"debt_ledger_length"`
}

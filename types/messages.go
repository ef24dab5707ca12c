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
	"context"

	"cosmossdk.io/math"
)

// MsgServer is the module's transaction surface. Every handler validates
// its preconditions in full before touching state, so a returned error
// always implies an unchanged store.
type MsgServer interface {
	DepositCollateral(ctx context.Context, msg *MsgDepositCollateral) (*MsgDepositCollateralResponse, error)
	WithdrawCollateral(ctx context.Context, msg *MsgWithdrawCollateral) (*MsgWithdrawCollateralResponse, error)
	Mint(ctx context.Context, msg *MsgMint) (*MsgMintResponse, error)
	MintMax(ctx context.Context, msg *MsgMintMax) (*MsgMintResponse, error)
	Burn(ctx context.Context, msg *MsgBurn) (*MsgBurnResponse, error)
	ClosePeriod(ctx context.Context, msg *MsgClosePeriod) (*MsgClosePeriodResponse, error)
	Claim(ctx context.Context, msg *MsgClaim) (*MsgClaimResponse, error)
	RecordFees(ctx context.Context, msg *MsgRecordFees) (*MsgRecordFeesResponse, error)
	UpdateParams(ctx context.Context, msg *MsgUpdateParams) (*MsgUpdateParamsResponse, error)
	SetPaused(ctx context.Context, msg *MsgSetPaused) (*MsgSetPausedResponse, error)
}

// MsgDepositCollateral locks collateral with the module account.
type MsgDepositCollateral struct {
	Depositor string   `json:"depositor"`
	Amount    math.Int `json:"amount"`
}

type MsgDepositCollateralResponse struct {
	TotalCollateral math.Int `json:"total_collateral"`
}

// MsgWithdrawCollateral releases collateral that is not backing debt.
type MsgWithdrawCollateral struct {
	Depositor string   `json:"depositor"`
	Amount    math.Int `json:"amount"`
}

type MsgWithdrawCollateralResponse struct {
	TotalCollateral math.Int `json:"total_collateral"`
}

// MsgMint issues synths against the signer's locked collateral.
type MsgMint struct {
	Minter string   `json:"minter"`
	Amount math.Int `json:"amount"`
}

// MsgMintMax issues the signer's full remaining issuable amount.
type MsgMintMax struct {
	Minter string `json:"minter"`
}

type MsgMintResponse struct {
	Minted       math.Int `json:"minted"`
	LedgerLength uint64   `json:"ledger_length"`
}

// MsgBurn retires synths and unwinds the signer's share of the debt pool.
// Amounts above the signer's outstanding debt are clamped, not rejected.
type MsgBurn struct {
	Burner string   `json:"burner"`
	Amount math.Int `json:"amount"`
}

type MsgBurnResponse struct {
	Burned       math.Int `json:"burned"`
	LedgerLength uint64   `json:"ledger_length"`
}

// MsgClosePeriod rolls the fee window forward. Callable by anyone once
// the minimum period duration has elapsed.
type MsgClosePeriod struct {
	Caller string `json:"caller"`
}

type MsgClosePeriodResponse struct {
	ClosedPeriodId uint64 `json:"closed_period_id"`
	NewPeriodId    uint64 `json:"new_period_id"`
}

// MsgClaim settles the signer's share of the claimable period.
type MsgClaim struct {
	Claimant string `json:"claimant"`
}

type MsgClaimResponse struct {
	FeePaid    math.Int `json:"fee_paid"`
	RewardPaid math.Int `json:"reward_paid"`
}

// MsgRecordFees credits collected protocol fees and rewards to the open
// period. The coins move from the fee authority into the fee collector.
type MsgRecordFees struct {
	Sender  string   `json:"sender"`
	Fees    math.Int `json:"fees"`
	Rewards math.Int `json:"rewards"`
}

type MsgRecordFeesResponse struct{}

// MsgUpdateParams replaces the module parameters.
type MsgUpdateParams struct {
	Authority string `json:"authority"`
	Params    Params `json:"params"`
}

type MsgUpdateParamsResponse struct{}

// MsgSetPaused toggles the module-wide pause switch.
type MsgSetPaused struct {
	Authority string `json:"authority"`
	Paused    bool   `json:"paused"`
}

type MsgSetPausedResponse struct{}

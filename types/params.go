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
	"fmt"
	"time"

	"cosmossdk.io/math"
)

// Params holds the module configuration. IssuanceRatio is the fraction of
// an account's collateral value that may be issued as synths; its inverse
// is the target collateralisation ratio. ClaimRatioBuffer is the tolerance
// below target within which fee claims are still permitted.
type Params struct {
	IssuanceRatio        math.LegacyDec `json:"issuance_ratio"`
	ClaimRatioBuffer     math.LegacyDec `json:"claim_ratio_buffer"`
	MinFeePeriodDuration time.Duration  `json:"min_fee_period_duration"`
	MinStakeDuration     time.Duration  `json:"min_stake_duration"`
	CollateralDenom      string         `json:"collateral_denom"`
	FeeAuthority         string         `json:"fee_authority"`
}

// DefaultParams returns the configuration used when the module is
// initialised without an explicit parameter set.
func DefaultParams() Params {
	return Params{
		IssuanceRatio:        math.LegacyMustNewDecFromStr("0.2"),
		ClaimRatioBuffer:     math.LegacyMustNewDecFromStr("0.1"),
		MinFeePeriodDuration: 24 * time.Hour,
		MinStakeDuration:     8 * time.Hour,
		CollateralDenom:      "umer",
		FeeAuthority:         "",
	}
}

// Validate checks the parameter set for internal consistency.
func (p Params) Validate() error {
	if p.IssuanceRatio.IsNil() || !p.IssuanceRatio.IsPositive() || p.IssuanceRatio.GT(math.LegacyOneDec()) {
		return fmt.Errorf("issuance ratio must be in (0, 1], got %s", p.IssuanceRatio)
	}
	if p.ClaimRatioBuffer.IsNil() || p.ClaimRatioBuffer.IsNegative() || p.ClaimRatioBuffer.GTE(math.LegacyOneDec()) {
		return fmt.Errorf("claim ratio buffer must be in [0, 1), got %s", p.ClaimRatioBuffer)
	}
	if p.MinFeePeriodDuration <= 0 {
		return fmt.Errorf("minimum fee period duration must be positive, got %s", p.MinFeePeriodDuration)
	}
	if p.MinStakeDuration < 0 {
		return fmt.Errorf("minimum stake duration cannot be negative, got %s", p.MinStakeDuration)
	}
	if p.CollateralDenom == "" {
		return fmt.Errorf("collateral denom cannot be empty")
	}
	return nil
}

// TargetCollateralisationRatio returns the inverse of the issuance ratio.
func (p Params) TargetCollateralisationRatio() math.LegacyDec {
	return math.LegacyOneDec().Quo(p.IssuanceRatio)
}

// MinimumClaimRatio returns the lowest collateralisation ratio at which
// fee claims are still accepted.
func (p Params) MinimumClaimRatio() math.LegacyDec {
	return p.TargetCollateralisationRatio().Mul(math.LegacyOneDec().Sub(p.ClaimRatioBuffer))
}

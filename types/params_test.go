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

package types_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synthpool.meridian.xyz/types"
)

func TestParamsValidate(t *testing.T) {
	require.NoError(t, types.DefaultParams().Validate())

	params := types.DefaultParams()
	params.IssuanceRatio = math.LegacyZeroDec()
	assert.Error(t, params.Validate())

	params = types.DefaultParams()
	params.IssuanceRatio = math.LegacyMustNewDecFromStr("1.5")
	assert.Error(t, params.Validate())

	params = types.DefaultParams()
	params.ClaimRatioBuffer = math.LegacyOneDec()
	assert.Error(t, params.Validate())

	params = types.DefaultParams()
	params.MinFeePeriodDuration = 0
	assert.Error(t, params.Validate())

	params = types.DefaultParams()
	params.CollateralDenom = ""
	assert.Error(t, params.Validate())
}

func TestParamsDerivedRatios(t *testing.T) {
	params := types.DefaultParams()

	// 0.2 issuance ratio means a 500% target collateralisation ratio,
	// and a 10% buffer lets claims through down to 450%.
	assert.Equal(t, math.LegacyNewDec(5), params.TargetCollateralisationRatio())
	assert.Equal(t, math.LegacyMustNewDecFromStr("4.5"), params.MinimumClaimRatio())
}

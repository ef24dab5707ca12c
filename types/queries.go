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

// QueryServer is the module's read-only surface. All queries are pure
// functions of committed state.
type QueryServer interface {
	DebtBalance(ctx context.Context, req *QueryDebtBalanceRequest) (*QueryDebtBalanceResponse, error)
	CollateralisationRatio(ctx context.Context, req *QueryCollateralisationRatioRequest) (*QueryCollateralisationRatioResponse, error)
	RemainingIssuable(ctx context.Context, req *QueryRemainingIssuableRequest) (*QueryRemainingIssuableResponse, error)
	FeesAvailable(ctx context.Context, req *QueryFeesAvailableRequest) (*QueryFeesAvailableResponse, error)
	EffectiveDebtRatio(ctx context.Context, req *QueryEffectiveDebtRatioRequest) (*QueryEffectiveDebtRatioResponse, error)
	FeePeriods(ctx context.Context, req *QueryFeePeriodsRequest) (*QueryFeePeriodsResponse, error)
	IssuanceRecord(ctx context.Context, req *QueryIssuanceRecordRequest) (*QueryIssuanceRecordResponse, error)
	Params(ctx context.Context, req *QueryParamsRequest) (*QueryParamsResponse, error)
	Stats(ctx context.Context, req *QueryStatsRequest) (*QueryStatsResponse, error)
}

type QueryDebtBalanceRequest struct {
	Account string `json:"account"`
}

type QueryDebtBalanceResponse struct {
	DebtBalance math.Int `json:"debt_balance"`
}

type QueryCollateralisationRatioRequest struct {
	Account string `json:"account"`
}

type QueryCollateralisationRatioResponse struct {
	Ratio math.LegacyDec `json:"ratio"`
}

type QueryRemainingIssuableRequest struct {
	Account string `json:"account"`
}

type QueryRemainingIssuableResponse struct {
	MaxIssuable math.Int `json:"max_issuable"`
	Remaining   math.Int `json:"remaining"`
}

type QueryFeesAvailableRequest struct {
	Account string `json:"account"`
}

type QueryFeesAvailableResponse struct {
	Fees    math.Int `json:"fees"`
	Rewards math.Int `json:"rewards"`
}

type QueryEffectiveDebtRatioRequest struct {
	Account string `json:"account"`
	Period  uint64 `json:"period"`
}

type QueryEffectiveDebtRatioResponse struct {
	Ratio math.LegacyDec `json:"ratio"`
}

type QueryFeePeriodsRequest struct{}

type QueryFeePeriodsResponse struct {
	Current   FeePeriod `json:"current"`
	Claimable FeePeriod `json:"claimable"`
}

type QueryIssuanceRecordRequest struct {
	Account string `json:"account"`
}

type QueryIssuanceRecordResponse struct {
	Record IssuanceRecord `json:"record"`
}

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryStatsRequest struct{}

type QueryStatsResponse struct {
	Stats Stats `json:"stats"`
}

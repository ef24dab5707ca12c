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

	"cosmossdk.io/errors"

	"synthpool.meridian.xyz/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

func (q queryServer) DebtBalance(ctx context.Context, req *types.QueryDebtBalanceRequest) (*types.QueryDebtBalanceResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	addrBz, err := q.address.StringToBytes(req.Account)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid account address: %s", req.Account)
	}

	balance, err := q.DebtBalanceOf(ctx, addrBz)
	if err != nil {
		return nil, err
	}

	return &types.QueryDebtBalanceResponse{DebtBalance: balance}, nil
}

func (q queryServer) CollateralisationRatio(ctx context.Context, req *types.QueryCollateralisationRatioRequest) (*types.QueryCollateralisationRatioResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	addrBz, err := q.address.StringToBytes(req.Account)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid account address: %s", req.Account)
	}

	ratio, err := q.Keeper.CollateralisationRatio(ctx, addrBz)
	if err != nil {
		return nil, err
	}

	return &types.QueryCollateralisationRatioResponse{Ratio: ratio}, nil
}

func (q queryServer) RemainingIssuable(ctx context.Context, req *types.QueryRemainingIssuableRequest) (*types.QueryRemainingIssuableResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	addrBz, err := q.address.StringToBytes(req.Account)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid account address: %s", req.Account)
	}

	remaining, max, err := q.RemainingIssuableSynths(ctx, addrBz)
	if err != nil {
		return nil, err
	}

	return &types.QueryRemainingIssuableResponse{MaxIssuable: max, Remaining: remaining}, nil
}

func (q queryServer) FeesAvailable(ctx context.Context, req *types.QueryFeesAvailableRequest) (*types.QueryFeesAvailableResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	addrBz, err := q.address.StringToBytes(req.Account)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid account address: %s", req.Account)
	}

	fees, rewards, err := q.Keeper.FeesAvailable(ctx, addrBz)
	if err != nil {
		return nil, err
	}

	return &types.QueryFeesAvailableResponse{Fees: fees, Rewards: rewards}, nil
}

func (q queryServer) EffectiveDebtRatio(ctx context.Context, req *types.QueryEffectiveDebtRatioRequest) (*types.QueryEffectiveDebtRatioResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	addrBz, err := q.address.StringToBytes(req.Account)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid account address: %s", req.Account)
	}

	ratio, err := q.EffectiveDebtRatioForPeriod(ctx, addrBz, req.Period)
	if err != nil {
		return nil, err
	}

	return &types.QueryEffectiveDebtRatioResponse{Ratio: ratio}, nil
}

func (q queryServer) FeePeriods(ctx context.Context, req *types.QueryFeePeriodsRequest) (*types.QueryFeePeriodsResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	current, err := q.GetFeePeriod(ctx, types.CurrentFeePeriod)
	if err != nil {
		return nil, err
	}
	claimable, err := q.GetFeePeriod(ctx, types.ClaimableFeePeriod)
	if err != nil {
		return nil, err
	}

	return &types.QueryFeePeriodsResponse{Current: current, Claimable: claimable}, nil
}

func (q queryServer) IssuanceRecord(ctx context.Context, req *types.QueryIssuanceRecordRequest) (*types.QueryIssuanceRecordResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	addrBz, err := q.address.StringToBytes(req.Account)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid account address: %s", req.Account)
	}

	record, err := q.GetIssuanceRecord(ctx, addrBz)
	if err != nil {
		return nil, err
	}

	return &types.QueryIssuanceRecordResponse{Record: record}, nil
}

func (q queryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	params, err := q.GetParams(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryParamsResponse{Params: params}, nil
}

func (q queryServer) Stats(ctx context.Context, req *types.QueryStatsRequest) (*types.QueryStatsResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	totalDebt, err := q.GetTotalDebt(ctx)
	if err != nil {
		return nil, err
	}
	issuers, err := q.GetTotalIssuerCount(ctx)
	if err != nil {
		return nil, err
	}
	length, err := q.GetDebtLedgerLength(ctx)
	if err != nil {
		return nil, err
	}

	return &types.QueryStatsResponse{Stats: types.Stats{
		TotalDebt:        totalDebt,
		TotalIssuerCount: issuers,
		DebtLedgerLength: length,
	}}, nil
}

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
	"strconv"

	"cosmossdk.io/core/event"
	"cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"synthpool.meridian.xyz/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

func (m msgServer) DepositCollateral(ctx context.Context, msg *types.MsgDepositCollateral) (*types.MsgDepositCollateralResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if m.GetPaused(ctx) {
		return nil, types.ErrPaused
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, errors.Wrap(types.ErrInvalidAmount, "deposit amount must be positive")
	}

	addrBz, err := m.address.StringToBytes(msg.Depositor)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid depositor address: %s", msg.Depositor)
	}
	depositor := sdk.AccAddress(addrBz)

	params, err := m.GetParams(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch module parameters")
	}

	coins := sdk.NewCoins(sdk.NewCoin(params.CollateralDenom, msg.Amount))
	if err := m.bank.SendCoinsFromAccountToModule(ctx, depositor, types.ModuleName, coins); err != nil {
		return nil, errors.Wrap(err, "unable to transfer collateral into module account")
	}

	collateral, err := m.GetCollateral(ctx, addrBz)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch collateral balance")
	}
	collateral = collateral.Add(msg.Amount)
	if err := m.Collateral.Set(ctx, addrBz, collateral); err != nil {
		return nil, errors.Wrap(err, "unable to store collateral balance")
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeCollateralDeposited,
		event.Attribute{Key: types.AttributeKeyAccount, Value: msg.Depositor},
		event.Attribute{Key: types.AttributeKeyAmount, Value: msg.Amount.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit deposit event")
	}

	return &types.MsgDepositCollateralResponse{TotalCollateral: collateral}, nil
}

func (m msgServer) WithdrawCollateral(ctx context.Context, msg *types.MsgWithdrawCollateral) (*types.MsgWithdrawCollateralResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if m.GetPaused(ctx) {
		return nil, types.ErrPaused
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, errors.Wrap(types.ErrInvalidAmount, "withdrawal amount must be positive")
	}

	addrBz, err := m.address.StringToBytes(msg.Depositor)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid depositor address: %s", msg.Depositor)
	}
	depositor := sdk.AccAddress(addrBz)

	transferable, err := m.TransferableCollateral(ctx, addrBz)
	if err != nil {
		return nil, errors.Wrap(err, "unable to compute transferable collateral")
	}
	if msg.Amount.GT(transferable) {
		return nil, errors.Wrapf(types.ErrInsufficientCollateral, "transferable %s, requested %s", transferable, msg.Amount)
	}

	collateral, err := m.GetCollateral(ctx, addrBz)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch collateral balance")
	}
	collateral = collateral.Sub(msg.Amount)
	if collateral.IsZero() {
		if err := m.Collateral.Remove(ctx, addrBz); err != nil {
			return nil, errors.Wrap(err, "unable to clear collateral balance")
		}
	} else {
		if err := m.Collateral.Set(ctx, addrBz, collateral); err != nil {
			return nil, errors.Wrap(err, "unable to store collateral balance")
		}
	}

	params, err := m.GetParams(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch module parameters")
	}
	coins := sdk.NewCoins(sdk.NewCoin(params.CollateralDenom, msg.Amount))
	if err := m.bank.SendCoinsFromModuleToAccount(ctx, types.ModuleName, depositor, coins); err != nil {
		return nil, errors.Wrap(err, "unable to release collateral")
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeCollateralWithdrawn,
		event.Attribute{Key: types.AttributeKeyAccount, Value: msg.Depositor},
		event.Attribute{Key: types.AttributeKeyAmount, Value: msg.Amount.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit withdrawal event")
	}

	return &types.MsgWithdrawCollateralResponse{TotalCollateral: collateral}, nil
}

func (m msgServer) Mint(ctx context.Context, msg *types.MsgMint) (*types.MsgMintResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if m.GetPaused(ctx) {
		return nil, types.ErrPaused
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, errors.Wrap(types.ErrInvalidAmount, "mint amount must be positive")
	}

	addrBz, err := m.address.StringToBytes(msg.Minter)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid minter address: %s", msg.Minter)
	}

	minted, length, err := m.Issue(ctx, addrBz, msg.Amount)
	if err != nil {
		return nil, err
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeMinted,
		event.Attribute{Key: types.AttributeKeyAccount, Value: msg.Minter},
		event.Attribute{Key: types.AttributeKeyAmount, Value: minted.String()},
		event.Attribute{Key: types.AttributeKeyLedgerLength, Value: strconv.FormatUint(length, 10)},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit mint event")
	}

	return &types.MsgMintResponse{Minted: minted, LedgerLength: length}, nil
}

func (m msgServer) MintMax(ctx context.Context, msg *types.MsgMintMax) (*types.MsgMintResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if m.GetPaused(ctx) {
		return nil, types.ErrPaused
	}

	addrBz, err := m.address.StringToBytes(msg.Minter)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid minter address: %s", msg.Minter)
	}

	remaining, _, err := m.RemainingIssuableSynths(ctx, addrBz)
	if err != nil {
		return nil, errors.Wrap(err, "unable to compute remaining issuable amount")
	}
	if !remaining.IsPositive() {
		return nil, errors.Wrap(types.ErrInvalidAmount, "no remaining issuable amount")
	}

	minted, length, err := m.Issue(ctx, addrBz, remaining)
	if err != nil {
		return nil, err
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeMinted,
		event.Attribute{Key: types.AttributeKeyAccount, Value: msg.Minter},
		event.Attribute{Key: types.AttributeKeyAmount, Value: minted.String()},
		event.Attribute{Key: types.AttributeKeyLedgerLength, Value: strconv.FormatUint(length, 10)},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit mint event")
	}

	return &types.MsgMintResponse{Minted: minted, LedgerLength: length}, nil
}

func (m msgServer) Burn(ctx context.Context, msg *types.MsgBurn) (*types.MsgBurnResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if m.GetPaused(ctx) {
		return nil, types.ErrPaused
	}
	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, errors.Wrap(types.ErrInvalidAmount, "burn amount must be positive")
	}

	addrBz, err := m.address.StringToBytes(msg.Burner)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid burner address: %s", msg.Burner)
	}

	burned, length, err := m.Retire(ctx, addrBz, msg.Amount)
	if err != nil {
		return nil, err
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeBurned,
		event.Attribute{Key: types.AttributeKeyAccount, Value: msg.Burner},
		event.Attribute{Key: types.AttributeKeyAmount, Value: burned.String()},
		event.Attribute{Key: types.AttributeKeyLedgerLength, Value: strconv.FormatUint(length, 10)},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit burn event")
	}

	return &types.MsgBurnResponse{Burned: burned, LedgerLength: length}, nil
}

func (m msgServer) ClosePeriod(ctx context.Context, msg *types.MsgClosePeriod) (*types.MsgClosePeriodResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if m.GetPaused(ctx) {
		return nil, types.ErrPaused
	}
	if _, err := m.address.StringToBytes(msg.Caller); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid caller address: %s", msg.Caller)
	}

	closedId, newId, err := m.Keeper.ClosePeriod(ctx)
	if err != nil {
		return nil, err
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypePeriodClosed,
		event.Attribute{Key: types.AttributeKeyAccount, Value: msg.Caller},
		event.Attribute{Key: types.AttributeKeyPeriodId, Value: strconv.FormatUint(closedId, 10)},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit period close event")
	}

	return &types.MsgClosePeriodResponse{ClosedPeriodId: closedId, NewPeriodId: newId}, nil
}

func (m msgServer) Claim(ctx context.Context, msg *types.MsgClaim) (*types.MsgClaimResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if m.GetPaused(ctx) {
		return nil, types.ErrPaused
	}

	addrBz, err := m.address.StringToBytes(msg.Claimant)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid claimant address: %s", msg.Claimant)
	}

	feePaid, rewardPaid, err := m.Keeper.Claim(ctx, addrBz)
	if err != nil {
		return nil, err
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeFeesClaimed,
		event.Attribute{Key: types.AttributeKeyAccount, Value: msg.Claimant},
		event.Attribute{Key: types.AttributeKeyFees, Value: feePaid.String()},
		event.Attribute{Key: types.AttributeKeyRewards, Value: rewardPaid.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit claim event")
	}

	return &types.MsgClaimResponse{FeePaid: feePaid, RewardPaid: rewardPaid}, nil
}

func (m msgServer) RecordFees(ctx context.Context, msg *types.MsgRecordFees) (*types.MsgRecordFeesResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Fees.IsNil() || msg.Fees.IsNegative() || msg.Rewards.IsNil() || msg.Rewards.IsNegative() {
		return nil, errors.Wrap(types.ErrInvalidAmount, "fees and rewards cannot be negative")
	}
	if msg.Fees.IsZero() && msg.Rewards.IsZero() {
		return nil, errors.Wrap(types.ErrInvalidAmount, "fees and rewards cannot both be zero")
	}

	params, err := m.GetParams(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch module parameters")
	}
	if msg.Sender != params.FeeAuthority {
		return nil, errors.Wrapf(types.ErrUnauthorized, "expected fee authority %s, got %s", params.FeeAuthority, msg.Sender)
	}

	addrBz, err := m.address.StringToBytes(msg.Sender)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid sender address: %s", msg.Sender)
	}

	coins := sdk.NewCoins()
	if msg.Fees.IsPositive() {
		coins = coins.Add(sdk.NewCoin(m.denom, msg.Fees))
	}
	if msg.Rewards.IsPositive() {
		coins = coins.Add(sdk.NewCoin(params.CollateralDenom, msg.Rewards))
	}
	if err := m.bank.SendCoinsFromAccountToModule(ctx, sdk.AccAddress(addrBz), types.FeeCollectorName, coins); err != nil {
		return nil, errors.Wrap(err, "unable to transfer fees into fee collector")
	}

	if err := m.Keeper.RecordFees(ctx, msg.Fees, msg.Rewards); err != nil {
		return nil, err
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeFeesRecorded,
		event.Attribute{Key: types.AttributeKeyAccount, Value: msg.Sender},
		event.Attribute{Key: types.AttributeKeyFees, Value: msg.Fees.String()},
		event.Attribute{Key: types.AttributeKeyRewards, Value: msg.Rewards.String()},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit fee record event")
	}

	return &types.MsgRecordFeesResponse{}, nil
}

func (m msgServer) UpdateParams(ctx context.Context, msg *types.MsgUpdateParams) (*types.MsgUpdateParamsResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Authority != m.authority {
		return nil, errors.Wrapf(types.ErrUnauthorized, "expected authority %s, got %s", m.authority, msg.Authority)
	}
	if err := msg.Params.Validate(); err != nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, err.Error())
	}

	if err := m.SetParams(ctx, msg.Params); err != nil {
		return nil, errors.Wrap(err, "unable to store module parameters")
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypeParamsUpdated,
		event.Attribute{Key: types.AttributeKeyAccount, Value: msg.Authority},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit params event")
	}

	return &types.MsgUpdateParamsResponse{}, nil
}

func (m msgServer) SetPaused(ctx context.Context, msg *types.MsgSetPaused) (*types.MsgSetPausedResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}
	if msg.Authority != m.authority {
		return nil, errors.Wrapf(types.ErrUnauthorized, "expected authority %s, got %s", m.authority, msg.Authority)
	}

	if err := m.Paused.Set(ctx, msg.Paused); err != nil {
		return nil, errors.Wrap(err, "unable to store pause state")
	}

	if err := m.event.EventManager(ctx).EmitKV(ctx, types.EventTypePausedSet,
		event.Attribute{Key: types.AttributeKeyPaused, Value: strconv.FormatBool(msg.Paused)},
	); err != nil {
		return nil, errors.Wrap(err, "unable to emit pause event")
	}

	return &types.MsgSetPausedResponse{}, nil
}

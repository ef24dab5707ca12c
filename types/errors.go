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

import "cosmossdk.io/errors"

var (
	ErrInvalidRequest         = errors.Register(ModuleName, 1, "invalid request")
	ErrUnauthorized           = errors.Register(ModuleName, 2, "signer is not authorized")
	ErrPaused                 = errors.Register(ModuleName, 3, "module is paused")
	ErrStaleRate              = errors.Register(ModuleName, 4, "exchange rate is stale")
	ErrEmptyLedger            = errors.Register(ModuleName, 5, "debt ledger is empty")
	ErrIndexOutOfRange        = errors.Register(ModuleName, 6, "debt ledger index out of range")
	ErrAmountTooLarge         = errors.Register(ModuleName, 7, "amount exceeds issuable limit")
	ErrInsufficientCollateral = errors.Register(ModuleName, 8, "insufficient free collateral")
	ErrMinimumStakeTime       = errors.Register(ModuleName, 9, "minimum stake time not reached")
	ErrTooEarlyToClose        = errors.Register(ModuleName, 10, "too early to close fee period")
	ErrAlreadyClaimed         = errors.Register(ModuleName, 11, "fees already claimed for period")
	ErrNothingToClaim         = errors.Register(ModuleName, 12, "no fees or rewards to claim")
	ErrCollateralRatioTooLow  = errors.Register(ModuleName, 13, "collateralisation ratio below claim threshold")
	ErrInvalidAmount          = errors.Register(ModuleName, 14, "amount must be positive")
	ErrNoDebt                 = errors.Register(ModuleName, 15, "account has no outstanding debt")
)

// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

// challenge执行失败的错误，错误即回滚
var (
	ErrNotOpen             = errors.New("ErrNotOpen")
	ErrNotInProgress       = errors.New("ErrNotInProgress")
	ErrSelfChallenge       = errors.New("ErrSelfChallenge")
	ErrInvalidWinner       = errors.New("ErrInvalidWinner")
	ErrInsufficientFunds   = errors.New("ErrInsufficientFunds")
	ErrChallengeExpired    = errors.New("ErrChallengeExpired")
	ErrChallengeNotExpired = errors.New("ErrChallengeNotExpired")
	ErrEntryFeeTooLow      = errors.New("ErrEntryFeeTooLow")
	ErrEntryFeeTooHigh     = errors.New("ErrEntryFeeTooHigh")
	ErrUnauthorized        = errors.New("ErrUnauthorized")
	ErrAdminInactive       = errors.New("ErrAdminInactive")
	ErrInvalidAdmin        = errors.New("ErrInvalidAdmin")
	ErrReentrancyDetected  = errors.New("ErrReentrancyDetected")
	ErrAlreadyAccepted     = errors.New("ErrAlreadyAccepted")
)

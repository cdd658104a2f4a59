// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// ChallengeX 执行器名称
var ChallengeX = "challenge"

// 挑战状态，数值即持久化编码，顺序不可调整
const (
	StatusOpen       = int32(0)
	StatusInProgress = int32(1)
	StatusCompleted  = int32(2)
	StatusCancelled  = int32(3)
	StatusDisputed   = int32(4)
)

// challenge action类型
const (
	ChallengeActionAdminInit   = 1
	ChallengeActionAdminUpdate = 2
	ChallengeActionAdminRevoke = 3
	ChallengeActionOracleInit  = 4
	ChallengeActionPriceUpdate = 5
	ChallengeActionCreate      = 6
	ChallengeActionAccept      = 7
	ChallengeActionResolve     = 8
	ChallengeActionCancel      = 9
	ChallengeActionClaimRefund = 10
	ChallengeActionDispute     = 11
)

// challenge log类型
const (
	TyLogAdminInitialized  = 601
	TyLogAdminUpdated      = 602
	TyLogAdminRevoked      = 603
	TyLogChallengeCreated  = 604
	TyLogChallengeAccepted = 605
	TyLogPayoutCompleted   = 606
	TyLogRefundIssued      = 607
	TyLogChallengeDisputed = 608
)

// 业务参数，均为协议常量
const (
	// 押注额上下界，最小计价单位
	MinEntryFee = int64(1)
	MaxEntryFee = int64(1000)
	// 创建后到可取消/可退款的固定窗口，秒
	DisputeWindow = int64(900)
	// 预言机初始价格
	DefaultOraclePrice = int64(1000)
)

// 地址推导用的种子
var (
	SeedChallenge = []byte("challenge")
	SeedVault     = []byte("escrow_wallet")
)

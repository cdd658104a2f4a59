// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types challenge执行器相关的定义
package types

import (
	"reflect"

	"github.com/duelchain/duelchain/common/address"
)

// LogInfo 日志类型与日志体结构的对应
type LogInfo struct {
	Ty   reflect.Type
	Name string
}

// LogMap receipt log解析用
var LogMap = map[int64]*LogInfo{
	TyLogAdminInitialized:  {reflect.TypeOf(AdminInitialized{}), "LogAdminInitialized"},
	TyLogAdminUpdated:      {reflect.TypeOf(AdminUpdated{}), "LogAdminUpdated"},
	TyLogAdminRevoked:      {reflect.TypeOf(AdminRevoked{}), "LogAdminRevoked"},
	TyLogChallengeCreated:  {reflect.TypeOf(ChallengeCreated{}), "LogChallengeCreated"},
	TyLogChallengeAccepted: {reflect.TypeOf(ChallengeAccepted{}), "LogChallengeAccepted"},
	TyLogPayoutCompleted:   {reflect.TypeOf(PayoutCompleted{}), "LogPayoutCompleted"},
	TyLogRefundIssued:      {reflect.TypeOf(RefundIssued{}), "LogRefundIssued"},
	TyLogChallengeDisputed: {reflect.TypeOf(ChallengeDisputed{}), "LogChallengeDisputed"},
}

// CalcChallengeAddr 由创建者和一次性nonce推导挑战地址。
// 同一creator+nonce总是得到同一地址，重复创建会撞到已有记录。
func CalcChallengeAddr(creator, nonce string) string {
	return address.SeedAddress(SeedChallenge, []byte(creator), []byte(nonce))
}

// CalcVaultAddr 由挑战地址推导押注金库地址。
// 金库是普通账本账户，只有执行器本身会对它转账。
func CalcVaultAddr(challengeAddr, symbol string) string {
	return address.SeedAddress(SeedVault, []byte(challengeAddr), []byte(symbol))
}

// StatusName 状态可读名，日志用
func StatusName(status int32) string {
	switch status {
	case StatusOpen:
		return "Open"
	case StatusInProgress:
		return "InProgress"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	case StatusDisputed:
		return "Disputed"
	}
	return "Unknown"
}

// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

// 系统级receipt log类型，1-99保留，各执行器从100起自行分配
const (
	// TyLogErr 执行出错
	TyLogErr = 1
	// TyLogFee 手续费
	TyLogFee = 2
	// TyLogTransfer 转账
	TyLogTransfer = 3
	// TyLogGenesis 创世分配
	TyLogGenesis = 4
)

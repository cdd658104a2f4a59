// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types coins执行器相关的定义
package types

// CoinsX 执行器名称
var CoinsX = "coins"

// coins action类型
const (
	CoinsActionTransfer = 1
	CoinsActionGenesis  = 2
)

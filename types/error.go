// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import "errors"

var (
	// ErrNoBalance 余额不足
	ErrNoBalance = errors.New("ErrNoBalance")
	// ErrAmount 金额非法
	ErrAmount = errors.New("ErrAmount")
	// ErrSendSameToRecv 转账双方地址相同
	ErrSendSameToRecv = errors.New("ErrSendSameToRecv")
	// ErrNotFound 数据不存在
	ErrNotFound = errors.New("ErrNotFound")
	// ErrActionNotSupport 不支持的action
	ErrActionNotSupport = errors.New("ErrActionNotSupport")
	// ErrSign 签名非法
	ErrSign = errors.New("ErrSign")
	// ErrExecNameNotAllow 执行器名非法
	ErrExecNameNotAllow = errors.New("ErrExecNameNotAllow")
	// ErrSymbolNameNotAllow 代币符号非法
	ErrSymbolNameNotAllow = errors.New("ErrSymbolNameNotAllow")
	// ErrToAddrNotSameToExecAddr to地址与执行器地址不符
	ErrToAddrNotSameToExecAddr = errors.New("ErrToAddrNotSameToExecAddr")
	// ErrInvalidParam 参数非法
	ErrInvalidParam = errors.New("ErrInvalidParam")
	// ErrQueryNotSupport 不支持的query
	ErrQueryNotSupport = errors.New("ErrQueryNotSupport")
	// ErrExecNotFound 执行器未注册
	ErrExecNotFound = errors.New("ErrExecNotFound")
	// ErrReRunGenesis genesis只允许在0高度执行
	ErrReRunGenesis = errors.New("ErrReRunGenesis")
	// ErrEmptyTx 空交易
	ErrEmptyTx = errors.New("ErrEmptyTx")
)

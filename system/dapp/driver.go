// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dapp 执行器驱动框架
package dapp

import (
	"github.com/duelchain/duelchain/account"
	"github.com/duelchain/duelchain/common/address"
	dbm "github.com/duelchain/duelchain/common/db"
	"github.com/duelchain/duelchain/types"
	log "github.com/inconshreveable/log15"
)

var blog = log.New("module", "execs.base")

// Driver 执行器接口，每个dapp实现一份
type Driver interface {
	SetStateDB(dbm.KV)
	GetCoinsAccount() *account.DB
	SetCoinsAccount(*account.DB)
	// GetDriverName 驱动的名字，固定不变
	GetDriverName() string
	SetEnv(height, blocktime int64)
	CheckTx(tx *types.Transaction, index int) error
	Exec(tx *types.Transaction, index int) (*types.Receipt, error)
	Query(funcName string, params []byte) (types.Message, error)
}

// DriverBase 公共实现，各执行器内嵌
type DriverBase struct {
	statedb      dbm.KV
	coinsaccount *account.DB
	height       int64
	blocktime    int64
	child        Driver
}

// SetChild 注入子类，公共实现通过child拿到执行器名称
func (d *DriverBase) SetChild(e Driver) {
	d.child = e
}

// SetEnv 注入区块环境
func (d *DriverBase) SetEnv(height, blocktime int64) {
	d.height = height
	d.blocktime = blocktime
}

// GetHeight 当前高度
func (d *DriverBase) GetHeight() int64 {
	return d.height
}

// GetBlockTime 当前区块时间
func (d *DriverBase) GetBlockTime() int64 {
	return d.blocktime
}

// SetStateDB 注入状态存储
func (d *DriverBase) SetStateDB(db dbm.KV) {
	d.statedb = db
	if d.coinsaccount != nil {
		d.coinsaccount.SetDB(db)
	}
}

// GetStateDB 状态存储
func (d *DriverBase) GetStateDB() dbm.KV {
	return d.statedb
}

// SetCoinsAccount 注入原生代币账户视图
func (d *DriverBase) SetCoinsAccount(acc *account.DB) {
	d.coinsaccount = acc
	if d.statedb != nil {
		d.coinsaccount.SetDB(d.statedb)
	}
}

// GetCoinsAccount 原生代币账户视图
func (d *DriverBase) GetCoinsAccount() *account.DB {
	return d.coinsaccount
}

// CheckTx 默认要求tx.To指向执行器地址
func (d *DriverBase) CheckTx(tx *types.Transaction, index int) error {
	execer := string(tx.Execer)
	if ExecAddress(execer) != tx.To {
		return types.ErrToAddrNotSameToExecAddr
	}
	return nil
}

// Query 默认不支持任何query
func (d *DriverBase) Query(funcName string, params []byte) (types.Message, error) {
	blog.Debug("query not support", "func", funcName)
	return nil, types.ErrQueryNotSupport
}

// ExecAddress 根据执行器名称获取执行器地址
func ExecAddress(name string) string {
	return address.ExecAddress(name)
}

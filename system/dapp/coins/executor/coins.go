// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package executor coins 是内置货币的执行器

主要提供两种操作：
Transfer -> 转移资产
Genesis  -> 创世分配
*/
package executor

import (
	"github.com/duelchain/duelchain/common/address"
	drivers "github.com/duelchain/duelchain/system/dapp"
	cty "github.com/duelchain/duelchain/system/dapp/coins/types"
	"github.com/duelchain/duelchain/types"
)

var driverName = cty.CoinsX

func init() {
	drivers.Register(driverName, newCoins)
}

// Coins 内置货币执行器
type Coins struct {
	drivers.DriverBase
}

func newCoins() drivers.Driver {
	c := &Coins{}
	c.SetChild(c)
	return c
}

// GetDriverName 驱动名称
func (c *Coins) GetDriverName() string {
	return driverName
}

// CheckTx coins的to地址是收款人，放开默认的执行器地址约束
func (c *Coins) CheckTx(tx *types.Transaction, index int) error {
	if tx.To == drivers.ExecAddress(string(tx.Execer)) {
		return nil
	}
	return address.CheckAddress(tx.To)
}

// Exec 按action分发
func (c *Coins) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var action cty.CoinsAction
	err := types.Decode(tx.Payload, &action)
	if err != nil {
		return nil, err
	}
	switch action.GetValue().(type) {
	case *cty.CoinsAction_Transfer:
		return c.execTransfer(action.GetTransfer(), tx)
	case *cty.CoinsAction_Genesis:
		return c.execGenesis(action.GetGenesis(), tx)
	default:
		return nil, types.ErrActionNotSupport
	}
}

func (c *Coins) execTransfer(transfer *cty.CoinsTransfer, tx *types.Transaction) (*types.Receipt, error) {
	from := tx.From()
	return c.GetCoinsAccount().Transfer(from, tx.To, transfer.Amount)
}

func (c *Coins) execGenesis(genesis *cty.CoinsGenesis, tx *types.Transaction) (*types.Receipt, error) {
	if c.GetHeight() != 0 {
		return nil, types.ErrReRunGenesis
	}
	to := genesis.ReturnAddress
	if to == "" {
		to = tx.To
	}
	return c.GetCoinsAccount().GenesisInit(to, genesis.Amount)
}

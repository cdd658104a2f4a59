// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"testing"

	"github.com/duelchain/duelchain/account"
	"github.com/duelchain/duelchain/common/address"
	"github.com/duelchain/duelchain/common/crypto"
	dbm "github.com/duelchain/duelchain/common/db"
	drivers "github.com/duelchain/duelchain/system/dapp"
	cty "github.com/duelchain/duelchain/system/dapp/coins/types"
	"github.com/duelchain/duelchain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCoins(t *testing.T) (drivers.Driver, dbm.DB) {
	db := dbm.NewDB("test", "memdb", "", 0)
	t.Cleanup(db.Close)
	c := newCoins()
	c.SetCoinsAccount(account.NewCoinsAccount("duel"))
	c.SetStateDB(db)
	c.SetEnv(0, 0)
	return c, db
}

func coinsTx(t *testing.T, action *cty.CoinsAction, to string) (*types.Transaction, string) {
	priv, err := crypto.GenKey()
	require.NoError(t, err)
	tx := &types.Transaction{
		Execer:  []byte(cty.CoinsX),
		Payload: types.Encode(action),
		To:      to,
	}
	tx.Sign(crypto.TypeSecp256k1, priv)
	return tx, address.PubKeyToAddress(priv.PubKey().Bytes()).String()
}

func TestGenesisOnlyAtZero(t *testing.T) {
	c, _ := newTestCoins(t)
	action := &cty.CoinsAction{
		Value: &cty.CoinsAction_Genesis{Genesis: &cty.CoinsGenesis{Amount: 1000}},
		Ty:    cty.CoinsActionGenesis,
	}
	tx, _ := coinsTx(t, action, "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt")
	require.NoError(t, c.CheckTx(tx, 0))
	_, err := c.Exec(tx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1000),
		c.GetCoinsAccount().LoadAccount("14KEKbYtKKQm4wMthSK9J4La4nAiidGozt").GetBalance())

	c.SetEnv(1, 10)
	_, err = c.Exec(tx, 0)
	assert.Equal(t, types.ErrReRunGenesis, err)
}

func TestTransferExec(t *testing.T) {
	c, _ := newTestCoins(t)
	transfer := &cty.CoinsAction{
		Value: &cty.CoinsAction_Transfer{Transfer: &cty.CoinsTransfer{Amount: 300}},
		Ty:    cty.CoinsActionTransfer,
	}
	tx, from := coinsTx(t, transfer, "1JRNjdEqp4LJ5fqycUBm9ayCKSeeskgMKR")

	// 没有余额时转账失败
	_, err := c.Exec(tx, 0)
	assert.Equal(t, types.ErrNoBalance, err)

	_, err = c.GetCoinsAccount().GenesisInit(from, 1000)
	require.NoError(t, err)
	_, err = c.Exec(tx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(700), c.GetCoinsAccount().LoadAccount(from).GetBalance())
	assert.Equal(t, int64(300),
		c.GetCoinsAccount().LoadAccount("1JRNjdEqp4LJ5fqycUBm9ayCKSeeskgMKR").GetBalance())
}

func TestCheckTxRecipient(t *testing.T) {
	c, _ := newTestCoins(t)
	transfer := &cty.CoinsAction{
		Value: &cty.CoinsAction_Transfer{Transfer: &cty.CoinsTransfer{Amount: 1}},
		Ty:    cty.CoinsActionTransfer,
	}

	// 收款人地址和执行器地址都合法
	tx, _ := coinsTx(t, transfer, "1JRNjdEqp4LJ5fqycUBm9ayCKSeeskgMKR")
	assert.NoError(t, c.CheckTx(tx, 0))
	tx2, _ := coinsTx(t, transfer, drivers.ExecAddress(cty.CoinsX))
	assert.NoError(t, c.CheckTx(tx2, 0))

	tx3, _ := coinsTx(t, transfer, "bad-addr")
	assert.Error(t, c.CheckTx(tx3, 0))
}

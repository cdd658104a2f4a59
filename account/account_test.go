// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package account

import (
	"testing"

	dbm "github.com/duelchain/duelchain/common/db"
	"github.com/duelchain/duelchain/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	addr1 = "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt"
	addr2 = "1JRNjdEqp4LJ5fqycUBm9ayCKSeeskgMKR"
)

func genAccDb(t *testing.T) *DB {
	db := dbm.NewDB("test", "memdb", "", 0)
	t.Cleanup(db.Close)
	acc := NewCoinsAccount("duel")
	acc.SetDB(db)
	return acc
}

func TestLoadAccountZero(t *testing.T) {
	acc := genAccDb(t)
	a := acc.LoadAccount(addr1)
	assert.Equal(t, int64(0), a.GetBalance())
	assert.Equal(t, addr1, a.Addr)
}

func TestGenesisInit(t *testing.T) {
	acc := genAccDb(t)
	receipt, err := acc.GenesisInit(addr1, 1000)
	require.NoError(t, err)
	require.Len(t, receipt.Logs, 1)
	assert.Equal(t, int32(types.TyLogGenesis), receipt.Logs[0].Ty)
	assert.Equal(t, int64(1000), acc.LoadAccount(addr1).GetBalance())
}

func TestTransfer(t *testing.T) {
	acc := genAccDb(t)
	_, err := acc.GenesisInit(addr1, 1000)
	require.NoError(t, err)

	receipt, err := acc.Transfer(addr1, addr2, 300)
	require.NoError(t, err)
	assert.Equal(t, int64(700), acc.LoadAccount(addr1).GetBalance())
	assert.Equal(t, int64(300), acc.LoadAccount(addr2).GetBalance())
	// 一来一回两条余额变动日志
	require.Len(t, receipt.Logs, 2)
	assert.Equal(t, int32(types.TyLogTransfer), receipt.Logs[0].Ty)
	assert.Len(t, receipt.KV, 2)
}

func TestTransferNoBalance(t *testing.T) {
	acc := genAccDb(t)
	_, err := acc.GenesisInit(addr1, 100)
	require.NoError(t, err)
	_, err = acc.Transfer(addr1, addr2, 101)
	assert.Equal(t, types.ErrNoBalance, err)
	assert.Equal(t, int64(100), acc.LoadAccount(addr1).GetBalance())
}

func TestTransferSameAddr(t *testing.T) {
	acc := genAccDb(t)
	_, err := acc.GenesisInit(addr1, 100)
	require.NoError(t, err)
	_, err = acc.Transfer(addr1, addr1, 10)
	assert.Equal(t, types.ErrSendSameToRecv, err)
}

func TestTransferBadAmount(t *testing.T) {
	acc := genAccDb(t)
	_, err := acc.Transfer(addr1, addr2, -1)
	assert.Equal(t, types.ErrAmount, err)
	_, err = acc.Transfer(addr1, addr2, types.MaxCoin+1)
	assert.Equal(t, types.ErrAmount, err)
}

func TestCheckTransfer(t *testing.T) {
	acc := genAccDb(t)
	_, err := acc.GenesisInit(addr1, 100)
	require.NoError(t, err)
	assert.NoError(t, acc.CheckTransfer(addr1, addr2, 100))
	assert.Equal(t, types.ErrNoBalance, acc.CheckTransfer(addr1, addr2, 101))
}

func TestNewAccountDB(t *testing.T) {
	db := dbm.NewDB("test", "memdb", "", 0)
	t.Cleanup(db.Close)
	_, err := NewAccountDB("token-x", "duel", db)
	assert.Equal(t, types.ErrExecNameNotAllow, err)
	_, err = NewAccountDB("token", "du-el", db)
	assert.Equal(t, types.ErrSymbolNameNotAllow, err)
	acc, err := NewAccountDB("token", "tkn", db)
	require.NoError(t, err)
	assert.Equal(t, "tkn", acc.GetSymbol())
	assert.Equal(t, []byte("mavl-token-tkn-"+addr1), acc.AccountKey(addr1))
}

// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package executor 单机串行的交易执行环境

一笔交易就是一次原子状态迁移：验签、找到执行器、在写缓冲上执行，
成功则把回执携带的KV连同账户变动一起落库，失败则整体丢弃。
同一时刻只有一笔交易在执行，区块环境(height/blocktime)由外部注入。
*/
package executor

import (
	"sync"

	"github.com/duelchain/duelchain/account"
	dbm "github.com/duelchain/duelchain/common/db"
	drivers "github.com/duelchain/duelchain/system/dapp"
	"github.com/duelchain/duelchain/types"
	log "github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	// 注册内置执行器
	_ "github.com/duelchain/duelchain/system/dapp/challenge/executor"
	_ "github.com/duelchain/duelchain/system/dapp/coins/executor"
)

var elog = log.New("module", "executor")

// 创世只做一次
var genesisDoneKey = []byte("exec-genesis-done")

// Executor 执行环境
type Executor struct {
	mu        sync.Mutex
	cfg       *types.Config
	stateDB   dbm.DB
	height    int64
	blocktime int64
}

// New 打开存储并按配置完成创世分配
func New(cfg *types.Config) (*Executor, error) {
	stateDB := dbm.NewDB("state", cfg.DBBackend, cfg.DBPath, cfg.DBCache)
	e := &Executor{
		cfg:     cfg,
		stateDB: stateDB,
	}
	if err := e.applyGenesis(); err != nil {
		stateDB.Close()
		return nil, err
	}
	return e, nil
}

func (e *Executor) applyGenesis() error {
	_, err := e.stateDB.Get(genesisDoneKey)
	if err == nil {
		if len(e.cfg.Genesis) > 0 {
			elog.Debug("genesis already applied")
		}
		return nil
	}
	if err != dbm.ErrNotFoundInDb {
		return err
	}
	cache := dbm.NewKVCache(e.stateDB)
	coinsAcc := account.NewCoinsAccount(e.cfg.CoinSymbol)
	coinsAcc.SetDB(cache)
	for _, g := range e.cfg.Genesis {
		if _, err := coinsAcc.GenesisInit(g.Addr, g.Amount); err != nil {
			return errors.Wrapf(err, "genesis %s", g.Addr)
		}
	}
	if err := cache.Set(genesisDoneKey, []byte{1}); err != nil {
		return err
	}
	return cache.Flush()
}

// SetEnv 注入区块环境，时间戳只来自这里，执行器不会读墙上时钟
func (e *Executor) SetEnv(height, blocktime int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.height = height
	e.blocktime = blocktime
}

// Exec 执行一笔交易。出错时状态无任何变化。
func (e *Executor) Exec(tx *types.Transaction) (*types.Receipt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if tx == nil {
		return nil, types.ErrEmptyTx
	}
	if !tx.CheckSign() {
		return nil, types.ErrSign
	}
	driver, err := drivers.Load(string(tx.Execer))
	if err != nil {
		return nil, err
	}
	cache := dbm.NewKVCache(e.stateDB)
	driver.SetCoinsAccount(account.NewCoinsAccount(e.cfg.CoinSymbol))
	driver.SetStateDB(cache)
	driver.SetEnv(e.height, e.blocktime)
	if err := driver.CheckTx(tx, 0); err != nil {
		return nil, err
	}
	receipt, err := driver.Exec(tx, 0)
	if err != nil {
		cache.Discard()
		elog.Debug("exec failed", "execer", string(tx.Execer), "err", err)
		return nil, err
	}
	// 回执携带的KV是本次迁移的权威写集
	for _, kv := range receipt.GetKV() {
		if err := cache.Set(kv.GetKey(), kv.GetValue()); err != nil {
			return nil, err
		}
	}
	if err := cache.Flush(); err != nil {
		return nil, errors.Wrap(err, "flush receipt")
	}
	return receipt, nil
}

// Query 只读查询，直接读已提交状态
func (e *Executor) Query(execer, funcName string, params []byte) (types.Message, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	driver, err := drivers.Load(execer)
	if err != nil {
		return nil, err
	}
	driver.SetCoinsAccount(account.NewCoinsAccount(e.cfg.CoinSymbol))
	driver.SetStateDB(e.stateDB)
	driver.SetEnv(e.height, e.blocktime)
	return driver.Query(funcName, params)
}

// Balance 地址的原生代币余额
func (e *Executor) Balance(addr string) int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	coinsAcc := account.NewCoinsAccount(e.cfg.CoinSymbol)
	coinsAcc.SetDB(e.stateDB)
	return coinsAcc.LoadAccount(addr).GetBalance()
}

// Close 关闭底层存储
func (e *Executor) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stateDB.Close()
}

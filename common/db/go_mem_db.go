// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"sort"
	"strings"
	"sync"

	log "github.com/inconshreveable/log15"
)

var mlog = log.New("module", "db.memdb")

// memdb 无需区分同步与异步操作

func init() {
	dbCreator := func(name string, dir string, cache int) (DB, error) {
		return NewGoMemDB(name, dir, cache)
	}
	registerDBCreator(MemDBBackendStr, dbCreator, false)
}

// GoMemDB 内存KV，测试与临时链使用
type GoMemDB struct {
	db   map[string][]byte
	lock sync.RWMutex
}

// NewGoMemDB 创建内存数据库
func NewGoMemDB(name string, dir string, cache int) (*GoMemDB, error) {
	return &GoMemDB{
		db: make(map[string][]byte),
	}, nil
}

// Get 读取key
func (db *GoMemDB) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if entry, ok := db.db[string(key)]; ok {
		return CopyBytes(entry), nil
	}
	return nil, ErrNotFoundInDb
}

// Set 写入key
func (db *GoMemDB) Set(key []byte, value []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	db.db[string(key)] = CopyBytes(value)
	if db.db[string(key)] == nil && value != nil {
		mlog.Error("Set", "error", "have no mem")
	}
	return nil
}

// Delete 删除key
func (db *GoMemDB) Delete(key []byte) error {
	db.lock.Lock()
	defer db.lock.Unlock()

	delete(db.db, string(key))
	return nil
}

// Close 关闭
func (db *GoMemDB) Close() {
}

// NewBatch 创建批量写
func (db *GoMemDB) NewBatch() Batch {
	return &goMemBatch{db: db}
}

type goMemBatch struct {
	db  *GoMemDB
	kvs []struct{ key, value []byte }
}

func (b *goMemBatch) Set(key, value []byte) {
	b.kvs = append(b.kvs, struct{ key, value []byte }{CopyBytes(key), CopyBytes(value)})
}

// Write 持锁一次写入全部kv
func (b *goMemBatch) Write() error {
	b.db.lock.Lock()
	defer b.db.lock.Unlock()
	for _, kv := range b.kvs {
		b.db.db[string(kv.key)] = kv.value
	}
	return nil
}

// List 按前缀列出value，按key排序
func (db *GoMemDB) List(prefix []byte) ([][]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	var keys []string
	for k := range db.db {
		if strings.HasPrefix(k, string(prefix)) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	var values [][]byte
	for _, k := range keys {
		values = append(values, CopyBytes(db.db[k]))
	}
	return values, nil
}

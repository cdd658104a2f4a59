// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package db KV存储的后端抽象，支持内存与badger两种实现
package db

import (
	"errors"
	"fmt"
)

// ErrNotFoundInDb key不存在
var ErrNotFoundInDb = errors.New("ErrNotFoundInDb")

// KV 执行器看到的状态存储接口
type KV interface {
	Get(key []byte) (value []byte, err error)
	Set(key []byte, value []byte) (err error)
}

// DB 完整的数据库后端接口
type DB interface {
	KV
	Delete(key []byte) error
	Close()
	// List 按前缀列出value，测试与查询用
	List(prefix []byte) (values [][]byte, err error)
}

// Batch 一组写操作，Write时整体落库，要么全部成功要么全部失败
type Batch interface {
	Set(key, value []byte)
	Write() error
}

// BatchDB 支持原子批量写的后端
type BatchDB interface {
	NewBatch() Batch
}

const (
	// MemDBBackendStr 内存后端
	MemDBBackendStr = "memdb"
	// GoBadgerDBBackendStr badger后端
	GoBadgerDBBackendStr = "gobadgerdb"
)

type dbCreator func(name string, dir string, cache int) (DB, error)

var backends = map[string]dbCreator{}

func registerDBCreator(backend string, creator dbCreator, force bool) {
	_, ok := backends[backend]
	if !force && ok {
		return
	}
	backends[backend] = creator
}

// NewDB 按配置创建后端，失败直接panic，启动期错误无法恢复
func NewDB(name string, backend string, dir string, cache int) DB {
	dbCreator, ok := backends[backend]
	if !ok {
		fmt.Printf("Error initializing DB: %v\n", backend)
		panic("initializing DB error")
	}
	db, err := dbCreator(name, dir, cache)
	if err != nil {
		fmt.Printf("Error initializing DB: %v\n", err)
		panic("initializing DB error")
	}
	return db
}

// CopyBytes 深拷贝
func CopyBytes(b []byte) (copiedBytes []byte) {
	if b == nil {
		return nil
	}
	copiedBytes = make([]byte, len(b))
	copy(copiedBytes, b)
	return copiedBytes
}

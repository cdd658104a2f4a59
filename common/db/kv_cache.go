// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

// KVCache 写缓冲，一笔交易的全部写先落在缓冲里，成功才Flush到底层。
// 缓冲期间Get能读到未提交的写，执行器在一笔交易内部看到自己的修改。
type KVCache struct {
	parent KV
	mem    map[string][]byte
}

// NewKVCache 基于parent创建写缓冲
func NewKVCache(parent KV) *KVCache {
	return &KVCache{
		parent: parent,
		mem:    make(map[string][]byte),
	}
}

// Get 优先读缓冲，miss时穿透到parent
func (c *KVCache) Get(key []byte) ([]byte, error) {
	if v, ok := c.mem[string(key)]; ok {
		if v == nil {
			return nil, ErrNotFoundInDb
		}
		return CopyBytes(v), nil
	}
	return c.parent.Get(key)
}

// Set 写入缓冲
func (c *KVCache) Set(key []byte, value []byte) error {
	c.mem[string(key)] = CopyBytes(value)
	return nil
}

// Flush 提交全部缓冲写到parent。parent支持批量写时整批原子落库，
// 后端出错不会留下半提交的状态。
func (c *KVCache) Flush() error {
	if bdb, ok := c.parent.(BatchDB); ok {
		batch := bdb.NewBatch()
		for k, v := range c.mem {
			batch.Set([]byte(k), v)
		}
		if err := batch.Write(); err != nil {
			return err
		}
	} else {
		for k, v := range c.mem {
			if err := c.parent.Set([]byte(k), v); err != nil {
				return err
			}
		}
	}
	c.mem = make(map[string][]byte)
	return nil
}

// Discard 丢弃全部缓冲写
func (c *KVCache) Discard() {
	c.mem = make(map[string][]byte)
}

// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemDB(t *testing.T) {
	db := NewDB("test", MemDBBackendStr, "", 0)
	defer db.Close()

	_, err := db.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, db.Set([]byte("k1"), []byte("v1")))
	v, err := db.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)

	require.NoError(t, db.Delete([]byte("k1")))
	_, err = db.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func TestMemDBList(t *testing.T) {
	db := NewDB("test", MemDBBackendStr, "", 0)
	defer db.Close()

	require.NoError(t, db.Set([]byte("a-2"), []byte("v2")))
	require.NoError(t, db.Set([]byte("a-1"), []byte("v1")))
	require.NoError(t, db.Set([]byte("b-1"), []byte("v3")))

	values, err := db.List([]byte("a-"))
	require.NoError(t, err)
	// 按key有序
	assert.Equal(t, [][]byte{[]byte("v1"), []byte("v2")}, values)
}

func TestBadgerDB(t *testing.T) {
	db, err := NewGoBadgerDB("test", t.TempDir(), 16)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.Set([]byte("k1"), []byte("v1")))
	v, err := db.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)

	_, err = db.Get([]byte("missing"))
	assert.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, db.Delete([]byte("k1")))
	_, err = db.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

func TestBatchWrite(t *testing.T) {
	memdb := NewDB("test", MemDBBackendStr, "", 0)
	defer memdb.Close()
	badgerdb, err := NewGoBadgerDB("test", t.TempDir(), 16)
	require.NoError(t, err)
	defer badgerdb.Close()

	for _, db := range []DB{memdb, badgerdb} {
		bdb, ok := db.(BatchDB)
		require.True(t, ok)
		batch := bdb.NewBatch()
		batch.Set([]byte("k1"), []byte("v1"))
		batch.Set([]byte("k2"), []byte("v2"))

		// Write前不可见
		_, err := db.Get([]byte("k1"))
		assert.Equal(t, ErrNotFoundInDb, err)

		require.NoError(t, batch.Write())
		v, err := db.Get([]byte("k1"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v1"), v)
		v, err = db.Get([]byte("k2"))
		require.NoError(t, err)
		assert.Equal(t, []byte("v2"), v)
	}
}

func TestKVCacheFlushBatch(t *testing.T) {
	parent, err := NewGoBadgerDB("test", t.TempDir(), 16)
	require.NoError(t, err)
	defer parent.Close()

	cache := NewKVCache(parent)
	require.NoError(t, cache.Set([]byte("k1"), []byte("v1")))
	require.NoError(t, cache.Set([]byte("k2"), []byte("v2")))
	require.NoError(t, cache.Flush())

	v, err := parent.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)
	v, err = parent.Get([]byte("k2"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), v)
}

func TestKVCache(t *testing.T) {
	parent := NewDB("test", MemDBBackendStr, "", 0)
	defer parent.Close()
	require.NoError(t, parent.Set([]byte("k0"), []byte("v0")))

	cache := NewKVCache(parent)

	// 缓冲miss穿透到parent
	v, err := cache.Get([]byte("k0"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v0"), v)

	// 缓冲写在Flush前对parent不可见
	require.NoError(t, cache.Set([]byte("k1"), []byte("v1")))
	v, err = cache.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)
	_, err = parent.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)

	require.NoError(t, cache.Flush())
	v, err = parent.Get([]byte("k1"))
	require.NoError(t, err)
	assert.Equal(t, []byte("v1"), v)
}

func TestKVCacheDiscard(t *testing.T) {
	parent := NewDB("test", MemDBBackendStr, "", 0)
	defer parent.Close()

	cache := NewKVCache(parent)
	require.NoError(t, cache.Set([]byte("k1"), []byte("v1")))
	cache.Discard()

	_, err := cache.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)
	require.NoError(t, cache.Flush())
	_, err = parent.Get([]byte("k1"))
	assert.Equal(t, ErrNotFoundInDb, err)
}

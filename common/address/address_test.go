// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package address

import (
	"strings"
	"testing"

	"github.com/duelchain/duelchain/common/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPubKeyToAddress(t *testing.T) {
	priv, err := crypto.GenKey()
	require.NoError(t, err)
	addr := PubKeyToAddress(priv.PubKey().Bytes())
	require.NotNil(t, addr)
	assert.NoError(t, CheckAddress(addr.String()))

	// 地址字符串可以还原
	addr2, err := NewAddrFromString(addr.String())
	require.NoError(t, err)
	assert.Equal(t, addr.Hash160, addr2.Hash160)
}

func TestCheckAddress(t *testing.T) {
	assert.Error(t, CheckAddress(""))
	assert.Error(t, CheckAddress("not-an-address"))
	// 25字节全零，校验和必然不匹配
	assert.Error(t, CheckAddress(strings.Repeat("1", 25)))
}

func TestExecAddress(t *testing.T) {
	addr := ExecAddress("challenge")
	// 执行器地址固定不变
	assert.Equal(t, addr, ExecAddress("challenge"))
	assert.NotEqual(t, addr, ExecAddress("coins"))
	assert.NoError(t, CheckAddress(addr))
}

func TestSeedAddress(t *testing.T) {
	a1 := SeedAddress([]byte("challenge"), []byte("creator"), []byte("n1"))
	a2 := SeedAddress([]byte("challenge"), []byte("creator"), []byte("n1"))
	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, SeedAddress([]byte("challenge"), []byte("creator"), []byte("n2")))
	assert.NotEqual(t, a1, SeedAddress([]byte("escrow_wallet"), []byte("creator"), []byte("n1")))
	assert.NoError(t, CheckAddress(a1))
}

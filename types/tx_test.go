// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"testing"

	"github.com/duelchain/duelchain/common/address"
	"github.com/duelchain/duelchain/common/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxSignAndVerify(t *testing.T) {
	priv, err := crypto.GenKey()
	require.NoError(t, err)

	tx := &Transaction{
		Execer:  []byte("coins"),
		Payload: []byte("payload"),
		Nonce:   1,
		To:      "14KEKbYtKKQm4wMthSK9J4La4nAiidGozt",
	}
	assert.False(t, tx.CheckSign())

	tx.Sign(crypto.TypeSecp256k1, priv)
	assert.True(t, tx.CheckSign())
	assert.Equal(t, address.PubKeyToAddress(priv.PubKey().Bytes()).String(), tx.From())

	// 篡改后签名失效
	tx.Payload = []byte("tampered")
	assert.False(t, tx.CheckSign())
}

func TestTxHashExcludesSignature(t *testing.T) {
	priv, err := crypto.GenKey()
	require.NoError(t, err)

	tx := &Transaction{
		Execer:  []byte("coins"),
		Payload: []byte("payload"),
		Nonce:   2,
	}
	before := tx.Hash()
	tx.Sign(crypto.TypeSecp256k1, priv)
	assert.Equal(t, before, tx.Hash())
}

func TestCheckSignWrongType(t *testing.T) {
	priv, err := crypto.GenKey()
	require.NoError(t, err)

	tx := &Transaction{Execer: []byte("coins"), Nonce: 3}
	tx.Sign(crypto.TypeSecp256k1, priv)
	tx.Signature.Ty = 99
	assert.False(t, tx.CheckSign())
}

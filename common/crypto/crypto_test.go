// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignVerify(t *testing.T) {
	priv, err := GenKey()
	require.NoError(t, err)
	msg := []byte("duelchain")

	sig := priv.Sign(msg)
	assert.True(t, priv.PubKey().VerifyBytes(msg, sig))
	assert.False(t, priv.PubKey().VerifyBytes([]byte("tampered"), sig))

	other, err := GenKey()
	require.NoError(t, err)
	assert.False(t, other.PubKey().VerifyBytes(msg, sig))
}

func TestKeyRoundTrip(t *testing.T) {
	priv, err := GenKey()
	require.NoError(t, err)

	priv2, err := PrivKeyFromBytes(priv.Bytes())
	require.NoError(t, err)
	assert.True(t, priv.Equals(priv2))

	pub2, err := PubKeyFromBytes(priv.PubKey().Bytes())
	require.NoError(t, err)
	assert.True(t, priv.PubKey().Equals(pub2))

	_, err = PrivKeyFromBytes([]byte{1, 2, 3})
	assert.Error(t, err)
	_, err = PubKeyFromBytes([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestSignatureString(t *testing.T) {
	priv, err := GenKey()
	require.NoError(t, err)
	assert.NotEmpty(t, priv.Sign([]byte("msg")).(SignatureSecp256k1).String())

	// 短签名不会越界
	assert.NotPanics(t, func() {
		_ = SignatureSecp256k1(nil).String()
		_ = SignatureSecp256k1([]byte{1, 2}).String()
	})
}

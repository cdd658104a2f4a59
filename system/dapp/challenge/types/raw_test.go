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

func genAddr(t *testing.T) string {
	priv, err := crypto.GenKey()
	require.NoError(t, err)
	return address.PubKeyToAddress(priv.PubKey().Bytes()).String()
}

func TestAdminStateCodec(t *testing.T) {
	admin := &AdminState{
		Admin:       genAddr(t),
		IsActive:    true,
		CreatedAt:   1234,
		LastUpdated: 5678,
	}
	raw := EncodeAdminState(admin)
	assert.Len(t, raw, 2+AdminStatePayloadLen)

	got, err := DecodeAdminState(raw)
	require.NoError(t, err)
	assert.Equal(t, admin.Admin, got.Admin)
	assert.True(t, got.IsActive)
	assert.Equal(t, int64(1234), got.CreatedAt)
	assert.Equal(t, int64(5678), got.LastUpdated)
}

func TestChallengeCodecOpen(t *testing.T) {
	addr := genAddr(t)
	ch := &Challenge{
		Addr:         addr,
		Creator:      genAddr(t),
		EntryFee:     100,
		Status:       StatusOpen,
		DisputeTimer: 900,
		CreatedAt:    0,
		LastUpdated:  0,
	}
	raw := EncodeChallenge(ch)
	assert.Len(t, raw, 2+ChallengePayloadLen)

	got, err := DecodeChallenge(addr, raw)
	require.NoError(t, err)
	assert.Equal(t, ch.Creator, got.Creator)
	assert.Nil(t, got.Challenger)
	assert.Nil(t, got.Winner)
	assert.Equal(t, int64(100), got.EntryFee)
	assert.Equal(t, StatusOpen, got.Status)
	assert.False(t, got.Processing)
}

func TestChallengeCodecCompleted(t *testing.T) {
	addr := genAddr(t)
	challenger := genAddr(t)
	ch := &Challenge{
		Addr:         addr,
		Creator:      genAddr(t),
		Challenger:   &AddrValue{Addr: challenger},
		EntryFee:     1000,
		Status:       StatusCompleted,
		DisputeTimer: 900,
		Winner:       &AddrValue{Addr: challenger},
		CreatedAt:    0,
		LastUpdated:  800,
	}
	got, err := DecodeChallenge(addr, EncodeChallenge(ch))
	require.NoError(t, err)
	require.NotNil(t, got.Challenger)
	assert.Equal(t, challenger, got.Challenger.Addr)
	require.NotNil(t, got.Winner)
	assert.Equal(t, challenger, got.Winner.Addr)
	assert.Equal(t, StatusCompleted, got.Status)
}

func TestPriceOracleCodec(t *testing.T) {
	oracle := &PriceOracle{Price: DefaultOraclePrice, LastUpdated: 42}
	raw := EncodePriceOracle(oracle)
	assert.Len(t, raw, 2+PriceOraclePayloadLen)

	got, err := DecodePriceOracle(raw)
	require.NoError(t, err)
	assert.Equal(t, DefaultOraclePrice, got.Price)
	assert.Equal(t, int64(42), got.LastUpdated)
}

func TestDecodeRejectsBadRecord(t *testing.T) {
	oracle := EncodePriceOracle(&PriceOracle{Price: 1})

	// tag不匹配
	_, err := DecodeAdminState(oracle)
	assert.Error(t, err)

	// 长度不匹配
	_, err = DecodePriceOracle(oracle[:10])
	assert.Equal(t, ErrRecordSize, err)

	// 版本不匹配
	bad := make([]byte, len(oracle))
	copy(bad, oracle)
	bad[1] = 0xff
	_, err = DecodePriceOracle(bad)
	assert.Equal(t, ErrRecordVersion, err)
}

func TestCalcAddrDeterministic(t *testing.T) {
	creator := genAddr(t)
	a1 := CalcChallengeAddr(creator, "n1")
	a2 := CalcChallengeAddr(creator, "n1")
	assert.Equal(t, a1, a2)
	assert.NotEqual(t, a1, CalcChallengeAddr(creator, "n2"))
	assert.NoError(t, address.CheckAddress(a1))

	v1 := CalcVaultAddr(a1, "duel")
	assert.Equal(t, v1, CalcVaultAddr(a1, "duel"))
	assert.NotEqual(t, v1, CalcVaultAddr(a1, "other"))
	assert.NotEqual(t, v1, a1)
}

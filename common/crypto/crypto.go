// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crypto secp256k1签名算法封装
package crypto

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"

	secp256k1 "github.com/btcsuite/btcd/btcec/v2"
	secpecdsa "github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/duelchain/duelchain/common"
)

// TypeSecp256k1 签名类型
const (
	TypeSecp256k1 = int32(2)
	NameSecp256k1 = "secp256k1"
)

// PrivKey 私钥接口
type PrivKey interface {
	Bytes() []byte
	Sign(msg []byte) Signature
	PubKey() PubKey
	Equals(PrivKey) bool
}

// PubKey 公钥接口
type PubKey interface {
	Bytes() []byte
	VerifyBytes(msg []byte, sig Signature) bool
	Equals(PubKey) bool
}

// Signature 签名接口
type Signature interface {
	Bytes() []byte
	Equals(Signature) bool
}

// GenKey 生成一个新的随机私钥
func GenKey() (PrivKey, error) {
	privKeyBytes := [32]byte{}
	if _, err := rand.Read(privKeyBytes[:]); err != nil {
		return nil, err
	}
	priv, _ := secp256k1.PrivKeyFromBytes(privKeyBytes[:])
	copy(privKeyBytes[:], priv.Serialize())
	return PrivKeySecp256k1(privKeyBytes), nil
}

// PrivKeyFromBytes 从字节恢复私钥
func PrivKeyFromBytes(b []byte) (PrivKey, error) {
	if len(b) != 32 {
		return nil, errors.New("invalid priv key byte")
	}
	privKeyBytes := new([32]byte)
	copy(privKeyBytes[:], b[:32])
	priv, _ := secp256k1.PrivKeyFromBytes(privKeyBytes[:])
	copy(privKeyBytes[:], priv.Serialize())
	return PrivKeySecp256k1(*privKeyBytes), nil
}

// PubKeyFromBytes 从压缩公钥字节恢复公钥
func PubKeyFromBytes(b []byte) (PubKey, error) {
	if len(b) != 33 {
		return nil, errors.New("invalid pub key byte")
	}
	pubKeyBytes := new([33]byte)
	copy(pubKeyBytes[:], b)
	return PubKeySecp256k1(*pubKeyBytes), nil
}

// SignatureFromBytes 从DER字节恢复签名
func SignatureFromBytes(b []byte) (Signature, error) {
	return SignatureSecp256k1(b), nil
}

// PrivKeySecp256k1 secp256k1私钥
type PrivKeySecp256k1 [32]byte

// Bytes 私钥字节
func (privKey PrivKeySecp256k1) Bytes() []byte {
	s := make([]byte, 32)
	copy(s, privKey[:])
	return s
}

// Sign 签名msg的sha256摘要
func (privKey PrivKeySecp256k1) Sign(msg []byte) Signature {
	priv, _ := secp256k1.PrivKeyFromBytes(privKey[:])
	sig := secpecdsa.Sign(priv, common.Sha256(msg))
	return SignatureSecp256k1(sig.Serialize())
}

// PubKey 导出公钥
func (privKey PrivKeySecp256k1) PubKey() PubKey {
	_, pub := secp256k1.PrivKeyFromBytes(privKey[:])
	var pubkey PubKeySecp256k1
	copy(pubkey[:], pub.SerializeCompressed())
	return pubkey
}

// Equals 判等
func (privKey PrivKeySecp256k1) Equals(other PrivKey) bool {
	otherSecp, ok := other.(PrivKeySecp256k1)
	return ok && bytes.Equal(privKey[:], otherSecp[:])
}

func (privKey PrivKeySecp256k1) String() string {
	return "PrivKeySecp256k1{*****}"
}

// PubKeySecp256k1 压缩格式公钥
type PubKeySecp256k1 [33]byte

// Bytes 公钥字节
func (pubKey PubKeySecp256k1) Bytes() []byte {
	s := make([]byte, 33)
	copy(s, pubKey[:])
	return s
}

// VerifyBytes 校验msg的签名
func (pubKey PubKeySecp256k1) VerifyBytes(msg []byte, sig Signature) bool {
	pub, err := secp256k1.ParsePubKey(pubKey[:])
	if err != nil {
		return false
	}
	wrap, ok := sig.(SignatureSecp256k1)
	if !ok {
		return false
	}
	sig2, err := secpecdsa.ParseDERSignature(wrap[:])
	if err != nil {
		return false
	}
	return sig2.Verify(common.Sha256(msg), pub)
}

// Equals 判等
func (pubKey PubKeySecp256k1) Equals(other PubKey) bool {
	otherSecp, ok := other.(PubKeySecp256k1)
	return ok && bytes.Equal(pubKey[:], otherSecp[:])
}

func (pubKey PubKeySecp256k1) String() string {
	return fmt.Sprintf("PubKeySecp256k1{%x}", pubKey[:])
}

// SignatureSecp256k1 DER编码签名
type SignatureSecp256k1 []byte

// Bytes 签名字节
func (sig SignatureSecp256k1) Bytes() []byte {
	s := make([]byte, len(sig))
	copy(s, sig)
	return s
}

// Equals 判等
func (sig SignatureSecp256k1) Equals(other Signature) bool {
	otherSig, ok := other.(SignatureSecp256k1)
	return ok && bytes.Equal(sig, otherSig)
}

func (sig SignatureSecp256k1) String() string {
	if len(sig) < 8 {
		return fmt.Sprintf("/%x/", []byte(sig))
	}
	return fmt.Sprintf("/%x.../", []byte(sig[:8]))
}

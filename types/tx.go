// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"github.com/duelchain/duelchain/common"
	"github.com/duelchain/duelchain/common/address"
	"github.com/duelchain/duelchain/common/crypto"
)

// Hash 交易哈希，不含签名
func (tx *Transaction) Hash() []byte {
	copytx := cloneTx(tx)
	copytx.Signature = nil
	data := Encode(copytx)
	return common.Sha256(data)
}

// Sign 用priv签名交易
func (tx *Transaction) Sign(ty int32, priv crypto.PrivKey) {
	tx.Signature = nil
	data := Encode(tx)
	pub := priv.PubKey()
	sign := priv.Sign(data)
	tx.Signature = &Signature{
		Ty:        ty,
		Pubkey:    pub.Bytes(),
		Signature: sign.Bytes(),
	}
}

// CheckSign 校验签名
func (tx *Transaction) CheckSign() bool {
	copytx := cloneTx(tx)
	copytx.Signature = nil
	data := Encode(copytx)
	if tx.GetSignature() == nil {
		return false
	}
	return checkSign(data, tx.GetSignature())
}

// From 签名者地址，交易的调用方身份由此而来
func (tx *Transaction) From() string {
	if tx.GetSignature() == nil {
		return ""
	}
	return address.PubKeyToAddress(tx.GetSignature().GetPubkey()).String()
}

func cloneTx(tx *Transaction) *Transaction {
	copytx := &Transaction{}
	copytx.Execer = tx.Execer
	copytx.Payload = tx.Payload
	copytx.Signature = tx.Signature
	copytx.Fee = tx.Fee
	copytx.Nonce = tx.Nonce
	copytx.To = tx.To
	return copytx
}

func checkSign(data []byte, sign *Signature) bool {
	if sign.GetTy() != crypto.TypeSecp256k1 {
		return false
	}
	pub, err := crypto.PubKeyFromBytes(sign.GetPubkey())
	if err != nil {
		return false
	}
	sig, err := crypto.SignatureFromBytes(sign.GetSignature())
	if err != nil {
		return false
	}
	return pub.VerifyBytes(data, sig)
}

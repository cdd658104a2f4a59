// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package common

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/ripemd160"
)

// Sha256 returns SHA256( data )
func Sha256(b []byte) []byte {
	s := sha256.New()
	s.Write(b)
	return s.Sum(nil)
}

func sha2Hash(b []byte, out []byte) {
	s := sha256.New()
	s.Write(b)
	tmp := s.Sum(nil)
	s.Reset()
	s.Write(tmp)
	copy(out, s.Sum(nil))
}

// Sha2Sum returns hash: SHA256( SHA256( data ) )
func Sha2Sum(b []byte) (out [32]byte) {
	sha2Hash(b, out[:])
	return
}

func rimpHash(in []byte, out []byte) {
	sha := sha256.New()
	sha.Write(in)
	rim := ripemd160.New()
	rim.Write(sha.Sum(nil))
	copy(out, rim.Sum(nil))
}

// Rimp160AfterSha256 returns hash: RIMP160( SHA256( data ) )
func Rimp160AfterSha256(b []byte) (out [20]byte) {
	rimpHash(b, out[:])
	return
}

// ToHex returns the hex representation of b, prefix free
func ToHex(b []byte) string {
	return hex.EncodeToString(b)
}

// FromHex decodes a hex string, prefix free
func FromHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

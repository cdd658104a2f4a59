// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package types

import (
	"encoding/binary"
	"errors"

	"github.com/decred/base58"
)

// 状态库里的记录采用定宽布局：[记录tag 1字节][布局版本 1字节][定宽payload]。
// 地址字段固定32字节，base58解码后的25字节原始地址左对齐，其余补零。
// 布局一旦发布不可变更，扩展字段必须升版本号。

const (
	rawTagAdminState  = byte(0x01)
	rawTagChallenge   = byte(0x02)
	rawTagPriceOracle = byte(0x03)

	rawLayoutVersion = byte(0x01)

	rawAddrLen    = 32
	rawAddrRawLen = 25
	rawOptAddrLen = 1 + rawAddrLen
	rawHeaderLen  = 2

	// 各记录payload长度，不含2字节头
	AdminStatePayloadLen  = rawAddrLen + 1 + 8 + 8
	ChallengePayloadLen   = rawAddrLen + rawOptAddrLen + 8 + 1 + 8 + rawOptAddrLen + 8 + 8 + 1
	PriceOraclePayloadLen = 8 + 8
)

// 记录解码失败的错误
var (
	ErrRecordTag     = errors.New("ErrRecordTag")
	ErrRecordVersion = errors.New("ErrRecordVersion")
	ErrRecordSize    = errors.New("ErrRecordSize")
	ErrRecordAddr    = errors.New("ErrRecordAddr")
)

func rawPutAddr(buf []byte, addr string) {
	raw := base58.Decode(addr)
	copy(buf[:rawAddrLen], raw)
}

func rawGetAddr(buf []byte) (string, error) {
	for i := rawAddrRawLen; i < rawAddrLen; i++ {
		if buf[i] != 0 {
			return "", ErrRecordAddr
		}
	}
	return base58.Encode(buf[:rawAddrRawLen]), nil
}

func rawPutOptAddr(buf []byte, v *AddrValue) {
	if v == nil || v.Addr == "" {
		return
	}
	buf[0] = 1
	rawPutAddr(buf[1:], v.Addr)
}

func rawGetOptAddr(buf []byte) (*AddrValue, error) {
	if buf[0] == 0 {
		return nil, nil
	}
	addr, err := rawGetAddr(buf[1:])
	if err != nil {
		return nil, err
	}
	return &AddrValue{Addr: addr}, nil
}

func rawPutBool(buf []byte, v bool) {
	if v {
		buf[0] = 1
	}
}

func rawCheckHeader(raw []byte, tag byte, payloadLen int) error {
	if len(raw) != rawHeaderLen+payloadLen {
		return ErrRecordSize
	}
	if raw[0] != tag {
		return ErrRecordTag
	}
	if raw[1] != rawLayoutVersion {
		return ErrRecordVersion
	}
	return nil
}

// EncodeAdminState 管理员记录编码
func EncodeAdminState(s *AdminState) []byte {
	raw := make([]byte, rawHeaderLen+AdminStatePayloadLen)
	raw[0] = rawTagAdminState
	raw[1] = rawLayoutVersion
	p := raw[rawHeaderLen:]
	rawPutAddr(p[0:], s.Admin)
	rawPutBool(p[32:], s.IsActive)
	binary.BigEndian.PutUint64(p[33:], uint64(s.CreatedAt))
	binary.BigEndian.PutUint64(p[41:], uint64(s.LastUpdated))
	return raw
}

// DecodeAdminState 管理员记录解码
func DecodeAdminState(raw []byte) (*AdminState, error) {
	if err := rawCheckHeader(raw, rawTagAdminState, AdminStatePayloadLen); err != nil {
		return nil, err
	}
	p := raw[rawHeaderLen:]
	admin, err := rawGetAddr(p[0:])
	if err != nil {
		return nil, err
	}
	return &AdminState{
		Admin:       admin,
		IsActive:    p[32] != 0,
		CreatedAt:   int64(binary.BigEndian.Uint64(p[33:])),
		LastUpdated: int64(binary.BigEndian.Uint64(p[41:])),
	}, nil
}

// EncodeChallenge 挑战记录编码。记录地址就是key，不重复入payload。
func EncodeChallenge(c *Challenge) []byte {
	raw := make([]byte, rawHeaderLen+ChallengePayloadLen)
	raw[0] = rawTagChallenge
	raw[1] = rawLayoutVersion
	p := raw[rawHeaderLen:]
	rawPutAddr(p[0:], c.Creator)
	rawPutOptAddr(p[32:], c.Challenger)
	binary.BigEndian.PutUint64(p[65:], uint64(c.EntryFee))
	p[73] = byte(c.Status)
	binary.BigEndian.PutUint64(p[74:], uint64(c.DisputeTimer))
	rawPutOptAddr(p[82:], c.Winner)
	binary.BigEndian.PutUint64(p[115:], uint64(c.CreatedAt))
	binary.BigEndian.PutUint64(p[123:], uint64(c.LastUpdated))
	rawPutBool(p[131:], c.Processing)
	return raw
}

// DecodeChallenge 挑战记录解码，addr由调用方从key传入
func DecodeChallenge(addr string, raw []byte) (*Challenge, error) {
	if err := rawCheckHeader(raw, rawTagChallenge, ChallengePayloadLen); err != nil {
		return nil, err
	}
	p := raw[rawHeaderLen:]
	creator, err := rawGetAddr(p[0:])
	if err != nil {
		return nil, err
	}
	challenger, err := rawGetOptAddr(p[32:])
	if err != nil {
		return nil, err
	}
	winner, err := rawGetOptAddr(p[82:])
	if err != nil {
		return nil, err
	}
	return &Challenge{
		Addr:         addr,
		Creator:      creator,
		Challenger:   challenger,
		EntryFee:     int64(binary.BigEndian.Uint64(p[65:])),
		Status:       int32(p[73]),
		DisputeTimer: int64(binary.BigEndian.Uint64(p[74:])),
		Winner:       winner,
		CreatedAt:    int64(binary.BigEndian.Uint64(p[115:])),
		LastUpdated:  int64(binary.BigEndian.Uint64(p[123:])),
		Processing:   p[131] != 0,
	}, nil
}

// EncodePriceOracle 价格记录编码
func EncodePriceOracle(o *PriceOracle) []byte {
	raw := make([]byte, rawHeaderLen+PriceOraclePayloadLen)
	raw[0] = rawTagPriceOracle
	raw[1] = rawLayoutVersion
	p := raw[rawHeaderLen:]
	binary.BigEndian.PutUint64(p[0:], uint64(o.Price))
	binary.BigEndian.PutUint64(p[8:], uint64(o.LastUpdated))
	return raw
}

// DecodePriceOracle 价格记录解码
func DecodePriceOracle(raw []byte) (*PriceOracle, error) {
	if err := rawCheckHeader(raw, rawTagPriceOracle, PriceOraclePayloadLen); err != nil {
		return nil, err
	}
	p := raw[rawHeaderLen:]
	return &PriceOracle{
		Price:       int64(binary.BigEndian.Uint64(p[0:])),
		LastUpdated: int64(binary.BigEndian.Uint64(p[8:])),
	}, nil
}

// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types 实现了duelchain基础结构体、接口、常量等的定义
package types

import (
	"github.com/golang/protobuf/proto"
	log "github.com/inconshreveable/log15"
)

var tlog = log.New("module", "types")

// Message 声明proto.Message
type Message proto.Message

// 代币数量相关常量
const (
	// MaxCoin 单笔金额上限
	MaxCoin int64 = 1e17
	// MaxTokenBalance 单账户代币余额上限
	MaxTokenBalance int64 = 900 * 1e8 * 1e8
)

// Receipt执行结果类型
const (
	ExecErr  = 0
	ExecPack = 1
	ExecOk   = 2
)

// Encode 编码，编码失败属于不可恢复错误
func Encode(data proto.Message) []byte {
	b, err := proto.Marshal(data)
	if err != nil {
		panic(err)
	}
	return b
}

// Size 消息大小
func Size(data proto.Message) int {
	return proto.Size(data)
}

// Decode 解码
func Decode(data []byte, msg proto.Message) error {
	return proto.Unmarshal(data, msg)
}

// Clone 深拷贝proto消息
func Clone(data proto.Message) proto.Message {
	return proto.Clone(data)
}

// CheckAmount 金额合法性
func CheckAmount(amount int64) bool {
	if amount <= 0 || amount >= MaxCoin {
		return false
	}
	return true
}

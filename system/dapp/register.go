// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dapp

import (
	"github.com/duelchain/duelchain/types"
)

// DriverCreate 驱动构造函数
type DriverCreate func() Driver

var registedExecDriver = make(map[string]DriverCreate)

// Register 注册执行器驱动，重复注册属于编码错误
func Register(name string, create DriverCreate) {
	if create == nil {
		panic("dapp: Register driver is nil")
	}
	if _, dup := registedExecDriver[name]; dup {
		panic("dapp: Register called twice for driver " + name)
	}
	registedExecDriver[name] = create
}

// Load 按名称创建执行器实例
func Load(name string) (Driver, error) {
	create, ok := registedExecDriver[name]
	if !ok {
		return nil, types.ErrExecNotFound
	}
	return create(), nil
}

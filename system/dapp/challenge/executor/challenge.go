// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package executor challenge 是双人对赌托管执行器

挑战生命周期：
Open --accept--> InProgress --resolve--> Completed
Open --cancel/claimRefund--> Cancelled
InProgress --dispute--> Disputed

押注托管在按挑战地址推导的金库账户里，金库只接受执行器本身发起的转账。
每个操作要么完整生效，要么原样回滚，错误即放弃全部变更。
*/
package executor

import (
	drivers "github.com/duelchain/duelchain/system/dapp"
	cht "github.com/duelchain/duelchain/system/dapp/challenge/types"
	log "github.com/inconshreveable/log15"
)

var clog = log.New("module", "execs.challenge")

var driverName = cht.ChallengeX

func init() {
	drivers.Register(driverName, newChallenge)
}

// Challenge 对赌托管执行器
type Challenge struct {
	drivers.DriverBase
}

func newChallenge() drivers.Driver {
	c := &Challenge{}
	c.SetChild(c)
	return c
}

// GetDriverName 驱动名称
func (c *Challenge) GetDriverName() string {
	return driverName
}

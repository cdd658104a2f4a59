// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	dbm "github.com/duelchain/duelchain/common/db"
	cht "github.com/duelchain/duelchain/system/dapp/challenge/types"
	"github.com/duelchain/duelchain/types"
)

// Query 只读查询，不经过交易
func (c *Challenge) Query(funcName string, params []byte) (types.Message, error) {
	switch funcName {
	case "GetChallenge":
		var req cht.ReqAddr
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		return c.getChallenge(req.Addr)
	case "GetAdminState":
		return c.getAdmin()
	case "GetPriceOracle":
		return c.getOracle()
	case "GetVaultAccount":
		var req cht.ReqAddr
		if err := types.Decode(params, &req); err != nil {
			return nil, err
		}
		vault := cht.CalcVaultAddr(req.Addr, c.GetCoinsAccount().GetSymbol())
		return c.GetCoinsAccount().LoadAccount(vault), nil
	default:
		return nil, types.ErrQueryNotSupport
	}
}

func (c *Challenge) getChallenge(addr string) (*cht.Challenge, error) {
	value, err := c.GetStateDB().Get(challengeKey(addr))
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return cht.DecodeChallenge(addr, value)
}

func (c *Challenge) getAdmin() (*cht.AdminState, error) {
	value, err := c.GetStateDB().Get(adminKey())
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return cht.DecodeAdminState(value)
}

func (c *Challenge) getOracle() (*cht.PriceOracle, error) {
	value, err := c.GetStateDB().Get(oracleKey())
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return cht.DecodePriceOracle(value)
}

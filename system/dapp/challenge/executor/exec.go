// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	cht "github.com/duelchain/duelchain/system/dapp/challenge/types"
	"github.com/duelchain/duelchain/types"
)

// Exec 按action分发
func (c *Challenge) Exec(tx *types.Transaction, index int) (*types.Receipt, error) {
	var act cht.ChallengeAction
	err := types.Decode(tx.Payload, &act)
	if err != nil {
		return nil, err
	}
	a := newAction(c, tx)
	switch v := act.GetValue().(type) {
	case *cht.ChallengeAction_AdminInit:
		return a.adminInit(v.AdminInit)
	case *cht.ChallengeAction_AdminUpdate:
		return a.adminUpdate(v.AdminUpdate)
	case *cht.ChallengeAction_AdminRevoke:
		return a.adminRevoke()
	case *cht.ChallengeAction_OracleInit:
		return a.oracleInit()
	case *cht.ChallengeAction_PriceUpdate:
		return a.priceUpdate(v.PriceUpdate)
	case *cht.ChallengeAction_Create:
		return a.create(v.Create)
	case *cht.ChallengeAction_Accept:
		return a.accept(v.Accept)
	case *cht.ChallengeAction_Resolve:
		return a.resolve(v.Resolve)
	case *cht.ChallengeAction_Cancel:
		return a.cancel(v.Cancel)
	case *cht.ChallengeAction_ClaimRefund:
		return a.claimRefund(v.ClaimRefund)
	case *cht.ChallengeAction_Dispute:
		return a.dispute(v.Dispute)
	default:
		return nil, types.ErrActionNotSupport
	}
}

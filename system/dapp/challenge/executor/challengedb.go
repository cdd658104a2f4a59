// Copyright Duelchain Corp. 2024 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package executor

import (
	"github.com/duelchain/duelchain/account"
	"github.com/duelchain/duelchain/common/address"
	dbm "github.com/duelchain/duelchain/common/db"
	drivers "github.com/duelchain/duelchain/system/dapp"
	cht "github.com/duelchain/duelchain/system/dapp/challenge/types"
	"github.com/duelchain/duelchain/types"
	"github.com/pkg/errors"
)

// action 单笔交易的执行上下文
type action struct {
	coinsAccount *account.DB
	db           dbm.KV
	fromaddr     string
	blocktime    int64
	height       int64
	execaddr     string
}

func newAction(c *Challenge, tx *types.Transaction) *action {
	return &action{
		coinsAccount: c.GetCoinsAccount(),
		db:           c.GetStateDB(),
		fromaddr:     tx.From(),
		blocktime:    c.GetBlockTime(),
		height:       c.GetHeight(),
		execaddr:     drivers.ExecAddress(string(tx.Execer)),
	}
}

func (a *action) getAdmin() (*cht.AdminState, error) {
	value, err := a.db.Get(adminKey())
	if err != nil {
		return nil, err
	}
	return cht.DecodeAdminState(value)
}

// requireActiveAdmin 管理员记录存在且活跃，否则一律视为AdminInactive
func (a *action) requireActiveAdmin() (*cht.AdminState, error) {
	admin, err := a.getAdmin()
	if err == dbm.ErrNotFoundInDb {
		return nil, cht.ErrAdminInactive
	}
	if err != nil {
		return nil, err
	}
	if !admin.IsActive {
		return nil, cht.ErrAdminInactive
	}
	return admin, nil
}

func (a *action) getChallenge(addr string) (*cht.Challenge, error) {
	value, err := a.db.Get(challengeKey(addr))
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return cht.DecodeChallenge(addr, value)
}

func adminKV(admin *cht.AdminState) *types.KeyValue {
	return &types.KeyValue{Key: adminKey(), Value: cht.EncodeAdminState(admin)}
}

func oracleKV(oracle *cht.PriceOracle) *types.KeyValue {
	return &types.KeyValue{Key: oracleKey(), Value: cht.EncodePriceOracle(oracle)}
}

func challengeKV(ch *cht.Challenge) *types.KeyValue {
	return &types.KeyValue{Key: challengeKey(ch.Addr), Value: cht.EncodeChallenge(ch)}
}

func receiptLog(ty int64, msg types.Message) *types.ReceiptLog {
	return &types.ReceiptLog{Ty: int32(ty), Log: types.Encode(msg)}
}

// mergeReceipt 把资金变动回执并进本操作的回执
func mergeReceipt(receipt, transfer *types.Receipt) {
	receipt.KV = append(receipt.KV, transfer.KV...)
	receipt.Logs = append(receipt.Logs, transfer.Logs...)
}

// adminInit 首次写入生效，重复初始化报错
func (a *action) adminInit(init *cht.AdminInit) (*types.Receipt, error) {
	if err := address.CheckAddress(init.Admin); err != nil {
		return nil, cht.ErrInvalidAdmin
	}
	_, err := a.getAdmin()
	if err == nil {
		return nil, cht.ErrInvalidAdmin
	}
	if err != dbm.ErrNotFoundInDb {
		return nil, err
	}
	admin := &cht.AdminState{
		Admin:       init.Admin,
		IsActive:    true,
		CreatedAt:   a.blocktime,
		LastUpdated: a.blocktime,
	}
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: []*types.KeyValue{adminKV(admin)},
		Logs: []*types.ReceiptLog{receiptLog(cht.TyLogAdminInitialized,
			&cht.AdminInitialized{Admin: admin.Admin, Timestamp: a.blocktime})},
	}, nil
}

func (a *action) adminUpdate(update *cht.AdminUpdate) (*types.Receipt, error) {
	admin, err := a.getAdmin()
	if err == dbm.ErrNotFoundInDb {
		return nil, cht.ErrInvalidAdmin
	}
	if err != nil {
		return nil, err
	}
	if a.fromaddr != admin.Admin {
		return nil, cht.ErrUnauthorized
	}
	if !admin.IsActive {
		return nil, cht.ErrAdminInactive
	}
	if err := address.CheckAddress(update.NewAdmin); err != nil {
		return nil, cht.ErrInvalidAdmin
	}
	oldAdmin := admin.Admin
	admin.Admin = update.NewAdmin
	admin.LastUpdated = a.blocktime
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: []*types.KeyValue{adminKV(admin)},
		Logs: []*types.ReceiptLog{receiptLog(cht.TyLogAdminUpdated,
			&cht.AdminUpdated{OldAdmin: oldAdmin, NewAdmin: admin.Admin, Timestamp: a.blocktime})},
	}, nil
}

// adminRevoke 撤销后没有重新激活的路径
func (a *action) adminRevoke() (*types.Receipt, error) {
	admin, err := a.getAdmin()
	if err == dbm.ErrNotFoundInDb {
		return nil, cht.ErrInvalidAdmin
	}
	if err != nil {
		return nil, err
	}
	if a.fromaddr != admin.Admin {
		return nil, cht.ErrUnauthorized
	}
	if !admin.IsActive {
		return nil, cht.ErrAdminInactive
	}
	admin.IsActive = false
	admin.LastUpdated = a.blocktime
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: []*types.KeyValue{adminKV(admin)},
		Logs: []*types.ReceiptLog{receiptLog(cht.TyLogAdminRevoked,
			&cht.AdminRevoked{Admin: admin.Admin, Timestamp: a.blocktime})},
	}, nil
}

func (a *action) oracleInit() (*types.Receipt, error) {
	admin, err := a.requireActiveAdmin()
	if err != nil {
		return nil, err
	}
	if a.fromaddr != admin.Admin {
		return nil, cht.ErrUnauthorized
	}
	_, err = a.db.Get(oracleKey())
	if err == nil {
		return nil, types.ErrInvalidParam
	}
	if err != dbm.ErrNotFoundInDb {
		return nil, err
	}
	oracle := &cht.PriceOracle{Price: cht.DefaultOraclePrice, LastUpdated: a.blocktime}
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: []*types.KeyValue{oracleKV(oracle)},
	}, nil
}

// priceUpdate 无条件覆盖，价格本身不参与挑战校验
func (a *action) priceUpdate(update *cht.PriceUpdate) (*types.Receipt, error) {
	admin, err := a.requireActiveAdmin()
	if err != nil {
		return nil, err
	}
	if a.fromaddr != admin.Admin {
		return nil, cht.ErrUnauthorized
	}
	if update.Price <= 0 {
		return nil, types.ErrInvalidParam
	}
	value, err := a.db.Get(oracleKey())
	if err == dbm.ErrNotFoundInDb {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	oracle, err := cht.DecodePriceOracle(value)
	if err != nil {
		return nil, err
	}
	oracle.Price = update.Price
	oracle.LastUpdated = a.blocktime
	return &types.Receipt{
		Ty: types.ExecOk,
		KV: []*types.KeyValue{oracleKV(oracle)},
	}, nil
}

func (a *action) create(create *cht.ChallengeCreate) (*types.Receipt, error) {
	if create.EntryFee < cht.MinEntryFee {
		return nil, cht.ErrEntryFeeTooLow
	}
	if create.EntryFee > cht.MaxEntryFee {
		return nil, cht.ErrEntryFeeTooHigh
	}
	if create.Nonce == "" {
		return nil, types.ErrInvalidParam
	}
	challAddr := cht.CalcChallengeAddr(a.fromaddr, create.Nonce)
	_, err := a.db.Get(challengeKey(challAddr))
	if err == nil {
		// creator+nonce已经用过
		return nil, types.ErrInvalidParam
	}
	if err != dbm.ErrNotFoundInDb {
		return nil, err
	}
	if a.coinsAccount.LoadAccount(a.fromaddr).GetBalance() < create.EntryFee {
		return nil, cht.ErrInsufficientFunds
	}
	vault := cht.CalcVaultAddr(challAddr, a.coinsAccount.GetSymbol())
	transfer, err := a.coinsAccount.Transfer(a.fromaddr, vault, create.EntryFee)
	if err != nil {
		return nil, errors.Wrap(err, "create: stake deposit")
	}
	ch := &cht.Challenge{
		Addr:         challAddr,
		Creator:      a.fromaddr,
		EntryFee:     create.EntryFee,
		Status:       cht.StatusOpen,
		DisputeTimer: a.blocktime + cht.DisputeWindow,
		CreatedAt:    a.blocktime,
		LastUpdated:  a.blocktime,
	}
	receipt := &types.Receipt{Ty: types.ExecOk}
	mergeReceipt(receipt, transfer)
	receipt.KV = append(receipt.KV, challengeKV(ch))
	receipt.Logs = append(receipt.Logs, receiptLog(cht.TyLogChallengeCreated,
		&cht.ChallengeCreated{
			Challenge: challAddr,
			Creator:   a.fromaddr,
			Amount:    create.EntryFee,
			Timestamp: a.blocktime,
		}))
	clog.Info("challenge created", "addr", challAddr, "creator", a.fromaddr, "fee", create.EntryFee)
	return receipt, nil
}

func (a *action) accept(accept *cht.ChallengeAccept) (*types.Receipt, error) {
	ch, err := a.getChallenge(accept.ChallengeAddr)
	if err != nil {
		return nil, err
	}
	// 自我对战在任何其他条件下都直接拒绝
	if a.fromaddr == ch.Creator {
		return nil, cht.ErrSelfChallenge
	}
	if _, err := a.requireActiveAdmin(); err != nil {
		return nil, err
	}
	if ch.Status != cht.StatusOpen {
		return nil, cht.ErrNotOpen
	}
	if ch.Challenger != nil {
		return nil, cht.ErrAlreadyAccepted
	}
	if a.blocktime >= ch.DisputeTimer {
		return nil, cht.ErrChallengeExpired
	}
	if a.coinsAccount.LoadAccount(a.fromaddr).GetBalance() < ch.EntryFee {
		return nil, cht.ErrInsufficientFunds
	}
	vault := cht.CalcVaultAddr(ch.Addr, a.coinsAccount.GetSymbol())
	transfer, err := a.coinsAccount.Transfer(a.fromaddr, vault, ch.EntryFee)
	if err != nil {
		return nil, errors.Wrap(err, "accept: stake deposit")
	}
	ch.Challenger = &cht.AddrValue{Addr: a.fromaddr}
	ch.Status = cht.StatusInProgress
	ch.LastUpdated = a.blocktime
	receipt := &types.Receipt{Ty: types.ExecOk}
	mergeReceipt(receipt, transfer)
	receipt.KV = append(receipt.KV, challengeKV(ch))
	receipt.Logs = append(receipt.Logs, receiptLog(cht.TyLogChallengeAccepted,
		&cht.ChallengeAccepted{
			Challenge:  ch.Addr,
			Challenger: a.fromaddr,
			Timestamp:  a.blocktime,
		}))
	clog.Info("challenge accepted", "addr", ch.Addr, "challenger", a.fromaddr)
	return receipt, nil
}

func (a *action) resolve(resolve *cht.ChallengeResolve) (*types.Receipt, error) {
	ch, err := a.getChallenge(resolve.ChallengeAddr)
	if err != nil {
		return nil, err
	}
	if ch.Processing {
		return nil, cht.ErrReentrancyDetected
	}
	if _, err := a.requireActiveAdmin(); err != nil {
		return nil, err
	}
	if ch.Status != cht.StatusInProgress {
		return nil, cht.ErrNotInProgress
	}
	if resolve.Winner != ch.Creator &&
		(ch.Challenger == nil || resolve.Winner != ch.Challenger.Addr) {
		return nil, cht.ErrInvalidWinner
	}
	if a.blocktime >= ch.DisputeTimer {
		return nil, cht.ErrChallengeExpired
	}
	// 资金动账前置保护位，出账完成后清除
	ch.Processing = true
	vault := cht.CalcVaultAddr(ch.Addr, a.coinsAccount.GetSymbol())
	payout := ch.EntryFee * 2
	transfer, err := a.coinsAccount.Transfer(vault, resolve.Winner, payout)
	if err != nil {
		return nil, errors.Wrap(err, "resolve: payout")
	}
	ch.Winner = &cht.AddrValue{Addr: resolve.Winner}
	ch.Status = cht.StatusCompleted
	ch.LastUpdated = a.blocktime
	ch.Processing = false
	receipt := &types.Receipt{Ty: types.ExecOk}
	mergeReceipt(receipt, transfer)
	receipt.KV = append(receipt.KV, challengeKV(ch))
	receipt.Logs = append(receipt.Logs, receiptLog(cht.TyLogPayoutCompleted,
		&cht.PayoutCompleted{
			Challenge: ch.Addr,
			Winner:    resolve.Winner,
			Amount:    payout,
			Timestamp: a.blocktime,
		}))
	clog.Info("challenge resolved", "addr", ch.Addr, "winner", resolve.Winner, "payout", payout)
	return receipt, nil
}

func (a *action) cancel(cancel *cht.ChallengeCancel) (*types.Receipt, error) {
	ch, err := a.getChallenge(cancel.ChallengeAddr)
	if err != nil {
		return nil, err
	}
	if ch.Processing {
		return nil, cht.ErrReentrancyDetected
	}
	if _, err := a.requireActiveAdmin(); err != nil {
		return nil, err
	}
	if ch.Status != cht.StatusOpen {
		return nil, cht.ErrNotOpen
	}
	if a.fromaddr != ch.Creator {
		return nil, cht.ErrUnauthorized
	}
	if a.blocktime >= ch.DisputeTimer {
		return nil, cht.ErrChallengeExpired
	}
	return a.refund(ch)
}

// claimRefund 窗口过期且无人应战时创建者取回押注
func (a *action) claimRefund(claim *cht.ChallengeClaimRefund) (*types.Receipt, error) {
	ch, err := a.getChallenge(claim.ChallengeAddr)
	if err != nil {
		return nil, err
	}
	if ch.Processing {
		return nil, cht.ErrReentrancyDetected
	}
	if a.fromaddr != ch.Creator {
		return nil, cht.ErrUnauthorized
	}
	if ch.Status != cht.StatusOpen {
		return nil, cht.ErrNotOpen
	}
	if a.blocktime < ch.DisputeTimer {
		return nil, cht.ErrChallengeNotExpired
	}
	if ch.Challenger != nil {
		return nil, cht.ErrAlreadyAccepted
	}
	return a.refund(ch)
}

// refund cancel与claimRefund共用的退款出账
func (a *action) refund(ch *cht.Challenge) (*types.Receipt, error) {
	ch.Processing = true
	vault := cht.CalcVaultAddr(ch.Addr, a.coinsAccount.GetSymbol())
	transfer, err := a.coinsAccount.Transfer(vault, ch.Creator, ch.EntryFee)
	if err != nil {
		return nil, errors.Wrap(err, "refund")
	}
	ch.Status = cht.StatusCancelled
	ch.LastUpdated = a.blocktime
	ch.Processing = false
	receipt := &types.Receipt{Ty: types.ExecOk}
	mergeReceipt(receipt, transfer)
	receipt.KV = append(receipt.KV, challengeKV(ch))
	receipt.Logs = append(receipt.Logs, receiptLog(cht.TyLogRefundIssued,
		&cht.RefundIssued{
			Challenge: ch.Addr,
			Recipient: ch.Creator,
			Amount:    ch.EntryFee,
			Timestamp: a.blocktime,
		}))
	clog.Info("challenge refunded", "addr", ch.Addr, "recipient", ch.Creator, "amount", ch.EntryFee)
	return receipt, nil
}

// dispute 只改状态不动资金，争议的裁决在链下
func (a *action) dispute(dispute *cht.ChallengeDispute) (*types.Receipt, error) {
	ch, err := a.getChallenge(dispute.ChallengeAddr)
	if err != nil {
		return nil, err
	}
	if _, err := a.requireActiveAdmin(); err != nil {
		return nil, err
	}
	if ch.Status != cht.StatusInProgress {
		return nil, cht.ErrNotInProgress
	}
	if a.blocktime < ch.DisputeTimer {
		return nil, cht.ErrChallengeNotExpired
	}
	if a.fromaddr != ch.Creator &&
		(ch.Challenger == nil || a.fromaddr != ch.Challenger.Addr) {
		return nil, cht.ErrUnauthorized
	}
	ch.Status = cht.StatusDisputed
	ch.LastUpdated = a.blocktime
	receipt := &types.Receipt{
		Ty: types.ExecOk,
		KV: []*types.KeyValue{challengeKV(ch)},
		Logs: []*types.ReceiptLog{receiptLog(cht.TyLogChallengeDisputed,
			&cht.ChallengeDisputed{
				Challenge: ch.Addr,
				Disputer:  a.fromaddr,
				Timestamp: a.blocktime,
			})},
	}
	clog.Info("challenge disputed", "addr", ch.Addr, "disputer", a.fromaddr)
	return receipt, nil
}

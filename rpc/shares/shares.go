// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package shares - JSON-RPC service over the share ledger
package shares

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/shareledger/account"
	"github.com/bitmark-inc/shareledger/amount"
	"github.com/bitmark-inc/shareledger/fault"
	"github.com/bitmark-inc/shareledger/ledger"
	"github.com/bitmark-inc/shareledger/mode"
	"github.com/bitmark-inc/shareledger/payout"
	"github.com/bitmark-inc/shareledger/rpc/ratelimit"
	"github.com/bitmark-inc/shareledger/rpc/replay"
)

const (
	rateLimitLedger = 200
	rateBurstLedger = 100
)

//go:generate mockgen -source=shares.go -destination=../mocks/ledger.go -package=mocks

// Ledger - the ledger operations used by the RPC
type Ledger interface {
	State() (ledger.State, error)
	SharesOwned(*account.Account) (uint32, error)
	Buy(*account.Account, uint32, amount.Amount) (ledger.Receipt, error)
	Sell(*account.Account, uint32) (*payout.Request, ledger.Receipt, error)
	Issue(*account.Account, uint32) (ledger.Receipt, error)
	BuyBack(*account.Account, uint32) (ledger.Receipt, error)
	PendingPayouts() ([]*payout.Request, error)
}

// Shares - type for the RPC, registered as "Ledger"
type Shares struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Ledger    Ledger
	Replay    *replay.Guard
	IsNormal  func(mode.Mode) bool
	IsTesting func() bool
}

// New - create the RPC handler
func New(log *logger.L, l Ledger, guard *replay.Guard, isNormal func(mode.Mode) bool, isTesting func() bool) *Shares {
	return &Shares{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		Ledger:    l,
		Replay:    guard,
		IsNormal:  isNormal,
		IsTesting: isTesting,
	}
}

// Ledger Buy
// ----------

// BuyReply - result of a purchase
type BuyReply struct {
	Owned       uint32 `json:"owned"`
	Outstanding uint32 `json:"outstanding"`
}

// Buy - purchase shares at the fixed price
func (s *Shares) Buy(arguments *SignedArguments, reply *BuyReply) error {
	if err := s.verify(MethodBuy, arguments); nil != err {
		return err
	}

	s.Log.Infof("Buy: caller: %s  quantity: %d  payment: %s", arguments.Caller, arguments.Quantity, arguments.Payment)

	receipt, err := s.Ledger.Buy(arguments.Caller, arguments.Quantity, arguments.Payment)
	if nil != err {
		return err
	}

	reply.Owned = receipt.Owned
	reply.Outstanding = receipt.Outstanding
	return nil
}

// Ledger Sell
// -----------

// SellReply - result of a sale
type SellReply struct {
	PayoutId    uuid.UUID     `json:"payoutId"`
	Amount      amount.Amount `json:"amount"`
	Owned       uint32        `json:"owned"`
	Outstanding uint32        `json:"outstanding"`
}

// Sell - return shares for a payout of their price
func (s *Shares) Sell(arguments *SignedArguments, reply *SellReply) error {
	if err := s.verify(MethodSell, arguments); nil != err {
		return err
	}
	if !arguments.Payment.IsZero() {
		return fault.ErrInvalidAmount
	}

	s.Log.Infof("Sell: caller: %s  quantity: %d", arguments.Caller, arguments.Quantity)

	request, receipt, err := s.Ledger.Sell(arguments.Caller, arguments.Quantity)
	if nil != err {
		return err
	}

	reply.PayoutId = request.Id
	reply.Amount = request.Amount
	reply.Owned = receipt.Owned
	reply.Outstanding = receipt.Outstanding
	return nil
}

// Ledger Issue and BuyBack
// ------------------------

// SupplyReply - result of a privileged supply change
type SupplyReply struct {
	Total       uint32 `json:"total"`
	Outstanding uint32 `json:"outstanding"`
}

// Issue - privileged increase of the total supply
func (s *Shares) Issue(arguments *SignedArguments, reply *SupplyReply) error {
	return s.supply(MethodIssue, s.Ledger.Issue, arguments, reply)
}

// BuyBack - privileged decrease of the total supply
func (s *Shares) BuyBack(arguments *SignedArguments, reply *SupplyReply) error {
	return s.supply(MethodBuyBack, s.Ledger.BuyBack, arguments, reply)
}

func (s *Shares) supply(method string, operation func(*account.Account, uint32) (ledger.Receipt, error), arguments *SignedArguments, reply *SupplyReply) error {
	if err := s.verify(method, arguments); nil != err {
		return err
	}
	if !arguments.Payment.IsZero() {
		return fault.ErrInvalidAmount
	}

	s.Log.Infof("%s: caller: %s  quantity: %d", method, arguments.Caller, arguments.Quantity)

	receipt, err := operation(arguments.Caller, arguments.Quantity)
	if nil != err {
		s.Log.Warnf("%s: caller: %s  error: %s", method, arguments.Caller, err)
		return err
	}

	reply.Total = receipt.Total
	reply.Outstanding = receipt.Outstanding
	return nil
}

// Ledger Info
// -----------

// InfoArguments - no arguments needed
type InfoArguments struct{}

// InfoReply - ledger parameters and supply
type InfoReply struct {
	Ticker            string        `json:"ticker"`
	TotalShares       uint32        `json:"totalShares"`
	SharesOutstanding uint32        `json:"sharesOutstanding"`
	PricePerShare     uint32        `json:"pricePerShare"`
	Decimals          int           `json:"decimals"`
	UnitMultiplier    amount.Amount `json:"unitMultiplier"`
}

// Info - read the ledger parameters
func (s *Shares) Info(arguments *InfoArguments, reply *InfoReply) error {
	if err := s.available(); nil != err {
		return err
	}

	state, err := s.Ledger.State()
	if nil != err {
		return err
	}

	reply.Ticker = state.Ticker
	reply.TotalShares = state.TotalShares
	reply.SharesOutstanding = state.SharesOutstanding
	reply.PricePerShare = state.PricePerShare
	reply.Decimals = state.Decimals
	reply.UnitMultiplier = state.UnitMultiplier
	return nil
}

// Ledger SharesOwned
// ------------------

// SharesOwnedArguments - account to query
type SharesOwnedArguments struct {
	Account *account.Account `json:"account"`
}

// SharesOwnedReply - balance of the account
type SharesOwnedReply struct {
	Shares uint32 `json:"shares"`
}

// SharesOwned - balance of any account, no signature required
func (s *Shares) SharesOwned(arguments *SharesOwnedArguments, reply *SharesOwnedReply) error {
	if err := s.available(); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Account {
		return fault.ErrMissingParameters
	}
	if arguments.Account.IsTesting() != s.IsTesting() {
		return fault.ErrWrongNetworkForPublicKey
	}

	n, err := s.Ledger.SharesOwned(arguments.Account)
	if nil != err {
		return err
	}
	reply.Shares = n
	return nil
}

// Ledger Payouts
// --------------

// PayoutsReply - payouts waiting for transfer confirmation
type PayoutsReply struct {
	Payouts []*payout.Request `json:"payouts"`
}

// Payouts - list the pending payouts visible to the signed caller
//
// the privileged caller sees every payout, any other caller only
// the payouts of its own sales
func (s *Shares) Payouts(arguments *SignedArguments, reply *PayoutsReply) error {
	if err := s.verify(MethodPayouts, arguments); nil != err {
		return err
	}
	if !arguments.Payment.IsZero() {
		return fault.ErrInvalidAmount
	}

	state, err := s.Ledger.State()
	if nil != err {
		return err
	}
	payouts, err := s.Ledger.PendingPayouts()
	if nil != err {
		return err
	}

	if arguments.Caller.Equal(state.PrivilegedCaller) {
		reply.Payouts = payouts
		return nil
	}

	reply.Payouts = make([]*payout.Request, 0, len(payouts))
	for _, p := range payouts {
		if arguments.Caller.Equal(p.Recipient) {
			reply.Payouts = append(reply.Payouts, p)
		}
	}
	return nil
}

// rate limit and reject calls while the daemon is not serving
func (s *Shares) available() error {
	if err := ratelimit.Limit(s.Limiter); nil != err {
		return err
	}
	if !s.IsNormal(mode.Normal) {
		return fault.ErrNotAvailable
	}
	return nil
}

// checks common to all signed calls, the replay check is last so
// that a rejected request does not consume its signature
func (s *Shares) verify(method string, arguments *SignedArguments) error {
	if err := s.available(); nil != err {
		return err
	}
	if nil == arguments || nil == arguments.Caller {
		return fault.ErrMissingParameters
	}
	if arguments.Caller.IsTesting() != s.IsTesting() {
		return fault.ErrWrongNetworkForPublicKey
	}
	if err := arguments.Caller.CheckSignature(arguments.Message(method), arguments.Signature); nil != err {
		s.Log.Warnf("%s: caller: %s  error: %s", method, arguments.Caller, err)
		return err
	}
	return s.Replay.Check(arguments.Signature, time.Unix(0, arguments.Timestamp))
}

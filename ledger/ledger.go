// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/shareledger/account"
	"github.com/bitmark-inc/shareledger/amount"
	"github.com/bitmark-inc/shareledger/fault"
	"github.com/bitmark-inc/shareledger/messagebus"
	"github.com/bitmark-inc/shareledger/ownership"
	"github.com/bitmark-inc/shareledger/payout"
	"github.com/bitmark-inc/shareledger/pricing"
	"github.com/bitmark-inc/shareledger/storage"
)

// MaximumTickerLength - longest accepted ticker
const MaximumTickerLength = 32

// Parameters - supplied once to initialise the ledger
type Parameters struct {
	Ticker           string
	TotalShares      uint32
	PricePerShare    uint32
	PrivilegedCaller *account.Account // optional
}

// Submitter - accepts payouts for transfer without blocking
type Submitter interface {
	Submit(*payout.Request) bool
}

// Options - collaborators of a ledger, all optional
type Options struct {
	Decimals int               // unit multiplier exponent used by Initialise
	Events   *messagebus.Queue // receives an event after each commit
	Payouts  Submitter         // receives each sale's payout request
}

// Receipt - balances after a successful operation
type Receipt struct {
	Owned       uint32 `json:"owned"`
	Outstanding uint32 `json:"outstanding"`
	Total       uint32 `json:"total"`
}

// Ledger - the share ledger
//
// all operations are serialised; an operation either commits all of
// its changes in one storage batch or leaves the ledger unchanged
type Ledger struct {
	sync.Mutex

	log      *logger.L
	db       *storage.Database
	owners   ownership.Ownership
	decimals int
	events   *messagebus.Queue
	payouts  Submitter

	// nil until initialised
	current *record
	policy  *pricing.Policy
}

// New - open the ledger kept in a database
//
// the ledger is uninitialised if the database holds no ledger record
func New(db *storage.Database, options Options) (*Ledger, error) {
	log := logger.New("ledger")
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}

	l := &Ledger{
		log:      log,
		db:       db,
		owners:   ownership.New(db.Pool.Ownership),
		decimals: options.Decimals,
		events:   options.Events,
		payouts:  options.Payouts,
	}

	buffer := db.Pool.Ledger.Get(recordKey)
	if nil == buffer {
		log.Info("ledger is not initialised")
		return l, nil
	}

	r, err := unpackRecord(buffer)
	if nil != err {
		log.Criticalf("ledger record: %x  error: %s", buffer, err)
		return nil, err
	}

	policy, err := pricing.New(r.pricePerShare, r.decimals)
	if nil != err {
		log.Criticalf("ledger pricing error: %s", err)
		return nil, err
	}

	if r.decimals != options.Decimals {
		log.Warnf("stored decimals: %d override configured: %d", r.decimals, options.Decimals)
	}

	l.current = r
	l.policy = policy

	log.Infof("ticker: %s  total: %d  outstanding: %d  price: %d", r.ticker, r.supply.total, r.supply.outstanding, r.pricePerShare)

	// payouts left from an earlier run are never re-sent
	pending, err := l.pendingPayouts()
	if nil != err {
		return nil, err
	}
	for _, p := range pending {
		log.Warnf("unreconciled payout: %s  recipient: %s  shares: %d  amount: %s", p.Id, p.Recipient, p.Shares, p.Amount)
	}

	return l, nil
}

// Initialise - set the ledger parameters, only possible once
func (l *Ledger) Initialise(parameters Parameters) error {
	l.Lock()
	defer l.Unlock()

	if nil != l.current || l.db.Pool.Ledger.Has(recordKey) {
		return fault.ErrAlreadyInitialised
	}

	if 0 == len(parameters.Ticker) || len(parameters.Ticker) > MaximumTickerLength {
		return fault.ErrInvalidTicker
	}

	policy, err := pricing.New(parameters.PricePerShare, l.decimals)
	if nil != err {
		return err
	}

	r := &record{
		ticker: parameters.Ticker,
		supply: supply{
			total:       parameters.TotalShares,
			outstanding: parameters.TotalShares,
		},
		pricePerShare: parameters.PricePerShare,
		decimals:      l.decimals,
		privileged:    parameters.PrivilegedCaller,
	}

	trx, err := l.db.Begin()
	if nil != err {
		return err
	}
	trx.Put(l.db.Pool.Ledger, recordKey, r.pack())
	if err := trx.Commit(); nil != err {
		l.log.Errorf("initialise commit error: %s", err)
		return err
	}

	l.current = r
	l.policy = policy

	privileged := "none"
	if nil != r.privileged {
		privileged = r.privileged.String()
	}
	l.log.Infof("initialised: ticker: %s  total: %d  price: %d  privileged: %s", r.ticker, r.supply.total, r.pricePerShare, privileged)

	l.emit(eventInitialise, nil, 0, 0, r.supply)
	return nil
}

// Buy - purchase shares from the outstanding supply
//
// payment above the cost is accepted and kept
func (l *Ledger) Buy(caller *account.Account, n uint32, payment amount.Amount) (Receipt, error) {
	l.Lock()
	defer l.Unlock()

	if nil == l.current {
		return Receipt{}, fault.ErrNotInitialised
	}
	if nil == caller {
		return Receipt{}, fault.ErrMissingParameters
	}

	if 0 == n || n > l.current.supply.outstanding {
		return Receipt{}, fault.ErrInvalidBuyQuantity
	}

	cost, err := l.policy.Cost(n)
	if nil != err {
		return Receipt{}, err
	}
	excess, err := payment.Sub(cost)
	if nil != err {
		return Receipt{}, fault.ErrInsufficientDeposit
	}

	next, ok := l.current.supply.take(n)
	if !ok || !next.valid() {
		return Receipt{}, fault.ErrInvalidBuyQuantity
	}

	owned := l.owners.Get(caller) + n

	trx, err := l.db.Begin()
	if nil != err {
		return Receipt{}, err
	}
	l.owners.Set(trx, caller, owned)
	if err := l.commit(trx, next); nil != err {
		return Receipt{}, err
	}

	l.log.Infof("buy: %s  shares: %d  paid: %s  cost: %s  kept: %s  owned: %d  outstanding: %d", caller, n, payment, cost, excess, owned, next.outstanding)
	l.emit(eventBuy, caller, n, owned, next)

	return receipt(owned, next), nil
}

// Sell - return shares to the outstanding supply
//
// the proceeds are recorded as a pending payout in the same commit
// and handed to the payout submitter
func (l *Ledger) Sell(caller *account.Account, n uint32) (*payout.Request, Receipt, error) {
	l.Lock()
	defer l.Unlock()

	if nil == l.current {
		return nil, Receipt{}, fault.ErrNotInitialised
	}
	if nil == caller {
		return nil, Receipt{}, fault.ErrMissingParameters
	}

	// a closed store reads as zero balances
	trx, err := l.db.Begin()
	if nil != err {
		return nil, Receipt{}, err
	}

	owned := l.owners.Get(caller)
	if 0 == n || n > owned {
		trx.Abort()
		return nil, Receipt{}, fault.ErrInvalidSellQuantity
	}

	proceeds, err := l.policy.Proceeds(n)
	if nil != err {
		trx.Abort()
		return nil, Receipt{}, err
	}

	next, ok := l.current.supply.give(n)
	if !ok || !next.valid() {
		trx.Abort()
		return nil, Receipt{}, fault.ErrInvalidSellQuantity
	}

	request, err := payout.NewRequest(caller, n, proceeds)
	if nil != err {
		trx.Abort()
		return nil, Receipt{}, err
	}

	owned -= n

	l.owners.Set(trx, caller, owned)
	trx.Put(l.db.Pool.Payouts, request.Key(), request.Pack())
	if err := l.commit(trx, next); nil != err {
		return nil, Receipt{}, err
	}

	l.log.Infof("sell: %s  shares: %d  proceeds: %s  payout: %s  owned: %d  outstanding: %d", caller, n, proceeds, request.Id, owned, next.outstanding)
	l.emit(eventSell, caller, n, owned, next)

	if nil == l.payouts {
		l.log.Warnf("no payout submitter, payout: %s left pending", request.Id)
	} else if !l.payouts.Submit(request) {
		l.log.Warnf("payout: %s not accepted, left pending", request.Id)
	}

	return request, receipt(owned, next), nil
}

// Issue - create new shares, privileged
//
// the price is not changed
func (l *Ledger) Issue(caller *account.Account, n uint32) (Receipt, error) {
	l.Lock()
	defer l.Unlock()

	if nil == l.current {
		return Receipt{}, fault.ErrNotInitialised
	}
	if err := l.current.verifyPrivileged(caller); nil != err {
		return Receipt{}, err
	}

	if 0 == n {
		return Receipt{}, fault.ErrInvalidIssueQuantity
	}

	next, ok := l.current.supply.grow(n)
	if !ok || !next.valid() {
		return Receipt{}, fault.ErrSupplyOverflow
	}

	trx, err := l.db.Begin()
	if nil != err {
		return Receipt{}, err
	}
	if err := l.commit(trx, next); nil != err {
		return Receipt{}, err
	}

	l.log.Infof("issue: %d  total: %d  outstanding: %d", n, next.total, next.outstanding)
	l.emit(eventIssue, caller, n, 0, next)

	return receipt(0, next), nil
}

// BuyBack - destroy outstanding shares, privileged
//
// no funds move and the price is not changed
func (l *Ledger) BuyBack(caller *account.Account, n uint32) (Receipt, error) {
	l.Lock()
	defer l.Unlock()

	if nil == l.current {
		return Receipt{}, fault.ErrNotInitialised
	}
	if err := l.current.verifyPrivileged(caller); nil != err {
		return Receipt{}, err
	}

	if 0 == n || n > l.current.supply.outstanding {
		return Receipt{}, fault.ErrInvalidBuyBackQuantity
	}

	next, ok := l.current.supply.shrink(n)
	if !ok || !next.valid() {
		return Receipt{}, fault.ErrInvalidBuyBackQuantity
	}

	trx, err := l.db.Begin()
	if nil != err {
		return Receipt{}, err
	}
	if err := l.commit(trx, next); nil != err {
		return Receipt{}, err
	}

	l.log.Infof("buy back: %d  total: %d  outstanding: %d", n, next.total, next.outstanding)
	l.emit(eventBuyBack, caller, n, 0, next)

	return receipt(0, next), nil
}

// write the ledger record with a new supply as the last part of a
// transaction and update the cached record only if the commit succeeds
//
// must hold the lock
func (l *Ledger) commit(trx storage.Transaction, next supply) error {
	r := *l.current
	r.supply = next

	trx.Put(l.db.Pool.Ledger, recordKey, r.pack())
	if err := trx.Commit(); nil != err {
		l.log.Errorf("commit error: %s", err)
		return err
	}
	l.current = &r
	return nil
}

func receipt(owned uint32, s supply) Receipt {
	return Receipt{
		Owned:       owned,
		Outstanding: s.outstanding,
		Total:       s.total,
	}
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"bytes"
	"errors"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/shareledger/account"
	"github.com/bitmark-inc/shareledger/amount"
	"github.com/bitmark-inc/shareledger/fault"
	"github.com/bitmark-inc/shareledger/fixtures"
	"github.com/bitmark-inc/shareledger/ledger"
	"github.com/bitmark-inc/shareledger/messagebus"
	"github.com/bitmark-inc/shareledger/payout"
	"github.com/bitmark-inc/shareledger/pricing"
	"github.com/bitmark-inc/shareledger/storage"
)

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

// collects submitted payouts
type submitter struct {
	requests []*payout.Request
	accept   bool
}

func (s *submitter) Submit(request *payout.Request) bool {
	s.requests = append(s.requests, request)
	return s.accept
}

func makeAccount(t *testing.T, b byte) *account.Account {
	privateKey, err := account.PrivateKeyFromSeed(bytes.Repeat([]byte{b}, 32), true)
	if nil != err {
		t.Fatalf("private key error: %s", err)
	}
	return privateKey.Account()
}

func openLedger(t *testing.T, options ledger.Options) (*ledger.Ledger, *storage.Database) {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open database error: %s", err)
	}
	l, err := ledger.New(db, options)
	if nil != err {
		t.Fatalf("new ledger error: %s", err)
	}
	return l, db
}

func initialised(t *testing.T, total uint32, price uint32, privileged *account.Account) (*ledger.Ledger, *storage.Database, *submitter) {
	s := &submitter{accept: true}
	l, db := openLedger(t, ledger.Options{
		Decimals: pricing.DefaultDecimals,
		Payouts:  s,
	})
	err := l.Initialise(ledger.Parameters{
		Ticker:           "SHR",
		TotalShares:      total,
		PricePerShare:    price,
		PrivilegedCaller: privileged,
	})
	if nil != err {
		t.Fatalf("initialise error: %s", err)
	}
	return l, db, s
}

func cost(t *testing.T, l *ledger.Ledger, n uint32) amount.Amount {
	c, err := l.Cost(n)
	if nil != err {
		t.Fatalf("cost of: %d  error: %s", n, err)
	}
	return c
}

func owned(t *testing.T, l *ledger.Ledger, a *account.Account) uint32 {
	n, err := l.SharesOwned(a)
	if nil != err {
		t.Fatalf("shares owned error: %s", err)
	}
	return n
}

func outstanding(t *testing.T, l *ledger.Ledger) uint32 {
	n, err := l.SharesOutstanding()
	if nil != err {
		t.Fatalf("shares outstanding error: %s", err)
	}
	return n
}

func total(t *testing.T, l *ledger.Ledger) uint32 {
	n, err := l.TotalShares()
	if nil != err {
		t.Fatalf("total shares error: %s", err)
	}
	return n
}

func TestUninitialised(t *testing.T) {
	l, db := openLedger(t, ledger.Options{Decimals: pricing.DefaultDecimals})
	defer db.Close()

	alice := makeAccount(t, 1)

	assert.False(t, l.IsInitialised(), "initialised")

	_, err := l.Buy(alice, 1, amount.Max)
	assert.Equal(t, fault.ErrNotInitialised, err, "buy")
	assert.True(t, fault.IsErrUsage(err), "usage class")

	_, _, err = l.Sell(alice, 1)
	assert.Equal(t, fault.ErrNotInitialised, err, "sell")

	_, err = l.Issue(alice, 1)
	assert.Equal(t, fault.ErrNotInitialised, err, "issue")

	_, err = l.BuyBack(alice, 1)
	assert.Equal(t, fault.ErrNotInitialised, err, "buy back")

	_, err = l.SharesOutstanding()
	assert.Equal(t, fault.ErrNotInitialised, err, "shares outstanding")

	_, err = l.TotalShares()
	assert.Equal(t, fault.ErrNotInitialised, err, "total shares")

	_, err = l.PricePerShare()
	assert.Equal(t, fault.ErrNotInitialised, err, "price per share")

	_, err = l.Ticker()
	assert.Equal(t, fault.ErrNotInitialised, err, "ticker")

	_, err = l.SharesOwned(alice)
	assert.Equal(t, fault.ErrNotInitialised, err, "shares owned")

	_, err = l.PendingPayouts()
	assert.Equal(t, fault.ErrNotInitialised, err, "pending payouts")
}

func TestInitialise(t *testing.T) {
	l, db := openLedger(t, ledger.Options{Decimals: pricing.DefaultDecimals})
	defer db.Close()

	err := l.Initialise(ledger.Parameters{Ticker: "", TotalShares: 10, PricePerShare: 2})
	assert.Equal(t, fault.ErrInvalidTicker, err, "empty ticker")

	err = l.Initialise(ledger.Parameters{Ticker: "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789", TotalShares: 10, PricePerShare: 2})
	assert.Equal(t, fault.ErrInvalidTicker, err, "long ticker")

	err = l.Initialise(ledger.Parameters{Ticker: "SHR", TotalShares: 10, PricePerShare: 0})
	assert.Equal(t, fault.ErrInvalidPrice, err, "zero price")

	assert.False(t, l.IsInitialised(), "initialised by a failed call")

	err = l.Initialise(ledger.Parameters{Ticker: "SHR", TotalShares: 1000, PricePerShare: 2})
	assert.Nil(t, err, "initialise")

	err = l.Initialise(ledger.Parameters{Ticker: "OTHER", TotalShares: 1, PricePerShare: 1})
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise")

	state, err := l.State()
	assert.Nil(t, err, "state")
	assert.Equal(t, "SHR", state.Ticker, "ticker")
	assert.Equal(t, uint32(1000), state.TotalShares, "total")
	assert.Equal(t, uint32(1000), state.SharesOutstanding, "outstanding")
	assert.Equal(t, uint32(2), state.PricePerShare, "price")
	assert.Equal(t, pricing.DefaultDecimals, state.Decimals, "decimals")
	assert.Nil(t, state.PrivilegedCaller, "privileged")
}

func TestScenario(t *testing.T) {
	l, db, s := initialised(t, 1000000000, 2, nil)
	defer db.Close()

	alice := makeAccount(t, 1)

	for _, n := range []uint32{20, 81, 185} {
		_, err := l.Buy(alice, n, cost(t, l, n))
		assert.Nil(t, err, "buy: %d", n)
	}
	assert.Equal(t, uint32(286), owned(t, l, alice), "after buys")

	request, r, err := l.Sell(alice, 52)
	assert.Nil(t, err, "sell")
	assert.Equal(t, uint32(234), owned(t, l, alice), "after sell")
	assert.Equal(t, uint32(1000000000-234), outstanding(t, l), "outstanding")
	assert.Equal(t, uint32(234), r.Owned, "receipt owned")
	assert.Equal(t, uint32(1000000000-234), r.Outstanding, "receipt outstanding")

	// proceeds of 52 shares at 2 whole units
	assert.Equal(t, "104000000000000000000000000", request.Amount.String(), "proceeds")
	assert.True(t, alice.Equal(request.Recipient), "recipient")
	assert.Equal(t, uint32(52), request.Shares, "payout shares")

	if assert.Equal(t, 1, len(s.requests), "submitted") {
		assert.Equal(t, request.Id, s.requests[0].Id, "submitted id")
	}
}

func TestBuyBoundaries(t *testing.T) {
	l, db, _ := initialised(t, 100, 2, nil)
	defer db.Close()

	alice := makeAccount(t, 1)

	_, err := l.Buy(alice, 0, amount.Max)
	assert.Equal(t, fault.ErrInvalidBuyQuantity, err, "zero")
	assert.Equal(t, "ERR_INVALID_BUY_QUANTITY", err.Error(), "identifier")

	_, err = l.Buy(alice, 101, amount.Max)
	assert.Equal(t, fault.ErrInvalidBuyQuantity, err, "outstanding + 1")

	short, err := cost(t, l, 10).Sub(amount.New(1))
	assert.Nil(t, err, "short payment")
	_, err = l.Buy(alice, 10, short)
	assert.Equal(t, fault.ErrInsufficientDeposit, err, "insufficient")
	assert.Equal(t, "ERR_INSUFFICIENT_DEPOSIT", err.Error(), "identifier")
	assert.True(t, fault.IsErrInvalid(err), "validation class")

	assert.Equal(t, uint32(100), outstanding(t, l), "unchanged after failures")
	assert.Equal(t, uint32(0), owned(t, l, alice), "nothing owned after failures")

	// overpayment is accepted
	r, err := l.Buy(alice, 100, amount.Max)
	assert.Nil(t, err, "all shares with overpayment")
	assert.Equal(t, uint32(100), r.Owned, "owned")
	assert.Equal(t, uint32(0), r.Outstanding, "outstanding")

	_, err = l.Buy(alice, 1, amount.Max)
	assert.Equal(t, fault.ErrInvalidBuyQuantity, err, "sold out")
}

func TestBuyPaymentOverflow(t *testing.T) {
	l, db := openLedger(t, ledger.Options{Decimals: 30})
	defer db.Close()

	err := l.Initialise(ledger.Parameters{Ticker: "BIG", TotalShares: math.MaxUint32, PricePerShare: 1000})
	assert.Nil(t, err, "initialise")

	_, err = l.Buy(makeAccount(t, 1), math.MaxUint32, amount.Max)
	assert.Equal(t, fault.ErrPaymentOverflow, err, "overflow")
	assert.Equal(t, uint32(math.MaxUint32), outstanding(t, l), "unchanged")
}

func TestSellBoundaries(t *testing.T) {
	l, db, s := initialised(t, 100, 2, nil)
	defer db.Close()

	alice := makeAccount(t, 1)
	bob := makeAccount(t, 2)

	_, err := l.Buy(alice, 10, cost(t, l, 10))
	assert.Nil(t, err, "buy")

	_, _, err = l.Sell(alice, 0)
	assert.Equal(t, fault.ErrInvalidSellQuantity, err, "zero")

	_, _, err = l.Sell(alice, 11)
	assert.Equal(t, fault.ErrInvalidSellQuantity, err, "more than owned")
	assert.Equal(t, "ERR_INVALID_SELL_QUANTITY", err.Error(), "identifier")

	_, _, err = l.Sell(bob, 1)
	assert.Equal(t, fault.ErrInvalidSellQuantity, err, "not an owner")

	assert.Equal(t, uint32(10), owned(t, l, alice), "unchanged")
	assert.Equal(t, uint32(90), outstanding(t, l), "unchanged")
	assert.Equal(t, 0, len(s.requests), "no payouts submitted")

	pending, err := l.PendingPayouts()
	assert.Nil(t, err, "pending")
	assert.Equal(t, 0, len(pending), "no pending payouts")
}

func TestRoundTrip(t *testing.T) {
	for _, n := range []uint32{1, 17, 250} {
		l, db, _ := initialised(t, 500, 3, nil)

		alice := makeAccount(t, 1)
		bob := makeAccount(t, 2)

		// another holder so that outstanding is below total
		_, err := l.Buy(bob, 250, cost(t, l, 250))
		assert.Nil(t, err, "bob buy")

		beforeOutstanding := outstanding(t, l)
		beforeOwned := owned(t, l, alice)

		_, err = l.Buy(alice, n, cost(t, l, n))
		assert.Nil(t, err, "buy: %d", n)
		_, _, err = l.Sell(alice, n)
		assert.Nil(t, err, "sell: %d", n)

		assert.Equal(t, beforeOutstanding, outstanding(t, l), "outstanding after round trip of: %d", n)
		assert.Equal(t, beforeOwned, owned(t, l, alice), "owned after round trip of: %d", n)

		db.Close()
	}
}

func TestPrivilege(t *testing.T) {
	admin := makeAccount(t, 9)
	alice := makeAccount(t, 1)

	l, db, _ := initialised(t, 1000, 2, admin)
	defer db.Close()

	_, err := l.Issue(alice, 10)
	assert.Equal(t, fault.ErrNotPrivileged, err, "issue by non privileged")
	assert.True(t, fault.IsErrAuthorisation(err), "authorisation class")

	_, err = l.BuyBack(alice, 10)
	assert.Equal(t, fault.ErrNotPrivileged, err, "buy back by non privileged")

	_, err = l.Issue(nil, 10)
	assert.Equal(t, fault.ErrNotPrivileged, err, "issue by nobody")

	assert.Equal(t, uint32(1000), total(t, l), "total unchanged")
	assert.Equal(t, uint32(1000), outstanding(t, l), "outstanding unchanged")

	r, err := l.Issue(admin, 500)
	assert.Nil(t, err, "issue")
	assert.Equal(t, uint32(1500), r.Total, "receipt total")
	assert.Equal(t, uint32(1500), total(t, l), "total after issue")
	assert.Equal(t, uint32(1500), outstanding(t, l), "outstanding after issue")

	r, err = l.BuyBack(admin, 200)
	assert.Nil(t, err, "buy back")
	assert.Equal(t, uint32(1300), r.Outstanding, "receipt outstanding")
	assert.Equal(t, uint32(1300), total(t, l), "total after buy back")
	assert.Equal(t, uint32(1300), outstanding(t, l), "outstanding after buy back")

	price, err := l.PricePerShare()
	assert.Nil(t, err, "price")
	assert.Equal(t, uint32(2), price, "price is not changed by supply")
}

func TestNoPrivilegedCaller(t *testing.T) {
	l, db, _ := initialised(t, 1000, 2, nil)
	defer db.Close()

	for i := byte(1); i < 5; i += 1 {
		_, err := l.Issue(makeAccount(t, i), 1)
		assert.Equal(t, fault.ErrNotPrivileged, err, "%d: issue", i)
		_, err = l.BuyBack(makeAccount(t, i), 1)
		assert.Equal(t, fault.ErrNotPrivileged, err, "%d: buy back", i)
	}
}

func TestIssueLimits(t *testing.T) {
	admin := makeAccount(t, 9)
	l, db, _ := initialised(t, math.MaxUint32-10, 2, admin)
	defer db.Close()

	_, err := l.Issue(admin, 0)
	assert.Equal(t, fault.ErrInvalidIssueQuantity, err, "zero")

	_, err = l.Issue(admin, 11)
	assert.Equal(t, fault.ErrSupplyOverflow, err, "overflow")
	assert.Equal(t, uint32(math.MaxUint32-10), total(t, l), "unchanged")

	_, err = l.Issue(admin, 10)
	assert.Nil(t, err, "up to the limit")
	assert.Equal(t, uint32(math.MaxUint32), total(t, l), "at limit")
}

func TestBuyBackLimits(t *testing.T) {
	admin := makeAccount(t, 9)
	alice := makeAccount(t, 1)
	l, db, _ := initialised(t, 100, 2, admin)
	defer db.Close()

	_, err := l.Buy(alice, 60, cost(t, l, 60))
	assert.Nil(t, err, "buy")

	_, err = l.BuyBack(admin, 0)
	assert.Equal(t, fault.ErrInvalidBuyBackQuantity, err, "zero")

	_, err = l.BuyBack(admin, 41)
	assert.Equal(t, fault.ErrInvalidBuyBackQuantity, err, "more than outstanding")
	assert.Equal(t, uint32(100), total(t, l), "total unchanged")
	assert.Equal(t, uint32(40), outstanding(t, l), "outstanding unchanged")

	_, err = l.BuyBack(admin, 40)
	assert.Nil(t, err, "all outstanding")
	assert.Equal(t, uint32(60), total(t, l), "total")
	assert.Equal(t, uint32(0), outstanding(t, l), "outstanding")
	assert.Equal(t, uint32(60), owned(t, l, alice), "holders unaffected")
}

func TestInvariants(t *testing.T) {
	admin := makeAccount(t, 9)
	l, db, _ := initialised(t, 1000, 1, admin)
	defer db.Close()

	accounts := []*account.Account{
		makeAccount(t, 1),
		makeAccount(t, 2),
		makeAccount(t, 3),
	}

	check := func(step int) {
		tot := total(t, l)
		out := outstanding(t, l)
		assert.True(t, out <= tot, "%d: outstanding: %d > total: %d", step, out, tot)

		sum := uint32(0)
		for _, a := range accounts {
			sum += owned(t, l, a)
		}
		assert.Equal(t, tot-out, sum, "%d: sum of ownership", step)
	}

	// a fixed pseudo random walk including operations that must fail
	seed := uint32(12345)
	next := func(limit uint32) uint32 {
		seed = seed*1103515245 + 12345
		return (seed >> 16) % limit
	}

	for step := 0; step < 300; step += 1 {
		a := accounts[next(uint32(len(accounts)))]
		n := next(120)
		switch next(4) {
		case 0:
			_, _ = l.Buy(a, n, cost(t, l, n))
		case 1:
			_, _, _ = l.Sell(a, n)
		case 2:
			_, _ = l.Issue(admin, n)
		case 3:
			_, _ = l.BuyBack(admin, n)
		}
		check(step)
	}
}

func TestIdempotentReads(t *testing.T) {
	l, db, _ := initialised(t, 1000, 2, nil)
	defer db.Close()

	alice := makeAccount(t, 1)
	_, err := l.Buy(alice, 7, cost(t, l, 7))
	assert.Nil(t, err, "buy")

	before, err := l.State()
	assert.Nil(t, err, "state")

	for i := 0; i < 10; i += 1 {
		_, _ = l.SharesOwned(alice)
		_, _ = l.Ticker()
		_, _ = l.PricePerShare()
		_, _ = l.TotalShares()
		_, _ = l.SharesOutstanding()
		_, _ = l.SharesOwned(makeAccount(t, byte(i+20)))
	}

	after, err := l.State()
	assert.Nil(t, err, "state")
	assert.Equal(t, before, after, "state changed by reads")
	assert.Equal(t, uint32(7), owned(t, l, alice), "owned changed by reads")
}

func TestEvents(t *testing.T) {
	events := messagebus.New(10)
	l, db := openLedger(t, ledger.Options{Decimals: 0, Events: events})
	defer db.Close()

	err := l.Initialise(ledger.Parameters{Ticker: "EVT", TotalShares: 50, PricePerShare: 1})
	assert.Nil(t, err, "initialise")

	_, err = l.Buy(makeAccount(t, 1), 5, amount.New(5))
	assert.Nil(t, err, "buy")

	// failures send nothing
	_, err = l.Buy(makeAccount(t, 1), 5, amount.New(4))
	assert.Equal(t, fault.ErrInsufficientDeposit, err, "short payment")

	assert.Equal(t, 2, events.Len(), "events")
	assert.Equal(t, "initialise", (<-events.Chan()).Command, "first event")

	buy := <-events.Chan()
	assert.Equal(t, "buy", buy.Command, "second event")
	if assert.Equal(t, 1, len(buy.Parameters), "parameters") {
		assert.Contains(t, string(buy.Parameters[0]), `"owned":5`, "event data")
		assert.Contains(t, string(buy.Parameters[0]), `"outstanding":45`, "event data")
	}
}

func TestPayoutConfirm(t *testing.T) {
	l, db, _ := initialised(t, 100, 2, nil)
	defer db.Close()

	alice := makeAccount(t, 1)
	_, err := l.Buy(alice, 10, cost(t, l, 10))
	assert.Nil(t, err, "buy")

	request, _, err := l.Sell(alice, 4)
	assert.Nil(t, err, "sell")

	pending, err := l.PendingPayouts()
	assert.Nil(t, err, "pending")
	if assert.Equal(t, 1, len(pending), "pending count") {
		assert.Equal(t, request.Id, pending[0].Id, "pending id")
		assert.Equal(t, request.Amount, pending[0].Amount, "pending amount")
	}

	assert.Nil(t, l.ConfirmPayout(request.Id), "confirm")

	pending, err = l.PendingPayouts()
	assert.Nil(t, err, "pending")
	assert.Equal(t, 0, len(pending), "pending after confirm")

	assert.Equal(t, fault.ErrPayoutNotFound, l.ConfirmPayout(request.Id), "confirm twice")
	assert.Equal(t, uint32(6), owned(t, l, alice), "owned")
	assert.Equal(t, uint32(94), outstanding(t, l), "outstanding")
}

func TestPayoutFail(t *testing.T) {
	l, db, _ := initialised(t, 100, 2, nil)
	defer db.Close()

	alice := makeAccount(t, 1)
	_, err := l.Buy(alice, 10, cost(t, l, 10))
	assert.Nil(t, err, "buy")

	request, _, err := l.Sell(alice, 4)
	assert.Nil(t, err, "sell")
	assert.Equal(t, uint32(6), owned(t, l, alice), "owned after sell")

	err = l.FailPayout(request.Id, errors.New("recipient account closed"))
	assert.Nil(t, err, "fail payout")

	assert.Equal(t, uint32(10), owned(t, l, alice), "shares returned")
	assert.Equal(t, uint32(90), outstanding(t, l), "outstanding restored")

	pending, err := l.PendingPayouts()
	assert.Nil(t, err, "pending")
	assert.Equal(t, 0, len(pending), "pending after fail")

	assert.Equal(t, fault.ErrPayoutNotFound, l.FailPayout(request.Id, nil), "fail twice")
}

func TestPayoutCannotReconcile(t *testing.T) {
	l, db, _ := initialised(t, 10, 2, nil)
	defer db.Close()

	alice := makeAccount(t, 1)
	bob := makeAccount(t, 2)

	_, err := l.Buy(alice, 10, cost(t, l, 10))
	assert.Nil(t, err, "alice buy")

	request, _, err := l.Sell(alice, 10)
	assert.Nil(t, err, "alice sell")

	// the returned shares are bought before the transfer fails
	_, err = l.Buy(bob, 10, cost(t, l, 10))
	assert.Nil(t, err, "bob buy")

	err = l.FailPayout(request.Id, fault.ErrTransferFailed)
	assert.Equal(t, fault.ErrCannotReconcile, err, "cannot reconcile")
	assert.True(t, fault.IsErrTransfer(err), "transfer class")

	pending, err := l.PendingPayouts()
	assert.Nil(t, err, "pending")
	assert.Equal(t, 1, len(pending), "payout kept pending")
	assert.Equal(t, uint32(0), owned(t, l, alice), "alice")
	assert.Equal(t, uint32(10), owned(t, l, bob), "bob")
}

func TestPersistence(t *testing.T) {
	dir, err := os.MkdirTemp("", "ledger-")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	admin := makeAccount(t, 9)
	alice := makeAccount(t, 1)

	db, err := storage.Open(dir, storage.ReadWrite)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	l, err := ledger.New(db, ledger.Options{Decimals: pricing.DefaultDecimals})
	assert.Nil(t, err, "new")
	assert.Nil(t, l.Initialise(ledger.Parameters{Ticker: "SHR", TotalShares: 1000, PricePerShare: 5, PrivilegedCaller: admin}), "initialise")
	_, err = l.Buy(alice, 30, cost(t, l, 30))
	assert.Nil(t, err, "buy")
	_, _, err = l.Sell(alice, 5)
	assert.Nil(t, err, "sell")
	db.Close()

	// a different configured unit is ignored for an existing ledger
	db, err = storage.Open(dir, storage.ReadWrite)
	if nil != err {
		t.Fatalf("reopen error: %s", err)
	}
	defer db.Close()

	l, err = ledger.New(db, ledger.Options{Decimals: 6})
	assert.Nil(t, err, "reopen ledger")

	state, err := l.State()
	assert.Nil(t, err, "state")
	assert.Equal(t, "SHR", state.Ticker, "ticker")
	assert.Equal(t, uint32(1000), state.TotalShares, "total")
	assert.Equal(t, uint32(975), state.SharesOutstanding, "outstanding")
	assert.Equal(t, uint32(5), state.PricePerShare, "price")
	assert.Equal(t, pricing.DefaultDecimals, state.Decimals, "decimals")
	assert.True(t, admin.Equal(state.PrivilegedCaller), "privileged")
	assert.Equal(t, uint32(25), owned(t, l, alice), "owned")

	pending, err := l.PendingPayouts()
	assert.Nil(t, err, "pending")
	assert.Equal(t, 1, len(pending), "pending survives restart")

	assert.Equal(t, fault.ErrAlreadyInitialised, l.Initialise(ledger.Parameters{Ticker: "X", TotalShares: 1, PricePerShare: 1}), "initialise after restart")

	_, err = l.Issue(admin, 1)
	assert.Nil(t, err, "issue after restart")
}

func TestClosedStore(t *testing.T) {
	admin := makeAccount(t, 9)
	alice := makeAccount(t, 1)

	l, db, s := initialised(t, 100, 2, admin)
	_, err := l.Buy(alice, 10, cost(t, l, 10))
	assert.Nil(t, err, "buy")

	before, err := l.State()
	assert.Nil(t, err, "state")

	db.Close()

	_, err = l.Buy(alice, 5, cost(t, l, 5))
	assert.Equal(t, fault.ErrStoreClosed, err, "buy")
	_, _, err = l.Sell(alice, 5)
	assert.Equal(t, fault.ErrStoreClosed, err, "sell")
	_, err = l.Issue(admin, 5)
	assert.Equal(t, fault.ErrStoreClosed, err, "issue")
	_, err = l.BuyBack(admin, 5)
	assert.Equal(t, fault.ErrStoreClosed, err, "buy back")

	after, err := l.State()
	assert.Nil(t, err, "state")
	assert.Equal(t, before, after, "state changed by failed operations")
	assert.Equal(t, 0, len(s.requests), "payout submitted")
}

func TestCommitFailure(t *testing.T) {
	dir, err := os.MkdirTemp("", "ledger-")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	admin := makeAccount(t, 9)
	alice := makeAccount(t, 1)

	db, err := storage.Open(dir, storage.ReadWrite)
	if nil != err {
		t.Fatalf("open error: %s", err)
	}
	l, err := ledger.New(db, ledger.Options{Decimals: pricing.DefaultDecimals})
	assert.Nil(t, err, "new")
	assert.Nil(t, l.Initialise(ledger.Parameters{Ticker: "SHR", TotalShares: 100, PricePerShare: 2, PrivilegedCaller: admin}), "initialise")
	_, err = l.Buy(alice, 10, cost(t, l, 10))
	assert.Nil(t, err, "buy")
	db.Close()

	// every write is rejected by the store after validation passes
	db, err = storage.Open(dir, storage.ReadOnly)
	if nil != err {
		t.Fatalf("reopen error: %s", err)
	}
	defer db.Close()

	s := &submitter{accept: true}
	l, err = ledger.New(db, ledger.Options{Decimals: pricing.DefaultDecimals, Payouts: s})
	assert.Nil(t, err, "reopen ledger")

	before, err := l.State()
	assert.Nil(t, err, "state")

	_, err = l.Buy(alice, 5, cost(t, l, 5))
	assert.Equal(t, leveldb.ErrReadOnly, err, "buy")
	_, _, err = l.Sell(alice, 5)
	assert.Equal(t, leveldb.ErrReadOnly, err, "sell")
	_, err = l.Issue(admin, 5)
	assert.Equal(t, leveldb.ErrReadOnly, err, "issue")
	_, err = l.BuyBack(admin, 5)
	assert.Equal(t, leveldb.ErrReadOnly, err, "buy back")

	after, err := l.State()
	assert.Nil(t, err, "state")
	assert.Equal(t, before, after, "state changed by failed commits")
	assert.Equal(t, uint32(10), owned(t, l, alice), "owned")
	assert.Equal(t, 0, len(s.requests), "payout submitted")

	pending, err := l.PendingPayouts()
	assert.Nil(t, err, "pending")
	assert.Equal(t, 0, len(pending), "pending payout written")
}

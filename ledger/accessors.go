// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/shareledger/account"
	"github.com/bitmark-inc/shareledger/amount"
	"github.com/bitmark-inc/shareledger/fault"
)

// State - snapshot of the ledger parameters and supply
type State struct {
	Ticker            string           `json:"ticker"`
	TotalShares       uint32           `json:"totalShares"`
	SharesOutstanding uint32           `json:"sharesOutstanding"`
	PricePerShare     uint32           `json:"pricePerShare"`
	Decimals          int              `json:"decimals"`
	UnitMultiplier    amount.Amount    `json:"unitMultiplier"`
	PrivilegedCaller  *account.Account `json:"privilegedCaller,omitempty"`
}

// State - read the whole ledger state
func (l *Ledger) State() (State, error) {
	l.Lock()
	defer l.Unlock()

	if nil == l.current {
		return State{}, fault.ErrNotInitialised
	}
	r := l.current
	return State{
		Ticker:            r.ticker,
		TotalShares:       r.supply.total,
		SharesOutstanding: r.supply.outstanding,
		PricePerShare:     r.pricePerShare,
		Decimals:          r.decimals,
		UnitMultiplier:    l.policy.UnitMultiplier(),
		PrivilegedCaller:  r.privileged,
	}, nil
}

// IsInitialised - true once Initialise has succeeded
func (l *Ledger) IsInitialised() bool {
	l.Lock()
	defer l.Unlock()
	return nil != l.current
}

// SharesOutstanding - shares available to buy
func (l *Ledger) SharesOutstanding() (uint32, error) {
	s, err := l.State()
	return s.SharesOutstanding, err
}

// TotalShares - all shares in existence
func (l *Ledger) TotalShares() (uint32, error) {
	s, err := l.State()
	return s.TotalShares, err
}

// PricePerShare - whole units per share
func (l *Ledger) PricePerShare() (uint32, error) {
	s, err := l.State()
	return s.PricePerShare, err
}

// Ticker - display name of the shares
func (l *Ledger) Ticker() (string, error) {
	s, err := l.State()
	return s.Ticker, err
}

// SharesOwned - shares held by an account, zero if none
func (l *Ledger) SharesOwned(owner *account.Account) (uint32, error) {
	l.Lock()
	defer l.Unlock()

	if nil == l.current {
		return 0, fault.ErrNotInitialised
	}
	if nil == owner {
		return 0, fault.ErrMissingParameters
	}
	return l.owners.Get(owner), nil
}

// Cost - payment required to buy n shares
func (l *Ledger) Cost(n uint32) (amount.Amount, error) {
	l.Lock()
	defer l.Unlock()

	if nil == l.current {
		return amount.Zero, fault.ErrNotInitialised
	}
	return l.policy.Cost(n)
}

// Units - render an amount in whole units
func (l *Ledger) Units(a amount.Amount) (string, error) {
	l.Lock()
	defer l.Unlock()

	if nil == l.current {
		return "", fault.ErrNotInitialised
	}
	return l.policy.Units(a), nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/google/uuid"

	"github.com/bitmark-inc/shareledger/fault"
	"github.com/bitmark-inc/shareledger/payout"
)

// ConfirmPayout - the transfer for a sale succeeded
func (l *Ledger) ConfirmPayout(id uuid.UUID) error {
	l.Lock()
	defer l.Unlock()

	if nil == l.current {
		return fault.ErrNotInitialised
	}

	request, err := l.getPayout(id)
	if nil != err {
		return err
	}

	trx, err := l.db.Begin()
	if nil != err {
		return err
	}
	trx.Delete(l.db.Pool.Payouts, request.Key())
	if err := trx.Commit(); nil != err {
		l.log.Errorf("confirm payout: %s  commit error: %s", id, err)
		return err
	}

	l.log.Infof("payout: %s  confirmed", id)
	l.emit(eventPayoutConfirmed, request.Recipient, request.Shares, 0, l.current.supply)
	return nil
}

// FailPayout - the transfer for a sale failed, return the shares
//
// if the outstanding supply no longer covers the shares the payout
// is kept pending and fault.ErrCannotReconcile returned
func (l *Ledger) FailPayout(id uuid.UUID, reason error) error {
	l.Lock()
	defer l.Unlock()

	if nil == l.current {
		return fault.ErrNotInitialised
	}

	request, err := l.getPayout(id)
	if nil != err {
		return err
	}

	next, ok := l.current.supply.take(request.Shares)
	if !ok || !next.valid() {
		l.log.Criticalf("payout: %s  failed: %v  cannot return: %d shares to: %s  outstanding: %d", id, reason, request.Shares, request.Recipient, l.current.supply.outstanding)
		return fault.ErrCannotReconcile
	}

	owned := l.owners.Get(request.Recipient) + request.Shares

	trx, err := l.db.Begin()
	if nil != err {
		return err
	}
	l.owners.Set(trx, request.Recipient, owned)
	trx.Delete(l.db.Pool.Payouts, request.Key())
	if err := l.commit(trx, next); nil != err {
		return err
	}

	l.log.Warnf("payout: %s  failed: %v  returned: %d shares to: %s  owned: %d", id, reason, request.Shares, request.Recipient, owned)
	l.emit(eventPayoutFailed, request.Recipient, request.Shares, owned, next)
	return nil
}

// PendingPayouts - payouts whose transfer is not yet reconciled
func (l *Ledger) PendingPayouts() ([]*payout.Request, error) {
	l.Lock()
	defer l.Unlock()

	if nil == l.current {
		return nil, fault.ErrNotInitialised
	}
	return l.pendingPayouts()
}

// must hold the lock
func (l *Ledger) pendingPayouts() ([]*payout.Request, error) {
	pending := make([]*payout.Request, 0)
	err := l.db.Pool.Payouts.NewFetchCursor().Map(func(key []byte, value []byte) error {
		request, err := payout.Unpack(key, value)
		if nil != err {
			return err
		}
		pending = append(pending, request)
		return nil
	})
	if nil != err {
		return nil, err
	}
	return pending, nil
}

// must hold the lock
func (l *Ledger) getPayout(id uuid.UUID) (*payout.Request, error) {
	key := id[:]
	buffer := l.db.Pool.Payouts.Get(key)
	if nil == buffer {
		return nil, fault.ErrPayoutNotFound
	}
	return payout.Unpack(key, buffer)
}

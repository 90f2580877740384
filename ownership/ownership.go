// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ownership

import (
	"github.com/bitmark-inc/shareledger/account"
	"github.com/bitmark-inc/shareledger/fault"
	"github.com/bitmark-inc/shareledger/storage"
)

// Ownership - shares held per account
type Ownership interface {
	Get(*account.Account) uint32
	Set(storage.Transaction, *account.Account, uint32)
}

type ownership struct {
	pool *storage.PoolHandle
}

// New - ownership records kept in a storage pool
//
// each record is keyed by the account bytes and holds the share
// count as an 8 byte big endian value
func New(pool *storage.PoolHandle) Ownership {
	return &ownership{
		pool: pool,
	}
}

// Get - shares held by an account, zero if it never held any
func (o *ownership) Get(owner *account.Account) uint32 {
	n, found := o.pool.GetN(owner.Bytes())
	if !found {
		return 0
	}
	if n > maxShares {
		fault.Panic("ownership.Get: stored count exceeds 32 bits")
	}
	return uint32(n)
}

// Set - overwrite the shares held by an account as part of a transaction
//
// zero is stored as a zero count rather than removing the record
func (o *ownership) Set(trx storage.Transaction, owner *account.Account, shares uint32) {
	trx.PutN(o.pool, owner.Bytes(), uint64(shares))
}

const maxShares = 1<<32 - 1

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"encoding/binary"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/shareledger/fault"
)

// Transaction - a batch of writes that are applied together by Commit
//
// reads are not affected by the pending writes
type Transaction interface {
	Put(*PoolHandle, []byte, []byte)
	PutN(*PoolHandle, []byte, uint64)
	Delete(*PoolHandle, []byte)
	Commit() error
	Abort()
}

type transactionData struct {
	sync.Mutex
	database *Database
	batch    *leveldb.Batch
	inUse    bool
}

func (t *transactionData) begin() error {
	t.Lock()
	defer t.Unlock()

	if t.inUse {
		return fault.ErrTransactionInUse
	}
	t.inUse = true
	t.batch.Reset()
	return nil
}

// Put - queue a key/value bytes pair
func (t *transactionData) Put(p *PoolHandle, key []byte, value []byte) {
	t.batch.Put(p.prefixKey(key), value)
}

// PutN - queue a key with a big endian uint64 value
func (t *transactionData) PutN(p *PoolHandle, key []byte, value uint64) {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, value)
	t.batch.Put(p.prefixKey(key), buffer)
}

// Delete - queue removal of a key
func (t *transactionData) Delete(p *PoolHandle, key []byte) {
	t.batch.Delete(p.prefixKey(key))
}

// Commit - write all queued changes atomically
func (t *transactionData) Commit() error {
	t.Lock()
	defer t.Unlock()

	if !t.inUse {
		return fault.ErrTransactionInUse
	}
	t.inUse = false

	d := t.database
	d.RLock()
	defer d.RUnlock()

	if nil == d.db {
		t.batch.Reset()
		return fault.ErrStoreClosed
	}

	err := d.db.Write(t.batch, nil)
	t.batch.Reset()
	return err
}

// Abort - discard all queued changes
func (t *transactionData) Abort() {
	t.Lock()
	defer t.Unlock()

	t.inUse = false
	t.batch.Reset()
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/shareledger/account"
	"github.com/bitmark-inc/shareledger/fault"
	"github.com/bitmark-inc/shareledger/util"
)

// the single ledger record is stored under this key in the ledger pool
var recordKey = []byte("ledger")

const recordVersion = 1

// record - the persisted ledger parameters and supply
type record struct {
	ticker        string
	supply        supply
	pricePerShare uint32
	decimals      int
	privileged    *account.Account // nil if none configured
}

// pack the record for storage
func (r *record) pack() []byte {
	privileged := []byte{}
	if nil != r.privileged {
		privileged = r.privileged.Bytes()
	}

	p := util.Packed{}
	p = p.AppendVarint64(recordVersion)
	p = p.AppendBytes([]byte(r.ticker))
	p = p.AppendVarint64(uint64(r.supply.total))
	p = p.AppendVarint64(uint64(r.supply.outstanding))
	p = p.AppendVarint64(uint64(r.pricePerShare))
	p = p.AppendVarint64(uint64(r.decimals))
	p = p.AppendBytes(privileged)
	return p
}

// unpack a stored record
func unpackRecord(buffer []byte) (*record, error) {
	u := util.NewUnpacker(buffer)

	version, err := u.Varint64()
	if nil != err || recordVersion != version {
		return nil, fault.ErrInvalidLedgerRecord
	}

	ticker, err := u.Bytes()
	if nil != err {
		return nil, fault.ErrInvalidLedgerRecord
	}

	values := [4]uint64{}
	for i := range values {
		values[i], err = u.Varint64()
		if nil != err || values[i] > 0xffffffff {
			return nil, fault.ErrInvalidLedgerRecord
		}
	}

	privilegedBytes, err := u.Bytes()
	if nil != err || !u.Done() {
		return nil, fault.ErrInvalidLedgerRecord
	}

	r := &record{
		ticker: string(ticker),
		supply: supply{
			total:       uint32(values[0]),
			outstanding: uint32(values[1]),
		},
		pricePerShare: uint32(values[2]),
		decimals:      int(values[3]),
	}

	if len(privilegedBytes) > 0 {
		r.privileged, err = account.FromBytes(privilegedBytes)
		if nil != err {
			return nil, fault.ErrInvalidLedgerRecord
		}
	}

	if !r.supply.valid() {
		return nil, fault.ErrInvalidLedgerRecord
	}
	return r, nil
}

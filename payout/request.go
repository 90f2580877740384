// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package payout

import (
	"time"

	"github.com/google/uuid"

	"github.com/bitmark-inc/shareledger/account"
	"github.com/bitmark-inc/shareledger/amount"
	"github.com/bitmark-inc/shareledger/fault"
	"github.com/bitmark-inc/shareledger/util"
)

// current packed record version
const requestVersion = 1

// Request - proceeds of a sale to be transferred to the seller
//
// while a request is pending its shares have already left the
// seller's balance
type Request struct {
	Id        uuid.UUID        `json:"id"`
	Recipient *account.Account `json:"recipient"`
	Shares    uint32           `json:"shares"`
	Amount    amount.Amount    `json:"amount"`
	Created   time.Time        `json:"created"`
}

// NewRequest - a request with a fresh random identifier
func NewRequest(recipient *account.Account, shares uint32, proceeds amount.Amount) (*Request, error) {
	id, err := uuid.NewRandom()
	if nil != err {
		return nil, err
	}
	return &Request{
		Id:        id,
		Recipient: recipient,
		Shares:    shares,
		Amount:    proceeds,
		Created:   time.Now().UTC(),
	}, nil
}

// Key - the storage key of the request
func (r *Request) Key() []byte {
	id := r.Id
	return id[:]
}

// Pack - binary form for storage
func (r *Request) Pack() []byte {
	p := util.Packed{}
	p = p.AppendVarint64(requestVersion)
	p = p.AppendBytes(r.Recipient.Bytes())
	p = p.AppendVarint64(uint64(r.Shares))
	p = p.AppendBytes(r.Amount.Bytes())
	p = p.AppendVarint64(uint64(r.Created.Unix()))
	return p
}

// Unpack - decode a stored request, key is the storage key
func Unpack(key []byte, buffer []byte) (*Request, error) {
	id, err := uuid.FromBytes(key)
	if nil != err {
		return nil, fault.ErrInvalidPayoutRecord
	}

	u := util.NewUnpacker(buffer)

	version, err := u.Varint64()
	if nil != err || requestVersion != version {
		return nil, fault.ErrInvalidPayoutRecord
	}

	recipientBytes, err := u.Bytes()
	if nil != err {
		return nil, fault.ErrInvalidPayoutRecord
	}
	recipient, err := account.FromBytes(recipientBytes)
	if nil != err {
		return nil, err
	}

	shares, err := u.Varint64()
	if nil != err || shares > 0xffffffff {
		return nil, fault.ErrInvalidPayoutRecord
	}

	amountBytes, err := u.Bytes()
	if nil != err {
		return nil, fault.ErrInvalidPayoutRecord
	}
	proceeds, err := amount.FromBytes(amountBytes)
	if nil != err {
		return nil, fault.ErrInvalidPayoutRecord
	}

	created, err := u.Varint64()
	if nil != err || !u.Done() {
		return nil, fault.ErrInvalidPayoutRecord
	}

	return &Request{
		Id:        id,
		Recipient: recipient,
		Shares:    uint32(shares),
		Amount:    proceeds,
		Created:   time.Unix(int64(created), 0).UTC(),
	}, nil
}

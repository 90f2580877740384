// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package shares

import (
	"time"

	"github.com/bitmark-inc/shareledger/account"
	"github.com/bitmark-inc/shareledger/amount"
	"github.com/bitmark-inc/shareledger/util"
)

// method names, also bound into each signature
const (
	MethodBuy     = "Ledger.Buy"
	MethodSell    = "Ledger.Sell"
	MethodIssue   = "Ledger.Issue"
	MethodBuyBack = "Ledger.BuyBack"
	MethodPayouts = "Ledger.Payouts"
)

// SignedArguments - arguments for the state changing calls
//
// Payment is only meaningful for Buy and must be zero otherwise,
// Quantity is ignored by Payouts, Timestamp is Unix nanoseconds
type SignedArguments struct {
	Caller    *account.Account  `json:"caller"`
	Quantity  uint32            `json:"quantity"`
	Payment   amount.Amount     `json:"payment"`
	Timestamp int64             `json:"timestamp,string"`
	Signature account.Signature `json:"signature"`
}

// Message - the bytes covered by the signature
func (arguments *SignedArguments) Message(method string) []byte {
	message := util.Packed{}
	message = message.AppendBytes([]byte(method))
	if nil != arguments.Caller {
		message = message.AppendBytes(arguments.Caller.Bytes())
	} else {
		message = message.AppendBytes(nil)
	}
	message = message.AppendVarint64(uint64(arguments.Quantity))
	message = message.AppendBytes(arguments.Payment.Bytes())
	message = message.AppendVarint64(uint64(arguments.Timestamp))
	return message
}

// Sign - set caller and timestamp then sign for the method
func (arguments *SignedArguments) Sign(method string, key *account.PrivateKey, now time.Time) {
	arguments.Caller = key.Account()
	arguments.Timestamp = now.UnixNano()
	arguments.Signature = key.Sign(arguments.Message(method))
}

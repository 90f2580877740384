// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/bitmark-inc/shareledger/account"
	"github.com/bitmark-inc/shareledger/amount"
	"github.com/bitmark-inc/shareledger/fault"
	"github.com/bitmark-inc/shareledger/rpc/shares"
)

// Buy - purchase shares, payment is in the smallest denomination
func (client *Client) Buy(key *account.PrivateKey, quantity uint32, payment amount.Amount) (*shares.BuyReply, error) {
	arguments, err := client.signed(shares.MethodBuy, key, quantity, payment)
	if nil != err {
		return nil, err
	}
	var reply shares.BuyReply
	if err := client.call(shares.MethodBuy, arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Sell - return shares for a payout
func (client *Client) Sell(key *account.PrivateKey, quantity uint32) (*shares.SellReply, error) {
	arguments, err := client.signed(shares.MethodSell, key, quantity, amount.Zero)
	if nil != err {
		return nil, err
	}
	var reply shares.SellReply
	if err := client.call(shares.MethodSell, arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// Issue - privileged increase of the total supply
func (client *Client) Issue(key *account.PrivateKey, quantity uint32) (*shares.SupplyReply, error) {
	return client.supply(shares.MethodIssue, key, quantity)
}

// BuyBack - privileged decrease of the total supply
func (client *Client) BuyBack(key *account.PrivateKey, quantity uint32) (*shares.SupplyReply, error) {
	return client.supply(shares.MethodBuyBack, key, quantity)
}

func (client *Client) supply(method string, key *account.PrivateKey, quantity uint32) (*shares.SupplyReply, error) {
	arguments, err := client.signed(method, key, quantity, amount.Zero)
	if nil != err {
		return nil, err
	}
	var reply shares.SupplyReply
	if err := client.call(method, arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

func (client *Client) signed(method string, key *account.PrivateKey, quantity uint32, payment amount.Amount) (*shares.SignedArguments, error) {
	if key.IsTesting() != client.testnet {
		return nil, fault.ErrWrongNetworkForPublicKey
	}
	arguments := &shares.SignedArguments{
		Quantity: quantity,
		Payment:  payment,
	}
	arguments.Sign(method, key, time.Now())
	return arguments, nil
}

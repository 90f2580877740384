// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/shareledger/account"
	"github.com/bitmark-inc/shareledger/amount"
	"github.com/bitmark-inc/shareledger/fault"
	"github.com/bitmark-inc/shareledger/rpc/shares"
)

// GetInfo - ledger parameters and supply
func (client *Client) GetInfo() (*shares.InfoReply, error) {
	var reply shares.InfoReply
	if err := client.call("Ledger.Info", shares.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetOwned - shares held by an account
func (client *Client) GetOwned(owner *account.Account) (*shares.SharesOwnedReply, error) {
	if owner.IsTesting() != client.testnet {
		return nil, fault.ErrWrongNetworkForPublicKey
	}

	arguments := shares.SharesOwnedArguments{
		Account: owner,
	}
	var reply shares.SharesOwnedReply
	if err := client.call("Ledger.SharesOwned", arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetPayouts - payouts waiting for reconciliation that the key may see
func (client *Client) GetPayouts(key *account.PrivateKey) (*shares.PayoutsReply, error) {
	arguments, err := client.signed(shares.MethodPayouts, key, 0, amount.Zero)
	if nil != err {
		return nil, err
	}
	var reply shares.PayoutsReply
	if err := client.call(shares.MethodPayouts, arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"math"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/shareledger/amount"
	"github.com/bitmark-inc/shareledger/pricing"
	"github.com/bitmark-inc/shareledger/rpc/shares"
)

func runBuy(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	quantity, err := getQuantity(c)
	if nil != err {
		return err
	}
	key, err := privateKey(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetInfo()
	if nil != err {
		return err
	}
	payment, err := buyPayment(info, quantity, c.String("payment"))
	if nil != err {
		return err
	}

	reply, err := client.Buy(key, quantity, payment)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runSell(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	quantity, err := getQuantity(c)
	if nil != err {
		return err
	}
	key, err := privateKey(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.Sell(key, quantity)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runIssue(c *cli.Context) error {
	return runSupply(c, true)
}

func runBuyBack(c *cli.Context) error {
	return runSupply(c, false)
}

func runSupply(c *cli.Context, issue bool) error {

	m := c.App.Metadata["config"].(*metadata)

	quantity, err := getQuantity(c)
	if nil != err {
		return err
	}
	key, err := privateKey(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	var reply *shares.SupplyReply
	if issue {
		reply, err = client.Issue(key, quantity)
	} else {
		reply, err = client.BuyBack(key, quantity)
	}
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func getQuantity(c *cli.Context) (uint32, error) {
	q := c.Uint("quantity")
	if 0 == q || uint64(q) > math.MaxUint32 {
		return 0, ErrInvalidQuantity
	}
	return uint32(q), nil
}

// payment in whole units, or the exact cost when not given
func buyPayment(info *shares.InfoReply, quantity uint32, units string) (amount.Amount, error) {
	policy, err := pricing.New(info.PricePerShare, info.Decimals)
	if nil != err {
		return amount.Zero, err
	}
	if "" == units {
		return policy.Cost(quantity)
	}
	return policy.ParseUnits(units)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/shareledger/command/shares-cli/rpccalls"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, info)
}

func runPayouts(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := privateKey(m)
	if nil != err {
		return err
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	payouts, err := client.GetPayouts(key)
	if nil != err {
		return err
	}

	return printJson(m.w, payouts)
}

func connect(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.testnet, m.connect, m.fingerprint, m.verbose, m.e)
}

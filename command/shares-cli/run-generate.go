// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/shareledger/account"
)

type generateResult struct {
	Account    *account.Account    `json:"account"`
	PrivateKey *account.PrivateKey `json:"privateKey"`
	Testnet    bool                `json:"testnet"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := account.NewPrivateKey(m.testnet)
	if nil != err {
		return err
	}

	result := generateResult{
		Account:    key.Account(),
		PrivateKey: key,
		Testnet:    m.testnet,
	}
	return printJson(m.w, result)
}

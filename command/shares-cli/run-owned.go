// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/shareledger/account"
)

func runOwned(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	var owner *account.Account
	if s := c.String("owner"); "" != s {
		a, err := account.FromBase58(s)
		if nil != err {
			return err
		}
		owner = a
	} else {
		key, err := privateKey(m)
		if nil != err {
			return err
		}
		owner = key.Account()
	}

	client, err := connect(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetOwned(owner)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func privateKey(m *metadata) (*account.PrivateKey, error) {
	if "" == m.key {
		return nil, ErrMissingKey
	}
	return account.PrivateKeyFromBase58(m.key)
}

// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/shareledger/chain"
)

type metadata struct {
	connect     string
	fingerprint string
	key         string
	testnet     bool
	verbose     bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "shares-cli"
	app.Usage = "buy and sell shares on a sharesd ledger"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Testing,
			Usage: " ledger `NETWORK` [live|testing|local]",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " sharesd `HOST:PORT`",
			EnvVar: "SHARES_CONNECT",
		},
		cli.StringFlag{
			Name:   "fingerprint, f",
			Value:  "",
			Usage:  " expected SHA3-256 `HEX` of the server certificate",
			EnvVar: "SHARES_FINGERPRINT",
		},
		cli.StringFlag{
			Name:   "key, k",
			Value:  "",
			Usage:  " base58 private `KEY` used to sign requests",
			EnvVar: "SHARES_KEY",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:   "generate",
			Usage:  "generate a private key and its account",
			Action: runGenerate,
		},
		{
			Name:   "info",
			Usage:  "display the ledger parameters and supply",
			Action: runInfo,
		},
		{
			Name:      "owned",
			Usage:     "display shares owned by an account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " base58 `ACCOUNT` default is the account of the key",
				},
			},
			Action: runOwned,
		},
		{
			Name:      "buy",
			Usage:     "buy shares at the fixed price",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "quantity, q",
					Value: 0,
					Usage: "*number of shares `COUNT`",
				},
				cli.StringFlag{
					Name:  "payment, p",
					Value: "",
					Usage: " payment in whole `UNITS` default is the exact cost",
				},
			},
			Action: runBuy,
		},
		{
			Name:      "sell",
			Usage:     "sell shares back to the ledger for a payout",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "quantity, q",
					Value: 0,
					Usage: "*number of shares `COUNT`",
				},
			},
			Action: runSell,
		},
		{
			Name:      "issue",
			Usage:     "increase the total supply (privileged)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "quantity, q",
					Value: 0,
					Usage: "*number of shares `COUNT`",
				},
			},
			Action: runIssue,
		},
		{
			Name:      "buy-back",
			Usage:     "decrease the total supply (privileged)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "quantity, q",
					Value: 0,
					Usage: "*number of shares `COUNT`",
				},
			},
			Action: runBuyBack,
		},
		{
			Name:   "payouts",
			Usage:  "list payouts of the key's sales waiting for reconciliation",
			Action: runPayouts,
		},
		{
			Name:  "version",
			Usage: "display shares-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		network := chain.Normalise(c.GlobalString("network"))
		if "test" == network {
			network = chain.Testing
		}
		if !chain.Valid(network) {
			return fmt.Errorf("network: %q can only be live/testing/local", network)
		}

		c.App.Metadata["config"] = &metadata{
			connect:     c.GlobalString("connect"),
			fingerprint: c.GlobalString("fingerprint"),
			key:         c.GlobalString("key"),
			testnet:     chain.IsTesting(network),
			verbose:     c.GlobalBool("verbose"),
			e:           c.App.ErrWriter,
			w:           c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

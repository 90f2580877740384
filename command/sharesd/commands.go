// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/google/uuid"

	"github.com/bitmark-inc/shareledger/account"
	"github.com/bitmark-inc/shareledger/fault"
	"github.com/bitmark-inc/shareledger/ledger"
	"github.com/bitmark-inc/shareledger/mode"
	"github.com/bitmark-inc/shareledger/payout"
	"github.com/bitmark-inc/shareledger/rpc/certificate"
	"github.com/bitmark-inc/shareledger/zmqutil"
)

const (
	rpcCertificateKeyFilename = "rpc.crt"
	rpcPrivateKeyFilename     = "rpc.key"

	publishPublicKeyFilename  = "publish.public"
	publishPrivateKeyFilename = "publish.private"
)

// setup command handler
//
// commands that run to create key and certificate files these
// commands cannot access any internal database or states or the
// configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "gen-rpc-cert", "rpc":
		certificateFilename := getFilenameWithDirectory(arguments, rpcCertificateKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, rpcPrivateKeyFilename)

		addresses := []string{}
		if len(arguments) >= 2 {
			for _, a := range arguments[1:] {
				if "" != a {
					addresses = append(addresses, a)
				}
			}
		}

		err := certificate.MakeSelfSigned("rpc", certificateFilename, privateKeyFilename, addresses)
		if nil != err {
			exitwithstatus.Message("generate RPC key: %q and certificate: %q error: %s", privateKeyFilename, certificateFilename, err)
		}
		fmt.Printf("generated RPC key: %q and certificate: %q\n", privateKeyFilename, certificateFilename)

	case "gen-publish-keys", "publish":
		publicKeyFilename := getFilenameWithDirectory(arguments, publishPublicKeyFilename)
		privateKeyFilename := getFilenameWithDirectory(arguments, publishPrivateKeyFilename)
		err := zmqutil.MakeKeyPair(publicKeyFilename, privateKeyFilename)
		if nil != err {
			exitwithstatus.Message("generate private key: %q and public key: %q error: %s", privateKeyFilename, publicKeyFilename, err)
		}
		fmt.Printf("generated private key: %q and public key: %q\n", privateKeyFilename, publicKeyFilename)

	case "start", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "initialise", "init", "state", "payouts", "payout-confirm", "payout-fail":
		return false // defer processing until database is loaded

	case "version", "v":
		fmt.Printf("%s\n", version)

	default:
		switch command {
		case "help", "h", "?":
		case "", " ":
			fmt.Printf("error: missing command\n")
		default:
			fmt.Printf("error: no such command: %q\n", command)
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] --config-file=FILE [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version sting\n\n")

		fmt.Printf("  gen-rpc-cert [DIR]         (rpc)    - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-rpc-cert [DIR] [IPs...]         - create private key in:  %q\n", "DIR/"+rpcPrivateKeyFilename)
		fmt.Printf("                                        and the certificate in: %q\n", "DIR/"+rpcCertificateKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  gen-publish-keys [DIR]     (publish) - create private key in: %q\n", "DIR/"+publishPrivateKeyFilename)
		fmt.Printf("                                         and the public key in: %q\n", "DIR/"+publishPublicKeyFilename)
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  initialise                 (init)   - set the ledger parameters from the configuration\n")
		fmt.Printf("                                        only possible once per database\n")
		fmt.Printf("\n")

		fmt.Printf("  state                               - display the ledger state as JSON\n")
		fmt.Printf("\n")

		fmt.Printf("  payouts                             - list payouts waiting for reconciliation\n")
		fmt.Printf("\n")

		fmt.Printf("  payout-confirm ID                   - record a payout as transferred\n")
		fmt.Printf("\n")

		fmt.Printf("  payout-fail ID [REASON]             - return the shares of a failed payout to the seller\n")
		fmt.Printf("\n")

		fmt.Printf("  start                      (run)    - just run the program, same as no arguments\n")
		fmt.Printf("                                        for convenience when passing script arguments\n")
		fmt.Printf("\n")

		exitwithstatus.Exit(1)
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// configuration file enquiry commands
// have configuration file read and decoded, but nothing else
func processConfigCommand(arguments []string, options *Configuration) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
	}

	switch command {
	case "config-test", "cfg":
		printJSON(options)

	default: // unknown commands fall through to data command
		return false
	}

	// indicate processing complete and perform normal exit from main
	return true
}

// data command handler
// the ledger database is open so these commands can read and
// change the ledger
func processDataCommand(log *logger.L, arguments []string, options *Configuration, l *ledger.Ledger) bool {

	command := "start"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {

	case "start", "run":
		return false // continue processing

	case "initialise", "init":
		parameters, err := ledgerParameters(&options.Ledger)
		if nil != err {
			exitwithstatus.Message("error: %s", err)
		}
		err = l.Initialise(parameters)
		if nil != err {
			exitwithstatus.Message("initialise error: %s", err)
		}
		log.Infof("initialised: %s", parameters.Ticker)
		state, _ := l.State()
		printJSON(state)

	case "state":
		state, err := l.State()
		if nil != err {
			exitwithstatus.Message("state error: %s", err)
		}
		printJSON(state)

	case "payouts":
		payouts, err := l.PendingPayouts()
		if nil != err {
			exitwithstatus.Message("payouts error: %s", err)
		}
		type pendingPayout struct {
			*payout.Request
			Units string `json:"units"`
		}
		list := make([]pendingPayout, 0, len(payouts))
		for _, p := range payouts {
			units, err := l.Units(p.Amount)
			if nil != err {
				exitwithstatus.Message("payouts error: %s", err)
			}
			list = append(list, pendingPayout{Request: p, Units: units})
		}
		printJSON(list)

	case "payout-confirm":
		id := payoutId(arguments)
		if err := l.ConfirmPayout(id); nil != err {
			exitwithstatus.Message("confirm payout: %s  error: %s", id, err)
		}
		fmt.Printf("confirmed payout: %s\n", id)

	case "payout-fail":
		id := payoutId(arguments)
		reason := errors.New("failed by operator")
		if len(arguments) > 1 {
			reason = errors.New(strings.Join(arguments[1:], " "))
		}
		if err := l.FailPayout(id, reason); nil != err {
			exitwithstatus.Message("fail payout: %s  error: %s", id, err)
		}
		fmt.Printf("failed payout: %s\n", id)

	default:
		exitwithstatus.Message("error: no such command: %s", command)

	}

	// indicate processing complete and perform normal exit from main
	return true
}

// convert the configured ledger block to initialisation parameters
func ledgerParameters(configuration *LedgerType) (ledger.Parameters, error) {
	parameters := ledger.Parameters{
		Ticker:        configuration.Ticker,
		TotalShares:   configuration.TotalShares,
		PricePerShare: configuration.PricePerShare,
	}

	if "" == configuration.PrivilegedCaller {
		return parameters, nil
	}

	caller, err := account.FromBase58(configuration.PrivilegedCaller)
	if nil != err {
		return parameters, fmt.Errorf("privileged caller: %q  error: %s", configuration.PrivilegedCaller, err)
	}
	if caller.IsTesting() != mode.IsTesting() {
		return parameters, fault.ErrWrongNetworkForPublicKey
	}
	parameters.PrivilegedCaller = caller
	return parameters, nil
}

func payoutId(arguments []string) uuid.UUID {
	if len(arguments) < 1 {
		exitwithstatus.Message("missing payout id argument")
	}
	id, err := uuid.Parse(arguments[0])
	if nil != err {
		exitwithstatus.Message("invalid payout id: %q  error: %s", arguments[0], err)
	}
	return id
}

func printJSON(data interface{}) {
	b, err := json.MarshalIndent(data, "", "  ")
	if nil != err {
		exitwithstatus.Message("error: %s", err)
	}
	_, _ = os.Stdout.Write(b)
	_, _ = os.Stdout.WriteString("\n")
}

// get the working directory; if not set in the arguments
// it's set to the current directory
func getFilenameWithDirectory(arguments []string, name string) string {
	dir := "."
	if len(arguments) >= 1 {
		dir = arguments[0]
	}

	return filepath.Join(dir, name)
}

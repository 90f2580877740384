// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"time"

	"github.com/bitmark-inc/shareledger/fault"
	"github.com/bitmark-inc/shareledger/rpc/certificate"
)

const dialTimeout = 10 * time.Second

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	testnet bool
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a sharesd
//
// the server certificate is self signed, if fingerprint is not empty
// it must match the hex SHA3-256 of the server certificate
func NewClient(testnet bool, connect string, fingerprint string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	dialer := &net.Dialer{Timeout: dialTimeout}
	conn, err := tls.DialWithDialer(dialer, "tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	if "" != fingerprint {
		certificates := conn.ConnectionState().PeerCertificates
		if 0 == len(certificates) {
			conn.Close()
			return nil, fmt.Errorf("server: %q sent no certificate", connect)
		}
		f := certificate.Fingerprint(certificates[0].Raw)
		if hex.EncodeToString(f[:]) != fingerprint {
			conn.Close()
			return nil, fmt.Errorf("server: %q fingerprint: %x does not match: %s", connect, f, fingerprint)
		}
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		testnet: testnet,
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

// Close - shutdown the sharesd connection
func (client *Client) Close() {
	client.client.Close()
	client.conn.Close()
}

// call the server, mapping ledger error identifiers back to errors
func (client *Client) call(method string, arguments interface{}, reply interface{}) error {
	client.printJson(method+" Request", arguments)

	err := client.client.Call(method, arguments, reply)
	if serverError, ok := err.(rpc.ServerError); ok {
		if e := fault.FromIdentifier(string(serverError)); nil != e {
			return e
		}
	}
	if nil != err {
		return err
	}

	client.printJson(method+" Reply", reply)
	return nil
}

func (client *Client) printJson(title string, message interface{}) {
	if !client.verbose {
		return
	}
	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		fmt.Fprintf(client.handle, "%s: JSON error: %s\n", title, err)
		return
	}
	fmt.Fprintf(client.handle, "%s:\n%s\n", title, b)
}

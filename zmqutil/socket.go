// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/logger"
)

// NewBind - one socket bound to every endpoint
//
// when a private key is given the socket is a CURVE server that
// accepts any client, otherwise it is plain text
func NewBind(log *logger.L, socketType zmq.Type, zapDomain string, privateKey []byte, endpoints []string) (*zmq.Socket, error) {

	socket, err := zmq.NewSocket(socketType)
	if nil != err {
		return nil, err
	}

	if len(privateKey) > 0 {
		if err := StartAuthentication(); nil != err {
			socket.Close()
			return nil, err
		}
		zmq.AuthCurveAdd(zapDomain, zmq.CURVE_ALLOW_ANY)

		socket.SetCurveServer(1)
		socket.SetCurveSecretkey(string(privateKey))
		socket.SetZapDomain(zapDomain)
	}

	socket.SetLinger(0)

	for i, endpoint := range endpoints {
		if strings.HasPrefix(endpoint, "tcp://[") {
			socket.SetIpv6(true)
		}
		err = socket.Bind(endpoint)
		if nil != err {
			log.Errorf("cannot bind[%d]: %q  error: %s", i, endpoint, err)
			socket.Close()
			return nil, err
		}
		log.Infof("bind[%d]: %q", i, endpoint)
	}
	return socket, nil
}

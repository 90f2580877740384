// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"encoding/hex"
	"io/ioutil"
	"os"
	"strings"

	zmq "github.com/pebbe/zmq4"

	"github.com/bitmark-inc/shareledger/fault"
	"github.com/bitmark-inc/shareledger/util"
)

const (
	taggedPublic  = "PUBLIC:"
	taggedPrivate = "PRIVATE:"
	keyLength     = 32
)

// MakeKeyPair - create a CURVE key pair in two files
//
// existing files are never overwritten
func MakeKeyPair(publicKeyFileName string, privateKeyFileName string) error {
	if util.EnsureFileExists(publicKeyFileName) || util.EnsureFileExists(privateKeyFileName) {
		return fault.ErrKeyFileAlreadyExists
	}

	// keys are returned in Z85 (ZeroMQ Base-85 Encoding)
	publicKey, privateKey, err := zmq.NewCurveKeypair()
	if nil != err {
		return err
	}

	publicText := taggedPublic + hex.EncodeToString([]byte(zmq.Z85decode(publicKey))) + "\n"
	privateText := taggedPrivate + hex.EncodeToString([]byte(zmq.Z85decode(privateKey))) + "\n"

	if err = ioutil.WriteFile(publicKeyFileName, []byte(publicText), 0666); err != nil {
		return err
	}
	if err = ioutil.WriteFile(privateKeyFileName, []byte(privateText), 0600); err != nil {
		os.Remove(publicKeyFileName)
		return err
	}
	return nil
}

// ReadPublicKeyFile - 32 byte public key from a tagged key file
func ReadPublicKeyFile(name string) ([]byte, error) {
	return readKeyFile(name, false)
}

// ReadPrivateKeyFile - 32 byte private key from a tagged key file
func ReadPrivateKeyFile(name string) ([]byte, error) {
	return readKeyFile(name, true)
}

func readKeyFile(name string, wantPrivate bool) ([]byte, error) {
	data, err := ioutil.ReadFile(name)
	if nil != err {
		return nil, err
	}
	key, private, err := ParseKey(string(data))
	if nil != err {
		return nil, err
	}
	if private != wantPrivate {
		if wantPrivate {
			return nil, fault.ErrInvalidPrivateKeyFile
		}
		return nil, fault.ErrInvalidPublicKeyFile
	}
	return key, nil
}

// ParseKey - decode "PUBLIC:hex" or "PRIVATE:hex"
//
// second result is true for a private key
func ParseKey(data string) ([]byte, bool, error) {
	s := strings.TrimSpace(data)

	tag := taggedPublic
	private := false
	invalid := error(fault.ErrInvalidPublicKeyFile)
	if strings.HasPrefix(s, taggedPrivate) {
		tag = taggedPrivate
		private = true
		invalid = fault.ErrInvalidPrivateKeyFile
	} else if !strings.HasPrefix(s, taggedPublic) {
		return nil, false, fault.ErrInvalidPublicKeyFile
	}

	h, err := hex.DecodeString(s[len(tag):])
	if nil != err || keyLength != len(h) {
		return nil, false, invalid
	}
	return h, private, nil
}

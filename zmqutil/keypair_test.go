// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/shareledger/fault"
	"github.com/bitmark-inc/shareledger/zmqutil"
)

func TestParseKey(t *testing.T) {
	hex := "a2d3e1c4b5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293a4b5c6d7e8f90"

	key, private, err := zmqutil.ParseKey("PUBLIC:" + hex + "\n")
	assert.Nil(t, err, "public")
	assert.False(t, private, "public flagged private")
	assert.Equal(t, 32, len(key), "public length")

	_, private, err = zmqutil.ParseKey("  PRIVATE:" + hex)
	assert.Nil(t, err, "private")
	assert.True(t, private, "private flag")

	_, _, err = zmqutil.ParseKey("PRIVATE:" + hex[:10])
	assert.Equal(t, fault.ErrInvalidPrivateKeyFile, err, "short private")

	_, _, err = zmqutil.ParseKey("PUBLIC:xyz")
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "bad hex")

	_, _, err = zmqutil.ParseKey(hex)
	assert.Equal(t, fault.ErrInvalidPublicKeyFile, err, "no tag")
}

func TestMakeKeyPair(t *testing.T) {
	dir, err := ioutil.TempDir("", "zmqutil-")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	public := filepath.Join(dir, "publish.public")
	private := filepath.Join(dir, "publish.private")

	assert.Nil(t, zmqutil.MakeKeyPair(public, private), "make")
	assert.Equal(t, fault.ErrKeyFileAlreadyExists, zmqutil.MakeKeyPair(public, private), "overwrite")

	pub, err := zmqutil.ReadPublicKeyFile(public)
	assert.Nil(t, err, "read public")
	assert.Equal(t, 32, len(pub), "public length")

	priv, err := zmqutil.ReadPrivateKeyFile(private)
	assert.Nil(t, err, "read private")
	assert.Equal(t, 32, len(priv), "private length")

	_, err = zmqutil.ReadPrivateKeyFile(public)
	assert.Equal(t, fault.ErrInvalidPrivateKeyFile, err, "public read as private")
}

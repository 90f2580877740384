// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/shareledger/account"
	"github.com/bitmark-inc/shareledger/fault"
)

type accountTest struct {
	testnet       bool
	zero          bool
	publicKey     []byte
	base58Account string
}

// Valid account
var testAccount = []accountTest{
	{
		testnet:       false,
		zero:          false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		zero:          false,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		testnet:       true,
		zero:          true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "dw9MQXcC5rJZb3QE1nz86PiQAheMP1dx9M3dr52tT8NNs14m33",
	},
	{
		testnet:       false,
		zero:          true,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "a3ezwdYVEVrHwszQrYzDTCAZwUD3yKtNsCq9YhEu97bPaGAKy1",
	},
}

type invalid struct {
	str string
	err error
}

// Invalid account
var testInvalidAccountFromBase58 = []invalid{
	{"", fault.ErrCannotDecodeAccount},                                                   // empty
	{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.ErrCannotDecodeAccount}, // invalid base58 string
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLDj", fault.ErrChecksumMismatch},    // checksum mismatch
	{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLC", fault.ErrChecksumMismatch},     // truncated
	{"27t9x9hU5EMi5ufKgsuyQjVpCKsC4TeBABoKpXGH3vMjUkHBdJB", fault.ErrInvalidKeyType},     // undefined key algorithm
	{"YqVxD4vazrrnxnLH2MzCHJedPPz1VKHnKbVfya39nF96ABAYes", fault.ErrNotPublicKey},        // private key variant
	{"8etgkPeUxrduy3W3QLFm6ByK1gagTzp2aTRDwfGtknS6sB8W1", fault.ErrInvalidKeyLength},     // short key
}

func TestValid(t *testing.T) {
	for index, test := range testAccount {
		testnet := byte(0x00)
		if test.testnet {
			testnet = 0x02
		}

		buffer := []byte{byte(account.ED25519<<4) | 0x01 | testnet}
		buffer = append(buffer, test.publicKey...)
		acc, err := account.FromBytes(buffer)
		if !assert.Nil(t, err, "%d: from bytes", index) {
			continue
		}

		assert.Equal(t, buffer, acc.Bytes(), "%d: bytes", index)
		assert.Equal(t, test.zero, acc.IsZero(), "%d: is zero", index)
		assert.Equal(t, test.testnet, acc.IsTesting(), "%d: testnet", index)
		assert.Equal(t, test.base58Account, acc.String(), "%d: base58", index)
	}
}

func TestValidBase58(t *testing.T) {
	for index, test := range testAccount {
		acc, err := account.FromBase58(test.base58Account)
		if !assert.Nil(t, err, "%d: from base58", index) {
			continue
		}
		assert.Equal(t, test.testnet, acc.IsTesting(), "%d: testnet", index)
		assert.Equal(t, account.ED25519, acc.KeyType(), "%d: key type", index)
		assert.True(t, bytes.Equal(acc.PublicKeyBytes(), test.publicKey), "%d: public key: %x", index, acc.PublicKeyBytes())
		assert.Equal(t, test.base58Account, acc.String(), "%d: to base58", index)

		j := `"` + test.base58Account + `"`
		var a account.Account
		err = json.Unmarshal([]byte(j), &a)
		if !assert.Nil(t, err, "%d: from JSON", index) {
			continue
		}
		assert.True(t, acc.Equal(&a), "%d: JSON account differs", index)

		buffer, err := json.Marshal(a)
		assert.Nil(t, err, "%d: to JSON", index)
		assert.Equal(t, j, string(buffer), "%d: to JSON", index)
	}
}

func TestInvalidBase58(t *testing.T) {
	for index, test := range testInvalidAccountFromBase58 {
		_, err := account.FromBase58(test.str)
		assert.Equal(t, test.err, err, "%d: %q", index, test.str)
	}
}

func TestInvalidBytes(t *testing.T) {
	_, err := account.FromBytes(nil)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "empty")

	_, err = account.New(make([]byte, 31), false)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short public key")
}

func TestPrivateKey(t *testing.T) {
	seed := decodeHex("9d61b19deffd5a60ba844af492ec2cc44449c5697b326919703bac031cae7f60")
	privateKey, err := account.PrivateKeyFromSeed(seed, true)
	if !assert.Nil(t, err, "from seed") {
		return
	}

	// RFC 8032 test 1 public key
	acc := privateKey.Account()
	assert.Equal(t, decodeHex("d75a980182b10ab7d54bfed3c964073a0ee172f3daa62325af021a68f707511a"), acc.PublicKeyBytes(), "public key")
	assert.True(t, acc.IsTesting(), "testnet")

	message := []byte("buy 20 SHR")
	signature := privateKey.Sign(message)
	assert.Nil(t, acc.CheckSignature(message, signature), "valid signature")
	assert.Equal(t, fault.ErrInvalidSignature, acc.CheckSignature([]byte("buy 21 SHR"), signature), "altered message")
	assert.Equal(t, fault.ErrInvalidSignature, acc.CheckSignature(message, signature[:10]), "short signature")

	recovered, err := account.PrivateKeyFromBase58(privateKey.String())
	assert.Nil(t, err, "private key round trip")
	assert.True(t, acc.Equal(recovered.Account()), "recovered account differs")

	_, err = account.PrivateKeyFromBase58(acc.String())
	assert.Equal(t, fault.ErrNotPrivateKey, err, "account is not a private key")

	_, err = account.PrivateKeyFromSeed(seed[:16], false)
	assert.Equal(t, fault.ErrInvalidKeyLength, err, "short seed")
}

func TestRandomPrivateKey(t *testing.T) {
	one, err := account.NewPrivateKey(false)
	assert.Nil(t, err, "first key")
	two, err := account.NewPrivateKey(false)
	assert.Nil(t, err, "second key")
	assert.False(t, one.Account().Equal(two.Account()), "keys are the same")
}

func TestSignatureText(t *testing.T) {
	s := account.Signature{0x01, 0xab, 0xff}
	text, err := s.MarshalText()
	assert.Nil(t, err, "marshal")
	assert.Equal(t, "01abff", string(text), "hex")

	var r account.Signature
	assert.Nil(t, r.UnmarshalText(text), "unmarshal")
	assert.Equal(t, s, r, "round trip")

	assert.Equal(t, fault.ErrInvalidSignature, r.UnmarshalText([]byte("xyz")), "bad hex")
}

func decodeHex(hexStr string) []byte {
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		panic(err)
	}
	return b
}

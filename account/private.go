// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/shareledger/fault"
)

// PrivateKey - signing key for an account
type PrivateKey struct {
	test       bool
	privateKey ed25519.PrivateKey
}

// NewPrivateKey - generate a random key
func NewPrivateKey(test bool) (*PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if nil != err {
		return nil, err
	}
	return &PrivateKey{
		test:       test,
		privateKey: key,
	}, nil
}

// PrivateKeyFromSeed - deterministic key from a 32 byte seed
func PrivateKeyFromSeed(seed []byte, test bool) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.ErrInvalidKeyLength
	}
	return &PrivateKey{
		test:       test,
		privateKey: ed25519.NewKeyFromSeed(seed),
	}, nil
}

// PrivateKeyFromBase58 - convert a Base58 encoded string to a private key
func PrivateKeyFromBase58(privateKeyBase58Encoded string) (*PrivateKey, error) {
	decoded, err := base58.Decode(privateKeyBase58Encoded)
	if nil != err || 0 == len(decoded) {
		return nil, fault.ErrCannotDecodePrivateKey
	}

	if len(decoded) <= checksumLength+1 {
		return nil, fault.ErrInvalidKeyLength
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	keyVariant := decoded[0]
	if publicKeyCode == keyVariant&publicKeyCode {
		return nil, fault.ErrNotPrivateKey
	}
	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrInvalidKeyType
	}

	key := decoded[1:checksumStart]
	if ed25519.PrivateKeySize != len(key) {
		return nil, fault.ErrInvalidKeyLength
	}

	privateKey := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	copy(privateKey, key)

	return &PrivateKey{
		test:       0 != keyVariant&testKeyCode,
		privateKey: privateKey,
	}, nil
}

// Account - the public side of the key
func (privateKey *PrivateKey) Account() *Account {
	return &Account{
		test:      privateKey.test,
		publicKey: privateKey.privateKey.Public().(ed25519.PublicKey),
	}
}

// IsTesting - whether the key is for the test network
func (privateKey *PrivateKey) IsTesting() bool {
	return privateKey.test
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.privateKey, message)
}

// Bytes - key variant followed by the private key
func (privateKey *PrivateKey) Bytes() []byte {
	keyVariant := byte(ED25519 << algorithmShift)
	if privateKey.test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, privateKey.privateKey...)
}

// String - base58 encoding of encoded key with checksum
func (privateKey *PrivateKey) String() string {
	buffer := privateKey.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert a private key to its Base58 form
func (privateKey PrivateKey) MarshalText() ([]byte, error) {
	return []byte(privateKey.String()), nil
}

// UnmarshalText - convert Base58 form to a private key
func (privateKey *PrivateKey) UnmarshalText(s []byte) error {
	k, err := PrivateKeyFromBase58(string(s))
	if nil != err {
		return err
	}
	*privateKey = *k
	return nil
}

// Signature - ed25519 signature, hex encoded as text
type Signature []byte

// String - hex form for the fmt package
func (signature Signature) String() string {
	return hex.EncodeToString(signature)
}

// MarshalText - convert signature to hex text
func (signature Signature) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(signature)), nil
}

// UnmarshalText - convert hex text into a signature
func (signature *Signature) UnmarshalText(s []byte) error {
	sig, err := hex.DecodeString(string(s))
	if nil != err {
		return fault.ErrInvalidSignature
	}
	*signature = sig
	return nil
}

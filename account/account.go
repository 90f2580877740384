// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/shareledger/fault"
)

// enumeration of supported key algorithms
const (
	ED25519 = 1
)

// miscellaneous constants
const (
	checksumLength = 4

	// bits in key code starting from LSB
	publicKeyCode = 0x01
	testKeyCode   = 0x02

	algorithmShift = 4 // shift 4 bits to get algorithm
)

// Account - the identity of a share holder
//
// an ed25519 public key tagged with its network
type Account struct {
	test      bool
	publicKey ed25519.PublicKey
}

// FromBase58 - convert a Base58 encoded string to an account
func FromBase58(accountBase58Encoded string) (*Account, error) {
	decoded, err := base58.Decode(accountBase58Encoded)
	if nil != err || 0 == len(decoded) {
		return nil, fault.ErrCannotDecodeAccount
	}

	if len(decoded) <= checksumLength {
		return nil, fault.ErrInvalidKeyLength
	}

	checksumStart := len(decoded) - checksumLength
	checksum := sha3.Sum256(decoded[:checksumStart])
	if !bytes.Equal(checksum[:checksumLength], decoded[checksumStart:]) {
		return nil, fault.ErrChecksumMismatch
	}

	return FromBytes(decoded[:checksumStart])
}

// FromBytes - convert a key variant prefixed public key to an account
func FromBytes(buffer []byte) (*Account, error) {
	if 0 == len(buffer) {
		return nil, fault.ErrInvalidKeyLength
	}

	keyVariant := buffer[0]
	if publicKeyCode != keyVariant&publicKeyCode {
		return nil, fault.ErrNotPublicKey
	}
	if ED25519 != keyVariant>>algorithmShift {
		return nil, fault.ErrInvalidKeyType
	}

	key := buffer[1:]
	if ed25519.PublicKeySize != len(key) {
		return nil, fault.ErrInvalidKeyLength
	}

	publicKey := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(publicKey, key)

	return &Account{
		test:      0 != keyVariant&testKeyCode,
		publicKey: publicKey,
	}, nil
}

// New - account from a raw public key
func New(publicKey ed25519.PublicKey, test bool) (*Account, error) {
	if ed25519.PublicKeySize != len(publicKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	k := make(ed25519.PublicKey, ed25519.PublicKeySize)
	copy(k, publicKey)
	return &Account{
		test:      test,
		publicKey: k,
	}, nil
}

// KeyType - key type code
func (account *Account) KeyType() int {
	return ED25519
}

// PublicKeyBytes - fetch the public key as byte slice
func (account *Account) PublicKeyBytes() []byte {
	return account.publicKey[:]
}

// IsTesting - whether the public key is for the test network
func (account *Account) IsTesting() bool {
	return account.test
}

// IsZero - true for the all zero public key
func (account *Account) IsZero() bool {
	for _, b := range account.publicKey {
		if 0 != b {
			return false
		}
	}
	return true
}

// Equal - same network and key
func (account *Account) Equal(other *Account) bool {
	if nil == account || nil == other {
		return account == other
	}
	return account.test == other.test && bytes.Equal(account.publicKey, other.publicKey)
}

// CheckSignature - verify the signature of a message
func (account *Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.ErrInvalidSignature
	}
	if !ed25519.Verify(account.publicKey, message, signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}

// Bytes - key variant followed by public key
//
// this is the form used as a storage key
func (account *Account) Bytes() []byte {
	keyVariant := byte(ED25519<<algorithmShift) | publicKeyCode
	if account.test {
		keyVariant |= testKeyCode
	}
	return append([]byte{keyVariant}, account.publicKey...)
}

// String - base58 encoding of encoded key with checksum
func (account *Account) String() string {
	buffer := account.Bytes()
	checksum := sha3.Sum256(buffer)
	buffer = append(buffer, checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert Base58 JSON form to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = *a
	return nil
}

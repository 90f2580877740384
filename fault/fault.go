// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type AuthorisationError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type TransferError GenericError
type UsageError GenericError

// ledger usage errors
var (
	ErrAlreadyInitialised = UsageError("ERR_ALREADY_INITIALISED")
	ErrNotInitialised     = UsageError("ERR_NOT_INITIALISED")
)

// ledger validation errors
var (
	ErrInsufficientDeposit    = InvalidError("ERR_INSUFFICIENT_DEPOSIT")
	ErrInvalidBuyBackQuantity = InvalidError("ERR_INVALID_BUY_BACK_QUANTITY")
	ErrInvalidBuyQuantity     = InvalidError("ERR_INVALID_BUY_QUANTITY")
	ErrInvalidIssueQuantity   = InvalidError("ERR_INVALID_ISSUE_QUANTITY")
	ErrInvalidPrice           = InvalidError("ERR_INVALID_PRICE")
	ErrInvalidSellQuantity    = InvalidError("ERR_INVALID_SELL_QUANTITY")
	ErrInvalidTicker          = InvalidError("ERR_INVALID_TICKER")
	ErrInvalidUnitMultiplier  = InvalidError("ERR_INVALID_UNIT_MULTIPLIER")
	ErrPaymentOverflow        = InvalidError("ERR_PAYMENT_OVERFLOW")
	ErrSupplyOverflow         = InvalidError("ERR_SUPPLY_OVERFLOW")
)

// authorisation errors
var (
	ErrInvalidSignature = AuthorisationError("ERR_INVALID_SIGNATURE")
	ErrNotPrivileged    = AuthorisationError("ERR_NOT_PRIVILEGED")
	ErrReplayedRequest  = AuthorisationError("ERR_REPLAYED_REQUEST")
	ErrRequestExpired   = AuthorisationError("ERR_REQUEST_EXPIRED")
)

// payout transfer errors
var (
	ErrCannotReconcile = TransferError("ERR_CANNOT_RECONCILE")
	ErrPayoutNotFound  = TransferError("ERR_PAYOUT_NOT_FOUND")
	ErrTransferFailed  = TransferError("ERR_TRANSFER_FAILED")
)

// infrastructure errors - keep in alphabetic order
var (
	ErrCannotDecodeAccount          = InvalidError("cannot decode account")
	ErrCannotDecodePrivateKey       = InvalidError("cannot decode private key")
	ErrCertificateFileAlreadyExists = ExistsError("certificate file already exists")
	ErrChecksumMismatch             = ProcessError("checksum mismatch")
	ErrInvalidAmount                = InvalidError("invalid amount")
	ErrInvalidChain                 = InvalidError("invalid chain")
	ErrInvalidCount                 = InvalidError("invalid count")
	ErrInvalidIpAddress             = InvalidError("invalid IP address")
	ErrInvalidItem                  = InvalidError("invalid item")
	ErrInvalidKeyLength             = InvalidError("invalid key length")
	ErrInvalidKeyType               = InvalidError("invalid key type")
	ErrInvalidLedgerRecord          = ProcessError("invalid ledger record")
	ErrInvalidLoggerChannel         = ProcessError("invalid logger channel")
	ErrInvalidPayoutRecord          = ProcessError("invalid payout record")
	ErrInvalidPrivateKeyFile        = InvalidError("invalid private key file")
	ErrInvalidPublicKeyFile         = InvalidError("invalid public key file")
	ErrInvalidStructPointer         = InvalidError("invalid struct pointer")
	ErrKeyFileAlreadyExists         = ExistsError("key file already exists")
	ErrMissingParameters            = InvalidError("missing parameters")
	ErrNotAvailable                 = ProcessError("not available")
	ErrNotPrivateKey                = InvalidError("not private key")
	ErrNotPublicKey                 = InvalidError("not public key")
	ErrRateLimiting                 = InvalidError("rate limit exceeded")
	ErrStoreClosed                  = ProcessError("store is closed")
	ErrTransactionInUse             = ProcessError("transaction already in use")
	ErrWrongNetworkForPublicKey     = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e AuthorisationError) Error() string { return string(e) }
func (e ExistsError) Error() string        { return string(e) }
func (e InvalidError) Error() string       { return string(e) }
func (e NotFoundError) Error() string      { return string(e) }
func (e ProcessError) Error() string       { return string(e) }
func (e TransferError) Error() string      { return string(e) }
func (e UsageError) Error() string         { return string(e) }

// determine the class of an error
func IsErrAuthorisation(e error) bool { _, ok := e.(AuthorisationError); return ok }
func IsErrExists(e error) bool        { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool       { _, ok := e.(InvalidError); return ok }
func IsErrNotFound(e error) bool      { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool       { _, ok := e.(ProcessError); return ok }
func IsErrTransfer(e error) bool      { _, ok := e.(TransferError); return ok }
func IsErrUsage(e error) bool         { _, ok := e.(UsageError); return ok }

// every ledger error that a remote caller may need to branch on
var identified = []error{
	ErrAlreadyInitialised,
	ErrNotInitialised,
	ErrInsufficientDeposit,
	ErrInvalidBuyBackQuantity,
	ErrInvalidBuyQuantity,
	ErrInvalidIssueQuantity,
	ErrInvalidPrice,
	ErrInvalidSellQuantity,
	ErrInvalidTicker,
	ErrInvalidUnitMultiplier,
	ErrPaymentOverflow,
	ErrSupplyOverflow,
	ErrInvalidSignature,
	ErrNotPrivileged,
	ErrReplayedRequest,
	ErrRequestExpired,
	ErrCannotReconcile,
	ErrPayoutNotFound,
	ErrTransferFailed,
}

// FromIdentifier - map an error string received from a remote
// server back to the matching error instance
//
// returns nil if the string is not a known identifier
func FromIdentifier(identifier string) error {
	for _, e := range identified {
		if e.Error() == identifier {
			return e
		}
	}
	return nil
}

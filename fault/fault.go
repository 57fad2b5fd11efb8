// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// error instances
//
// Provides a single instance of errors to allow easy comparison
package fault

// error base
type GenericError string

// to allow for different classes of errors
type OpenError GenericError
type AccessError GenericError
type CorruptedError GenericError
type PreconditionError GenericError

// common errors - keep in alphabetic order
var (
	ErrDatabaseClosed      = AccessError("database is closed")
	ErrEngineNotSupported  = OpenError("transactional engine is not supported by the environment")
	ErrInvalidHeader       = PreconditionError("header cannot be decoded")
	ErrInvalidHeaderSize   = PreconditionError("header size is invalid")
	ErrNoEnvironment       = OpenError("no storage environment is available")
	ErrNotLink             = PreconditionError("not a valid link digest")
	ErrUnexpectedValueType = CorruptedError("stored value has unexpected type")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e OpenError) Error() string         { return string(e) }
func (e AccessError) Error() string       { return string(e) }
func (e CorruptedError) Error() string    { return string(e) }
func (e PreconditionError) Error() string { return string(e) }

// OpenFailure - the engine reported an error while opening the store
type OpenFailure struct {
	Err error
}

func (e OpenFailure) Error() string {
	return "open request produced an error: " + e.Err.Error()
}

// TransactionError - the engine reported a terminal transaction failure
type TransactionError struct {
	Err error
}

func (e TransactionError) Error() string {
	return "error while committing transaction: " + e.Err.Error()
}

// determine the class of an error
func IsErrOpen(e error) bool {
	if _, ok := e.(OpenError); ok {
		return true
	}
	_, ok := e.(OpenFailure)
	return ok
}

func IsErrAccess(e error) bool {
	if _, ok := e.(AccessError); ok {
		return true
	}
	return IsErrCorrupted(e) || IsErrTransactionFailure(e)
}

func IsErrCorrupted(e error) bool    { _, ok := e.(CorruptedError); return ok }
func IsErrPrecondition(e error) bool { _, ok := e.(PreconditionError); return ok }

func IsErrTransactionFailure(e error) bool { _, ok := e.(TransactionError); return ok }

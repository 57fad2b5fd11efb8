// SPDX-License-Identifier: ISC
// Copyright (c) 2019-2020 Meridian Chain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package engine

// exception names reported by the engine
const (
	ConstraintError = "ConstraintError" // uniqueness violated by an add
	DataError       = "DataError"       // key cannot be used for lookup
	AbortError      = "AbortError"      // transaction was aborted
	VersionError    = "VersionError"    // stored schema is newer than requested
	ReadOnlyError   = "ReadOnlyError"   // write issued in a read-only transaction
	UnknownError    = "UnknownError"    // anything else
)

// Error - an engine level failure carrying the exception name
type Error struct {
	Name    string
	Message string
}

func (e *Error) Error() string {
	return e.Name + ": " + e.Message
}

// NewError - make an engine error
func NewError(name string, message string) *Error {
	return &Error{
		Name:    name,
		Message: message,
	}
}

// name check helpers

func IsConstraintError(e error) bool { return hasName(e, ConstraintError) }
func IsDataError(e error) bool       { return hasName(e, DataError) }
func IsAbortError(e error) bool      { return hasName(e, AbortError) }
func IsVersionError(e error) bool    { return hasName(e, VersionError) }

func hasName(e error, name string) bool {
	ee, ok := e.(*Error)
	return ok && name == ee.Name
}

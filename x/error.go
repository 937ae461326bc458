/*
 * Copyright 2016 Dgraph Labs, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * 		http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package x holds the small pieces of ambient infrastructure (error
// wrapping, assertions, logging) shared by every package in this
// module, the way a sprawling monorepo keeps a grab-bag "x" package instead
// of scattering these concerns everywhere.
package x

import (
	"fmt"

	"github.com/pkg/errors"
)

// Errorf creates a new error annotated with a stack trace, for validation
// and decode failures that should carry a trace back to their origin.
func Errorf(format string, args ...interface{}) error {
	return errors.Errorf(format, args...)
}

// Wrap wraps err with the given message, preserving the original error for
// errors.Is / errors.As while attaching a stack trace at the wrap site.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}

// Check panics if err is non-nil. Reserved for invariants that indicate a
// programmer error rather than a recoverable condition (e.g. mutating a
// loop that does not own its vertex storage).
func Check(err error) {
	if err != nil {
		panic(errors.Wrap(err, "").Error())
	}
}

// AssertTrue panics if b is false. Used for internal invariants that must
// never be violated by correct callers.
func AssertTrue(b bool) {
	if !b {
		panic(errors.Errorf("assertion failed").Error())
	}
}

// AssertTruef is AssertTrue with a formatted message.
func AssertTruef(b bool, format string, args ...interface{}) {
	if !b {
		panic(fmt.Sprintf(format, args...))
	}
}

// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package commands

import (
	"gitlab.com/tozd/go/errors"
)

// Usage is printed when the arguments cannot be understood
const Usage = "Usage: crlf fix|validate unix|windows path"

// ErrValidationFailed is returned when at least one file failed validation.
// The offending files have already been reported.
var ErrValidationFailed = errors.Base("validation failed")

// 🚫 UsageError is returned for bad arguments. Its message is meant for the
// user as is.
type UsageError struct {
	Msg string
}

func (e *UsageError) Error() string {
	return e.Msg
}

// NewUsageError creates a usage error with the standard usage line
func NewUsageError() error {
	return &UsageError{Msg: Usage}
}

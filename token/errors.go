// Copyright 2025 The Parseal Authors
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

package token

import "fmt"

// ErrorList is an ordered collection of ParseErrors that itself satisfies
// error, reporting the most recent one (ErrorList.Last) plus a count of
// the others. schema.Sum does not build one: when every variant fails it
// returns only the error of the last variant tried.
type ErrorList []*ParseError

// Add appends an error to the list, ignoring a nil error.
func (l *ErrorList) Add(err *ParseError) {
	if err == nil {
		return
	}
	*l = append(*l, err)
}

// Last returns the most recently added error, or nil if the list is
// empty.
func (l ErrorList) Last() *ParseError {
	if len(l) == 0 {
		return nil
	}
	return l[len(l)-1]
}

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no matching variant"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d other rejected alternatives)", l[len(l)-1], len(l)-1)
	}
}

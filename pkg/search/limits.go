// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package search

import "time"

// TimeFraction is the share of the remaining clock a single search call
// may spend, applied to Limits.TimeLeft: budget = TimeLeft * TimeFraction.
const TimeFraction = 0.01

// Limits bounds a single search call. The zero value means "search
// until MaxDepth with no time or node limit", which is only useful for
// tests; callers normally set at least one of these.
type Limits struct {
	Depth int
	Nodes int

	// MoveTime is a fixed per-call budget (UCI "movetime" semantics):
	// when set, it is used directly and TimeLeft is ignored.
	MoveTime time.Duration

	// TimeLeft is the remaining time on the side to move's clock; the
	// search budgets TimeFraction of it for this call.
	TimeLeft time.Duration

	Infinite bool
}

func (l Limits) depth() int {
	if l.Depth <= 0 || l.Depth > MaxDepth {
		return MaxDepth
	}
	return l.Depth
}

func (l Limits) nodes() int {
	if l.Nodes <= 0 {
		return int(^uint(0) >> 1)
	}
	return l.Nodes
}

// budget returns the time this call may spend, or 0 for no time limit.
func (l Limits) budget() time.Duration {
	switch {
	case l.MoveTime > 0:
		return l.MoveTime
	case l.TimeLeft > 0:
		return time.Duration(float64(l.TimeLeft) * TimeFraction)
	default:
		return 0
	}
}

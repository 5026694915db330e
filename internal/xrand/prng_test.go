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

package xrand

import "testing"

func TestSeedIsDeterministic(t *testing.T) {
	var a, b PRNG
	a.Seed(12345)
	b.Seed(12345)

	for i := 0; i < 100; i++ {
		if x, y := a.Uint64(), b.Uint64(); x != y {
			t.Fatalf("draw %d diverged: %d != %d for the same seed", i, x, y)
		}
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	var a, b PRNG
	a.Seed(1)
	b.Seed(2)

	if a.Uint64() == b.Uint64() {
		t.Fatal("two different seeds produced the same first draw")
	}
}

func TestUint64NeverZero(t *testing.T) {
	var p PRNG
	p.Seed(1)
	for i := 0; i < 1000; i++ {
		if p.Uint64() == 0 {
			t.Fatal("xorshift64star should never emit zero from a nonzero seed")
		}
	}
}

func TestSparseUint64IsSparser(t *testing.T) {
	var p PRNG
	p.Seed(42)

	var plainBits, sparseBits int
	for i := 0; i < 1000; i++ {
		plainBits += popcount(p.Uint64())
		sparseBits += popcount(p.SparseUint64())
	}

	if sparseBits >= plainBits {
		t.Fatalf("SparseUint64 averaged %d bits over 1000 draws, want fewer than Uint64's %d", sparseBits, plainBits)
	}
}

func popcount(x uint64) int {
	n := 0
	for x != 0 {
		n++
		x &= x - 1
	}
	return n
}

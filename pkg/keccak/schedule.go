// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package keccak

import (
	"github.com/consensys/go-keccak-layout/pkg/util/field"
	"golang.org/x/crypto/sha3"
)

// STEPS_PER_BLOCK is the number of steps taken for each block of a message:
// one absorb followed by the rounds of the permutation.
const STEPS_PER_BLOCK = 1 + ROUNDS

// Digest computes the (legacy) Keccak-256 digest of a message.
func Digest(message []byte) [HASH_BYTES]byte {
	var (
		digest [HASH_BYTES]byte
		hasher = sha3.NewLegacyKeccak256()
	)
	// Writing to a hash never returns an error.
	hasher.Write(message)
	hasher.Sum(digest[:0])
	//
	return digest
}

// Schedule generates the sequence of steps (i.e. rows) for hashing a given
// message.  For each block of the padded message there is an absorb step,
// followed by one step for each round of the permutation.  A final squeeze
// step holds the bytes of the resulting digest.  Only the shared metadata
// columns (and sponge bytes) are filled here; the remaining cells of each row
// are left at zero.
func Schedule[F field.Element[F]](hashIndex uint64, message []byte) ([]*Columns[F], [HASH_BYTES]byte) {
	var (
		padded = Pad(message)
		blocks = uint(len(padded)) / RATE_IN_BYTES
		rows   = make([]*Columns[F], 0, blocks*STEPS_PER_BLOCK+1)
		digest = Digest(message)
		one    = field.One[F]()
	)
	//
	newRow := func() *Columns[F] {
		row := DefaultColumns[F]()
		row.Set(HashIndex(), field.Uint64[F](hashIndex))
		row.Set(StepIndex(), field.Uint64[F](uint64(len(rows))))
		//
		return row
	}
	//
	for b := range blocks {
		absorb := newRow()
		absorb.Set(FlagAbsorb(), one)
		//
		if b == 0 {
			absorb.Set(FlagRoot(), one)
		}
		//
		if b+1 == blocks {
			SetPadding(absorb, PadLengthOf(uint(len(message))))
		}
		// Remaining bytes of the sponge (i.e. its capacity) are zero.
		for i, v := range padded[b*RATE_IN_BYTES : (b+1)*RATE_IN_BYTES] {
			absorb.Set(SpongeBytes(uint(i)), field.Uint64[F](uint64(v)))
		}
		//
		rows = append(rows, absorb)
		//
		for r := range uint(ROUNDS) {
			round := newRow()
			round.Set(FlagRound(), field.Uint64[F](uint64(r)))
			SetRoundConstants(round, r)
			rows = append(rows, round)
		}
	}
	//
	squeeze := newRow()
	squeeze.Set(FlagSqueeze(), one)
	//
	for i, v := range digest {
		squeeze.Set(SpongeBytes(uint(i)), field.Uint64[F](uint64(v)))
	}
	//
	return append(rows, squeeze), digest
}

// PhaseOf determines whether a given row is a sponge step or a round step,
// based upon its mode flags.
func PhaseOf[F field.Element[F]](row *Columns[F]) Phase {
	if !row.Get(FlagAbsorb()).IsZero() || !row.Get(FlagSqueeze()).IsZero() {
		return SPONGE_PHASE
	}
	//
	return ROUND_PHASE
}

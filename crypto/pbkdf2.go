// Copyright (C) 2023 CYBERCRYPT
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package crypto

import (
	"encoding/binary"
	"errors"
	"math"
)

// Error returned if the iteration count is less than 1.
var ErrInvalidIterations = errors.New("iteration count must be at least 1")

// Error returned if the requested key length is negative.
var ErrInvalidLength = errors.New("derived key length must be non-negative")

// Error returned if the PRF does not report a positive digest size.
var ErrInvalidPRFSize = errors.New("PRF digest size must be positive")

// Error returned if the requested key length would require more output blocks
// than the 32-bit block counter can index.
var ErrDerivedKeyTooLong = errors.New("derived key too long")

// PBKDF2Key derives a key of `length` bytes from the password and salt using
// PBKDF2 as specified in RFC 8018 section 5.2, with the given PRF. The
// iteration count tunes the computational cost of the derivation.
//
// The derivation is deterministic: fixed inputs always produce the same key.
// On failure no partial output is returned. Intermediate PRF state is zeroed
// before returning; callers remain responsible for zeroing their own copies
// of the password and the derived key.
func PBKDF2Key(prf PRFInterface, password, salt []byte, iterations, length int) ([]byte, error) {
	if iterations < 1 {
		return nil, ErrInvalidIterations
	}
	if length < 0 {
		return nil, ErrInvalidLength
	}

	hLen := prf.Size()
	if hLen < 1 {
		return nil, ErrInvalidPRFSize
	}
	blocks := (uint64(length) + uint64(hLen) - 1) / uint64(hLen)
	if blocks > math.MaxUint32 {
		return nil, ErrDerivedKeyTooLong
	}

	var counter [4]byte
	dk := make([]byte, 0, int(blocks)*hLen)
	for block := 1; block <= int(blocks); block++ {
		// U_1 = PRF(password, salt || INT(block)). The block counter is
		// 1-based and encoded as a 32-bit big-endian integer.
		binary.BigEndian.PutUint32(counter[:], uint32(block))
		u := prf.Compute(password, salt, counter[:])

		// T_block = U_1 XOR U_2 XOR ... XOR U_iterations, accumulated in
		// place in the output buffer.
		dk = append(dk, u...)
		t := dk[len(dk)-hLen:]
		for i := 2; i <= iterations; i++ {
			next := prf.Compute(password, u)
			Zeroize(u)
			u = next
			for j, b := range u {
				t[j] ^= b
			}
		}
		Zeroize(u)
	}

	// Only the leading bytes of the last block contribute to the key.
	Zeroize(dk[length:])
	return dk[:length], nil
}

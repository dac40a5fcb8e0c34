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
	"crypto/hmac"
	"hash"
)

// HMACPRF implements PRFInterface using HMAC (RFC 2104) over the given hash
// function. This is the PRF mandated for PBKDF2 by RFC 8018.
type HMACPRF struct {
	hash func() hash.Hash
	size int
}

// NewHMACPRF creates an HMACPRF backed by the given hash function.
func NewHMACPRF(h func() hash.Hash) HMACPRF {
	return HMACPRF{hash: h, size: h().Size()}
}

func (p HMACPRF) Compute(key []byte, message ...[]byte) []byte {
	mac := hmac.New(p.hash, key)
	for _, m := range message {
		mac.Write(m)
	}
	return mac.Sum(nil)
}

func (p HMACPRF) Size() int {
	return p.size
}

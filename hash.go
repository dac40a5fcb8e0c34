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

package kdf

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"hash"

	"golang.org/x/crypto/sha3"
)

// Hash identifies the hash function backing the HMAC PRF. It is resolved once
// at the start of a derivation; the engine itself never inspects which hash is
// in use.
type Hash string

const (
	SHA1    Hash = "sha1"
	SHA224  Hash = "sha224"
	SHA256  Hash = "sha256"
	SHA384  Hash = "sha384"
	SHA512  Hash = "sha512"
	SHA3256 Hash = "sha3-256"
	SHA3512 Hash = "sha3-512"
)

// Error returned if a hash identifier cannot be resolved to a supported hash
// function.
var ErrUnsupportedHash = errors.New("unsupported hash algorithm")

func (h Hash) resolve() (func() hash.Hash, error) {
	switch h {
	case SHA1:
		return sha1.New, nil
	case SHA224:
		return sha256.New224, nil
	case SHA256:
		return sha256.New, nil
	case SHA384:
		return sha512.New384, nil
	case SHA512:
		return sha512.New, nil
	case SHA3256:
		return sha3.New256, nil
	case SHA3512:
		return sha3.New512, nil
	}
	return nil, ErrUnsupportedHash
}

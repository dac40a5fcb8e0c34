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

/*
Package kdf provides password-based key derivation.

A KDF stretches a low-entropy secret and a public salt into an arbitrarily
long key suitable for use with a symmetric cipher, or into a value that can be
stored for password verification. The iteration count tweaks the effort of the
computation, slowing down brute-force attacks on the password.
*/
package kdf

import (
	"context"

	"github.com/cybercryptio/kdf-lib/crypto"
	"github.com/cybercryptio/kdf-lib/log"
)

// PBKDF2HMAC derives a key of `length` bytes from the password and salt,
// using PBKDF2 (RFC 8018 section 5.2) with HMAC over the selected hash
// function as the PRF.
//
// The salt is a public value and can safely be stored along with the derived
// key. Callers are advised to use random salts of at least 8 bytes; no
// minimum is enforced here. When checking a derived value against a stored
// one, callers must use a constant-time comparison such as
// crypto/subtle.ConstantTimeCompare.
//
// The context is used for logging only; the derivation itself is synchronous
// and runs to completion. Secret material is never logged.
func PBKDF2HMAC(ctx context.Context, password, salt []byte, iterations, length int, h Hash) ([]byte, error) {
	ctx = log.CopyCtxLogger(ctx)
	log.WithMethod(ctx, "pbkdf2 hmac")
	log.WithRequestID(ctx)

	hashFunc, err := h.resolve()
	if err != nil {
		return nil, err
	}
	prf := crypto.NewHMACPRF(hashFunc)

	log.Ctx(ctx).Debug().
		Str("hash", string(h)).
		Int("iterations", iterations).
		Int("length", length).
		Msg("deriving key")

	return crypto.PBKDF2Key(prf, password, salt, iterations, length)
}

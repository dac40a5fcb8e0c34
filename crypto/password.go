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
	"crypto/subtle"
	"encoding/base64"

	json "github.com/json-iterator/go"
	"golang.org/x/crypto/sha3"
)

const passwordLength = 32
const saltLength = 16
const hashLength = 32
const iterationCount = 100000

// PasswordHasher implements PasswordHasherInterface using PBKDF2 with
// HMAC-SHA3-256.
type PasswordHasher struct {
	random RandomInterface
	prf    PRFInterface
}

func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{&NativeRandom{}, NewHMACPRF(sha3.New256)}
}

// verifier is the self-describing record returned for a generated password. It
// carries its own salt and iteration count so that the parameters can be
// raised later without invalidating existing records.
type verifier struct {
	Salt       []byte `json:"salt"`
	Iterations int    `json:"iterations"`
	Hash       []byte `json:"hash"`
}

func (p *PasswordHasher) GeneratePassword() (string, []byte, error) {
	passwordBytes, err := p.random.GetBytes(passwordLength)
	if err != nil {
		return "", nil, err
	}
	password := base64.RawURLEncoding.EncodeToString(passwordBytes)

	salt, err := p.random.GetBytes(saltLength)
	if err != nil {
		return "", nil, err
	}

	hash, err := PBKDF2Key(p.prf, []byte(password), salt, iterationCount, hashLength)
	if err != nil {
		return "", nil, err
	}

	record, err := json.Marshal(verifier{Salt: salt, Iterations: iterationCount, Hash: hash})
	if err != nil {
		return "", nil, err
	}

	return password, record, nil
}

func (p *PasswordHasher) Compare(password string, record []byte) bool {
	var v verifier
	if err := json.Unmarshal(record, &v); err != nil {
		return false
	}
	if len(v.Hash) != hashLength {
		return false
	}

	hash, err := PBKDF2Key(p.prf, []byte(password), v.Salt, v.Iterations, hashLength)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(hash, v.Hash) == 1
}

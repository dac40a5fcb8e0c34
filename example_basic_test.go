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

package kdf_test

import (
	"context"
	"fmt"
	"log"

	kdf "github.com/cybercryptio/kdf-lib"
	"github.com/cybercryptio/kdf-lib/crypto"
)

// This example derives a 128 bit key from a passphrase, e.g. for use with an
// AES cipher. In real use the salt should be freshly generated random bytes,
// stored alongside the ciphertext.
func Example_deriveCipherKey() {
	passphrase := []byte("secret")

	random := &crypto.NativeRandom{}
	salt, err := random.GetBytes(16)
	if err != nil {
		log.Fatalf("Error generating salt: %v", err)
	}

	key, err := kdf.PBKDF2HMAC(context.Background(), passphrase, salt, 20000, 16, kdf.SHA256)
	if err != nil {
		log.Fatalf("Error deriving key: %v", err)
	}

	fmt.Println(len(key))
	// Output: 16
}

// This example generates a random password together with a verifier record
// that can be stored, and later checks the password against the record.
func Example_passwordStorage() {
	hasher := crypto.NewPasswordHasher()

	password, record, err := hasher.GeneratePassword()
	if err != nil {
		log.Fatalf("Error generating password: %v", err)
	}

	fmt.Println(hasher.Compare(password, record))
	// Output: true
}

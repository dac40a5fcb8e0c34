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

// PRFInterface represents a keyed pseudorandom function with a fixed-length
// output, e.g. HMAC over some hash function. Implementations must be
// deterministic: the same (key, message) input always yields the same digest.
type PRFInterface interface {
	// Compute returns the digest of the concatenated message parts under the key.
	Compute(key []byte, message ...[]byte) []byte

	// Size returns the digest length in bytes.
	Size() int
}

// RandomInterface provides an API for getting cryptographically secure random bytes.
type RandomInterface interface {
	// GetBytes generates the requested number of random bytes.
	GetBytes(n uint) ([]byte, error)
}

// PasswordHasherInterface provides an API for securely generating and checking passwords.
type PasswordHasherInterface interface {
	// GeneratePassword returns a random password and a verifier for that password.
	GeneratePassword() (string, []byte, error)

	// Compare checks if the password matches the given verifier.
	Compare(password string, verifier []byte) bool
}

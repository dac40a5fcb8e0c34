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
	"testing"

	json "github.com/json-iterator/go"
)

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher()
	password, record, err := hasher.GeneratePassword()
	if err != nil {
		t.Fatal(err)
	}

	if !hasher.Compare(password, record) {
		t.Fatal("Password check failed")
	}
}

func TestWrongPassword(t *testing.T) {
	hasher := NewPasswordHasher()
	password, record, err := hasher.GeneratePassword()
	if err != nil {
		t.Fatal(err)
	}

	if hasher.Compare(password+"x", record) {
		t.Fatal("Expected password check to fail")
	}
}

func TestTamperedVerifier(t *testing.T) {
	hasher := NewPasswordHasher()
	password, record, err := hasher.GeneratePassword()
	if err != nil {
		t.Fatal(err)
	}

	var v verifier
	if err := json.Unmarshal(record, &v); err != nil {
		t.Fatal(err)
	}

	v.Salt[0] = v.Salt[0] ^ 1
	tampered, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if hasher.Compare(password, tampered) {
		t.Fatal("Expected password check to fail for tampered salt")
	}

	v.Salt[0] = v.Salt[0] ^ 1
	v.Hash[0] = v.Hash[0] ^ 1
	tampered, err = json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if hasher.Compare(password, tampered) {
		t.Fatal("Expected password check to fail for tampered hash")
	}
}

func TestCorruptVerifier(t *testing.T) {
	hasher := NewPasswordHasher()
	password, record, err := hasher.GeneratePassword()
	if err != nil {
		t.Fatal(err)
	}

	record[0] = record[0] ^ 1
	if hasher.Compare(password, record) {
		t.Fatal("Expected password check to fail for corrupt record")
	}
}

// Copyright (c) 2025 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package scram exports the expected interfaces for Salted Challenge
// Response Authentication Mechanism (SCRAM) hashing. For the
// corresponding implementation, check the adapter layer.
//
// Interfaces should be defined based on the use cases requirements.
// In this project, the admin API token is never stored or configured
// in plaintext; the configuration file carries a hash string in the
// standard scram format instead. Verifying a presented token only
// requires recomputing that hash string with the salt and iterations
// count which are embedded in the stored one and comparing the
// results, so a single hash-computation interface suffices and the
// challenge/response conversation parts of RFC 5802 and RFC 7677 are
// not needed. The same hash format is accepted by PostgreSQL for its
// role passwords, which keeps the tooling reusable for generating
// database credentials as well.
//
// See the Hasher interface for the expected SCRAM implementation
// features. It is used by the admin authentication middleware and by
// the `avweb admin hash-token` helper command.
package scram

// Hasher represents the expectations from a SCRAM hasher
// implementation which for a specific underlying hash function (e.g.,
// SHA1 or SHA256) computes the storedKey and serverKey values
// whenever its Hash method is called with the relevant pass, salt,
// and iters arguments. A PBKDF2 algorithm is computed in order to
// slow down a dictionary attack as detailed in RFC 5802.
type Hasher interface {
	// Hash computes a hash string following the standard scram hash
	// format, so it can be stored and used later for authentication.
	//
	// The pass argument must be non-empty. It will be normalized
	// according to the SASLprep profile (defined by RFC 4013) of the
	// stringprep algorithm (defined by RFC 3454) and any failure in
	// that normalization returns an error.
	//
	// The salt must contain a base64 encoding of the desired salt
	// bytes, otherwise, if an empty value is passed, a random salt
	// will be generated and used instead.
	// The iters must be at least equal to 4096. However, the RFC 7677
	// recommends to use 15000 or more.
	//
	// In absence of errors, a hashed string will be returned which
	// conforms to the following format.
	//
	//	SCRAM-{SHA-X}${iters}:{b64-salt}${b64-storedKey}:{b64-serverKey}
	Hash(pass, salt string, iters int) (string, error)
}

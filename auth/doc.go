// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements the admin gate.

	gate := auth.NewGate(password, passwordHash, signingKey)
	token, err := gate.IssueToken(supplied)   // ErrInvalidCredential
	principal, err := gate.VerifyToken(token) // ErrInvalidToken

Tokens are HS256 JWTs with a "role" claim of "admin" that expire after 24
hours. The password compare is constant time, or bcrypt when a hash is
configured.

BearerToken pulls the token out of an Authorization header and returns
ErrMissingToken when there isn't one.
*/
package auth

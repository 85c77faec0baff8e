// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ident generates and validates collision-resistant identifiers.

Session codes are 8 characters from a 32-symbol alphabet that drops the
visually ambiguous 0/O/1/I/L; participant and round ids are 12 characters
of lowercase-alphanumeric. All randomness comes from crypto/rand.

Stores do not check for id collisions on insert: with 32^8 session codes
the probability is negligible at the session volumes this server targets.

	id, err := ident.NewSessionID()
	ok := ident.ValidateSessionID(id)
*/
package ident

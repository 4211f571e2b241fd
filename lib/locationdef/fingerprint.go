// Copyright 2026 The roomid Authors
// SPDX-License-Identifier: Apache-2.0

package locationdef

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/Autochez/fork-you/lib/location"
)

// Hash is a 32-byte BLAKE3 digest.
type Hash [32]byte

// String returns the lowercase hex encoding of h.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// catalogueDomainKey separates catalogue fingerprints from any other
// BLAKE3 use. Changing it changes every fingerprint. The bytes are the
// ASCII domain name, zero-padded to 32.
var catalogueDomainKey = [32]byte{
	'r', 'o', 'o', 'm', 'i', 'd', '.', 'c', 'a', 't', 'a', 'l', 'o', 'g', 'u', 'e',
}

// Fingerprint returns the keyed BLAKE3 digest of the rendered
// identifiers of locations, each followed by a newline, in order.
// Two catalogues share a fingerprint exactly when they render to the
// same identifier sequence, so consumers can detect renamed or
// reordered rooms without comparing lists.
func Fingerprint(locations []location.Location) Hash {
	hasher, err := blake3.NewKeyed(catalogueDomainKey[:])
	if err != nil {
		// NewKeyed only fails for keys that are not 32 bytes.
		panic("locationdef: " + err.Error())
	}
	for _, loc := range locations {
		hasher.WriteString(loc.String())
		hasher.WriteString("\n")
	}

	var hash Hash
	copy(hash[:], hasher.Sum(nil))
	return hash
}

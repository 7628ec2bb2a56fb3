// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package digest fingerprints tally inputs.

# Inputs Hash

Inputs returns a sha256 hex digest over a length-prefixed binary encoding
of the contest set followed by the vote set:

	sum := digest.Inputs(contests, votes)

Every report carries this digest so two runs over the same data can be
matched without storing the data.

# Verification

	if err := digest.Verify(sum, contests, votes); err != nil {
		// err == digest.ErrMismatch
	}

Comparison is constant time.
*/
package digest

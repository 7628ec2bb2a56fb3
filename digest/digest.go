// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package digest

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"hash"

	"github.com/danielhkuo/quickly-tally/models"
)

var ErrMismatch = errors.New("inputs digest mismatch")

// Inputs hashes the contest and vote sets into a hex sha256 digest.
// Contest and vote order both affect the digest.
func Inputs(contests []models.Contest, votes []models.Vote) string {
	h := sha256.New()

	writeUint(h, uint64(len(contests)))
	for _, contest := range contests {
		writeUint(h, contest.ID)
		writeString(h, contest.Description)
		writeUint(h, uint64(len(contest.Choices)))
		for _, choice := range contest.Choices {
			writeUint(h, choice.ID)
			writeString(h, choice.Text)
		}
	}

	writeUint(h, uint64(len(votes)))
	for _, vote := range votes {
		writeUint(h, vote.ContestID)
		writeUint(h, vote.ChoiceID)
	}

	return hex.EncodeToString(h.Sum(nil))
}

// Verify checks that expected matches the digest of the given inputs
func Verify(expected string, contests []models.Contest, votes []models.Vote) error {
	actual := Inputs(contests, votes)
	if !hmac.Equal([]byte(expected), []byte(actual)) {
		return ErrMismatch
	}
	return nil
}

// Short returns the first 12 hex chars of a digest, enough for log lines
func Short(sum string) string {
	if len(sum) <= 12 {
		return sum
	}
	return sum[:12]
}

func writeUint(h hash.Hash, v uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

// Strings are length-prefixed so field boundaries can't shift between inputs
func writeString(h hash.Hash, s string) {
	writeUint(h, uint64(len(s)))
	h.Write([]byte(s))
}

// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dataset

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/danielhkuo/quickly-tally/models"
)

var ErrMalformed = errors.New("malformed dataset")

// ReadContests decodes a JSON array of contests
func ReadContests(r io.Reader) ([]models.Contest, error) {
	return decodeList[models.Contest](r)
}

// ReadVotes decodes a JSON array of votes
func ReadVotes(r io.Reader) ([]models.Vote, error) {
	return decodeList[models.Vote](r)
}

// LoadFiles reads the contest and vote datasets from disk
func LoadFiles(contestsPath, votesPath string) ([]models.Contest, []models.Vote, error) {
	contests, err := loadFile(contestsPath, "contest", ReadContests)
	if err != nil {
		return nil, nil, err
	}

	votes, err := loadFile(votesPath, "votes", ReadVotes)
	if err != nil {
		return nil, nil, err
	}

	return contests, votes, nil
}

func loadFile[T any](path, kind string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s file %s: %w", kind, path, err)
	}
	defer f.Close()

	items, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("could not read %s file %s: %w", kind, path, err)
	}
	return items, nil
}

// decodeList requires the document to be a single JSON array.
// An empty array decodes to an empty, non-nil slice.
func decodeList[T any](r io.Reader) ([]T, error) {
	dec := json.NewDecoder(r)

	var raw json.RawMessage
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if !bytes.HasPrefix(bytes.TrimSpace(raw), []byte("[")) {
		return nil, fmt.Errorf("%w: expected a JSON array", ErrMalformed)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after array", ErrMalformed)
	}

	items := []T{}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return items, nil
}

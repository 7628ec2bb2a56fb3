// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMissingField is returned when a required key is absent or null.
// Keys match exactly; "CONTEST_ID" does not satisfy "contest_id".
var ErrMissingField = errors.New("missing field")

// object holds the raw members of one JSON object by exact key
type object map[string]json.RawMessage

func decodeObject(data []byte, kind string) (object, error) {
	var obj object
	if err := json.Unmarshal(data, &obj); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", kind, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("invalid %s: expected an object, got null", kind)
	}
	return obj, nil
}

// require decodes obj[key] into v
func (obj object) require(kind, key string, v any) error {
	raw, ok := obj[key]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return fmt.Errorf("%w %q in %s", ErrMissingField, key, kind)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("invalid %s field %q: %w", kind, key, err)
	}
	return nil
}

func (c *Choice) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data, "choice")
	if err != nil {
		return err
	}

	var choice Choice
	if err := obj.require("choice", "id", &choice.ID); err != nil {
		return err
	}
	if err := obj.require("choice", "text", &choice.Text); err != nil {
		return err
	}

	*c = choice
	return nil
}

func (c *Contest) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data, "contest")
	if err != nil {
		return err
	}

	var contest Contest
	if err := obj.require("contest", "id", &contest.ID); err != nil {
		return err
	}
	if err := obj.require("contest", "description", &contest.Description); err != nil {
		return err
	}
	if err := obj.require("contest", "choices", &contest.Choices); err != nil {
		return err
	}

	*c = contest
	return nil
}

func (v *Vote) UnmarshalJSON(data []byte) error {
	obj, err := decodeObject(data, "vote")
	if err != nil {
		return err
	}

	var vote Vote
	if err := obj.require("vote", "contest_id", &vote.ContestID); err != nil {
		return err
	}
	if err := obj.require("vote", "choice_id", &vote.ChoiceID); err != nil {
		return err
	}

	*v = vote
	return nil
}

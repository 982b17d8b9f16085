// Package remote holds the HTTP side of the list backends: a REST adapter for the
// mock API and a read-only static JSON source.
package remote

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var errNotJSON = errors.New("response is not JSON")

type envelope struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// unwrap returns the payload of a {"data": ...} envelope, or body itself.
func unwrap(body []byte) ([]byte, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 || (body[0] != '[' && body[0] != '{') {
		return nil, errNotJSON
	}
	if body[0] == '[' {
		return body, nil
	}
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return body, nil
	}
	return env.Data, nil
}

// decodeList accepts a bare array or an envelope whose data is an array.
func decodeList[T any](body []byte) ([]T, error) {
	payload, err := unwrap(body)
	if err != nil {
		return nil, err
	}
	if payload[0] != '[' {
		return nil, errors.New("response is not a list")
	}
	var records []T
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, fmt.Errorf("decode list: %w", err)
	}
	return records, nil
}

func decodeRecord[T any](body []byte) (T, error) {
	var rec T
	payload, err := unwrap(body)
	if err != nil {
		return rec, err
	}
	if err := json.Unmarshal(payload, &rec); err != nil {
		return rec, fmt.Errorf("decode record: %w", err)
	}
	return rec, nil
}

// message pulls "message" out of an error body, falling back to the raw text.
func message(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return env.Message
	}
	s := string(bytes.TrimSpace(body))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}

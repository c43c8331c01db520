package event

import "encoding/json"

// DecodePayload returns the payload as T. In-process events already carry the
// typed struct; payloads that crossed a wire arrive as maps and are re-decoded.
func DecodePayload[T any](payload interface{}) (T, error) {
	if typed, ok := payload.(T); ok {
		return typed, nil
	}
	var out T
	raw, err := json.Marshal(payload)
	if err != nil {
		return out, err
	}
	err = json.Unmarshal(raw, &out)
	return out, err
}

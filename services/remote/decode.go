package remote

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// decodeList accepts a JSON array, a single object or null.
func decodeList[T any](raw []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var list []T
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return nil, &RequestFailedError{Status: http.StatusOK, Message: "malformed response", Body: raw, Err: err}
		}
		return list, nil
	}

	var one T
	if err := json.Unmarshal(trimmed, &one); err != nil {
		return nil, &RequestFailedError{Status: http.StatusOK, Message: "malformed response", Body: raw, Err: err}
	}
	return []T{one}, nil
}

// nonEmptyArray reports whether raw is a JSON array with at least one element.
func nonEmptyArray(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return false
	}
	var items []json.RawMessage
	return json.Unmarshal(trimmed, &items) == nil && len(items) > 0
}

// decodeOptional fills out when raw holds a JSON object and reports whether it did.
func decodeOptional(raw []byte, out any) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Unmarshal(trimmed, out) == nil
}

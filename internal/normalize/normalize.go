// Package normalize coerces the heterogeneous collection payloads returned
// by the OpenPersona backend into a uniform ordered list.
//
// The backend returns collections in at least four shapes: a bare array, a
// wrapper object keyed by the entity name (e.g. {"dashboards": [...]}),
// {"data": [...]}, {"items": [...]}, or an arbitrary keyed object of
// records. Callers must not care which shape arrived.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnrecognizedShape is returned by Records when a payload is neither an
// array nor a known wrapper object. RecordsLoose never returns it.
var ErrUnrecognizedShape = errors.New("unrecognized collection shape")

// defaultWrapperKeys are always tried after any caller-supplied entity keys,
// in this priority order.
var defaultWrapperKeys = []string{"data", "items"}

// Records decodes a collection payload into its ordered elements.
// Shapes are attempted in a fixed priority order: bare array first, then the
// caller's wrapper keys (e.g. "dashboards"), then "data", then "items".
// A null, empty, or absent payload yields an empty list. Anything else is an
// ErrUnrecognizedShape; callers that want the legacy keyed-object fallback
// use RecordsLoose instead.
func Records(data []byte, wrapperKeys ...string) ([]json.RawMessage, error) {
	kind, err := payloadKind(data)
	if err != nil {
		return nil, err
	}

	switch kind {
	case kindEmpty:
		return []json.RawMessage{}, nil
	case kindArray:
		return decodeArray(data)
	case kindObject:
		elems, ok, err := unwrapObject(data, wrapperKeys)
		if err != nil {
			return nil, err
		}
		if ok {
			return elems, nil
		}
		return nil, fmt.Errorf("%w: object has no recognized wrapper key", ErrUnrecognizedShape)
	default:
		return nil, fmt.Errorf("%w: payload is %s", ErrUnrecognizedShape, kind)
	}
}

// RecordsLoose behaves like Records but preserves the original front-end's
// degrade-to-empty policy: scalar payloads become an empty list, and an
// object with no recognized wrapper key falls back to its values in key
// order, filtered to object- and array-typed entries.
//
// The fallback is lossy: it cannot distinguish a genuine keyed collection
// from an unrelated object that happens to carry object-valued fields.
// Call sites opt in deliberately.
func RecordsLoose(data []byte, wrapperKeys ...string) []json.RawMessage {
	kind, err := payloadKind(data)
	if err != nil || kind == kindEmpty {
		return []json.RawMessage{}
	}

	switch kind {
	case kindArray:
		if elems, err := decodeArray(data); err == nil {
			return elems
		}
		return []json.RawMessage{}
	case kindObject:
		if elems, ok, err := unwrapObject(data, wrapperKeys); err == nil && ok {
			return elems
		}
		elems, err := orderedObjectValues(data)
		if err != nil {
			return []json.RawMessage{}
		}
		return elems
	default:
		return []json.RawMessage{}
	}
}

// Slice decodes a collection payload straight into a typed slice, applying
// the same shape priority as Records.
func Slice[T any](data []byte, wrapperKeys ...string) ([]T, error) {
	raws, err := Records(data, wrapperKeys...)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decoding element %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

type kind string

const (
	kindEmpty  kind = "empty"
	kindArray  kind = "array"
	kindObject kind = "object"
	kindScalar kind = "scalar"
)

// payloadKind classifies a payload by its first significant byte.
func payloadKind(data []byte) (kind, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) || bytes.Equal(trimmed, []byte(`""`)) {
		return kindEmpty, nil
	}
	switch trimmed[0] {
	case '[':
		return kindArray, nil
	case '{':
		return kindObject, nil
	default:
		return kindScalar, nil
	}
}

func decodeArray(data []byte) ([]json.RawMessage, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("decoding array payload: %w", err)
	}
	if elems == nil {
		elems = []json.RawMessage{}
	}
	return elems, nil
}

// unwrapObject tries each wrapper key in priority order. A key only matches
// when it is present and holds an array; a non-array value under a known key
// falls through to the next candidate, mirroring the original client.
func unwrapObject(data []byte, wrapperKeys []string) ([]json.RawMessage, bool, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, false, fmt.Errorf("decoding object payload: %w", err)
	}

	candidates := make([]string, 0, len(wrapperKeys)+len(defaultWrapperKeys))
	candidates = append(candidates, wrapperKeys...)
	candidates = append(candidates, defaultWrapperKeys...)

	for _, key := range candidates {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if k, err := payloadKind(raw); err != nil || k != kindArray {
			continue
		}
		elems, err := decodeArray(raw)
		if err != nil {
			return nil, false, err
		}
		return elems, true, nil
	}
	return nil, false, nil
}

// orderedObjectValues walks an object's values in key order (the JSON text
// order, matching the original Object.values semantics) and keeps only
// object- and array-typed entries.
func orderedObjectValues(data []byte) ([]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	// Opening brace.
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	elems := []json.RawMessage{}
	for dec.More() {
		// Key.
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		if k, err := payloadKind(raw); err == nil && (k == kindObject || k == kindArray) {
			elems = append(elems, raw)
		}
	}
	return elems, nil
}

package errors

import (
	"encoding/json"
	"fmt"
	"sort"
)

// payload is the serialized shape of an Error. The kind string doubles as
// the external type discriminator consumed by FromParts.
type payload struct {
	Kind     string         `json:"kind"`
	Code     string         `json:"code,omitempty"`
	Message  string         `json:"message"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Errors   []*Error       `json:"errors,omitempty"`
}

// MarshalJSON implements json.Marshaler. Aggregate children are serialized
// recursively; metadata is serialized as a JSON object (JSON objects are
// unordered, so insertion order is not preserved on the wire).
func (e *Error) MarshalJSON() ([]byte, error) {
	p := payload{
		Kind:    string(e.kind),
		Code:    e.code,
		Message: e.message,
		Errors:  e.children,
	}
	if len(e.metadata) > 0 {
		p.Metadata = make(map[string]any, len(e.metadata))
		for _, f := range e.metadata {
			p.Metadata[f.Key] = f.Value
		}
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshaling error payload: %w", err)
	}
	return data, nil
}

// UnmarshalJSON implements json.Unmarshaler. Metadata keys are restored in
// sorted order to keep reconstruction deterministic. Unknown kinds and
// aggregates without children are rejected.
func (e *Error) UnmarshalJSON(data []byte) error {
	var p payload
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("unmarshaling error payload: %w", err)
	}

	kind := Kind(p.Kind)
	if !kind.Valid() {
		return fmt.Errorf("unknown error kind %q", p.Kind)
	}

	if kind == KindAggregate {
		if len(p.Errors) == 0 {
			return fmt.Errorf("aggregate error payload with no children")
		}
		*e = Error{
			kind:     KindAggregate,
			code:     p.Code,
			message:  p.Message,
			children: p.Errors,
		}
		return nil
	}

	rebuilt, err := FromParts(p.Kind, p.Code, p.Message, sortedFields(p.Metadata)...)
	if err != nil {
		return err
	}
	*e = *rebuilt
	return nil
}

// FromParts reconstructs an error of a specific kind from an external type
// discriminator string plus code, message, and metadata. It rejects unknown
// kinds, metadata on kinds that do not carry any, and the aggregate kind,
// whose children cannot be expressed as parts (use Aggregate instead).
func FromParts(kind, code, message string, fields ...Field) (*Error, error) {
	k := Kind(kind)
	if !k.Valid() {
		return nil, fmt.Errorf("unknown error kind %q", kind)
	}
	if k == KindAggregate {
		return nil, fmt.Errorf("aggregate errors cannot be built from parts")
	}
	if len(fields) > 0 && !k.carriesMetadata() {
		return nil, fmt.Errorf("error kind %q does not carry metadata", kind)
	}
	if k == KindFailure {
		return New(code, message), nil
	}
	return newWithMetadata(k, code, message, fields), nil
}

func sortedFields(metadata map[string]any) []Field {
	if len(metadata) == 0 {
		return nil
	}
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fields := make([]Field, 0, len(keys))
	for _, k := range keys {
		fields = append(fields, Field{Key: k, Value: metadata[k]})
	}
	return fields
}

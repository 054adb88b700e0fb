package strapi_dto

import (
	"bytes"
	"strconv"

	"github.com/goccy/go-json"
)

// Entry is one record of a collection. The backend has shipped two envelope
// shapes: a nested {"id":1,"attributes":{...}} and a flattened
// {"id":1,"documentId":"...","Email":"..."}; both decode into Entry.
type Entry struct {
	ID         int             `json:"id"`
	DocumentID string          `json:"documentId,omitempty"`
	Attributes json.RawMessage `json:"attributes,omitempty"`
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if id, ok := raw["id"]; ok {
		if err := json.Unmarshal(id, &e.ID); err != nil {
			return err
		}
	}
	if documentID, ok := raw["documentId"]; ok && !isNull(documentID) {
		if err := json.Unmarshal(documentID, &e.DocumentID); err != nil {
			return err
		}
	}

	if attributes, ok := raw["attributes"]; ok {
		e.Attributes = attributes
		return nil
	}

	delete(raw, "id")
	attributes, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	e.Attributes = attributes
	return nil
}

// IDString is the identifier as used in resource paths.
func (e Entry) IDString() string {
	return strconv.Itoa(e.ID)
}

// DecodeAttributes unmarshals the entry's attributes into v.
func (e Entry) DecodeAttributes(v interface{}) error {
	if len(e.Attributes) == 0 {
		return nil
	}
	return json.Unmarshal(e.Attributes, v)
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

package strapi_dto

import "github.com/goccy/go-json"

type ListResponse struct {
	Data []Entry         `json:"data"`
	Meta json.RawMessage `json:"meta,omitempty"`
}

type SingleResponse struct {
	Data *Entry          `json:"data"`
	Meta json.RawMessage `json:"meta,omitempty"`
}

type ErrorResponse struct {
	Data  json.RawMessage `json:"data"`
	Error *ErrorBody      `json:"error"`
}

type ErrorBody struct {
	Status  int             `json:"status"`
	Name    string          `json:"name"`
	Message string          `json:"message"`
	Details json.RawMessage `json:"details,omitempty"`
}

// DataEnvelope wraps every create/update payload.
type DataEnvelope struct {
	Data interface{} `json:"data"`
}

// DeleteAcknowledgement is the outcome of one successful delete. Data is nil
// when the backend answers 204 No Content.
type DeleteAcknowledgement struct {
	ID         string `json:"id"`
	StatusCode int    `json:"status_code"`
	Data       *Entry `json:"data,omitempty"`
}

// Package response builds the JSON envelopes every endpoint replies with.
package response

import "gallery/internal/listquery"

// Envelope is the outer shape of every response body. A success carries Data and
// optionally Message; a failure carries only Error.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// PageData is the payload of a list response.
type PageData[T any] struct {
	Data       []T                  `json:"data"`
	Pagination listquery.Pagination `json:"pagination"`
}

// Page wraps one page of rows. A nil slice is sent as [].
func Page[T any](rows []T, pagination listquery.Pagination) Envelope {
	if rows == nil {
		rows = []T{}
	}
	return Envelope{Success: true, Data: PageData[T]{Data: rows, Pagination: pagination}}
}

// FromResult wraps a listquery result.
func FromResult[T any](res listquery.Result[T]) Envelope {
	return Page(res.Rows, res.Pagination)
}

// OK wraps a single entity.
func OK(v interface{}) Envelope {
	return Envelope{Success: true, Data: v}
}

// Message wraps a confirmation message with an optional payload.
func Message(msg string, v interface{}) Envelope {
	return Envelope{Success: true, Message: msg, Data: v}
}

// Fail builds a failure envelope.
func Fail(msg string) Envelope {
	return Envelope{Success: false, Error: msg}
}

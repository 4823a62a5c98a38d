// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package request provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/tpnlocations/internal/platform/validate"
)

// maxBodyBytes caps request bodies. Location payloads are a few KB at most.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	if request.Body == nil {
		return validate.ErrInvalidJSON
	}
	decoder := json.NewDecoder(http.MaxBytesReader(nil, request.Body, maxBodyBytes))
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
ID parses a named URL parameter as a positive integer identifier.

Returns:
  - int64: the identifier
  - error: a VALIDATION_ERROR naming the parameter when it is not a positive integer
*/
func ID(request *http.Request, name string) (int64, error) {
	raw := chi.URLParam(request, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, validate.RequiredError(name, "Must be an integer")
	}
	if err := (&validate.Validator{}).Positive(name, id).Err(); err != nil {
		return 0, err
	}
	return id, nil
}

/*
Query returns the first non-empty query parameter among names, which lets a
parameter keep a legacy alias (e.g. "sort" and "sort_by").

The value is returned as sent. Whitespace is significant for exact-match and
substring filters, so callers that parse keywords trim for themselves.
*/
func Query(request *http.Request, names ...string) string {
	values := request.URL.Query()
	for _, name := range names {
		if v := values.Get(name); v != "" {
			return v
		}
	}
	return ""
}

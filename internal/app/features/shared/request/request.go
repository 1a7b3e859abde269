// Package request holds the body and path helpers every JSON handler shares.
package request

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/dalemusser/communityhub/internal/app/system/inputval"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxBodyBytes caps every JSON request body.
const MaxBodyBytes = 1 << 20

// DecodeJSON reads r's body into v. Malformed, oversized or trailing
// content is reported as a validation error on "body".
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(v); err != nil {
		var tooBig *http.MaxBytesError
		switch {
		case errors.As(err, &tooBig):
			return inputval.Errors{"body": "Request body is too large."}
		case errors.Is(err, io.EOF):
			return inputval.Errors{"body": "Request body is required."}
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return inputval.Errors{typeErr.Field: "Invalid value."}
		}
		return inputval.Errors{"body": "Request body must be valid JSON."}
	}
	if dec.More() {
		return inputval.Errors{"body": "Request body must contain a single JSON object."}
	}
	return nil
}

// DecodeOptionalJSON is DecodeJSON that treats an empty body as "no input".
func DecodeOptionalJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := DecodeJSON(w, r, v)
	var verrs inputval.Errors
	if errors.As(err, &verrs) && verrs["body"] == "Request body is required." {
		return nil
	}
	return err
}

// ObjectID parses the named chi URL parameter.
func ObjectID(r *http.Request, param string) (primitive.ObjectID, error) {
	raw := strings.TrimSpace(chi.URLParam(r, param))
	oid, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, inputval.Errors{param: "Invalid id."}
	}
	return oid, nil
}

// internal/app/system/reconcile/payload.go
package reconcile

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// maxMultipartMemory bounds the in-memory portion of multipart parsing;
// larger parts spill to temp files. The request-wide size cap is enforced
// separately with http.MaxBytesReader before parsing starts.
const maxMultipartMemory = 8 << 20

// DecodePayload reads a request body into the typed payload struct dst.
//
// Plain JSON bodies decode directly. Multipart bodies carry each top-level
// field as a JSON-stringified form value ("hero", "years", ...); those are
// reassembled into one JSON document and decoded. Either way the decode is
// the sanitizer: fields not declared on dst are silently dropped, and a
// declared field whose value cannot decode fails closed with an error.
//
// Returns the normalized file slots alongside the decoded payload.
func DecodePayload(w http.ResponseWriter, r *http.Request, maxBytes int64, dst any) (Files, error) {
	if maxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	}

	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, fmt.Errorf("parse multipart form: %w", err)
		}
		if err := DecodeForm(r.MultipartForm.Value, dst); err != nil {
			return nil, err
		}
		return CollectFiles(r.MultipartForm), nil
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return nil, fmt.Errorf("decode json body: %w", err)
	}
	return Files{}, nil
}

// DecodeForm reassembles multipart form values into a JSON document and
// decodes it into dst. A value that is itself valid JSON is embedded raw
// (objects, arrays, numbers); anything else is treated as a plain string.
func DecodeForm(values url.Values, dst any) error {
	doc := make(map[string]json.RawMessage, len(values))
	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		v := vals[0]
		if json.Valid([]byte(v)) {
			doc[key] = json.RawMessage(v)
			continue
		}
		quoted, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode form field %q: %w", key, err)
		}
		doc[key] = quoted
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode form payload: %w", err)
	}
	return nil
}

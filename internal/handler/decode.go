package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"
)

var (
	errBodyRequired = errors.New("request body is required")
	errTrailingData = errors.New("request body has data after the JSON value")
)

// decodeBody decodes exactly one JSON value from the request body into dst.
// Unknown fields are ignored; type mismatches, syntax errors and anything
// but whitespace after the value are returned.
func decodeBody(r *http.Request, dst any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return errBodyRequired
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errBodyRequired
		}
		return fmt.Errorf("decode body: %w", err)
	}

	var extra json.RawMessage
	switch err := dec.Decode(&extra); {
	case errors.Is(err, io.EOF):
		return nil
	case err == nil:
		return errTrailingData
	default:
		return fmt.Errorf("decode body: trailing: %w", err)
	}
}

// pathID binds the {id} path parameter the way generated chi servers do.
func pathID(r *http.Request) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", chi.URLParam(r, "id"), &id,
		runtime.BindStyledParameterOptions{
			ParamLocation: runtime.ParamLocationPath,
			Explode:       false,
			Required:      true,
		})
	if err != nil {
		return 0, fmt.Errorf("bind id: %w", err)
	}
	return id, nil
}

package introspection

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bytedance/sonic"
)

// ErrMalformedDocument indicates the introspection document is missing
// required structural fields. No output is produced in that case.
var ErrMalformedDocument = errors.New("malformed introspection document")

// envelope accepts both a full GraphQL response and a bare __schema document.
type envelope struct {
	Data   *payload        `json:"data"`
	Schema *Document       `json:"__schema"`
	Errors []ResponseError `json:"errors"`
}

type payload struct {
	Schema *Document `json:"__schema"`
}

// Parse decodes and validates an introspection document. The input may be
// a full GraphQL response ({"data":{"__schema":...}}) or the bare
// {"__schema":...} object.
func Parse(data []byte) (*Document, error) {
	var env envelope

	err := sonic.Unmarshal(data, &env)
	if err != nil {
		return nil, fmt.Errorf("decoding introspection JSON: %w", err)
	}

	if len(env.Errors) > 0 {
		return nil, fmt.Errorf("%w: response carries errors: %s", ErrMalformedDocument, env.Errors[0].Message)
	}

	doc := env.Schema
	if doc == nil && env.Data != nil {
		doc = env.Data.Schema
	}

	if doc == nil {
		return nil, fmt.Errorf("%w: no __schema object found", ErrMalformedDocument)
	}

	diags := Validate(doc)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, diags.Error())
	}

	return doc, nil
}

// Load reads and parses an introspection document from r.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading introspection document: %w", err)
	}

	return Parse(data)
}

// LoadFile reads and parses an introspection document from the given path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading introspection file %s: %w", path, err)
	}

	return Parse(data)
}

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/itchyny/gojq"

	"github.com/bjaus/rainbow"
)

// query is a compiled jq expression run against the table document.
type query struct {
	code *gojq.Code
}

func compileQuery(expr string) (*query, error) {
	parsed, err := gojq.Parse(expr)
	if err != nil {
		return nil, WrapUserError(err, "invalid query", "check the jq syntax")
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, WrapUserError(err, "invalid query", "check the jq syntax")
	}
	return &query{code: code}, nil
}

// run renders text as a JSON document and writes every query result. json
// output is indented, jsonl output is one compact value per line.
func (q *query) run(w io.Writer, r *rainbow.Renderer, f rainbow.Format, text string) error {
	data, err := r.Marshal(rainbow.JSON, text)
	if err != nil {
		return err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("query error: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if f == rainbow.JSON {
		enc.SetIndent("", "  ")
	}

	iter := q.code.Run(doc)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			var halt *gojq.HaltError
			if errors.As(err, &halt) && halt.Value() == nil {
				break
			}
			return fmt.Errorf("query error: %w", err)
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

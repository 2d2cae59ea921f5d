package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/smartedge/pkg/pipeline"
)

// WriteResult encodes a routed edge as indented JSON to w.
func WriteResult(res *pipeline.Result, w io.Writer) error {
	return writeJSON(res, w)
}

// ExportResult writes a routed edge as JSON to the file at path.
func ExportResult(res *pipeline.Result, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteResult(res, w) })
}

func writeJSON(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func exportFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

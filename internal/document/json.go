package document

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// file is the on-disk shape of a linear objects document.
type file struct {
	LinearObjects []map[string]any `json:"linear_objects"`
}

// FetchLinearObjects reads the input document and returns its entries undecoded.
// A document without a "linear_objects" list yields no entries.
//
// Returns an error if the input cannot be opened or read, or if it is not valid JSON.
func (r *Repository) FetchLinearObjects(ctx context.Context) ([]map[string]any, error) {
	if r.input == "" {
		return nil, fmt.Errorf("failed to fetch linear objects: %w", ErrEmptyPath)
	}

	var src io.Reader = r.stdin
	if r.input != StdioPath {
		fd, err := os.Open(r.input)
		if err != nil {
			return nil, fmt.Errorf("failed to open linear objects document: %w", err)
		}
		defer fd.Close()
		src = fd
	}

	var doc file
	if err := json.NewDecoder(src).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse linear objects document: %w", err)
	}

	r.log.DebugContext(ctx, "Linear objects document loaded.", "path", r.input, "entries", len(doc.LinearObjects))

	return doc.LinearObjects, nil
}

// StoreLinearObjects writes objects as an indented document to the output path,
// replacing any existing file.
func (r *Repository) StoreLinearObjects(ctx context.Context, objects []map[string]any) error {
	if r.output == "" {
		return fmt.Errorf("failed to store linear objects: %w", ErrEmptyPath)
	}

	if objects == nil {
		objects = []map[string]any{}
	}

	raw, err := json.MarshalIndent(file{LinearObjects: objects}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode linear objects document: %w", err)
	}
	raw = append(raw, '\n')

	if r.output == StdioPath {
		if _, err = r.stdout.Write(raw); err != nil {
			return fmt.Errorf("failed to write linear objects document: %w", err)
		}
	} else if err = os.WriteFile(r.output, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write linear objects document: %w", err)
	}

	r.log.DebugContext(ctx, "Linear objects document stored.", "path", r.output, "entries", len(objects))

	return nil
}

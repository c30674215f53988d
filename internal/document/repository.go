package document

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
)

// StdioPath selects standard input or standard output instead of a file.
const StdioPath = "-"

// ErrEmptyPath is returned when the repository has no input or output path configured.
var ErrEmptyPath = errors.New("document path is empty")

// Repository reads and writes JSON documents of serialized linear objects.
type Repository struct {
	input  string
	output string
	stdin  io.Reader
	stdout io.Writer
	log    *slog.Logger
}

type Interface interface {
	FetchLinearObjects(ctx context.Context) ([]map[string]any, error)
	StoreLinearObjects(ctx context.Context, objects []map[string]any) error
}

// NewRepository creates a new instance of Repository reading from input and writing to output.
// Either path may be StdioPath.
func NewRepository(input, output string, log *slog.Logger) *Repository {
	return NewRepositoryWithStdio(input, output, os.Stdin, os.Stdout, log)
}

// NewRepositoryWithStdio creates a Repository whose StdioPath streams are stdin and stdout.
// Useful for tests.
func NewRepositoryWithStdio(input, output string, stdin io.Reader, stdout io.Writer, log *slog.Logger) *Repository {
	return &Repository{input: input, output: output, stdin: stdin, stdout: stdout, log: log}
}

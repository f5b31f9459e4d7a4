package fetch

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"steamscraper/internal/components/chrono"
	"time"

	"github.com/mazen160/go-random"
)

// FilesystemOutput writes every rendered HTTP exchange into its own file under a
// per-run directory.
type FilesystemOutput struct {
	directory string
}

func newRunId(now time.Time) (string, error) {
	suffix, err := random.String(8)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-%s", now.Format("20060102-150405"), suffix), nil
}

// NewFilesystemOutput creates `<dir>/<run id>`, the run id is the current time
// followed by a random suffix so concurrent runs never share a directory.
func NewFilesystemOutput(dir string, clock chrono.API) (FilesystemOutput, error) {
	runId, err := newRunId(clock.Now())
	if err != nil {
		return FilesystemOutput{}, fmt.Errorf("generate run id: %w", err)
	}
	directory := filepath.Join(dir, runId)
	err = os.MkdirAll(directory, 0777)
	if err != nil {
		return FilesystemOutput{}, err
	}
	return FilesystemOutput{directory: directory}, nil
}

func (o FilesystemOutput) Directory() string {
	return o.directory
}

func (o FilesystemOutput) Write(id string, contents string) {
	err := os.WriteFile(filepath.Join(o.directory, id), []byte(contents), 0600)
	if err != nil {
		slog.Warn("failed to write http dump", "id", id, "err", err)
	}
}

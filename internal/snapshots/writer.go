package snapshots

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"

	"github.com/jbaranski/majorleaguesoccer-today/internal/domain/snapshot"
	"github.com/jbaranski/majorleaguesoccer-today/internal/platform/logging"
)

const (
	jsonFileName = "matches.json"
	htmlFileName = "today.html"
)

// Writer persists one run's snapshot as matches.json plus an
// equivalent today.html. Both artifacts render the same in-memory
// value; neither is ever re-derived from the other.
type Writer struct {
	dir    string
	loc    *time.Location
	logger *logging.Logger
}

func NewWriter(dir string, loc *time.Location, logger *logging.Logger) *Writer {
	if dir == "" {
		dir = "."
	}
	if loc == nil {
		loc = time.UTC
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Writer{dir: dir, loc: loc, logger: logger}
}

func (w *Writer) Write(out snapshot.MatchesOutput) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	raw, err := sonic.Marshal(out)
	if err != nil {
		return fmt.Errorf("encode snapshot json: %w", err)
	}
	jsonPath := filepath.Join(w.dir, jsonFileName)
	if err := writeFileAtomic(jsonPath, raw); err != nil {
		return fmt.Errorf("write %s: %w", jsonFileName, err)
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := renderHTML(buf, out, w.loc); err != nil {
		return fmt.Errorf("render snapshot html: %w", err)
	}
	htmlPath := filepath.Join(w.dir, htmlFileName)
	if err := writeFileAtomic(htmlPath, buf.Bytes()); err != nil {
		return fmt.Errorf("write %s: %w", htmlFileName, err)
	}

	w.logger.Info("snapshot written",
		"dir", w.dir,
		"matches", len(out.Matches),
		"previous_results", len(out.PreviousResults),
		"json_bytes", len(raw),
		"html_bytes", buf.Len(),
	)

	return nil
}

// writeFileAtomic writes via a temp file and rename so a crashed run
// never leaves a truncated artifact for the frontend.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// FileSink writes each artifact to Dir under its own filename.
type FileSink struct {
	Dir    string
	Logger *zap.Logger
}

func (s FileSink) Save(artifacts ...*Artifact) error {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export dir failed:%w", err)
	}

	for _, a := range artifacts {
		path := filepath.Join(dir, a.Filename)
		if err := os.WriteFile(path, a.Payload, 0o644); err != nil {
			return fmt.Errorf("write %s failed:%w", a.Filename, err)
		}

		if s.Logger != nil {
			s.Logger.Info("artifact exported", zap.String("path", path), zap.Int("bytes", len(a.Payload)))
		}
	}

	return nil
}

// Path is where Save puts a.
func (s FileSink) Path(a *Artifact) string {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}

	return filepath.Join(dir, a.Filename)
}

package portfolio

import (
	"fmt"
	"strings"

	"finboard/pkg/db"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Options selects and parameterizes a Store backend.
type Options struct {
	Backend  string // "file" (default) or "sqlite"
	FilePath string // snapshot path for the file backend
	Database *db.Database
}

// NewStore returns the Store described by opts.
func NewStore(opts Options) (Store, error) {
	backend := strings.ToLower(strings.TrimSpace(opts.Backend))
	if backend == "" {
		backend = BackendFile
	}
	switch backend {
	case BackendFile:
		path := opts.FilePath
		if path == "" {
			path = "portfolio.json"
		}
		return NewFileStore(path), nil
	case BackendSQLite:
		if opts.Database == nil {
			return nil, fmt.Errorf("sqlite backend requires an open database")
		}
		return NewSQLiteStore(opts.Database), nil
	default:
		return nil, fmt.Errorf("unsupported portfolio backend: %s", backend)
	}
}

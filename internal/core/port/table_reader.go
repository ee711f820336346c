package port

import (
	"io"

	"mailcamp/internal/core/domain"
)

// TableReader parses an uploaded file into a table. The format is chosen
// from the file name; unknown formats fail with domain.ErrUnsupportedFormat.
type TableReader interface {
	Read(name string, r io.Reader) (domain.Table, error)
}

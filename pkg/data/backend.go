package data

// Backend loads and saves the whole document. Save must be all-or-nothing:
// after a failed Save the previously saved document is still readable.
type Backend interface {
	Load() (*Document, error)
	Save(doc *Document) error
	Close() error
}

const (
	BackendJSON   = "json"
	BackendDuckDB = "duckdb"
)

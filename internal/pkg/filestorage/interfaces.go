package filestorage

import "io"

// FileInfo describes a stored report export
type FileInfo struct {
	Path     string // Full path where the file is stored
	Filename string // Generated filename
	FileSize int64  // Size in bytes
}

// FileStorage defines the interface for report export storage
type FileStorage interface {
	// SaveReport streams write into a new uniquely named file with extension ext
	SaveReport(prefix, ext string, write func(io.Writer) error) (*FileInfo, error)
}

package model

// EntryType is the kind of an entry in a remote directory listing
type EntryType string

const (
	EntryTypeFile EntryType = "file"
	EntryTypeDir  EntryType = "dir"
)

// Entry describes one item of a remote directory listing
type Entry struct {
	Name        string    // Base name, used verbatim as the local file name
	Path        string    // Path within the repository
	Type        EntryType // "file", "dir", "symlink", "submodule"
	DownloadURL string    // Direct download address, empty for non-file entries
	Size        int       // Size in bytes as reported by the listing
}

// IsFile reports whether the entry should be downloaded
func (e *Entry) IsFile() bool {
	return e.Type == EntryTypeFile
}

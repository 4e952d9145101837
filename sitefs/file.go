package sitefs

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"time"
)

// memFile is a rendered page held in memory and presented as an fs.File.
type memFile struct {
	fileInfo
	reader *bytes.Reader
}

func newMemFile(name string, data []byte, modTime time.Time) *memFile {
	return &memFile{
		fileInfo: fileInfo{name: path.Base(name), size: int64(len(data)), modTime: modTime},
		reader:   bytes.NewReader(data),
	}
}

func (f *memFile) Stat() (fs.FileInfo, error) { return f.fileInfo, nil }
func (f *memFile) Read(b []byte) (int, error) { return f.reader.Read(b) }
func (f *memFile) Close() error               { return nil }

// Seek allows http.FileServer to probe content length and serve ranges.
func (f *memFile) Seek(offset int64, whence int) (int64, error) {
	return f.reader.Seek(offset, whence)
}

// memDir is a synthetic directory with a fixed entry list.
type memDir struct {
	fileInfo
	entries []fs.DirEntry
	pos     int
}

func (d *memDir) Stat() (fs.FileInfo, error) { return d.fileInfo, nil }
func (d *memDir) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.name, Err: fs.ErrInvalid}
}
func (d *memDir) Close() error { return nil }

// ReadDir implements fs.ReadDirFile with the usual paging contract.
func (d *memDir) ReadDir(n int) ([]fs.DirEntry, error) {
	if n <= 0 {
		out := d.entries[d.pos:]
		d.pos = len(d.entries)
		return out, nil
	}
	if d.pos >= len(d.entries) {
		return nil, io.EOF
	}
	end := d.pos + n
	if end > len(d.entries) {
		end = len(d.entries)
	}
	out := d.entries[d.pos:end]
	d.pos = end
	return out, nil
}

// fileInfo is the synthetic metadata for rendered files and directories.
type fileInfo struct {
	name    string
	size    int64
	modTime time.Time
	dir     bool
}

func (fi fileInfo) Name() string       { return fi.name }
func (fi fileInfo) Size() int64        { return fi.size }
func (fi fileInfo) ModTime() time.Time { return fi.modTime }
func (fi fileInfo) IsDir() bool        { return fi.dir }
func (fi fileInfo) Sys() any           { return nil }

func (fi fileInfo) Mode() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | 0o555
	}
	return 0o444
}

// dirEntry adapts fileInfo to fs.DirEntry for synthetic listings.
type dirEntry struct {
	fileInfo
}

func (de dirEntry) Type() fs.FileMode          { return de.Mode().Type() }
func (de dirEntry) Info() (fs.FileInfo, error) { return de.fileInfo, nil }

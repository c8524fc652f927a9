package provider

import (
	"strings"

	"github.com/getchurch/church/pkg/random"
)

// File generates file names and extensions.
type File struct {
	base
}

// NewFile returns a File provider.
func NewFile(opts ...Option) *File {
	return &File{base: newBase(opts)}
}

// Extension returns a file extension of type t, e.g. ".py" for FileSource.
// Unknown types fall back to FileText.
func (f *File) Extension(t FileType) string {
	exts, ok := fileExtensions[FileType(strings.ToLower(string(t)))]
	if !ok {
		exts = fileExtensions[FileText]
	}
	return random.Choice(f.rnd, exts)
}

// FileTypes returns every FileType Extension understands.
func FileTypes() []FileType {
	return []FileType{
		FileSource, FileText, FileData, FileAudio,
		FileVideo, FileImage, FileExecutable, FileCompressed,
	}
}

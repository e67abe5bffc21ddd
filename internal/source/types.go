package source

import "encoding/hex"

type (
	// FileID identifies a file within a FileSet.
	FileID uint32
	// FileFlags records what normalisation touched a file.
	FileFlags uint8
)

const (
	// FileVirtual marks content added from memory (REPL line, stdin, tests).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File is one normalised source text.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	Hash    [32]byte // sha256 of Content after normalisation
	Flags   FileFlags
}

// Text returns the content as a string for the lexer.
func (f *File) Text() string { return string(f.Content) }

// HashHex is the hex form of Hash, used as a cache key.
func (f *File) HashHex() string { return hex.EncodeToString(f.Hash[:]) }

// LineCount counts lines; a trailing newline does not open a new line.
func (f *File) LineCount() int {
	if len(f.Content) == 0 {
		return 0
	}
	n := 1
	for i, b := range f.Content {
		if b == '\n' && i != len(f.Content)-1 {
			n++
		}
	}
	return n
}

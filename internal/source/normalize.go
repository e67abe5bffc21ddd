package source

import (
	"bytes"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// normalize strips a UTF-8 BOM, folds CRLF to LF and applies NFC so that
// visually identical identifiers lex to the same text.
func normalize(content []byte, flags FileFlags) ([]byte, FileFlags) {
	if bytes.HasPrefix(content, bom) {
		content = content[len(bom):]
		flags |= FileHadBOM
	}
	if bytes.Contains(content, []byte("\r\n")) {
		content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
		flags |= FileNormalizedCRLF
	}
	if !norm.NFC.IsNormal(content) {
		content = norm.NFC.Bytes(content)
		flags |= FileNormalizedNFC
	}
	return content, flags
}

func normalizePath(p string) string {
	if p == "" {
		return p
	}
	return filepath.ToSlash(filepath.Clean(p))
}

// DisplayPath shortens path for terminal output: relative to baseDir when
// it lies below it, otherwise unchanged.
func DisplayPath(path, baseDir string) string {
	if baseDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(baseDir, path)
	if err != nil || rel == ".." || len(rel) > 2 && rel[:3] == "../" {
		return path
	}
	return filepath.ToSlash(rel)
}

package source

import (
	"path/filepath"
	"slices"
)

// normalizeCRLF replaces every \r\n with \n, leaving lone \r untouched.
// Returns the (possibly new) slice and whether any replacement happened.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if !slices.Contains(content, '\r') {
		return content, false
	}

	out := make([]byte, 0, len(content))
	changed := false

	i := 0
	for i < len(content) {
		if content[i] == '\r' && i+1 < len(content) && content[i+1] == '\n' {
			out = append(out, '\n')
			i += 2
			changed = true
		} else {
			out = append(out, content[i])
			i++
		}
	}
	return out, changed
}

func removeBOM(content []byte) ([]byte, bool) {
	if len(content) < 3 {
		return content, false
	}

	if content[0] == 0xEF && content[1] == 0xBB && content[2] == 0xBF {
		return content[3:], true
	}

	return content, false
}

// NormalizeContent applies the same BOM and CRLF normalization Load does,
// so callers can hash raw bytes the way the FileSet would store them.
func NormalizeContent(content []byte) []byte {
	content, _ = removeBOM(content)
	content, _ = normalizeCRLF(content)
	return content
}

func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, len(content)/16)
	for i, b := range content {
		if b == '\n' {
			out = append(out, uint32(i))
		}
	}
	return out
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// Empty index means the whole file is a single line.
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	// Binary search for the largest lineIdx[i] <= off.
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] <= off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if hi < 0 {
		return LineCol{Line: 1, Col: off + 1}
	}

	if off == lineIdx[hi] {
		// off is the newline byte itself; it still belongs to line hi+1.
		var startOff uint32
		if hi > 0 {
			startOff = lineIdx[hi-1] + 1
		}
		return LineCol{Line: uint32(hi + 1), Col: off - startOff + 1}
	}

	// off is past newline hi, so it sits on the following line.
	return LineCol{Line: uint32(hi + 2), Col: off - lineIdx[hi]}
}

func normalizePath(p string) string {
	// One spelling across platforms so diffs and map keys are stable.
	return filepath.ToSlash(filepath.Clean(p))
}

// Canonicalize resolves symlinks and relative segments, yielding the
// identity key used for caching and cycle detection. If the target does not
// exist (EvalSymlinks fails), the cleaned absolute path is returned so the
// caller still gets a stable key for its error report.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return filepath.Clean(abs), nil
	}
	return resolved, nil
}

package localmirror

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mononotes/mononotes/internal/domain/contract"
)

// Mirror reads content files from a local directory. It backs reads when
// the remote store is unreachable or unconfigured; a missing directory is
// an empty mirror, not an error.
type Mirror struct {
	dir string
}

// New creates a Mirror over a content directory.
func New(dir string) *Mirror {
	return &Mirror{dir: dir}
}

var _ contract.ILocalMirror = (*Mirror)(nil)

// ListFiles returns every .md/.mdx file in the mirror with its raw content.
func (m *Mirror) ListFiles() ([]contract.MirrorFile, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []contract.MirrorFile{}, nil
		}
		return nil, err
	}

	files := make([]contract.MirrorFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !hasContentExtension(entry.Name()) {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(m.dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		files = append(files, contract.MirrorFile{
			FileName: entry.Name(),
			Content:  string(raw),
		})
	}
	return files, nil
}

func hasContentExtension(name string) bool {
	return strings.HasSuffix(name, ".md") || strings.HasSuffix(name, ".mdx")
}

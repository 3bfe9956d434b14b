// Package ioblob implements the blob.Reader contract over the
// release data directory. Artifacts are gzip-compressed flat files
// laid out by kind, one file per VOG.
package ioblob

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/vogtools/vogdb/pkg/blob"
)

type reader struct {
	dataDir string
}

// NewReader creates an artifact reader rooted at the release data
// directory.
func NewReader(dataDir string) blob.Reader {
	return &reader{dataDir: dataDir}
}

// path returns the file location for one artifact. Ids are uppercased,
// matching the naming convention of release archives.
func (r *reader) path(kind blob.Kind, id string) string {
	id = strings.ToUpper(id)
	switch kind {
	case blob.MSA:
		return filepath.Join(r.dataDir, "raw_algs", id+".msa.gz")
	default:
		return filepath.Join(r.dataDir, "hmm", id+".hmm.gz")
	}
}

// Fetch returns the decompressed artifact content for one id.
func (r *reader) Fetch(kind blob.Kind, id string) (string, error) {
	path := r.path(kind, id)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", blob.NewNotFoundError(kind, id, err)
		}
		return "", NewReadError(kind, id, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return "", NewReadError(kind, id, err)
	}
	defer gz.Close()

	bs, err := io.ReadAll(gz)
	if err != nil {
		return "", NewReadError(kind, id, err)
	}
	return string(bs), nil
}

// FetchBatch resolves each id independently. Missing artifacts are
// skipped, so the result can be partial; any other read error aborts.
func (r *reader) FetchBatch(
	kind blob.Kind,
	ids []string,
) (map[string]string, error) {
	res := make(map[string]string, len(ids))
	for _, id := range ids {
		content, err := r.Fetch(kind, id)
		if err != nil {
			var notFound blob.NotFoundError
			if errors.As(err, &notFound) {
				continue
			}
			return nil, err
		}
		res[id] = content
	}
	return res, nil
}

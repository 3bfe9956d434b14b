package ioblob_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vogtools/vogdb/internal/ioblob"
	"github.com/vogtools/vogdb/pkg/blob"
)

func writeArtifact(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
}

func setupDataDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	writeArtifact(t,
		filepath.Join(dir, "hmm", "VOG00001.hmm.gz"),
		"HMMER3/f [3.1b2]\nNAME  VOG00001\n")
	writeArtifact(t,
		filepath.Join(dir, "raw_algs", "VOG00001.msa.gz"),
		">P1\nMKT\n>P2\nMKV\n")
	writeArtifact(t,
		filepath.Join(dir, "hmm", "VOG00002.hmm.gz"),
		"HMMER3/f [3.1b2]\nNAME  VOG00002\n")
	return dir
}

func TestFetch(t *testing.T) {
	r := ioblob.NewReader(setupDataDir(t))

	t.Run("hmm", func(t *testing.T) {
		content, err := r.Fetch(blob.HMM, "VOG00001")
		require.NoError(t, err)
		assert.Contains(t, content, "NAME  VOG00001")
	})

	t.Run("msa", func(t *testing.T) {
		content, err := r.Fetch(blob.MSA, "VOG00001")
		require.NoError(t, err)
		assert.Contains(t, content, ">P1")
	})

	t.Run("id is uppercased", func(t *testing.T) {
		content, err := r.Fetch(blob.HMM, "vog00001")
		require.NoError(t, err)
		assert.Contains(t, content, "NAME  VOG00001")
	})

	t.Run("missing artifact", func(t *testing.T) {
		_, err := r.Fetch(blob.MSA, "VOG99999")

		var notFound blob.NotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, blob.MSA, notFound.Kind)
		assert.Equal(t, "VOG99999", notFound.ID)
	})
}

func TestFetchBatch(t *testing.T) {
	r := ioblob.NewReader(setupDataDir(t))

	t.Run("partial result on missing ids", func(t *testing.T) {
		res, err := r.FetchBatch(blob.HMM,
			[]string{"VOG00001", "VOG99999", "VOG00002"})
		require.NoError(t, err)

		assert.Len(t, res, 2)
		assert.Contains(t, res, "VOG00001")
		assert.Contains(t, res, "VOG00002")
		assert.NotContains(t, res, "VOG99999")
	})

	t.Run("empty request", func(t *testing.T) {
		res, err := r.FetchBatch(blob.MSA, nil)
		require.NoError(t, err)
		assert.Empty(t, res)
	})
}

func TestFetchCorrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hmm", "VOG00001.hmm.gz")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("not gzip"), 0644))

	r := ioblob.NewReader(dir)
	_, err := r.Fetch(blob.HMM, "VOG00001")

	var readErr ioblob.ReadError
	require.ErrorAs(t, err, &readErr)
}

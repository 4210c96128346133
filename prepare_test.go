package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/liserjrqlxue/libIM"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, nil, 0644))
	return path
}

func TestDiscoverPairs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"B_2.fastq.gz", "A_1.fastq.gz", "B_1.fastq.gz", "A_2.fastq.gz", "notes.txt"} {
		touch(t, dir, name)
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "C_1.fastq.gz"), 0755))
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0755))
	touch(t, sub, "D_1.fastq.gz")
	touch(t, sub, "D_2.fastq.gz")

	infos, err := DiscoverPairs(dir, "_1.fastq.gz", "_2.fastq.gz")
	require.NoError(t, err)
	assert.Equal(t, []libIM.Info{
		{SampleID: "A", Fq1: filepath.Join(dir, "A_1.fastq.gz"), Fq2: filepath.Join(dir, "A_2.fastq.gz")},
		{SampleID: "B", Fq1: filepath.Join(dir, "B_1.fastq.gz"), Fq2: filepath.Join(dir, "B_2.fastq.gz")},
	}, infos)
}

func TestDiscoverPairsExactSuffix(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "x_1.fq_1.fq")
	touch(t, dir, "x_1.fq_2.fq")

	infos, err := DiscoverPairs(dir, "_1.fq", "_2.fq")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "x_1.fq", infos[0].SampleID)
}

func TestDiscoverPairsRelativeDir(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "A_1.fastq.gz")
	touch(t, dir, "A_2.fastq.gz")
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer func() { require.NoError(t, os.Chdir(wd)) }()

	infos, err := DiscoverPairs(".", "_1.fastq.gz", "_2.fastq.gz")
	require.NoError(t, err)
	assert.Equal(t, []libIM.Info{{SampleID: "A", Fq1: "A_1.fastq.gz", Fq2: "A_2.fastq.gz"}}, infos)
}

func TestDiscoverPairsCountMismatch(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"A_1.fastq.gz", "B_1.fastq.gz", "C_1.fastq.gz", "A_2.fastq.gz", "B_2.fastq.gz"} {
		touch(t, dir, name)
	}
	_, err := DiscoverPairs(dir, "_1.fastq.gz", "_2.fastq.gz")
	require.ErrorIs(t, err, ErrPairCount)
	assert.Contains(t, err.Error(), "found 3")
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestDiscoverPairsPositional(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "A_1.fastq.gz")
	touch(t, dir, "Z_2.fastq.gz")
	logBuf := captureLog(t)

	infos, err := DiscoverPairs(dir, "_1.fastq.gz", "_2.fastq.gz")
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "A", infos[0].SampleID)
	assert.Equal(t, filepath.Join(dir, "Z_2.fastq.gz"), infos[0].Fq2)
	assert.Contains(t, logBuf.String(), "A_1.fastq.gz paired with Z_2.fastq.gz")
}

func TestDiscoverPairsMatchingNamesNoWarning(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "A_1.fastq.gz")
	touch(t, dir, "A_2.fastq.gz")
	logBuf := captureLog(t)

	_, err := DiscoverPairs(dir, "_1.fastq.gz", "_2.fastq.gz")
	require.NoError(t, err)
	assert.NotContains(t, logBuf.String(), "paired with")
}

func TestDiscoverPairsEmpty(t *testing.T) {
	infos, err := DiscoverPairs(t.TempDir(), "_1.fastq.gz", "_2.fastq.gz")
	require.NoError(t, err)
	assert.Empty(t, infos)
}

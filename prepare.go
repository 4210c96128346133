package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/liserjrqlxue/libIM"
)

// ErrPairCount means the two read lists can not be paired by position
var ErrPairCount = errors.New("each sample must have two FASTQ files")

// listSuffix returns sorted names of non-dir entries ending with suffix
func listSuffix(entries []os.DirEntry, suffix string) (names []string) {
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), suffix) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return
}

// DiscoverPairs pairs fq1 and fq2 files of dir by sorted position.
// sampleID is the fq1 name with fq1Suffix trimmed.
func DiscoverPairs(dir, fq1Suffix, fq2Suffix string) ([]libIM.Info, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir %s: %w", dir, err)
	}

	var (
		fq1s = listSuffix(entries, fq1Suffix)
		fq2s = listSuffix(entries, fq2Suffix)
	)
	if len(fq1s) != len(fq2s) {
		return nil, fmt.Errorf(
			"%w: found %d *%s and %d *%s, check the suffixes of the FASTQ files match the command-line options",
			ErrPairCount, len(fq1s), fq1Suffix, len(fq2s), fq2Suffix,
		)
	}

	var infos = make([]libIM.Info, 0, len(fq1s))
	for i := range fq1s {
		var sampleID = strings.TrimSuffix(fq1s[i], fq1Suffix)
		// pairing is by position only, keep the pair but say so
		if id2 := strings.TrimSuffix(fq2s[i], fq2Suffix); id2 != sampleID {
			log.Printf("warn: %s paired with %s by sort order, names differ", fq1s[i], fq2s[i])
		}
		infos = append(infos, libIM.Info{
			SampleID: sampleID,
			Fq1:      filepath.Join(dir, fq1s[i]),
			Fq2:      filepath.Join(dir, fq2s[i]),
		})
	}
	return infos, nil
}

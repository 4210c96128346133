package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"

	gzip "github.com/klauspost/pgzip"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/libIM"
)

var gz = regexp.MustCompile(`\.gz$`)

// checkFq reads the first line of a fastq, gzip or plain
func checkFq(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer simpleUtil.DeferClose(file)

	var in io.Reader = file
	if gz.MatchString(path) {
		gr, err := gzip.NewReader(file)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		defer simpleUtil.DeferClose(gr)
		in = gr
	}

	var scanner = bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		return fmt.Errorf("%s: empty fastq", path)
	}
	var line = scanner.Text()
	if len(line) == 0 || line[0] != '@' {
		return fmt.Errorf("%s: not fastq, first line %q", path, line)
	}
	return nil
}

// CheckReads stops at the first read file that is not a readable fastq
func CheckReads(infos []libIM.Info) error {
	for _, info := range infos {
		for _, fq := range []string{info.Fq1, info.Fq2} {
			if err := checkFq(fq); err != nil {
				return fmt.Errorf("sample %s: %w", info.SampleID, err)
			}
		}
	}
	return nil
}

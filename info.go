package main

import (
	"fmt"
	"log"
	"os"
	"time"
	"unicode/utf8"

	"github.com/liserjrqlxue/libIM"
)

const (
	supportTech     = "illumina"
	supportPipeline = "mycobacteria"
	hostOrganism    = "homo sapiens"
	dateLayout      = "2006-01-02"
)

// Options hold raw flag values
type Options struct {
	InputDir          string
	Fastq1Suffix      string
	Fastq2Suffix      string
	CollectionDate    string
	Country           string
	Tech              string
	Pipeline          string
	Output            string
	NumberOfBatches   int
	MaxSamplesInBatch int
	SampleList        string
	CheckReads        bool
}

// Config is Options that passed NewConfig, only NewConfig should build one
type Config struct {
	Options
}

// Batch is one manifest file worth of samples
type Batch struct {
	Index   int
	File    string
	Samples []libIM.Info
}

// NewConfig checks every option before any read file is touched.
// The first failing check is returned.
func NewConfig(opt Options) (Config, error) {
	if opt.Pipeline != supportPipeline {
		return Config{}, fmt.Errorf("currently only %s is supported, got pipeline %q", supportPipeline, opt.Pipeline)
	}
	if opt.MaxSamplesInBatch <= 0 {
		return Config{}, fmt.Errorf("max samples in batch must be > 0, got %d", opt.MaxSamplesInBatch)
	}
	if opt.NumberOfBatches <= 0 {
		return Config{}, fmt.Errorf("number of batches must be > 0, got %d", opt.NumberOfBatches)
	}
	if opt.Tech != supportTech {
		return Config{}, fmt.Errorf("currently only %s is supported, got tech %q", supportTech, opt.Tech)
	}
	if utf8.RuneCountInString(opt.Country) != 3 {
		return Config{}, fmt.Errorf("country code must conform to ISO 3166 i.e. be 3 characters long, got %q", opt.Country)
	}
	if info, err := os.Stat(opt.InputDir); err != nil || !info.IsDir() {
		return Config{}, fmt.Errorf("input directory does not exist: %s", opt.InputDir)
	}
	if opt.Fastq1Suffix == opt.Fastq2Suffix {
		return Config{}, fmt.Errorf("FASTQ suffixes must be different, both are %q", opt.Fastq1Suffix)
	}
	if _, err := time.Parse(dateLayout, opt.CollectionDate); err != nil {
		log.Printf("warn: collection date %q is not YYYY-MM-DD", opt.CollectionDate)
	}
	return Config{Options: opt}, nil
}

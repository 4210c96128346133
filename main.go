package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/liserjrqlxue/libIM"
	simple_util "github.com/liserjrqlxue/simple-util"
)

var (
	inputDir = flag.String(
		"input-dir",
		".",
		"the path to the folder containing the FASTQ files",
	)
	fastq1Suffix = flag.String(
		"fastq1-suffix",
		"_1.fastq.gz",
		"how all the first FASTQ filenames end",
	)
	fastq2Suffix = flag.String(
		"fastq2-suffix",
		"_2.fastq.gz",
		"how all the second FASTQ filenames end",
	)
	collectionDate = flag.String(
		"collection-date",
		"2024-01-01",
		"the date the sample was collected in ISO format e.g. 2024-02-29",
	)
	country = flag.String(
		"country",
		"GBR",
		"the ISO 3166 alpha-3 code of the country where the samples were collected",
	)
	tech = flag.String(
		"tech",
		supportTech,
		"sequencing technology; currently only illumina (paired) is supported",
	)
	pipeline = flag.String(
		"pipeline",
		supportPipeline,
		"target pipeline; currently only mycobacteria is supported",
	)
	output = flag.String(
		"output",
		"upload.csv",
		"the name of the CSV file to be generated",
	)
	numberOfBatches = flag.Int(
		"number-of-batches",
		1,
		"how many batches to generate",
	)
	maxSamplesInBatch = flag.Int(
		"max-samples-in-batch",
		100,
		"the maximum number of samples in a single batch",
	)
	list = flag.String(
		"list",
		"",
		"sample list with sampleID/fq1/fq2 columns, tsv or xlsx, used instead of scanning -input-dir",
	)
	check = flag.Bool(
		"check",
		false,
		"check every FASTQ file starts with a fastq record before writing",
	)
	logFile = flag.String(
		"log",
		"",
		"output log file, default stderr",
	)
)

func main() {
	flag.Parse()

	log.SetFlags(log.Ldate | log.Ltime)
	if *logFile != "" {
		logF, err := os.Create(*logFile)
		simple_util.CheckErr(err)
		defer simple_util.DeferClose(logF)
		log.SetOutput(logF)
		log.Printf("Log file:%v\n", *logFile)
	}

	cfg, err := NewConfig(Options{
		InputDir:          *inputDir,
		Fastq1Suffix:      *fastq1Suffix,
		Fastq2Suffix:      *fastq2Suffix,
		CollectionDate:    *collectionDate,
		Country:           *country,
		Tech:              *tech,
		Pipeline:          *pipeline,
		Output:            *output,
		NumberOfBatches:   *numberOfBatches,
		MaxSamplesInBatch: *maxSamplesInBatch,
		SampleList:        *list,
		CheckReads:        *check,
	})
	if err != nil {
		fatal(err)
	}

	if _, err = run(cfg, os.Stdout); err != nil {
		fatal(err)
	}
}

// fatal always reaches stderr, even with -log set
func fatal(err error) {
	if *logFile != "" {
		log.Print(err)
	}
	log.SetOutput(os.Stderr)
	log.Fatal(err)
}

func loadSamples(cfg Config) ([]libIM.Info, error) {
	if cfg.SampleList != "" {
		log.Printf("load sample list %s", cfg.SampleList)
		return ParseInfoIM(cfg.SampleList)
	}
	log.Printf("scan %s for *%s and *%s", cfg.InputDir, cfg.Fastq1Suffix, cfg.Fastq2Suffix)
	return DiscoverPairs(cfg.InputDir, cfg.Fastq1Suffix, cfg.Fastq2Suffix)
}

// run writes every manifest of cfg and reports to out, returns written files
func run(cfg Config, out io.Writer) ([]string, error) {
	infos, err := loadSamples(cfg)
	if err != nil {
		return nil, err
	}
	log.Printf("found %d samples", len(infos))
	if len(infos) == 0 {
		log.Printf("warn: no samples found, %s will only hold the title", cfg.Output)
	}

	if cfg.CheckReads {
		if err = CheckReads(infos); err != nil {
			return nil, err
		}
		log.Printf("check %d FASTQ pairs done", len(infos))
	}

	var (
		batches = CreateBatches(infos, cfg)
		files   = make([]string, 0, len(batches))
	)
	for _, batch := range batches {
		createManifest(batch, cfg)
		files = append(files, batch.File)
	}
	return files, Report(out, files)
}

package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/liserjrqlxue/goUtil/osUtil"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/libIM"
	simple_util "github.com/liserjrqlxue/simple-util"
)

var manifestTitle = []string{
	"batch_name",
	"sample_name",
	"reads_1",
	"reads_2",
	"control",
	"collection_date",
	"country",
	"subdivision",
	"district",
	"specimen_organism",
	"host_organism",
	"instrument_platform",
}

// WriteManifest writes title and one row per sample, fields are not quoted
func WriteManifest(w io.Writer, cfg Config, samples []libIM.Info) error {
	if _, err := fmt.Fprintln(w, strings.Join(manifestTitle, ",")); err != nil {
		return err
	}
	for _, info := range samples {
		_, err := fmt.Fprintf(
			w,
			",%s,%s,%s,,%s,%s,,,%s,%s,%s\n",
			info.SampleID, info.Fq1, info.Fq2,
			cfg.CollectionDate, cfg.Country,
			cfg.Pipeline, hostOrganism, cfg.Tech,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func createManifest(batch Batch, cfg Config) {
	if simple_util.FileExists(batch.File) {
		log.Printf("overwrite %s", batch.File)
	}
	var file = osUtil.Create(batch.File)
	defer simpleUtil.DeferClose(file)

	simpleUtil.CheckErr(WriteManifest(file, cfg, batch.Samples), "write", batch.File)
	log.Printf("batch[%d] %d samples -> %s", batch.Index, len(batch.Samples), batch.File)
}

// Report prints generated files and how to upload them with the GPAS CLI
func Report(w io.Writer, files []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Generated %d CSV files: %s\n\n", len(files), strings.Join(files, ", "))
	b.WriteString("To upload with the GPAS CLI, issue the following commands after your terminal command prompt (here $):\n")
	b.WriteString("\n")
	b.WriteString("$ gpas auth\n")
	b.WriteString("\n")
	b.WriteString("and enter your username (usually your email address) and password\n\n")
	b.WriteString("Then type the following; note that each batch takes a while to complete, depending on how many samples it contains, the number of CPU cores on your machine and the speed of your internet connection.\n\n")
	for _, file := range files {
		fmt.Fprintf(&b, "$ gpas upload %s\n\n", file)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

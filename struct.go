package main

import (
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/360EntSecGroup-Skylar/excelize/v2"
	"github.com/liserjrqlxue/goUtil/simpleUtil"
	"github.com/liserjrqlxue/goUtil/textUtil"
	"github.com/liserjrqlxue/libIM"
)

var (
	isXlsx     = regexp.MustCompile(`\.xlsx$`)
	listTitles = []string{"sampleID", "fq1", "fq2"}
)

func NewInfo(item map[string]string) libIM.Info {
	return libIM.Info{
		SampleID: item["sampleID"],
		Fq1:      item["fq1"],
		Fq2:      item["fq2"],
	}
}

// ParseInfoIM loads sample list with sampleID/fq1/fq2 columns, xlsx or tsv, keep list order
func ParseInfoIM(input string) ([]libIM.Info, error) {
	var (
		sampleMap []map[string]string
		title     []string
		err       error
	)
	if isXlsx.MatchString(input) {
		sampleMap, title, err = xlsx2MapArray(input)
		if err != nil {
			return nil, err
		}
	} else {
		// File2MapArray exits on a bad path, check it here
		if err = checkReadable(input); err != nil {
			return nil, err
		}
		sampleMap, title = textUtil.File2MapArray(input, "\t", nil)
	}
	if err = checkTitle(input, title); err != nil {
		return nil, err
	}

	var (
		infos []libIM.Info
		seen  = make(map[string]bool)
	)
	for i, item := range sampleMap {
		var info = NewInfo(item)
		if info.SampleID == "" || info.Fq1 == "" || info.Fq2 == "" {
			return nil, fmt.Errorf("%s: row %d: sampleID, fq1 and fq2 are required", input, i+2)
		}
		if seen[info.SampleID] {
			return nil, fmt.Errorf("%s: dup sampleID:%s", input, info.SampleID)
		}
		seen[info.SampleID] = true
		infos = append(infos, info)
	}
	return infos, nil
}

func checkReadable(input string) error {
	file, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("open %s: %w", input, err)
	}
	defer simpleUtil.DeferClose(file)
	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("stat %s: %w", input, err)
	}
	if info.IsDir() {
		return fmt.Errorf("open %s: is a directory", input)
	}
	return nil
}

func checkTitle(input string, title []string) error {
	var has = make(map[string]bool, len(title))
	for _, key := range title {
		has[key] = true
	}
	for _, key := range listTitles {
		if !has[key] {
			return fmt.Errorf("%s: missing column %s", input, key)
		}
	}
	return nil
}

// xlsx2MapArray reads first sheet, first row as title
func xlsx2MapArray(input string) (mapArray []map[string]string, title []string, err error) {
	xlsx, err := excelize.OpenFile(input)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", input, err)
	}
	var sheetMap = xlsx.GetSheetMap()
	if len(sheetMap) == 0 {
		return nil, nil, fmt.Errorf("%s: no sheet", input)
	}
	var index []int
	for i := range sheetMap {
		index = append(index, i)
	}
	sort.Ints(index)

	rows, err := xlsx.GetRows(sheetMap[index[0]])
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", input, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil
	}
	title = rows[0]
	for _, row := range rows[1:] {
		if len(row) == 0 {
			continue
		}
		var item = make(map[string]string, len(title))
		for j, key := range title {
			if j < len(row) {
				item[key] = row[j]
			}
		}
		mapArray = append(mapArray, item)
	}
	return
}

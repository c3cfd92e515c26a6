package synth

import (
	"embed"
	"encoding/csv"
	"fmt"
	"strings"
)

//go:embed data/surnames.csv data/given_names.csv data/addresses.csv
var tableFS embed.FS

type surnameEntry struct {
	kanji string
	kana  string
}

type givenNameEntry struct {
	kanji string
	kana  string
	sex   string
}

type addressEntry struct {
	postalCode string
	prefecture string
	city       string
	town       string
}

var (
	surnameTable   []surnameEntry
	givenNameTable []givenNameEntry
	addressTable   []addressEntry
)

func init() {
	var err error
	surnameTable, err = loadSurnames("data/surnames.csv")
	if err != nil {
		panic(fmt.Errorf("synth: loading surname table: %w", err))
	}
	givenNameTable, err = loadGivenNames("data/given_names.csv")
	if err != nil {
		panic(fmt.Errorf("synth: loading given name table: %w", err))
	}
	addressTable, err = loadAddresses("data/addresses.csv")
	if err != nil {
		panic(fmt.Errorf("synth: loading address table: %w", err))
	}
}

func readTable(path string) ([][]string, error) {
	f, err := tableFS.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func loadSurnames(path string) ([]surnameEntry, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	out := make([]surnameEntry, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		out = append(out, surnameEntry{kanji: strings.TrimSpace(row[0]), kana: strings.TrimSpace(row[1])})
	}
	return out, nil
}

func loadGivenNames(path string) ([]givenNameEntry, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	out := make([]givenNameEntry, 0, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		out = append(out, givenNameEntry{
			kanji: strings.TrimSpace(row[0]),
			kana:  strings.TrimSpace(row[1]),
			sex:   strings.TrimSpace(row[2]),
		})
	}
	return out, nil
}

func loadAddresses(path string) ([]addressEntry, error) {
	rows, err := readTable(path)
	if err != nil {
		return nil, err
	}
	out := make([]addressEntry, 0, len(rows))
	for _, row := range rows {
		if len(row) < 4 {
			continue
		}
		out = append(out, addressEntry{
			postalCode: strings.TrimSpace(row[0]),
			prefecture: strings.TrimSpace(row[1]),
			city:       strings.TrimSpace(row[2]),
			town:       strings.TrimSpace(row[3]),
		})
	}
	return out, nil
}

// givenNamesFor returns the given-name table entries matching sex, or the
// whole table when sex is unrecognized (falls back to "O"-tagged entries
// plus a neutral default so every Sex value always has candidates).
func givenNamesFor(sex string) []givenNameEntry {
	var matches []givenNameEntry
	for _, e := range givenNameTable {
		if e.sex == sex || e.sex == "O" {
			matches = append(matches, e)
		}
	}
	if len(matches) == 0 {
		return givenNameTable
	}
	return matches
}

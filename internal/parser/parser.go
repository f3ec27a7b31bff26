// Package parser reads fortune files into discrete fortune records.
//
// The on-disk format is plain text: a line consisting solely of "%"
// terminates one record. Everything between terminators, including
// embedded blank lines, is one record's text.
package parser

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harrison/fortune/internal/models"
)

// terminator is the line that closes a fortune record on disk.
const terminator = "%"

// ReadFortunes parses every file into its fortune records, concatenated
// in file order then in within-file appearance order. A file that
// cannot be opened fails the whole parse.
func ReadFortunes(files []string) ([]models.Fortune, error) {
	var fortunes []models.Fortune

	for _, file := range files {
		records, err := readFile(file)
		if err != nil {
			return nil, err
		}
		fortunes = append(fortunes, records...)
	}

	return fortunes, nil
}

// readFile extracts the terminator-closed records from a single file.
// Empty blocks (a leading or doubled terminator) emit no record, and a
// trailing block with no terminator is dropped.
func readFile(path string) ([]models.Fortune, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	source := filepath.Base(path)

	var fortunes []models.Fortune
	var block []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line != terminator {
			block = append(block, line)
			continue
		}
		if len(block) > 0 {
			fortunes = append(fortunes, models.Fortune{
				Source: source,
				Text:   strings.Join(block, "\n"),
			})
			block = nil
		}
	}

	// A read error mid-file ends this file's input; records already
	// produced are kept rather than failing the whole parse.
	_ = scanner.Err()

	return fortunes, nil
}

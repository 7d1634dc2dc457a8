package crawler

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
)

// ErrInputNotFound is returned when the ISBN list file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ReadISBNList reads one identifier per line. Lines are trimmed but none are
// skipped, so a blank line becomes an empty identifier.
func ReadISBNList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}

		return nil, fmt.Errorf("failed to open input file %s: %w", path, err)
	}
	defer f.Close()

	var isbns []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		isbns = append(isbns, strings.TrimSpace(scanner.Text()))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input file %s: %w", path, err)
	}

	return isbns, nil
}

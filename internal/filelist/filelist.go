// Package filelist reads the files.txt listing of paths to collect.
package filelist

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Read returns the non-empty, non-comment lines of the list file, trimmed,
// in file order. Duplicates are kept.
func Read(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file list: %w", err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read file list: %w", err)
	}
	return entries, nil
}

// Package script loads scripts from files.
package script

import (
	"bufio"
	"fmt"
	"os"
)

// Load reads one script line per line of the file at path.
func Load(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only script.
			_ = cerr
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	lines = Clean(lines)
	if len(lines) == 0 {
		return nil, fmt.Errorf("script is empty")
	}
	return lines, nil
}

package utils

import (
	"bufio"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
)

// maxLineSize is the longest line ReadLinesFromFile accepts.
const maxLineSize = 64 * 1024 * 1024

// SafeUint64ToInt64 converts a uint64 value to an int64 safely,
// ensuring that the value does not exceed the maximum limit of int64.
func SafeUint64ToInt64(val uint64) int64 {
	if val > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(val)
}

// IsFileExist checks if a file exists at the specified path.
// It returns true if the file exists and is not a directory, false if the file does not exist,
// and an error if there was an issue accessing the file.
func IsFileExist(path string) (bool, error) {
	stat, err := os.Stat(path)
	if err == nil {
		return !stat.IsDir(), nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}

// ReadLinesFromFile reads a text file and returns its non-empty lines in order.
// Surrounding whitespace is trimmed. When unique is set, repeated lines are kept only once.
func ReadLinesFromFile(path string, unique bool) ([]string, error) {
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	defer file.Close() //nolint:errcheck // Error on close is not critical here.

	return ReadLines(file, unique)
}

// ReadLines returns the non-empty, trimmed lines of r in order.
// When unique is set, repeated lines are kept only once.
func ReadLines(r io.Reader, unique bool) ([]string, error) {
	var (
		seenLines = make(map[string]struct{})
		lines     []string
		scanner   = bufio.NewScanner(r)
	)

	scanner.Buffer(nil, maxLineSize)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if unique {
			if _, exists := seenLines[line]; exists {
				continue
			}

			seenLines[line] = struct{}{}
		}

		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// Deduplicate returns values without repeats, keeping the first occurrence of each.
func Deduplicate[E comparable](values []E) []E {
	seen := make(map[E]struct{}, len(values))
	result := make([]E, 0, len(values))

	for _, v := range values {
		if _, exists := seen[v]; exists {
			continue
		}

		seen[v] = struct{}{}

		result = append(result, v)
	}

	return result
}

// Map applies a transformation function to each element of a slice and returns a new slice with the results.
func Map[E, S any](v []E, transformFunc func(E) S) []S {
	result := make([]S, len(v))
	for i := range v {
		result[i] = transformFunc(v[i])
	}

	return result
}

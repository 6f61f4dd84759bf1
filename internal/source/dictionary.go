package source

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// LoadWords reads a word list from path.
//
// Files ending in .msgpack or .mpk hold a msgpack-encoded array of strings.
// Anything else is read as text with one word per line; blank lines and
// lines starting with '#' are skipped. Duplicates keep their first position.
func LoadWords(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dictionary: %w", err)
	}

	var words []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".msgpack", ".mpk":
		if err := msgpack.Unmarshal(data, &words); err != nil {
			return nil, fmt.Errorf("failed to decode dictionary %s: %w", path, err)
		}
	default:
		words, err = parseLines(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse dictionary %s: %w", path, err)
		}
	}

	return dedupe(words), nil
}

// SaveWords writes words to path as msgpack
func SaveWords(path string, words []string) error {
	data, err := msgpack.Marshal(words)
	if err != nil {
		return fmt.Errorf("failed to encode dictionary: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write dictionary: %w", err)
	}
	return nil
}

func parseLines(data []byte) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}

func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

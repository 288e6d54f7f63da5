// internal/resultstore/store.go
package resultstore

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/promptlab/promptbench/internal/benchmark"
	"github.com/promptlab/promptbench/internal/util"
)

// Record is one persisted benchmark run: the full run plus the model and
// timestamp context needed to read the file standalone.
type Record struct {
	Timestamp string         `json:"timestamp"`
	Model     string         `json:"model"`
	Run       *benchmark.Run `json:"run"`
}

// Store appends benchmark runs to per-model JSONL files under a results
// directory.
type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created lazily on
// the first append.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the JSONL file a model's runs are appended to.
func (s *Store) Path(model string) string {
	return filepath.Join(s.dir, util.Slugify(model)+".jsonl")
}

// Append writes one run as a single JSONL line to the model's file.
func (s *Store) Append(model string, run *benchmark.Run) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("error creating results directory: %w", err)
	}

	file, err := os.OpenFile(s.Path(model), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("error opening results file: %w", err)
	}
	defer file.Close()

	record := Record{
		Timestamp: time.Now().Format(time.RFC3339),
		Model:     model,
		Run:       run,
	}
	encoder := json.NewEncoder(file)
	if err := encoder.Encode(record); err != nil {
		return fmt.Errorf("error writing results: %w", err)
	}
	return nil
}

// Load reads back every record for a model, oldest first. A missing file
// yields an empty slice.
func (s *Store) Load(model string) ([]Record, error) {
	file, err := os.Open(s.Path(model))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("error opening results file: %w", err)
	}
	defer file.Close()

	var records []Record
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record Record
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, fmt.Errorf("error parsing results line: %w", err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading results file: %w", err)
	}
	return records, nil
}

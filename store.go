package brickgame

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"sync"
)

// ScoreStore loads and persists the high score.
type ScoreStore interface {
	Load() (int, error)
	Save(score int) error
}

// FileStore keeps the high score as a bare decimal integer in a file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

// Load returns 0 without an error when the file does not exist. Content that
// does not start with a number also reads as 0.
func (s *FileStore) Load() (int, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("cannot read high score from %s: %w", s.path, err)
	}
	return parseScore(string(data)), nil
}

func (s *FileStore) Save(score int) error {
	if err := os.WriteFile(s.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("cannot write high score to %s: %w", s.path, err)
	}
	return nil
}

// parseScore reads the leading decimal number of text, skipping leading
// whitespace. Negative or missing numbers give 0.
func parseScore(text string) int {
	text = strings.TrimLeft(text, " \t\r\n\v\f")
	end := 0
	if end < len(text) && (text[end] == '-' || text[end] == '+') {
		end++
	}
	digits := end
	for end < len(text) && text[end] >= '0' && text[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	score, err := strconv.Atoi(text[:end])
	if err != nil || score < 0 {
		return 0
	}
	return score
}

type MemoryStore struct {
	m     sync.Mutex
	score int
	saves int
}

func NewMemoryStore(score int) *MemoryStore {
	return &MemoryStore{score: score}
}

func (s *MemoryStore) Load() (int, error) {
	s.m.Lock()
	defer s.m.Unlock()
	return s.score, nil
}

func (s *MemoryStore) Save(score int) error {
	s.m.Lock()
	defer s.m.Unlock()
	s.score = score
	s.saves++
	return nil
}

// Saves returns how many times Save was called.
func (s *MemoryStore) Saves() int {
	s.m.Lock()
	defer s.m.Unlock()
	return s.saves
}

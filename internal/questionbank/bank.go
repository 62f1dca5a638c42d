// Package questionbank loads question files: a JSON array of records, each
// turned into a question.Question. Bad records are skipped and reported;
// only an unreadable or wrongly shaped file is fatal.
package questionbank

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/abhisek/quizme/internal/question"
)

// ErrNotArray is returned when the file's top level is not a JSON array.
var ErrNotArray = errors.New("question file must contain a JSON array")

// Skipped describes a record that could not be turned into a question.
type Skipped struct {
	Index int
	Err   error
}

func (s Skipped) String() string {
	return fmt.Sprintf("record %d: %v", s.Index, s.Err)
}

// Bank is the result of loading a question file.
type Bank struct {
	Questions []*question.Question
	Skipped   []Skipped
}

// LoadFile reads and loads the question file at path.
func LoadFile(path string, log logrus.FieldLogger) (*Bank, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open question file: %w", err)
	}
	defer f.Close()

	bank, err := Load(f, log.WithField("file", path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return bank, nil
}

// Load decodes a question file from r. Every skipped record is logged at
// warn level and listed in Bank.Skipped.
func Load(r io.Reader, log logrus.FieldLogger) (*Bank, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read question file: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	items, ok := parsed.([]any)
	if !ok {
		return nil, ErrNotArray
	}

	bank := &Bank{}
	for i, item := range items {
		q, err := build(item)
		if err != nil {
			bank.Skipped = append(bank.Skipped, Skipped{Index: i, Err: err})
			log.WithField("record", i).Warnf("%v. Skipping this question.", err)
			continue
		}
		bank.Questions = append(bank.Questions, q)
	}

	log.WithFields(logrus.Fields{
		"loaded":  len(bank.Questions),
		"skipped": len(bank.Skipped),
	}).Debug("question file loaded")
	return bank, nil
}

func build(item any) (*question.Question, error) {
	obj, ok := item.(map[string]any)
	if !ok {
		return nil, &question.FieldError{
			Field:  question.FieldType,
			Reason: fmt.Sprintf("record is %T, not an object", item),
			Err:    question.ErrMalformedRecord,
		}
	}
	return question.Build(question.Record(obj))
}

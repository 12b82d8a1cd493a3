// Package formfile reads form definitions and answer sets from YAML files
// for offline validation runs.
package formfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/formcheck-backend/internal/domain"
	"github.com/heartmarshall/formcheck-backend/internal/service/form"
)

// ErrUnknownField is returned when an answer key matches no form field.
var ErrUnknownField = errors.New("unknown field")

// LoadForm reads and validates a form definition file.
func LoadForm(path string) (form.CreateFormInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return form.CreateFormInput{}, fmt.Errorf("open form file: %w", err)
	}
	defer f.Close()

	return ParseForm(f)
}

// ParseForm decodes a form definition. Unknown keys are rejected.
func ParseForm(r io.Reader) (form.CreateFormInput, error) {
	var input form.CreateFormInput

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&input); err != nil {
		if errors.Is(err, io.EOF) {
			return form.CreateFormInput{}, errors.New("decode form: file is empty")
		}
		return form.CreateFormInput{}, fmt.Errorf("decode form: %w", err)
	}

	if err := input.Validate(); err != nil {
		return form.CreateFormInput{}, err
	}
	return input, nil
}

// LoadAnswers reads an answers file.
func LoadAnswers(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open answers file: %w", err)
	}
	defer f.Close()

	return ParseAnswers(f)
}

// ParseAnswers decodes a flat mapping of field key to submitted value.
// Scalar values of any YAML type are taken verbatim as strings.
func ParseAnswers(r io.Reader) (map[string]string, error) {
	var raw map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("decode answers: %w", err)
	}

	answers := make(map[string]string, len(raw))
	for key, node := range raw {
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("decode answers: %q: value must be a scalar", key)
		}
		if node.Tag == "!!null" {
			answers[key] = ""
			continue
		}
		answers[key] = node.Value
	}
	return answers, nil
}

// BindAnswers resolves answer keys to field ids. A key is either a field
// label (case-insensitive) or a 1-based field position such as "#2".
func BindAnswers(f domain.Form, answers map[string]string) (map[uuid.UUID]string, error) {
	byLabel := make(map[string]uuid.UUID, len(f.Fields))
	ambiguous := make(map[string]bool)
	for _, field := range f.Fields {
		key := strings.ToLower(strings.TrimSpace(field.Label))
		if _, ok := byLabel[key]; ok {
			ambiguous[key] = true
		}
		byLabel[key] = field.ID
	}

	values := make(map[uuid.UUID]string, len(answers))
	for key, value := range answers {
		id, err := resolve(f, byLabel, ambiguous, key)
		if err != nil {
			return nil, err
		}
		values[id] = value
	}
	return values, nil
}

func resolve(f domain.Form, byLabel map[string]uuid.UUID, ambiguous map[string]bool, key string) (uuid.UUID, error) {
	if pos, ok := strings.CutPrefix(key, "#"); ok {
		n, err := strconv.Atoi(pos)
		if err != nil || n < 1 || n > len(f.Fields) {
			return uuid.Nil, fmt.Errorf("%q: %w", key, ErrUnknownField)
		}
		return f.Fields[n-1].ID, nil
	}

	label := strings.ToLower(strings.TrimSpace(key))
	if ambiguous[label] {
		return uuid.Nil, fmt.Errorf("%q: label is shared by several fields, use a #position key", key)
	}
	id, ok := byLabel[label]
	if !ok {
		return uuid.Nil, fmt.Errorf("%q: %w", key, ErrUnknownField)
	}
	return id, nil
}

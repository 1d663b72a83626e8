package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

type Question struct {
	Text       string  `json:"pytanie" validate:"required"`
	Options    Options `json:"opcje" validate:"min=1,dive"`
	CorrectKey string  `json:"poprawna_odpowiedz" validate:"required"`
}

type Option struct {
	Key   string `validate:"required"`
	Label string `validate:"required"`
}

// Options keeps answer choices in the order they appear in the source document.
type Options []Option

func (o Options) Label(key string) (string, bool) {
	for _, opt := range o {
		if opt.Key == key {
			return opt.Label, true
		}
	}
	return "", false
}

func (o Options) Has(key string) bool {
	_, ok := o.Label(key)
	return ok
}

func (o *Options) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("options must be a JSON object")
	}

	var opts Options
	seen := make(map[string]bool)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected option key token %v", tok)
		}

		var label string
		if err := dec.Decode(&label); err != nil {
			return fmt.Errorf("option %q: %w", key, err)
		}

		if seen[key] {
			return fmt.Errorf("duplicate option key %q", key)
		}
		seen[key] = true

		opts = append(opts, Option{Key: key, Label: label})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*o = opts
	return nil
}

func (o Options) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, opt := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(opt.Key)
		if err != nil {
			return nil, err
		}
		label, err := json.Marshal(opt.Label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(label)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PlaceholderQuestions is served when the question source cannot be used.
func PlaceholderQuestions() []Question {
	return []Question{
		{
			Text: "Sample question?",
			Options: Options{
				{Key: "A", Label: "Option A"},
				{Key: "B", Label: "Option B"},
				{Key: "C", Label: "Option C"},
			},
			CorrectKey: "A",
		},
	}
}

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		want    Options
		wantErr bool
	}{
		{
			name: "keeps source order",
			data: `{"C": "third", "A": "first", "B": "second"}`,
			want: Options{
				{Key: "C", Label: "third"},
				{Key: "A", Label: "first"},
				{Key: "B", Label: "second"},
			},
		},
		{
			name: "empty object",
			data: `{}`,
			want: nil,
		},
		{
			name:    "error: array",
			data:    `["A", "B"]`,
			wantErr: true,
		},
		{
			name:    "error: non-string label",
			data:    `{"A": 1}`,
			wantErr: true,
		},
		{
			name:    "error: duplicate key",
			data:    `{"A": "x", "A": "y"}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got Options
			err := json.Unmarshal([]byte(tt.data), &got)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuestion_DecodeDocument(t *testing.T) {
	t.Parallel()

	doc := `[{"pytanie": "Stolica Polski?", "opcje": {"A": "Kraków", "B": "Warszawa"}, "poprawna_odpowiedz": "B"}]`

	var questions []Question
	require.NoError(t, json.Unmarshal([]byte(doc), &questions))
	require.Len(t, questions, 1)

	q := questions[0]
	assert.Equal(t, "Stolica Polski?", q.Text)
	assert.Equal(t, "B", q.CorrectKey)

	label, ok := q.Options.Label("B")
	assert.True(t, ok)
	assert.Equal(t, "Warszawa", label)
	assert.False(t, q.Options.Has("C"))

	out, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t, doc[1:len(doc)-1], string(out))
}

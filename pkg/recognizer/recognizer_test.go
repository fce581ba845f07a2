package recognizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranscript(t *testing.T) {
	tests := []struct {
		name     string
		pages    []Page
		wantText string
		wantConf float64
		wantErr  bool
	}{
		{
			name: "two pages concatenated in order",
			pages: []Page{
				{Text: "front side", Confidence: 90},
				{Text: "back side", Confidence: 70},
			},
			wantText: "front side\nback side\n",
			wantConf: 0.80,
		},
		{
			name:     "single page",
			pages:    []Page{{Text: "hello", Confidence: 55}},
			wantText: "hello\n",
			wantConf: 0.55,
		},
		{
			name:    "blank pages yield NoTextError",
			pages:   []Page{{Text: "", Confidence: 0}, {Text: "  ", Confidence: 0}},
			wantErr: true,
		},
		{
			name: "confidence clamped to one",
			pages: []Page{
				{Text: "x", Confidence: 150},
			},
			wantText: "x\n",
			wantConf: 1.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, conf, err := Transcript(tt.pages)
			if tt.wantErr {
				var noText *NoTextError
				require.ErrorAs(t, err, &noText)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, text)
			assert.InDelta(t, tt.wantConf, conf, 1e-9)
			assert.GreaterOrEqual(t, conf, 0.0)
			assert.LessOrEqual(t, conf, 1.0)
		})
	}
}

func TestLanguageModel(t *testing.T) {
	tests := []struct {
		detected string
		want     string
	}{
		{"en", "eng"},
		{"hi", "hin+eng"},
		{"ta", "tam+eng"},
		{"te", "tel+eng"},
		{"kn", "kan+eng"},
		{"ml", "mal+eng"},
		{"fr", "eng"},
		{"", "eng"},
	}

	for _, tt := range tests {
		t.Run(tt.detected, func(t *testing.T) {
			assert.Equal(t, tt.want, LanguageModel(tt.detected))
		})
	}
}

package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoiceRepromptsUntilValid(t *testing.T) {
	in := strings.NewReader("mars\n  CHICAGO  \n")
	var out bytes.Buffer
	p := NewPrompter(in, &out)

	got, err := p.Choice("Enter city: ", []string{"chicago", "washington"}, "Invalid city.")
	require.NoError(t, err)
	assert.Equal(t, "chicago", got, "answers are trimmed and lowercased")
	assert.Equal(t, 1, strings.Count(out.String(), "Invalid city."))
	assert.Equal(t, 2, strings.Count(out.String(), "Enter city: "))
}

func TestChoiceInputClosed(t *testing.T) {
	in := strings.NewReader("nope\n")
	var out bytes.Buffer
	p := NewPrompter(in, &out)

	_, err := p.Choice("Pick: ", []string{"yes"}, "Invalid.")
	require.ErrorIs(t, err, ErrInputClosed)
}

func TestYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"yes\n", true},
		{" YES \n", true},
		{"no\n", false},
		{"y\n", false}, // only a literal yes counts
		{"\n", false},
	}
	for _, tt := range tests {
		p := NewPrompter(strings.NewReader(tt.input), &bytes.Buffer{})
		got, err := p.YesNo("Continue? ")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestYesNoInputClosed(t *testing.T) {
	p := NewPrompter(strings.NewReader(""), &bytes.Buffer{})
	_, err := p.YesNo("Continue? ")
	require.ErrorIs(t, err, ErrInputClosed)
}

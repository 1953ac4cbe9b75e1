package textenc

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertToUTF8(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		encoding string
		want     string
	}{
		{name: "utf8 passthrough", input: []byte("1+2"), encoding: "utf8", want: "1+2"},
		{name: "utf8 bom stripped", input: []byte("\xEF\xBB\xBF7-1"), encoding: "utf8", want: "7-1"},
		{name: "cp437 superscript two", input: []byte("1+2\xFD"), encoding: "cp437", want: "1+2²"},
		{name: "latin1 e acute", input: []byte("3\xE9-1"), encoding: "iso-8859-1", want: "3é-1"},
		{name: "cp850 ascii", input: []byte("10-4"), encoding: "cp850", want: "10-4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertToUTF8(tt.input, tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestConvertToUTF8_Unsupported(t *testing.T) {
	_, err := ConvertToUTF8([]byte("1"), "ebcdic")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported encoding")
}

func TestNewReader(t *testing.T) {
	r, err := NewReader(strings.NewReader("4\xFD+1"), "cp437")
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "4²+1", string(got))

	_, err = NewReader(strings.NewReader(""), "koi8")
	assert.Error(t, err)
}

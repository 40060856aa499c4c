package llm

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func TestDecodeDataURL(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(pngHeader)

	b, mimeType, err := decodeDataURL("data:image/png;base64," + payload)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, b)
	assert.Equal(t, "image/png", mimeType)
}

func TestDecodeDataURLBareBase64DetectsMIME(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString(pngHeader)

	b, mimeType, err := decodeDataURL(payload)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, b)
	assert.Equal(t, "image/png", mimeType)
}

func TestDecodeDataURLWithoutComma(t *testing.T) {
	_, _, err := decodeDataURL("data:image/png;base64")
	assert.Error(t, err)
}

func TestDecodeDataURLInvalidBase64(t *testing.T) {
	_, _, err := decodeDataURL("data:image/png;base64,!!!not-base64!!!")
	assert.Error(t, err)
}

func TestWithSchemaOption(t *testing.T) {
	schema := map[string]interface{}{"type": "object"}
	var opts Options
	WithSchema("photo_evaluation", schema)(&opts)
	assert.Equal(t, "photo_evaluation", opts.SchemaName)
	assert.Equal(t, schema, opts.Schema)
}

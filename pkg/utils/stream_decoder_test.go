package utils

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sseLine(content string) string {
	return fmt.Sprintf("data: {\"choices\":[{\"delta\":{\"content\":%q}}]}\n\n", content)
}

func TestStreamDecoderAssemblesSplitObject(t *testing.T) {
	var body strings.Builder
	body.WriteString(sseLine(`{"a"`))
	body.WriteString(sseLine(`: 1`))
	body.WriteString(sseLine(`}`))
	body.WriteString("data: [DONE]\n\n")

	var chunks []map[string]interface{}
	err := NewStreamDecoder(strings.NewReader(body.String())).Decode(func(obj map[string]interface{}) {
		chunks = append(chunks, obj)
	})
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, float64(1), chunks[0]["a"])
}

func TestStreamDecoderEmitsMultipleObjects(t *testing.T) {
	var body strings.Builder
	body.WriteString(sseLine(`{"first": true}`))
	body.WriteString(sseLine(`{"second"`))
	body.WriteString(sseLine(`: true}`))
	body.WriteString("data: [DONE]\n\n")

	var chunks []map[string]interface{}
	err := NewStreamDecoder(strings.NewReader(body.String())).Decode(func(obj map[string]interface{}) {
		chunks = append(chunks, obj)
	})
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assert.Equal(t, true, chunks[0]["first"])
	assert.Equal(t, true, chunks[1]["second"])
}

func TestStreamDecoderIgnoresEmptyDeltasAndOtherLines(t *testing.T) {
	var body strings.Builder
	body.WriteString(": keep-alive comment\n\n")
	body.WriteString("data: {\"choices\":[]}\n\n")
	body.WriteString(sseLine(""))
	body.WriteString(sseLine(`{"ok": true}`))
	body.WriteString("data: [DONE]\n\n")

	var chunks []map[string]interface{}
	err := NewStreamDecoder(strings.NewReader(body.String())).Decode(func(obj map[string]interface{}) {
		chunks = append(chunks, obj)
	})
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, true, chunks[0]["ok"])
}

func TestStreamDecoderMalformedPayload(t *testing.T) {
	body := "data: {not json}\n\n"

	err := NewStreamDecoder(strings.NewReader(body)).Decode(func(map[string]interface{}) {
		t.Fatal("no chunk should be emitted")
	})
	assert.ErrorIs(t, err, ErrStreamProtocol)
}

func TestStreamDecoderUnbalancedBufferStalls(t *testing.T) {
	// A lone '{' inside a string value keeps the counts unbalanced, so the
	// decoder never emits and fails when forced to parse the residue.
	var body strings.Builder
	body.WriteString(sseLine(`{"note": "brace {"`))
	body.WriteString("data: [DONE]\n\n")

	var emitted int
	err := NewStreamDecoder(strings.NewReader(body.String())).Decode(func(map[string]interface{}) {
		emitted++
	})
	assert.ErrorIs(t, err, ErrStreamProtocol)
	assert.Zero(t, emitted)
}

func TestStreamDecoderFlushesResidualOnEOF(t *testing.T) {
	// No [DONE] sentinel; whatever accumulated is treated as the final object.
	body := sseLine(`{"partial": "yes"}`)

	var chunks []map[string]interface{}
	err := NewStreamDecoder(strings.NewReader(body)).Decode(func(obj map[string]interface{}) {
		chunks = append(chunks, obj)
	})
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, "yes", chunks[0]["partial"])
}

func TestStreamDecoderEmptyStream(t *testing.T) {
	err := NewStreamDecoder(strings.NewReader("")).Decode(func(map[string]interface{}) {
		t.Fatal("no chunk should be emitted")
	})
	assert.NoError(t, err)
}

package utils

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const (
	streamDataPrefix   = "data: "
	streamDoneSentinel = "[DONE]"
)

// StreamDecoder reassembles a server-sent chat completion stream into
// complete JSON objects. Token deltas accumulate in a buffer; a parse is
// attempted only once the counts of '{' and '}' in the buffer match, which
// keeps the hot path to two strings.Count calls per delta.
//
// Known limitation: the brace counting is a heuristic. A string value
// containing a literal '{' with no matching '}' elsewhere keeps the buffer
// unbalanced and the decoder never emits. Model output for this schema does
// not normally carry braces in prose, so the simple framing is kept.
type StreamDecoder struct {
	reader     io.Reader
	jsonBuffer strings.Builder
}

func NewStreamDecoder(r io.Reader) *StreamDecoder {
	return &StreamDecoder{reader: r}
}

// Decode consumes the stream until the [DONE] sentinel or EOF, invoking
// onChunk for every syntactically complete object assembled from the token
// deltas. A data line whose payload is not decodable aborts the read; an
// incompletely accumulated JSON fragment does not.
func (d *StreamDecoder) Decode(onChunk func(map[string]interface{})) error {
	scanner := bufio.NewScanner(d.reader)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, streamDataPrefix) {
			continue
		}

		payload := strings.TrimSpace(line[len(streamDataPrefix):])
		if payload == streamDoneSentinel {
			return d.flushResidual(onChunk)
		}

		var chunk openai.ChatCompletionStreamResponse
		if err := json.Unmarshal([]byte(payload), &chunk); err != nil {
			return fmt.Errorf("%w: %v", ErrStreamProtocol, err)
		}

		if len(chunk.Choices) == 0 {
			continue
		}
		content := chunk.Choices[0].Delta.Content
		if content == "" {
			continue
		}

		d.jsonBuffer.WriteString(content)
		d.tryEmit(onChunk)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrModelTransport, err)
	}

	// Stream ended without [DONE]; treat whatever accumulated as final.
	return d.flushResidual(onChunk)
}

// tryEmit parses the buffer when the brace counts balance. Parse failures are
// expected for fragments that merely look balanced and reset nothing.
func (d *StreamDecoder) tryEmit(onChunk func(map[string]interface{})) {
	buf := d.jsonBuffer.String()
	open := strings.Count(buf, "{")
	closed := strings.Count(buf, "}")
	if open == 0 || open != closed {
		return
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(buf), &obj); err != nil {
		return
	}

	onChunk(obj)
	d.jsonBuffer.Reset()
}

func (d *StreamDecoder) flushResidual(onChunk func(map[string]interface{})) error {
	buf := strings.TrimSpace(d.jsonBuffer.String())
	if buf == "" {
		return nil
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(buf), &obj); err != nil {
		return fmt.Errorf("%w: parsing final buffer: %v", ErrStreamProtocol, err)
	}

	onChunk(obj)
	d.jsonBuffer.Reset()
	return nil
}

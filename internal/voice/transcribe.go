package voice

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNoTranscriber means no transcription key is configured. Callers
// surface this prominently: it is a capability problem, not a bad input.
var ErrNoTranscriber = errors.New("voice: transcription not configured (set OPENAI_API_KEY or voice.openai_api_key)")

// Transcriber converts recorded audio into a transcript via Whisper.
type Transcriber struct {
	client *openai.Client
}

// NewTranscriber returns nil if the key is empty.
func NewTranscriber(apiKey string) *Transcriber {
	if apiKey == "" {
		return nil
	}
	return &Transcriber{client: openai.NewClient(apiKey)}
}

// Transcribe sends the audio file and returns the recognized text.
func (t *Transcriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if t == nil {
		return "", ErrNoTranscriber
	}
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Language: "en",
	})
	if err != nil {
		return "", fmt.Errorf("voice: transcription failed: %w", err)
	}
	return resp.Text, nil
}

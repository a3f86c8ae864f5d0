package client

import (
	"context"
	"fmt"

	texttospeech "cloud.google.com/go/texttospeech/apiv1"
	texttospeechpb "google.golang.org/genproto/googleapis/cloud/texttospeech/v1"
)

// SpeechAPI wraps the Google Cloud TTS client for pronunciation voice notes.
// Credentials come from GOOGLE_APPLICATION_CREDENTIALS.
type SpeechAPI struct {
	client *texttospeech.Client
}

func NewSpeechAPI(ctx context.Context) (*SpeechAPI, error) {
	c, err := texttospeech.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create tts client: %w", err)
	}
	return &SpeechAPI{client: c}, nil
}

// Standard voices per supported language.
var voiceNames = map[string]string{
	"es-ES": "es-ES-Standard-A",
	"en-US": "en-US-Standard-F",
}

// Synthesize renders text as OGG/Opus audio, which Telegram accepts as a
// voice note.
func (s *SpeechAPI) Synthesize(ctx context.Context, text, languageCode string) ([]byte, error) {
	req := &texttospeechpb.SynthesizeSpeechRequest{
		Input: &texttospeechpb.SynthesisInput{
			InputSource: &texttospeechpb.SynthesisInput_Text{Text: text},
		},
		Voice: &texttospeechpb.VoiceSelectionParams{
			LanguageCode: languageCode,
			Name:         voiceNames[languageCode],
		},
		AudioConfig: &texttospeechpb.AudioConfig{
			AudioEncoding: texttospeechpb.AudioEncoding_OGG_OPUS,
			SpeakingRate:  0.85,
		},
	}

	resp, err := s.client.SynthesizeSpeech(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("SynthesizeSpeech: %w", err)
	}
	return resp.AudioContent, nil
}

func (s *SpeechAPI) Close() error {
	return s.client.Close()
}

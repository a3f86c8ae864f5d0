package client

import (
	"context"
	"time"
)

type Clients struct {
	*LinguaAPI
	*SpeechAPI
}

// InitClients builds the remote API clients. Speech is optional; when
// disabled the SpeechAPI stays nil and pronunciation buttons are hidden.
func InitClients(ctx context.Context, baseURL string, timeout time.Duration, withSpeech bool) (Clients, error) {
	clients := Clients{LinguaAPI: NewLinguaAPI(baseURL, timeout)}
	if withSpeech {
		speech, err := NewSpeechAPI(ctx)
		if err != nil {
			return Clients{}, err
		}
		clients.SpeechAPI = speech
	}
	return clients, nil
}

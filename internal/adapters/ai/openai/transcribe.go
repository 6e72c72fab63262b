package openai

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"strings"

	perr "voicejournal/internal/platform/errors"
)

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads audio bytes to the transcription endpoint and returns
// the recognized text. format is the container hint used for the upload
// filename, e.g. "webm" or "mp3"
func (c *Client) Transcribe(ctx context.Context, audio []byte, format string) (string, error) {
	if len(audio) == 0 {
		return "", perr.InvalidArgf("openai: empty audio payload")
	}
	format = strings.TrimPrefix(strings.TrimSpace(format), ".")
	if format == "" {
		format = "webm"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fw, err := mw.CreateFormFile("file", "audio."+format)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "openai: build multipart")
	}
	if _, err := fw.Write(audio); err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "openai: write audio part")
	}
	if err := mw.WriteField("model", c.cfg.TranscriptionModel); err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "openai: write model field")
	}
	if err := mw.Close(); err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "openai: finish multipart")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/v1/audio/transcriptions"), &buf)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "openai: build request")
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var out transcriptionResponse
	if err := c.do(ctx, req, &out); err != nil {
		return "", err
	}
	text := strings.TrimSpace(out.Text)
	if text == "" {
		return "", perr.Collaboratorf("openai: empty transcription")
	}
	return text, nil
}

package utils

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func TestDetectImageMIME(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"jpeg", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00}, "image/jpeg"},
		{"png", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A}, "image/png"},
		{"webp", []byte("RIFF\x00\x00\x00\x00WEBP"), "image/webp"},
		{"gif", []byte("GIF89a"), "image/gif"},
		{"unknown", []byte("hello"), "image/jpeg"},
		{"empty", nil, "image/jpeg"},
		{"short jpeg prefix", []byte{0xFF, 0xD8}, "image/jpeg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectImageMIME(tt.in); got != tt.want {
				t.Errorf("DetectImageMIME() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"fenced", "Here you go:\n```json\n{\"a\": 1}\n```\nthanks", `{"a": 1}`},
		{"bare", `  {"a": 1}  `, `{"a": 1}`},
		{"embedded", `The result is {"a": {"b": 2}} as requested.`, `{"a": {"b": 2}}`},
		{"fenced wins over earlier brace", "{x} then ```json\n{\"ok\":true}\n```", `{"ok":true}`},
		{"leading object with trailing note", "{\"a\": 1}\n\nNote: portions are {rough} estimates.", `{"a": 1}`},
		{"fence body starts with a label", "```json\nResult: {\"a\": 1}\n```", `{"a": 1}`},
		{"broken fence then good fence", "```json\n{\"a\": }\n```\nretry:\n```json\n{\"b\": 2}\n```", `{"b": 2}`},
		{"prose on both sides", "Sure! {\"a\": [1, 2]} Hope this helps.", `{"a": [1, 2]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tt.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ExtractJSONObject() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractJSONObject_InvalidCandidateReturned(t *testing.T) {
	got, err := ExtractJSONObject(`{"detected_foods": [}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != `{"detected_foods": [}` {
		t.Errorf("got %q", got)
	}
}

func TestExtractJSONObject_None(t *testing.T) {
	_, err := ExtractJSONObject("I could not identify any food.")
	if !errors.Is(err, ErrNoJSONObject) {
		t.Fatalf("expected ErrNoJSONObject, got %v", err)
	}
}

func TestJWTRoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	tok, err := GenerateJWT(secret, "session", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	sub, err := ParseJWT(secret, tok)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if sub != "session" {
		t.Errorf("subject = %q, want session", sub)
	}

	if _, err := ParseJWT([]byte("other"), tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestJWTExpired(t *testing.T) {
	secret := []byte("test-secret")
	tok, err := GenerateJWT(secret, "session", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(secret, tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

type stubS3 struct {
	input *s3.PutObjectInput
	body  []byte
	err   error
}

func (s *stubS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	s.input = in
	s.body, _ = io.ReadAll(in.Body)
	if s.err != nil {
		return nil, s.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3ImageStoreUpload(t *testing.T) {
	client := &stubS3{}
	store := NewS3ImageStore(client, "meals", "https://cdn.example.com/")

	png := []byte{0x89, 0x50, 0x4E, 0x47, 1, 2, 3}
	url, err := store.Upload(context.Background(), "user-1", png)
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}

	if *client.input.Bucket != "meals" {
		t.Errorf("bucket = %q", *client.input.Bucket)
	}
	if *client.input.ContentType != "image/png" {
		t.Errorf("content type = %q", *client.input.ContentType)
	}
	key := *client.input.Key
	if !strings.HasPrefix(key, "meal-images/user-1-") || !strings.HasSuffix(key, ".png") {
		t.Errorf("unexpected key %q", key)
	}
	if url != "https://cdn.example.com/"+key {
		t.Errorf("url = %q", url)
	}
	if string(client.body) != string(png) {
		t.Error("uploaded body differs from input")
	}
}

func TestS3ImageStoreUploadError(t *testing.T) {
	store := NewS3ImageStore(&stubS3{err: errors.New("denied")}, "meals", "")
	if _, err := store.Upload(context.Background(), "u", []byte("x")); err == nil {
		t.Fatal("expected error")
	}
}

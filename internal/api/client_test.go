package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestAnalyzeTextSuccess(t *testing.T) {
	var gotPath, gotContentType, gotRequestID string
	var gotBody map[string]string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotRequestID = r.Header.Get("X-Request-ID")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("failed to decode request body: %v", err)
		}
		json.NewEncoder(w).Encode(Result{Emotion: "happy", Score: 80, Caption: "a bright note"})
	}))
	defer server.Close()

	client := New(server.URL)
	result, err := client.AnalyzeText(context.Background(), "feeling great today")
	if err != nil {
		t.Fatalf("AnalyzeText failed: %v", err)
	}

	if gotPath != "/api/analyze/text" {
		t.Errorf("expected text endpoint, got %s", gotPath)
	}
	if gotContentType != "application/json" {
		t.Errorf("expected JSON content type, got %s", gotContentType)
	}
	if gotRequestID == "" {
		t.Error("expected an X-Request-ID header")
	}
	if gotBody["text"] != "feeling great today" {
		t.Errorf("expected text payload, got %v", gotBody)
	}
	if result.Emotion != "happy" || result.Score != 80 || result.Caption != "a bright note" {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestAnalyzeTextNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model unavailable", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := New(server.URL)
	_, err := client.AnalyzeText(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected an error for a 500 response")
	}

	var reqErr *RequestError
	if !errors.As(err, &reqErr) {
		t.Fatalf("expected RequestError, got %T: %v", err, err)
	}
	if reqErr.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", reqErr.StatusCode)
	}
}

func TestAnalyzeTextTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := New(server.URL)
	_, err := client.AnalyzeText(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected an error when the backend is unreachable")
	}

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected NetworkError, got %T: %v", err, err)
	}
}

func TestAnalyzeImageMultipart(t *testing.T) {
	imgPath := filepath.Join(t.TempDir(), "selfie.jpg")
	imgData := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	if err := os.WriteFile(imgPath, imgData, 0600); err != nil {
		t.Fatalf("failed to write test image: %v", err)
	}

	var gotPath, gotFilename string
	var gotFile []byte

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		file, header, err := r.FormFile("image")
		if err != nil {
			t.Errorf("expected multipart field 'image': %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		defer file.Close()
		gotFilename = header.Filename
		gotFile, _ = io.ReadAll(file)
		json.NewEncoder(w).Encode(Result{Emotion: "surprised", Score: 65})
	}))
	defer server.Close()

	client := New(server.URL)
	result, err := client.AnalyzeImage(context.Background(), imgPath)
	if err != nil {
		t.Fatalf("AnalyzeImage failed: %v", err)
	}

	if gotPath != "/api/analyze/image" {
		t.Errorf("expected image endpoint, got %s", gotPath)
	}
	if gotFilename != "selfie.jpg" {
		t.Errorf("expected original filename, got %s", gotFilename)
	}
	if string(gotFile) != string(imgData) {
		t.Error("uploaded bytes do not match the source file")
	}
	if result.Emotion != "surprised" || result.Score != 65 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestAnalyzeImageMissingFile(t *testing.T) {
	client := New("http://localhost:1") // must not be reached
	_, err := client.AnalyzeImage(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A 404 still proves the origin is reachable.
		http.NotFound(w, r)
	}))
	defer server.Close()

	client := New(server.URL)
	if err := client.Ping(context.Background()); err != nil {
		t.Errorf("Ping should treat any HTTP response as reachable: %v", err)
	}

	server.Close()
	if err := client.Ping(context.Background()); err == nil {
		t.Error("Ping should fail once the backend is gone")
	}
}

func TestDefaultBaseURL(t *testing.T) {
	if New("").BaseURL() != DefaultBaseURL {
		t.Errorf("empty base URL should fall back to %s", DefaultBaseURL)
	}
}

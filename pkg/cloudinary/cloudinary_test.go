package cloudinary

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytsmartz/leads_backend/config"
)

func testClient(baseURL string) *Client {
	return New(config.CloudinaryConfig{
		CloudName:    "demo",
		UploadPreset: "unsigned_leads",
		BaseURL:      baseURL,
	})
}

func TestUpload_Success(t *testing.T) {
	var gotPath, gotPreset, gotFilename, gotContent string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path

		if err := r.ParseMultipartForm(10 << 20); err != nil {
			t.Fatalf("parse multipart: %v", err)
		}
		gotPreset = r.FormValue("upload_preset")

		f, fh, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer f.Close()
		gotFilename = fh.Filename
		b, _ := io.ReadAll(f)
		gotContent = string(b)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/raw/upload/v1/resume.docx","public_id":"resume","bytes":11,"format":"docx"}`))
	}))
	defer srv.Close()

	res, err := testClient(srv.URL).Upload(context.Background(), "resume.docx", strings.NewReader("hello world"))
	if err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if gotPath != "/demo/auto/upload" {
		t.Errorf("path = %q", gotPath)
	}
	if gotPreset != "unsigned_leads" {
		t.Errorf("upload_preset = %q", gotPreset)
	}
	if gotFilename != "resume.docx" || gotContent != "hello world" {
		t.Errorf("file part = %q / %q", gotFilename, gotContent)
	}
	if res.SecureURL != "https://res.cloudinary.com/demo/raw/upload/v1/resume.docx" {
		t.Errorf("SecureURL = %q", res.SecureURL)
	}
}

func TestUpload_ProviderRejects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"Invalid upload preset"}}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Upload(context.Background(), "resume.docx", strings.NewReader("x"))
	if !errors.Is(err, ErrUploadRejected) {
		t.Errorf("Upload() error = %v, want ErrUploadRejected", err)
	}
}

func TestUpload_MissingSecureURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"public_id":"resume"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).Upload(context.Background(), "resume.docx", strings.NewReader("x"))
	if !errors.Is(err, ErrUploadRejected) {
		t.Errorf("Upload() error = %v, want ErrUploadRejected", err)
	}
}

func TestUpload_NotConfigured(t *testing.T) {
	c := New(config.CloudinaryConfig{})
	if c.IsConfigured() {
		t.Error("IsConfigured() = true for empty config")
	}

	_, err := c.Upload(context.Background(), "resume.docx", strings.NewReader("x"))
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("Upload() error = %v, want ErrNotConfigured", err)
	}
}

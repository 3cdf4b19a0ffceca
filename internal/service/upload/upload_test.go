package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/bytsmartz/leads_backend/config"
	"github.com/bytsmartz/leads_backend/pkg/cloudinary"
)

const docxMime = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// fileHeader builds a *multipart.FileHeader the way fiber hands one to the
// handler: by round-tripping a multipart request body.
func fileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	hdr := make(textproto.MIMEHeader)
	hdr.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	hdr.Set("Content-Type", contentType)

	part, err := mw.CreatePart(hdr)
	if err != nil {
		t.Fatalf("create part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	_, fh, err := req.FormFile("file")
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	return fh
}

func newService(t *testing.T, handler http.HandlerFunc) (Service, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	storage := cloudinary.New(config.CloudinaryConfig{
		CloudName:    "demo",
		UploadPreset: "unsigned_leads",
		BaseURL:      srv.URL,
	})
	return New(storage), srv
}

func TestUploadResume_Success(t *testing.T) {
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/raw/upload/v1/resume.docx"}`))
	})

	fh := fileHeader(t, "resume.docx", docxMime, []byte("resume body"))

	res, err := svc.UploadResume(context.Background(), fh)
	if err != nil {
		t.Fatalf("UploadResume() error = %v", err)
	}
	if res.URL != "https://res.cloudinary.com/demo/raw/upload/v1/resume.docx" {
		t.Errorf("URL = %q", res.URL)
	}
	if res.FileName != "resume.docx" || res.MimeType != docxMime {
		t.Errorf("metadata = %+v", res)
	}
	if res.Size != int64(len("resume body")) {
		t.Errorf("Size = %d", res.Size)
	}
}

func TestUploadResume_RejectsBeforeNetwork(t *testing.T) {
	var calls int
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/x"}`))
	})

	tests := []struct {
		name    string
		fh      *multipart.FileHeader
		wantErr error
	}{
		{
			name:    "png image",
			fh:      fileHeader(t, "photo.png", "image/png", []byte("not a doc")),
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "pdf",
			fh:      fileHeader(t, "resume.pdf", "application/pdf", []byte("%PDF")),
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "oversize docx",
			fh:      fileHeader(t, "resume.docx", docxMime, bytes.Repeat([]byte("a"), MaxResumeSize+1)),
			wantErr: ErrTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Twice: the same bad file is rejected identically each time.
			for i := 0; i < 2; i++ {
				_, err := svc.UploadResume(context.Background(), tt.fh)
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("attempt %d: error = %v, want %v", i+1, err, tt.wantErr)
				}
			}
		})
	}

	if calls != 0 {
		t.Errorf("storage called %d times for rejected files", calls)
	}
}

func TestUploadResume_AcceptsByExtensionWhenMimeGeneric(t *testing.T) {
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"secure_url":"https://res.cloudinary.com/demo/raw/upload/v1/resume.doc"}`))
	})

	// Browsers sometimes send application/octet-stream for .doc files.
	fh := fileHeader(t, "resume.doc", "application/octet-stream", []byte("doc body"))

	if _, err := svc.UploadResume(context.Background(), fh); err != nil {
		t.Fatalf("UploadResume() error = %v", err)
	}
}

func TestUploadResume_NotConfigured(t *testing.T) {
	svc := New(cloudinary.New(config.CloudinaryConfig{}))

	fh := fileHeader(t, "resume.docx", docxMime, []byte("resume body"))

	_, err := svc.UploadResume(context.Background(), fh)
	if !errors.Is(err, cloudinary.ErrNotConfigured) {
		t.Errorf("UploadResume() error = %v, want ErrNotConfigured", err)
	}
}

func TestUploadResume_ProviderFailure(t *testing.T) {
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	})

	fh := fileHeader(t, "resume.docx", docxMime, []byte("resume body"))

	_, err := svc.UploadResume(context.Background(), fh)
	if !errors.Is(err, cloudinary.ErrUploadRejected) {
		t.Errorf("UploadResume() error = %v, want ErrUploadRejected", err)
	}
}

func TestValidateResume(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		mime     string
		size     int64
		wantErr  error
	}{
		{"docx by mime", "anything.bin", docxMime, 100, nil},
		{"doc by mime", "anything.bin", "application/msword", 100, nil},
		{"docx by extension", "resume.DOCX", "application/octet-stream", 100, nil},
		{"at size limit", "resume.docx", docxMime, MaxResumeSize, nil},
		{"over size limit", "resume.docx", docxMime, MaxResumeSize + 1, ErrTooLarge},
		{"plain text", "resume.txt", "text/plain", 100, ErrUnsupportedType},
		{"no extension no mime", "resume", "", 100, ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResume(tt.filename, tt.mime, tt.size)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateResume() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

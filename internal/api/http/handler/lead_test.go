package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"

	"github.com/bytsmartz/leads_backend/internal/service/lead"
)

type fakeLeadService struct {
	got    *lead.Submission
	result lead.Result
}

func (f *fakeLeadService) Submit(_ context.Context, sub lead.Submission) lead.Result {
	f.got = &sub
	return f.result
}

func newLeadApp(svc lead.Service) *fiber.App {
	app := fiber.New()
	app.Post("/api/contact", NewLeadHandler(svc).Submit)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func TestSubmit_OK(t *testing.T) {
	svc := &fakeLeadService{result: lead.Result{Success: true, Message: "Message sent successfully"}}
	app := newLeadApp(svc)

	resp := postJSON(t, app, "/api/contact", `{
		"name": "John Doe",
		"email": "john@example.com",
		"phone": "+91 98765 43210",
		"message": "Hello"
	}`)

	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["success"] != true || body["message"] != "Message sent successfully" {
		t.Errorf("body = %v", body)
	}

	if svc.got == nil {
		t.Fatal("service not called")
	}
	if svc.got.Kind != lead.KindContact || svc.got.Subject != "New Inquiry" {
		t.Errorf("defaults not applied before dispatch: %+v", svc.got)
	}
}

func TestSubmit_ValidationErrors(t *testing.T) {
	svc := &fakeLeadService{result: lead.Result{Success: true}}
	app := newLeadApp(svc)

	resp := postJSON(t, app, "/api/contact", `{"name":"John Doe","email":"not-an-email"}`)

	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["success"] != false || body["message"] != "Validation failed" {
		t.Errorf("body = %v", body)
	}

	errs, ok := body["errors"].(map[string]any)
	if !ok {
		t.Fatalf("errors field = %v", body["errors"])
	}
	if _, has := errs["email"]; !has {
		t.Errorf("missing email error: %v", errs)
	}
	if _, has := errs["phone"]; !has {
		t.Errorf("missing phone error: %v", errs)
	}

	if svc.got != nil {
		t.Error("service called for an invalid submission")
	}
}

func TestSubmit_ResumeRequiredForJobApplication(t *testing.T) {
	svc := &fakeLeadService{result: lead.Result{Success: true}}
	app := newLeadApp(svc)

	resp := postJSON(t, app, "/api/contact", `{
		"type": "JOB_APPLICATION",
		"name": "John Doe",
		"email": "john@example.com",
		"phone": "+91 98765 43210"
	}`)

	if resp.StatusCode != fiber.StatusUnprocessableEntity {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	errs := decodeBody(t, resp)["errors"].(map[string]any)
	if _, has := errs["resume"]; !has {
		t.Errorf("missing resume error: %v", errs)
	}
}

func TestSubmit_InvalidBody(t *testing.T) {
	app := newLeadApp(&fakeLeadService{})

	resp := postJSON(t, app, "/api/contact", `not json`)

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["success"] != false || body["message"] != "Invalid request body" {
		t.Errorf("body = %v", body)
	}
}

func TestSubmit_DispatchFailure(t *testing.T) {
	svc := &fakeLeadService{result: lead.Result{Success: false, Message: "Failed to send message"}}
	app := newLeadApp(svc)

	resp := postJSON(t, app, "/api/contact", `{
		"name": "John Doe",
		"email": "john@example.com",
		"phone": "+91 98765 43210"
	}`)

	if resp.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["success"] != false || body["message"] != "Failed to send message" {
		t.Errorf("body = %v", body)
	}
}

package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	phttp "polyglot/internal/platform/net/http"
	perr "polyglot/internal/platform/errors"
	"polyglot/internal/services/detect/domain"
	kit "polyglot/internal/platform/testkit"
)

type fakeSvc struct {
	err   error
	lastK int
}

func (f *fakeSvc) HandleRequest(_ context.Context, raw string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if strings.TrimSpace(raw) == "" {
		return domain.Prompt, nil
	}
	return "Language: en\nConfidence: 88.00%", nil
}

func (f *fakeSvc) Detect(_ context.Context, in domain.DetectInput) (domain.DetectOutput, error) {
	if f.err != nil {
		return domain.DetectOutput{}, f.err
	}
	f.lastK = in.Top
	return domain.DetectOutput{Language: "en", Confidence: 0.88, Output: "Language: en\nConfidence: 88.00%"}, nil
}

func newMux(s domain.DetectorPort) *chi.Mux {
	m := chi.NewRouter()
	r := phttp.AdaptChi(m)
	RegisterForm(r, "/", s)
	r.Route("/detect", func(rr phttp.Router) { Register(rr, s) })
	return m
}

func do(t *testing.T, h stdhttp.Handler, method, path, ctype, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if ctype != "" {
		req.Header.Set("Content-Type", ctype)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestDetectJSON_OK(t *testing.T) {
	s := &fakeSvc{}
	rec := do(t, newMux(s), "POST", "/detect/", "application/json", `{"text":"hello","top":3}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d body=%s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data domain.DetectOutput `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.Data.Language != "en" || s.lastK != 3 {
		t.Fatalf("unexpected %+v k=%d", env.Data, s.lastK)
	}
}

func TestDetectJSON_Validation(t *testing.T) {
	rec := do(t, newMux(&fakeSvc{}), "POST", "/detect/", "application/json", `{"text":"hello","top":99}`)
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	rec = do(t, newMux(&fakeSvc{}), "POST", "/detect/", "application/json", `{"text":`)
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("bad json status = %d, want 400", rec.Code)
	}
}

func TestDetectJSON_RuntimeFailure(t *testing.T) {
	s := &fakeSvc{err: perr.Wrap(errors.New("boom"), perr.ErrorCodeTokenizer, "tokenize cjk")}
	rec := do(t, newMux(s), "POST", "/detect/", "application/json", `{"text":"中文"}`)
	if rec.Code != stdhttp.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	kit.MustContain(t, rec.Body.String(), `"error"`)
}

func TestDetectText_Plain(t *testing.T) {
	rec := do(t, newMux(&fakeSvc{}), "POST", "/detect/text", "application/json", `{"text":"hello"}`)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("content type = %q", ct)
	}
	if rec.Body.String() != "Language: en\nConfidence: 88.00%" {
		t.Fatalf("body = %q", rec.Body.String())
	}
}

func TestDetectText_Failure(t *testing.T) {
	rec := do(t, newMux(&fakeSvc{err: errors.New("x")}), "POST", "/detect/text", "application/json", `{"text":"hello"}`)
	if rec.Code != stdhttp.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}

func TestForm_Show(t *testing.T) {
	rec := do(t, newMux(&fakeSvc{}), "GET", "/", "", "")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	kit.MustContain(t, body, "Input Text")
	kit.MustContain(t, body, `placeholder="Enter text here..."`)
	kit.MustContain(t, body, `rows="5"`)
	if strings.Contains(body, `id="output"`) {
		t.Fatal("empty form should not render output")
	}
}

func TestForm_Submit(t *testing.T) {
	form := url.Values{"text": {"<b>hi</b>"}}.Encode()
	rec := do(t, newMux(&fakeSvc{}), "POST", "/", "application/x-www-form-urlencoded", form)
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	body := rec.Body.String()
	kit.MustContain(t, body, "Language: en")
	kit.MustContain(t, body, "&lt;b&gt;hi&lt;/b&gt;")
}

func TestForm_SubmitBlank(t *testing.T) {
	rec := do(t, newMux(&fakeSvc{}), "POST", "/", "application/x-www-form-urlencoded", "text=+++")
	kit.MustContain(t, rec.Body.String(), domain.Prompt)
}

func TestForm_SubmitFailure(t *testing.T) {
	rec := do(t, newMux(&fakeSvc{err: errors.New("kaboom")}), "POST", "/", "application/x-www-form-urlencoded", "text=abc")
	if rec.Code != stdhttp.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	body := rec.Body.String()
	kit.MustContain(t, body, `class="error"`)
	if strings.Contains(body, "kaboom") {
		t.Fatal("internal error text must not leak into the page")
	}
}

func TestDetectJSON_ValidationNamesField(t *testing.T) {
	rec := do(t, newMux(&fakeSvc{}), "POST", "/detect/", "application/json", `{"text":"hello","top":0.5}`)
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("non integer top should be a JSON error, got %d", rec.Code)
	}
	rec = do(t, newMux(&fakeSvc{}), "POST", "/detect/", "application/json", `{"text":"hello","top":21}`)
	kit.MustContain(t, rec.Body.String(), `"field":"top"`)
}

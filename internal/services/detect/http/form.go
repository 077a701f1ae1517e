package http

import (
	_ "embed"
	"html/template"
	stdhttp "net/http"

	"polyglot/internal/modkit/httpkit"
	"polyglot/internal/platform/logger"
	"polyglot/internal/services/detect/domain"
)

//go:embed form.html
var formHTML string

var formTmpl = template.Must(template.New("form").Parse(formHTML))

// maxFormBytes caps the form body, the largest accepted text is a little under this
const maxFormBytes = 1 << 20

// FormPage is the view model for the form template
type FormPage struct {
	Title       string
	Label       string
	Placeholder string
	Lines       int
	Input       string
	Output      string
	Failed      bool
}

func newPage() FormPage {
	return FormPage{
		Title:       "Language Detection",
		Label:       "Input Text",
		Placeholder: "Enter text here...",
		Lines:       5,
	}
}

// RegisterForm mounts the interactive form at GET and POST on path
func RegisterForm(r httpkit.Router, path string, s domain.DetectorPort) {
	f := &form{svc: s}
	r.Get(path, f.show)
	r.Post(path, f.submit)
}

type form struct{ svc domain.DetectorPort }

func (f *form) show(w stdhttp.ResponseWriter, _ *stdhttp.Request) {
	render(w, stdhttp.StatusOK, newPage())
}

func (f *form) submit(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	r.Body = stdhttp.MaxBytesReader(w, r.Body, maxFormBytes)
	page := newPage()
	if err := r.ParseForm(); err != nil {
		page.Failed = true
		render(w, stdhttp.StatusBadRequest, page)
		return
	}
	page.Input = r.PostForm.Get("text")

	out, err := f.svc.HandleRequest(r.Context(), page.Input)
	if err != nil {
		logger.C(r.Context()).Error().Err(err).Msg("detect failed")
		page.Failed = true
		render(w, stdhttp.StatusInternalServerError, page)
		return
	}
	page.Output = out
	render(w, stdhttp.StatusOK, page)
}

func render(w stdhttp.ResponseWriter, status int, page FormPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := formTmpl.Execute(w, page); err != nil {
		logger.Named("detect.form").Error().Err(err).Msg("render form")
	}
}

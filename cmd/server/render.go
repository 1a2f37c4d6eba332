package main

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/fxamacker/cbor/v2"

	"github.com/within/pronouns"
)

//go:embed templates/*.html
var templateFS embed.FS

// pageNames lists the content templates; each is parsed with base.html.
var pageNames = []string{"home", "list", "pronoun", "ambiguous", "notfound", "docs"}

// page is the data passed to every HTML template.
type page struct {
	Title   string
	Domain  string
	Pronoun string
	Set     *pronouns.PronounSet
	Sets    []pronouns.PronounSet
	Example string
}

type errorResponse struct {
	Message string `json:"message"`
}

func parsePages() (map[string]*template.Template, error) {
	funcs := template.FuncMap{"title": pronouns.TitleCase}
	pages := make(map[string]*template.Template, len(pageNames))
	for _, name := range pageNames {
		t, err := template.New("base.html").Funcs(funcs).ParseFS(templateFS,
			"templates/base.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s page: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

// renderPage executes a page into a buffer first so that template errors
// still produce a clean 500.
func (s *server) renderPage(w http.ResponseWriter, status int, name string, p page) {
	p.Domain = s.domain
	var buf bytes.Buffer
	if err := s.pages[name].Execute(&buf, p); err != nil {
		s.log.Errorf("render %s: %v", name, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.log.Debugf("write %s: %v", name, err)
	}
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Errorf("encode error: %v", err)
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, errorResponse{Message: msg})
}

func (s *server) writeCBOR(w http.ResponseWriter, status int, v any) {
	b, err := cbor.Marshal(v)
	if err != nil {
		s.log.Errorf("cbor encode: %v", err)
		s.writeError(w, http.StatusInternalServerError, "can't encode response")
		return
	}
	w.Header().Set("Content-Type", "application/cbor")
	w.WriteHeader(status)
	if _, err := w.Write(b); err != nil {
		s.log.Debugf("write cbor: %v", err)
	}
}

// docsExample is the sample PronounSet shown on the API docs page.
func docsExample() string {
	b, _ := json.MarshalIndent(pronouns.PronounSet{
		Nominative: "she",
		Accusative: "her",
		Determiner: "her",
		Possessive: "hers",
		Reflexive:  "herself",
		Singular:   true,
	}, "", "  ")
	return string(b)
}

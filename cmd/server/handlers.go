package main

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/rs/cors"

	"github.com/within/pronouns"
)

// server holds everything the handlers share. trie is read-only after
// startup, so handlers use it without locking.
type server struct {
	trie   *pronouns.Trie
	domain string
	pages  map[string]*template.Template
	log    logger.Logger
}

func newServer(trie *pronouns.Trie, domain string, log logger.Logger) (*server, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}
	return &server{trie: trie, domain: domain, pages: pages, log: log}, nil
}

// routes builds the full handler. staticDir, when set, is served under
// /static/css/.
func (s *server) routes(staticDir string) http.Handler {
	api := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet},
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/.within/health", s.handleHealth)
	mux.Handle("/api/all", api.Handler(http.HandlerFunc(s.handleAll)))
	mux.Handle("/api/lookup/{pronoun...}", api.Handler(http.HandlerFunc(s.handleLookup)))
	mux.Handle("/api/exact/{nominative}/{accusative}/{determiner}/{possessive}/{reflexive}",
		api.Handler(http.HandlerFunc(s.handleExact)))
	mux.HandleFunc("/api/docs", s.handleDocs)
	mux.HandleFunc("/pronoun-list", s.handleList)
	mux.HandleFunc("/they", s.handleThey)
	mux.HandleFunc("/{$}", s.handleHome)
	mux.HandleFunc("/{pronoun...}", s.handlePronoun)
	if staticDir != "" {
		mux.Handle("/static/css/", http.StripPrefix("/static/css/", http.FileServer(http.Dir(staticDir))))
	}
	return withRequestID(s.withAccessLog(mux))
}

// requireGet rejects anything but GET, answering with a JSON error.
func (s *server) requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method == http.MethodGet {
		return true
	}
	s.writeError(w, http.StatusMethodNotAllowed, "GET required")
	return false
}

// lookup resolves a URL path against the trie. A purely concrete prefix
// such as "she/her" is widened to a prefix search.
func (s *server) lookup(path string) ([]pronouns.PronounSet, error) {
	key := pronouns.ParseKey(path)
	if !key.HasWildcard() {
		key = key.Padded()
	}
	return s.trie.Guess(key)
}

// ---- API handlers -------------------------------------------------------

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, "OK")
}

func (s *server) handleAll(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	sets := s.trie.Gather()
	if wantsCBOR(r) {
		s.writeCBOR(w, http.StatusOK, sets)
		return
	}
	s.writeJSON(w, http.StatusOK, sets)
}

func wantsCBOR(r *http.Request) bool {
	return r.URL.Query().Get("format") == "cbor" ||
		strings.Contains(r.Header.Get("Accept"), "application/cbor")
}

func (s *server) handleLookup(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	pronoun := r.PathValue("pronoun")
	found, err := s.lookup(pronoun)
	switch {
	case errors.Is(err, pronouns.ErrInvalidKey):
		s.writeError(w, http.StatusBadRequest, fmt.Sprintf("%s has more than %d forms", pronoun, pronouns.KeyLen))
	case len(found) == 0:
		s.writeError(w, http.StatusNotFound, fmt.Sprintf("can't find %s in my database", pronoun))
	default:
		s.writeJSON(w, http.StatusOK, found)
	}
}

// handleExact echoes the five forms back as a singular set.
func (s *server) handleExact(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	s.writeJSON(w, http.StatusOK, pronouns.PronounSet{
		Nominative: r.PathValue("nominative"),
		Accusative: r.PathValue("accusative"),
		Determiner: r.PathValue("determiner"),
		Possessive: r.PathValue("possessive"),
		Reflexive:  r.PathValue("reflexive"),
		Singular:   true,
	})
}

// ---- HTML handlers ------------------------------------------------------

func (s *server) handleHome(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	s.renderPage(w, http.StatusOK, "home", page{})
}

func (s *server) handleDocs(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	s.renderPage(w, http.StatusOK, "docs", page{Title: "API Documentation", Example: docsExample()})
}

func (s *server) handleList(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	s.renderPage(w, http.StatusOK, "list", page{Title: "All pronouns", Sets: s.trie.Gather()})
}

func (s *server) handleThey(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	s.renderGuess(w, "they/.../themselves")
}

func (s *server) handlePronoun(w http.ResponseWriter, r *http.Request) {
	if !s.requireGet(w, r) {
		return
	}
	s.renderGuess(w, r.PathValue("pronoun"))
}

// renderGuess shows the set matching pronoun. Several matches get a
// disambiguation page; no match with five concrete forms is shown as a
// custom set.
func (s *server) renderGuess(w http.ResponseWriter, pronoun string) {
	found, err := s.lookup(pronoun)
	if err != nil {
		s.log.Debugf("lookup %q: %v", pronoun, err)
	}
	switch {
	case len(found) > 1:
		s.renderPage(w, http.StatusBadRequest, "ambiguous", page{
			Title:   "Ambiguous pronouns detected",
			Pronoun: pronoun,
			Sets:    found,
		})
		return
	case len(found) == 1:
		best := found[len(found)-1]
		s.renderPage(w, http.StatusOK, "pronoun", page{Title: best.Title(), Set: &best})
		return
	}

	if custom, ok := customSet(pronoun); ok {
		s.renderPage(w, http.StatusOK, "pronoun", page{Title: custom.Title(), Set: &custom})
		return
	}
	s.renderPage(w, http.StatusNotFound, "notfound", page{Title: "Can't find that pronoun", Pronoun: pronoun})
}

// customSet builds a set from a path of exactly five concrete forms. The
// number is guessed from the reflexive: "themselves" is plural, "herself"
// singular.
func customSet(path string) (pronouns.PronounSet, bool) {
	key := pronouns.ParseKey(path)
	if len(key) != pronouns.KeyLen || key.HasWildcard() {
		return pronouns.PronounSet{}, false
	}
	sp := strings.Split(strings.TrimPrefix(path, "/"), "/")
	return pronouns.PronounSet{
		Nominative: sp[0],
		Accusative: sp[1],
		Determiner: sp[2],
		Possessive: sp[3],
		Reflexive:  sp[4],
		Singular:   !strings.HasSuffix(sp[4], "s"),
	}, true
}

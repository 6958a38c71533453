package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/vango-dev/html5el/internal/config"
	"github.com/vango-dev/html5el/internal/dev"
	"github.com/vango-dev/html5el/pkg/document"
	"github.com/vango-dev/html5el/pkg/metrics"
	"github.com/vango-dev/html5el/pkg/tags"
)

// KindInfo is the JSON form of a registry entry.
type KindInfo struct {
	Kind  string `json:"kind"`
	Open  string `json:"open"`
	Close string `json:"close"`
	Void  bool   `json:"void"`
	Doc   string `json:"doc"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	names, err := ListDocuments(s.config.Dir)
	if err != nil {
		s.logger.Error("listing documents failed", "dir", s.config.Dir, "error", err)
		http.Error(w, "cannot list documents", http.StatusInternalServerError)
		return
	}
	s.writePage(w, http.StatusOK, renderPage(indexPage(names)))
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	name, file, ok := s.resolve(chi.URLParam(r, "*"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	// Only existing documents become metric label values.
	if info, err := os.Stat(file); err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	var out string
	err := s.config.Metrics.Observe(r.Context(), name, func(ctx context.Context) (metrics.Result, error) {
		doc, err := document.Load(file, document.Options{Defaults: s.config.Defaults, File: name})
		if err != nil {
			return metrics.Result{}, err
		}
		out = doc.Render()
		return metrics.Result{Bytes: len(out), Nodes: doc.Count()}, nil
	})
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			http.NotFound(w, r)
			return
		}
		s.logger.Warn("document failed", "name", name, "error", err)
		s.writePage(w, http.StatusUnprocessableEntity, renderPage(errorPage(name, err)))
		return
	}

	s.writePage(w, http.StatusOK, out)
}

func (s *Server) handleKinds(w http.ResponseWriter, r *http.Request) {
	kinds := tags.Kinds()
	infos := make([]KindInfo, 0, tags.Len())
	for _, kind := range kinds {
		def, _ := tags.Lookup(kind)
		infos = append(infos, KindInfo{
			Kind:  kind,
			Open:  def.Open,
			Close: def.Close,
			Void:  def.IsVoid(),
			Doc:   def.Doc,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(infos)
}

func (s *Server) handleKind(w http.ResponseWriter, r *http.Request) {
	def, ok := tags.Lookup(chi.URLParam(r, "kind"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, def.Doc+"\n")
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "ok\n")
}

func (s *Server) writePage(w http.ResponseWriter, status int, page string) {
	if s.reload != nil {
		page = dev.InjectClient(page)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, page)
}

// resolve maps a URL path below /docs/ to a description file inside the
// document directory. Paths cannot escape the directory.
func (s *Server) resolve(raw string) (name, file string, ok bool) {
	name = strings.TrimPrefix(path.Clean("/"+raw), "/")
	if name == "" || path.Base(name) == config.ConfigFileName || !document.IsDescription(name) {
		return "", "", false
	}
	return name, filepath.Join(s.config.Dir, filepath.FromSlash(name)), true
}

// ListDocuments returns the slash-separated paths of the description files
// below dir, sorted. Hidden directories and html5el.json are skipped.
func ListDocuments(dir string) ([]string, error) {
	var names []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == config.ConfigFileName || !document.IsDescription(p) {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		names = append(names, filepath.ToSlash(rel))
		return nil
	})
	sort.Strings(names)
	return names, err
}

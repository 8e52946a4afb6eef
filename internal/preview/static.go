package preview

import (
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
)

// staticRelPath sanitizes the wildcard part of a static request. It rejects
// traversal and absolute-path tricks so serving cannot escape the directory.
func staticRelPath(rel string) (string, bool) {
	if rel == "" {
		return "", false
	}

	// Reject NUL early (can appear via %00).
	if strings.IndexByte(rel, 0) != -1 {
		return "", false
	}
	if strings.Contains(rel, "\\") {
		return "", false
	}
	if strings.HasPrefix(rel, "/") {
		return "", false
	}

	// Reject dot-segments before cleaning so traversal is not cleaned away.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if !fs.ValidPath(clean) || clean == "." {
		return "", false
	}
	return clean, true
}

// staticHandler serves files from fsys under the route's wildcard.
func staticHandler(fsys fs.FS) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rel, ok := staticRelPath(chi.URLParam(r, "*"))
		if !ok {
			http.NotFound(w, r)
			return
		}

		f, err := fsys.Open(rel)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil || info.IsDir() {
			http.NotFound(w, r)
			return
		}

		rs, ok := f.(io.ReadSeeker)
		if !ok {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		if path.Ext(rel) == ".wasm" {
			w.Header().Set("Content-Type", "application/wasm")
		}
		// Development server: always revalidate so rebuilt wasm is picked up.
		w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
		http.ServeContent(w, r, rel, info.ModTime(), rs)
	}
}

package main

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ahautala/repapp/internal/errors"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	app.render(w, r, http.StatusInternalServerError, "error", newBaseTemplateData(r))
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.render(w, r, http.StatusNotFound, "not-found", newBaseTemplateData(r))
}

// redirect detects if the request is originating from a fetch API call or a top-level navigation and points the user
// to the correct URL.
func redirect(w http.ResponseWriter, r *http.Request, path string) {
	if r.Header.Get("Sec-Fetch-Dest") == "empty" {
		w.Header().Set("Content-Location", path)
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, path, http.StatusSeeOther)
}

// parseIndexParam parses an integer path parameter from the request URL.
// On failure, sends HTTP 404 response automatically.
func (app *application) parseIndexParam(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	indexStr := r.PathValue(name)
	index, err := strconv.Atoi(indexStr)
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}
	return index, true
}

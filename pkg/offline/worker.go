package offline

import (
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"text/template"

	"droscher.com/Vinlogg/configs"
)

//go:embed sw.js.tmpl
var workerTemplate string

// networkFirst lists the API collections that stay readable offline.
var networkFirst = []string{"/api/logs"}

type workerData struct {
	CacheVersion string
	Precache     []string
	NetworkFirst []string
}

// Worker serves the rendered service worker script.
type Worker struct {
	script []byte
	etag   string
}

func NewWorker(conf configs.Offline) (*Worker, error) {
	tmpl, err := template.New("sw.js").Funcs(template.FuncMap{"json": toJSON}).Parse(workerTemplate)
	if err != nil {
		return nil, err
	}

	precache := conf.Precache
	if precache == nil {
		precache = []string{}
	}

	var script bytes.Buffer
	if err := tmpl.Execute(&script, workerData{
		CacheVersion: conf.CacheVersion,
		Precache:     precache,
		NetworkFirst: networkFirst,
	}); err != nil {
		return nil, err
	}

	sum := sha256.Sum256(script.Bytes())

	return &Worker{script: script.Bytes(), etag: `"` + hex.EncodeToString(sum[:8]) + `"`}, nil
}

func (w *Worker) Script() []byte {
	return w.script
}

func (w *Worker) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	writer.Header().Set("Cache-Control", "no-cache")
	writer.Header().Set("Service-Worker-Allowed", "/")
	writer.Header().Set("ETag", w.etag)

	if request.Header.Get("If-None-Match") == w.etag {
		writer.WriteHeader(http.StatusNotModified)

		return
	}

	_, _ = writer.Write(w.script)
}

func toJSON(value any) (string, error) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// Package uploads runs the composer's image upload batches: pre-flight
// validation, one concurrent upload task per accepted file, and per-file
// failure isolation. A failed file never delays or aborts its siblings;
// partial success is the steady state.
package uploads

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"sync"
)

// MaxFileSize is the per-file limit (5 MiB), enforced before any network call.
const MaxFileSize = 5 * 1024 * 1024

const sniffLen = 512

// Uploader sends one file to the listing backend and returns its public URL.
type Uploader interface {
	UploadImage(ctx context.Context, token, filename, contentType string, r io.Reader) (string, error)
}

// Sink receives successful upload URLs. Appends happen in completion order,
// not selection order; the sink must tolerate interleaved calls from
// concurrent tasks (the composer session guards its draft with a lock).
type Sink interface {
	AppendImage(url string)
}

// File is one selected file. Open is called at most once, after the size
// check passes.
type File struct {
	Name string
	Size int64
	Open func() (io.ReadCloser, error)
}

// Result is the outcome for one file in a batch.
type Result struct {
	File string `json:"file"`
	URL  string `json:"url,omitempty"`
	Err  error  `json:"-"`
}

// Failed reports whether this file did not produce an image URL.
func (r Result) Failed() bool { return r.Err != nil }

type Pipeline struct {
	uploader Uploader
}

func NewPipeline(uploader Uploader) *Pipeline {
	return &Pipeline{uploader: uploader}
}

// Process validates and uploads one batch. Files violating the size or MIME
// constraints are rejected up front and never reach the network. Accepted
// files upload concurrently; each success appends its URL to sink as it
// completes. onResult, when non-nil, fires once per file as its outcome is
// known and may be called from multiple goroutines. The returned slice is in
// completion order, rejections first.
func (p *Pipeline) Process(ctx context.Context, token string, files []File, sink Sink, onResult func(Result)) []Result {
	results := make([]Result, 0, len(files))
	var resultsMu sync.Mutex

	record := func(r Result) {
		resultsMu.Lock()
		results = append(results, r)
		resultsMu.Unlock()
		if onResult != nil {
			onResult(r)
		}
	}

	var wg sync.WaitGroup
	for _, f := range files {
		body, contentType, err := p.preflight(f)
		if err != nil {
			record(Result{File: f.Name, Err: err})
			continue
		}

		wg.Add(1)
		go func(f File, body io.ReadCloser, contentType string) {
			defer wg.Done()
			defer body.Close()

			url, err := p.uploader.UploadImage(ctx, token, f.Name, contentType, body)
			if err != nil {
				record(Result{File: f.Name, Err: err})
				return
			}

			// Appending here, not after wg.Wait, is what makes draft.images
			// reflect completion order.
			sink.AppendImage(url)
			record(Result{File: f.Name, URL: url})
		}(f, body, contentType)
	}

	wg.Wait()
	return results
}

// preflight enforces the size and image/* constraints. The MIME type is
// sniffed from content, not trusted from the client.
func (p *Pipeline) preflight(f File) (io.ReadCloser, string, error) {
	if f.Size == 0 {
		return nil, "", ErrEmptyFile
	}
	if f.Size > MaxFileSize {
		return nil, "", ErrFileTooLarge
	}

	rc, err := f.Open()
	if err != nil {
		return nil, "", err
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(rc, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		rc.Close()
		return nil, "", err
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	contentType = strings.Split(contentType, ";")[0]
	if !strings.HasPrefix(contentType, "image/") {
		rc.Close()
		return nil, "", ErrNotAnImage
	}

	body := readCloser{
		Reader: io.MultiReader(bytes.NewReader(head), rc),
		Closer: rc,
	}
	return body, contentType, nil
}

type readCloser struct {
	io.Reader
	io.Closer
}

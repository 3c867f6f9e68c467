package uploads

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes returns content that sniffs as image/png.
func pngBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, []byte("\x89PNG\r\n\x1a\n"))
	return data
}

func memFile(name string, data []byte) File {
	return File{
		Name: name,
		Size: int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// gatedUploader blocks each upload until its gate channel is released.
type gatedUploader struct {
	gates map[string]chan struct{}
	fail  map[string]error

	mu    sync.Mutex
	calls []string
}

func (u *gatedUploader) UploadImage(ctx context.Context, token, filename, contentType string, r io.Reader) (string, error) {
	u.mu.Lock()
	u.calls = append(u.calls, filename)
	u.mu.Unlock()

	if gate, ok := u.gates[filename]; ok {
		<-gate
	}
	if err, ok := u.fail[filename]; ok {
		return "", err
	}
	return "url-" + filename, nil
}

func (u *gatedUploader) callCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.calls)
}

// recordingSink appends under a lock and signals each append.
type recordingSink struct {
	mu       sync.Mutex
	urls     []string
	appended chan struct{}
}

func newRecordingSink() *recordingSink {
	return &recordingSink{appended: make(chan struct{}, 16)}
}

func (s *recordingSink) AppendImage(url string) {
	s.mu.Lock()
	s.urls = append(s.urls, url)
	s.mu.Unlock()
	s.appended <- struct{}{}
}

func (s *recordingSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.urls...)
}

func waitAppend(t *testing.T, sink *recordingSink) {
	t.Helper()
	select {
	case <-sink.appended:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for an append")
	}
}

func TestProcess_AppendsInCompletionOrder(t *testing.T) {
	uploader := &gatedUploader{
		gates: map[string]chan struct{}{
			"file1.png": make(chan struct{}),
			"file2.png": make(chan struct{}),
			"file3.png": make(chan struct{}),
		},
	}
	sink := newRecordingSink()
	pipeline := NewPipeline(uploader)

	files := []File{
		memFile("file1.png", pngBytes(100)),
		memFile("file2.png", pngBytes(100)),
		memFile("file3.png", pngBytes(100)),
	}

	// Complete uploads as [file2, file3, file1] regardless of batch order.
	go func() {
		close(uploader.gates["file2.png"])
		<-sink.appended
		close(uploader.gates["file3.png"])
		<-sink.appended
		close(uploader.gates["file1.png"])
	}()

	results := pipeline.Process(context.Background(), "tok", files, sink, nil)

	require.Len(t, results, 3)
	assert.Equal(t, []string{"url-file2.png", "url-file3.png", "url-file1.png"}, sink.snapshot())
}

func TestProcess_OversizedRejectedBeforeNetwork(t *testing.T) {
	uploader := &gatedUploader{}
	sink := newRecordingSink()
	pipeline := NewPipeline(uploader)

	big := File{
		Name: "huge.png",
		Size: MaxFileSize + 1,
		Open: func() (io.ReadCloser, error) {
			t.Fatal("oversized file must not be opened")
			return nil, nil
		},
	}
	ok := memFile("ok.png", pngBytes(64))

	results := pipeline.Process(context.Background(), "tok", []File{big, ok}, sink, nil)

	require.Len(t, results, 2)
	byName := map[string]Result{}
	for _, r := range results {
		byName[r.File] = r
	}
	assert.ErrorIs(t, byName["huge.png"].Err, ErrFileTooLarge)
	assert.False(t, byName["ok.png"].Failed())

	assert.Equal(t, 1, uploader.callCount(), "only the accepted file reaches the network")
	assert.Equal(t, []string{"url-ok.png"}, sink.snapshot())
}

func TestProcess_NonImageRejected(t *testing.T) {
	uploader := &gatedUploader{}
	sink := newRecordingSink()
	pipeline := NewPipeline(uploader)

	text := memFile("notes.txt", []byte(strings.Repeat("plain text content ", 10)))

	results := pipeline.Process(context.Background(), "tok", []File{text}, sink, nil)

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, ErrNotAnImage)
	assert.Equal(t, 0, uploader.callCount())
}

func TestProcess_EmptyFileRejected(t *testing.T) {
	pipeline := NewPipeline(&gatedUploader{})
	results := pipeline.Process(context.Background(), "tok", []File{{Name: "void.png", Size: 0}}, newRecordingSink(), nil)

	require.Len(t, results, 1)
	assert.ErrorIs(t, results[0].Err, ErrEmptyFile)
}

func TestProcess_FailureIsolatedFromSiblings(t *testing.T) {
	uploadErr := errors.New("backend responded with status 500")
	uploader := &gatedUploader{
		fail: map[string]error{"bad.png": uploadErr},
	}
	sink := newRecordingSink()
	pipeline := NewPipeline(uploader)

	var notified []Result
	var notifiedMu sync.Mutex
	onResult := func(r Result) {
		notifiedMu.Lock()
		notified = append(notified, r)
		notifiedMu.Unlock()
	}

	files := []File{
		memFile("bad.png", pngBytes(64)),
		memFile("good.png", pngBytes(64)),
	}
	results := pipeline.Process(context.Background(), "tok", files, sink, onResult)

	require.Len(t, results, 2)
	assert.Equal(t, []string{"url-good.png"}, sink.snapshot())

	notifiedMu.Lock()
	defer notifiedMu.Unlock()
	assert.Len(t, notified, 2, "every file reports its own outcome")
}

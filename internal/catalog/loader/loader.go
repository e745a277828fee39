package loader

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"time"

	pkgcatalog "github.com/goliatone/go-viewgen/pkg/catalog"
)

// Loader implements pkgcatalog.Loader by delegating to file, fs.FS, or HTTP
// strategies based on the source kind.
type Loader struct {
	fs        fs.FS
	http      *http.Client
	allowHTTP bool
	timeout   time.Duration
}

// Ensure the implementation satisfies the public interface.
var _ pkgcatalog.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options. HTTP stays disabled
// when httpClientFor yields no client.
func New(options pkgcatalog.LoaderOptions) pkgcatalog.Loader {
	client := httpClientFor(options)
	return &Loader{
		fs:        options.FileSystem,
		http:      client,
		allowHTTP: client != nil,
		timeout:   options.RequestTimeout,
	}
}

// httpClientFor clones an injected client, filling in the request timeout
// when the clone carries none, or builds a fallback client when the options
// allow one.
func httpClientFor(options pkgcatalog.LoaderOptions) *http.Client {
	if options.HTTPClient != nil {
		clone := *options.HTTPClient
		if options.RequestTimeout > 0 && clone.Timeout == 0 {
			clone.Timeout = options.RequestTimeout
		}
		return &clone
	}
	if options.AllowHTTPFallback {
		return &http.Client{Timeout: options.RequestTimeout}
	}
	return nil
}

// Load fetches the raw catalog payload for the source and wraps it in a
// Document.
func (l *Loader) Load(ctx context.Context, src pkgcatalog.Source) (pkgcatalog.Document, error) {
	if src == nil {
		return pkgcatalog.Document{}, errors.New("catalog loader: source is nil")
	}

	data, err := l.fetch(ctx, src)
	if err != nil {
		return pkgcatalog.Document{}, err
	}
	return pkgcatalog.NewDocument(src, data)
}

func (l *Loader) fetch(ctx context.Context, src pkgcatalog.Source) ([]byte, error) {
	switch src.Kind() {
	case pkgcatalog.SourceKindFile:
		return loadFile(ctx, src.Location())
	case pkgcatalog.SourceKindFS:
		return loadFromFS(ctx, l.fs, src.Location())
	case pkgcatalog.SourceKindURL:
		if !l.allowHTTP {
			return nil, errors.New("catalog loader: http support disabled")
		}
		return loadHTTP(ctx, l.http, src.Location(), l.timeout)
	default:
		return nil, errors.New("catalog loader: unsupported source kind")
	}
}

// ready reports a cancelled context before a strategy starts any IO.
func ready(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

package activity

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Source yields one activity payload.
type Source interface {
	// Name identifies the source in logs and error messages.
	Name() string

	// Fetch retrieves and decodes the activity.
	Fetch(ctx context.Context) (Activity, error)
}

// maxPayloadBytes bounds how much of a remote payload is read.
const maxPayloadBytes = 1 << 20

// FileSource reads an activity from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return s.Path }

func (s FileSource) Fetch(ctx context.Context) (Activity, error) {
	if err := ctx.Err(); err != nil {
		return Activity{}, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return Activity{}, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return Decode(data, FormatFromPath(s.Path))
}

// HTTPSource fetches an activity over HTTP(S).
type HTTPSource struct {
	URL    string
	Client *http.Client
}

func (s HTTPSource) Name() string { return s.URL }

func (s HTTPSource) Fetch(ctx context.Context) (Activity, error) {
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return Activity{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9")

	resp, err := client.Do(req)
	if err != nil {
		return Activity{}, fmt.Errorf("get %s: %w", s.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Activity{}, fmt.Errorf("get %s: unexpected status %s", s.URL, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return Activity{}, fmt.Errorf("read body: %w", err)
	}
	return Decode(data, s.format(resp.Header.Get("Content-Type")))
}

func (s HTTPSource) format(contentType string) Format {
	if mt, _, err := mime.ParseMediaType(contentType); err == nil && strings.Contains(mt, "yaml") {
		return FormatYAML
	}
	if u, err := url.Parse(s.URL); err == nil {
		return FormatFromPath(u.Path)
	}
	return FormatJSON
}

// TopicPrefix marks a reference as a topic for the concept generator.
const TopicPrefix = "llm:"

// Resolver turns textual references into Sources.
//
//	https://host/topic.json   -> HTTPSource
//	llm:<topic>               -> the Topic hook
//	path/to/topic.yaml        -> FileSource, relative to BaseDir
type Resolver struct {
	BaseDir string
	Client  *http.Client

	// Topic builds a source for an llm:<topic> reference. Nil disables
	// generated activities.
	Topic func(topic string) (Source, error)
}

// ParseSource resolves ref with a zero Resolver.
func ParseSource(ref string) (Source, error) {
	return Resolver{}.Resolve(ref)
}

// Resolve maps a single reference to a Source.
func (r Resolver) Resolve(ref string) (Source, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("empty source reference")
	}

	switch {
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return HTTPSource{URL: ref, Client: r.Client}, nil

	case strings.HasPrefix(ref, TopicPrefix):
		topic := strings.TrimSpace(strings.TrimPrefix(ref, TopicPrefix))
		if topic == "" {
			return nil, fmt.Errorf("source %q: empty topic", ref)
		}
		if r.Topic == nil {
			return nil, fmt.Errorf("source %q: topic generation is not configured", ref)
		}
		return r.Topic(topic)
	}

	path := ref
	if r.BaseDir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(r.BaseDir, path)
	}
	return FileSource{Path: path}, nil
}

// ResolveAll resolves every reference, stopping at the first error.
func (r Resolver) ResolveAll(refs []string) ([]Source, error) {
	sources := make([]Source, 0, len(refs))
	for _, ref := range refs {
		s, err := r.Resolve(ref)
		if err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}
	return sources, nil
}

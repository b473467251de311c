// Package store persists project documents and generated sources to any afs supported location
package store

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/smarty/model/codegen"
	"github.com/viant/smarty/model/project"
)

// Service loads and saves projects
type Service struct {
	fs     afs.Service
	logger *slog.Logger
}

// New creates a store service, nil logger uses slog.Default()
func New(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{fs: afs.New(), logger: logger}
}

// Exists returns true if a document exists at URL
func (s *Service) Exists(ctx context.Context, URL string) (bool, error) {
	return s.fs.Exists(ctx, URL)
}

// Read returns raw content stored at URL
func (s *Service) Read(ctx context.Context, URL string) ([]byte, error) {
	content, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download %v: %w", URL, err)
	}
	return content, nil
}

// Load reads project document from URL, the returned project remembers URL as its path
func (s *Service) Load(ctx context.Context, URL string, options ...project.Option) (*project.Project, error) {
	content, err := s.Read(ctx, URL)
	if err != nil {
		return nil, err
	}
	options = append([]project.Option{project.WithLogger(s.logger)}, options...)
	aProject, err := project.Load(bytes.NewReader(content), options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %v: %w", URL, err)
	}
	aProject.Path = URL
	s.logger.Debug("loaded project", "url", URL, "id", aProject.ID())
	return aProject, nil
}

// Save writes canonical export to URL, or to the project path when URL is empty, and marks project saved
func (s *Service) Save(ctx context.Context, aProject *project.Project, URL string) error {
	if URL == "" {
		URL = aProject.Path
	}
	if URL == "" {
		return fmt.Errorf("failed to save %v: no destination", aProject.ID())
	}
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader(aProject.Export())); err != nil {
		return fmt.Errorf("failed to upload %v: %w", URL, err)
	}
	aProject.Path = URL
	s.logger.Info("saved project", "url", URL, "id", aProject.ID())
	return aProject.MarkSaved()
}

// WriteFiles writes generated files under baseURL
func (s *Service) WriteFiles(ctx context.Context, baseURL string, files []*codegen.File) error {
	for _, aFile := range files {
		URL := url.Join(baseURL, aFile.Path)
		if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(aFile.Content)); err != nil {
			return fmt.Errorf("failed to write %v: %w", URL, err)
		}
		s.logger.Debug("wrote file", "url", URL)
	}
	return nil
}

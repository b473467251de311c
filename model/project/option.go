package project

import "log/slog"

type Option func(*Project)

// WithLogger sets project logger, nil keeps slog default logger
func WithLogger(logger *slog.Logger) Option {
	return func(p *Project) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithID sets project id instead of a generated one
func WithID(id string) Option {
	return func(p *Project) {
		p.id = id
	}
}

func WithName(name string) Option {
	return func(p *Project) {
		p.SetName(name)
	}
}

func WithVersion(version string) Option {
	return func(p *Project) {
		p.Version = version
	}
}

// WithPath sets project document location
func WithPath(path string) Option {
	return func(p *Project) {
		p.Path = path
	}
}

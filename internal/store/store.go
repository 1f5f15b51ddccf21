package store

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/gannonh/kata-tui/internal/model"
)

const (
	planningDirName = ".planning"

	projectFileName = "PROJECT.md"
	roadmapFileName = "ROADMAP.md"
	stateFileName   = "STATE.md"
)

// Store reads a planning directory. Loading never fails as a whole: each file
// that is missing or malformed degrades to its zero value.
type Store struct {
	Dir    string
	Logger *slog.Logger
}

func DefaultDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(cwd, planningDirName), nil
}

func (s Store) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Load reads PROJECT.md, ROADMAP.md and STATE.md concurrently.
func (s Store) Load(ctx context.Context) *model.PlanningData {
	data := &model.PlanningData{}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if b, ok := s.readFile(ctx, projectFileName); ok {
			p, err := ParseProject(b)
			if err != nil {
				s.logger().Warn("planning file unparsable", "file", projectFileName, "err", err)
				return nil
			}
			data.Project = p
		}
		return nil
	})
	g.Go(func() error {
		if b, ok := s.readFile(ctx, roadmapFileName); ok {
			r, err := ParseRoadmap(b)
			if err != nil {
				s.logger().Warn("planning file unparsable", "file", roadmapFileName, "err", err)
				return nil
			}
			data.Roadmap = r
		}
		return nil
	})
	g.Go(func() error {
		if b, ok := s.readFile(ctx, stateFileName); ok {
			st, err := ParseState(b)
			if err != nil {
				s.logger().Warn("planning file unparsable", "file", stateFileName, "err", err)
				return nil
			}
			data.State = st
		}
		return nil
	})
	// Tasks only ever return nil.
	_ = g.Wait()

	s.logger().Debug("planning data loaded",
		"dir", s.Dir,
		"project", data.Project.Name,
		"phases", len(data.Roadmap.Phases),
	)
	return data
}

func (s Store) readFile(ctx context.Context, name string) ([]byte, bool) {
	if err := ctx.Err(); err != nil {
		s.logger().Warn("planning file skipped", "file", name, "err", err)
		return nil, false
	}
	path := filepath.Join(s.Dir, name)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger().Debug("planning file missing", "path", path)
		} else {
			s.logger().Warn("planning file unreadable", "path", path, "err", err)
		}
		return nil, false
	}
	return b, true
}

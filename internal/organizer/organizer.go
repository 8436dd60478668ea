package organizer

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-git/go-billy/v5"

	"github.com/nightshift-tools/nightshift/internal/classify"
	"github.com/nightshift-tools/nightshift/internal/log"
	"github.com/nightshift-tools/nightshift/internal/model"
)

// DatePrefixLayout formats the prefix added to every organized file name.
const DatePrefixLayout = "20060102"

// SourceNotFoundError is returned when the source folder does not exist.
type SourceNotFoundError struct {
	Path string
}

func (e *SourceNotFoundError) Error() string {
	return "source folder not found: " + e.Path
}

// Unwrap lets errors.Is(err, fs.ErrNotExist) match.
func (e *SourceNotFoundError) Unwrap() error { return fs.ErrNotExist }

// NotADirectoryError is returned when the source path is a file.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return "source is not a folder: " + e.Path
}

// Organizer files the direct children of a folder into category folders.
type Organizer struct {
	fs     billy.Filesystem
	table  *classify.Table
	now    func() time.Time
	logger *log.Logger
}

// Option configures an Organizer.
type Option func(*Organizer)

// WithTable sets the extension table. Defaults to classify.Default().
func WithTable(t *classify.Table) Option {
	return func(o *Organizer) { o.table = t }
}

// WithClock sets the clock used for the date prefix.
func WithClock(now func() time.Time) Option {
	return func(o *Organizer) { o.now = now }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(o *Organizer) { o.logger = l.WithComponent(log.ComponentOrganizer) }
}

// New creates an Organizer working on fsys.
func New(fsys billy.Filesystem, opts ...Option) *Organizer {
	o := &Organizer{
		fs:     fsys,
		table:  classify.Default(),
		now:    time.Now,
		logger: log.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Scan returns the files directly under src. Sub-folders are skipped.
func (o *Organizer) Scan(src string) ([]model.FileEntry, error) {
	info, err := o.fs.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &SourceNotFoundError{Path: src}
		}
		return nil, fmt.Errorf("stat source %s: %w", src, err)
	}
	if !info.IsDir() {
		return nil, &NotADirectoryError{Path: src}
	}

	infos, err := o.fs.ReadDir(src)
	if err != nil {
		return nil, fmt.Errorf("reading source %s: %w", src, err)
	}

	var files []model.FileEntry
	for _, fi := range infos {
		path := o.fs.Join(src, fi.Name())
		if fi.Mode()&os.ModeSymlink != 0 {
			// Follow links so a link to a folder is skipped like the folder.
			target, err := o.fs.Stat(path)
			if err != nil {
				o.logger.Warn("skipping broken link", "path", path, "error", err)
				continue
			}
			fi = target
		}
		if fi.IsDir() {
			continue
		}
		files = append(files, model.FileEntry{
			Path:    path,
			Name:    filepath.Base(path),
			Ext:     classify.ExtensionOf(path),
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
	}
	return files, nil
}

// Plan computes where every file in src would go under dst. It never
// modifies the filesystem.
func (o *Organizer) Plan(src, dst string) ([]model.PlannedAction, error) {
	files, err := o.Scan(src)
	if err != nil {
		return nil, err
	}

	today := o.now().Format(DatePrefixLayout)
	actions := make([]model.PlannedAction, 0, len(files))
	for _, f := range files {
		cat := o.table.Classify(f.Ext)
		a := model.PlannedAction{
			Source:      f.Path,
			Destination: o.fs.Join(dst, string(cat), today+"_"+f.Name),
			Category:    string(cat),
		}
		o.logger.Debug("planned move", "source", a.Source, "destination", a.Destination, "category", a.Category)
		actions = append(actions, a)
	}
	return actions, nil
}

// Organize plans the moves from src to dst and, unless dryRun is set,
// performs them. The returned actions are the same in both modes. Files
// with the same destination name are overwritten.
func (o *Organizer) Organize(src, dst string, dryRun bool) ([]model.PlannedAction, error) {
	actions, err := o.Plan(src, dst)
	if err != nil {
		return nil, err
	}
	if dryRun {
		o.logger.Info("dry run", "source", src, "destination", dst, "planned", len(actions))
		return actions, nil
	}

	if err := o.fs.MkdirAll(dst, 0o755); err != nil {
		return nil, fmt.Errorf("creating destination %s: %w", dst, err)
	}
	for _, a := range actions {
		if err := o.fs.MkdirAll(o.fs.Join(dst, a.Category), 0o755); err != nil {
			return nil, fmt.Errorf("creating category folder %s: %w", a.Category, err)
		}
		if err := o.move(a.Source, a.Destination); err != nil {
			return nil, fmt.Errorf("moving %s: %w", a.Source, err)
		}
	}

	o.logger.Info("organized", "source", src, "destination", dst, "moved", len(actions))
	return actions, nil
}

func (o *Organizer) move(src, dst string) error {
	err := o.fs.Rename(src, dst)
	if err == nil || !errors.Is(err, syscall.EXDEV) {
		return err
	}

	o.logger.Debug("rename crosses devices, copying", "source", src)
	if err := o.copyFile(src, dst); err != nil {
		return err
	}
	return o.fs.Remove(src)
}

func (o *Organizer) copyFile(src, dst string) error {
	in, err := o.fs.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := o.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying to %s: %w", dst, err)
	}
	return out.Close()
}

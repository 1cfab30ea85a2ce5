package editor

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/kobzarvs/tedit/internal/buffer"
	"github.com/kobzarvs/tedit/internal/logger"
)

var errNoFilename = errors.New("no file name")

// FileError reports a failed open or save of the edited file.
type FileError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error { return e.Err }

// OpenFile replaces the document with the contents of path and resets the
// cursor and viewport.
func (e *Editor) OpenFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return &FileError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	rows, err := buffer.Load(f)
	if err != nil {
		return &FileError{Op: "read", Path: path, Err: err}
	}

	e.rows = rows
	e.filename = path
	e.cx, e.cy, e.rx = 0, 0, 0
	e.rowOff, e.colOff = 0, 0
	logger.Info("file loaded", "path", path, "lines", rows.Len())
	return nil
}

// Save writes the document to the current file name. The target is replaced
// only after the whole content has reached the disk.
func (e *Editor) Save() error {
	_, err := e.writeFile()
	return err
}

func (e *Editor) writeFile() (int, error) {
	if e.filename == "" {
		return 0, &FileError{Op: "save", Err: errNoFilename}
	}
	data := e.rows.Text()
	if err := writeFileAtomic(e.filename, data); err != nil {
		return 0, &FileError{Op: "save", Path: e.filename, Err: err}
	}
	return len(data), nil
}

// save is the Ctrl-S action: ask for a name when there is none, otherwise
// write and report the outcome on the message line.
func (e *Editor) save() {
	if e.filename == "" {
		e.mode = ModePrompt
		e.prompt = e.prompt[:0]
		return
	}
	e.saveAndReport()
}

func (e *Editor) saveAndReport() {
	n, err := e.writeFile()
	if err != nil {
		logger.Error("save failed", "path", e.filename, "error", err)
		e.setStatus(fmt.Sprintf("Can't save! %v", err))
		return
	}
	logger.Info("file saved", "path", e.filename, "bytes", n)
	e.setStatus(fmt.Sprintf("%d bytes written to disk", n))
}

// writeFileAtomic replaces path through a temp file in the same directory.
// A symlinked path is followed so the link survives and its target is
// rewritten; hard links to the old file are not preserved.
func writeFileAtomic(path string, data []byte) (err error) {
	if resolved, evalErr := filepath.EvalSymlinks(path); evalErr == nil {
		path = resolved
	} else if !errors.Is(evalErr, fs.ErrNotExist) {
		return evalErr
	}

	perm := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Chmod(perm); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}

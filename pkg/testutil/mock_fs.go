package testutil

import (
	"io/fs"
	"os"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockFS is a testify mock implementing types.FS.
type MockFS struct {
	mock.Mock
}

func (m *MockFS) Stat(name string) (fs.FileInfo, error) {
	args := m.Called(name)
	info, _ := args.Get(0).(fs.FileInfo)
	return info, args.Error(1)
}

func (m *MockFS) Lstat(name string) (fs.FileInfo, error) {
	args := m.Called(name)
	info, _ := args.Get(0).(fs.FileInfo)
	return info, args.Error(1)
}

func (m *MockFS) Rename(oldpath, newpath string) error {
	return m.Called(oldpath, newpath).Error(0)
}

func (m *MockFS) MkdirAll(path string, perm fs.FileMode) error {
	return m.Called(path, perm).Error(0)
}

func (m *MockFS) Symlink(oldname, newname string) error {
	return m.Called(oldname, newname).Error(0)
}

func (m *MockFS) Readlink(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}

// FakeFileInfo is a minimal fs.FileInfo for use with MockFS.
type FakeFileInfo struct {
	FileName string
	FileMode fs.FileMode
}

func (f FakeFileInfo) Name() string       { return f.FileName }
func (f FakeFileInfo) Size() int64        { return 0 }
func (f FakeFileInfo) Mode() fs.FileMode  { return f.FileMode }
func (f FakeFileInfo) ModTime() time.Time { return time.Time{} }
func (f FakeFileInfo) IsDir() bool        { return f.FileMode.IsDir() }
func (f FakeFileInfo) Sys() interface{}   { return nil }

// NotExist is the error MockFS expectations return for missing paths.
func NotExist(path string) error {
	return &fs.PathError{Op: "lstat", Path: path, Err: os.ErrNotExist}
}

// PermissionDenied is the error MockFS expectations return for EACCES.
func PermissionDenied(op, path string) error {
	return &fs.PathError{Op: op, Path: path, Err: os.ErrPermission}
}

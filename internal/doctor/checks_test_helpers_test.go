package doctor

import (
	"context"
	"errors"
	"os"
	"testing"
)

func requireResultByCheckName(t *testing.T, results []Result, checkName string) Result {
	t.Helper()
	var found *Result
	for _, result := range results {
		if result.CheckName == checkName {
			if found != nil {
				t.Fatalf("multiple %s results in %#v", checkName, results)
			}
			copyResult := result
			found = &copyResult
		}
	}
	if found == nil {
		t.Fatalf("missing %s result in %#v", checkName, results)
	}
	return *found
}

type fakePython struct {
	version    string
	versionErr error
	installed  map[string]bool
	probeErr   error
}

func (f fakePython) Version(context.Context, string) (string, error) {
	return f.version, f.versionErr
}

func (f fakePython) HasPackage(_ context.Context, _ string, name string) (bool, error) {
	return f.installed[name], f.probeErr
}

func (f fakePython) InstallPackage(context.Context, string, string) error {
	return errors.New("doctor must not install packages")
}

type fakeFS struct {
	env   map[string]string
	files map[string]bool
}

func (f fakeFS) LookupEnv(key string) (string, bool) {
	v, ok := f.env[key]
	return v, ok
}

func (f fakeFS) Stat(path string) (os.FileInfo, error) {
	if f.files[path] {
		return nil, nil
	}
	return nil, os.ErrNotExist
}

func (fakeFS) Download(context.Context, string, string) error {
	return errors.New("doctor must not download")
}

func (fakeFS) Launch(string) error {
	return errors.New("doctor must not launch")
}

func (fakeFS) Extract(string, string) error {
	return errors.New("doctor must not extract")
}

func (fakeFS) Remove(string) error {
	return errors.New("doctor must not remove")
}

func stubLookPath(t *testing.T, fn func(string) (string, error)) {
	t.Helper()
	orig := lookPathFunc
	lookPathFunc = fn
	t.Cleanup(func() { lookPathFunc = orig })
}

package plan

import (
	"io/fs"
	"os"
	"testing"
	"time"
)

// fakeInfo is a minimal os.FileInfo for fake filesystems.
type fakeInfo struct {
	name string
	mode os.FileMode
}

func (f fakeInfo) Name() string       { return f.name }
func (f fakeInfo) Size() int64        { return 0 }
func (f fakeInfo) Mode() os.FileMode  { return f.mode }
func (f fakeInfo) ModTime() time.Time { return time.Time{} }
func (f fakeInfo) IsDir() bool        { return false }
func (f fakeInfo) Sys() interface{}   { return nil }

// fakeFS implements FS in memory. Paths not in modes fail Stat.
type fakeFS struct {
	modes     map[string]os.FileMode
	renames   [][2]string
	renameErr map[string]error
}

func newFakeFS(paths ...string) *fakeFS {
	modes := make(map[string]os.FileMode, len(paths))
	for _, p := range paths {
		modes[p] = 0o644
	}
	return &fakeFS{modes: modes}
}

func (f *fakeFS) Stat(name string) (os.FileInfo, error) {
	mode, ok := f.modes[name]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return fakeInfo{name: name, mode: mode}, nil
}

func (f *fakeFS) Rename(oldpath, newpath string) error {
	if err := f.renameErr[oldpath]; err != nil {
		return err
	}
	f.renames = append(f.renames, [2]string{oldpath, newpath})
	return nil
}

func itemsWithRenamed(renamed ...string) []Item {
	items := make([]Item, 0, len(renamed))
	for i, r := range renamed {
		it := NewItem("/data/file" + string(rune('a'+i)))
		it.Renamed = r
		items = append(items, it)
	}
	return items
}

func TestCheckCollisions(t *testing.T) {
	t.Parallel()

	t.Run("clean set has no findings", func(t *testing.T) {
		t.Parallel()
		items := []Item{NewItem("/data/a.txt"), NewItem("/data/b.txt")}
		fsys := newFakeFS("/data/a.txt", "/data/b.txt")

		result := Check(items, fsys)
		if !result.Clean() {
			t.Fatalf("Check() = %+v, want clean", result)
		}
		if result.ConflictingNames != nil {
			t.Errorf("ConflictingNames = %v, want nil", result.ConflictingNames)
		}
	})

	t.Run("first occurrence is never flagged", func(t *testing.T) {
		t.Parallel()
		items := itemsWithRenamed("a", "b", "a", "a")
		fsys := newFakeFS("/data/filea", "/data/fileb", "/data/filec", "/data/filed")

		result := Check(items, fsys)
		if len(result.ConflictingNames) != 2 {
			t.Fatalf("len(ConflictingNames) = %d, want 2", len(result.ConflictingNames))
		}
		for _, name := range result.ConflictingNames {
			if name != "a" {
				t.Errorf("conflicting name = %q, want %q", name, "a")
			}
		}
	})

	t.Run("distinct duplicates are reported in encounter order", func(t *testing.T) {
		t.Parallel()
		items := itemsWithRenamed("x", "y", "y", "x")
		fsys := newFakeFS("/data/filea", "/data/fileb", "/data/filec", "/data/filed")

		result := Check(items, fsys)
		want := []string{"y", "x"}
		if len(result.ConflictingNames) != len(want) {
			t.Fatalf("ConflictingNames = %v, want %v", result.ConflictingNames, want)
		}
		for i, name := range want {
			if result.ConflictingNames[i] != name {
				t.Errorf("ConflictingNames[%d] = %q, want %q", i, result.ConflictingNames[i], name)
			}
		}
	})
}

func TestCheckRenameability(t *testing.T) {
	t.Parallel()

	t.Run("read-only file is flagged", func(t *testing.T) {
		t.Parallel()
		items := []Item{NewItem("/data/locked.txt"), NewItem("/data/open.txt")}
		fsys := newFakeFS("/data/locked.txt", "/data/open.txt")
		fsys.modes["/data/locked.txt"] = 0o444

		result := Check(items, fsys)
		if len(result.PermissionProblems) != 1 {
			t.Fatalf("PermissionProblems = %v, want one entry", result.PermissionProblems)
		}
		if result.PermissionProblems[0] != "/data/locked.txt" {
			t.Errorf("PermissionProblems[0] = %q, want the locked path", result.PermissionProblems[0])
		}
	})

	t.Run("unreadable metadata fails closed", func(t *testing.T) {
		t.Parallel()
		items := []Item{NewItem("/data/gone.txt")}
		fsys := newFakeFS() // knows no paths at all

		result := Check(items, fsys)
		if len(result.PermissionProblems) != 1 {
			t.Fatalf("PermissionProblems = %v, want one entry", result.PermissionProblems)
		}
	})

	t.Run("repeated checks mutate nothing", func(t *testing.T) {
		t.Parallel()
		items := itemsWithRenamed("same", "same")
		fsys := newFakeFS("/data/filea", "/data/fileb")

		first := Check(items, fsys)
		second := Check(items, fsys)
		if len(first.ConflictingNames) != len(second.ConflictingNames) {
			t.Errorf("repeat Check() differs: %v vs %v", first, second)
		}
		if len(fsys.renames) != 0 {
			t.Errorf("Check() issued %d renames, want 0", len(fsys.renames))
		}
	})
}

func TestReadOnly(t *testing.T) {
	t.Parallel()

	cases := []struct {
		mode os.FileMode
		want bool
	}{
		{0o644, false},
		{0o600, false},
		{0o444, true},
		{0o400, true},
		{0o222, false},
	}
	for _, tc := range cases {
		if got := readOnly(tc.mode); got != tc.want {
			t.Errorf("readOnly(%o) = %v, want %v", tc.mode, got, tc.want)
		}
	}
}

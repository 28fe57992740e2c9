package plan

import "os"

// FS is the filesystem surface the planning engine touches: metadata reads
// for the renameability check and the rename itself. Tests substitute a fake
// to assert that aborted workflows never issue a move.
type FS interface {
	Stat(name string) (os.FileInfo, error)
	Rename(oldpath, newpath string) error
}

type osFS struct{}

func (osFS) Stat(name string) (os.FileInfo, error) { return os.Stat(name) }
func (osFS) Rename(oldpath, newpath string) error  { return os.Rename(oldpath, newpath) }

// OS is the real filesystem.
var OS FS = osFS{}

package contract

// MirrorFile is one raw content file read from the local mirror directory.
type MirrorFile struct {
	FileName string
	Content  string
}

// ILocalMirror reads the local mirror directory used when the remote store
// is unreachable or unconfigured. A missing directory yields an empty list.
type ILocalMirror interface {
	ListFiles() ([]MirrorFile, error)
}

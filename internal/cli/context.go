package cli

import "github.com/habitgenius/habitgenius/internal/storage"

// Context carries the shared dependencies into every command's Run.
type Context struct {
	Store storage.Provider
	Debug bool
}

package cli

import (
	"github.com/Fepozopo/rgbedit/pkg/stdimg"
)

// maxHistory bounds the undo stack; the loaded original is kept separately.
const maxHistory = 50

// Session tracks the image being edited and its undo history. Images are
// immutable, so history entries share nothing and need no copying.
type Session struct {
	Path   string
	Format string

	original *stdimg.Image
	history  []*stdimg.Image
}

// NewSession starts editing img, loaded from path in the given format.
func NewSession(img *stdimg.Image, path, format string) *Session {
	return &Session{Path: path, Format: format, original: img}
}

// Loaded reports whether an image is open.
func (s *Session) Loaded() bool { return s != nil && s.original != nil }

// Current returns the latest image, or nil when nothing is loaded.
func (s *Session) Current() *stdimg.Image {
	if len(s.history) > 0 {
		return s.history[len(s.history)-1]
	}
	return s.original
}

// Original returns the image as it was loaded.
func (s *Session) Original() *stdimg.Image { return s.original }

// Push records img as the new current image.
func (s *Session) Push(img *stdimg.Image) {
	s.history = append(s.history, img)
	if len(s.history) > maxHistory {
		s.history = append(s.history[:0:0], s.history[len(s.history)-maxHistory:]...)
	}
}

// Apply runs a registry command on the current image and records the result.
func (s *Session) Apply(name string, args []string) (*stdimg.Image, error) {
	out, err := stdimg.ApplyCommand(s.Current(), name, args)
	if err != nil {
		return nil, err
	}
	s.Push(out)
	return out, nil
}

// Undo steps back one edit. It reports false when there is nothing to undo.
func (s *Session) Undo() bool {
	if len(s.history) == 0 {
		return false
	}
	s.history = s.history[:len(s.history)-1]
	return true
}

// Revert discards every edit and returns to the loaded image.
func (s *Session) Revert() { s.history = nil }

// Depth is the number of edits that can be undone.
func (s *Session) Depth() int { return len(s.history) }

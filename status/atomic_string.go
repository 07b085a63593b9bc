package status

import (
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringRunes caps stored string metrics
const MaxStringRunes = 32

// AtomicString holds a short string value; zero value reads ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store sets the value, truncated to MaxStringRunes characters
func (s *AtomicString) Store(val string) {
	if utf8.RuneCountInString(val) > MaxStringRunes {
		val = string([]rune(val)[:MaxStringRunes])
	}
	s.ptr.Store(&val)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}

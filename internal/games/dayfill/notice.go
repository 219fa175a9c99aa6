package dayfill

import "time"

// maxNotices bounds the notice queue; older notices drop off.
const maxNotices = 3

// NoticeKind is the severity of a notice.
type NoticeKind string

const (
	NoticeInfo    NoticeKind = "info"
	NoticeSuccess NoticeKind = "success"
	NoticeWarning NoticeKind = "warning"
	NoticeError   NoticeKind = "error"
)

// Notice is a short user-facing message produced by the session.
type Notice struct {
	Kind NoticeKind
	Text string
	At   time.Time
}

func (s *Session) notify(kind NoticeKind, text string) {
	s.notices = append(s.notices, Notice{Kind: kind, Text: text, At: s.clock()})
	if len(s.notices) > maxNotices {
		s.notices = s.notices[len(s.notices)-maxNotices:]
	}
}

// Post queues a notice from outside the session, such as a save error
// or a share code.
func (s *Session) Post(kind NoticeKind, text string) {
	s.notify(kind, text)
}

// Notices returns pending notices, oldest first.
func (s *Session) Notices() []Notice {
	out := make([]Notice, len(s.notices))
	copy(out, s.notices)
	return out
}

// ExpireNotices drops notices older than ttl.
func (s *Session) ExpireNotices(ttl time.Duration) {
	now := s.clock()
	kept := s.notices[:0]
	for _, n := range s.notices {
		if now.Sub(n.At) < ttl {
			kept = append(kept, n)
		}
	}
	s.notices = kept
}

// ClearNotices drops all notices.
func (s *Session) ClearNotices() {
	s.notices = nil
}

package msgbox

import "sync"

// singleUse hands out one claim per process. Hosts whose event loop cannot
// be restarted share one of these so that a second dialog fails with
// ErrHostClosed instead of starting the loop again.
type singleUse struct {
	mu   sync.Mutex
	used bool
}

func (s *singleUse) claim() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.used {
		return ErrHostClosed
	}
	s.used = true
	return nil
}

// fyneLoop guards the fyne event loop for every FyneHost in the process.
var fyneLoop singleUse

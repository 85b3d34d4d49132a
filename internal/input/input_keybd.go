//go:build linux || windows

package input

import (
	"fmt"
	"sync"

	"github.com/micmonay/keybd_event"
)

// keybdSender отправляет сочетания через keybd_event (uinput на Linux,
// SendInput на Windows).
type keybdSender struct {
	mu sync.Mutex
	kb keybd_event.KeyBonding
}

func newKeybdSender() (*keybdSender, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, err
	}
	return &keybdSender{kb: kb}, nil
}

func (s *keybdSender) Send(c Combo) error {
	code, ok := vkCodes[c.Key]
	if !ok {
		return fmt.Errorf("%w: key %d", ErrUnsupported, c.Key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.kb.Clear()
	s.kb.SetKeys(code)
	s.kb.HasCTRL(c.Ctrl)
	s.kb.HasSHIFT(c.Shift)

	if err := s.kb.Launching(); err != nil {
		return fmt.Errorf("send %s: %w", c, err)
	}
	return nil
}

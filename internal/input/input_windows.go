//go:build windows

package input

import "github.com/micmonay/keybd_event"

var vkCodes = map[Key]int{
	KeyC:      keybd_event.VK_C,
	KeyV:      keybd_event.VK_V,
	KeyInsert: keybd_event.VK_INSERT,
}

func newSender() (Sender, error) {
	s, err := newKeybdSender()
	if err != nil {
		return nil, err
	}
	return s, nil
}

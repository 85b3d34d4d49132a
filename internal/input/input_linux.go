//go:build linux

package input

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"
	"github.com/micmonay/keybd_event"
)

var vkCodes = map[Key]int{
	KeyC:      keybd_event.VK_C,
	KeyV:      keybd_event.VK_V,
	KeyInsert: keybd_event.VK_INSERT,
}

// uinputSettle - время, за которое виртуальное устройство uinput
// становится видимым для X11/Wayland.
const uinputSettle = 2 * time.Second

func newSender() (Sender, error) {
	kb, err := newKeybdSender()
	if err == nil {
		time.Sleep(uinputSettle)
		return kb, nil
	}
	log.Warn("uinput недоступен, используем xdotool/wtype", "err", err)

	s := &cmdSender{useWayland: os.Getenv("WAYLAND_DISPLAY") != ""}
	tool := s.tool()
	if _, err := exec.LookPath(tool); err != nil {
		return nil, fmt.Errorf("%w: neither /dev/uinput nor %s available", ErrUnsupported, tool)
	}
	return s, nil
}

// cmdSender отправляет сочетания внешними утилитами.
type cmdSender struct {
	useWayland bool
}

func (s *cmdSender) tool() string {
	if s.useWayland {
		return "wtype"
	}
	return "xdotool"
}

func (s *cmdSender) Send(c Combo) error {
	var cmd *exec.Cmd
	if s.useWayland {
		cmd = exec.Command("wtype", wtypeArgs(c)...)
	} else {
		cmd = exec.Command("xdotool", xdotoolArgs(c)...)
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("send %s via %s: %w (%s)", c, s.tool(), err, out)
	}
	return nil
}

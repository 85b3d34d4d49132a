//go:build darwin

package input

/*
#cgo LDFLAGS: -framework ApplicationServices
#include <ApplicationServices/ApplicationServices.h>

// Ctrl из Combo на macOS отображается в Cmd: Cmd+C / Cmd+V.
void postCombo(CGKeyCode key, int cmd, int shift) {
    CGEventFlags flags = 0;
    if (cmd) {
        flags |= kCGEventFlagMaskCommand;
    }
    if (shift) {
        flags |= kCGEventFlagMaskShift;
    }

    CGEventRef keyDown = CGEventCreateKeyboardEvent(NULL, key, true);
    CGEventRef keyUp = CGEventCreateKeyboardEvent(NULL, key, false);

    CGEventSetFlags(keyDown, flags);
    CGEventSetFlags(keyUp, flags);

    CGEventPost(kCGHIDEventTap, keyDown);
    CGEventPost(kCGHIDEventTap, keyUp);

    CFRelease(keyDown);
    CFRelease(keyUp);
}
*/
import "C"

import "fmt"

// Виртуальные коды клавиш macOS (kVK_ANSI_C, kVK_ANSI_V, kVK_Help).
var macKeyCodes = map[Key]C.CGKeyCode{
	KeyC:      8,
	KeyV:      9,
	KeyInsert: 114,
}

type darwinSender struct{}

func newSender() (Sender, error) {
	return &darwinSender{}, nil
}

func (s *darwinSender) Send(c Combo) error {
	code, ok := macKeyCodes[c.Key]
	if !ok {
		return fmt.Errorf("%w: key %d", ErrUnsupported, c.Key)
	}
	C.postCombo(code, boolToInt(c.Ctrl), boolToInt(c.Shift))
	return nil
}

func boolToInt(b bool) C.int {
	if b {
		return 1
	}
	return 0
}

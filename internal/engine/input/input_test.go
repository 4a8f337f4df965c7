package input

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"
)

func TestKeySet(t *testing.T) {
	keys := KeySet{KeyA: true, KeyLeft: false}

	tests := []struct {
		key  Key
		want bool
	}{
		{KeyA, true},
		{KeyLeft, false},
		{KeyS, false},
	}
	for _, tt := range tests {
		if got := keys.Pressed(tt.key); got != tt.want {
			t.Errorf("Pressed(%d) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestPressedBeforeUpdate(t *testing.T) {
	in := New()
	if in.Pressed(KeyEscape) {
		t.Error("no key should be pressed before the first Update")
	}
	if in.Pressed(keyCount) || in.Pressed(-1) {
		t.Error("out of range keys should never be pressed")
	}
}

func TestEveryKeyHasScancode(t *testing.T) {
	for k := KeyLeft; k < keyCount; k++ {
		if scancodes[k] == sdl.SCANCODE_UNKNOWN {
			t.Errorf("key %d has no scancode", k)
		}
	}
}

func TestJustPressed(t *testing.T) {
	state := make([]uint8, sdl.NUM_SCANCODES)
	in := New()

	state[sdl.SCANCODE_F12] = 1
	in.snapshot(state)
	if !in.JustPressed(KeyF12) {
		t.Error("F12 should be just pressed on the first frame it is down")
	}

	in.snapshot(state)
	if in.JustPressed(KeyF12) || !in.Pressed(KeyF12) {
		t.Error("held F12 should be pressed but not just pressed")
	}

	state[sdl.SCANCODE_F12] = 0
	in.snapshot(state)
	if in.Pressed(KeyF12) {
		t.Error("released F12 should not be pressed")
	}
}

func TestParseKeys(t *testing.T) {
	tests := []struct {
		in      string
		want    KeySet
		wantErr bool
	}{
		{"", KeySet{}, false},
		{"a", KeySet{KeyA: true}, false},
		{"A, Right ,up", KeySet{KeyA: true, KeyRight: true, KeyUp: true}, false},
		{"left,,down", KeySet{KeyLeft: true, KeyDown: true}, false},
		{"a,space", nil, true},
	}
	for _, tt := range tests {
		got, err := ParseKeys(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseKeys(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParseKeys(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for k := range tt.want {
			if !got.Pressed(k) {
				t.Errorf("ParseKeys(%q) missing key %d", tt.in, k)
			}
		}
	}
}

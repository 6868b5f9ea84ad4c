package picamraw

import "testing"

func TestResolutionPad(t *testing.T) {
	tests := []struct {
		name string
		in   Resolution
		want Resolution
	}{
		{name: "1080p", in: Resolution{1920, 1080}, want: Resolution{1920, 1088}},
		{name: "already aligned", in: Resolution{2592, 1952}, want: Resolution{2592, 1952}},
		{name: "both rounded", in: Resolution{100, 100}, want: Resolution{128, 112}},
		{name: "zero", in: Resolution{0, 0}, want: Resolution{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Pad(); got != tt.want {
				t.Errorf("Pad() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestResolutionPadTo(t *testing.T) {
	got := Resolution{100, 100}.PadTo(16, 16)
	want := Resolution{112, 112}
	if got != want {
		t.Errorf("PadTo(16, 16) = %v, want %v", got, want)
	}
}

func TestResolutionString(t *testing.T) {
	if got := (Resolution{640, 480}).String(); got != "640x480" {
		t.Errorf("String() = %q, want %q", got, "640x480")
	}
}

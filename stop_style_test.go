package svg2vd

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseStop(t *testing.T) {
	tests := []struct {
		name    string
		style   StyleSet
		want    GradStop
		wantErr bool
	}{
		{name: "stopTest1", style: StyleSet{"stop-color": "#E24926"},
			want: GradStop{Color: color.NRGBA{0xE2, 0x49, 0x26, 0xFF}, Opacity: 1}},
		{name: "stopTest2", style: StyleSet{"stop-color": "#FFF000", "offset": "50%"},
			want: GradStop{Offset: 0.5, Color: color.NRGBA{0xFF, 0xF0, 0x00, 0xFF}, Opacity: 1}},
		{name: "stopTest3", style: StyleSet{"stop-opacity": "2"},
			want: GradStop{Color: color.NRGBA{A: 0xFF}, Opacity: 1}},
		{name: "stopTest4", style: StyleSet{"offset": "1"},
			want: GradStop{Offset: 1, Color: color.NRGBA{A: 0xFF}, Opacity: 1}},
		{name: "currentColor", style: StyleSet{"stop-color": "currentColor", "color": "blue"},
			want: GradStop{Color: color.NRGBA{0, 0, 0xFF, 0xFF}, Opacity: 1}},
		{name: "badColor", style: StyleSet{"stop-color": "nope", "stop-opacity": ".25"},
			want: GradStop{Color: color.NRGBA{A: 0xFF}, Opacity: 0.25}, wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			stop, err := ParseStop(test.style)
			if (err != nil) != test.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, test.wantErr)
			}
			if diff := cmp.Diff(test.want, stop); diff != "" {
				t.Errorf("stop mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGradStopARGB(t *testing.T) {
	s := GradStop{Color: color.NRGBA{0x12, 0x34, 0x56, 0xFF}, Opacity: 0.5}
	if got, want := s.ARGB(), "#80123456"; got != want {
		t.Errorf("ARGB() = %s, want %s", got, want)
	}
}

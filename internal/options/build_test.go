package options

import (
	"errors"
	"testing"

	"github.com/kestrelaudio/screenvoice/internal/host"
)

func TestBuildSkipsBrokenElements(t *testing.T) {
	snap := host.Snapshot{
		Screen: host.ScreenPopup,
		Elements: []host.Element{
			&fakeElement{desc: host.Descriptor{Label: "Reward available"}},
			&fakeElement{descErr: errors.New("tooltip field not populated")},
			nil,
			&fakeElement{desc: host.Descriptor{Label: "Claim reward", Tag: "OK"}, ready: true},
		},
	}
	seq := Build(snap)
	if seq.Count() != 2 {
		t.Fatalf("expected 2 options after skipping broken elements, got %d", seq.Count())
	}
	if seq.Index() != 0 {
		t.Fatalf("expected cursor on first option, got %d", seq.Index())
	}
}

func TestBuildSkipsEmptyLabels(t *testing.T) {
	snap := host.Snapshot{
		Screen: host.ScreenPopup,
		Elements: []host.Element{
			&fakeElement{desc: host.Descriptor{Label: "   "}},
			&fakeElement{desc: host.Descriptor{Label: "<b></b>"}},
			&fakeElement{desc: host.Descriptor{Label: "Close", Dismiss: true}, ready: true},
		},
	}
	seq := Build(snap)
	if seq.Count() != 1 {
		t.Fatalf("expected 1 option, got %d", seq.Count())
	}
}

func TestBuildOrdersDismissLast(t *testing.T) {
	snap := host.Snapshot{
		Screen: host.ScreenPopup,
		Elements: []host.Element{
			&fakeElement{desc: host.Descriptor{Label: "Close", Tag: "Close", Dismiss: true}, ready: true},
			&fakeElement{desc: host.Descriptor{Label: "Cargo delivered.", Informational: true}},
			&fakeElement{desc: host.Descriptor{Label: "Claim reward", Tag: "OK"}, ready: true},
		},
	}
	seq := Build(snap)
	want := []string{"Cargo delivered.", "Claim reward", "Close"}
	if seq.Count() != len(want) {
		t.Fatalf("expected %d options, got %d", len(want), seq.Count())
	}
	for i, label := range want {
		opt, _ := seq.At(i)
		if opt.Label != label {
			t.Fatalf("expected option %d to be %q, got %q", i, label, opt.Label)
		}
	}
}

func TestBuildCleansMarkup(t *testing.T) {
	snap := host.Snapshot{
		Screen: host.ScreenPopup,
		Elements: []host.Element{
			&fakeElement{desc: host.Descriptor{Label: "Cargo delivered to <b>Meridian Station</b>.", Informational: true}},
		},
	}
	seq := Build(snap)
	opt, ok := seq.Current()
	if !ok {
		t.Fatalf("expected a current option")
	}
	if opt.Label != "Cargo delivered to Meridian Station ." {
		t.Fatalf("unexpected cleaned label %q", opt.Label)
	}
}

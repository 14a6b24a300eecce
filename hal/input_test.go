package hal

import "testing"

func TestParseButtons(t *testing.T) {
	got, err := ParseButtons(" Up, l ,right,")
	if err != nil {
		t.Fatalf("ParseButtons: %v", err)
	}
	want := []Button{ButtonUp, ButtonL, ButtonRight}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	if got, err := ParseButtons(""); err != nil || len(got) != 0 {
		t.Fatalf("empty: %v %v", got, err)
	}
	if _, err := ParseButtons("up,start"); err == nil {
		t.Fatal("expected error for unknown button")
	}
}

func TestButtonString(t *testing.T) {
	if ButtonR.String() != "r" || ButtonDown.String() != "down" {
		t.Fatalf("names: %v %v", ButtonR, ButtonDown)
	}
	if s := Button(42).String(); s != "button(42)" {
		t.Fatalf("unknown=%q", s)
	}
}

func TestHeldInputLatchesOnPoll(t *testing.T) {
	down := map[Button]bool{ButtonLeft: true}
	in := &heldInput{source: func(b Button) bool { return down[b] }}

	if in.Pressed(ButtonLeft) {
		t.Fatal("pressed before Poll")
	}
	in.Poll()
	if !in.Pressed(ButtonLeft) || in.Pressed(ButtonUp) {
		t.Fatal("unexpected state after Poll")
	}

	down[ButtonLeft] = false
	if !in.Pressed(ButtonLeft) {
		t.Fatal("state changed between polls")
	}
	in.Poll()
	if in.Pressed(ButtonLeft) {
		t.Fatal("release not seen after Poll")
	}
	if in.Pressed(NumButtons) {
		t.Fatal("out-of-range button pressed")
	}
}

func TestHeldInputWithoutSource(t *testing.T) {
	in := &heldInput{}
	in.Poll()
	for b := Button(0); b < NumButtons; b++ {
		if in.Pressed(b) {
			t.Fatalf("%v pressed with no source", b)
		}
	}
}

package loupe

import "testing"

func TestSettlerSnap(t *testing.T) {
	var s settler
	s.retarget(Transform{Scale: 2}, 0.1)
	s.snap(Transform{Scale: 1.5, TranslateX: 3})
	if s.settling() {
		t.Error("snap should cancel the transition")
	}
	if s.shown != (Transform{Scale: 1.5, TranslateX: 3}) {
		t.Errorf("shown = %+v", s.shown)
	}
}

func TestSettlerEasesOut(t *testing.T) {
	var s settler
	s.snap(IdentityTransform)
	s.retarget(Transform{Scale: 2, TranslateX: -100, TranslateY: 50}, 0.1)

	s.update(0.05)
	if !s.settling() {
		t.Fatal("transition ended early")
	}
	// Ease-out covers more than half the distance in half the time.
	if s.shown.Scale <= 1.5 || s.shown.Scale >= 2 {
		t.Errorf("halfway scale = %v, want in (1.5, 2)", s.shown.Scale)
	}
	if s.shown.TranslateX >= -50 {
		t.Errorf("halfway translateX = %v, want < -50", s.shown.TranslateX)
	}

	s.update(0.06)
	if s.settling() {
		t.Error("transition should be finished")
	}
	if s.shown != s.target {
		t.Errorf("shown = %+v, want exactly %+v", s.shown, s.target)
	}
}

func TestSettlerRetargetToShown(t *testing.T) {
	var s settler
	s.snap(Transform{Scale: 1.2})
	s.retarget(Transform{Scale: 1.2}, 0.1)
	if s.settling() {
		t.Error("retarget to the shown transform should not animate")
	}
}

func TestSettlerUpdateIdle(t *testing.T) {
	var s settler
	s.snap(Transform{Scale: 0.8})
	s.update(1)
	if s.shown.Scale != 0.8 {
		t.Errorf("idle update changed shown to %+v", s.shown)
	}
}

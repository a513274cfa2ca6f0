package systems

import "testing"

func TestScoreAllPopped(t *testing.T) {
	w := newTestWorld(t)

	completions := 0
	w.score.OnComplete(func(score int) {
		completions++
		if score != 4 {
			t.Errorf("completion score = %d, want 4", score)
		}
	})

	for i := range w.slots {
		w.projectiles.Launch(i)
	}
	w.stepUntilIdle(t, 1000)

	if w.score.Score() != 4 {
		t.Errorf("Score() = %d, want 4", w.score.Score())
	}
	if !w.score.Completed() {
		t.Error("Completed() should be true after all pops")
	}
	if completions != 1 {
		t.Errorf("completion fired %d times, want 1", completions)
	}

	// 额外的 Step 不会再次触发
	w.projectiles.Step()
	if completions != 1 {
		t.Errorf("completion fired again after idle step")
	}
}

func TestScoreReset(t *testing.T) {
	s := NewScoreSystem(2)
	fired := 0
	s.OnComplete(func(int) { fired++ })

	s.HandlePop(PopEvent{Index: 0})
	s.HandlePop(PopEvent{Index: 1})
	s.Reset()

	if s.Score() != 0 || s.Completed() {
		t.Errorf("after Reset: score=%d completed=%v", s.Score(), s.Completed())
	}

	// 新一局可以再次完成
	s.HandlePop(PopEvent{Index: 0})
	s.HandlePop(PopEvent{Index: 1})
	if fired != 2 {
		t.Errorf("completion fired %d times across two rounds, want 2", fired)
	}
}

func TestScorePartial(t *testing.T) {
	s := NewScoreSystem(4)
	s.HandlePop(PopEvent{Index: 2})
	if s.Score() != 1 || s.Completed() {
		t.Errorf("score=%d completed=%v, want 1 false", s.Score(), s.Completed())
	}
	if s.Total() != 4 {
		t.Errorf("Total() = %d, want 4", s.Total())
	}
}

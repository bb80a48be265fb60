package engine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerDefaultTable(t *testing.T) {
	s := NewModeScheduler(nil, 6, 2, DefaultRelease)
	require.Equal(t, ModeScatter, s.Mode())

	var at []float64
	var modes []Mode
	const dt = 0.05
	for i := 1; i <= 4000; i++ {
		flips, _ := s.Advance(dt)
		for _, f := range flips {
			at = append(at, float64(i)*dt)
			modes = append(modes, f.To)
		}
	}

	want := []float64{7, 27, 34, 54, 61, 81, 88}
	require.Len(t, at, len(want))
	for i := range want {
		assert.InDelta(t, want[i], at[i], dt+1e-9, "flip %d", i)
	}
	assert.Equal(t, []Mode{
		ModeChase, ModeScatter, ModeChase, ModeScatter, ModeChase, ModeScatter, ModeChase,
	}, modes)
	assert.Equal(t, ModeChase, s.Mode(), "last chase lasts forever")
}

func TestSchedulerFrightenedPausesTable(t *testing.T) {
	s := NewModeScheduler([]Phase{{ModeScatter, 7}, {ModeChase, 0}}, 6, 2, DefaultRelease)

	flips, _ := s.Advance(5)
	require.Empty(t, flips)

	s.Frighten()
	require.True(t, s.Frightened())

	flips, ended := s.Advance(5.5)
	assert.Empty(t, flips, "table is paused while frightened")
	assert.False(t, ended)
	assert.True(t, s.FrightenedEnding())

	// 0.5s ends the window; the remaining 1.5s resumes the table at 5s.
	flips, ended = s.Advance(2)
	assert.True(t, ended)
	assert.Empty(t, flips)
	assert.False(t, s.Frightened())
	assert.Equal(t, ModeScatter, s.Mode())

	flips, _ = s.Advance(0.5)
	require.Len(t, flips, 1)
	assert.Equal(t, Transition{From: ModeScatter, To: ModeChase}, flips[0])
}

func TestSchedulerFrightenedRetriggerResets(t *testing.T) {
	s := NewModeScheduler(nil, 6, 2, DefaultRelease)
	s.Frighten()
	s.Advance(4.5)
	assert.True(t, s.FrightenedEnding())

	s.Frighten()
	assert.InDelta(t, 6, s.FrightenedLeft(), 1e-9)
	assert.False(t, s.FrightenedEnding())
}

func TestSchedulerEndingWindow(t *testing.T) {
	s := NewModeScheduler(nil, 6, 2, DefaultRelease)
	s.Frighten()

	s.Advance(3.9)
	assert.False(t, s.FrightenedEnding())
	s.Advance(0.2)
	assert.True(t, s.FrightenedEnding())
	s.Advance(2)
	assert.False(t, s.Frightened())
	assert.False(t, s.FrightenedEnding())
}

func TestSchedulerRelease(t *testing.T) {
	s := NewModeScheduler(nil, 6, 2, DefaultRelease)
	assert.True(t, s.ReleaseDue(RoleChaser))
	assert.False(t, s.ReleaseDue(RoleAmbusher))

	s.Advance(2)
	assert.True(t, s.ReleaseDue(RoleAmbusher))
	assert.False(t, s.ReleaseDue(RoleFlanker))

	// The round clock keeps running while frightened.
	s.Frighten()
	s.Advance(6)
	assert.True(t, s.ReleaseDue(RoleFeigner))
	assert.InDelta(t, 8, s.Elapsed(), 1e-9)

	s.Reset()
	assert.False(t, s.ReleaseDue(RoleAmbusher))
	assert.Zero(t, s.PhaseIndex())
}

func TestSchedulerZeroDelta(t *testing.T) {
	s := NewModeScheduler(nil, 6, 2, DefaultRelease)
	flips, ended := s.Advance(0)
	assert.Nil(t, flips)
	assert.False(t, ended)
	assert.Zero(t, s.Elapsed())

	flips, _ = s.Advance(math.Inf(1))
	assert.NotEmpty(t, flips)
}

func TestApplyGlobalReversal(t *testing.T) {
	ghosts := []Ghost{
		{Role: RoleChaser, Dir: DirLeft, Mode: ModeScatter, Activity: Active},
		{Role: RoleAmbusher, Dir: DirUp, Mode: ModeScatter, Activity: Held},
		{Role: RoleFlanker, Dir: DirRight, Mode: ModeFrightened, Activity: Active},
		{Role: RoleFeigner, Dir: DirDown, Mode: ModeEaten, Activity: Active},
	}

	ApplyGlobalReversal(ghosts, ModeChase)

	assert.Equal(t, DirRight, ghosts[0].Dir)
	assert.Equal(t, ModeChase, ghosts[0].Mode)
	assert.True(t, ghosts[0].forceReverse)

	assert.Equal(t, DirUp, ghosts[1].Dir, "held pursuers do not reverse")
	assert.Equal(t, ModeChase, ghosts[1].Mode)
	assert.False(t, ghosts[1].forceReverse)

	assert.Equal(t, DirRight, ghosts[2].Dir)
	assert.Equal(t, ModeFrightened, ghosts[2].Mode)

	assert.Equal(t, DirDown, ghosts[3].Dir)
	assert.Equal(t, ModeEaten, ghosts[3].Mode)
}

func TestFrightenDoesNotDoubleReverse(t *testing.T) {
	ghosts := []Ghost{
		{Role: RoleChaser, Dir: DirLeft, Mode: ModeChase, Activity: Active},
		{Role: RoleAmbusher, Dir: DirUp, Mode: ModeChase, Activity: Releasing},
		{Role: RoleFlanker, Dir: DirDown, Mode: ModeEaten, Activity: Active},
	}

	frighten(ghosts)
	assert.Equal(t, DirRight, ghosts[0].Dir)
	assert.Equal(t, ModeFrightened, ghosts[0].Mode)
	assert.Equal(t, ModeChase, ghosts[1].Mode, "only active pursuers are frightened")
	assert.Equal(t, ModeEaten, ghosts[2].Mode)

	frighten(ghosts)
	assert.Equal(t, DirRight, ghosts[0].Dir, "second trigger must not reverse again")

	calm(ghosts, ModeScatter)
	assert.Equal(t, ModeScatter, ghosts[0].Mode)
	assert.Equal(t, ModeChase, ghosts[1].Mode)
	assert.Equal(t, ModeEaten, ghosts[2].Mode)
}

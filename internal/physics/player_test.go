package physics

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestBodyDampingNeverReverses(t *testing.T) {
	b := NewBody(mgl32.Vec3{}, 10)
	b.Velocity = mgl32.Vec3{4, 0, 0}
	b.Step(mgl32.Vec3{}, 0.5)
	if b.Velocity != (mgl32.Vec3{}) {
		t.Errorf("velocity = %v, want zero", b.Velocity)
	}
	if NewBody(mgl32.Vec3{}, -3).Damping != 0 {
		t.Error("negative damping not clamped")
	}
}

func TestPlayerReachesWalkingSpeed(t *testing.T) {
	p := NewPlayer(0, 0, 5, 30, 10, 195)
	for i := 0; i < 600; i++ {
		p.Step(Intent{Forward: 1}, 0, 1.0/60)
	}
	v := p.Body.Velocity
	if math32.Abs(v.Len()-30) > 0.5 || v.Z() >= 0 {
		t.Errorf("velocity = %v, want about 30 toward -z", v)
	}
}

func TestPlayerDirectionFollowsYaw(t *testing.T) {
	tests := []struct {
		name  string
		in    Intent
		yaw   float32
		wantX float32
		wantZ float32
	}{
		{"forward", Intent{Forward: 1}, 0, 0, -1},
		{"strafe right", Intent{Right: 1}, 0, 1, 0},
		{"forward after left turn", Intent{Forward: 1}, math32.Pi / 2, -1, 0},
		{"back", Intent{Forward: -1}, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(0, 0, 5, 30, 10, 195)
			p.Step(tt.in, tt.yaw, 0.1)
			d := p.Position().Sub(mgl32.Vec3{0, 5, 0})
			d = d.Normalize()
			if math32.Abs(d.X()-tt.wantX) > 1e-3 || math32.Abs(d.Z()-tt.wantZ) > 1e-3 {
				t.Errorf("moved along %v, want (%v, %v)", d, tt.wantX, tt.wantZ)
			}
		})
	}
}

func TestPlayerDiagonalIsNotFaster(t *testing.T) {
	straight := NewPlayer(0, 0, 5, 30, 10, 195)
	diagonal := NewPlayer(0, 0, 5, 30, 10, 195)
	straight.Step(Intent{Forward: 1}, 0, 0.1)
	diagonal.Step(Intent{Forward: 1, Right: 1}, 0, 0.1)
	if math32.Abs(straight.Body.Velocity.Len()-diagonal.Body.Velocity.Len()) > 1e-4 {
		t.Errorf("straight %v diagonal %v", straight.Body.Velocity.Len(), diagonal.Body.Velocity.Len())
	}
}

func TestPlayerClampedToBoundsAtEyeHeight(t *testing.T) {
	p := NewPlayer(190, -190, 5, 30, 10, 195)
	p.Body.Position[1] = 40
	for i := 0; i < 300; i++ {
		p.Step(Intent{Forward: 1, Right: 1}, 0, 1.0/30)
	}
	pos := p.Position()
	if pos.X() != 195 || pos.Z() != -195 || pos.Y() != 5 {
		t.Errorf("position = %v, want clamped corner at eye height", pos)
	}
}

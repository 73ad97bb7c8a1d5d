package gamemath

import "math"

// VelocityFromAngle converts a polar launch (angle in radians, speed in
// pixels per second) into velocity components.
func VelocityFromAngle(angle, speed float64) (velX, velY float64) {
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}

// ApplyDrag reduces speed toward zero by drag amount without overshooting.
func ApplyDrag(speed, drag float64) float64 {
	if speed > drag {
		return speed - drag
	}
	if speed < -drag {
		return speed + drag
	}
	return 0
}

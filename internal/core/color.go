package core

// Color is a scene role for a screen cell. Front-ends map each role to
// whatever their display supports (ANSI codes in the terminal).
type Color uint8

const (
	ColorDefault Color = iota
	ColorBarrier
	ColorGround
	ColorFlyer
	ColorHit    // Flyer after a collision
	ColorText   // Advisory messages
	ColorNotice // Pause banner
	ColorMuted  // Status bar
)

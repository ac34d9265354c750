package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the playfield
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)  // Tokyo Night background
	RgbGrass      = tcell.NewRGBColor(22, 48, 30)  // Fielding area
	RgbPitch      = tcell.NewRGBColor(120, 100, 60) // Strip under the delivery line

	RgbWindowBand   = tcell.NewRGBColor(80, 70, 20)    // Timing window rows
	RgbWindowEdge   = tcell.NewRGBColor(255, 220, 0)   // Window boundary marks
	RgbMarker       = tcell.NewRGBColor(255, 255, 255) // Batsman
	RgbFielderRest  = tcell.NewRGBColor(0, 200, 0)
	RgbFielderChase = tcell.NewRGBColor(50, 255, 50)

	RgbDelivery       = tcell.NewRGBColor(255, 80, 80)
	RgbStruckClean    = tcell.NewRGBColor(255, 255, 120)
	RgbStruckDecoy    = tcell.NewRGBColor(255, 165, 0)
	RgbTrailGray      = tcell.NewRGBColor(200, 200, 200)
	RgbTrailGrayFaint = tcell.NewRGBColor(90, 90, 90)

	RgbStatusText  = tcell.NewRGBColor(0, 0, 0)
	RgbStatusBar   = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbMessageText = tcell.NewRGBColor(255, 255, 255)
	RgbWinText     = tcell.NewRGBColor(144, 238, 144)
	RgbLostText    = tcell.NewRGBColor(255, 0, 0)
	RgbCountdown   = tcell.NewRGBColor(255, 165, 0)
)

// trailColor fades from faint at the tail to bright at the head
func trailColor(i, n int) tcell.Color {
	if n <= 1 {
		return RgbTrailGray
	}
	t := float64(i) / float64(n-1)
	r0, g0, b0 := RgbTrailGrayFaint.RGB()
	r1, g1, b1 := RgbTrailGray.RGB()
	lerp := func(a, b int32) int32 { return a + int32(float64(b-a)*t) }
	return tcell.NewRGBColor(lerp(r0, r1), lerp(g0, g1), lerp(b0, b1))
}

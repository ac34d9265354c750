// Package render draws session snapshots onto a tcell screen
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sixer/core"
	"github.com/lixenwraith/sixer/engine"
	"github.com/lixenwraith/sixer/event"
)

// Glyphs
const (
	glyphMarker  = 'B'
	glyphFielder = 'F'
	glyphBall    = 'o'
	glyphStruck  = '●'
	glyphTrail   = '·'
	glyphWindow  = '─'
	glyphCrease  = '═'
)

// Renderer owns the screen between Init and Fini
// Draw is called from a single goroutine
type Renderer struct {
	screen tcell.Screen
	muted  bool
}

// NewRenderer wraps an initialized screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// SetMuted updates the mute indicator shown in the HUD
func (r *Renderer) SetMuted(muted bool) {
	r.muted = muted
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(snap engine.Snapshot) {
	bg := tcell.StyleDefault.Background(RgbBackground)
	r.screen.SetStyle(bg)
	r.screen.Clear()

	w, h := r.screen.Size()
	vp := NewViewport(snap.Field, w, h)

	r.drawField(vp, snap)
	r.drawWindow(vp, snap)
	r.drawFielders(vp, snap)
	if snap.Delivery != nil {
		r.drawBall(vp, snap.Delivery, glyphBall, RgbDelivery)
	}
	if snap.Struck != nil {
		color := RgbStruckClean
		if snap.Struck.Deceptive {
			color = RgbStruckDecoy
		}
		r.drawBall(vp, snap.Struck, glyphStruck, color)
	}
	r.drawMarker(vp, snap)
	r.drawHUD(w, snap)

	r.screen.Show()
}

func (r *Renderer) drawField(vp Viewport, snap engine.Snapshot) {
	grass := tcell.StyleDefault.Background(RgbGrass)
	top, bottom := vp.Row(float64(snap.Fielding.Y)), vp.Row(float64(snap.Fielding.Y+snap.Fielding.Height))
	left, right := vp.Col(float64(snap.Fielding.X)), vp.Col(float64(snap.Fielding.X+snap.Fielding.Width))
	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			r.screen.SetContent(x, y, ' ', nil, grass)
		}
	}

	// Pitch strip from the bowler to the crease
	pitch := tcell.StyleDefault.Background(RgbPitch)
	col := vp.Col(snap.Marker.X)
	for y := vp.Row(float64(snap.Field.Y)); y <= vp.Row(snap.Marker.Y); y++ {
		r.screen.SetContent(col, y, ' ', nil, pitch)
	}
}

func (r *Renderer) drawWindow(vp Viewport, snap engine.Snapshot) {
	band := tcell.StyleDefault.Background(RgbWindowBand).Foreground(RgbWindowEdge)
	col := vp.Col(snap.Marker.X)
	half := vp.Cols / 20
	if half < 2 {
		half = 2
	}
	top, bottom := vp.Row(snap.WindowTop), vp.Row(snap.WindowBottom)
	for y := top; y <= bottom; y++ {
		for x := col - half; x <= col+half; x++ {
			ch := ' '
			if y == top || y == bottom {
				ch = glyphWindow
			}
			r.screen.SetContent(x, y, ch, nil, band)
		}
	}
}

func (r *Renderer) drawMarker(vp Viewport, snap engine.Snapshot) {
	x, y, ok := vp.Cell(snap.Marker)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbMarker).Bold(true)
	for dx := -2; dx <= 2; dx++ {
		r.screen.SetContent(x+dx, y, glyphCrease, nil, style)
	}
	r.screen.SetContent(x, y, glyphMarker, nil, style)
}

func (r *Renderer) drawFielders(vp Viewport, snap engine.Snapshot) {
	for _, f := range snap.Fielders {
		x, y, ok := vp.Cell(f.Pos)
		if !ok {
			continue
		}
		color := RgbFielderRest
		if f.Vel != (core.Point{}) {
			color = RgbFielderChase
		}
		r.screen.SetContent(x, y, glyphFielder, nil, tcell.StyleDefault.Background(RgbGrass).Foreground(color).Bold(true))
	}
}

func (r *Renderer) drawBall(vp Viewport, ball *engine.BallView, glyph rune, color tcell.Color) {
	n := len(ball.Trail)
	for i, p := range ball.Trail {
		if x, y, ok := vp.Cell(p); ok {
			r.screen.SetContent(x, y, glyphTrail, nil, tcell.StyleDefault.Background(RgbBackground).Foreground(trailColor(i, n)))
		}
	}
	if x, y, ok := vp.Cell(ball.Pos); ok {
		r.screen.SetContent(x, y, glyph, nil, tcell.StyleDefault.Background(RgbBackground).Foreground(color).Bold(true))
	}
}

func (r *Renderer) drawHUD(w int, snap engine.Snapshot) {
	bar := tcell.StyleDefault.Background(RgbStatusBar).Foreground(RgbStatusText)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, bar)
	}
	status := StatusLine(snap, r.muted)
	drawText(r.screen, 1, 0, status, bar)

	msg, color := Message(snap)
	style := tcell.StyleDefault.Background(RgbBackground).Foreground(color).Bold(true)
	x := (w - len([]rune(msg))) / 2
	if x < 0 {
		x = 0
	}
	drawText(r.screen, x, 1, msg, style)
}

// StatusLine is the top HUD row
func StatusLine(snap engine.Snapshot, muted bool) string {
	s := fmt.Sprintf("SIXER  Sixes %d/%d  Balls Left %d  Runs %d", snap.Consecutive, snap.Target, snap.Remaining, snap.Runs)
	if muted {
		s += "  [muted]"
	}
	return s
}

// Message is the phase banner with its color
func Message(snap engine.Snapshot) (string, tcell.Color) {
	switch snap.Phase {
	case core.PhaseIdle:
		return "Press Enter to start", RgbMessageText
	case core.PhaseCountdown:
		return fmt.Sprintf("Ball %d of %d ... %d", snap.Attempt, snap.Attempts, snap.CountdownStep), RgbCountdown
	case core.PhaseDeliveryInFlight:
		return "Space to swing", RgbMessageText
	case core.PhaseResolutionPending:
		return "In the air...", RgbMessageText
	case core.PhaseAttemptSuccess:
		return "SIX!", RgbWinText
	case core.PhaseGameWon:
		return fmt.Sprintf("%d sixes, %d runs! Enter to play again", snap.Consecutive, snap.Runs), RgbWinText
	case core.PhaseGameLost:
		return lostMessage(snap.Reason) + " Enter to play again", RgbLostText
	}
	return "", RgbMessageText
}

func lostMessage(reason event.Reason) string {
	switch reason {
	case event.ReasonMistimed:
		return "Mistimed!"
	case event.ReasonMissed:
		return "Missed!"
	case event.ReasonCaught:
		return "Caught!"
	case event.ReasonExhausted:
		return "Out of balls!"
	}
	return "Out!"
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}

package page

// Emissive intensity of a highlighted page and the smooth time to reach it.
const (
	HighlightEmissive   = 0.22
	highlightSmoothTime = 0.1
)

// Appearance is the page's own material state. Every page has one so that
// highlighting one page never bleeds into another.
type Appearance struct {
	Highlighted bool
	emissive    axis
}

// Emissive returns the current emissive intensity.
func (a *Appearance) Emissive() float32 { return a.emissive.value }

// Update eases the emissive intensity toward the highlight target.
func (a *Appearance) Update(dt float32) {
	var target float32
	if a.Highlighted {
		target = HighlightEmissive
	}
	DampExponential.damp(&a.emissive, target, highlightSmoothTime, dt)
}

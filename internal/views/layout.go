package views

const DefaultCompactBreakpoint = 1024

// Layout derives the compact flag from a viewport width. The flag is
// recomputed for every width reported, never stored.
type Layout struct {
	breakpoint int
}

func NewLayout(breakpoint int) *Layout {
	if breakpoint <= 0 {
		breakpoint = DefaultCompactBreakpoint
	}

	return &Layout{breakpoint: breakpoint}
}

func (l *Layout) Breakpoint() int { return l.breakpoint }

// CompactAt reports whether width is at or below the breakpoint. Unknown
// widths count as wide.
func (l *Layout) CompactAt(width int) bool {
	return width > 0 && width <= l.breakpoint
}

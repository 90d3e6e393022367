package entity

// WindowKind tags the two logical windows of the shell.
type WindowKind int

const (
	// WindowPanel is the always visible strip that reveals the drawer.
	WindowPanel WindowKind = iota
	// WindowDrawer is the pull-down surface, hidden by default.
	WindowDrawer
)

// String returns a human-readable representation of the window kind.
func (k WindowKind) String() string {
	switch k {
	case WindowPanel:
		return "panel"
	case WindowDrawer:
		return "drawer"
	default:
		return "unknown"
	}
}

// ClampOffset bounds a drawer offset to [0, maxOffset].
// A non-positive maxOffset means the drawer height is not known yet, in which
// case only the lower bound applies.
func ClampOffset(offset, maxOffset float64) float64 {
	if offset < 0 {
		return 0
	}
	if maxOffset > 0 && offset > maxOffset {
		return maxOffset
	}
	return offset
}

package styles

const (
	CheckIcon   string = "✓"
	ErrorIcon   string = "✗"
	WarningIcon string = "⚠"
	InfoIcon    string = "ℹ"
	CursorIcon  string = "▶"
	DirtyIcon   string = "●"
	FloorIcon   string = "⌊"
)

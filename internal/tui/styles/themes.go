package styles

// NewWuchangTheme is the default theme: ink black, lacquer red and old gold
func NewWuchangTheme() *Theme {
	return &Theme{
		Name:   "wuchang",
		IsDark: true,

		// Brand colors
		Primary:   ParseHex("#B22222"), // Lacquer red
		Secondary: ParseHex("#D4A857"), // Old gold
		Tertiary:  ParseHex("#8C5A3C"), // Bronze
		Accent:    ParseHex("#E8C37A"), // Pale gold

		// Background colors
		BgBase:    ParseHex("#141214"), // Ink
		BgSubtle:  ParseHex("#2A2326"), // Smoke
		BgOverlay: ParseHex("#1C181A"),

		// Foreground colors
		FgBase:     ParseHex("#EDE6DA"), // Rice paper
		FgMuted:    ParseHex("#B3A894"),
		FgSubtle:   ParseHex("#7D7466"),
		FgInverted: ParseHex("#141214"),

		// Border colors
		Border:      ParseHex("#4A3F3A"),
		BorderFocus: ParseHex("#D4A857"),

		// Semantic colors
		Success: ParseHex("#6BA368"),
		Error:   ParseHex("#E05A47"),
		Warning: ParseHex("#E8A33D"),
		Info:    ParseHex("#6C9BC7"),

		Yellow: ParseHex("#E8C37A"),
		Green:  ParseHex("#8DBF7A"),
		Cyan:   ParseHex("#7FB8B0"),
		Orange: ParseHex("#D9823B"),
	}
}

// NewDarkTheme creates a professional dark theme
func NewDarkTheme() *Theme {
	return &Theme{
		Name:   "dark",
		IsDark: true,

		// Brand colors
		Primary:   ParseHex("#60a5fa"), // Sky blue
		Secondary: ParseHex("#a78bfa"), // Violet
		Tertiary:  ParseHex("#f472b6"), // Pink
		Accent:    ParseHex("#34d399"), // Emerald

		// Background colors
		BgBase:    ParseHex("#0f172a"), // Slate 900
		BgSubtle:  ParseHex("#334155"), // Slate 700
		BgOverlay: ParseHex("#475569"), // Slate 600

		// Foreground colors
		FgBase:     ParseHex("#f8fafc"), // Slate 50
		FgMuted:    ParseHex("#cbd5e1"), // Slate 300
		FgSubtle:   ParseHex("#94a3b8"), // Slate 400
		FgInverted: ParseHex("#0f172a"), // Slate 900

		// Border colors
		Border:      ParseHex("#334155"), // Slate 700
		BorderFocus: ParseHex("#60a5fa"), // Sky 400

		// Semantic colors
		Success: ParseHex("#34d399"),
		Error:   ParseHex("#f87171"),
		Warning: ParseHex("#fbbf24"),
		Info:    ParseHex("#60a5fa"),

		Yellow: ParseHex("#fbbf24"),
		Green:  ParseHex("#34d399"),
		Cyan:   ParseHex("#67e8f9"),
		Orange: ParseHex("#fb923c"),
	}
}

// NewFireTheme creates a red->yellow gradient theme
func NewFireTheme() *Theme {
	return &Theme{
		Name:   "fire",
		IsDark: true,

		// Brand colors - fire gradient
		Primary:   ParseHex("#C0392B"), // Fire red
		Secondary: ParseHex("#F4D03F"), // Bright yellow
		Tertiary:  ParseHex("#E67E22"), // Orange
		Accent:    ParseHex("#F39C12"), // Golden orange

		// Background colors - slate gray
		BgBase:    ParseHex("#2C3E50"),
		BgSubtle:  ParseHex("#3D566E"),
		BgOverlay: ParseHex("#4A6278"),

		// Foreground colors
		FgBase:     ParseHex("#f5f6fa"), // Lynx white
		FgMuted:    ParseHex("#a0a0a0"),
		FgSubtle:   ParseHex("#6F6F70"),
		FgInverted: ParseHex("#1e1e1e"),

		// Border colors
		Border:      ParseHex("#5D6D7E"),
		BorderFocus: ParseHex("#F39C12"),

		// Semantic colors
		Success: ParseHex("#27AE60"), // Emerald green
		Error:   ParseHex("#E74C3C"), // Bright red
		Warning: ParseHex("#F39C12"), // Orange (matches accent)
		Info:    ParseHex("#3498DB"), // Sky blue

		Yellow: ParseHex("#F4D03F"),
		Green:  ParseHex("#3DCC91"),
		Cyan:   ParseHex("#00CED1"),
		Orange: ParseHex("#F97316"),
	}
}

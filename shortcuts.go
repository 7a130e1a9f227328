package slidetheme

// Shortcuts returns the named class macros used across the deck.
func Shortcuts() map[string]string {
	return map[string]string{
		// Slide background
		"bg-main": "bg-white text-[#181818] dark:(bg-[#121212] text-[#ddd])",

		// Gradient backgrounds
		"bg-gradient-purple": "bg-gradient-to-br from-purple-500/30 to-purple-600/20",
		"bg-gradient-dark":   "bg-gradient-to-br from-[rgba(54,56,85,0.82)] to-[rgba(26,28,44,0.92)]",
		"bg-gradient-card":   "bg-gradient-to-br from-[rgba(54,56,85,0.5)] to-[rgba(24,26,38,0.45)]",

		// Purple borders
		"border-purple-light":  "border-[rgba(141,141,255,0.35)]",
		"border-purple-medium": "border-[rgba(139,140,215,0.28)]",
		"border-purple-bright": "border-[#A3A3FF]",
		"border-subtle":        "border-[rgba(122,126,160,0.38)]",

		// Slide layout
		"slide-content":  "w-full h-full flex flex-col justify-center items-center",
		"slide-title":    "text-6xl font-bold mb-8",
		"slide-subtitle": "text-2xl opacity-80",

		// Glows
		"glow-purple":      "shadow-[0_0_25px_rgba(109,118,255,0.35)]",
		"glow-blue":        "shadow-[0_0_20px_rgba(93,93,255,0.4)]",
		"glow-purple-soft": "shadow-[0_0_15px_rgba(141,141,255,0.25)]",

		"card-purple": "border-1.5 border-purple-medium rounded-xl bg-gradient-dark shadow-[0_8px_32px_0_rgba(60,66,110,0.38),0_0_0_2px_rgba(141,141,255,0.08)]",
	}
}

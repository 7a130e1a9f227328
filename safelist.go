package slidetheme

// Safelist returns the classes always emitted, whether or not a scan of the
// slide sources finds them. Several are assembled dynamically in slide
// components and never appear literally.
func Safelist() []string {
	return []string{
		// Purple theme text
		"text-purple-100",
		"text-purple-200",
		"text-purple-300",
		"text-purple-400",
		"text-purple-500",
		"text-purple-600",
		"text-purple-700",
		"text-purple-800",
		"text-purple-900",
		"text-purple-light",
		"text-purple-bright",
		"text-blue-400",
		"text-blue-500",
		"text-blue-600",
		"text-red-400",
		"text-red-500",
		"text-green-400",
		"text-green-500",
		"text-orange-300",
		"text-orange-500",
		"text-amber-300",

		// Backgrounds
		"bg-purple-500",
		"bg-blue-400",
		"bg-green-900",
		"bg-red-900",
		"bg-orange-900",

		"bg-gradient-purple",
		"bg-gradient-dark",
		"bg-gradient-card",

		// Borders
		"border-purple-light",
		"border-purple-medium",
		"border-purple-bright",
		"border-subtle",
		"border-1.5",
		"border-2",
		"border-solid",

		"glow-purple",
		"glow-blue",
		"glow-purple-soft",

		"card-purple",

		// Typography and opacity
		"font-bold",
		"font-semibold",
		"opacity-70",
		"opacity-80",
		"bg-opacity-30",
		"bg-opacity-40",

		// Grid
		"grid-cols-2",
		"grid-cols-3",
		"gap-3",
		"gap-4",
		"gap-6",
		"gap-8",
		"gap-12",
		"gap-16",

		// Spacing
		"mt-4",
		"mt-6",
		"mt-8",
		"mt-12",
		"mt-16",
		"mb-4",
		"mb-8",
		"pt-12",
		"px-3",
		"px-4",
		"px-5",
		"px-6",
		"py-2",
		"py-3",
		"py-4",

		"text-xl",
		"text-2xl",
		"text-3xl",
		"text-4xl",
		"leading-relaxed",

		// Layout
		"text-center",
		"text-left",
		"flex",
		"inline-flex",
		"items-center",
		"justify-center",
		"space-y-2",
		"space-y-3",
		"space-y-4",

		// Interactive
		"cursor-pointer",
		"hover:opacity-100",
		"hover:bg-gray-400",
		"hover:bg-opacity-20",
		"transition",
		"transition-all",
		"duration-300",
		"duration-500",

		// Positioning
		"abs-br",
		"m-6",
		"p-2",
		"p-3",

		"rounded",
		"rounded-md",
		"rounded-lg",
		"rounded-xl",
		"border",
		"border-main",
		"border-dashed",
		"border-red-500",

		"backdrop-blur-sm",
		"overflow-hidden",
	}
}

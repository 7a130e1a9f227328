package slidetheme

import "github.com/agiangrant/slidetheme/tw"

// Rules returns the custom utilities the built-in scales cannot express.
func Rules() []tw.Rule {
	return []tw.Rule{
		tw.StaticRule(`^inset-full$`, tw.Decl("inset", "100%")),
		tw.StaticRule(`^scale-98$`, tw.Decl("transform", "scale(0.98)")),
	}
}

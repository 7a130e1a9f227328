package tw

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiteralPattern(t *testing.T) {
	tests := []struct {
		pattern string
		want    string
		ok      bool
	}{
		{`^inset-full$`, "inset-full", true},
		{`^scale-98$`, "scale-98", true},
		{`^border-1\.5$`, "border-1.5", true},
		{`^p-(\d+)$`, "", false},
		{`^a|b$`, "", false},
		{`inset-full`, "", false},
		{`^inset-full`, "", false},
		{`(?i)^abc$`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got, ok := LiteralPattern(regexp.MustCompile(tt.pattern))
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidClassName(t *testing.T) {
	valid := []string{
		"p-4", "border-1.5", "w-1/2", "hover:opacity-100", "md:hover:bg-purple-500/30",
		"-mt-2", "text-[#181818]", "shadow-[0_0_25px_rgba(109,118,255,0.35)]", "card-purple",
	}
	for _, s := range valid {
		assert.True(t, ValidClassName(s), s)
	}

	invalid := []string{"", "Bad Class", "4p", "p-4!", "hover:", "bg-[a b]", "[#fff]", "p_4?"}
	for _, s := range invalid {
		assert.False(t, ValidClassName(s), s)
	}
}

func findIssue(r Report, kind, subject string) (Issue, bool) {
	for _, i := range r.Issues {
		if i.Kind == kind && i.Subject == subject {
			return i, true
		}
	}
	return Issue{}, false
}

func TestCheck(t *testing.T) {
	cfg := Config{
		Theme: Theme{Colors: map[string]Color{
			"brand": Palette(map[string]string{
				"100": "#f0f0ff", "200": "#e0e0ff", "300": "#d0d0ff", "400": "#c0c0ff",
				"500": "#b0b0ff", "600": "#a0a0ff", "700": "#9090ff", "800": "#8080ff",
				"950": "#101010",
			}),
			"broken": Scalar("#12"),
			"ok":     Scalar("var(--ok)"),
		}},
		Shortcuts: map[string]string{
			"loop":  "loop",
			"bad":   "p-4 nope-x",
			"empty": " ",
			"good":  "p-4 hover:m-2",
		},
		Rules: []Rule{
			StaticRule(`^p-\d+$`, Decl("padding", "1px")),
			StaticRule(`^inset-full$`, Decl("inset", "100%")),
		},
		Safelist: []string{"p-4", "p-4", "Bad Class", "missing-zz", "good"},
	}

	r := Check(cfg)
	assert.False(t, r.OK())

	expectErrors := [][2]string{
		{"palette", "brand"},
		{"color", "broken"},
		{"shortcut", "loop"},
		{"shortcut", "bad"},
		{"shortcut", "empty"},
		{"safelist", "Bad Class"},
	}
	for _, want := range expectErrors {
		issue, ok := findIssue(r, want[0], want[1])
		if assert.True(t, ok, "missing %s issue for %q", want[0], want[1]) {
			assert.Equal(t, SeverityError, issue.Severity, want)
		}
	}

	expectWarnings := [][2]string{
		{"rule", `^p-\d+$`},
		{"safelist", "p-4"},
		{"safelist", "missing-zz"},
	}
	for _, want := range expectWarnings {
		issue, ok := findIssue(r, want[0], want[1])
		if assert.True(t, ok, "missing %s issue for %q", want[0], want[1]) {
			assert.Equal(t, SeverityWarning, issue.Severity, want)
		}
	}

	for _, subject := range []string{"good", "ok", `^inset-full$`} {
		for _, i := range r.Issues {
			assert.NotEqual(t, subject, i.Subject, "unexpected issue %v", i)
		}
	}

	palette, _ := findIssue(r, "palette", "brand")
	assert.Contains(t, palette.Message, "missing shades 900")
	assert.Contains(t, r.Issues[len(r.Issues)-1].Error(), "missing-zz")

	loop, _ := findIssue(r, "shortcut", "loop")
	assert.Contains(t, loop.Message, "cycle")

	err := r.Err()
	require.Error(t, err)
	var issue Issue
	assert.True(t, errors.As(err, &issue))
}

func TestCheckReportsBothPaletteProblems(t *testing.T) {
	r := Check(Config{Theme: Theme{Colors: map[string]Color{
		"gray": Palette(map[string]string{"50": "#fff", "100": "#eee"}),
	}}})

	var msgs []string
	for _, i := range r.Errors() {
		msgs = append(msgs, i.Message)
	}
	assert.Contains(t, msgs, "missing shades 200, 300, 400, 500, 600, 700, 800, 900")
	assert.Contains(t, msgs, "unexpected shades 50")
}

func TestCheckEmptyConfig(t *testing.T) {
	r := Check(Config{})
	assert.True(t, r.OK())
	assert.Empty(t, r.Issues)
	assert.NoError(t, r.Err())
}

func TestCheckInvalidConfig(t *testing.T) {
	r := Check(Config{Shortcuts: map[string]string{"dark": "p-4"}})
	require.Len(t, r.Issues, 1)
	assert.Equal(t, "config", r.Issues[0].Kind)
	assert.False(t, r.OK())
}

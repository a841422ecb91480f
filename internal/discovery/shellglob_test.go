package discovery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/viant/treetags/internal/discovery"
)

func TestShellToRegex(t *testing.T) {
	cases := []struct{ in, want string }{
		{"foo*", "foo.*"},
		{"bar?", "bar."},
		{`c\.d`, `c\.d`},
		{"[abc][def]", "[abc][def]"},
		{`\\`, `\\`},
		{"", ""},
		{`a*[b-e]*f\.g?`, `a.*[b-e].*f\.g.`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, discovery.ShellToRegex(c.in), "input %q", c.in)
	}
}

package nav_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"roster/internal/nav"
)

// spy records resets. Tests in this package cannot run in parallel: the
// navigation handle is process-wide.
type spy struct {
	routes []nav.Route
}

func (s *spy) Reset(route nav.Route) {
	s.routes = append(s.routes, route)
}

func TestReset_ForwardsToHandle(t *testing.T) {
	s := &spy{}
	nav.Set(s)
	defer nav.Set(nil)

	ok := nav.Reset(nav.RouteSignIn)

	assert.True(t, ok)
	assert.Equal(t, []nav.Route{nav.RouteSignIn}, s.routes)
}

func TestReset_DroppedWhenUnset(t *testing.T) {
	nav.Set(nil)

	ok := nav.Reset(nav.RouteSignIn)
	assert.False(t, ok)
}

func TestSet_LastWriteWins(t *testing.T) {
	first := &spy{}
	second := &spy{}
	nav.Set(first)
	nav.Set(second)
	defer nav.Set(nil)

	nav.Reset(nav.RouteSignUp)

	assert.Empty(t, first.routes)
	assert.Equal(t, []nav.Route{nav.RouteSignUp}, second.routes)
}

func TestConsole_SignIn(t *testing.T) {
	var buf bytes.Buffer
	c := &nav.Console{Out: &buf}

	c.Reset(nav.RouteSignIn)
	assert.Equal(t, "session expired: signed out (run: roster login)\n", buf.String())
}

func TestConsole_SignUp(t *testing.T) {
	var buf bytes.Buffer
	c := &nav.Console{Out: &buf}

	c.Reset(nav.RouteSignUp)
	assert.Equal(t, "account no longer exists: signed out (run: roster register)\n", buf.String())
}

package plugin_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limenime/limeass/ast"
	"github.com/limenime/limeass/plugin"
)

type stubSectionHandler struct {
	name string
}

func (h stubSectionHandler) HandleSection(headerName string, lines []string) (ast.Section, error) {
	return ast.Section{
		Kind:   ast.HeaderKind{Kind: ast.SectionCustom, HeaderName: headerName},
		Custom: &ast.Custom{Name: h.name},
	}, nil
}

type stubTagHandler struct{}

func (stubTagHandler) HandleTag(name string, args string) (any, error) {
	if args == "" {
		return nil, errors.New("empty args")
	}
	return args, nil
}

func TestRegistrySectionRoundTrip(t *testing.T) {
	t.Parallel()

	reg := plugin.New()

	_, found := reg.Section("Aegisub Project Garbage")
	assert.False(t, found)

	_, replaced := reg.RegisterSection("Aegisub Project Garbage", stubSectionHandler{name: "garbage"})
	assert.False(t, replaced)

	handler, found := reg.Section("Aegisub Project Garbage")
	require.True(t, found)

	sec, err := handler.HandleSection("Aegisub Project Garbage", nil)
	require.NoError(t, err)
	assert.Equal(t, "garbage", sec.Custom.Name)

	_, replaced = reg.RegisterSection("Aegisub Project Garbage", stubSectionHandler{name: "garbage-v2"})
	assert.True(t, replaced)
}

func TestRegistryTagRoundTrip(t *testing.T) {
	t.Parallel()

	reg := plugin.New()
	reg.RegisterTag("kf", stubTagHandler{})

	handler, found := reg.Tag("kf")
	require.True(t, found)

	val, err := handler.HandleTag("kf", "120")
	require.NoError(t, err)
	assert.Equal(t, "120", val)

	_, found = reg.Tag("unknown")
	assert.False(t, found)
}

func TestRegistryUnregister(t *testing.T) {
	t.Parallel()

	reg := plugin.New()
	reg.RegisterSection("X", stubSectionHandler{name: "x"})

	assert.True(t, reg.UnregisterSection("X"))
	assert.False(t, reg.UnregisterSection("X"))

	_, found := reg.Section("X")
	assert.False(t, found)
}

func TestNilRegistryIsEmpty(t *testing.T) {
	t.Parallel()

	var reg *plugin.Registry

	_, found := reg.Section("anything")
	assert.False(t, found)

	_, found = reg.Tag("anything")
	assert.False(t, found)
}

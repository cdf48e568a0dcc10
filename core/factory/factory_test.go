package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type kitchen struct {
	Name  string
	Shift int
}

type kitchenConf struct {
	Name  string `json:"name"`
	Shift int    `json:"shift"`
}

func newKitchenRegistry(t *testing.T) *Registry[*kitchen] {
	t.Helper()
	reg := NewRegistry[*kitchen]()
	require.NoError(t, reg.Register("main", func(conf map[string]any) (*kitchen, error) {
		var c kitchenConf
		if err := Decode(conf, &c); err != nil {
			return nil, err
		}
		return &kitchen{Name: c.Name, Shift: c.Shift}, nil
	}))
	return reg
}

func TestRegistry_Create(t *testing.T) {
	reg := newKitchenRegistry(t)
	k, err := reg.Create(ModuleConfig{Type: "main", Conf: map[string]any{"name": "block-a", "shift": 2}})
	require.NoError(t, err)
	assert.Equal(t, &kitchen{Name: "block-a", Shift: 2}, k)
}

func TestDecode_WeakTypes(t *testing.T) {
	var c kitchenConf
	// env overrides arrive as strings
	require.NoError(t, Decode(map[string]any{"name": "b", "shift": "3"}, &c))
	assert.Equal(t, 3, c.Shift)
}

func TestRegistry_Errors(t *testing.T) {
	reg := newKitchenRegistry(t)
	assert.Error(t, reg.Register("other", nil))
	assert.Error(t, reg.Register("main", func(map[string]any) (*kitchen, error) { return nil, nil }))

	_, err := reg.Create(ModuleConfig{Type: "annex"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "annex")
}

func TestRegistry_Names(t *testing.T) {
	reg := newKitchenRegistry(t)
	require.NoError(t, reg.Register("annex", func(map[string]any) (*kitchen, error) { return &kitchen{}, nil }))
	assert.Equal(t, []string{"annex", "main"}, reg.Names())
}

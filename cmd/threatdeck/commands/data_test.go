package commands

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threatdeck/threatdeck/internal/dataset"
)

func TestMarshalRegistry_JSON(t *testing.T) {
	out, err := marshalRegistry(dataset.Default(), "json")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "data_json", out)
}

func TestMarshalRegistry_YAML(t *testing.T) {
	out, err := marshalRegistry(dataset.Default(), "yaml")
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "data_yaml", out)
}

func TestMarshalRegistry_UnknownFormat(t *testing.T) {
	_, err := marshalRegistry(dataset.Default(), "toml")
	assert.Error(t, err)
}

func TestMarshalRegistry_Stable(t *testing.T) {
	a, err := marshalRegistry(dataset.Default(), "yaml")
	require.NoError(t, err)
	b, err := marshalRegistry(dataset.Default(), "yaml")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

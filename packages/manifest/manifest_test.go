package manifest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"tower/packages/bungie"
	"tower/packages/destiny"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLookup(t *testing.T, handler http.HandlerFunc) *Lookup {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewLookup(bungie.New("key", bungie.WithBaseURL(server.URL), bungie.WithLogger(zerolog.New(io.Discard))))
}

const itemBody = `{"Response":{"hash":1363886209,"displayProperties":{"name":"Gjallarhorn","hasIcon":true},"itemTypeDisplayName":"Rocket Launcher","itemType":3},"ErrorCode":1,"ErrorStatus":"Success"}`

func TestGet(t *testing.T) {
	l := newLookup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Platform/Destiny2/Manifest/DestinyInventoryItemDefinition/1363886209/", r.URL.Path)
		w.Write([]byte(itemBody))
	})

	text, err := l.Get(context.Background(), destiny.EntityInventoryItem, 1363886209)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hash":1363886209,"displayProperties":{"name":"Gjallarhorn","hasIcon":true},"itemTypeDisplayName":"Rocket Launcher","itemType":3}`, text)
}

func TestGetDefinition(t *testing.T) {
	l := newLookup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(itemBody))
	})

	item, err := GetDefinition[InventoryItemDefinition](context.Background(), l, destiny.EntityInventoryItem, 1363886209)
	require.NoError(t, err)
	assert.Equal(t, uint32(1363886209), item.Hash)
	assert.Equal(t, "Gjallarhorn", item.DisplayProperties.Name)
	assert.Equal(t, "Rocket Launcher", item.ItemTypeDisplayName)
}

func TestGetDefinition_ShapeMismatch(t *testing.T) {
	l := newLookup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response":{"hash":"notanumber"},"ErrorCode":1,"ErrorStatus":"Success"}`))
	})

	item, err := GetDefinition[InventoryItemDefinition](context.Background(), l, destiny.EntityInventoryItem, 1)
	assert.Nil(t, item)
	assert.True(t, bungie.IsDeserialization(err))
	assert.ErrorContains(t, err, "DestinyInventoryItemDefinition/1")
}

func TestGetDefinition_NullDefinition(t *testing.T) {
	l := newLookup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"Response":null,"ErrorCode":1,"ErrorStatus":"Success"}`))
	})

	_, err := GetDefinition[ActivityDefinition](context.Background(), l, destiny.EntityActivity, 1)
	assert.True(t, bungie.IsDeserialization(err))
}

func TestGetDefinition_NotFound(t *testing.T) {
	l := newLookup(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ErrorCode":1649,"ErrorStatus":"DestinyDefinitionNotFound","Message":"missing"}`))
	})

	_, err := GetDefinition[InventoryItemDefinition](context.Background(), l, destiny.EntityInventoryItem, 1)
	assert.Equal(t, 1649, bungie.ErrorCode(err))
}

func TestVersion(t *testing.T) {
	l := newLookup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Platform/Destiny2/Manifest/", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("c"))
		w.Write([]byte(`{"Response":{"version":"224120.24.03.05.1730-2-bnet.54935"},"ErrorCode":1,"ErrorStatus":"Success"}`))
	})

	version, err := l.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "224120.24.03.05.1730-2-bnet.54935", version)
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// El registro es cerrado: exactamente dos sedes en orden de presentación.
func TestLocations_RegistroCerrado(t *testing.T) {
	locs := Locations()

	require.Len(t, locs, 2)
	assert.Equal(t, LocationHillDonut, locs[0].ID)
	assert.Equal(t, LocationRedBarn, locs[1].ID)
}

// Locations devuelve una copia: mutar el resultado no toca el registro.
func TestLocations_DevuelveCopia(t *testing.T) {
	locs := Locations()
	locs[0].Name = "mutado"

	assert.NotEqual(t, "mutado", Locations()[0].Name)
}

func TestLocationByID(t *testing.T) {
	loc, ok := LocationByID(LocationRedBarn)
	require.True(t, ok)
	assert.Equal(t, "Red Barn", loc.ShortName)
	assert.True(t, loc.SupportsOnlineOrders)

	_, ok = LocationByID("food_truck")
	assert.False(t, ok)
}

func TestIsValidLocation(t *testing.T) {
	assert.True(t, IsValidLocation(LocationHillDonut))
	assert.True(t, IsValidLocation(LocationRedBarn))
	assert.False(t, IsValidLocation("all"), "el filtro all no es una sede real")
	assert.False(t, IsValidLocation(""))
}

// Solo Red Barn tiene pedidos web habilitados.
func TestOnlineLocation(t *testing.T) {
	assert.Equal(t, LocationRedBarn, OnlineLocation().ID)
	assert.False(t, Locations()[0].SupportsOnlineOrders)
}

package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bbq-dashboard-api/internal/domain/entity"
)

func tipRecord(date time.Time, loc entity.LocationID, server, job string, cash, card float64) entity.ServerTips {
	return entity.ServerTips{
		Date:       date,
		Location:   loc,
		ServerName: server,
		JobTitle:   job,
		CashTips:   dec(cash),
		CardTips:   dec(card),
		TotalTips:  dec(cash + card),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests TipsByServer
// ──────────────────────────────────────────────────────────────────────────────

// El mismo mesero en varios días acumula propinas y días trabajados; el
// resultado sale por propina total descendente.
func TestTipsByServer_AcumulaYOrdena(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	records := []entity.ServerTips{
		tipRecord(d1, entity.LocationHillDonut, "Taylor Wilkes", "Server", 0, 55),
		tipRecord(d2, entity.LocationHillDonut, "Taylor Wilkes", "Server", 0, 62),
		tipRecord(d1, entity.LocationRedBarn, "Mike Chen", "Server", 10, 150),
	}

	out := TipsByServer(records, entity.LocationAll)

	require.Len(t, out, 2)
	assert.Equal(t, "Mike Chen", out[0].ServerName)
	assert.Equal(t, "160.00", out[0].TotalTips.StringFixed(2))
	assert.Equal(t, "Taylor Wilkes", out[1].ServerName)
	assert.Equal(t, "117.00", out[1].TotalTips.StringFixed(2))
	assert.Equal(t, 2, out[1].DaysWorked)
}

// Mismo nombre en sedes distintas forma grupos distintos.
func TestTipsByServer_ClavePorSedeYNombre(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []entity.ServerTips{
		tipRecord(d, entity.LocationHillDonut, "Sam Doe", "Server", 0, 40),
		tipRecord(d, entity.LocationRedBarn, "Sam Doe", "Server", 0, 70),
	}

	out := TipsByServer(records, entity.LocationAll)

	require.Len(t, out, 2)
	assert.Equal(t, entity.LocationRedBarn, out[0].Location)
}

// El filtro de sede excluye a los meseros de la otra.
func TestTipsByServer_FiltroPorSede(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	records := []entity.ServerTips{
		tipRecord(d, entity.LocationHillDonut, "Taylor Wilkes", "Server", 0, 55),
		tipRecord(d, entity.LocationRedBarn, "Jessica Torres", "Server", 0, 48),
	}

	out := TipsByServer(records, string(entity.LocationHillDonut))

	require.Len(t, out, 1)
	assert.Equal(t, "Taylor Wilkes", out[0].ServerName)
}

// El cargo (job title) viene del primer registro del grupo.
func TestTipsByServer_CargoDelPrimerRegistro(t *testing.T) {
	d1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	d2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	records := []entity.ServerTips{
		tipRecord(d1, entity.LocationHillDonut, "Antonio Medina", "Prep", 0, 0),
		tipRecord(d2, entity.LocationHillDonut, "Antonio Medina", "Server", 0, 30),
	}

	out := TipsByServer(records, entity.LocationAll)

	require.Len(t, out, 1)
	assert.Equal(t, "Prep", out[0].JobTitle)
}

func TestTipsByServer_EntradaVacia(t *testing.T) {
	assert.Empty(t, TipsByServer(nil, entity.LocationAll))
}

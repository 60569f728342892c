package entity

// LocationID identifica una de las sedes del grupo. El conjunto es cerrado:
// agregar una tercera sede es un cambio de modelo de datos, no de configuración.
type LocationID string

const (
	LocationHillDonut LocationID = "hill_donut"
	LocationRedBarn   LocationID = "red_barn"
)

// LocationAll valor especial de filtro "todas las sedes" (no es una sede real).
const LocationAll = "all"

// LocationInfo metadatos estáticos de presentación de una sede.
// Tabla read-only a nivel de proceso; no cambia en runtime.
type LocationInfo struct {
	ID        LocationID `json:"id"`
	Name      string     `json:"name"`
	ShortName string     `json:"short_name"`
	City      string     `json:"city"`
	Emoji     string     `json:"emoji"`
	Color     string     `json:"color"` // hex para gráficas

	// SupportsOnlineOrders marca la capacidad de pedidos web de la sede.
	// La rama "online" del motor depende de este flag, nunca de la presencia
	// de campos online en registros individuales.
	SupportsOnlineOrders bool `json:"supports_online_orders"`
}

// locations registro fijo de sedes, en orden de presentación.
var locations = []LocationInfo{
	{
		ID:        LocationHillDonut,
		Name:      "Hill Donut Co & Pancake House",
		ShortName: "Hill Donut",
		City:      "Wilmington, DE",
		Emoji:     "🍩",
		Color:     "#d4a574",
	},
	{
		ID:                   LocationRedBarn,
		Name:                 "Red Barn Burgers",
		ShortName:            "Red Barn",
		City:                 "Mullica Hill, NJ",
		Emoji:                "🍔",
		Color:                "#c41e3a",
		SupportsOnlineOrders: true,
	},
}

// Locations devuelve una copia del registro de sedes.
func Locations() []LocationInfo {
	out := make([]LocationInfo, len(locations))
	copy(out, locations)
	return out
}

// LocationByID busca una sede por identificador.
func LocationByID(id LocationID) (LocationInfo, bool) {
	for _, loc := range locations {
		if loc.ID == id {
			return loc, true
		}
	}
	return LocationInfo{}, false
}

// IsValidLocation reporta si id pertenece al conjunto cerrado de sedes.
func IsValidLocation(id LocationID) bool {
	_, ok := LocationByID(id)
	return ok
}

// OnlineLocation devuelve la sede con pedidos web habilitados.
// Hoy es exactamente una (Red Barn); si el conjunto crece, los call sites
// que asumen una única sede online deben revisarse.
func OnlineLocation() LocationInfo {
	for _, loc := range locations {
		if loc.SupportsOnlineOrders {
			return loc
		}
	}
	return LocationInfo{}
}

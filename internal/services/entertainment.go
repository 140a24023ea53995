package services

// entertainmentTypes is the fixed preference catalog. Order matters: clients
// render it as-is. Registration does not validate against it; the column is
// free text and legacy rows may hold values outside this list.
var entertainmentTypes = []string{
	"Programación y Tecnología",
	"Gaming",
	"Música",
	"Películas y Series",
	"Deportes",
	"Cocina",
	"Viajes",
	"Educación",
	"Comedia",
	"Documentales",
}

// EntertainmentTypes returns the fixed, ordered preference catalog.
func EntertainmentTypes() []string {
	out := make([]string, len(entertainmentTypes))
	copy(out, entertainmentTypes)
	return out
}

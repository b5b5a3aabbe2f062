package fieldextract

// spanishMonths maps folded Spanish month names to their two-digit number,
// for "Mes: JULIO 2024" style period headers.
var spanishMonths = map[string]string{
	"ENERO":      "01",
	"FEBRERO":    "02",
	"MARZO":      "03",
	"ABRIL":      "04",
	"MAYO":       "05",
	"JUNIO":      "06",
	"JULIO":      "07",
	"AGOSTO":     "08",
	"SEPTIEMBRE": "09",
	"SETIEMBRE":  "09",
	"OCTUBRE":    "10",
	"NOVIEMBRE":  "11",
	"DICIEMBRE":  "12",
}

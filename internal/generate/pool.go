package generate

import (
	"fmt"
	"math/rand/v2"

	"seeder/config"
)

// Literal sample pools: pure data the generators draw from. Counts, ranges
// and probabilities come from configuration, not from here.

var firstNames = []string{
	"Maria", "Jose", "Carmen", "Luis", "Rosa", "Jorge", "Ana", "Carlos",
	"Lucia", "Miguel", "Elena", "Pedro", "Sofia", "Diego", "Valeria", "Juan",
	"Camila", "Victor", "Daniela", "Raul",
}

var lastNames = []string{
	"Garcia", "Rodriguez", "Flores", "Quispe", "Torres", "Ramirez", "Chavez",
	"Vargas", "Castillo", "Rojas", "Mendoza", "Huaman", "Paredes", "Salazar",
	"Delgado", "Campos",
}

var emailDomains = []string{"gmail.com", "hotmail.com", "outlook.com", "yahoo.com"}

var streets = []string{
	"Av. Arequipa", "Av. La Marina", "Av. Javier Prado", "Jr. de la Union",
	"Av. Brasil", "Av. Larco", "Av. Benavides", "Av. Angamos", "Av. Universitaria",
	"Av. Tomas Marsano", "Av. Salaverry", "Av. Colonial",
}

var districts = []string{
	"Miraflores", "San Isidro", "Surco", "San Borja", "La Molina", "Lince",
	"Jesus Maria", "Magdalena", "Barranco", "Callao", "San Miguel", "Los Olivos",
}

var dishes = []string{
	"Arroz Chaufa", "Tallarin Saltado", "Pollo Chi Jau Kay", "Wantan Frito",
	"Sopa Wantan", "Kam Lu Wantan", "Pollo Tipakay", "Chaufa de Carne",
	"Aeropuerto", "Pollo con Tamarindo", "Chancho Asado", "Taypa",
	"Pato Pekin", "Mini Chaufa", "Sopa Fuchifu", "Tallarin con Pollo",
	"Pollo Enrollado", "Langostino al Ajo", "Arroz Blanco", "Siu Mai",
}

var dishStyles = []string{"Especial", "Oriental", "de la Casa", "Imperial", "Familiar", "Clasico"}

var comboNames = []string{
	"Duo Wok", "Trio Familiar", "Festin Oriental", "Combo Economico",
	"Mega Combo", "Combo Pareja", "Banquete Imperial", "Combo Personal",
}

var phrases = []string{
	"Preparado al momento en wok a fuego alto.",
	"Receta tradicional de la casa.",
	"Incluye salsa de tamarindo.",
	"Porcion generosa para compartir.",
	"El favorito de nuestros clientes.",
	"Acompanado de arroz chaufa.",
	"Con verduras frescas del dia.",
	"Toque agridulce inconfundible.",
}

var comments = []string{
	"Todo llego caliente y a tiempo, muy recomendado.",
	"La porcion fue enorme, repetiremos seguro.",
	"El repartidor fue muy amable.",
	"Buen sabor aunque tardo un poco mas de lo esperado.",
	"Excelente atencion y comida deliciosa.",
	"El chaufa estuvo en su punto.",
	"Pedido completo y bien empacado.",
}

// pick returns a uniformly selected element of values.
func pick[T any](rng *rand.Rand, values []T) T {
	return values[rng.IntN(len(values))]
}

// digits returns n random decimal digits as a string.
func digits(rng *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte('0' + rng.IntN(10))
	}

	return string(b)
}

// phone returns a nine-digit mobile number.
func phone(rng *rand.Rand) string {
	return "9" + digits(rng, 8)
}

// streetAddress composes a plausible street address.
func streetAddress(rng *rand.Rand) string {
	return fmt.Sprintf("%s %d", pick(rng, streets), 100+rng.IntN(4900))
}

// amountIn draws a value from the inclusive range, rounded to two decimals.
func amountIn(rng *rand.Rand, r config.Range) float64 {
	return round2(r.Min + rng.Float64()*(r.Max-r.Min))
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}

package ordernum

import "math/rand"

const (
	letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits  = "0123456789"
)

// Generate возвращает номер заказа вида AB12CD34: две буквы, две цифры,
// две буквы, две цифры. Уникальность номер не гарантирует — её обеспечивает
// констрейнт в базе, а вызывающая сторона перегенерирует номер при конфликте.
func Generate() string {
	buf := make([]byte, 0, 8)
	for i := 0; i < 2; i++ {
		buf = append(buf,
			letters[rand.Intn(len(letters))],
			letters[rand.Intn(len(letters))],
			digits[rand.Intn(len(digits))],
			digits[rand.Intn(len(digits))],
		)
	}
	return string(buf)
}

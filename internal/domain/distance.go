package domain

// Distance — манхэттенское расстояние между парой галактик.
//
// Пара неупорядоченная: (A, B) и (B, A) — одно и то же,
// в результат попадает только одна запись с From < To.
type Distance struct {
	From   int `json:"from"`
	To     int `json:"to"`
	Length int `json:"length"`
}

// Result — итог подсчёта расстояний.
type Result struct {
	// Distances — по одной записи на каждую неупорядоченную пару.
	Distances []Distance `json:"distances"`

	// Pairs — количество пар, всегда N*(N-1)/2.
	Pairs int `json:"pairs"`

	// Sum — сумма всех расстояний.
	Sum int `json:"sum"`
}

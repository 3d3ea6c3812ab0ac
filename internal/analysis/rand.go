package analysis

import "fmt"

// Запасное состояние: нулевое зерно дало бы вырожденный поток из нулей.
const defaultSeed uint32 = 2463534242

// randStream — детерминированный поток псевдослучайных чисел (xorshift32).
// Каждый вызов синтеза обязан создавать свой экземпляр: поток нельзя
// делить между параллельными запросами.
type randStream struct {
	state uint32
}

// newRand создаёт поток для заданного зерна.
func newRand(seed uint32) *randStream {
	if seed == 0 {
		seed = defaultSeed
	}
	return &randStream{state: seed}
}

// Float возвращает следующее число потока в диапазоне [0, 1).
func (r *randStream) Float() float64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 5
	return float64(r.state) / 4294967295
}

// hashString — 32-битный FNV-1a хеш строки.
func hashString(s string) uint32 {
	h := uint32(2166136261)
	for _, c := range s {
		h ^= uint32(c)
		h *= 16777619
	}
	return h
}

// SeedFrom детерминированно выводит зерно из атрибутов запроса.
// Одинаковые атрибуты дают одинаковое зерно и, как следствие,
// одинаковый синтезированный результат.
func SeedFrom(fileName string, fileSize int64, width, height int, platform string) uint32 {
	return hashString(fmt.Sprintf("%s|%d|%dx%d|%s", fileName, fileSize, width, height, platform))
}

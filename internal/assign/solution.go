// Package assign определяет представление решения — T×S матрицу назначений
// 0/1 — и операции над ней, не зависящие от целевых функций.
package assign

import (
	"fmt"
	"math/rand"
)

// Solution — T×S матрица назначений TA на секции. Cell(t,s)=1 означает, что
// TA t назначен на секцию s. Хранится как плоский срез строк длины T*S
// (по аналогии с флэт-бэкингом permutation'ов в internal/ga.Solver.Solve),
// что избегает T отдельных аллокаций на решение.
type Solution struct {
	Rows  int // T
	Cols  int // S
	cells []byte
}

// New возвращает нулевую (пустую) матрицу Rows×Cols.
func New(rows, cols int) *Solution {
	return &Solution{Rows: rows, Cols: cols, cells: make([]byte, rows*cols)}
}

// Random возвращает матрицу Rows×Cols со случайными значениями {0,1}, по
// одному независимому броску монеты на ячейку — как `np.random.randint(2,
// size=(43,17))` в original_source.
func Random(rows, cols int, rng *rand.Rand) *Solution {
	s := New(rows, cols)
	for i := range s.cells {
		s.cells[i] = byte(rng.Intn(2))
	}
	return s
}

func (s *Solution) index(t, sec int) int { return t*s.Cols + sec }

// Get возвращает 0 или 1 для ячейки (t, sec).
func (s *Solution) Get(t, sec int) byte { return s.cells[s.index(t, sec)] }

// Set записывает значение v (0 или 1) в ячейку (t, sec).
func (s *Solution) Set(t, sec int, v byte) { s.cells[s.index(t, sec)] = v }

// Flip инвертирует ячейку (t, sec).
func (s *Solution) Flip(t, sec int) {
	i := s.index(t, sec)
	s.cells[i] = 1 - s.cells[i]
}

// Row возвращает срез ячеек TA t без копирования (длина Cols). Вызывающая
// сторона не должна изменять срез решения, хранящегося в Population Store.
func (s *Solution) Row(t int) []byte {
	return s.cells[t*s.Cols : (t+1)*s.Cols]
}

// AssignedCount возвращает число секций, на которые назначен TA t.
func (s *Solution) AssignedCount(t int) int {
	n := 0
	for _, v := range s.Row(t) {
		n += int(v)
	}
	return n
}

// StaffedCount возвращает число TA, назначенных на секцию sec.
func (s *Solution) StaffedCount(sec int) int {
	n := 0
	for t := 0; t < s.Rows; t++ {
		n += int(s.Get(t, sec))
	}
	return n
}

// Clone возвращает глубокую копию решения. Агенты получают копии решений из
// Population Store именно через этот метод — изменение клона не может
// затронуть хранимое в Store решение (spec.md § 5).
func (s *Solution) Clone() *Solution {
	out := &Solution{Rows: s.Rows, Cols: s.Cols, cells: make([]byte, len(s.cells))}
	copy(out.cells, s.cells)
	return out
}

// Validate проверяет, что форма матрицы равна Rows×Cols и все ячейки в {0,1}.
func (s *Solution) Validate(rows, cols int) error {
	if s == nil {
		return fmt.Errorf("решение не инициализировано (nil)")
	}
	if s.Rows != rows || s.Cols != cols {
		return fmt.Errorf("форма решения должна быть %d×%d, получено %d×%d", rows, cols, s.Rows, s.Cols)
	}
	if len(s.cells) != rows*cols {
		return fmt.Errorf("внутренняя несогласованность: длина backing-массива %d, ожидалось %d", len(s.cells), rows*cols)
	}
	for i, v := range s.cells {
		if v != 0 && v != 1 {
			return fmt.Errorf("ячейка %d содержит %d, ожидалось 0 или 1", i, v)
		}
	}
	return nil
}

// ShuffleCells выбирает count случайных уникальных позиций (без повторов) и
// инвертирует их. Реализует агент shuffle (spec.md § 4.2).
func (s *Solution) ShuffleCells(count int, rng *rand.Rand) {
	n := len(s.cells)
	if count <= 0 || n == 0 {
		return
	}
	if count > n {
		count = n
	}
	// Partial Fisher-Yates по индексам ячеек: выбираем count позиций без
	// повторов, перемешивая префикс массива индексов.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < count; i++ {
		j := i + rng.Intn(n-i)
		idx[i], idx[j] = idx[j], idx[i]
		cell := idx[i]
		s.cells[cell] = 1 - s.cells[cell]
	}
}

// MutateCells инвертирует каждую ячейку независимо с вероятностью rate.
// Реализует агент mutate (spec.md § 4.2).
func (s *Solution) MutateCells(rate float64, rng *rand.Rand) {
	for i := range s.cells {
		if rng.Float64() < rate {
			s.cells[i] = 1 - s.cells[i]
		}
	}
}

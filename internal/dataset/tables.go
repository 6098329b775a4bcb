package dataset

import "fmt"

// TA — запись таблицы ассистентов преподавателя (неизменяемый вход).
type TA struct {
	ID          int
	Name        string
	MaxAssigned int
	// Prefs[i] — предпочтение этого TA по секции Sections[i] (тот же порядок).
	Prefs []Pref
}

// Section — запись таблицы секций (неизменяемый вход).
type Section struct {
	ID         int
	Instructor string
	Daytime    string
	MinTA      int
}

// Tables — пара таблиц TA/Section, общая для всего запуска по значению.
type Tables struct {
	TAs      []TA
	Sections []Section
}

// Validate проверяет согласованность форм и значений (spec.md § 7).
// Ошибки формы/значения фатальны при старте и называют строку/столбец.
func (t *Tables) Validate() error {
	if t == nil {
		return fmt.Errorf("таблицы не инициализированы (nil)")
	}
	if len(t.TAs) == 0 {
		return fmt.Errorf("таблица TA пуста")
	}
	if len(t.Sections) == 0 {
		return fmt.Errorf("таблица секций пуста")
	}

	nSections := len(t.Sections)
	for row, s := range t.Sections {
		if s.MinTA < 0 {
			return fmt.Errorf("секция %d (строка %d): min_ta должно быть >= 0 (получено %d)", s.ID, row, s.MinTA)
		}
		if s.Daytime == "" {
			return fmt.Errorf("секция %d (строка %d): daytime не должно быть пустым", s.ID, row)
		}
	}

	for row, ta := range t.TAs {
		if ta.MaxAssigned < 0 {
			return fmt.Errorf("TA %d (строка %d): max_assigned должно быть >= 0 (получено %d)", ta.ID, row, ta.MaxAssigned)
		}
		if len(ta.Prefs) != nSections {
			return fmt.Errorf(
				"TA %d (строка %d): количество столбцов предпочтений = %d, ожидалось %d (по числу секций)",
				ta.ID, row, len(ta.Prefs), nSections,
			)
		}
		for col, p := range ta.Prefs {
			if p == PrefUnknown {
				return fmt.Errorf("TA %d (строка %d), секция %d (столбец %d): неизвестный код предпочтения", ta.ID, row, t.Sections[col].ID, col)
			}
		}
	}

	return nil
}

// NumTAs возвращает T — число строк таблицы TA.
func (t *Tables) NumTAs() int { return len(t.TAs) }

// NumSections возвращает S — число строк таблицы секций.
func (t *Tables) NumSections() int { return len(t.Sections) }

// SameDaytime сообщает, делят ли секции i и j один и тот же слот.
func (t *Tables) SameDaytime(i, j int) bool {
	return t.Sections[i].Daytime == t.Sections[j].Daytime
}

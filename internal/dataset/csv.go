package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// LoadTAs читает таблицу TA из CSV с заголовком:
// ta_id, name, max_assigned, <секция 1>, <секция 2>, ...
// Столбцы секций должны совпадать по количеству и порядку с таблицей секций
// (проверяется вызывающей стороной через Tables.Validate).
func LoadTAs(path string) ([]TA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("открытие файла TA %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("чтение заголовка файла TA %q: %w", path, err)
	}
	if len(header) < 4 {
		return nil, fmt.Errorf("файл TA %q: ожидалось минимум 4 столбца (ta_id, name, max_assigned, ...секции), получено %d", path, len(header))
	}

	var tas []TA
	rowNum := 1 // заголовок — строка 1
	for {
		rec, err := r.Read()
		rowNum++
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("файл TA %q, строка %d: %w", path, rowNum, err)
		}

		if len(rec) != len(header) {
			return nil, fmt.Errorf("файл TA %q, строка %d: %d столбцов, ожидалось %d", path, rowNum, len(rec), len(header))
		}

		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("файл TA %q, строка %d, столбец ta_id: %w", path, rowNum, err)
		}
		maxAssigned, err := strconv.Atoi(rec[2])
		if err != nil {
			return nil, fmt.Errorf("файл TA %q, строка %d, столбец max_assigned: %w", path, rowNum, err)
		}
		if maxAssigned < 0 {
			return nil, fmt.Errorf("файл TA %q, строка %d: max_assigned должно быть >= 0 (получено %d)", path, rowNum, maxAssigned)
		}

		prefs := make([]Pref, 0, len(rec)-3)
		for col := 3; col < len(rec); col++ {
			p, err := ParsePref(rec[col])
			if err != nil {
				return nil, fmt.Errorf("файл TA %q, строка %d, столбец %d (%s): %w", path, rowNum, col, header[col], err)
			}
			prefs = append(prefs, p)
		}

		tas = append(tas, TA{
			ID:          id,
			Name:        rec[1],
			MaxAssigned: maxAssigned,
			Prefs:       prefs,
		})
	}

	if len(tas) == 0 {
		return nil, fmt.Errorf("файл TA %q: нет строк данных", path)
	}
	return tas, nil
}

// LoadSections читает таблицу секций из CSV с заголовком:
// section_id, instructor, daytime, min_ta
func LoadSections(path string) ([]Section, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("открытие файла секций %q: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("чтение заголовка файла секций %q: %w", path, err)
	}
	if len(header) != 4 {
		return nil, fmt.Errorf("файл секций %q: ожидалось 4 столбца (section_id, instructor, daytime, min_ta), получено %d", path, len(header))
	}

	var sections []Section
	rowNum := 1
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("файл секций %q, строка %d: %w", path, rowNum, err)
		}
		rowNum++

		if len(rec) != 4 {
			return nil, fmt.Errorf("файл секций %q, строка %d: %d столбцов, ожидалось 4", path, rowNum, len(rec))
		}

		id, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("файл секций %q, строка %d, столбец section_id: %w", path, rowNum, err)
		}
		if rec[2] == "" {
			return nil, fmt.Errorf("файл секций %q, строка %d: daytime не должно быть пустым", path, rowNum)
		}
		minTA, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, fmt.Errorf("файл секций %q, строка %d, столбец min_ta: %w", path, rowNum, err)
		}
		if minTA < 0 {
			return nil, fmt.Errorf("файл секций %q, строка %d: min_ta должно быть >= 0 (получено %d)", path, rowNum, minTA)
		}

		sections = append(sections, Section{
			ID:         id,
			Instructor: rec[1],
			Daytime:    rec[2],
			MinTA:      minTA,
		})
	}

	if len(sections) == 0 {
		return nil, fmt.Errorf("файл секций %q: нет строк данных", path)
	}
	return sections, nil
}

// Load читает обе таблицы и возвращает провалидированные Tables.
func Load(taPath, sectionPath string) (*Tables, error) {
	tas, err := LoadTAs(taPath)
	if err != nil {
		return nil, err
	}
	sections, err := LoadSections(sectionPath)
	if err != nil {
		return nil, err
	}
	t := &Tables{TAs: tas, Sections: sections}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

package dataset

import "fmt"

// Pref — код предпочтения TA для конкретной секции.
type Pref byte

const (
	PrefUnknown Pref = iota
	PrefPreferred
	PrefWilling
	PrefUnwilling
)

// String возвращает односимвольный код предпочтения.
func (p Pref) String() string {
	switch p {
	case PrefPreferred:
		return "P"
	case PrefWilling:
		return "W"
	case PrefUnwilling:
		return "U"
	default:
		return "?"
	}
}

// ParsePref разбирает односимвольный код {P, W, U}.
// Любое другое значение — ошибка формы входных данных (громкий отказ).
func ParsePref(code string) (Pref, error) {
	switch code {
	case "P":
		return PrefPreferred, nil
	case "W":
		return PrefWilling, nil
	case "U":
		return PrefUnwilling, nil
	default:
		return PrefUnknown, fmt.Errorf("неизвестный код предпочтения %q (ожидается P, W или U)", code)
	}
}

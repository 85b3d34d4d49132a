// Package layout содержит таблицы соответствия клавиш английской и
// ивритской раскладок.
//
// Таблицы не являются взаимно обратными: несколько клавиш с Shift
// дают один и тот же ивритский символ (например ';' и ':' → 'ף'),
// поэтому обратный поиск не гарантирует исходный символ.
package layout

import "sync"

// Map выбирает одну из двух таблиц.
type Map int

const (
	// ToHebrew - символ, набранный в английской раскладке → символ той же клавиши в ивритской.
	ToHebrew Map = iota
	// ToEnglish - символ ивритской раскладки → символ той же клавиши в английской.
	ToEnglish
)

// String возвращает имя направления для логов.
func (m Map) String() string {
	switch m {
	case ToHebrew:
		return "en→he"
	case ToEnglish:
		return "he→en"
	default:
		return "unknown"
	}
}

// Table хранит обе таблицы. После создания не изменяется.
type Table struct {
	toHebrew  map[rune]rune
	toEnglish map[rune]rune
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default возвращает общую таблицу, построенную один раз за процесс.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = New()
	})
	return defaultTable
}

// New строит таблицы из литеральных данных.
func New() *Table {
	t := &Table{
		toHebrew:  make(map[rune]rune, len(enToHe)),
		toEnglish: make(map[rune]rune, len(heToEn)),
	}
	for _, p := range enToHe {
		t.toHebrew[p.from] = p.to
	}
	for _, p := range heToEn {
		t.toEnglish[p.from] = p.to
	}
	return t
}

// Lookup возвращает символ из таблицы m. ok == false если символа в таблице нет.
func (t *Table) Lookup(m Map, r rune) (rune, bool) {
	to, ok := t.table(m)[r]
	return to, ok
}

// Has сообщает, является ли r ключом таблицы m.
func (t *Table) Has(m Map, r rune) bool {
	_, ok := t.table(m)[r]
	return ok
}

// Len возвращает число ключей таблицы m.
func (t *Table) Len(m Map) int {
	return len(t.table(m))
}

func (t *Table) table(m Map) map[rune]rune {
	if m == ToEnglish {
		return t.toEnglish
	}
	return t.toHebrew
}

type pair struct {
	from, to rune
}

// enToHe - английская раскладка → ивритская, включая Shift-варианты.
var enToHe = []pair{
	// нижний ряд
	{'z', 'ז'}, {'Z', 'ז'},
	{'x', 'ס'}, {'X', 'ס'},
	{'c', 'ב'}, {'C', 'ב'},
	{'v', 'ה'}, {'V', 'ה'},
	{'b', 'נ'}, {'B', 'נ'},
	{'n', 'מ'}, {'N', 'מ'},
	{'m', 'צ'}, {'M', 'צ'},
	{',', 'ת'}, {'<', 'ת'},
	{'.', 'ץ'}, {'>', 'ץ'},
	{'/', '.'}, {'?', '.'},

	// средний ряд
	{'a', 'ש'}, {'A', 'ש'},
	{'s', 'ד'}, {'S', 'ד'},
	{'d', 'ג'}, {'D', 'ג'},
	{'f', 'כ'}, {'F', 'כ'},
	{'g', 'ע'}, {'G', 'ע'},
	{'h', 'י'}, {'H', 'י'},
	{'j', 'ח'}, {'J', 'ח'},
	{'k', 'ל'}, {'K', 'ל'},
	{'l', 'ך'}, {'L', 'ך'},
	{';', 'ף'}, {':', 'ף'},
	{'\'', ','}, {'"', ','},

	// верхний ряд
	{'q', '/'}, {'Q', '/'},
	{'w', '\''}, {'W', '\''},
	{'e', 'ק'}, {'E', 'ק'},
	{'r', 'ר'}, {'R', 'ר'},
	{'t', 'א'}, {'T', 'א'},
	{'y', 'ט'}, {'Y', 'ט'},
	{'u', 'ו'}, {'U', 'ו'},
	{'i', 'ן'}, {'I', 'ן'},
	{'o', 'ם'}, {'O', 'ם'},
	{'p', 'פ'}, {'P', 'פ'},
	{'[', ']'}, {'{', ']'},
	{']', '['}, {'}', '['},

	// цифры и символы над ними
	{'1', '1'}, {'!', '!'},
	{'2', '2'}, {'@', '@'},
	{'3', '3'}, {'#', '#'},
	{'4', '4'}, {'$', '$'},
	{'5', '5'}, {'%', '%'},
	{'6', '6'}, {'^', '^'},
	{'7', '7'}, {'&', '&'},
	{'8', '8'}, {'*', '*'},
	{'9', '9'}, {'(', '('},
	{'0', '0'}, {')', ')'},
	{'-', '-'}, {'_', '_'},
	{'=', '='}, {'+', '+'},
}

// heToEn - ивритская раскладка → английская (только клавиши без Shift).
var heToEn = []pair{
	// нижний ряд
	{'ז', 'z'}, {'ס', 'x'}, {'ב', 'c'}, {'ה', 'v'}, {'נ', 'b'},
	{'מ', 'n'}, {'צ', 'm'}, {'ת', ','}, {'ץ', '.'}, {'.', '/'},

	// средний ряд
	{'ש', 'a'}, {'ד', 's'}, {'ג', 'd'}, {'כ', 'f'}, {'ע', 'g'},
	{'י', 'h'}, {'ח', 'j'}, {'ל', 'k'}, {'ך', 'l'}, {'ף', ';'},
	{',', '\''},

	// верхний ряд
	{'/', 'q'}, {'\'', 'w'}, {'ק', 'e'}, {'ר', 'r'}, {'א', 't'},
	{'ט', 'y'}, {'ו', 'u'}, {'ן', 'i'}, {'ם', 'o'}, {'פ', 'p'},
	{']', '['}, {'[', ']'},

	// цифры
	{'1', '1'}, {'2', '2'}, {'3', '3'}, {'4', '4'}, {'5', '5'},
	{'6', '6'}, {'7', '7'}, {'8', '8'}, {'9', '9'}, {'0', '0'},
	{'-', '-'}, {'=', '='},
}

package config

// DefaultTriggerKey - клавиша двойного нажатия по умолчанию.
const DefaultTriggerKey = "caps lock"

// maxDelayMs ограничивает любую задержку из файла.
const maxDelayMs = 5000

// DefaultTiming возвращает задержки по умолчанию.
func DefaultTiming() Timing {
	return Timing{
		ActivationWindowMs: 350,
		DebounceWindowMs:   500,
		CopySettleMs:       120,
		PastePrepareMs:     20,
		PasteSettleMs:      80,
		FinishDelayMs:      60,
	}
}

// validateTiming заменяет нулевые, отрицательные и слишком большие
// значения значениями по умолчанию.
func validateTiming(t Timing) Timing {
	d := DefaultTiming()
	fix := func(v *int, def int) {
		if *v <= 0 || *v > maxDelayMs {
			*v = def
		}
	}
	fix(&t.ActivationWindowMs, d.ActivationWindowMs)
	fix(&t.DebounceWindowMs, d.DebounceWindowMs)
	fix(&t.CopySettleMs, d.CopySettleMs)
	fix(&t.PastePrepareMs, d.PastePrepareMs)
	fix(&t.PasteSettleMs, d.PasteSettleMs)
	fix(&t.FinishDelayMs, d.FinishDelayMs)
	return t
}

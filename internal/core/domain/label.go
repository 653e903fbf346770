package domain

// Tone is a badge color family shown next to a plant attribute.
type Tone string

const (
	ToneGray   Tone = "gray"
	ToneGreen  Tone = "green"
	ToneYellow Tone = "yellow"
	ToneRed    Tone = "red"
	ToneBlue   Tone = "blue"
	ToneOrange Tone = "orange"
)

func (s Size) Label() string {
	switch s {
	case SizeSmall:
		return "Маленькие"
	case SizeMedium:
		return "Средние"
	case SizeLarge:
		return "Большие"
	}
	return "Все размеры"
}

func (l Lighting) Label() string {
	switch l {
	case LightingLow:
		return "Слабое"
	case LightingMedium:
		return "Среднее"
	case LightingHigh:
		return "Сильное"
	}
	return "Любое освещение"
}

func (l Lighting) Tone() Tone {
	switch l {
	case LightingLow:
		return ToneBlue
	case LightingMedium:
		return ToneOrange
	case LightingHigh:
		return ToneRed
	}
	return ToneGray
}

func (d Difficulty) Label() string {
	switch d {
	case DifficultyEasy:
		return "Легкая"
	case DifficultyMedium:
		return "Средняя"
	case DifficultyHard:
		return "Сложная"
	}
	return "Любая сложность"
}

func (d Difficulty) Tone() Tone {
	switch d {
	case DifficultyEasy:
		return ToneGreen
	case DifficultyMedium:
		return ToneYellow
	case DifficultyHard:
		return ToneRed
	}
	return ToneGray
}

package cv

// UI string keys.
const (
	KeyLevel          = "level"
	KeyScore          = "score"
	KeyGameOver       = "game_over"
	KeyPlayAgain      = "play_again"
	KeySnakeTitle     = "snake_title"
	KeyCloseSnake     = "close_snake"
	KeySwitchLanguage = "switch_language"
	KeyDownloadCV     = "download_cv"
	KeyPlaySnake      = "play_snake"
	KeyPlayAgainHint  = "play_again_hint"
)

var uiStrings = map[Language]map[string]string{
	English: {
		KeyLevel:          "Level",
		KeyScore:          "Score",
		KeyGameOver:       "Game Over!",
		KeyPlayAgain:      "Play Again",
		KeySnakeTitle:     "Snake Game",
		KeyCloseSnake:     "Close Snake Game",
		KeySwitchLanguage: "Switch to Spanish",
		KeyDownloadCV:     "Download CV",
		KeyPlaySnake:      "Play Snake Game",
		KeyPlayAgainHint:  "Press r to play again, q to quit",
	},
	Spanish: {
		KeyLevel:          "Nivel",
		KeyScore:          "Puntuación",
		KeyGameOver:       "¡Juego Terminado!",
		KeyPlayAgain:      "Jugar de Nuevo",
		KeySnakeTitle:     "Juego de la Serpiente",
		KeyCloseSnake:     "Cerrar Juego de la Serpiente",
		KeySwitchLanguage: "Cambiar a Inglés",
		KeyDownloadCV:     "Descargar CV",
		KeyPlaySnake:      "Jugar a la Serpiente",
		KeyPlayAgainHint:  "Pulsa r para jugar de nuevo, q para salir",
	},
}

// T looks up a UI string. Missing translations fall back to English, and
// unknown keys to the key itself.
func T(lang Language, key string) string {
	if s, ok := uiStrings[lang][key]; ok {
		return s
	}
	if s, ok := uiStrings[English][key]; ok {
		return s
	}
	return key
}

// Strings returns every UI string for lang, for handing to templates.
func Strings(lang Language) map[string]string {
	out := make(map[string]string, len(uiStrings[English]))
	for key := range uiStrings[English] {
		out[key] = T(lang, key)
	}
	return out
}

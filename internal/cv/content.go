// Package cv holds the portfolio's bilingual content: the profile card, the
// social links, the UI strings and the downloadable CV.
package cv

import "strings"

// Language is a site language code.
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// ParseLanguage accepts "en" or "es" in any case. Anything else is reported
// as not ok together with English.
func ParseLanguage(s string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case English:
		return English, true
	case Spanish:
		return Spanish, true
	}
	return English, false
}

// Toggle flips between English and Spanish.
func (l Language) Toggle() Language {
	if l == Spanish {
		return English
	}
	return Spanish
}

type Profile struct {
	Name       string
	Title      string
	Experience string
	Education  string
	PhotoURL   string
}

const photoURL = "http://raw.githubusercontent.com/carcruz97/carcruz97/refs/heads/main/perfil.png"

var profiles = map[Language]Profile{
	English: {
		Name:       "Carmen Cruzado",
		Title:      "Machine Learning Engineer",
		Experience: "5+ years of experience in developing cutting-edge AI solutions. Skilled in Python, TensorFlow, PyTorch, and NLP.",
		Education:  "Ph.D. in Computer Science, specialization in Machine Learning - Stanford University (2018-2022)",
		PhotoURL:   photoURL,
	},
	Spanish: {
		Name:       "Carmen Cruzado",
		Title:      "Ingeniera de Aprendizaje Automático",
		Experience: "Más de 5 años de experiencia en el desarrollo de soluciones de IA de vanguardia. Habilidades en Python, TensorFlow, PyTorch y PLN.",
		Education:  "Doctorado en Ciencias de la Computación, especialización en Aprendizaje Automático - Universidad de Stanford (2018-2022)",
		PhotoURL:   photoURL,
	},
}

// ProfileFor returns the profile card in lang, English for unknown codes.
func ProfileFor(lang Language) Profile {
	if p, ok := profiles[lang]; ok {
		return p
	}
	return profiles[English]
}

// Link is an outbound social link. Slug is the stable key used for the
// /go/:slug redirect and click counting.
type Link struct {
	Slug  string
	Label string
	URL   string
	Hover string // tailwind hover colour class
}

var links = []Link{
	{Slug: "linkedin", Label: "LinkedIn", URL: "https://www.linkedin.com/in/carmen-cruzado/", Hover: "hover:text-blue-400"},
	{Slug: "medium", Label: "Medium", URL: "https://medium.com/@carcruz97", Hover: "hover:text-green-400"},
	{Slug: "twitter", Label: "Twitter", URL: "https://x.com/carcruz97", Hover: "hover:text-blue-300"},
	{Slug: "replicate", Label: "Replicate", URL: "https://replicate.com/carcruz97", Hover: "hover:text-purple-400"},
	{Slug: "calendar", Label: "Calendar", URL: "https://calendly.com/carmencruzado97/data-ai", Hover: "hover:text-green-400"},
	{Slug: "github", Label: "GitHub", URL: "https://github.com/carcruz97/", Hover: "hover:text-gray-400"},
}

// Links returns the social links in display order.
func Links() []Link {
	out := make([]Link, len(links))
	copy(out, links)
	return out
}

package domain

// SectionTemplate - типовой участок обращения
type SectionTemplate struct {
	Key         string `json:"key"`
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

var sectionTemplates = []SectionTemplate{
	{"karuizawa-komoro", "karuizawa", "komoro"},
	{"karuizawa-ueda", "karuizawa", "ueda"},
	{"karuizawa-nagano", "karuizawa", "nagano"},
	{"komoro-nagano", "komoro", "nagano"},
	{"ueda-nagano", "ueda", "nagano"},
	{"togura-nagano", "togura", "nagano"},
	{"nagano-toyono_sr", "nagano", "toyono"},
	{"nagano-toyono_jr", "nagano", "toyono"},
	{"nagano-myoko-kogen", "nagano", "myoko-kogen"},
	{"myoko-kogen-nagano", "myoko-kogen", "nagano"},
	{"toyono_sr-nagano", "toyono", "nagano"},
	{"toyono_jr-nagano", "toyono", "nagano"},
	{"nagano-togura", "nagano", "togura"},
	{"nagano-ueda", "nagano", "ueda"},
	{"nagano-komoro", "nagano", "komoro"},
	{"togura-komoro", "togura", "komoro"},
	{"togura-karuizawa", "togura", "karuizawa"},
	{"komoro-karuizawa", "komoro", "karuizawa"},
}

// SectionTemplates возвращает копию списка шаблонов
func SectionTemplates() []SectionTemplate {
	out := make([]SectionTemplate, len(sectionTemplates))
	copy(out, sectionTemplates)
	return out
}

func FindSectionTemplate(key string) (SectionTemplate, bool) {
	for _, t := range sectionTemplates {
		if t.Key == key {
			return t, true
		}
	}
	return SectionTemplate{}, false
}

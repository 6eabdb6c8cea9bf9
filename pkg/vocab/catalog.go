package vocab

import "sort"

// Summary is a type-erased view of one vocabulary.
type Summary struct {
	Name     string   `json:"name"`
	Fallback string   `json:"fallback"`
	Values   []string `json:"values"`
}

func summarize[T ~string](v *Vocabulary[T]) Summary {
	return Summary{Name: v.Name(), Fallback: string(v.Fallback()), Values: v.Strings()}
}

var catalog = map[string]func() Summary{
	"sectors":            func() Summary { return summarize(Sectors()) },
	"stages":             func() Summary { return summarize(Stages()) },
	"company_stages":     func() Summary { return summarize(CompanyStages()) },
	"countries":          func() Summary { return summarize(Countries()) },
	"departments":        func() Summary { return summarize(Departments()) },
	"graph_types":        func() Summary { return summarize(GraphTypes()) },
	"classifier_options": func() Summary { return summarize(ClassifierOptions()) },
	"subscription_types": func() Summary { return summarize(SubscriptionTypes()) },
}

// Names lists every vocabulary by name, sorted.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe returns the named vocabulary, or false when it does not exist.
func Describe(name string) (Summary, bool) {
	build, ok := catalog[name]
	if !ok {
		return Summary{}, false
	}
	return build(), true
}

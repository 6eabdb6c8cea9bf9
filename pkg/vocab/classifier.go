package vocab

// ClassifierOption is the operation a prompt classifier picked.
type ClassifierOption string

const (
	ClassifierGenerate ClassifierOption = "generate"
	ClassifierDecrease ClassifierOption = "decrease"
	ClassifierModify   ClassifierOption = "modify"
	ClassifierExpand   ClassifierOption = "expand"
	// ClassifierNull is the "no category" option; it serializes as JSON null.
	ClassifierNull ClassifierOption = ""
)

var classifierOptions = lazy("classifier_options", ClassifierNull,
	ClassifierGenerate,
	ClassifierDecrease,
	ClassifierModify,
	ClassifierExpand,
	ClassifierNull,
)

// ClassifierOptions returns the classifier vocabulary. Fallback: null.
func ClassifierOptions() *Vocabulary[ClassifierOption] { return classifierOptions() }

// IsNull reports whether c is the null option.
func (c ClassifierOption) IsNull() bool { return c == ClassifierNull }

func (c ClassifierOption) MarshalJSON() ([]byte, error) {
	if c.IsNull() {
		return []byte("null"), nil
	}
	return marshalLabel(string(c))
}

func (c *ClassifierOption) UnmarshalJSON(data []byte) error {
	label, err := labelFromJSON(data)
	*c = ClassifierOption(label)
	return err
}

package vocab

import "strings"

// Department is a cost-center department.
type Department string

const (
	DepartmentGA   Department = "G&A"
	DepartmentRD   Department = "R&D"
	DepartmentSM   Department = "S&M"
	DepartmentCOGS Department = "COGS"
)

var departments = lazy("departments", DepartmentGA,
	DepartmentGA,
	DepartmentRD,
	DepartmentSM,
	DepartmentCOGS,
)

// Departments returns the department vocabulary. Fallback: G&A.
func Departments() *Vocabulary[Department] { return departments() }

var departmentAbbreviations = map[string]Department{
	"rnd":  DepartmentRD,
	"snm":  DepartmentSM,
	"gna":  DepartmentGA,
	"cogs": DepartmentCOGS,
}

// ExpandDepartment maps the short forms rnd, snm, gna and cogs (any case) to
// their canonical labels. Any other candidate is returned unchanged.
func ExpandDepartment(candidate interface{}) interface{} {
	s, ok := candidate.(string)
	if !ok {
		if d, isDept := candidate.(Department); isDept {
			s = string(d)
		} else {
			return candidate
		}
	}
	if canonical, found := departmentAbbreviations[strings.ToLower(s)]; found {
		return canonical
	}
	return candidate
}

func (d *Department) UnmarshalJSON(data []byte) error {
	label, err := labelFromJSON(data)
	*d = Department(label)
	return err
}

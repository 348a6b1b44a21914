package responses

type Texts []string

type Mapping struct {
	Char  string  `xml:"char,attr" json:"char"`
	Base  string  `xml:"base,attr" json:"base"`
	Upper *string `xml:"upper,attr,omitempty" json:"upper,omitempty"`
	Lower *string `xml:"lower,attr,omitempty" json:"lower,omitempty"`
}

type Mappings []Mapping

type Languages []string

type MappingSet struct {
	Name        string  `xml:"name,attr" json:"name"`
	Description *string `xml:"description,attr,omitempty" json:"description,omitempty"`
	Active      bool    `xml:"active,attr" json:"active"`
}

type MappingSets []MappingSet

type ReloadSummary struct {
	Providers  int `xml:"providers,attr" json:"providers"`
	Characters int `xml:"characters,attr" json:"characters"`
}

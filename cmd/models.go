package cmd

type ArgumentInfo struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type ArgInfo struct {
	TypeName     string `json:"typeName,omitempty"`
	FieldName    string `json:"fieldName,omitempty"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	DefaultValue string `json:"defaultValue,omitempty"`
	Description  string `json:"description,omitempty"`
}

type FieldInfo struct {
	TypeName          string         `json:"typeName,omitempty"`
	Name              string         `json:"name"`
	Arguments         []ArgumentInfo `json:"arguments,omitempty"`
	Type              string         `json:"type"`
	DeprecationReason string         `json:"deprecationReason,omitempty"`
	Description       string         `json:"description,omitempty"`
}

type TypeInfo struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Description string `json:"description,omitempty"`
}

type ValueInfo struct {
	EnumName          string `json:"enumName,omitempty"`
	Name              string `json:"name"`
	DeprecationReason string `json:"deprecationReason,omitempty"`
	Description       string `json:"description,omitempty"`
}

type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

type BuildError struct {
	Message   string     `json:"message"`
	Locations []Location `json:"locations,omitempty"`
}

type CheckResult struct {
	Valid      bool         `json:"valid"`
	Types      int          `json:"types,omitempty"`
	Directives int          `json:"directives,omitempty"`
	Errors     []BuildError `json:"errors,omitempty"`
}

type RootInfo struct {
	Operation string `json:"operation"`
	Type      string `json:"type"`
}

type DirectiveInfo struct {
	Name        string         `json:"name"`
	Locations   []string       `json:"locations"`
	Arguments   []ArgumentInfo `json:"arguments,omitempty"`
	Description string         `json:"description,omitempty"`
}

package config

// Default values and environment variables.
const (
	DefaultOutputSuffix = "_gen.go"
	EnvOutput           = "PRETTYREGEX_OUTPUT"
)

// ApplyDefaults fills in unset fields of m.
func ApplyDefaults(m *Manifest) {
	if m.Output == "" && m.Package != "" {
		m.Output = m.Package + DefaultOutputSuffix
	}
}

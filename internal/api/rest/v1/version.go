package v1

// ServiceName and Version are reported by the about view.
const (
	ServiceName = "Sistema de Tutorías"
	Version     = "1.0.0"
)

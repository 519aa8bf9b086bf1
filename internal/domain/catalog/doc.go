// Package catalog defines the academic catalog: programs (carreras), the
// subjects (asignaturas) they contain and the instructors (docentes) who
// tutor them, together with the service and repository contracts used to
// register and browse them.
package catalog

package service

import "github.com/madrasa/internal/db"

// Public paths invalidated after content changes.
const (
	PathHome      = "/"
	PathAbout     = "/aboutus/about"
	PathMission   = "/aboutus/mission"
	PathChairman  = "/aboutus/chairman"
	PathCommittee = "/aboutus/committee"
	PathNews      = "/news"
	PathContact   = "/contact"
)

// AcademicPage returns the public page path of kind.
func AcademicPage(kind db.AcademicKind) string {
	if kind == db.KindRoutine {
		return "/academic/classroutine"
	}
	return "/academic/" + string(kind)
}

// AcademicAPI returns the public JSON endpoint of kind.
func AcademicAPI(kind db.AcademicKind) string {
	if kind == db.KindRoutine {
		return "/api/classroutine"
	}
	return "/api/" + string(kind)
}

// AcademicPaths returns every path that shows kind.
func AcademicPaths(kind db.AcademicKind) []string {
	return []string{AcademicPage(kind), AcademicAPI(kind)}
}

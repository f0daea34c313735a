package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/madrasa/internal/db"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupServiceTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s-service-%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	gdb, err := db.Open(dsn, logger.Silent)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return gdb
}

type pathRecorder struct {
	paths []string
}

func (r *pathRecorder) Invalidate(paths ...string) {
	r.paths = append(r.paths, paths...)
}

func (r *pathRecorder) has(path string) bool {
	for _, p := range r.paths {
		if p == path {
			return true
		}
	}
	return false
}

func TestServices_NewWiresEveryAcademicKind(t *testing.T) {
	gdb := setupServiceTestDB(t, "wire")
	svcs := New(gdb, Deps{})

	for _, kind := range db.AcademicKinds {
		svc, ok := svcs.Academic[kind]
		if !ok {
			t.Fatalf("missing academic service for %s", kind)
		}
		if svc.Kind() != kind {
			t.Fatalf("expected kind %s, got %s", kind, svc.Kind())
		}
	}
	if svcs.Contact == nil || svcs.News == nil || svcs.Site == nil {
		t.Fatalf("expected every service to be wired")
	}
}

func TestAcademicPaths(t *testing.T) {
	if got := AcademicPage(db.KindRoutine); got != "/academic/classroutine" {
		t.Fatalf("unexpected routine page: %s", got)
	}
	if got := AcademicAPI(db.KindCurriculum); got != "/api/curriculum" {
		t.Fatalf("unexpected curriculum api: %s", got)
	}
	if got := AcademicPaths(db.KindSyllabus); len(got) != 2 {
		t.Fatalf("expected page and api path, got %v", got)
	}
}

func TestTrimmedWalksEmbeddedStructs(t *testing.T) {
	in := db.CoreValue{Title: "  Faith ", Description: "\tdesc\n"}
	out := trimmed(in)
	if out.Title != "Faith" || out.Description != "desc" {
		t.Fatalf("unexpected trimmed value: %+v", out)
	}
	if in.Title != "  Faith " {
		t.Fatalf("input must not be modified")
	}
}

func TestRenderMarkdownStripsScripts(t *testing.T) {
	html := string(RenderMarkdown("**bold**\n\n<script>alert(1)</script>"))
	if want := "<strong>bold</strong>"; !strings.Contains(html, want) {
		t.Fatalf("expected %q in %q", want, html)
	}
	if strings.Contains(html, "<script>") {
		t.Fatalf("script tag must be removed: %q", html)
	}
}

var bg = context.Background()

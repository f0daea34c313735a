package db

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:db-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := Open(dsn, logger.Silent)
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

func TestSeedIsIdempotent(t *testing.T) {
	gdb := openTestDB(t)

	first, err := Seed(gdb)
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if first.Singletons != 5 {
		t.Fatalf("expected 5 singletons, got %d", first.Singletons)
	}
	expectedRows := len(DefaultAboutStatistics()) + len(DefaultCoreValues()) + len(DefaultLeadership()) + len(DefaultCommitteeMembers())
	if first.Rows != expectedRows {
		t.Fatalf("expected %d rows, got %d", expectedRows, first.Rows)
	}

	second, err := Seed(gdb)
	if err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if second.Singletons != 0 || second.Rows != 0 {
		t.Fatalf("expected second seed to insert nothing, got %+v", second)
	}

	var page AboutUsPage
	if err := gdb.First(&page, 1).Error; err != nil {
		t.Fatalf("expected about page with id 1: %v", err)
	}
	if page.HeroTitle != "About Our Madrasa" {
		t.Fatalf("unexpected hero title %q", page.HeroTitle)
	}

	var hidden int64
	gdb.Model(&CommitteeMember{}).Where("is_active = ?", false).Count(&hidden)
	if hidden != 0 {
		t.Fatalf("expected seeded members to be active, found %d hidden", hidden)
	}
}

func TestSeedKeepsEditedSingleton(t *testing.T) {
	gdb := openTestDB(t)

	edited := DefaultMissionVision()
	edited.ID = 1
	edited.HeroTitle = "Edited"
	if err := gdb.Create(&edited).Error; err != nil {
		t.Fatalf("create mission failed: %v", err)
	}

	if _, err := Seed(gdb); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	var stored MissionVision
	gdb.First(&stored, 1)
	if stored.HeroTitle != "Edited" {
		t.Fatalf("seed overwrote edited mission: %q", stored.HeroTitle)
	}
}

func TestEnsureUserCreatesOnce(t *testing.T) {
	gdb := openTestDB(t)

	created, err := EnsureUser(gdb, " admin ", "secret")
	if err != nil || !created {
		t.Fatalf("expected user to be created, created=%v err=%v", created, err)
	}
	created, err = EnsureUser(gdb, "admin", "other")
	if err != nil || created {
		t.Fatalf("expected existing user to be kept, created=%v err=%v", created, err)
	}

	var user User
	if err := gdb.Where("username = ?", "admin").First(&user).Error; err != nil {
		t.Fatalf("load user failed: %v", err)
	}
	if !user.CheckPassword("secret") {
		t.Fatal("expected stored password to match")
	}
	if user.CheckPassword("other") {
		t.Fatal("expected second password to be ignored")
	}

	if created, err := EnsureUser(gdb, "", "x"); err != nil || created {
		t.Fatalf("expected blank username to be skipped")
	}
}

func TestParseAcademicKind(t *testing.T) {
	cases := map[string]AcademicKind{
		"curriculum":   KindCurriculum,
		"syllabus":     KindSyllabus,
		"routine":      KindRoutine,
		"classroutine": KindRoutine,
	}
	for raw, want := range cases {
		got, ok := ParseAcademicKind(raw)
		if !ok || got != want {
			t.Fatalf("ParseAcademicKind(%q) = %q, %v", raw, got, ok)
		}
	}
	if _, ok := ParseAcademicKind("exams"); ok {
		t.Fatal("expected unknown kind to be rejected")
	}
}

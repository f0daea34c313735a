package db

import (
	"fmt"

	"gorm.io/gorm"
)

// SeedReport counts the rows inserted by Seed.
type SeedReport struct {
	Singletons int
	Rows       int
}

// Seed 写入默认内容。已存在的单例记录与非空的集合表不会被覆盖，因此可以重复执行。
func Seed(gdb *gorm.DB) (SeedReport, error) {
	var report SeedReport

	err := gdb.Transaction(func(tx *gorm.DB) error {
		steps := []func() (bool, error){
			func() (bool, error) { return seedSingleton(tx, DefaultAboutUsPage()) },
			func() (bool, error) { return seedSingleton(tx, DefaultAboutSection()) },
			func() (bool, error) { return seedSingleton(tx, DefaultMissionVision()) },
			func() (bool, error) { return seedSingleton(tx, DefaultChairmanMessage()) },
			func() (bool, error) { return seedSingleton(tx, DefaultAdvisoryCommittee()) },
		}
		for _, step := range steps {
			created, err := step()
			if err != nil {
				return err
			}
			if created {
				report.Singletons++
			}
		}

		collections := []func() (int, error){
			func() (int, error) { return seedCollection(tx, DefaultAboutStatistics()) },
			func() (int, error) { return seedCollection(tx, DefaultCoreValues()) },
			func() (int, error) { return seedCollection(tx, DefaultLeadership()) },
			func() (int, error) { return seedCollection(tx, DefaultCommitteeMembers()) },
		}
		for _, step := range collections {
			n, err := step()
			if err != nil {
				return err
			}
			report.Rows += n
		}
		return nil
	})
	if err != nil {
		return SeedReport{}, fmt.Errorf("seed default content: %w", err)
	}
	return report, nil
}

func seedSingleton[T any, PT interface {
	*T
	SetID(uint)
}](tx *gorm.DB, record T) (bool, error) {
	var count int64
	if err := tx.Model(new(T)).Where("id = ?", 1).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	PT(&record).SetID(1)
	if err := tx.Create(PT(&record)).Error; err != nil {
		return false, err
	}
	return true, nil
}

// seedCollection inserts rows only when the table is empty.
func seedCollection[T any](tx *gorm.DB, rows []T) (int, error) {
	var count int64
	if err := tx.Model(new(T)).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 || len(rows) == 0 {
		return 0, nil
	}
	if err := tx.Create(&rows).Error; err != nil {
		return 0, err
	}
	return len(rows), nil
}

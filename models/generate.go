package models

import (
	"log"
	"os"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Migrate brings the schema in line with the model structs. Foreign keys and
// cascade rules come from the struct tags; the database enforces them from
// then on.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Category{},
		&Tag{},
		&Post{},
	)
}

// GenerateModels migrates the schema and regenerates the gorm query helpers
// under ./generated. Run via GENERATE_MODELS=true; the process exits after.
func GenerateModels(db *gorm.DB) {
	if err := db.Exec("SELECT 1").Error; err != nil {
		log.Fatalf("database not reachable: %v", err)
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             0,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)
	db = db.Session(&gorm.Session{
		Logger:                 newLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(
		User{},
		Category{},
		Tag{},
		Post{},
	)

	if err := Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	g.Execute()
	log.Println("model generation complete")
}

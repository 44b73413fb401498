package main

import (
	"wearsync/internal/infra/persistence/model"

	"gorm.io/gen"
)

// Generates typed query helpers for the persistence models into internal/infra/persistence/query.
func main() {
	models := []any{
		model.WearableConnectionModel{},
		model.WearableDataModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)

	g.Execute()
}

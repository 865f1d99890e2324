package main

import (
	"fmt"

	"go.uber.org/zap"

	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/repository"
	excelrepository "portfolio/internal/repository/excel"
	gormrepository "portfolio/internal/repository/gorm"
)

// backend is an opened record store. conn is nil for the spreadsheet store.
type backend struct {
	store repository.Store
	conn  *db.DB
}

func (b backend) close() {
	_ = db.Close(b.conn)
}

func openStore(cfg config.Config, driver string, logger *zap.Logger) (backend, error) {
	switch driver {
	case config.StoreExcel, "":
		logger.Info("using spreadsheet store", zap.String("path", cfg.Store.Path), zap.String("sheet", cfg.Store.Sheet))
		return backend{store: excelrepository.New(cfg.Store.Path, cfg.Store.Sheet)}, nil
	case config.StoreSQL:
		conn, err := db.Open(cfg.DB)
		if err != nil {
			return backend{}, fmt.Errorf("db open: %w", err)
		}
		if err := db.AutoMigrate(conn); err != nil {
			_ = db.Close(conn)
			return backend{}, fmt.Errorf("auto-migrate: %w", err)
		}
		logger.Info("using sql store", zap.String("driver", cfg.DB.Driver))
		return backend{store: gormrepository.New(conn.Gorm), conn: conn}, nil
	default:
		return backend{}, fmt.Errorf("unsupported store driver %q", driver)
	}
}

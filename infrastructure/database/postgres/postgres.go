package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
)

// O banco só recebe contagens curtas de acessos e leads
const (
	maxOpenConns    = 5
	maxIdleConns    = 2
	connMaxIdleTime = 5 * time.Minute
)

// Connection é o pool usado pelo repositório de estatísticas
type Connection struct {
	*sql.DB
}

// NewConnection abre o pool e só retorna quando o banco responde ao ping
func NewConnection(ctx context.Context, cfg config.Database) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao abrir conexão com o PostgreSQL")
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxIdleTime(connMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "PostgreSQL em %s:%s não respondeu", cfg.Host, cfg.Port)
	}

	return &Connection{DB: db}, nil
}

// RunInTransaction executa fn numa transação; erro ou panic desfazem tudo
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Wrapf(rbErr, "erro ao desfazer transação após: %v", err)
		}
		return err
	}

	return tx.Commit()
}

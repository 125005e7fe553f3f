package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/campaign-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-dashboard-api/internal/config"
)

// Estrutura mínima das tabelas do autobot lidas pelo enriquecimento de campanhas
var schemaStatements = []string{
	`CREATE SCHEMA IF NOT EXISTS autobot`,
	`CREATE TABLE IF NOT EXISTS autobot.campanhas (
		id SERIAL PRIMARY KEY,
		id_campanha_flowbiz VARCHAR(64) NOT NULL,
		nome VARCHAR(255),
		criado_em TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_campanhas_flowbiz ON autobot.campanhas (id_campanha_flowbiz)`,
	`CREATE TABLE IF NOT EXISTS autobot.campanha_acessos (
		id SERIAL PRIMARY KEY,
		campanha_id INTEGER NOT NULL REFERENCES autobot.campanhas (id),
		acessado_em TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS autobot.formulario (
		id SERIAL PRIMARY KEY,
		campanha_id INTEGER NOT NULL REFERENCES autobot.campanhas (id),
		enviado_em TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
}

type seedOptions struct {
	flowbizID string
	name      string
	accesses  int
	leads     int
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	var seed seedOptions
	flag.StringVar(&seed.flowbizID, "seed-campaign", "", "id da campanha no Flowbiz para criar dados de exemplo")
	flag.StringVar(&seed.name, "seed-name", "Campanha de exemplo", "nome da campanha de exemplo")
	flag.IntVar(&seed.accesses, "accesses", 10, "quantidade de acessos de exemplo")
	flag.IntVar(&seed.leads, "leads", 3, "quantidade de formulários de exemplo")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar configuração")
	}
	if !cfg.Database.Enabled() {
		logrus.Fatal("DB_HOST não configurado")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := createSchema(ctx, tx); err != nil {
			return err
		}
		if seed.flowbizID == "" {
			return nil
		}
		return seedCampaign(ctx, tx, seed)
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o banco")
	}

	logrus.WithFields(logrus.Fields{
		"duration":      time.Since(startTime).String(),
		"seed_campaign": seed.flowbizID,
	}).Info("Banco de desenvolvimento pronto")
}

func createSchema(ctx context.Context, tx *sql.Tx) error {
	for _, statement := range schemaStatements {
		if _, err := tx.ExecContext(ctx, statement); err != nil {
			return errors.Wrap(err, "erro ao criar estrutura do autobot")
		}
	}
	logrus.Info("Estrutura do autobot criada")
	return nil
}

func seedCampaign(ctx context.Context, tx *sql.Tx, seed seedOptions) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(tx)

	var campaignID int
	err := psql.Insert("autobot.campanhas").
		Columns("id_campanha_flowbiz", "nome").
		Values(seed.flowbizID, seed.name).
		Suffix("RETURNING id").
		QueryRowContext(ctx).
		Scan(&campaignID)
	if err != nil {
		return errors.Wrapf(err, "erro ao inserir campanha %s", seed.flowbizID)
	}

	if err := insertRows(ctx, psql, "autobot.campanha_acessos", campaignID, seed.accesses); err != nil {
		return err
	}
	if err := insertRows(ctx, psql, "autobot.formulario", campaignID, seed.leads); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"campaign_id": campaignID,
		"accesses":    seed.accesses,
		"leads":       seed.leads,
	}).Info("Campanha de exemplo inserida")
	return nil
}

func insertRows(ctx context.Context, psql squirrel.StatementBuilderType, table string, campaignID, count int) error {
	if count <= 0 {
		return nil
	}

	insert := psql.Insert(table).Columns("campanha_id")
	for i := 0; i < count; i++ {
		insert = insert.Values(campaignID)
	}

	if _, err := insert.ExecContext(ctx); err != nil {
		return errors.Wrapf(err, "erro ao inserir em %s", table)
	}
	return nil
}

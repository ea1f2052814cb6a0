package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/core"
	"github.com/mikey/referral-contacts/internal/roles"
)

// MySQLCache is a MySQL implementation of the ContactCache interface
type MySQLCache struct {
	db            *sql.DB
	logger        *zap.Logger
	maxRecruiters int
	maxEmployees  int
}

// NewMySQLCache creates a new MySQL contact cache
func NewMySQLCache(dsn string, logger *zap.Logger, maxRecruiters, maxEmployees int) (*MySQLCache, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open MySQL database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS referral_contacts (
			id VARCHAR(36) NOT NULL,
			company VARCHAR(255) NOT NULL,
			email VARCHAR(255) NOT NULL,
			full_name VARCHAR(255) NOT NULL,
			job_title VARCHAR(255),
			linkedin_url VARCHAR(512),
			updated_at TIMESTAMP,
			PRIMARY KEY (company, email),
			INDEX idx_referral_contacts_company (company)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &MySQLCache{
		db:            db,
		logger:        logger,
		maxRecruiters: maxRecruiters,
		maxEmployees:  maxEmployees,
	}, nil
}

// FetchByCompany retrieves cached contacts for a company. Storage errors
// degrade to an empty set.
func (c *MySQLCache) FetchByCompany(ctx context.Context, company string) (*core.ContactSet, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, full_name, email, company, job_title, linkedin_url
		FROM referral_contacts
		WHERE LOWER(company) LIKE CONCAT('%', LOWER(?), '%')
		ORDER BY updated_at DESC
	`, company)
	if err != nil {
		c.logger.Error("Failed to query contact cache", zap.Error(err), zap.String("company", company))
		return &core.ContactSet{}, nil
	}
	defer rows.Close()

	set := &core.ContactSet{}
	for rows.Next() {
		var e entry
		var jobTitle, profileURL sql.NullString
		if err := rows.Scan(&e.id, &e.fullName, &e.email, &e.company, &jobTitle, &profileURL); err != nil {
			c.logger.Error("Failed to scan contact row", zap.Error(err))
			continue
		}
		e.jobTitle = jobTitle.String
		e.profileURL = profileURL.String

		contact := e.toContact()
		if roles.IsRecruiterTitle(contact.Position) {
			if len(set.Recruiters) < c.maxRecruiters {
				set.Recruiters = append(set.Recruiters, contact)
			}
		} else if len(set.Employees) < c.maxEmployees {
			set.Employees = append(set.Employees, contact)
		}
	}
	if err := rows.Err(); err != nil {
		c.logger.Error("Failed to read contact rows", zap.Error(err))
	}

	return set, nil
}

// Upsert stores every contact of the set keyed by (company, email)
func (c *MySQLCache) Upsert(ctx context.Context, company string, set *core.ContactSet) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO referral_contacts (id, company, email, full_name, job_title, linkedin_url, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			full_name = VALUES(full_name),
			job_title = VALUES(job_title),
			linkedin_url = VALUES(linkedin_url),
			updated_at = VALUES(updated_at)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now()
	for _, contact := range append(append([]core.Contact{}, set.Recruiters...), set.Employees...) {
		if contact.Email == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, uuid.NewString(), company, contact.Email,
			contact.Name, contact.Position, contact.ProfileURL, now); err != nil {
			return fmt.Errorf("failed to upsert contact %s: %w", contact.Email, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit upsert: %w", err)
	}

	c.logger.Debug("Upserted contacts into MySQL cache",
		zap.String("company", company),
		zap.Int("count", set.Total()))
	return nil
}

// Close closes the database connection
func (c *MySQLCache) Close() {
	if err := c.db.Close(); err != nil {
		c.logger.Error("Failed to close MySQL database", zap.Error(err))
	}
}

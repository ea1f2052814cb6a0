package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/mikey/referral-contacts/internal/core"
	"github.com/mikey/referral-contacts/internal/roles"
)

// SQLiteCache is a SQLite implementation of the ContactCache interface
type SQLiteCache struct {
	db            *sql.DB
	logger        *zap.Logger
	maxRecruiters int
	maxEmployees  int
}

// NewSQLiteCache creates a new SQLite contact cache
func NewSQLiteCache(dbPath string, logger *zap.Logger, maxRecruiters, maxEmployees int) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Create table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS referral_contacts (
			id TEXT NOT NULL,
			company TEXT NOT NULL,
			email TEXT NOT NULL,
			full_name TEXT NOT NULL,
			job_title TEXT,
			linkedin_url TEXT,
			updated_at TIMESTAMP,
			PRIMARY KEY (company, email)
		)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	// Index for the substring company match
	_, err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_referral_contacts_company ON referral_contacts(company)
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	return &SQLiteCache{
		db:            db,
		logger:        logger,
		maxRecruiters: maxRecruiters,
		maxEmployees:  maxEmployees,
	}, nil
}

// FetchByCompany retrieves cached contacts for a company. Storage errors
// degrade to an empty set; the cache is best-effort by contract.
func (c *SQLiteCache) FetchByCompany(ctx context.Context, company string) (*core.ContactSet, error) {
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, full_name, email, company, job_title, linkedin_url
		FROM referral_contacts
		WHERE LOWER(company) LIKE '%' || LOWER(?) || '%'
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

// Upsert stores every contact of the set keyed by (company, email);
// conflicting rows are overwritten but keep their id
func (c *SQLiteCache) Upsert(ctx context.Context, company string, set *core.ContactSet) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO referral_contacts (id, company, email, full_name, job_title, linkedin_url, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (company, email) DO UPDATE SET
			full_name = excluded.full_name,
			job_title = excluded.job_title,
			linkedin_url = excluded.linkedin_url,
			updated_at = excluded.updated_at
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Format(time.RFC3339)
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

	c.logger.Debug("Upserted contacts into SQLite cache",
		zap.String("company", company),
		zap.Int("count", set.Total()))
	return nil
}

// Close closes the database connection
func (c *SQLiteCache) Close() {
	if err := c.db.Close(); err != nil {
		c.logger.Error("Failed to close SQLite database", zap.Error(err))
	}
}

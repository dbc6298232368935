package iocache

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/schema"
)

// Table names for ranking history.
const (
	rankingRunsTable    = "fuzzyrank_ranking_runs"
	rankingEntriesTable = "fuzzyrank_ranking_entries"
)

// historyTables lists the history tables in creation order.
var historyTables = []string{rankingRunsTable, rankingEntriesTable}

// HistoryStoreImpl implements the HistoryStore interface.
type HistoryStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.HistoryStore = &HistoryStoreImpl{} // Compile-time check

// NewHistoryStore creates a new HistoryStore with the specified backend.
func NewHistoryStore(backend schema.DatabaseBackend, connStr string) (*HistoryStoreImpl, error) {
	if backend == schema.NoneBackend {
		// No-op store for disabled tracking
		return &HistoryStoreImpl{backend: backend}, nil
	}

	db, err := openDB(backend, connStr, GetHistoryDBFilePath())
	if err != nil {
		return nil, err
	}

	if err := createHistoryTables(db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create history tables: %w", err)
	}

	return &HistoryStoreImpl{db: db, backend: backend}, nil
}

// createHistoryTables applies every embedded "up" migration of the backend.
// The statements are idempotent, so this is safe on an already migrated database.
func createHistoryTables(db *sql.DB, backend schema.DatabaseBackend) error {
	dir := "migrations/" + string(backend)
	names, err := fs.Glob(migrationsFS, dir+"/*.up.sql")
	if err != nil {
		return err
	}
	sort.Strings(names)

	for _, name := range names {
		stmt, err := fs.ReadFile(migrationsFS, name)
		if err != nil {
			return err
		}
		if _, err := db.Exec(strings.TrimSpace(string(stmt))); err != nil {
			return fmt.Errorf("failed to apply %s: %w", name, err)
		}
	}
	return nil
}

// BeginRun creates a new ranking run and returns its numeric ID.
func (hs *HistoryStoreImpl) BeginRun(runUUID string, startTime time.Time, configParams map[string]any) (int64, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return 0, nil
	}

	configJSON, err := json.Marshal(configParams)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal config params: %w", err)
	}

	quotedTableName := quoteTableName(rankingRunsTable, hs.backend)

	var runID int64
	switch hs.backend {
	case schema.PostgreSQLBackend:
		query := fmt.Sprintf(`INSERT INTO %s (run_uuid, start_time, config_params) VALUES ($1, $2, $3) RETURNING run_id`, quotedTableName)
		err = hs.db.QueryRow(query, runUUID, startTime, string(configJSON)).Scan(&runID)
	default: // SQLite and MySQL
		query := fmt.Sprintf(`INSERT INTO %s (run_uuid, start_time, config_params) VALUES (?, ?, ?)`, quotedTableName)
		var result sql.Result
		result, err = hs.db.Exec(query, runUUID, formatTime(startTime, hs.backend), string(configJSON))
		if err == nil {
			runID, err = result.LastInsertId()
		}
	}

	if err != nil {
		return 0, fmt.Errorf("failed to insert ranking run: %w", err)
	}
	return runID, nil
}

// EndRun updates the ranking run with completion data.
func (hs *HistoryStoreImpl) EndRun(runID int64, endTime time.Time, result schema.Result) error {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}

	quotedTableName := quoteTableName(rankingRunsTable, hs.backend)

	startTime, err := hs.scanTime(
		hs.db.QueryRow(fmt.Sprintf(`SELECT start_time FROM %s WHERE run_id = %s`, quotedTableName, placeholders(hs.backend, 1)), runID))
	if err != nil {
		return fmt.Errorf("failed to get start_time for run %d: %w", runID, err)
	}
	durationMs := endTime.Sub(startTime).Milliseconds()

	var query string
	if hs.backend == schema.PostgreSQLBackend {
		query = fmt.Sprintf(`UPDATE %s SET end_time = $1, run_duration_ms = $2, num_experts = $3, num_criteria = $4,
			num_alternatives = $5, fingerprint = $6 WHERE run_id = $7`, quotedTableName)
	} else {
		query = fmt.Sprintf(`UPDATE %s SET end_time = ?, run_duration_ms = ?, num_experts = ?, num_criteria = ?,
			num_alternatives = ?, fingerprint = ? WHERE run_id = ?`, quotedTableName)
	}

	_, err = hs.db.Exec(query, formatTime(endTime, hs.backend), durationMs,
		result.NumExperts, result.NumCriteria, result.NumAlternatives, result.Fingerprint, runID)
	if err != nil {
		return fmt.Errorf("failed to update ranking run: %w", err)
	}
	return nil
}

// RecordRanking stores every ranked alternative of a run in one transaction.
func (hs *HistoryStoreImpl) RecordRanking(runID int64, ranking []schema.RankingEntry) error {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil
	}

	query := fmt.Sprintf(`INSERT INTO %s (run_id, rank_position, alternative_index, alternative,
		closeness, dist_fpis, dist_fnis, acceptance_label) VALUES (%s)`,
		quoteTableName(rankingEntriesTable, hs.backend), placeholders(hs.backend, 8))

	tx, err := hs.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for pos, e := range ranking {
		if _, err := tx.Exec(query, runID, pos+1, e.Index, e.Alternative,
			e.Closeness, e.DistToFPIS, e.DistToFNIS, contract.GetPlainLabel(e.Closeness)); err != nil {
			return fmt.Errorf("failed to insert ranking entry %q: %w", e.Alternative, err)
		}
	}
	return tx.Commit()
}

// Close closes the underlying connection.
func (hs *HistoryStoreImpl) Close() error {
	if hs.db != nil {
		return hs.db.Close()
	}
	return nil
}

// scanTime reads a single time column, which SQLite stores as text.
func (hs *HistoryStoreImpl) scanTime(row *sql.Row) (time.Time, error) {
	if hs.backend != schema.SQLiteBackend {
		var t time.Time
		err := row.Scan(&t)
		return t, err
	}
	var s string
	if err := row.Scan(&s); err != nil {
		return time.Time{}, err
	}
	return parseTime(s)
}

// GetStatus returns status information about the history store.
func (hs *HistoryStoreImpl) GetStatus() (schema.HistoryStatus, error) {
	status := schema.HistoryStatus{
		Backend:    string(hs.backend),
		Connected:  hs.db != nil,
		TableSizes: make(map[string]int64),
	}

	if hs.backend == schema.NoneBackend || hs.db == nil {
		return status, nil
	}

	runs := quoteTableName(rankingRunsTable, hs.backend)
	if err := hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", runs)).Scan(&status.TotalRuns); err != nil {
		return status, fmt.Errorf("failed to get total runs: %w", err)
	}

	if status.TotalRuns > 0 {
		if err := hs.db.QueryRow(fmt.Sprintf("SELECT MAX(run_id) FROM %s", runs)).Scan(&status.LastRunID); err != nil {
			return status, fmt.Errorf("failed to get last run id: %w", err)
		}

		var err error
		status.LastRunTime, err = hs.scanTime(hs.db.QueryRow(fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id DESC LIMIT 1", runs)))
		if err != nil {
			return status, fmt.Errorf("failed to get last run time: %w", err)
		}
		status.OldestRunTime, err = hs.scanTime(hs.db.QueryRow(fmt.Sprintf("SELECT start_time FROM %s ORDER BY run_id ASC LIMIT 1", runs)))
		if err != nil {
			return status, fmt.Errorf("failed to get oldest run time: %w", err)
		}

		itemsQuery := fmt.Sprintf("SELECT COALESCE(SUM(num_alternatives), 0) FROM %s", runs)
		if err := hs.db.QueryRow(itemsQuery).Scan(&status.TotalRankedItems); err != nil {
			return status, fmt.Errorf("failed to get total ranked items: %w", err)
		}
	}

	for _, table := range historyTables {
		var count int64
		if err := hs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(table, hs.backend))).Scan(&count); err != nil {
			return status, fmt.Errorf("failed to get count for table %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}

	return status, nil
}

// GetAllRuns retrieves all ranking runs from the store.
func (hs *HistoryStoreImpl) GetAllRuns() ([]schema.RankingRunRecord, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT run_id, run_uuid, start_time, end_time, run_duration_ms,
		num_experts, num_criteria, num_alternatives, fingerprint, config_params FROM %s ORDER BY run_id`,
		quoteTableName(rankingRunsTable, hs.backend))

	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ranking runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.RankingRunRecord
	for rows.Next() {
		var record schema.RankingRunRecord

		switch hs.backend {
		case schema.SQLiteBackend:
			var startTimeStr string
			var endTimeStr *string
			if err := rows.Scan(&record.RunID, &record.RunUUID, &startTimeStr, &endTimeStr, &record.RunDurationMs,
				&record.NumExperts, &record.NumCriteria, &record.NumAlternatives, &record.Fingerprint, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan ranking run: %w", err)
			}
			if record.StartTime, err = parseTime(startTimeStr); err != nil {
				return nil, fmt.Errorf("failed to parse start_time: %w", err)
			}
			if endTimeStr != nil {
				endTime, err := parseTime(*endTimeStr)
				if err != nil {
					return nil, fmt.Errorf("failed to parse end_time: %w", err)
				}
				record.EndTime = &endTime
			}
		default: // MySQL and PostgreSQL
			if err := rows.Scan(&record.RunID, &record.RunUUID, &record.StartTime, &record.EndTime, &record.RunDurationMs,
				&record.NumExperts, &record.NumCriteria, &record.NumAlternatives, &record.Fingerprint, &record.ConfigParams); err != nil {
				return nil, fmt.Errorf("failed to scan ranking run: %w", err)
			}
		}

		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ranking runs: %w", err)
	}
	return results, nil
}

// GetAllEntries retrieves all ranking entries from the store.
func (hs *HistoryStoreImpl) GetAllEntries() ([]schema.RankingEntryRecord, error) {
	if hs.backend == schema.NoneBackend || hs.db == nil {
		return nil, nil
	}

	query := fmt.Sprintf(`SELECT run_id, rank_position, alternative_index, alternative,
		closeness, dist_fpis, dist_fnis, acceptance_label FROM %s ORDER BY run_id, rank_position`,
		quoteTableName(rankingEntriesTable, hs.backend))

	rows, err := hs.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query ranking entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []schema.RankingEntryRecord
	for rows.Next() {
		var record schema.RankingEntryRecord
		if err := rows.Scan(&record.RunID, &record.Rank, &record.AlternativeIndex, &record.Alternative,
			&record.Closeness, &record.DistToFPIS, &record.DistToFNIS, &record.AcceptanceLabel); err != nil {
			return nil, fmt.Errorf("failed to scan ranking entry: %w", err)
		}
		results = append(results, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ranking entries: %w", err)
	}
	return results, nil
}

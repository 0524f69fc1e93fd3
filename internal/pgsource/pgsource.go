// Package pgsource is the pgx-backed adapter between the host's relational
// store (an Apache AGE graph, per the original source) and the engine's
// loader ingress and generation-table ports. Connection pooling follows the
// host project's licensing.PGStore pattern (pgxpool.Pool with bounded
// connection lifetime); the catalog scan, identifier sanitization, and
// label/edge-type filtering mirror ext/src/load.rs in the original.
package pgsource

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dd0wney/graphaccel/internal/config"
	"github.com/dd0wney/graphaccel/internal/graphstore"
)

var identPattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// SanitizeIdent validates that name is safe to interpolate into a SQL
// identifier position (schema/table name), mirroring the original's
// sanitize_ident. pgx has no parameter-binding path for identifiers, so
// this check is the only thing standing between a config value and a SQL
// injection if an operator sets source_graph/label names from untrusted
// input.
func SanitizeIdent(name string) error {
	if name == "" || !identPattern.MatchString(name) {
		return fmt.Errorf("pgsource: invalid identifier %q", name)
	}
	return nil
}

// Source loads graph snapshots from a host PostgreSQL database holding an
// Apache AGE graph, and doubles as the generation.Store for that database's
// graphaccel.generation table.
type Source struct {
	pool *pgxpool.Pool
}

// Connect opens a pooled connection to databaseURL and verifies
// connectivity, following the host project's pgxpool configuration
// (bounded pool size and connection lifetime).
func Connect(ctx context.Context, databaseURL string) (*Source, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgsource: parse database url: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MinConns = 1
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.MaxConnIdleTime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("pgsource: create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pgsource: database unreachable: %w", err)
	}
	return &Source{pool: pool}, nil
}

// Close releases the connection pool.
func (s *Source) Close() {
	s.pool.Close()
}

type labelInfo struct {
	name string
	kind string // "v" or "e"
}

func (s *Source) labelCatalog(ctx context.Context, graphName string) ([]labelInfo, error) {
	const q = `
		SELECT l.name, l.kind::text
		FROM ag_catalog.ag_label l
		JOIN ag_catalog.ag_graph g ON l.graph = g.graphid
		WHERE g.name = $1
		  AND l.name NOT LIKE '\_ag%'`

	rows, err := s.pool.Query(ctx, q, graphName)
	if err != nil {
		return nil, fmt.Errorf("pgsource: label catalog query: %w", err)
	}
	defer rows.Close()

	var labels []labelInfo
	for rows.Next() {
		var li labelInfo
		if err := rows.Scan(&li.name, &li.kind); err != nil {
			return nil, fmt.Errorf("pgsource: scan label row: %w", err)
		}
		labels = append(labels, li)
	}
	return labels, rows.Err()
}

func (s *Source) graphExists(ctx context.Context, graphName string) (bool, error) {
	const q = `SELECT 1 FROM ag_catalog.ag_graph WHERE name = $1`
	var dummy int
	err := s.pool.QueryRow(ctx, q, graphName).Scan(&dummy)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("pgsource: check graph existence: %w", err)
	}
	return true, nil
}

// Load streams every vertex and edge label belonging to graphName into the
// loader ingress channel used by graphstore.BulkLoad, honoring the
// node_labels/edge_types filters and node_id_property extraction from cfg.
// It is the caller's responsibility to run graphstore.BulkLoad concurrently
// draining the same channel.
func (s *Source) Load(ctx context.Context, graphName string, cfg config.Config, records chan<- graphstore.EdgeRecordIn) error {
	defer close(records)

	if err := SanitizeIdent(graphName); err != nil {
		return err
	}

	exists, err := s.graphExists(ctx, graphName)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("pgsource: AGE graph %q does not exist", graphName)
	}

	labels, err := s.labelCatalog(ctx, graphName)
	if err != nil {
		return err
	}

	nodeFilter := cfg.LoadLabels()
	edgeFilter := cfg.LoadEdgeTypes()

	for _, l := range labels {
		if l.kind != "v" || !config.MatchesFilter(nodeFilter, l.name) {
			continue
		}
		if err := s.streamVertices(ctx, graphName, l.name, cfg.NodeIDProperty, records); err != nil {
			return err
		}
	}
	for _, l := range labels {
		if l.kind != "e" || !config.MatchesFilter(edgeFilter, l.name) {
			continue
		}
		if err := s.streamEdges(ctx, graphName, l.name, records); err != nil {
			return err
		}
	}
	return nil
}

func (s *Source) streamVertices(ctx context.Context, graphName, labelName, nodeIDProp string, records chan<- graphstore.EdgeRecordIn) error {
	if err := SanitizeIdent(labelName); err != nil {
		return err
	}
	q := fmt.Sprintf(`SELECT id::text, properties::text FROM %s."%s"`, graphName, labelName)

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return fmt.Errorf("pgsource: vertex scan for label %s: %w", labelName, err)
	}
	defer rows.Close()

	for rows.Next() {
		var idStr, propsStr string
		if err := rows.Scan(&idStr, &propsStr); err != nil {
			return fmt.Errorf("pgsource: scan vertex row: %w", err)
		}
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			continue
		}

		var appID string
		hasAppID := false
		if nodeIDProp != "" {
			if v, ok := extractJSONString(propsStr, nodeIDProp); ok {
				appID, hasAppID = v, true
			}
		}

		select {
		case records <- graphstore.EdgeRecordIn{NodeOnly: true, FromID: id, FromLabel: labelName, FromAppID: appID, HasFromApp: hasAppID}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return rows.Err()
}

func (s *Source) streamEdges(ctx context.Context, graphName, labelName string, records chan<- graphstore.EdgeRecordIn) error {
	if err := SanitizeIdent(labelName); err != nil {
		return err
	}
	q := fmt.Sprintf(`SELECT start_id::text, end_id::text FROM %s."%s"`, graphName, labelName)

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return fmt.Errorf("pgsource: edge scan for label %s: %w", labelName, err)
	}
	defer rows.Close()

	for rows.Next() {
		var fromStr, toStr string
		if err := rows.Scan(&fromStr, &toStr); err != nil {
			return fmt.Errorf("pgsource: scan edge row: %w", err)
		}
		fromID, err1 := strconv.ParseUint(fromStr, 10, 64)
		toID, err2 := strconv.ParseUint(toStr, 10, 64)
		if err1 != nil || err2 != nil {
			continue
		}

		select {
		case records <- graphstore.EdgeRecordIn{FromID: fromID, ToID: toID, RelType: labelName, Confidence: nanFloat32()}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return rows.Err()
}

func extractJSONString(raw, key string) (string, bool) {
	var m map[string]any
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		return "", false
	}
	v, ok := m[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func nanFloat32() float32 {
	return float32(math.NaN())
}

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/fieldpress/fieldpress/internal/logger"
	"github.com/fieldpress/fieldpress/models"
	"github.com/jackc/pgerrcode"
)

// DefaultPageLimit is the page size applied when a list request does not
// specify one.
const DefaultPageLimit = 20

// nodeRepository is the PostgreSQL-backed implementation of [NodeRepository].
// One table holds instances of every registered node type; the declared field
// values travel in the JSONB data column and the slug is extracted into its
// own column for indexed secondary lookup.
type nodeRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNodeRepository constructs a [NodeRepository] backed by the provided
// database connection and logger.
func NewNodeRepository(db *DB, logger *logger.Logger) NodeRepository {
	logger.Debug().Msg("creating node repository")
	return &nodeRepository{
		db:     db,
		logger: logger,
	}
}

// CreateNode persists a new node record and returns the fully populated
// [models.Node] with server-assigned fields (ID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrSlugAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *nodeRepository) CreateNode(ctx context.Context, node models.Node) (models.Node, error) {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(node.Data)
	if err != nil {
		return models.Node{}, fmt.Errorf("%w: %w", ErrEncodingData, err)
	}

	row := r.db.QueryRowContext(ctx, createNode, node.Type, nullableString(node.Slug), node.AuthorID, data)

	created, err := scanNode(row)
	if err != nil {
		log.Err(err).Str("func", "*nodeRepository.CreateNode").Msg("error: node insert failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Node{}, ErrSlugAlreadyExists
		default:
			return models.Node{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// GetNodeByID retrieves one node of the given type by numeric primary key.
// Returns [ErrNodeNotFound] when no row matches.
func (r *nodeRepository) GetNodeByID(ctx context.Context, nodeType string, id int64) (models.Node, error) {
	return r.getNode(ctx, getNodeByID, nodeType, id)
}

// GetNodeBySlug retrieves one node of the given type by its slug column.
// Returns [ErrNodeNotFound] when no row matches.
func (r *nodeRepository) GetNodeBySlug(ctx context.Context, nodeType, slug string) (models.Node, error) {
	return r.getNode(ctx, getNodeBySlug, nodeType, slug)
}

func (r *nodeRepository) getNode(ctx context.Context, query string, args ...any) (models.Node, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, query, args...)
	node, err := scanNode(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Node{}, ErrNodeNotFound
		}
		log.Err(err).Str("func", "*nodeRepository.getNode").Msg("error: node lookup failed")
		return models.Node{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return node, nil
}

// ListNodes fetches one page of nodes of the given type, newest first, with an
// optional substring search against the type's title field. It returns the
// page rows and the total count of matching rows.
//
// The list query is the only dynamically shaped one in this repository, so it
// is built with squirrel instead of a prepared constant.
func (r *nodeRepository) ListNodes(ctx context.Context, nodeType string, params ListParams) ([]models.Node, int64, error) {
	log := logger.FromContext(ctx)

	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = DefaultPageLimit
	}

	base := sq.Select().From("nodes").
		Where(sq.Eq{"node_type": nodeType}).
		PlaceholderFormat(sq.Dollar)

	if params.Search != "" && params.TitleField != "" {
		// TitleField comes from the type registry, never from user input.
		base = base.Where(
			fmt.Sprintf("data->>'%s' ILIKE ?", params.TitleField),
			"%"+params.Search+"%",
		)
	}

	countQuery, countArgs, err := base.Columns("COUNT(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*nodeRepository.ListNodes").Msg("error: count query failed")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	offset := uint64(params.Page-1) * uint64(params.Limit)
	listQuery, listArgs, err := base.Columns(nodeColumns).
		OrderBy("created_at DESC").
		Limit(uint64(params.Limit)).
		Offset(offset).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*nodeRepository.ListNodes").Msg("error: list query failed")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	nodes := make([]models.Node, 0, params.Limit)
	for rows.Next() {
		node, err := scanNode(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		nodes = append(nodes, node)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nodes, total, nil
}

// UpdateNode persists the slug and data columns of an existing node and
// returns the updated record.
//
// Error handling:
//   - No matching row → [ErrNodeNotFound].
//   - PostgreSQL unique_violation (23505) → [ErrSlugAlreadyExists].
func (r *nodeRepository) UpdateNode(ctx context.Context, node models.Node) (models.Node, error) {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(node.Data)
	if err != nil {
		return models.Node{}, fmt.Errorf("%w: %w", ErrEncodingData, err)
	}

	row := r.db.QueryRowContext(ctx, updateNode, nullableString(node.Slug), data, node.Type, node.ID)

	updated, err := scanNode(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Node{}, ErrNodeNotFound
		}
		log.Err(err).Str("func", "*nodeRepository.UpdateNode").Msg("error: node update failed")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Node{}, ErrSlugAlreadyExists
		default:
			return models.Node{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteNode removes one node of the given type by numeric primary key.
// Returns [ErrNodeNotFound] when no row was deleted.
func (r *nodeRepository) DeleteNode(ctx context.Context, nodeType string, id int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteNode, nodeType, id)
	if err != nil {
		log.Err(err).Str("func", "*nodeRepository.DeleteNode").Msg("error: node delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNodeNotFound
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNode(row rowScanner) (models.Node, error) {
	var node models.Node
	var slug sql.NullString
	var authorID sql.NullInt64
	var data []byte

	if err := row.Scan(&node.ID, &node.Type, &slug, &authorID, &data, &node.CreatedAt, &node.UpdatedAt); err != nil {
		return models.Node{}, err
	}

	if slug.Valid {
		node.Slug = slug.String
	}
	if authorID.Valid {
		node.AuthorID = &authorID.Int64
	}
	if len(data) > 0 {
		if err := json.Unmarshal(data, &node.Data); err != nil {
			return models.Node{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	} else {
		node.Data = map[string]any{}
	}

	return node, nil
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

package board

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/topoboard/topoboard/backend-go/internal/document"
	"github.com/topoboard/topoboard/backend-go/internal/typeid"
)

var (
	ErrNotFound  = errors.New("board not found")
	ErrForbidden = errors.New("forbidden")
	ErrNotMember = errors.New("not a board member")
)

const (
	RoleOwner  = "owner"
	RoleEditor = "editor"
)

// Service manages boards and their document snapshots. A snapshot is a
// whole SceneDocument stored as JSONB with an incrementing version, so
// loading a board is always a single row read.
type Service struct {
	pool *pgxpool.Pool
}

func NewService(pool *pgxpool.Pool) *Service {
	return &Service{pool: pool}
}

type Board struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OwnerID   string `json:"ownerId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Member struct {
	UserID      string `json:"userId"`
	Role        string `json:"role"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

const boardColumns = `id, name, owner_id,
	to_char(created_at, 'YYYY-MM-DD"T"HH24:MI:SS"Z"'),
	to_char(updated_at, 'YYYY-MM-DD"T"HH24:MI:SS"Z"')`

func (s *Service) Create(ctx context.Context, name, ownerID string) (*Board, error) {
	boardID := typeid.NewBoardID()

	var b Board
	err := s.pool.QueryRow(ctx,
		`INSERT INTO boards (id, name, owner_id) VALUES ($1, $2, $3)
		 RETURNING `+boardColumns,
		boardID, name, ownerID).
		Scan(&b.ID, &b.Name, &b.OwnerID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create board: %w", err)
	}

	// Add owner as member
	_, err = s.pool.Exec(ctx,
		`INSERT INTO board_members (board_id, user_id, role) VALUES ($1, $2, $3)`,
		boardID, ownerID, RoleOwner)
	if err != nil {
		return nil, fmt.Errorf("add owner as member: %w", err)
	}

	// Seed empty document snapshot
	sceneID := typeid.NewSceneID()
	emptyDoc := document.NewEmptyDocument(boardID, name, sceneID)
	docJSON, err := json.Marshal(emptyDoc)
	if err != nil {
		return nil, fmt.Errorf("marshal empty document: %w", err)
	}
	if err := s.insertSnapshot(ctx, boardID, 1, docJSON); err != nil {
		return nil, fmt.Errorf("create initial snapshot: %w", err)
	}

	return &b, nil
}

func (s *Service) Get(ctx context.Context, boardID, userID string) (*Board, error) {
	if err := s.CheckMembership(ctx, boardID, userID); err != nil {
		return nil, err
	}
	return s.getBoard(ctx, boardID)
}

func (s *Service) List(ctx context.Context, userID string) ([]Board, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+boardColumns+`
		 FROM boards
		 WHERE id IN (SELECT board_id FROM board_members WHERE user_id = $1)
		 ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list boards: %w", err)
	}
	defer rows.Close()

	var boards []Board
	for rows.Next() {
		var b Board
		if err := rows.Scan(&b.ID, &b.Name, &b.OwnerID, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan board: %w", err)
		}
		boards = append(boards, b)
	}
	return boards, rows.Err()
}

func (s *Service) Delete(ctx context.Context, boardID, userID string) error {
	b, err := s.getBoard(ctx, boardID)
	if err != nil {
		return err
	}
	if b.OwnerID != userID {
		return ErrForbidden
	}

	if _, err := s.pool.Exec(ctx, `DELETE FROM boards WHERE id = $1`, boardID); err != nil {
		return fmt.Errorf("delete board: %w", err)
	}
	return nil
}

// InviteByEmail adds the user with the given email as an editor. Only the
// board owner may invite.
func (s *Service) InviteByEmail(ctx context.Context, boardID, ownerID, inviteeEmail string) error {
	b, err := s.getBoard(ctx, boardID)
	if err != nil {
		return err
	}
	if b.OwnerID != ownerID {
		return ErrForbidden
	}

	var inviteeID string
	err = s.pool.QueryRow(ctx,
		`SELECT id FROM users WHERE email = $1`, inviteeEmail).Scan(&inviteeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return errors.New("user not found")
		}
		return fmt.Errorf("look up invitee: %w", err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO board_members (board_id, user_id, role) VALUES ($1, $2, $3)
		 ON CONFLICT (board_id, user_id) DO NOTHING`,
		boardID, inviteeID, RoleEditor)
	if err != nil {
		return fmt.Errorf("add member: %w", err)
	}
	return nil
}

func (s *Service) ListMembers(ctx context.Context, boardID, userID string) ([]Member, error) {
	if err := s.CheckMembership(ctx, boardID, userID); err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx,
		`SELECT m.user_id, m.role, u.display_name, u.email
		 FROM board_members m JOIN users u ON u.id = m.user_id
		 WHERE m.board_id = $1 ORDER BY m.role, u.display_name`, boardID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", err)
	}
	defer rows.Close()

	var members []Member
	for rows.Next() {
		var m Member
		if err := rows.Scan(&m.UserID, &m.Role, &m.DisplayName, &m.Email); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

// RemoveMember removes a member from the board. Only the owner may remove
// members, and the owner cannot remove themselves.
func (s *Service) RemoveMember(ctx context.Context, boardID, ownerID, targetUserID string) error {
	b, err := s.getBoard(ctx, boardID)
	if err != nil {
		return err
	}
	if b.OwnerID != ownerID {
		return ErrForbidden
	}
	if targetUserID == ownerID {
		return errors.New("cannot remove the board owner")
	}

	_, err = s.pool.Exec(ctx,
		`DELETE FROM board_members WHERE board_id = $1 AND user_id = $2`,
		boardID, targetUserID)
	if err != nil {
		return fmt.Errorf("remove member: %w", err)
	}
	return nil
}

// GetLatestSnapshot returns the newest stored document for the board.
func (s *Service) GetLatestSnapshot(ctx context.Context, boardID, userID string) (json.RawMessage, error) {
	if err := s.CheckMembership(ctx, boardID, userID); err != nil {
		return nil, err
	}

	var doc json.RawMessage
	err := s.pool.QueryRow(ctx,
		`SELECT document FROM board_snapshots
		 WHERE board_id = $1 ORDER BY version DESC LIMIT 1`, boardID).
		Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}
	return doc, nil
}

// SaveSnapshot validates and stores a new document version for the board.
// Returns the version assigned.
func (s *Service) SaveSnapshot(ctx context.Context, boardID, userID string, docJSON json.RawMessage) (int, error) {
	if err := s.CheckMembership(ctx, boardID, userID); err != nil {
		return 0, err
	}

	var doc document.SceneDocument
	if err := json.Unmarshal(docJSON, &doc); err != nil {
		return 0, fmt.Errorf("parse document: %w", err)
	}

	var current int
	err := s.pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM board_snapshots WHERE board_id = $1`,
		boardID).Scan(&current)
	if err != nil {
		return 0, fmt.Errorf("current version: %w", err)
	}

	next := current + 1
	if err := s.insertSnapshot(ctx, boardID, next, docJSON); err != nil {
		return 0, err
	}

	_, err = s.pool.Exec(ctx,
		`UPDATE boards SET updated_at = now() WHERE id = $1`, boardID)
	if err != nil {
		return 0, fmt.Errorf("touch board: %w", err)
	}
	return next, nil
}

func (s *Service) insertSnapshot(ctx context.Context, boardID string, version int, docJSON json.RawMessage) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO board_snapshots (id, board_id, version, document) VALUES ($1, $2, $3, $4)`,
		typeid.NewSnapshotID(), boardID, version, docJSON)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	return nil
}

func (s *Service) getBoard(ctx context.Context, boardID string) (*Board, error) {
	var b Board
	err := s.pool.QueryRow(ctx,
		`SELECT `+boardColumns+` FROM boards WHERE id = $1`, boardID).
		Scan(&b.ID, &b.Name, &b.OwnerID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get board: %w", err)
	}
	return &b, nil
}

func (s *Service) CheckMembership(ctx context.Context, boardID, userID string) error {
	var role string
	err := s.pool.QueryRow(ctx,
		`SELECT role FROM board_members WHERE board_id = $1 AND user_id = $2`,
		boardID, userID).Scan(&role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotMember
		}
		return fmt.Errorf("check membership: %w", err)
	}
	return nil
}

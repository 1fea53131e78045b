package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// BoardRepo persists kanban board snapshots
type BoardRepo struct {
	db *sql.DB
}

// SaveBoards replaces every stored board with snapshot in one transaction
func (r *BoardRepo) SaveBoards(ctx context.Context, snapshot []models.KanbanBoard) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		err := clearTables(ctx, tx, "card_tags", "card_assignees", "cards", "board_columns", "board_members", "boards")
		if err != nil {
			return err
		}

		for pos, b := range snapshot {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO boards (id, title, group_id, position, created_at, updated_at)
				 VALUES (?, ?, ?, ?, ?, ?)`,
				b.ID, b.Title, b.GroupID, pos, formatTime(b.CreatedAt), formatTime(b.UpdatedAt))
			if err != nil {
				return fmt.Errorf("failed to insert board %s: %w", b.ID, err)
			}
			err = insertOrdered(ctx, tx,
				`INSERT INTO board_members (board_id, user_id, position) VALUES (?, ?, ?)`,
				string(b.ID), b.MemberIDs)
			if err != nil {
				return fmt.Errorf("failed to insert members of board %s: %w", b.ID, err)
			}

			for colPos, col := range b.Columns {
				if err := insertColumn(ctx, tx, b.ID, colPos, col); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

func insertColumn(ctx context.Context, tx *sql.Tx, boardID types.BoardID, pos int, col *models.Column) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO board_columns (id, board_id, title, position) VALUES (?, ?, ?, ?)`,
		col.ID, boardID, col.Title, pos)
	if err != nil {
		return fmt.Errorf("failed to insert column %s: %w", col.ID, err)
	}

	for i, card := range col.Cards {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO cards (id, column_id, title, description, position, created_at, due_date)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			card.ID, col.ID, card.Title, card.Description, i,
			formatTime(card.CreatedAt), nullTime(card.DueDate))
		if err != nil {
			return fmt.Errorf("failed to insert card %s: %w", card.ID, err)
		}
		err = insertOrdered(ctx, tx,
			`INSERT INTO card_assignees (card_id, user_id, position) VALUES (?, ?, ?)`,
			string(card.ID), card.AssigneeIDs)
		if err != nil {
			return fmt.Errorf("failed to insert assignees of card %s: %w", card.ID, err)
		}
		err = insertOrdered(ctx, tx,
			`INSERT INTO card_tags (card_id, tag, position) VALUES (?, ?, ?)`,
			string(card.ID), card.Tags)
		if err != nil {
			return fmt.Errorf("failed to insert tags of card %s: %w", card.ID, err)
		}
	}
	return nil
}

// LoadBoards reads every stored board with its columns and cards
func (r *BoardRepo) LoadBoards(ctx context.Context) ([]models.KanbanBoard, error) {
	members, err := loadOrdered(ctx, r.db,
		`SELECT board_id, user_id FROM board_members ORDER BY board_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query board members: %w", err)
	}
	assignees, err := loadOrdered(ctx, r.db,
		`SELECT card_id, user_id FROM card_assignees ORDER BY card_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query card assignees: %w", err)
	}
	tags, err := loadOrdered(ctx, r.db,
		`SELECT card_id, tag FROM card_tags ORDER BY card_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query card tags: %w", err)
	}

	boards, err := r.loadBoardRows(ctx, members)
	if err != nil {
		return nil, err
	}
	index := make(map[types.BoardID]int, len(boards))
	for i, b := range boards {
		index[b.ID] = i
	}

	columns, err := r.loadColumns(ctx, boards, index)
	if err != nil {
		return nil, err
	}
	if err := r.loadCards(ctx, columns, assignees, tags); err != nil {
		return nil, err
	}
	return boards, nil
}

func (r *BoardRepo) loadBoardRows(ctx context.Context, members map[string][]string) ([]models.KanbanBoard, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, group_id, created_at, updated_at FROM boards ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	defer rows.Close()

	var out []models.KanbanBoard
	for rows.Next() {
		var (
			b                models.KanbanBoard
			created, updated string
		)
		if err := rows.Scan(&b.ID, &b.Title, &b.GroupID, &created, &updated); err != nil {
			return nil, err
		}
		if b.CreatedAt, err = parseTime(created); err != nil {
			return nil, err
		}
		if b.UpdatedAt, err = parseTime(updated); err != nil {
			return nil, err
		}
		b.MemberIDs = members[string(b.ID)]
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BoardRepo) loadColumns(ctx context.Context, boards []models.KanbanBoard, index map[types.BoardID]int) (map[types.ColumnID]*models.Column, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, board_id, title FROM board_columns ORDER BY board_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	columns := make(map[types.ColumnID]*models.Column)
	for rows.Next() {
		var (
			col     models.Column
			boardID types.BoardID
		)
		if err := rows.Scan(&col.ID, &boardID, &col.Title); err != nil {
			return nil, err
		}
		i, ok := index[boardID]
		if !ok {
			continue
		}
		boards[i].Columns = append(boards[i].Columns, &col)
		columns[col.ID] = &col
	}
	return columns, rows.Err()
}

func (r *BoardRepo) loadCards(ctx context.Context, columns map[types.ColumnID]*models.Column, assignees, tags map[string][]string) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, column_id, title, description, created_at, due_date
		 FROM cards ORDER BY column_id, position`)
	if err != nil {
		return fmt.Errorf("failed to query cards: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			card     models.Card
			columnID types.ColumnID
			created  string
			due      sql.NullString
		)
		if err := rows.Scan(&card.ID, &columnID, &card.Title, &card.Description, &created, &due); err != nil {
			return err
		}
		if card.CreatedAt, err = parseTime(created); err != nil {
			return err
		}
		if card.DueDate, err = NullStringToTimePtr(due); err != nil {
			return err
		}
		card.AssigneeIDs = assignees[string(card.ID)]
		card.Tags = tags[string(card.ID)]

		col, ok := columns[columnID]
		if !ok {
			continue
		}
		col.Cards = append(col.Cards, &card)
	}
	return rows.Err()
}

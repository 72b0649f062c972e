package database

import (
	"context"

	"roomboard/core/logger"
)

// Bootstrap creates the schema objects this service owns if they do not exist:
// the room_users credential table and the meeting_room view over the lecture
// schedule. The lectures/users/user_groups tables belong to the upstream
// timetable system and are assumed present.
func (d *Database) Bootstrap(ctx context.Context) error {
	createView := `
		CREATE OR REPLACE VIEW meeting_room AS
		SELECT l.start, l."end", l.room, l.uid
		FROM lectures l
		JOIN users u ON u.id = l.user_id
		JOIN user_groups g ON u.group_id = g.id
		WHERE u.userhash IS NOT NULL AND u.userhash <> ''
	`
	if err := d.ExecContext(ctx, createView); err != nil {
		logger.Error("Database:Bootstrap:CreateView", err)
		return err
	}

	createTable := `
		CREATE TABLE IF NOT EXISTS room_users (
			id UUID PRIMARY KEY,
			loginname VARCHAR(10) NOT NULL UNIQUE,
			room VARCHAR(50) NOT NULL,
			password VARCHAR(128) NOT NULL
		)
	`
	if err := d.ExecContext(ctx, createTable); err != nil {
		logger.Error("Database:Bootstrap:CreateTable", err)
		return err
	}

	logger.Info("Database schema bootstrapped")
	return nil
}

package sqlite

// schema is applied on open. Statements are idempotent so existing
// databases pass through unchanged.
const schema = `
CREATE TABLE IF NOT EXISTS contact_forms (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	name          TEXT NOT NULL,
	phone         TEXT NOT NULL,
	email         TEXT NOT NULL DEFAULT '',
	city          TEXT NOT NULL DEFAULT '',
	land_size     TEXT NOT NULL DEFAULT '',
	north_feet    TEXT NOT NULL DEFAULT '',
	north_inches  TEXT NOT NULL DEFAULT '',
	south_feet    TEXT NOT NULL DEFAULT '',
	south_inches  TEXT NOT NULL DEFAULT '',
	east_feet     TEXT NOT NULL DEFAULT '',
	east_inches   TEXT NOT NULL DEFAULT '',
	west_feet     TEXT NOT NULL DEFAULT '',
	west_inches   TEXT NOT NULL DEFAULT '',
	land_facing   TEXT NOT NULL DEFAULT '',
	project_type  TEXT NOT NULL DEFAULT '',
	message       TEXT NOT NULL DEFAULT '',
	source        TEXT NOT NULL DEFAULT 'contact',
	created_at    INTEGER NOT NULL,
	is_processed  INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS projects (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	title          TEXT NOT NULL,
	description    TEXT NOT NULL DEFAULT '',
	project_type   TEXT NOT NULL,
	image_url      TEXT NOT NULL DEFAULT '',
	thumbnail_url  TEXT NOT NULL DEFAULT '',
	completed_date TEXT NOT NULL DEFAULT '',
	featured       INTEGER NOT NULL DEFAULT 0,
	created_at     INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS admin_users (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	username      TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL,
	name          TEXT NOT NULL DEFAULT '',
	role          TEXT NOT NULL DEFAULT 'admin',
	created_at    INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS sessions (
	token_hash TEXT PRIMARY KEY,
	user_id    INTEGER NOT NULL REFERENCES admin_users(id),
	expires_at INTEGER NOT NULL,
	created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);
CREATE INDEX IF NOT EXISTS idx_projects_featured ON projects(featured);
`

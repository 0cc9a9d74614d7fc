package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS bumps (
    bump_id         INTEGER PRIMARY KEY AUTOINCREMENT,
    bump_uuid       TEXT UNIQUE NOT NULL,
    path            TEXT NOT NULL,
    field           TEXT NOT NULL,
    component       TEXT NOT NULL,
    line            INTEGER NOT NULL,
    old_version     TEXT NOT NULL,
    new_version     TEXT NOT NULL,
    cli_version     TEXT,
    bump_timestamp  DATETIME DEFAULT CURRENT_TIMESTAMP,
    created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_bumps_path_timestamp
    ON bumps(path, bump_timestamp);
CREATE INDEX IF NOT EXISTS idx_bumps_timestamp
    ON bumps(bump_timestamp DESC);
`

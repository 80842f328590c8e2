package db

// schema is the full database schema. The three movement tables are
// append-only: rows are inserted once and never updated or deleted, and
// each table's rowid is that collection's sequential record id.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY,
    username      TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role          TEXT NOT NULL
        CHECK (role IN ('admin', 'base_commander', 'logistics_officer')),
    home_base     TEXT NOT NULL DEFAULT '',
    created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    deleted_at    DATETIME
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username_active
    ON users(username) WHERE deleted_at IS NULL;

CREATE TABLE IF NOT EXISTS bases (
    id         INTEGER PRIMARY KEY,
    name       TEXT NOT NULL UNIQUE,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS purchases (
    id             INTEGER PRIMARY KEY,
    date           TEXT NOT NULL,
    base           TEXT NOT NULL,
    equipment_type TEXT NOT NULL
        CHECK (equipment_type IN ('weapons', 'vehicles', 'ammunition')),
    quantity       INTEGER NOT NULL CHECK (quantity > 0),
    recorded_by    INTEGER REFERENCES users(id),
    created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS transfers (
    id             INTEGER PRIMARY KEY,
    date           TEXT NOT NULL,
    from_base      TEXT NOT NULL,
    to_base        TEXT NOT NULL,
    equipment_type TEXT NOT NULL
        CHECK (equipment_type IN ('weapons', 'vehicles', 'ammunition')),
    quantity       INTEGER NOT NULL CHECK (quantity > 0),
    recorded_by    INTEGER REFERENCES users(id),
    created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
    CHECK (from_base <> to_base)
);

CREATE TABLE IF NOT EXISTS assignments (
    id             INTEGER PRIMARY KEY,
    date           TEXT NOT NULL,
    base           TEXT NOT NULL,
    equipment_type TEXT NOT NULL
        CHECK (equipment_type IN ('weapons', 'vehicles', 'ammunition')),
    quantity       INTEGER NOT NULL CHECK (quantity > 0),
    status         TEXT NOT NULL CHECK (status IN ('assigned', 'expended')),
    personnel      TEXT NOT NULL DEFAULT '',
    recorded_by    INTEGER REFERENCES users(id),
    created_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

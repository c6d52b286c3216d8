package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS group_info (
    id          INTEGER PRIMARY KEY CHECK (id = 1),
    name        TEXT NOT NULL,
    created_at  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS members (
    position    INTEGER PRIMARY KEY,
    name        TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS expenses (
    position    INTEGER PRIMARY KEY,
    title       TEXT NOT NULL,
    amount      TEXT NOT NULL,
    payer       TEXT NOT NULL,
    category    TEXT NOT NULL,
    split_type  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS settlements (
    position    INTEGER PRIMARY KEY,
    from_member TEXT NOT NULL,
    to_member   TEXT NOT NULL,
    amount      TEXT NOT NULL,
    raw         TEXT
);

CREATE TABLE IF NOT EXISTS balances (
    member      TEXT PRIMARY KEY,
    amount      TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_category ON expenses(category);
`
